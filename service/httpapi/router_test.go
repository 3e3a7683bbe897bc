package httpapi

import (
	"context"
	"errors"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/QuangTung97/minicrm/service/delivery"
	"github.com/QuangTung97/minicrm/service/vendor"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type sinkFunc func(ctx context.Context, receipt delivery.Receipt) error

func (f sinkFunc) Publish(ctx context.Context, receipt delivery.Receipt) error {
	return f(ctx, receipt)
}

func newTestRouter(conf Config) http.Handler {
	conf.Tracer = trace.NewNoopTracerProvider().Tracer("test")
	conf.Logger = zap.NewNop()
	return NewRouter(conf)
}

func doRequest(h http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(Config{
		Health: Health{Stream: "redis", UsingLog: true},
	})

	w := doRequest(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"{\"ok\":true,\"stream\":\"redis\",\"usingLog\":true,\"vendorCallbacks\":false}\n",
		w.Body.String(),
	)
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestRouter(Config{})

	w := doRequest(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Receipt_Appended(t *testing.T) {
	log := streamlog.NewMemory()
	h := newTestRouter(Config{
		Receipts: delivery.NewLogReceiptSink(log),
	})

	w := doRequest(h, http.MethodPost, "/api/delivery/receipt",
		`{"campaignId":"camp-01","customerId":"c-01","vendorMsgId":"v_1","status":"FAILED"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{\"ok\":true}\n", w.Body.String())

	entries := log.Entries(delivery.StreamReceipts)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t,
		`{"campaignId":"camp-01","customerId":"c-01","vendorMsgId":"v_1","status":"FAILED","error":"vendor reported failure"}`,
		string(entries[0].Payload),
	)
}

func TestRouter_Receipt_Invalid(t *testing.T) {
	h := newTestRouter(Config{
		Receipts: delivery.NewLogReceiptSink(streamlog.NewMemory()),
	})

	w := doRequest(h, http.MethodPost, "/api/delivery/receipt", `{"campaignId":"camp-01"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "{\"error\":\"invalid json body\"}\n", w.Body.String())

	w = doRequest(h, http.MethodPost, "/api/delivery/receipt",
		`{"campaignId":"camp-01","customerId":"c-01","status":"PENDING"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Receipt_SinkError(t *testing.T) {
	h := newTestRouter(Config{
		Receipts: sinkFunc(func(ctx context.Context, receipt delivery.Receipt) error {
			return errors.New("redis down")
		}),
	})

	w := doRequest(h, http.MethodPost, "/api/delivery/receipt",
		`{"campaignId":"camp-01","customerId":"c-01","status":"SENT"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_Mounts(t *testing.T) {
	h := newTestRouter(Config{
		Mounts: []Mounter{
			vendor.NewSimulator(1, vendor.WithIDGenerator(func() string { return "v_01" })),
		},
	})

	w := doRequest(h, http.MethodPost, "/vendor/send",
		`{"campaignId":"camp-01","customerId":"c-01","message":"Hi Aisha"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{\"vendorMsgId\":\"v_01\",\"status\":\"SENT\"}\n", w.Body.String())

	w = doRequest(h, http.MethodGet, "/api/delivery/receipt", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
