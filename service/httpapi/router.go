package httpapi

import (
	"errors"
	"github.com/QuangTung97/minicrm/pkg/httputil"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/service/delivery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
)

// Mounter is anything exposing its own routes
type Mounter interface {
	Routes(r chi.Router)
}

// Health is the body of GET /health
type Health struct {
	OK        bool   `json:"ok"`
	Stream    string `json:"stream"`
	UsingLog  bool   `json:"usingLog"`
	Callbacks bool   `json:"vendorCallbacks"`
}

// Config of the router, nil fields disable their routes
type Config struct {
	Tracer trace.Tracer
	Logger *zap.Logger

	Health   Health
	Receipts delivery.ReceiptSink
	Mounts   []Mounter
}

// NewRouter ...
func NewRouter(conf Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(otellib.SetTraceInfoMiddleware(conf.Tracer, conf.Logger))

	health := conf.Health
	health.OK = true
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, health)
	})
	r.Handle("/metrics", promhttp.Handler())

	if conf.Receipts != nil {
		r.Post("/api/delivery/receipt", receiptHandler(conf.Receipts))
	}

	for _, m := range conf.Mounts {
		m.Routes(r)
	}
	return r
}

func receiptHandler(sink delivery.ReceiptSink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var receipt delivery.Receipt
		if err := httputil.DecodeJSON(r, &receipt); err != nil {
			httputil.Error(w, http.StatusBadRequest, "invalid json body")
			return
		}

		err := sink.Publish(r.Context(), receipt)
		if errors.Is(err, delivery.ErrInvalidReceipt) {
			httputil.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			otellib.Extract(r.Context()).Error("Publish receipt", zap.Error(err))
			httputil.Error(w, http.StatusServiceUnavailable, "receipt not accepted")
			return
		}

		httputil.JSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
