package stats

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type handlerTest struct {
	timer       *fakeTimer
	computer    *SnapshotComputerMock
	cache       *Cache
	broadcaster *Broadcaster
	router      chi.Router
}

func newHandlerTest() *handlerTest {
	h := &handlerTest{
		timer:    &fakeTimer{now: statsNow},
		computer: newCountingComputer(),
	}
	h.cache = NewCache(h.computer, nil, 4*time.Second, zap.NewNop())
	h.broadcaster = NewBroadcaster(h.cache, h.timer, 3*time.Second, zap.NewNop())

	h.router = chi.NewRouter()
	NewHandler(h.cache, h.broadcaster, h.timer, zap.NewNop()).Routes(h.router)
	return h
}

func TestHandler_GetStats(t *testing.T) {
	h := newHandlerTest()

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var s Snapshot
	err := json.Unmarshal(w.Body.Bytes(), &s)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), s.KPIs.Customers)
	assert.Equal(t, statsNow, s.GeneratedAt)
}

func TestHandler_GetStats_Error(t *testing.T) {
	h := newHandlerTest()
	h.computer.ComputeFunc = func(ctx context.Context, now time.Time) (Snapshot, error) {
		return Snapshot{}, errors.New("db down")
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "{\"error\":\"stats unavailable\"}\n", w.Body.String())
}

func TestHandler_Stream(t *testing.T) {
	h := newHandlerTest()

	_, err := h.cache.RefreshIfStale(context.Background(), statsNow)
	assert.Equal(t, nil, err)

	server := httptest.NewServer(h.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/stats/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Equal(t, nil, err)

	var s Snapshot
	err = conn.ReadJSON(&s)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), s.KPIs.Customers)
	assert.Equal(t, 1, h.broadcaster.NumSubscribers())

	h.timer.now = statsNow.Add(5 * time.Second)
	h.broadcaster.Tick(context.Background())

	err = conn.ReadJSON(&s)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), s.KPIs.Customers)

	_ = conn.Close()

	assert.Eventually(t, func() bool {
		return h.broadcaster.NumSubscribers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
