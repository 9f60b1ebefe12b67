package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)
	return hub
}

func dial(t *testing.T, hub *Hub, sessionID string) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set(ContextSessionID, sessionID)
		c.Set(ContextUserID, int64(1))
	}, NewHandler(hub, []string{"http://allowed.test"}, zerolog.Nop()).HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://allowed.test"}})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.GetClientsCount(sessionID) == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func TestHub_DeliversOnlyToOwnSession(t *testing.T) {
	hub := startHub(t)
	mine := dial(t, hub, "s1")
	other := dial(t, hub, "s2")

	hub.Publish(Event{Type: EventNavigated, SessionID: "s1", ActiveView: "profile"})

	mine.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := mine.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, EventNavigated, ev.Type)
	assert.Equal(t, "profile", ev.ActiveView)
	assert.False(t, ev.Timestamp.IsZero())

	other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	hub := startHub(t)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { c.Set(ContextSessionID, "s1") },
		NewHandler(hub, []string{"http://allowed.test"}, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.test"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_RequiresSession(t *testing.T) {
	hub := startHub(t)
	r := gin.New()
	r.GET("/ws", NewHandler(hub, nil, zerolog.Nop()).HandleConnection)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuditLogger_RecordsEvents(t *testing.T) {
	hub := startHub(t)
	var buf safeBuffer
	audit := NewAuditLogger(hub, zerolog.New(&buf))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	audit.Start(ctx)

	require.Eventually(t, func() bool {
		hub.listenersMu.RLock()
		defer hub.listenersMu.RUnlock()
		return len(hub.listeners) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish(Event{Type: EventLogout, SessionID: "s9"})

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), `"event":"session.logout"`)
	}, time.Second, 10*time.Millisecond)
}

func TestPublish_NeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(Event{Type: EventSidebar, SessionID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
