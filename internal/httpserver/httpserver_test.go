package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"intent-chatbot/config"
	chatHTTP "intent-chatbot/internal/chat/delivery/http"
	"intent-chatbot/internal/middleware"
	"intent-chatbot/pkg/log"
	"intent-chatbot/pkg/response"
)

type stubChat struct{}

func (stubChat) Home(c *gin.Context)    { response.OK(c, "home") }
func (stubChat) Chat(c *gin.Context)    { response.OK(c, "chat") }
func (stubChat) Reset(c *gin.Context)   { response.OK(c, nil) }
func (stubChat) History(c *gin.Context) { response.OK(c, nil) }
func (stubChat) Intents(c *gin.Context) { response.OK(c, nil) }

var _ chatHTTP.Handler = stubChat{}

func newTestServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	mw := middleware.New(log.NewNop(), config.SessionConfig{CookieName: "session_id", TTL: time.Hour}, config.RateLimitConfig{})
	srv, err := New(log.NewNop(), Config{
		Port:        5001,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  mw,
		ReadyCheck:  ready,
		ChatHandler: stubChat{},
	})
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func TestNew(t *testing.T) {
	t.Run("Requires Chat Handler", func(t *testing.T) {
		_, err := New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode})
		if err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("Requires Port", func(t *testing.T) {
		_, err := New(log.NewNop(), Config{Mode: gin.TestMode, ChatHandler: stubChat{}})
		if err == nil || !strings.Contains(err.Error(), "port") {
			t.Fatalf("expected port error, got %v", err)
		}
	})
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/ready"},
		{http.MethodGet, "/live"},
		{http.MethodGet, "/"},
		{http.MethodPost, "/chat"},
		{http.MethodPost, "/api/v1/chat"},
		{http.MethodPost, "/api/v1/chat/reset"},
		{http.MethodGet, "/api/v1/chat/history"},
		{http.MethodGet, "/api/v1/intents"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Error("missing request id header")
			}
		})
	}

	t.Run("Health Body", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		if data["service"] != ServiceName {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}

func TestReady(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("qdrant down") })

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
