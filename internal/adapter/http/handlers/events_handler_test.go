package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

type fakeEventSource struct {
	events       chan usecase.Event
	unsubscribed bool
}

func (f *fakeEventSource) Subscribe() (<-chan usecase.Event, func()) {
	return f.events, func() { f.unsubscribed = true }
}

func TestEventsHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes events until the source closes", func(t *testing.T) {
		src := &fakeEventSource{events: make(chan usecase.Event, 2)}
		src.events <- usecase.Event{Kind: usecase.EventCartChanged, At: time.Now()}
		src.events <- usecase.Event{Kind: usecase.EventOrderDelivered, OrderID: "order-1", At: time.Now()}
		close(src.events)

		h := NewEventsHandler(src)
		r := gin.New()
		r.GET("/v1/events", h.Stream)

		w := performRequest(r, http.MethodGet, "/v1/events", "")
		expectStatus(t, w, http.StatusOK)
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Fatalf("unexpected content type %q", ct)
		}
		body := w.Body.String()
		if !strings.Contains(body, "event:cart_changed") || !strings.Contains(body, "event:order_delivered") {
			t.Fatalf("missing events in stream: %s", body)
		}
		if !strings.Contains(body, `"order_id":"order-1"`) {
			t.Fatalf("missing order id in stream: %s", body)
		}
		if !src.unsubscribed {
			t.Fatalf("expected the subscription to be released")
		}
	})

	t.Run("stops when the client goes away", func(t *testing.T) {
		src := &fakeEventSource{events: make(chan usecase.Event)}
		h := NewEventsHandler(src)
		h.keepAlive = 5 * time.Millisecond
		r := gin.New()
		r.GET("/v1/events", h.Stream)

		ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/v1/events", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if !strings.Contains(w.Body.String(), "event:keepalive") {
			t.Fatalf("expected keepalive frames, got %s", w.Body.String())
		}
		if !src.unsubscribed {
			t.Fatalf("expected the subscription to be released")
		}
	})
}
