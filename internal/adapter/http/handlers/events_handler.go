package handlers

import (
	"net/http"
	"time"

	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultKeepAlive = 15 * time.Second

// EventsHandler streams store change notifications as server-sent events.
// Each event name is the change kind and the data is the JSON event.
type EventsHandler struct {
	source    usecase.IEventSource
	keepAlive time.Duration
}

func NewEventsHandler(source usecase.IEventSource) *EventsHandler {
	return &EventsHandler{source: source, keepAlive: defaultKeepAlive}
}

// Stream godoc
// @Summary  Subscribe to state changes
// @Tags     events
// @Produce  text/event-stream
// @Success  200
// @Router   /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	events, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Content-Type", "text/event-stream")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.SSEvent("keepalive", time.Now().UTC().Format(time.RFC3339))
		case e, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(string(e.Kind), e)
		}
		c.Writer.Flush()
	}
}
