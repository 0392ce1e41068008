package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/AdamAbdallah1/cedarstech-pricelist/internal/catalog"
	"github.com/AdamAbdallah1/cedarstech-pricelist/pkg/broker"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// StreamHandler pushes catalog snapshots to connected clients over SSE.
// Each connection holds one broker subscription that is cancelled on
// teardown, so a closed tab can never receive a stale snapshot.
type StreamHandler struct {
	Store *catalog.Store
}

// Catalog handles GET /api/catalog/stream.
func (h *StreamHandler) Catalog(e *pbCore.RequestEvent) error {
	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	sub := h.Store.Subscribe()
	defer sub.Cancel()

	// The current snapshot first, so a fresh client renders immediately
	// instead of waiting for the next mutation.
	sendSSEMessage(e, "catalog", broker.Event{
		Timestamp: time.Now().Unix(),
		Services:  h.Store.Snapshot(),
	})

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return nil
			}
			sendSSEMessage(e, "catalog", event)

		case <-ticker.C:
			sendSSEMessage(e, "heartbeat", map[string]any{
				"timestamp": time.Now().Unix(),
			})

		case <-e.Request.Context().Done():
			return nil
		}
	}
}

// sendSSEMessage writes and flushes a single SSE frame.
func sendSSEMessage(e *pbCore.RequestEvent, eventType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		e.App.Logger().Error("sse marshal failed", "error", err)
		return
	}

	if _, err := fmt.Fprintf(e.Response, "event: %s\ndata: %s\n\n", eventType, payload); err != nil {
		return
	}
	if flusher, ok := e.Response.(interface{ Flush() }); ok {
		flusher.Flush()
	}
}
