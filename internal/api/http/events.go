package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// orderEvents streams order change notifications to the kitchen display as
// Server-Sent Events. The client treats each message purely as a re-fetch
// trigger. Events for other restaurants are filtered out server-side; the
// subscription ends when the client disconnects.
func (h *Handler) orderEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	userID := userIDFrom(r.Context())
	events, stop := h.Events.SubscribeOrderEvents(r.Context())
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, open := <-events:
			if !open {
				return
			}
			if evt.UserID != userID {
				continue
			}
			payload, _ := json.Marshal(evt)
			fmt.Fprintf(w, "event: order\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
