package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SubRace_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE connections
// @Summary Live pipeline events
// @Description Server-Sent Events stream of subs.updated and scoring.completed
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma-separated event types to receive"
// @Router /api/v1/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		var eventTypes []string
		if filterParam := r.URL.Query().Get(ParamTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(eventTypes)
		if client == nil {
			http.Error(w, "Service shutting down", http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			return rc.Flush() == nil
		}

		if !send(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
