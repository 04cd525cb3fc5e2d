// Package sse streams pipeline events to browsers with Server-Sent Events.
package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one message on the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one open stream. EventChannel is closed when the client is
// removed or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil receives every type
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans pipeline events out to connected clients. All client map
// mutations happen on the run goroutine.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	events chan Event
	joins  chan *Client
	leaves chan string

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		events:  make(chan Event, BroadcastBufferSize),
		joins:   make(chan *Client, ClientChannelBuffer),
		leaves:  make(chan string, ClientChannelBuffer),
		done:    make(chan struct{}),
	}
}

// Start launches the fan-out goroutine
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the fan-out goroutine and closes every client stream. Safe to
// call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			return
		case c := <-h.joins:
			h.add(c)
		case id := <-h.leaves:
			h.remove(id)
		case ev := <-h.events:
			h.deliver(ev)
		}
	}
}

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c.ID] = c
	h.mu.Unlock()
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.EventChannel)
		delete(h.clients, id)
	}
}

func (h *Hub) deliver(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(ev.Type) {
			continue
		}
		// A full client buffer drops the event for that client only
		select {
		case c.EventChannel <- ev:
		default:
		}
	}
}

// Register opens a client for the given event types, or all types when
// none are given. It returns nil once the hub has stopped.
func (h *Hub) Register(eventTypes []string) *Client {
	select {
	case <-h.done:
		return nil
	default:
	}

	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			c.EventFilter[t] = true
		}
	}

	select {
	case h.joins <- c:
		return c
	case <-h.done:
		return nil
	}
}

// Unregister closes the client's stream
func (h *Hub) Unregister(clientID string) {
	select {
	case h.leaves <- clientID:
	case <-h.done:
	}
}

// Broadcast queues an event for delivery. It never blocks; when the queue
// is full the event is dropped and logged.
func (h *Hub) Broadcast(eventType string, payload any) {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- ev:
		slog.Debug(LogMsgEventBroadcast, "event_type", eventType)
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of registered clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders ev in the text/event-stream wire format
func FormatSSEMessage(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", ev.Type, err)
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, data), nil
}
