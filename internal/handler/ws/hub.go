// Package ws pushes chat messages to connected staff dashboards. Clients
// subscribe to customer threads and receive every message persisted for
// those threads while connected. Missed messages are recovered through the
// chat history endpoint, not the socket.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// ThreadTopic names the hub topic for one customer's chat thread.
func ThreadTopic(customerID uuid.UUID) string {
	return "chat:" + customerID.String()
}

// Event is the frame sent to subscribed clients.
type Event struct {
	Type      string          `json:"type"`
	Topic     string          `json:"topic"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ClientMessage is an inbound control frame from a client.
type ClientMessage struct {
	Action string   `json:"action"`
	Topics []string `json:"topics"`
}

// Client is one connected socket and its thread subscriptions.
type Client struct {
	ID     string
	Topics []string
	Send   chan []byte
}

// Hub tracks connected clients per thread topic. All operations are safe
// for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{} // topic -> subscribers
	all     map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		all:     make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.all[client] = struct{}{}
	for _, topic := range client.Topics {
		if h.clients[topic] == nil {
			h.clients[topic] = make(map[*Client]struct{})
		}
		h.clients[topic][client] = struct{}{}
	}
}

// Unregister removes the client from every topic and closes its Send
// channel, terminating the write pump.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[client]; !ok {
		return
	}

	for _, topic := range client.Topics {
		h.dropSubscriber(topic, client)
	}

	delete(h.all, client)
	close(client.Send)
}

func (h *Hub) Subscribe(client *Client, topics []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, topic := range topics {
		if h.clients[topic] == nil {
			h.clients[topic] = make(map[*Client]struct{})
		}
		h.clients[topic][client] = struct{}{}
	}
	client.Topics = append(client.Topics, topics...)
}

func (h *Hub) Unsubscribe(client *Client, topics []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	removeSet := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		removeSet[t] = struct{}{}
		h.dropSubscriber(t, client)
	}

	remaining := make([]string, 0, len(client.Topics))
	for _, t := range client.Topics {
		if _, rm := removeSet[t]; !rm {
			remaining = append(remaining, t)
		}
	}
	client.Topics = remaining
}

// dropSubscriber must be called with h.mu held.
func (h *Hub) dropSubscriber(topic string, client *Client) {
	if subscribers, ok := h.clients[topic]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.clients, topic)
		}
	}
}

func (h *Hub) ProcessMessage(client *Client, msg ClientMessage) {
	switch msg.Action {
	case "subscribe":
		h.Subscribe(client, msg.Topics)
	case "unsubscribe":
		h.Unsubscribe(client, msg.Topics)
	}
}

// Broadcast implements the chat fan-out port: the persisted message goes to
// every client watching that customer's thread.
func (h *Hub) Broadcast(msg *queries.MessageView) {
	payload, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal chat message for broadcast", "error", err.Error())
		return
	}

	event := Event{
		Type:      "message.created",
		Topic:     ThreadTopic(msg.CustomerID),
		Timestamp: msg.SentAt,
		Data:      payload,
	}
	h.send(event.Topic, event)
}

func (h *Hub) send(topic string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal hub event", "error", err.Error())
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[topic] {
		select {
		case client.Send <- data:
		default:
			// Slow client; drop rather than block the caller.
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

func (h *Hub) TopicCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}
