//go:build unit

package ws

import (
	"encoding/json"
	"testing"
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(topics ...string) *Client {
	return &Client{
		ID:     uuid.NewString(),
		Topics: topics,
		Send:   make(chan []byte, 8),
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	topic := ThreadTopic(uuid.New())

	client := newTestClient(topic)
	hub.Register(client)

	assert.Equal(t, 1, hub.ClientCount())
	assert.Equal(t, 1, hub.TopicCount(topic))

	hub.Unregister(client)

	assert.Equal(t, 0, hub.ClientCount())
	assert.Equal(t, 0, hub.TopicCount(topic))

	_, open := <-client.Send
	assert.False(t, open, "send channel should be closed after unregister")
}

func TestHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	hub.Register(client)

	hub.Unregister(client)
	hub.Unregister(client)

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_SubscribeUnsubscribe(t *testing.T) {
	hub := NewHub()
	client := newTestClient()
	hub.Register(client)

	topicA := ThreadTopic(uuid.New())
	topicB := ThreadTopic(uuid.New())

	hub.ProcessMessage(client, ClientMessage{Action: "subscribe", Topics: []string{topicA, topicB}})
	assert.Equal(t, 1, hub.TopicCount(topicA))
	assert.Equal(t, 1, hub.TopicCount(topicB))

	hub.ProcessMessage(client, ClientMessage{Action: "unsubscribe", Topics: []string{topicA}})
	assert.Equal(t, 0, hub.TopicCount(topicA))
	assert.Equal(t, 1, hub.TopicCount(topicB))
	assert.Equal(t, []string{topicB}, client.Topics)
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub()
	customerID := uuid.New()
	topic := ThreadTopic(customerID)

	subscriber := newTestClient(topic)
	bystander := newTestClient(ThreadTopic(uuid.New()))
	hub.Register(subscriber)
	hub.Register(bystander)

	msg := &queries.MessageView{
		ID:         uuid.New(),
		CustomerID: customerID,
		Sender:     "staff",
		Body:       "On our way.",
		SentAt:     time.Now(),
	}
	hub.Broadcast(msg)

	select {
	case raw := <-subscriber.Send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "message.created", event.Type)
		assert.Equal(t, topic, event.Topic)

		var got queries.MessageView
		require.NoError(t, json.Unmarshal(event.Data, &got))
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, msg.Body, got.Body)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the broadcast")
	}

	select {
	case <-bystander.Send:
		t.Fatal("bystander received a message for another thread")
	default:
	}
}

func TestHub_BroadcastDropsSlowClient(t *testing.T) {
	hub := NewHub()
	customerID := uuid.New()
	topic := ThreadTopic(customerID)

	slow := &Client{ID: uuid.NewString(), Topics: []string{topic}, Send: make(chan []byte)}
	hub.Register(slow)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(&queries.MessageView{ID: uuid.New(), CustomerID: customerID, Sender: "staff", Body: "hi", SentAt: time.Now()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
}
