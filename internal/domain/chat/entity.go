package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyBody         = errors.New("message body cannot be empty")
	ErrBodyTooLong       = errors.New("message body exceeds maximum length")
	ErrInvalidSenderRole = errors.New("invalid sender role")
)

const MaxBodyLength = 2000

// SenderRole distinguishes the two sides of a conversation.
type SenderRole string

const (
	SenderStaff    SenderRole = "staff"
	SenderCustomer SenderRole = "customer"
)

func (r SenderRole) String() string {
	return string(r)
}

func (r SenderRole) IsValid() bool {
	return r == SenderStaff || r == SenderCustomer
}

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Body{}, ErrEmptyBody
	}
	if len(t) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: t}, nil
}

func (b Body) String() string { return b.text }

// Message is one entry in a customer conversation. Conversations are keyed
// by customer id; there is no separate conversation entity.
type Message struct {
	id         uuid.UUID
	customerID uuid.UUID
	senderRole SenderRole
	senderID   uuid.UUID
	body       Body
	createdAt  time.Time
}

func NewMessage(customerID uuid.UUID, senderRole SenderRole, senderID uuid.UUID, body Body, now time.Time) (*Message, error) {
	if !senderRole.IsValid() {
		return nil, ErrInvalidSenderRole
	}

	return &Message{
		id:         uuid.New(),
		customerID: customerID,
		senderRole: senderRole,
		senderID:   senderID,
		body:       body,
		createdAt:  now,
	}, nil
}

func ReconstructMessage(id, customerID uuid.UUID, senderRole SenderRole, senderID uuid.UUID, body Body, createdAt time.Time) *Message {
	return &Message{
		id:         id,
		customerID: customerID,
		senderRole: senderRole,
		senderID:   senderID,
		body:       body,
		createdAt:  createdAt,
	}
}

func (m *Message) ID() uuid.UUID          { return m.id }
func (m *Message) CustomerID() uuid.UUID  { return m.customerID }
func (m *Message) SenderRole() SenderRole { return m.senderRole }
func (m *Message) SenderID() uuid.UUID    { return m.senderID }
func (m *Message) Body() Body             { return m.body }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }
