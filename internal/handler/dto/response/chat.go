package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Sender     string    `json:"sender"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sentAt"`
}

func FromMessageView(rm *queries.MessageView) *MessageResponse {
	return &MessageResponse{
		ID:         rm.ID,
		CustomerID: rm.CustomerID,
		Sender:     rm.Sender,
		Body:       rm.Body,
		SentAt:     rm.SentAt,
	}
}

func FromMessageViews(rms []*queries.MessageView) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromMessageView(rm))
	}
	return out
}
