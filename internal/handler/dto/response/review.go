package response

import (
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	CustomerName string     `json:"customerName"`
	Rating       int32      `json:"rating"`
	Comment      string     `json:"comment"`
	Status       string     `json:"status"`
	ModeratedBy  *uuid.UUID `json:"moderatedBy,omitempty"`
	ModeratedAt  *time.Time `json:"moderatedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           rm.ID,
		CustomerID:   rm.CustomerID,
		CustomerName: rm.CustomerName,
		Rating:       rm.Rating,
		Comment:      rm.Comment,
		Status:       rm.Status,
		ModeratedBy:  rm.ModeratedBy,
		ModeratedAt:  rm.ModeratedAt,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromReviewViews(rms []*queries.ReviewView) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReviewView(rm))
	}
	return out
}
