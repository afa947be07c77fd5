//go:build unit || e2e

package builder

import (
	"time"

	"pestdesk/internal/domain/review"
	reqdto "pestdesk/internal/handler/dto/request"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	CustomerID   uuid.UUID
	CustomerName string
	Rating       int
	Comment      string
	Status       string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		CustomerID:   uuid.New(),
		CustomerName: "Acme Bakery",
		Rating:       5,
		Comment:      "Technician was on time and thorough.",
		Status:       "pending",
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithStatus(status string) *ReviewBuilder {
	r.Status = status
	return r
}

func (r *ReviewBuilder) BuildDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	return review.NewReview(r.CustomerID, r.Rating, r.Comment, time.Now())
}

func (r *ReviewBuilder) BuildReadModel() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           uuid.New(),
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		Status:       r.Status,
		CreatedAt:    time.Now(),
	}
}
