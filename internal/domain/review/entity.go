package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback awaiting staff moderation. Only approved
// reviews are exposed publicly.
type Review struct {
	id          uuid.UUID
	customerID  uuid.UUID
	rating      Rating
	comment     Comment
	status      ModerationStatus
	moderatedBy *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReview(customerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:         uuid.New(),
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReview(
	id, customerID uuid.UUID,
	rating Rating,
	comment Comment,
	status ModerationStatus,
	moderatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:          id,
		customerID:  customerID,
		rating:      rating,
		comment:     comment,
		status:      status,
		moderatedBy: moderatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Moderate resolves a pending review. Re-moderation is rejected so two staff
// members racing on the same review get a clean error rather than a silent
// overwrite.
func (r *Review) Moderate(status ModerationStatus, staffID uuid.UUID) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidModerationStatus
	}
	if r.status != StatusPending {
		return ErrAlreadyModerated
	}
	r.status = status
	r.moderatedBy = &staffID
	return nil
}

func (r *Review) IsApproved() bool {
	return r.status == StatusApproved
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) CustomerID() uuid.UUID    { return r.customerID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) Status() ModerationStatus { return r.status }
func (r *Review) ModeratedBy() *uuid.UUID  { return r.moderatedBy }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
