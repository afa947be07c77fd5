package request

import (
	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment" binding:"required"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
