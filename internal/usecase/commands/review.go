package commands

import (
	"context"

	domreview "pestdesk/internal/domain/review"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/clock"
	"pestdesk/internal/pkg/errs"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type SubmitReviewRequest struct {
	CustomerID uuid.UUID
	Rating     int
	Comment    string
}

type ReviewCommands interface {
	Submit(ctx context.Context, req SubmitReviewRequest) (uuid.UUID, error)
	// Moderate approves or rejects a pending review. Moderation is final.
	Moderate(ctx context.Context, reviewID uuid.UUID, status string, staffID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Submit(ctx context.Context, req SubmitReviewRequest) (uuid.UUID, error) {
	rev, err := domreview.NewReview(req.CustomerID, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Reviews().Create(ctx, rev); txErr != nil {
			if infra.IsKind(txErr, infra.KindForeignKeyViolated) {
				return ErrCustomerNotFound
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rev.ID(), nil
}

func (uc *reviewUseCaseImpl) Moderate(ctx context.Context, reviewID uuid.UUID, status string, staffID uuid.UUID) error {
	outcome, err := domreview.NewModerationStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, txErr := tx.Reviews().FindByID(ctx, reviewID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return txErr
		}
		if txErr := rev.Moderate(outcome, staffID); txErr != nil {
			return txErr
		}
		return tx.Reviews().Update(ctx, rev)
	})
}
