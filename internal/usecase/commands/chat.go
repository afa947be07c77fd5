package commands

import (
	"context"

	domchat "pestdesk/internal/domain/chat"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/clock"
	"pestdesk/internal/usecase/queries"
	"pestdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type PostMessageRequest struct {
	CustomerID uuid.UUID
	Sender     string
	SenderID   uuid.UUID
	Body       string
}

type ChatCommands interface {
	// PostMessage persists a chat message and fans it out to live
	// subscribers of the customer's thread.
	PostMessage(ctx context.Context, req PostMessageRequest) (*queries.MessageView, error)
}

type chatUseCaseImpl struct {
	uow         shared.UnitOfWork
	broadcaster ChatBroadcaster
	clock       clock.Clock
}

func NewChatUseCase(uow shared.UnitOfWork, broadcaster ChatBroadcaster, clk clock.Clock) ChatCommands {
	return &chatUseCaseImpl{
		uow:         uow,
		broadcaster: broadcaster,
		clock:       clk,
	}
}

func (uc *chatUseCaseImpl) PostMessage(ctx context.Context, req PostMessageRequest) (*queries.MessageView, error) {
	sender := domchat.SenderRole(req.Sender)
	if !sender.IsValid() {
		return nil, domchat.ErrInvalidSenderRole
	}
	body, err := domchat.NewBody(req.Body)
	if err != nil {
		return nil, err
	}

	msg, err := domchat.NewMessage(req.CustomerID, sender, req.SenderID, body, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if txErr := tx.Messages().Create(ctx, msg); txErr != nil {
			if infra.IsKind(txErr, infra.KindForeignKeyViolated) {
				return ErrCustomerNotFound
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := &queries.MessageView{
		ID:         msg.ID(),
		CustomerID: msg.CustomerID(),
		Sender:     msg.SenderRole().String(),
		Body:       msg.Body().String(),
		SentAt:     msg.CreatedAt(),
	}
	uc.broadcaster.Broadcast(view)
	return view, nil
}
