package repository

import (
	"context"

	domchat "pestdesk/internal/domain/chat"
	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"
)

type MessageRepository struct {
	db db.DBTX
}

func NewMessageRepository(dbtx db.DBTX) *MessageRepository {
	return &MessageRepository{db: dbtx}
}

const insertMessage = `
INSERT INTO chat_messages (id, customer_id, sender_role, sender_id, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *MessageRepository) Create(ctx context.Context, m *domchat.Message) error {
	_, err := r.db.Exec(ctx, insertMessage,
		m.ID(),
		m.CustomerID(),
		m.SenderRole().String(),
		m.SenderID(),
		m.Body().String(),
		m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create chat message", err)
	}
	return nil
}
