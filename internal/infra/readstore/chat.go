package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pestdesk/internal/infra"
	"pestdesk/internal/infra/db"
	"pestdesk/internal/usecase/queries"
)

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

// FindByCustomerID pages backwards from before, returning the page in
// ascending sent order for direct rendering.
func (r *MessageReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, before time.Time, limit int32) ([]*queries.MessageView, error) {
	const query = `
SELECT id, customer_id, sender_role, body, created_at
FROM (
    SELECT id, customer_id, sender_role, body, created_at
    FROM chat_messages
    WHERE customer_id = $1 AND created_at < $2
    ORDER BY created_at DESC
    LIMIT $3
) page
ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, customerID, before, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages", err)
	}
	defer rows.Close()

	var views []*queries.MessageView
	for rows.Next() {
		var v queries.MessageView
		if scanErr := rows.Scan(&v.ID, &v.CustomerID, &v.Sender, &v.Body, &v.SentAt); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan chat message row", scanErr)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate chat message rows", err)
	}
	return views, nil
}
