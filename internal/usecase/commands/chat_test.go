//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	domchat "pestdesk/internal/domain/chat"
	"pestdesk/internal/infra"
	"pestdesk/internal/pkg/clock"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	created   []*domchat.Message
	createErr error
}

func (r *fakeMessageRepo) Create(_ context.Context, m *domchat.Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, m)
	return nil
}

type fakeBroadcaster struct {
	broadcasts []*queries.MessageView
}

func (b *fakeBroadcaster) Broadcast(msg *queries.MessageView) {
	b.broadcasts = append(b.broadcasts, msg)
}

func newChatFixture(now time.Time) (*fakeMessageRepo, *fakeBroadcaster, commands.ChatCommands) {
	repo := &fakeMessageRepo{}
	uow := &fakeUoW{tx: &fakeTx{messages: repo}}
	broadcaster := &fakeBroadcaster{}
	return repo, broadcaster, commands.NewChatUseCase(uow, broadcaster, clock.NewMockClock(now))
}

func TestPostMessage(t *testing.T) {
	ctx := context.Background()
	sentAt := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)

	t.Run("success: persists then broadcasts the same view", func(t *testing.T) {
		repo, broadcaster, uc := newChatFixture(sentAt)
		customerID := uuid.New()
		staffID := uuid.New()

		view, err := uc.PostMessage(ctx, commands.PostMessageRequest{
			CustomerID: customerID,
			Sender:     "staff",
			SenderID:   staffID,
			Body:       "Technician is on the way.",
		})
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		assert.Equal(t, customerID, repo.created[0].CustomerID())
		assert.Equal(t, sentAt, view.SentAt)
		assert.Equal(t, "Technician is on the way.", view.Body)

		require.Len(t, broadcaster.broadcasts, 1)
		assert.Same(t, view, broadcaster.broadcasts[0])
	})

	t.Run("error: unknown sender role", func(t *testing.T) {
		repo, broadcaster, uc := newChatFixture(sentAt)

		_, err := uc.PostMessage(ctx, commands.PostMessageRequest{
			CustomerID: uuid.New(),
			Sender:     "bot",
			SenderID:   uuid.New(),
			Body:       "hello",
		})
		assert.ErrorIs(t, err, domchat.ErrInvalidSenderRole)
		assert.Empty(t, repo.created)
		assert.Empty(t, broadcaster.broadcasts)
	})

	t.Run("error: oversized body", func(t *testing.T) {
		_, broadcaster, uc := newChatFixture(sentAt)

		_, err := uc.PostMessage(ctx, commands.PostMessageRequest{
			CustomerID: uuid.New(),
			Sender:     "customer",
			SenderID:   uuid.New(),
			Body:       strings.Repeat("a", 2001),
		})
		assert.Error(t, err)
		assert.Empty(t, broadcaster.broadcasts)
	})

	t.Run("error: unknown customer surfaces as not found, nothing broadcast", func(t *testing.T) {
		repo, broadcaster, uc := newChatFixture(sentAt)
		repo.createErr = infra.WrapRepoErr("insert messages", &pgconn.PgError{Code: "23503"})

		_, err := uc.PostMessage(ctx, commands.PostMessageRequest{
			CustomerID: uuid.New(),
			Sender:     "staff",
			SenderID:   uuid.New(),
			Body:       "hello",
		})
		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
		assert.Empty(t, broadcaster.broadcasts)
	})
}
