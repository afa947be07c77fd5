package commands

import (
	"context"
	"time"

	"pestdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

// Geocoder resolves a street address to WGS84 coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// ChatBroadcaster pushes a persisted message to live subscribers of the
// customer's thread. Delivery is best effort; the database row is the
// source of truth.
type ChatBroadcaster interface {
	Broadcast(msg *queries.MessageView)
}

// SessionStore tracks issued refresh tokens so logout and rotation can
// invalidate them server-side before JWT expiry.
type SessionStore interface {
	Save(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error
	Validate(ctx context.Context, userID uuid.UUID, refreshToken string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
