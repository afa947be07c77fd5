package components

import (
	"pestdesk/internal/infra/db"
	"pestdesk/internal/infra/geocode"
	"pestdesk/internal/infra/readstore"
	"pestdesk/internal/infra/session"
	"pestdesk/internal/infra/uow"
	"pestdesk/internal/pkg/config"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			session.NewRedisStore,
			fx.As(new(commands.SessionStore)),
		),
		func(cfg config.Config) config.GeocodeConfig { return cfg.Geocode },
		fx.Annotate(
			geocode.NewGoogleClient,
			fx.As(new(commands.Geocoder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
