package components

import (
	"pestdesk/internal/handler"
	"pestdesk/internal/handler/api"
	"pestdesk/internal/handler/middleware"
	"pestdesk/internal/handler/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		api.NewReviewHandler,
		api.NewChatHandler,
		api.NewRouteHandler,
		ws.NewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	appointment *api.AppointmentHandler,
	customer *api.CustomerHandler,
	review *api.ReviewHandler,
	chat *api.ChatHandler,
	route *api.RouteHandler,
	wsHandler *ws.Handler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Appointment: appointment,
		Customer:    customer,
		Review:      review,
		Chat:        chat,
		Route:       route,
		WS:          wsHandler,
	}
}
