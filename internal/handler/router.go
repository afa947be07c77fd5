package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pestdesk/internal/domain/user"
	"pestdesk/internal/handler/api"
	"pestdesk/internal/handler/middleware"
	"pestdesk/internal/handler/ws"
	"pestdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Appointment *api.AppointmentHandler
	Customer    *api.CustomerHandler
	Review      *api.ReviewHandler
	Chat        *api.ChatHandler
	Route       *api.RouteHandler
	WS          *ws.Handler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireOperator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Review submission and the published list are the public surface.
		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Review.ListPublished},
			})

			moderation := reviews.Group("")
			moderation.Use(authMiddleware.RequireAuth())
			addRoutes(moderation, []route{
				{Method: http.MethodGet, Path: "/moderation", Handler: h.Review.ListForModeration},
				{Method: http.MethodPatch, Path: "/:id/moderation", Handler: h.Review.Moderate, Mw: []gin.HandlerFunc{requireOperator}},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update, Mw: []gin.HandlerFunc{requireOperator}},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Appointment.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Appointment.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Appointment.Create, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodPatch, Path: "/:id/schedule", Handler: h.Appointment.Reschedule, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Appointment.UpdateStatus, Mw: []gin.HandlerFunc{requireOperator}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Appointment.Cancel, Mw: []gin.HandlerFunc{requireOperator}},
			})
		}

		schedule := apiGroup.Group("/schedule")
		schedule.Use(authMiddleware.RequireAuth())
		{
			addRoutes(schedule, []route{
				{Method: http.MethodGet, Path: "/grid", Handler: h.Appointment.Grid},
				{Method: http.MethodGet, Path: "/check", Handler: h.Appointment.CheckOverlap},
			})
		}

		routes := apiGroup.Group("/routes")
		routes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(routes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Route.DayRoute},
			})
		}

		chat := apiGroup.Group("/chat")
		chat.Use(authMiddleware.RequireAuth())
		{
			addRoutes(chat, []route{
				{Method: http.MethodGet, Path: "/:customer_id/messages", Handler: h.Chat.History},
				{Method: http.MethodPost, Path: "/:customer_id/messages", Handler: h.Chat.Post},
			})
		}

		wsGroup := apiGroup.Group("/ws")
		wsGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wsGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: h.WS.Connect},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
