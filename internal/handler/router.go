package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shalean-booking-api/internal/handler/api"
	"shalean-booking-api/internal/handler/middleware"
	"shalean-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	wizardHandler *api.WizardHandler,
	checkoutHandler *api.CheckoutHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, catalogHandler, wizardHandler, checkoutHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	catalogHandler *api.CatalogHandler,
	wizardHandler *api.WizardHandler,
	checkoutHandler *api.CheckoutHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Catalog is public; the wizard links to it before login.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
			{Method: http.MethodGet, Path: "/services/:slug", Handler: catalogHandler.GetService},
			{Method: http.MethodGet, Path: "/regions", Handler: catalogHandler.ListRegions},
			{Method: http.MethodGet, Path: "/regions/:id/suburbs", Handler: catalogHandler.ListSuburbs},
			{Method: http.MethodGet, Path: "/cleaners", Handler: catalogHandler.ListCleaners},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/wizard", Handler: wizardHandler.GetState},
				{Method: http.MethodPost, Path: "/wizard/service", Handler: wizardHandler.SubmitService},
				{Method: http.MethodPost, Path: "/wizard/property", Handler: wizardHandler.SubmitProperty},
				{Method: http.MethodPost, Path: "/wizard/schedule", Handler: wizardHandler.SubmitSchedule},
				{Method: http.MethodPost, Path: "/wizard/extras", Handler: wizardHandler.SubmitExtras},
				{Method: http.MethodPost, Path: "/wizard/contact", Handler: wizardHandler.SubmitContact},
				{Method: http.MethodPost, Path: "/wizard/retreat", Handler: wizardHandler.Retreat},
				{Method: http.MethodPost, Path: "/wizard/reset", Handler: wizardHandler.Reset},
				{Method: http.MethodPost, Path: "/wizard/complete", Handler: wizardHandler.Complete},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/verify", Handler: checkoutHandler.Verify},
				{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.Cancel},
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
