package handler

import (
	"log/slog"
	"net/http"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/handler/api"
	"ticket-marketplace/internal/handler/middleware"
	"ticket-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Recorder middleware.HTTPRecorder

	Auth      *middleware.AuthMiddleware
	Webhook   *api.WebhookHandler
	Admission *api.AdmissionHandler
	Checkout  *api.CheckoutHandler
	Event     *api.EventHandler
	Ticket    *api.TicketHandler
	Seller    *api.SellerHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery(p.Logger))
	p.Engine.Use(middleware.LoggingMiddleware(p.Logger, p.Config.Log))
	p.Engine.Use(middleware.Metrics(p.Recorder))
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS, p.Logger))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Authenticated by signature, not by session.
	webhooks := engine.Group("/webhooks")
	addRoutes(webhooks, []route{
		{Method: http.MethodPost, Path: "/razorpay", Handler: p.Webhook.Razorpay},
	})

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.Auth.RequireAuth())
	{
		ownerOnly := []gin.HandlerFunc{p.Auth.RequireRole(user.RoleSeller, user.RoleAdmin)}

		events := apiGroup.Group("/events/:id")
		addRoutes(events, []route{
			{Method: http.MethodPost, Path: "/waiting-list", Handler: p.Admission.Join},
			{Method: http.MethodDelete, Path: "/waiting-list", Handler: p.Admission.Leave},
			{Method: http.MethodGet, Path: "/queue-position", Handler: p.Admission.QueuePosition},
			{Method: http.MethodPost, Path: "/offers", Handler: p.Admission.GrantOffer},
			{Method: http.MethodPost, Path: "/checkout", Handler: p.Checkout.Start},
			{Method: http.MethodPost, Path: "/cancel", Handler: p.Event.Cancel, Mw: ownerOnly},
			{Method: http.MethodGet, Path: "/refunds", Handler: p.Event.Refunds, Mw: ownerOnly},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/tickets", Handler: p.Ticket.ListMine},
		})

		sellers := apiGroup.Group("/sellers")
		addRoutes(sellers, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: p.Seller.EnsureContact},
			{Method: http.MethodPut, Path: "/account", Handler: p.Seller.LinkAccount},
			{Method: http.MethodGet, Path: "/account", Handler: p.Seller.Account},
		})
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
