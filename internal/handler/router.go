package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"order-engine/internal/handler/api"
	"order-engine/internal/handler/middleware"
	"order-engine/internal/pkg/config"
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
	transactionHandler *api.TransactionHandler,
	orderHandler *api.OrderHandler,
	membershipHandler *api.MembershipHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, transactionHandler, orderHandler, membershipHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	transactionHandler *api.TransactionHandler,
	orderHandler *api.OrderHandler,
	membershipHandler *api.MembershipHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		transactions := apiGroup.Group("/transactions")
		transactions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodPost, Path: "", Handler: transactionHandler.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: transactionHandler.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: transactionHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/authorizations", Handler: transactionHandler.AddAuthorization},
				{Method: http.MethodPut, Path: "/:id/authorizations/:authorizationId", Handler: transactionHandler.ReplaceAuthorization},
				{Method: http.MethodDelete, Path: "/:id/authorizations/:authorizationId", Handler: transactionHandler.CancelAuthorization},
			})
		}

		memberships := apiGroup.Group("/memberships")
		memberships.Use(authMiddleware.RequireAuth())
		{
			addRoutes(memberships, []route{
				{Method: http.MethodPost, Path: "", Handler: membershipHandler.Register},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			// Confirmation lookup is public: the pass is the credential.
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/findByConfirmation", Handler: orderHandler.FindByConfirmation},
			})

			authRequired := orders.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:orderNumber", Handler: orderHandler.GetByOrderNumber},
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
