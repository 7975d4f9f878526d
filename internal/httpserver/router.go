package httpserver

import (
	"context"
	"time"

	"carameche/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CatalogSource is the catalog surface the handlers consume.
type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Card, error)
	Series(ctx context.Context) ([]domain.Series, error)
}

// CartService applies session cart mutations.
type CartService interface {
	Get(ctx context.Context, session string) (domain.Cart, error)
	Add(ctx context.Context, session, cardID string, quantity int) (domain.Cart, bool, error)
	Update(ctx context.Context, session, cardID string, quantity int) (domain.Cart, bool, error)
	Remove(ctx context.Context, session, cardID string) (domain.Cart, error)
	Clear(ctx context.Context, session string) error
}

// OrderService covers checkout, history and the admin order flow.
type OrderService interface {
	Submit(ctx context.Context, customerName string, cart domain.Cart) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerName string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id, status string) error
}

// Deps groups the services the router depends on.
type Deps struct {
	Catalog CatalogSource
	Cart    CartService
	Orders  OrderService
}

// Options carries router tuning that comes from configuration.
type Options struct {
	CORSOrigins []string
	PageSize    int
}

func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, rdb *redis.Client, deps Deps, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, rdb))

	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 100
	}

	api := router.Group("/api", sessionMiddleware())
	{
		api.GET("/cards", listCardsHandler(deps.Catalog, pageSize))
		api.GET("/series", listSeriesHandler(deps.Catalog))

		api.GET("/cart", getCartHandler(deps.Cart))
		api.POST("/cart/items", addCartItemHandler(deps.Cart))
		api.PATCH("/cart/items/:cardId", updateCartItemHandler(deps.Cart))
		api.DELETE("/cart/items/:cardId", removeCartItemHandler(deps.Cart))
		api.DELETE("/cart", clearCartHandler(deps.Cart))

		api.POST("/orders", checkoutHandler(deps.Orders, deps.Cart))
		api.GET("/orders", listOrdersHandler(deps.Orders))

		admin := api.Group("/admin")
		{
			admin.GET("/orders", adminListOrdersHandler(deps.Orders))
			admin.PATCH("/orders/:id/status", adminSetStatusHandler(deps.Orders))
			admin.GET("/stats", adminStatsHandler(deps.Orders))
		}
	}

	return router
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	log := logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
