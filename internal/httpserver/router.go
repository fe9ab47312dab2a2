package httpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/service/checkout"
	"apparel-storefront/internal/service/guest"
)

type catalogService interface {
	List(ctx context.Context, collection string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// Deps carries the services the routes are wired against.
type Deps struct {
	Catalog  catalogService
	Checkout *checkout.Service
	Guests   *guest.Service
	Carts    *cart.Manager
}

const guestHeader = "X-Guest-Id"

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, guestHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/guests", issueGuestHandler(deps.Guests))
	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))
	router.GET("/orders/:id", getOrderHandler(deps.Checkout))

	guestScoped := router.Group("", guestMiddleware(deps.Guests))
	guestScoped.GET("/cart", getCartHandler(deps.Carts))
	guestScoped.POST("/cart/items", addCartItemHandler(deps.Carts, deps.Catalog))
	guestScoped.PATCH("/cart/items/:lineID", updateCartItemHandler(deps.Carts))
	guestScoped.DELETE("/cart/items/:lineID", removeCartItemHandler(deps.Carts))
	guestScoped.DELETE("/cart", clearCartHandler(deps.Carts))
	guestScoped.POST("/checkout/quote", quoteHandler(deps.Carts, deps.Checkout))
	guestScoped.POST("/checkout", submitCheckoutHandler(deps.Carts, deps.Checkout))

	return router
}

// guestMiddleware requires a well-formed guest ID on every cart and checkout
// request and stashes it in the gin context.
func guestMiddleware(guests *guest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(guestHeader)
		if id == "" || !guests.Valid(id) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "missing or invalid " + guestHeader + " header"})
			return
		}
		c.Set(guestIDKey, id)
		c.Next()
	}
}

const guestIDKey = "guestID"

func guestID(c *gin.Context) string {
	return c.GetString(guestIDKey)
}
