package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/domain"
)

type addItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	GuestID       string            `json:"guestId"`
	LineItems     []domain.CartLine `json:"lineItems"`
	ItemCount     int               `json:"itemCount"`
	SubtotalCents int64             `json:"subtotalCents"`
	Currency      string            `json:"currency"`
}

func toCartResponse(id string, store *cart.Store) cartResponse {
	lines := store.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		GuestID:       id,
		LineItems:     lines,
		ItemCount:     store.ItemCount(),
		SubtotalCents: store.Total(),
		Currency:      "PHP",
	}
}

func getCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := guestID(c)
		store := carts.For(c.Request.Context(), id)
		c.JSON(http.StatusOK, toCartResponse(id, store))
	}
}

// addCartItemHandler resolves the product in the catalog and snapshots its
// name and current price onto the cart line. The cart store itself treats
// those values as opaque.
func addCartItemHandler(carts *cart.Manager, catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		if req.Size == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "size required"})
			return
		}
		if req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be positive"})
			return
		}

		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "fetching product failed"})
			return
		}
		if !product.HasSize(req.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "size not offered for product"})
			return
		}

		id := guestID(c)
		store := carts.For(c.Request.Context(), id)
		store.Add(c.Request.Context(), cart.AddInput{
			ProductID:      product.ID,
			Name:           product.Name,
			Size:           req.Size,
			Quantity:       req.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		c.JSON(http.StatusCreated, toCartResponse(id, store))
	}
}

func updateCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		id := guestID(c)
		store := carts.For(c.Request.Context(), id)
		// Quantities below one clamp to one; unknown line IDs are a no-op.
		store.UpdateQuantity(c.Request.Context(), c.Param("lineID"), req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(id, store))
	}
}

func removeCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := guestID(c)
		store := carts.For(c.Request.Context(), id)
		store.Remove(c.Request.Context(), c.Param("lineID"))
		c.JSON(http.StatusOK, toCartResponse(id, store))
	}
}

func clearCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.For(c.Request.Context(), guestID(c))
		store.Clear(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}
