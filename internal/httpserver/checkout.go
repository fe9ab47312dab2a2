package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/service/checkout"
)

type quoteRequest struct {
	City     string `json:"city"`
	Province string `json:"province"`
}

func quoteHandler(carts *cart.Manager, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		store := carts.For(c.Request.Context(), guestID(c))
		c.JSON(http.StatusOK, svc.Quote(store, req.City, req.Province))
	}
}

func submitCheckoutHandler(carts *cart.Manager, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.SubmitInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		id := guestID(c)
		store := carts.For(c.Request.Context(), id)
		order, err := svc.Submit(c.Request.Context(), id, store, req)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
				return
			}
			var vErr checkout.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "order processing failed"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func getOrderHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "fetching order failed"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
