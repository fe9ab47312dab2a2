package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"apparel-storefront/internal/domain"
	"apparel-storefront/internal/service/guest"
)

func issueGuestHandler(guests *guest.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"guestId": guests.Issue()})
	}
}

func listProductsHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context(), c.Query("collection"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "listing products failed"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func getProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "fetching product failed"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
