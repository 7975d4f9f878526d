package httpserver

import (
	"errors"
	"net/http"

	"carameche/internal/domain"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Entries      []domain.CartEntry `json:"entries"`
	ItemCount    int                `json:"itemCount"`
	TotalCents   int64              `json:"totalCents"`
	LimitReached bool               `json:"limitReached"`
}

func toCartResponse(c domain.Cart, limit bool) cartResponse {
	entries := c.Entries
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	return cartResponse{
		Entries:      entries,
		ItemCount:    c.ItemCount(),
		TotalCents:   c.TotalCents(),
		LimitReached: limit,
	}
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, false))
	}
}

type addItemRequest struct {
	CardID   string `json:"cardId"`
	Quantity *int   `json:"quantity"`
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CardID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cardId required"})
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		cart, limit, err := svc.Add(c.Request.Context(), sessionID(c), req.CardID, quantity)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, limit))
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}

		cart, limit, err := svc.Update(c.Request.Context(), sessionID(c), c.Param("cardId"), req.Quantity)
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, limit))
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Remove(c.Request.Context(), sessionID(c), c.Param("cardId"))
		if err != nil {
			cartError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCartResponse(cart, false))
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), sessionID(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(domain.Cart{}, false))
	}
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCard):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown card"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "cart unavailable"})
	}
}
