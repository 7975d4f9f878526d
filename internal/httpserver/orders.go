package httpserver

import (
	"errors"
	"net/http"

	"carameche/internal/domain"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerName string `json:"customerName"`
}

// checkoutHandler submits the session cart as an order and clears the cart
// only after the order is persisted.
func checkoutHandler(orders OrderService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customerName required"})
			return
		}

		session := sessionID(c)
		cart, err := carts.Get(c.Request.Context(), session)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}

		order, err := orders.Submit(c.Request.Context(), req.CustomerName, cart)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrCustomerName):
				c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrCustomerName.Error()})
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptyCart.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "order store unavailable"})
			}
			return
		}

		if err := carts.Clear(c.Request.Context(), session); err != nil {
			// The order is already persisted; an uncleared cart is the
			// lesser failure.
			c.JSON(http.StatusCreated, order)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := c.Query("customer")
		if customer == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customer query parameter required"})
			return
		}

		list, err := orders.ListByCustomer(c.Request.Context(), customer)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "order store unavailable"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}
