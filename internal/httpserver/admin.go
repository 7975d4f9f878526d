package httpserver

import (
	"errors"
	"net/http"

	"carameche/internal/domain"
	"carameche/internal/service/admin"

	"github.com/gin-gonic/gin"
)

func adminListOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
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

type setStatusRequest struct {
	Status string `json:"status"`
}

func adminSetStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}

		err := orders.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
		case errors.Is(err, domain.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownStatus.Error()})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "order store unavailable"})
		}
	}
}

func adminStatsHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "order store unavailable"})
			return
		}
		c.JSON(http.StatusOK, admin.Compute(list))
	}
}
