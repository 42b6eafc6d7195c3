package api

import (
	"errors"
	"net/http"

	reqdto "order-engine/internal/handler/dto/request"
	resdto "order-engine/internal/handler/dto/response"
	"order-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orderUseCase: orderUseCase}
}

// @Summary Get order
// @Description Get a confirmed order by its order number
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{orderNumber} [get]
func (h *OrderHandler) GetByOrderNumber(c *gin.Context) {
	ord, err := h.orderUseCase.GetByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(ord))
}

// @Summary Find order by confirmation
// @Description Find a confirmed order by confirmation number and lookup pass
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.FindOrderByConfirmationRequest true "Lookup request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/findByConfirmation [post]
func (h *OrderHandler) FindByConfirmation(c *gin.Context) {
	var req reqdto.FindOrderByConfirmationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	ord, err := h.orderUseCase.FindByConfirmation(c.Request.Context(), req.ConfirmationNumber, req.Pass)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrder(ord))
}
