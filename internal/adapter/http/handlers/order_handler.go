package handlers

import (
	"errors"
	"net/http"

	response "pata_amiga/internal/adapter/http/dto/response"
	"pata_amiga/internal/usecase"
	"pata_amiga/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the confirmation screen lookup.

type OrderHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewOrderHandler(uc usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, attempts, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order, attempts))
}
