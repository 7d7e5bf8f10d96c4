package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "pata_amiga/internal/adapter/http/dto/request"
	response "pata_amiga/internal/adapter/http/dto/response"
	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase"
	"pata_amiga/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for the session cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	cart, err := h.usecase.Get(c.Request.Context(), sessionID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.CartAddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	item := entities.CartLineItem{
		ProductID:     payload.ProductID,
		Name:          payload.Name,
		UnitPrice:     payload.UnitPrice,
		Quantity:      payload.Quantity,
		PurchaseMode:  entities.PurchaseMode(payload.PurchaseMode),
		FrequencyDays: payload.FrequencyDays,
	}

	cart, err := h.usecase.Add(c.Request.Context(), sessionID, item)
	if err != nil {
		log.Printf("[cart][handler] add failed session_id=%s product_id=%s err=%v", sessionID, payload.ProductID, err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	sessionID := c.Param("session_id")
	productID := c.Param("product_id")

	var payload request.CartSetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.SetQuantity(c.Request.Context(), sessionID, productID, payload.Quantity)
	if err != nil {
		log.Printf("[cart][handler] set-quantity failed session_id=%s product_id=%s qty=%s err=%v", sessionID, productID, strconv.Itoa(payload.Quantity), err)
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	productID := c.Param("product_id")

	cart, err := h.usecase.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMixedMode):
		return pkg.NewDomainErrorSimple("MIXED_PURCHASE_MODE", "Cart cannot mix one-time and subscription items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidCartSessionID), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
