package handlers

import (
	"errors"
	"log"
	"net/http"

	response "pata_amiga/internal/adapter/http/dto/response"
	"pata_amiga/internal/usecase"
	"pata_amiga/internal/usecase/interfaces"
	"pata_amiga/pkg"

	"github.com/gin-gonic/gin"
)

// ShippingHandler resolves postal codes into addresses and shipping quotes.

type ShippingHandler struct {
	usecase usecase.IShippingUseCase
}

func NewShippingHandler(uc usecase.IShippingUseCase) *ShippingHandler {
	return &ShippingHandler{usecase: uc}
}

func (h *ShippingHandler) ResolvePostalCode(c *gin.Context) {
	postalCode := c.Param("postal_code")

	addr, quotes, err := h.usecase.ResolvePostalCode(c.Request.Context(), postalCode)
	if err != nil {
		log.Printf("[shipping][handler] resolve failed postal_code=%s err=%v", postalCode, err)
		if errors.Is(err, interfaces.ErrPostalCodeNotFound) {
			appErr := pkg.NewDomainErrorSimple("POSTAL_CODE_NOT_FOUND", "Postal code not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainErrorSimple("POSTAL_LOOKUP_UNAVAILABLE", "Postal lookup unavailable", http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShipping(addr, quotes))
}
