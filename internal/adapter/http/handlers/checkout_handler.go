package handlers

import (
	"errors"
	"log"
	"net/http"

	request "pata_amiga/internal/adapter/http/dto/request"
	response "pata_amiga/internal/adapter/http/dto/response"
	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase"
	"pata_amiga/internal/usecase/interfaces"
	"pata_amiga/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler drives the order submission coordinator over HTTP.
//
// The card endpoint is the widget credential callback; everything else maps
// one-to-one onto coordinator operations.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.CheckoutSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	req := usecase.SubmitRequest{
		Instrument: entities.Instrument(payload.Instrument),
		Payer: entities.Payer{
			Email:     payload.Payer.Email,
			FirstName: payload.Payer.FirstName,
			LastName:  payload.Payer.LastName,
			TaxID:     payload.Payer.TaxID,
		},
		Address: entities.Address{
			FirstName:  payload.ShippingAddress.FirstName,
			LastName:   payload.ShippingAddress.LastName,
			PostalCode: payload.ShippingAddress.PostalCode,
			Street:     payload.ShippingAddress.Street,
			Number:     payload.ShippingAddress.Number,
			Complement: payload.ShippingAddress.Complement,
			District:   payload.ShippingAddress.District,
			City:       payload.ShippingAddress.City,
			RegionCode: payload.ShippingAddress.RegionCode,
		},
		ShippingQuote: entities.ShippingQuote{
			ID:       payload.ShippingQuote.ID,
			Label:    payload.ShippingQuote.Label,
			Price:    payload.ShippingQuote.Price,
			Delivery: payload.ShippingQuote.Delivery,
		},
	}

	result, err := h.usecase.Submit(c.Request.Context(), sessionID, req)
	if err != nil {
		log.Printf("[checkout][handler] submit failed session_id=%s err=%v", sessionID, err)
		respondCheckoutError(c, err)
		return
	}
	log.Printf("[checkout][handler] submit success session_id=%s state=%s order_id=%s", sessionID, result.State, result.OrderID)
	c.JSON(http.StatusOK, response.FromSubmitResult(result))
}

func (h *CheckoutHandler) SubmitCardForm(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.CheckoutCardFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	form := interfaces.CardForm{
		CardNumber:      payload.CardNumber,
		ExpirationMonth: payload.ExpirationMonth,
		ExpirationYear:  payload.ExpirationYear,
		SecurityCode:    payload.SecurityCode,
		CardholderName:  payload.CardholderName,
		TaxID:           payload.TaxID,
		Installments:    payload.Installments,
		IssuerID:        payload.IssuerID,
		PaymentMethodID: payload.PaymentMethodID,
	}

	resolution, err := h.usecase.SubmitCardForm(c.Request.Context(), sessionID, form)
	if err != nil {
		log.Printf("[checkout][handler] card form failed session_id=%s err=%v", sessionID, err)
		respondCheckoutError(c, err)
		return
	}
	log.Printf("[checkout][handler] card form success session_id=%s order_id=%s status=%s", sessionID, resolution.OrderID, resolution.Status)
	c.JSON(http.StatusOK, response.FromResolution(resolution))
}

func (h *CheckoutHandler) Cancel(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.usecase.Cancel(c.Request.Context(), sessionID); err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmitResult(h.usecase.State(sessionID)))
}

func (h *CheckoutHandler) GetState(c *gin.Context) {
	sessionID := c.Param("session_id")
	c.JSON(http.StatusOK, response.FromSubmitResult(h.usecase.State(sessionID)))
}

// respondCheckoutError writes the error response for any coordinator
// operation. A gateway decline carries the status detail so the user can
// switch instruments, whichever endpoint it surfaced on.
func respondCheckoutError(c *gin.Context, err error) {
	var rejected *usecase.PaymentRejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusPaymentRequired, gin.H{
			"code":          "PAYMENT_REJECTED",
			"message":       "Payment was rejected by the gateway",
			"status":        rejected.Status,
			"status_detail": rejected.StatusDetail,
		})
		return
	}
	appErr := mapCheckoutError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCheckoutError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validation.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttemptInFlight):
		return pkg.NewDomainErrorSimple("ATTEMPT_IN_FLIGHT", "A checkout attempt is already in flight", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransientNetwork):
		return pkg.NewDomainErrorSimple("TRANSIENT_NETWORK_ERROR", "Upstream call failed, retry is safe", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrCredential):
		return pkg.NewDomainErrorSimple("CREDENTIAL_ERROR", "Card data was refused by the tokenizer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCancelled):
		return pkg.NewDomainErrorSimple("ATTEMPT_CANCELLED", "The checkout attempt was cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingAttempt):
		return pkg.NewDomainErrorSimple("NO_PENDING_ATTEMPT", "No checkout attempt is awaiting a credential", http.StatusConflict)
	default:
		return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
	}
}
