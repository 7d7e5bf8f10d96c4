package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrNoPendingAttempt = errors.New("no checkout attempt awaiting a credential")

// SubmitRequest is the user-initiated submit input.

type SubmitRequest struct {
	Instrument    entities.Instrument
	Payer         entities.Payer
	Address       entities.Address
	ShippingQuote entities.ShippingQuote
}

// SubmitResult reports where the attempt landed. Card submissions stop at
// AwaitingCredential; PIX resolves within the same call and carries the QR
// payload in Resolution.

type SubmitResult struct {
	State      entities.CheckoutState
	OrderID    string
	Resolution *entities.PaymentResolution
}

// ICheckoutUseCase is the order submission coordinator.

type ICheckoutUseCase interface {
	Submit(ctx context.Context, sessionID string, req SubmitRequest) (SubmitResult, error)
	SubmitCardForm(ctx context.Context, sessionID string, form interfaces.CardForm) (entities.PaymentResolution, error)
	Cancel(ctx context.Context, sessionID string) error
	State(sessionID string) SubmitResult
	GetOrder(ctx context.Context, orderID string) (entities.Order, []entities.PaymentAttempt, error)
}

// checkoutAttempt is the per-session state machine instance. One instance is
// active per checkout session; the session mutex serializes every transition,
// which keeps two concurrent submissions for the same cart impossible.

type checkoutAttempt struct {
	mu sync.Mutex

	state          entities.CheckoutState
	idempotencyKey string
	order          entities.Order
	instrument     entities.Instrument
	mode           entities.PurchaseMode
	frequencyDays  int
	payer          entities.Payer
	handle         *WidgetHandle
	resolution     *entities.PaymentResolution
}

type CheckoutUseCase struct {
	cart     ICartUseCase
	orders   interfaces.IOrderRepository
	attempts interfaces.IPaymentAttemptRepository
	gateway  interfaces.IPaymentGateway
	widget   IWidgetAdapter

	mu       sync.Mutex
	sessions map[string]*checkoutAttempt

	now func() time.Time
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(cart ICartUseCase, orders interfaces.IOrderRepository, attempts interfaces.IPaymentAttemptRepository, gateway interfaces.IPaymentGateway, widget IWidgetAdapter) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:     cart,
		orders:   orders,
		attempts: attempts,
		gateway:  gateway,
		widget:   widget,
		sessions: make(map[string]*checkoutAttempt),
		now:      time.Now,
	}
}

func (u *CheckoutUseCase) session(sessionID string) *checkoutAttempt {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[sessionID]
	if !ok {
		s = &checkoutAttempt{state: entities.CheckoutStateIdle}
		u.sessions[sessionID] = s
	}
	return s
}

// peek looks a session up without materializing it, so read paths on unknown
// session ids never grow the session map.
func (u *CheckoutUseCase) peek(sessionID string) *checkoutAttempt {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sessions[sessionID]
}

// IdempotencyKey derives the retry-dedup key from cart contents, the selected
// quote and the session. Unchanged inputs always hash to the same key, so a
// retried submission resolves to the order already created for it.
func IdempotencyKey(cart entities.Cart, shippingQuoteID, sessionID string) string {
	h := sha256.New()
	for _, it := range cart.Items {
		fmt.Fprintf(h, "%s|%d|%s|%d;", it.ProductID, it.Quantity, it.PurchaseMode, it.FrequencyDays)
	}
	fmt.Fprintf(h, "quote=%s;session=%s", shippingQuoteID, sessionID)
	return hex.EncodeToString(h.Sum(nil))
}

func (u *CheckoutUseCase) Submit(ctx context.Context, sessionID string, req SubmitRequest) (SubmitResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SubmitResult{}, NewValidationError("session_id", "must not be empty")
	}

	s := u.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case entities.CheckoutStateAwaitingCredential, entities.CheckoutStateSubmittingPayment,
		entities.CheckoutStateValidatingPreconditions, entities.CheckoutStateCreatingOrder:
		log.Printf("[checkout][usecase] submit rejected, attempt in flight session_id=%s state=%s", sessionID, s.state)
		return SubmitResult{}, ErrAttemptInFlight
	}

	log.Printf("[checkout][usecase] submit start session_id=%s instrument=%s", sessionID, req.Instrument)
	s.state = entities.CheckoutStateValidatingPreconditions
	s.resolution = nil

	cart, err := u.cart.Get(ctx, sessionID)
	if err != nil {
		s.state = entities.CheckoutStateIdle
		return SubmitResult{}, err
	}

	if err := validatePreconditions(cart, req); err != nil {
		log.Printf("[checkout][usecase] precondition failed session_id=%s err=%v", sessionID, err)
		s.state = entities.CheckoutStateIdle
		return SubmitResult{}, err
	}

	s.instrument = req.Instrument
	s.mode = cart.Mode()
	s.frequencyDays = cart.Items[0].FrequencyDays
	s.payer = req.Payer

	key := IdempotencyKey(cart, req.ShippingQuote.ID, sessionID)
	s.idempotencyKey = key
	s.state = entities.CheckoutStateCreatingOrder

	order, err := u.resolveOrder(ctx, sessionID, key, cart, req)
	if err != nil {
		log.Printf("[checkout][usecase] order creation failed session_id=%s err=%v", sessionID, err)
		s.state = entities.CheckoutStateAborted
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrTransientNetwork, err)
	}
	s.order = order
	log.Printf("[checkout][usecase] order ready session_id=%s order_id=%s total=%.2f key=%s", sessionID, order.ID, order.Total, key[:12])

	handle, err := u.widget.Mount(req.Instrument, order.Total, req.Payer.Email)
	if err != nil {
		s.state = entities.CheckoutStateAborted
		return SubmitResult{}, err
	}
	s.handle = handle
	s.state = entities.CheckoutStateAwaitingCredential

	if req.Instrument == entities.InstrumentPix {
		// No upfront credential for PIX: resolve and pay in the same call.
		credential, err := u.widget.RequestCredential(ctx, handle)
		if err != nil {
			s.state = entities.CheckoutStateAborted
			return SubmitResult{}, err
		}
		resolution, err := u.submitPayment(ctx, sessionID, s, credential)
		if err != nil {
			return SubmitResult{State: s.state, OrderID: s.order.ID}, err
		}
		return SubmitResult{State: s.state, OrderID: s.order.ID, Resolution: &resolution}, nil
	}

	log.Printf("[checkout][usecase] awaiting card credential session_id=%s order_id=%s handle_id=%s", sessionID, order.ID, handle.ID)
	return SubmitResult{State: s.state, OrderID: order.ID}, nil
}

// resolveOrder reuses the order created under the same idempotency key, if
// any, and creates one otherwise. Recreating the order on every retry is the
// duplicate-order defect this lookup exists to prevent.
func (u *CheckoutUseCase) resolveOrder(ctx context.Context, sessionID, key string, cart entities.Cart, req SubmitRequest) (entities.Order, error) {
	existing, err := u.orders.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID != "" {
		log.Printf("[checkout][usecase] reusing order session_id=%s order_id=%s", sessionID, existing.ID)
		return existing, nil
	}

	now := u.now().UTC()
	subtotal := cart.Subtotal()
	order := entities.Order{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		IdempotencyKey: key,
		Items:          append([]entities.CartLineItem(nil), cart.Items...),
		Address:        req.Address,
		ShippingQuote:  req.ShippingQuote,
		Subtotal:       subtotal,
		Total:          subtotal + req.ShippingQuote.Price,
		Status:         entities.OrderStatusAwaitingPayment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.orders.Create(ctx, order)
}

func validatePreconditions(cart entities.Cart, req SubmitRequest) error {
	if len(cart.Items) == 0 {
		return NewValidationError("cart", "cart is empty")
	}
	mode := cart.Mode()
	for _, it := range cart.Items {
		if it.PurchaseMode != mode {
			return NewValidationError("cart", "cart mixes purchase modes")
		}
	}
	if strings.TrimSpace(req.ShippingQuote.ID) == "" {
		return NewValidationError("shipping_quote_id", "a shipping quote must be selected")
	}
	if strings.TrimSpace(req.Payer.Email) == "" {
		return NewValidationError("email", "contact email is required")
	}
	switch req.Instrument {
	case entities.InstrumentCard:
	case entities.InstrumentPix:
		if strings.TrimSpace(req.Payer.TaxID) == "" {
			return NewValidationError("tax_id", "payer tax id is required for pix")
		}
		if mode == entities.PurchaseModeSubscription {
			return NewValidationError("instrument", "subscriptions accept card only")
		}
	default:
		return NewValidationError("instrument", "unknown payment instrument")
	}
	if mode == entities.PurchaseModeSubscription && cart.Items[0].FrequencyDays <= 0 {
		return NewValidationError("frequency_days", "subscription frequency is required")
	}
	return nil
}

// SubmitCardForm is the widget credential callback: it tokenizes the card
// form, then drives the attempt through payment submission.
func (u *CheckoutUseCase) SubmitCardForm(ctx context.Context, sessionID string, form interfaces.CardForm) (entities.PaymentResolution, error) {
	s := u.peek(strings.TrimSpace(sessionID))
	if s == nil {
		return entities.PaymentResolution{}, ErrNoPendingAttempt
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != entities.CheckoutStateAwaitingCredential || s.handle == nil {
		return entities.PaymentResolution{}, ErrNoPendingAttempt
	}

	u.widget.SubmitCardForm(ctx, s.handle, form)
	credential, err := u.widget.RequestCredential(ctx, s.handle)
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			u.widget.Unmount(s.handle)
			s.state = entities.CheckoutStateIdle
			s.handle = nil
			return entities.PaymentResolution{}, ErrCancelled
		}
		// Bad card data: stay on the credential step for another try.
		log.Printf("[checkout][usecase] credential error session_id=%s order_id=%s err=%v", sessionID, s.order.ID, err)
		return entities.PaymentResolution{}, err
	}

	return u.submitPayment(ctx, sessionID, s, credential)
}

// submitPayment runs the SubmittingPayment -> Resolved leg. The session lock
// is held by the caller, which enforces exactly one in-flight submission per
// order.
func (u *CheckoutUseCase) submitPayment(ctx context.Context, sessionID string, s *checkoutAttempt, credential entities.PaymentCredential) (entities.PaymentResolution, error) {
	s.state = entities.CheckoutStateSubmittingPayment
	log.Printf("[checkout][usecase] submitting payment session_id=%s order_id=%s instrument=%s mode=%s", sessionID, s.order.ID, s.instrument, s.mode)

	var result interfaces.GatewayResult
	var err error
	switch {
	case s.mode == entities.PurchaseModeSubscription:
		result, err = u.gateway.CreateSubscription(ctx, s.order.ID, s.order.Total, s.frequencyDays, credential, s.payer)
	case s.instrument == entities.InstrumentPix:
		result, err = u.gateway.CreatePixPayment(ctx, s.order.ID, s.order.Total, s.payer)
	default:
		result, err = u.gateway.CreateCardPayment(ctx, s.order.ID, s.order.Total, credential, s.payer)
	}
	if err != nil {
		// Transport-level failure: terminal for the attempt, never
		// auto-retried. The next attempt reuses the idempotency key.
		log.Printf("[checkout][usecase] gateway failed session_id=%s order_id=%s err=%v", sessionID, s.order.ID, err)
		u.widget.Unmount(s.handle)
		s.handle = nil
		s.state = entities.CheckoutStateAborted
		return entities.PaymentResolution{}, fmt.Errorf("%w: %v", ErrTransientNetwork, err)
	}

	u.recordAttempt(ctx, s, result)

	resolution := ResolvePaymentStatus(s.order.ID, result, u.now().UTC())
	u.widget.Unmount(s.handle)
	s.handle = nil
	s.state = entities.CheckoutStateResolved
	s.resolution = &resolution

	switch resolution.Status {
	case entities.OrderStatusPaid:
		if _, err := u.orders.UpdateStatus(ctx, s.order.ID, entities.OrderStatusPaid); err != nil {
			log.Printf("[checkout][usecase] order status update failed order_id=%s err=%v", s.order.ID, err)
		}
		if err := u.cart.Clear(ctx, sessionID); err != nil {
			log.Printf("[checkout][usecase] cart clear failed session_id=%s err=%v", sessionID, err)
		}
		log.Printf("[checkout][usecase] paid session_id=%s order_id=%s", sessionID, s.order.ID)
	case entities.OrderStatusPendingConfirmation:
		// Cart survives until the gateway confirms.
		if _, err := u.orders.UpdateStatus(ctx, s.order.ID, entities.OrderStatusPendingConfirmation); err != nil {
			log.Printf("[checkout][usecase] order status update failed order_id=%s err=%v", s.order.ID, err)
		}
		log.Printf("[checkout][usecase] pending confirmation session_id=%s order_id=%s", sessionID, s.order.ID)
	default:
		// Gateway decline. The order stays awaiting payment server-side so
		// the user can retry with another instrument.
		log.Printf("[checkout][usecase] rejected session_id=%s order_id=%s status_detail=%s", sessionID, s.order.ID, result.StatusDetail)
		return resolution, &PaymentRejectedError{Status: result.Status, StatusDetail: result.StatusDetail}
	}

	return resolution, nil
}

// recordAttempt persists the audit trail. The payment already happened at the
// gateway, so a persistence failure here is logged, not propagated.
func (u *CheckoutUseCase) recordAttempt(ctx context.Context, s *checkoutAttempt, result interfaces.GatewayResult) {
	id := result.ProviderPaymentID
	if id == "" {
		id = uuid.NewString()
	}
	attempt := entities.PaymentAttempt{
		ID:                 id,
		OrderID:            s.order.ID,
		Instrument:         s.instrument,
		Status:             result.Status,
		StatusDetail:       result.StatusDetail,
		QRCode:             result.QRCode,
		QRCodeBase64:       result.QRCodeBase64,
		Date:               u.now().UTC(),
		ProviderPayloadRaw: result.RawPayload,
	}
	if _, err := u.attempts.Create(ctx, attempt); err != nil {
		log.Printf("[checkout][usecase] attempt record failed order_id=%s err=%v", s.order.ID, err)
	}
}

// Cancel unmounts the widget and returns the session to Idle with no side
// effects on the order: it persists server-side in AwaitingPayment and the
// checkout may be resumed later. Cancelling with nothing in flight is a no-op.
func (u *CheckoutUseCase) Cancel(_ context.Context, sessionID string) error {
	s := u.peek(strings.TrimSpace(sessionID))
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != nil {
		u.widget.Unmount(s.handle)
		s.handle = nil
	}
	if s.state != entities.CheckoutStateResolved {
		s.state = entities.CheckoutStateIdle
	}
	log.Printf("[checkout][usecase] cancelled session_id=%s state=%s", sessionID, s.state)
	return nil
}

func (u *CheckoutUseCase) State(sessionID string) SubmitResult {
	s := u.peek(strings.TrimSpace(sessionID))
	if s == nil {
		return SubmitResult{State: entities.CheckoutStateIdle}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return SubmitResult{State: s.state, OrderID: s.order.ID, Resolution: s.resolution}
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, []entities.PaymentAttempt, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if order.ID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}

	attempts, err := u.attempts.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	return order, attempts, nil
}
