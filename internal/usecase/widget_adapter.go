package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWidgetNotMounted  = errors.New("widget not mounted")
	ErrInvalidInstrument = errors.New("invalid payment instrument")
)

type credentialResult struct {
	credential entities.PaymentCredential
	err        error
}

// WidgetHandle is one mounted instance of the tokenizing widget, scoped to a
// single checkout attempt. The amount is baked in at mount time: a total
// change requires a full unmount+remount cycle.
//
// The handle owns the pending credential future. Unmounting closes it, so a
// card form that arrives after teardown can never feed a newer attempt.

type WidgetHandle struct {
	ID         string
	Instrument entities.Instrument
	Amount     float64
	PayerEmail string

	mu      sync.Mutex
	pending chan credentialResult
	done    chan struct{}
	closed  bool
}

// IWidgetAdapter normalizes the card tokenizing widget and the PIX
// no-widget flow behind one mount/request/unmount contract.

type IWidgetAdapter interface {
	Mount(instrument entities.Instrument, amount float64, payerEmail string) (*WidgetHandle, error)
	RequestCredential(ctx context.Context, handle *WidgetHandle) (entities.PaymentCredential, error)
	SubmitCardForm(ctx context.Context, handle *WidgetHandle, form interfaces.CardForm)
	Unmount(handle *WidgetHandle)
}

type WidgetAdapter struct {
	tokenizer interfaces.ICardTokenizer
}

var _ IWidgetAdapter = (*WidgetAdapter)(nil)

func NewWidgetAdapter(tokenizer interfaces.ICardTokenizer) *WidgetAdapter {
	return &WidgetAdapter{tokenizer: tokenizer}
}

// Mount initializes the tokenizing widget for Card. PIX has no widget phase
// but still gets a handle so the coordinator tears both down the same way.
func (w *WidgetAdapter) Mount(instrument entities.Instrument, amount float64, payerEmail string) (*WidgetHandle, error) {
	switch instrument {
	case entities.InstrumentCard, entities.InstrumentPix:
	default:
		return nil, ErrInvalidInstrument
	}
	if amount <= 0 {
		return nil, NewValidationError("amount", "must be greater than zero")
	}

	h := &WidgetHandle{
		ID:         uuid.NewString(),
		Instrument: instrument,
		Amount:     amount,
		PayerEmail: strings.TrimSpace(payerEmail),
		pending:    make(chan credentialResult, 1),
		done:       make(chan struct{}),
	}
	log.Printf("[widget][adapter] mount instrument=%s handle_id=%s amount=%.2f", instrument, h.ID, amount)
	return h, nil
}

// RequestCredential resolves the attempt credential.
//
// PIX resolves immediately: the instrument needs no upfront credential. Card
// suspends until SubmitCardForm delivers a token or the handle is unmounted;
// there is deliberately no timeout, the step is user-paced.
func (w *WidgetAdapter) RequestCredential(ctx context.Context, handle *WidgetHandle) (entities.PaymentCredential, error) {
	if handle == nil {
		return entities.PaymentCredential{}, ErrWidgetNotMounted
	}
	if handle.Instrument == entities.InstrumentPix {
		return entities.PaymentCredential{Kind: entities.CredentialKindPix}, nil
	}
	// An already-cancelled request never consumes a queued credential.
	if ctx.Err() != nil {
		return entities.PaymentCredential{}, ErrCancelled
	}

	select {
	case res := <-handle.pending:
		return res.credential, res.err
	case <-handle.done:
		return entities.PaymentCredential{}, ErrCancelled
	case <-ctx.Done():
		return entities.PaymentCredential{}, ErrCancelled
	}
}

// SubmitCardForm is the widget's submit callback edge: it tokenizes the card
// form and resolves the pending credential. A form landing on an unmounted
// or already-resolved handle is dropped, which fences stale callbacks from a
// torn-down widget out of newer attempts.
func (w *WidgetAdapter) SubmitCardForm(ctx context.Context, handle *WidgetHandle, form interfaces.CardForm) {
	if handle == nil || handle.Instrument != entities.InstrumentCard {
		return
	}

	handle.mu.Lock()
	if handle.closed {
		handle.mu.Unlock()
		log.Printf("[widget][adapter] stale card form dropped handle_id=%s", handle.ID)
		return
	}
	handle.mu.Unlock()

	credential, err := w.tokenizer.Tokenize(ctx, form)
	if err != nil {
		log.Printf("[widget][adapter] tokenization failed handle_id=%s err=%v", handle.ID, err)
		err = ErrCredential
	} else {
		credential.Installments = form.Installments
		credential.IssuerID = form.IssuerID
		credential.PaymentMethodID = form.PaymentMethodID
	}

	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.closed {
		log.Printf("[widget][adapter] late tokenization result dropped handle_id=%s", handle.ID)
		return
	}
	select {
	case handle.pending <- credentialResult{credential: credential, err: err}:
	default:
		// A result is already queued; the duplicate submit is ignored.
	}
}

// Unmount tears the widget down. Idempotent; any outstanding
// RequestCredential resolves with ErrCancelled.
func (w *WidgetAdapter) Unmount(handle *WidgetHandle) {
	if handle == nil {
		return
	}
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.closed {
		return
	}
	handle.closed = true
	close(handle.done)
	log.Printf("[widget][adapter] unmount handle_id=%s", handle.ID)
}
