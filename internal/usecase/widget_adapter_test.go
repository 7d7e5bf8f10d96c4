package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
	mock_interfaces "pata_amiga/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWidgetAdapter_Mount(t *testing.T) {
	t.Run("unknown instrument", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		_, err := w.Mount("boleto", 50, "tutor@pata.com")
		if !errors.Is(err, ErrInvalidInstrument) {
			t.Fatalf("expected ErrInvalidInstrument, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		_, err := w.Mount(entities.InstrumentCard, 0, "tutor@pata.com")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("pix gets a handle too", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		h, err := w.Mount(entities.InstrumentPix, 59.8, "tutor@pata.com")
		if err != nil {
			t.Fatalf("mount: %v", err)
		}
		if h.ID == "" || h.Instrument != entities.InstrumentPix {
			t.Fatalf("unexpected handle %+v", h)
		}
	})
}

func TestWidgetAdapter_RequestCredential(t *testing.T) {
	t.Run("nil handle", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		_, err := w.RequestCredential(context.Background(), nil)
		if !errors.Is(err, ErrWidgetNotMounted) {
			t.Fatalf("expected ErrWidgetNotMounted, got %v", err)
		}
	})

	t.Run("pix resolves without a card form", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		h, _ := w.Mount(entities.InstrumentPix, 59.8, "tutor@pata.com")

		credential, err := w.RequestCredential(context.Background(), h)
		if err != nil {
			t.Fatalf("request credential: %v", err)
		}
		if credential.Kind != entities.CredentialKindPix {
			t.Fatalf("expected pix credential, got %+v", credential)
		}
	})

	t.Run("card resolves after the form is submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenizer := mock_interfaces.NewMockICardTokenizer(ctrl)
		w := NewWidgetAdapter(tokenizer)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")

		form := interfaces.CardForm{CardNumber: "5031433215406351", Installments: 3, IssuerID: "24", PaymentMethodID: "master"}
		tokenizer.EXPECT().Tokenize(gomock.Any(), form).Return(entities.PaymentCredential{Kind: entities.CredentialKindCard, Token: "tok-1"}, nil)

		w.SubmitCardForm(context.Background(), h, form)
		credential, err := w.RequestCredential(context.Background(), h)
		if err != nil {
			t.Fatalf("request credential: %v", err)
		}
		if credential.Token != "tok-1" {
			t.Fatalf("expected token tok-1, got %+v", credential)
		}
		if credential.Installments != 3 || credential.IssuerID != "24" || credential.PaymentMethodID != "master" {
			t.Fatalf("expected form fields carried over, got %+v", credential)
		}
	})

	t.Run("tokenization failure surfaces as credential error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokenizer := mock_interfaces.NewMockICardTokenizer(ctrl)
		w := NewWidgetAdapter(tokenizer)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")

		tokenizer.EXPECT().Tokenize(gomock.Any(), gomock.Any()).Return(entities.PaymentCredential{}, errors.New("invalid card number"))

		w.SubmitCardForm(context.Background(), h, interfaces.CardForm{CardNumber: "1234"})
		_, err := w.RequestCredential(context.Background(), h)
		if !errors.Is(err, ErrCredential) {
			t.Fatalf("expected ErrCredential, got %v", err)
		}
	})

	t.Run("unmount cancels the pending request", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")

		errCh := make(chan error, 1)
		go func() {
			_, err := w.RequestCredential(context.Background(), h)
			errCh <- err
		}()

		w.Unmount(h)

		select {
		case err := <-errCh:
			if !errors.Is(err, ErrCancelled) {
				t.Fatalf("expected ErrCancelled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("request credential did not resolve after unmount")
		}
	})

	t.Run("context cancellation resolves as cancelled", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := w.RequestCredential(ctx, h)
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("expected ErrCancelled, got %v", err)
		}
	})
}

func TestWidgetAdapter_StaleCallbacks(t *testing.T) {
	t.Run("form on an unmounted handle is dropped before tokenization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// No Tokenize expectation: a call would fail the test.
		tokenizer := mock_interfaces.NewMockICardTokenizer(ctrl)
		w := NewWidgetAdapter(tokenizer)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")

		w.Unmount(h)
		w.SubmitCardForm(context.Background(), h, interfaces.CardForm{CardNumber: "5031433215406351"})
	})

	t.Run("unmount is idempotent", func(t *testing.T) {
		w := NewWidgetAdapter(nil)
		h, _ := w.Mount(entities.InstrumentCard, 120, "tutor@pata.com")
		w.Unmount(h)
		w.Unmount(h)
		w.Unmount(nil)
	})
}
