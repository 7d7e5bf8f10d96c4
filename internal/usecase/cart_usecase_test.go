package usecase

import (
	"context"
	"errors"
	"testing"

	"pata_amiga/internal/domain/entities"
	mock_interfaces "pata_amiga/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func oneTimeItem(productID string, price float64, qty int) entities.CartLineItem {
	return entities.CartLineItem{
		ProductID:    productID,
		Name:         "Ração Premium",
		UnitPrice:    price,
		Quantity:     qty,
		PurchaseMode: entities.PurchaseModeOneTime,
	}
}

func subscriptionItem(productID string, price float64, qty, frequencyDays int) entities.CartLineItem {
	return entities.CartLineItem{
		ProductID:     productID,
		Name:          "Ração Assinatura",
		UnitPrice:     price,
		Quantity:      qty,
		PurchaseMode:  entities.PurchaseModeSubscription,
		FrequencyDays: frequencyDays,
	}
}

func TestCartUseCase_Add_Validations(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		_, err := uc.Add(context.Background(), "  ", oneTimeItem("p-1", 10, 1))
		if !errors.Is(err, ErrInvalidCartSessionID) {
			t.Fatalf("expected ErrInvalidCartSessionID, got %v", err)
		}
	})

	t.Run("empty product id", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		_, err := uc.Add(context.Background(), "sess-1", oneTimeItem("  ", 10, 1))
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("quantity below one", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		_, err := uc.Add(context.Background(), "sess-1", oneTimeItem("p-1", 10, 0))
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("unknown purchase mode", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		item := oneTimeItem("p-1", 10, 1)
		item.PurchaseMode = "leasing"
		_, err := uc.Add(context.Background(), "sess-1", item)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("subscription without frequency", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		_, err := uc.Add(context.Background(), "sess-1", subscriptionItem("p-1", 10, 1, 0))
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})
}

func TestCartUseCase_Add(t *testing.T) {
	t.Run("same product increments and keeps the price snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Cart{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		if _, err := uc.Add(context.Background(), "sess-1", oneTimeItem("p-1", 10, 1)); err != nil {
			t.Fatalf("first add: %v", err)
		}
		// Catalog price changed between adds; the snapshot must win.
		cart, err := uc.Add(context.Background(), "sess-1", oneTimeItem("p-1", 12.5, 2))
		if err != nil {
			t.Fatalf("second add: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(cart.Items))
		}
		if cart.Items[0].Quantity != 3 {
			t.Fatalf("expected quantity 3, got %d", cart.Items[0].Quantity)
		}
		if cart.Items[0].UnitPrice != 10 {
			t.Fatalf("expected snapshotted price 10, got %.2f", cart.Items[0].UnitPrice)
		}
	})

	t.Run("mixed mode rejected and cart unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Cart{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := uc.Add(context.Background(), "sess-1", oneTimeItem("p-1", 10, 1)); err != nil {
			t.Fatalf("first add: %v", err)
		}
		_, err := uc.Add(context.Background(), "sess-1", subscriptionItem("p-2", 20, 1, 30))
		if !errors.Is(err, ErrMixedMode) {
			t.Fatalf("expected ErrMixedMode, got %v", err)
		}

		cart, err := uc.Get(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].ProductID != "p-1" {
			t.Fatalf("expected cart untouched by the rejected add, got %+v", cart.Items)
		}
	})

	t.Run("hydrates from the repository exactly once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		saved := entities.Cart{SessionID: "sess-1", Items: []entities.CartLineItem{oneTimeItem("p-1", 10, 2)}}
		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(saved, nil).Times(1)

		for i := 0; i < 3; i++ {
			cart, err := uc.Get(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("get %d: %v", i, err)
			}
			if len(cart.Items) != 1 {
				t.Fatalf("get %d: expected hydrated cart, got %+v", i, cart.Items)
			}
		}
	})

	t.Run("hydrate failure propagates and nothing is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Cart{}, errors.New("dynamo down"))

		_, err := uc.Add(context.Background(), "sess-1", oneTimeItem("p-1", 10, 1))
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected hydrate error, got %v", err)
		}
	})
}

func TestCartUseCase_SetQuantity(t *testing.T) {
	t.Run("quantity below one removes the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		saved := entities.Cart{SessionID: "sess-1", Items: []entities.CartLineItem{oneTimeItem("p-1", 10, 2), oneTimeItem("p-2", 5, 1)}}
		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(saved, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.SetQuantity(context.Background(), "sess-1", "p-1", 0)
		if err != nil {
			t.Fatalf("set quantity: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].ProductID != "p-2" {
			t.Fatalf("expected p-1 removed, got %+v", cart.Items)
		}
	})

	t.Run("updates an existing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		saved := entities.Cart{SessionID: "sess-1", Items: []entities.CartLineItem{oneTimeItem("p-1", 10, 2)}}
		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(saved, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		cart, err := uc.SetQuantity(context.Background(), "sess-1", "p-1", 5)
		if err != nil {
			t.Fatalf("set quantity: %v", err)
		}
		if cart.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "sess-1").Return(entities.Cart{}, nil)

		_, err := uc.SetQuantity(context.Background(), "sess-1", "ghost", 2)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})
}

func TestCartUseCase_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	uc := NewCartUseCase(repo)

	saved := entities.Cart{SessionID: "sess-1", Items: []entities.CartLineItem{oneTimeItem("p-1", 10, 2)}}
	repo.EXPECT().Get(gomock.Any(), "sess-1").Return(saved, nil).Times(1)
	repo.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

	if err := uc.Clear(context.Background(), "sess-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	cart, err := uc.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", cart.Items)
	}
}

func TestCartUseCase_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	uc := NewCartUseCase(repo)

	saved := entities.Cart{SessionID: "sess-1", Items: []entities.CartLineItem{
		oneTimeItem("p-1", 10, 2),
		oneTimeItem("p-2", 5.5, 3),
	}}
	repo.EXPECT().Get(gomock.Any(), "sess-1").Return(saved, nil).Times(1)

	subtotal, err := uc.Subtotal(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("subtotal: %v", err)
	}
	if subtotal != 36.5 {
		t.Fatalf("expected subtotal 36.5, got %.2f", subtotal)
	}

	count, err := uc.ItemCount(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("item count: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 units, got %d", count)
	}
}
