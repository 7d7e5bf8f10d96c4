package response

import (
	"testing"

	"pata_amiga/internal/domain/entities"
)

func TestFromCart(t *testing.T) {
	cart := entities.Cart{
		SessionID: "sess-1",
		Items: []entities.CartLineItem{
			{ProductID: "p-1", Name: "Ração Premium", UnitPrice: 25, Quantity: 2, PurchaseMode: entities.PurchaseModeOneTime},
			{ProductID: "p-2", Name: "Petisco", UnitPrice: 5.5, Quantity: 3, PurchaseMode: entities.PurchaseModeOneTime},
		},
	}

	res := FromCart(cart)
	if res.SessionID != "sess-1" || len(res.Items) != 2 {
		t.Fatalf("unexpected mapped cart: %+v", res)
	}
	if res.Subtotal != 66.5 {
		t.Fatalf("expected subtotal 66.5, got %.2f", res.Subtotal)
	}
	if res.ItemCount != 5 {
		t.Fatalf("expected 5 units, got %d", res.ItemCount)
	}
	if res.Items[0].PurchaseMode != "one_time" {
		t.Fatalf("unexpected purchase mode: %+v", res.Items[0])
	}
}

func TestFromCart_EmptyCartKeepsItemsArray(t *testing.T) {
	res := FromCart(entities.Cart{SessionID: "sess-1"})
	if res.Items == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if res.Subtotal != 0 || res.ItemCount != 0 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}
