package entities

import "time"

// OrderStatus is the domain-level order lifecycle after status resolution.

type OrderStatus string

const (
	OrderStatusAwaitingPayment     OrderStatus = "awaiting_payment"
	OrderStatusPaid                OrderStatus = "paid"
	OrderStatusPendingConfirmation OrderStatus = "pending_confirmation"
	OrderStatusFailed              OrderStatus = "failed"
)

// Order is the checkout order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (idempotency_key-index): idempotency_key
//
// The idempotency key is derived from cart contents + shipping quote +
// session id; retried submissions with an unchanged cart resolve to the same
// order instead of creating a duplicate.
//
// An order is immutable after creation except for Status.

type Order struct {
	ID             string         `json:"id"`
	SessionID      string         `json:"session_id"`
	IdempotencyKey string         `json:"idempotency_key"`
	Items          []CartLineItem `json:"items"`
	Address        Address        `json:"address"`
	ShippingQuote  ShippingQuote  `json:"shipping_quote"`
	Subtotal       float64        `json:"subtotal"`
	Total          float64        `json:"total"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
