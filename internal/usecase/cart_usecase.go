package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"pata_amiga/internal/domain/entities"
	"pata_amiga/internal/usecase/interfaces"
)

var (
	ErrInvalidCartSessionID = errors.New("invalid session id")
	ErrInvalidCartItem      = errors.New("invalid cart item")
)

// ICartUseCase is the single entry point for cart state. No other component
// reads or writes cart persistence.

type ICartUseCase interface {
	Get(ctx context.Context, sessionID string) (entities.Cart, error)
	Add(ctx context.Context, sessionID string, item entities.CartLineItem) (entities.Cart, error)
	Remove(ctx context.Context, sessionID, productID string) (entities.Cart, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (entities.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Subtotal(ctx context.Context, sessionID string) (float64, error)
	ItemCount(ctx context.Context, sessionID string) (int, error)
}

// CartUseCase keeps one in-memory cart per session, hydrated once from the
// repository before the first access. Mutations are read-modify-write atomic
// under a single mutex so rapid quantity edits cannot lose updates, and
// nothing is persisted before hydration succeeded (persisting earlier could
// overwrite a saved cart with an empty initial state).

type CartUseCase struct {
	repo interfaces.ICartRepository

	mu       sync.Mutex
	carts    map[string]entities.Cart
	hydrated map[string]bool
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository) *CartUseCase {
	return &CartUseCase{
		repo:     repo,
		carts:    make(map[string]entities.Cart),
		hydrated: make(map[string]bool),
	}
}

// hydrate loads the session cart exactly once. Callers must hold c.mu.
func (c *CartUseCase) hydrate(ctx context.Context, sessionID string) (entities.Cart, error) {
	if c.hydrated[sessionID] {
		return c.carts[sessionID], nil
	}

	cart, err := c.repo.Get(ctx, sessionID)
	if err != nil {
		log.Printf("[cart][usecase] hydrate failed session_id=%s err=%v", sessionID, err)
		return entities.Cart{}, err
	}
	cart.SessionID = sessionID
	c.carts[sessionID] = cart
	c.hydrated[sessionID] = true
	log.Printf("[cart][usecase] hydrated session_id=%s items=%d", sessionID, len(cart.Items))
	return cart, nil
}

func (c *CartUseCase) persist(ctx context.Context, cart entities.Cart) error {
	c.carts[cart.SessionID] = cart
	if err := c.repo.Save(ctx, cart); err != nil {
		log.Printf("[cart][usecase] persist failed session_id=%s err=%v", cart.SessionID, err)
		return err
	}
	return nil
}

func (c *CartUseCase) Get(ctx context.Context, sessionID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidCartSessionID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hydrate(ctx, sessionID)
}

func (c *CartUseCase) Add(ctx context.Context, sessionID string, item entities.CartLineItem) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidCartSessionID
	}
	if strings.TrimSpace(item.ProductID) == "" || item.Quantity < 1 || item.UnitPrice < 0 {
		return entities.Cart{}, ErrInvalidCartItem
	}
	if item.PurchaseMode != entities.PurchaseModeOneTime && item.PurchaseMode != entities.PurchaseModeSubscription {
		return entities.Cart{}, ErrInvalidCartItem
	}
	if item.PurchaseMode == entities.PurchaseModeSubscription && item.FrequencyDays <= 0 {
		return entities.Cart{}, ErrInvalidCartItem
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart, err := c.hydrate(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	if mode := cart.Mode(); mode != "" && mode != item.PurchaseMode {
		log.Printf("[cart][usecase] mixed mode rejected session_id=%s product_id=%s cart_mode=%s item_mode=%s", sessionID, item.ProductID, mode, item.PurchaseMode)
		return entities.Cart{}, ErrMixedMode
	}

	found := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID {
			// Same product and same mode: increment, keep the original
			// price snapshot.
			cart.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, item)
	}

	if err := c.persist(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] add success session_id=%s product_id=%s qty=%d", sessionID, item.ProductID, item.Quantity)
	return cart, nil
}

func (c *CartUseCase) Remove(ctx context.Context, sessionID, productID string) (entities.Cart, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidCartSessionID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart, err := c.hydrate(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	cart.Items = items

	if err := c.persist(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	log.Printf("[cart][usecase] remove success session_id=%s product_id=%s", sessionID, productID)
	return cart, nil
}

func (c *CartUseCase) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		return c.Remove(ctx, sessionID, productID)
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Cart{}, ErrInvalidCartSessionID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart, err := c.hydrate(ctx, sessionID)
	if err != nil {
		return entities.Cart{}, err
	}

	for i, it := range cart.Items {
		if it.ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := c.persist(ctx, cart); err != nil {
				return entities.Cart{}, err
			}
			log.Printf("[cart][usecase] set-quantity success session_id=%s product_id=%s qty=%d", sessionID, productID, quantity)
			return cart, nil
		}
	}
	return entities.Cart{}, ErrInvalidCartItem
}

func (c *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidCartSessionID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.hydrate(ctx, sessionID); err != nil {
		return err
	}

	c.carts[sessionID] = entities.Cart{SessionID: sessionID}
	if err := c.repo.Delete(ctx, sessionID); err != nil {
		log.Printf("[cart][usecase] clear failed session_id=%s err=%v", sessionID, err)
		return err
	}
	log.Printf("[cart][usecase] clear success session_id=%s", sessionID)
	return nil
}

func (c *CartUseCase) Subtotal(ctx context.Context, sessionID string) (float64, error) {
	cart, err := c.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Subtotal(), nil
}

func (c *CartUseCase) ItemCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := c.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}
