package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"luxe-be/internal/logger"
)

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, item Item) ([]Item, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) ([]Item, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) ([]Item, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type service struct {
	repo Repository
}

// NewService creates a new cart service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Cart{Items: items, Summary: summarize(items)}, nil
}

// AddItem adds a product to the session's cart, merging quantity into an
// existing line for the same product.
func (s *service) AddItem(ctx context.Context, sessionID string, item Item) ([]Item, error) {
	if item.ProductID == 0 || item.Name == "" || item.Price == 0 {
		return nil, ErrMissingFields
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.repo.Put(ctx, sessionID, items); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debug("item added to cart",
		zap.String("session_id", sessionID),
		zap.Int("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity),
	)

	return items, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) ([]Item, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.repo.Put(ctx, sessionID, items); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int) ([]Item, error) {
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}

	if err := s.repo.Put(ctx, sessionID, kept); err != nil {
		return nil, err
	}

	return kept, nil
}

func (s *service) ClearCart(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

// summarize computes the advisory cart totals. This preview applies the
// flat 10% tax but no shipping or discounts; those are resolved at
// checkout.
func summarize(items []Item) Summary {
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}

	tax := subtotal.Mul(decimal.NewFromFloat(0.10))
	total := subtotal.Add(tax)

	return Summary{
		Subtotal:  subtotal.Round(2).InexactFloat64(),
		Tax:       tax.Round(2).InexactFloat64(),
		Total:     total.Round(2).InexactFloat64(),
		ItemCount: count,
	}
}
