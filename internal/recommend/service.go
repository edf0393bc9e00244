// Package recommend produces product suggestions from the catalog.
// The strategies are deliberately simple: last-viewed category affinity
// for browsing, cart category affinity for upsells, and shuffled samples
// for trending and personalized picks.
package recommend

import (
	"context"
	"math/rand"
	"sort"

	"luxe-be/internal/cart"
	"luxe-be/internal/catalog"
)

const (
	defaultSimilarLimit  = 4
	defaultTrendingLimit = 6
)

// Service defines the recommendation strategies.
type Service interface {
	Similar(ctx context.Context, viewedProductIDs []int, limit int) ([]catalog.Product, error)
	CartBased(ctx context.Context, items []cart.Item, limit int) ([]catalog.Product, error)
	Trending(ctx context.Context, limit int) ([]catalog.Product, error)
	Personalized(ctx context.Context, userID string, limit int) ([]catalog.Product, error)
}

type service struct {
	repo    catalog.Repository
	shuffle func(n int, swap func(i, j int))
}

func NewService(repo catalog.Repository) Service {
	return &service{repo: repo, shuffle: rand.Shuffle}
}

// newServiceWithShuffle lets tests pin the shuffle order.
func newServiceWithShuffle(repo catalog.Repository, shuffle func(n int, swap func(i, j int))) Service {
	return &service{repo: repo, shuffle: shuffle}
}

// Similar suggests products from the category of the most recently
// viewed product, in catalog order, excluding everything already viewed.
// An empty history or an unknown last product yields no suggestions.
func (s *service) Similar(ctx context.Context, viewedProductIDs []int, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	if len(viewedProductIDs) == 0 {
		return []catalog.Product{}, nil
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	lastID := viewedProductIDs[len(viewedProductIDs)-1]
	var last *catalog.Product
	for i := range all {
		if all[i].ID == lastID {
			last = &all[i]
			break
		}
	}
	if last == nil {
		return []catalog.Product{}, nil
	}

	viewed := make(map[int]bool, len(viewedProductIDs))
	for _, id := range viewedProductIDs {
		viewed[id] = true
	}

	candidates := make([]catalog.Product, 0, len(all))
	for _, p := range all {
		if p.Category == last.Category && p.ID != last.ID && !viewed[p.ID] {
			candidates = append(candidates, p)
		}
	}

	return clip(candidates, limit), nil
}

// CartBased suggests companions for the current cart contents, priced
// high to low so the upsell leads.
func (s *service) CartBased(ctx context.Context, items []cart.Item, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	if len(items) == 0 {
		return []catalog.Product{}, nil
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	inCart := make(map[int]bool, len(items))
	for _, it := range items {
		inCart[it.ProductID] = true
	}
	categories := make(map[string]bool)
	for _, p := range all {
		if inCart[p.ID] {
			categories[p.Category] = true
		}
	}

	candidates := make([]catalog.Product, 0, len(all))
	for _, p := range all {
		if !inCart[p.ID] && categories[p.Category] {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Price > candidates[j].Price })

	return clip(candidates, limit), nil
}

// Trending returns a shuffled sample of the catalog. Without sales data
// the shuffle stands in for a popularity ranking.
func (s *service) Trending(ctx context.Context, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	s.shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	return clip(all, limit), nil
}

// Personalized returns a shuffled sample of the catalog. Without a
// browsing profile store this stands in for per-user affinity.
func (s *service) Personalized(ctx context.Context, userID string, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	s.shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })

	return clip(all, limit), nil
}

func clip(products []catalog.Product, limit int) []catalog.Product {
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}
