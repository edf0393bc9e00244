package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")

// Service defines the business logic for catalog browsing.
type Service interface {
	ListProducts(ctx context.Context, filter Filter) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context, filter Filter) ([]Product, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Product, 0, len(all))
	for _, p := range all {
		if filter.Category != "" && filter.Category != "all" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	}

	return filtered, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.ListProducts(ctx, Filter{Category: category})
}
