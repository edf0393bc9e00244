package catalog

import "context"

// Repository exposes read access to the product table.
type Repository interface {
	All(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
}

type staticRepository struct {
	products []Product
}

// NewRepository returns a repository backed by the static catalog.
func NewRepository() Repository {
	return &staticRepository{products: products}
}

func (r *staticRepository) All(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *staticRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			prod := p
			return &prod, nil
		}
	}
	return nil, nil
}
