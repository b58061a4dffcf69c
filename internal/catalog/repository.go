package catalog

import "context"

// Repository supplies the product catalog. The default implementation
// serves the static seed data; callers must not assume the backing
// list ever changes.
type Repository interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}

type seedRepository struct {
	products []Product
}

// NewRepository creates a repository over the built-in seed catalog.
func NewRepository() Repository {
	return &seedRepository{products: seedProducts}
}

func (r *seedRepository) GetProducts(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *seedRepository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *seedRepository) GetCategories(ctx context.Context) ([]string, error) {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out, nil
}
