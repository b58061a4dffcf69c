package catalog

import (
	"context"
	"time"

	"gofood/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Browse(ctx context.Context, searchTerm, category string) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Browse returns the products matching the current search term and
// category filter, in catalog order.
func (s *service) Browse(ctx context.Context, searchTerm, category string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Browse"),
	)

	start := time.Now()

	if category == "" {
		category = CategoryAll
	}

	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		log.Error("failed to fetch catalog",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	matched := Filter(products, searchTerm, category)

	log.Debug("browse catalog",
		zap.String("search_term", searchTerm),
		zap.String("category", category),
		zap.Int("matched", len(matched)),
		zap.Duration("duration", time.Since(start)),
	)

	return matched, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *service) GetCategories(ctx context.Context) ([]string, error) {
	return s.repo.GetCategories(ctx)
}
