package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/port"
)

var (
	// ErrCatalogUnavailable is the only error the catalog surface exposes
	// for transport or decode failures. The underlying cause is logged,
	// never propagated into cart or order state.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrSuperseded marks a response that finished after a newer query was
	// issued; its results must be discarded, not displayed.
	ErrSuperseded = errors.New("query superseded")
)

// DefaultCategory is the feed shown before the user picks anything.
const DefaultCategory = "Seafood"

// CatalogService applies the storefront's consumption contract on top of
// the remote catalog: failures degrade to empty results, and stale
// list responses are suppressed via a monotonically increasing query
// token so an old search can never overwrite a newer one.
type CatalogService struct {
	catalog port.CatalogRepository
	latest  atomic.Uint64
}

func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Categories lists all category names. On failure the default category is
// still offered so the storefront stays browsable.
func (s *CatalogService) Categories(ctx context.Context) []string {
	cats, err := s.catalog.ListCategories(ctx)
	if err != nil {
		slog.Warn("list categories failed", "error", err)
		return []string{DefaultCategory}
	}
	return cats
}

// Browse returns the meals in a category.
func (s *CatalogService) Browse(ctx context.Context, category string) ([]domain.MealSummary, error) {
	token := s.latest.Add(1)
	meals, err := s.catalog.FilterByCategory(ctx, category)
	if err != nil {
		slog.Warn("filter by category failed", "category", category, "error", err)
		return nil, ErrCatalogUnavailable
	}
	if s.latest.Load() != token {
		return nil, ErrSuperseded
	}
	return meals, nil
}

// Search returns the meals matching a free-text query.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.MealSummary, error) {
	token := s.latest.Add(1)
	meals, err := s.catalog.SearchByName(ctx, query)
	if err != nil {
		slog.Warn("search failed", "query", query, "error", err)
		return nil, ErrCatalogUnavailable
	}
	if s.latest.Load() != token {
		return nil, ErrSuperseded
	}
	return meals, nil
}

// Details fetches one meal. Returns nil for an unknown ID.
func (s *CatalogService) Details(ctx context.Context, id string) (*domain.Meal, error) {
	meal, err := s.catalog.GetDetails(ctx, id)
	if err != nil {
		slog.Warn("lookup failed", "id", id, "error", err)
		return nil, ErrCatalogUnavailable
	}
	return meal, nil
}
