package port

import (
	"context"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

type CatalogRepository interface {
	// ListCategories returns all category names, sorted.
	ListCategories(ctx context.Context) ([]string, error)

	// FilterByCategory returns the meals belonging to a category.
	FilterByCategory(ctx context.Context, category string) ([]domain.MealSummary, error)

	// SearchByName returns the meals matching a free-text query.
	SearchByName(ctx context.Context, query string) ([]domain.MealSummary, error)

	// GetDetails retrieves one meal by ID, returning nil when it does not exist.
	GetDetails(ctx context.Context, id string) (*domain.Meal, error)
}
