package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Product, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]*models.StoreCategory, error)

	// ReplaceAll swaps the whole category list in one write; the admin UI
	// edits categories as a single document set.
	ReplaceAll(ctx context.Context, categories []*models.StoreCategory) error
}
