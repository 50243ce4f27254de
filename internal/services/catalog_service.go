package services

import (
	"context"
	"strings"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]*models.StoreCategory, error)
	ReplaceCategories(ctx context.Context, categories []models.StoreCategory) ([]*models.StoreCategory, error)
}

type catalogService struct {
	productRepo  interfaces.ProductRepository
	categoryRepo interfaces.CategoryRepository
	logger       *logger.Logger
}

func NewCatalogService(
	productRepo interfaces.ProductRepository,
	categoryRepo interfaces.CategoryRepository,
	logger *logger.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	product := &models.Product{
		ID:          utils.GenerateProductID(),
		Name:        req.Name,
		Slug:        slug,
		Category:    req.Category,
		Price:       *req.Price,
		Currency:    currency,
		Description: req.Description,
		Images:      req.Images,
		Featured:    req.Featured,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

func (s *catalogService) ListProducts(ctx context.Context, category string) ([]*models.Product, error) {
	if category != "" {
		return s.productRepo.ListByCategory(ctx, category)
	}
	return s.productRepo.List(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Images != nil {
		updates["images"] = *req.Images
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}

	if len(updates) == 0 {
		return s.productRepo.GetByID(ctx, id)
	}

	return s.productRepo.Update(ctx, id, updates)
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*models.StoreCategory, error) {
	return s.categoryRepo.ListAll(ctx)
}

// ReplaceCategories sanitizes and swaps the whole list: ids lower-cased,
// entries without an id or any name dropped, display order defaulted to
// list position.
func (s *catalogService) ReplaceCategories(ctx context.Context, categories []models.StoreCategory) ([]*models.StoreCategory, error) {
	cleaned := make([]*models.StoreCategory, 0, len(categories))

	for i, category := range categories {
		category.ID = strings.ToLower(strings.TrimSpace(category.ID))
		category.NameAr = strings.TrimSpace(category.NameAr)
		category.NameEn = strings.TrimSpace(category.NameEn)
		if category.ID == "" || (category.NameAr == "" && category.NameEn == "") {
			continue
		}

		category.Image = strings.TrimSpace(category.Image)
		if category.Image == "" {
			category.Image = "/collections/clothing.svg"
		}
		if category.ProductIDs == nil {
			category.ProductIDs = []string{}
		}
		if category.Order == 0 {
			category.Order = i + 1
		}

		c := category
		cleaned = append(cleaned, &c)
	}

	if err := s.categoryRepo.ReplaceAll(ctx, cleaned); err != nil {
		return nil, err
	}

	s.logger.WithField("count", len(cleaned)).Info("Categories replaced")

	return cleaned, nil
}
