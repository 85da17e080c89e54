package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// DefaultTopPopularLimit is how many products the popularity ranking
// returns when the caller does not ask for a specific count.
const DefaultTopPopularLimit = 5

// CatalogService handles business logic for the product catalog, including
// the derived views over products and orders.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its id.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory returns products with an exact category match.
func (s *CatalogService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// TopPopular returns the products with the highest total ordered quantity
// across all orders, most popular first. A non-positive limit falls back to
// DefaultTopPopularLimit.
func (s *CatalogService) TopPopular(limit int) ([]models.PopularProduct, error) {
	if limit <= 0 {
		limit = DefaultTopPopularLimit
	}
	return s.repo.TopPopular(limit)
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// DeleteProduct deletes a product by its id and returns the removed record.
func (s *CatalogService) DeleteProduct(id uint) (*models.Product, error) {
	return s.repo.Delete(id)
}
