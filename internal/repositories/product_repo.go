package repositories

import "storefront/internal/models"

// ProductRepository defines the interface for product data access,
// including the catalog aggregation queries.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	TopPopular(limit int) ([]models.PopularProduct, error)
	Create(product *models.Product) error
	Delete(id uint) (*models.Product, error)
}
