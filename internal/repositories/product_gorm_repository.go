package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its id.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByCategory retrieves all products with an exact category match.
// The comparison is case-sensitive per the column collation.
func (r *GORMProductRepository) GetByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to get products in category %q: %w", category, err)
	}
	return products, nil
}

// TopPopular ranks products by the total line-item quantity summed across
// all orders regardless of status. Ties are broken by ascending product id
// so that the ranking is deterministic.
func (r *GORMProductRepository) TopPopular(limit int) ([]models.PopularProduct, error) {
	var ranked []models.PopularProduct
	err := r.db.
		Table("products").
		Select("products.id, products.name, products.price, products.category, SUM(order_products.quantity) AS total_quantity").
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Group("products.id").
		Order("total_quantity DESC, products.id ASC").
		Limit(limit).
		Scan(&ranked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank popular products: %w", err)
	}
	return ranked, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	return nil
}

// Delete deletes a product by its id and returns the removed record.
func (r *GORMProductRepository) Delete(id uint) (*models.Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return product, nil
}
