package repositories

import (
	"fmt"
	"sort"
	"sync"

	"storefront/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products  map[uint]models.Product
	lineItems []models.OrderProduct
	nextID    uint
	mu        sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// RecordLineItem feeds the popularity ranking; tests and the mock order
// repository use it in place of the order_products table.
func (r *MockProductRepository) RecordLineItem(item models.OrderProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lineItems = append(r.lineItems, item)
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its id.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// GetByCategory returns all products with an exact category match.
func (r *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// TopPopular ranks products by summed line-item quantity, descending,
// ties broken by ascending product id.
func (r *MockProductRepository) TopPopular(limit int) ([]models.PopularProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[uint]int64)
	for _, item := range r.lineItems {
		totals[item.ProductID] += int64(item.Quantity)
	}

	ranked := make([]models.PopularProduct, 0, len(totals))
	for productID, total := range totals {
		product, ok := r.products[productID]
		if !ok {
			continue
		}
		ranked = append(ranked, models.PopularProduct{
			ID:            product.ID,
			Name:          product.Name,
			Price:         product.Price,
			Category:      product.Category,
			TotalQuantity: total,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalQuantity != ranked[j].TotalQuantity {
			return ranked[i].TotalQuantity > ranked[j].TotalQuantity
		}
		return ranked[i].ID < ranked[j].ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Create adds a new product, assigning the next id.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its id and returns the removed record.
func (r *MockProductRepository) Delete(id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrNotFound)
	}
	delete(r.products, id)
	return &product, nil
}
