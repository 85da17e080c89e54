package repositories

import "storefront/internal/models"

// OrderRepository defines the interface for order data access, covering the
// order lifecycle and its line items.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Create(order *models.Order) error
	Delete(id uint) (*models.Order, error)

	// CurrentActiveByUser returns the highest-id active order for the user,
	// or (nil, nil) when the user has no active order.
	CurrentActiveByUser(userID uint) (*models.Order, error)
	CompletedByUser(userID uint) ([]models.Order, error)
	AddProduct(item *models.OrderProduct) error
}
