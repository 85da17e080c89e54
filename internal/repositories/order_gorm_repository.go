package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its id.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// Create creates a new order in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order for user %d: %w", order.UserID, err)
	}
	return nil
}

// Delete removes an order and its line items in one transaction and returns
// the removed order record.
func (r *GORMOrderRepository) Delete(id uint) (*models.Order, error) {
	order, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderProduct{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return order, nil
}

// CurrentActiveByUser returns the most recent active order for the user,
// picking the highest id when several exist. No active order is a normal
// outcome and yields (nil, nil).
func (r *GORMOrderRepository) CurrentActiveByUser(userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.OrderStatusActive).
		Order("id DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current order for user %d: %w", userID, err)
	}
	return &order, nil
}

// CompletedByUser returns all completed orders for the user.
func (r *GORMOrderRepository) CompletedByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Find(&orders, "user_id = ? AND status = ?", userID, models.OrderStatusComplete).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get completed orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// AddProduct inserts a new line item. Referential integrity is left to the
// storage layer; violations surface as wrapped persistence errors.
func (r *GORMOrderRepository) AddProduct(item *models.OrderProduct) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add product %d to order %d: %w", item.ProductID, item.OrderID, err)
	}
	return nil
}
