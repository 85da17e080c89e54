package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders     map[uint]models.Order
	lineItems  []models.OrderProduct
	nextID     uint
	nextItemID uint
	mu         sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders:     make(map[uint]models.Order),
		nextID:     1,
		nextItemID: 1,
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns an order by its id.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// Create adds a new order, assigning the next id.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	r.orders[order.ID] = *order
	return nil
}

// Delete removes an order and its line items, returning the removed order.
func (r *MockOrderRepository) Delete(id uint) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, models.ErrNotFound)
	}
	delete(r.orders, id)

	kept := r.lineItems[:0]
	for _, item := range r.lineItems {
		if item.OrderID != id {
			kept = append(kept, item)
		}
	}
	r.lineItems = kept
	return &order, nil
}

// CurrentActiveByUser returns the highest-id active order for the user,
// or (nil, nil) when none exists.
func (r *MockOrderRepository) CurrentActiveByUser(userID uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var current *models.Order
	for id, order := range r.orders {
		if order.UserID != userID || order.Status != models.OrderStatusActive {
			continue
		}
		if current == nil || id > current.ID {
			o := order
			current = &o
		}
	}
	return current, nil
}

// CompletedByUser returns all completed orders for the user.
func (r *MockOrderRepository) CompletedByUser(userID uint) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var completed []models.Order
	for _, order := range r.orders {
		if order.UserID == userID && order.Status == models.OrderStatusComplete {
			completed = append(completed, order)
		}
	}
	return completed, nil
}

// AddProduct inserts a new line item, assigning the next item id.
func (r *MockOrderRepository) AddProduct(item *models.OrderProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[item.OrderID]; !ok {
		return fmt.Errorf("failed to add product %d to order %d: %w", item.ProductID, item.OrderID, models.ErrNotFound)
	}
	item.ID = r.nextItemID
	r.nextItemID++
	r.lineItems = append(r.lineItems, *item)
	return nil
}
