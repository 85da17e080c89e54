package services

import (
	"encoding/json"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// EventPublisher publishes domain events to a message broker. The RabbitMQ
// client satisfies it; tests substitute a mock.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles business logic for the order ledger: the order
// lifecycle, its line items, and the per-user active/completed queries.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its id.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order, defaulting the status to active when the
// caller leaves it empty, and publishes an order.created event.
func (s *OrderService) CreateOrder(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderStatusActive
	}
	if err := s.orderRepo.Create(order); err != nil {
		return err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
	})
	return nil
}

// DeleteOrder removes an order together with its line items and publishes
// an order.deleted event. Returns the removed order record.
func (s *OrderService) DeleteOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.deleted", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
	})
	return order, nil
}

// CurrentActiveOrder returns the user's most recent active order, or
// (nil, nil) when the user has none. The empty case is a normal outcome.
func (s *OrderService) CurrentActiveOrder(userID uint) (*models.Order, error) {
	return s.orderRepo.CurrentActiveByUser(userID)
}

// CompletedOrders returns all completed orders for the user.
func (s *OrderService) CompletedOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.CompletedByUser(userID)
}

// AddProduct records a line item on an order and publishes an
// order.line_item_added event. Quantity must be a positive integer;
// nothing is persisted otherwise.
func (s *OrderService) AddProduct(orderID, productID uint, quantity int) (*models.OrderProduct, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	item := &models.OrderProduct{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.orderRepo.AddProduct(item); err != nil {
		return nil, err
	}

	s.publishEvent("order.line_item_added", map[string]interface{}{
		"order_id":   item.OrderID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
	return item, nil
}

// publishEvent marshals and publishes an event, logging and moving on if
// the broker is unavailable. Event delivery is best effort; the order
// itself is already persisted.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
