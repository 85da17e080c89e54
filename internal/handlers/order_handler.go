package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the order ledger.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes, all behind the auth middleware.
// The per-user ledger queries live under /users/:id/orders.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
	orderRoutes.Post("/:id/products", h.HandleAddProduct)

	router.Get("/users/:id/orders/current", h.HandleCurrentOrder)
	router.Get("/users/:id/orders/completed", h.HandleCompletedOrders)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return respondError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its id.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	order, err := h.service.GetOrderByID(uint(id))
	if err != nil {
		return respondError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	UserID uint   `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"omitempty,max=50"`
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	order := &models.Order{
		UserID: req.UserID,
		Status: req.Status,
	}
	if err := h.service.CreateOrder(order); err != nil {
		return respondError(c, err, "Could not create order")
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleDeleteOrder removes an order and returns the removed record.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	order, err := h.service.DeleteOrder(uint(id))
	if err != nil {
		return respondError(c, err, "Could not delete order")
	}
	return c.JSON(order)
}

// AddProductRequest represents the request body for adding a line item.
type AddProductRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required"`
}

// HandleAddProduct records a line item on an order.
func (h *OrderHandler) HandleAddProduct(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing line item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	item, err := h.service.AddProduct(uint(orderID), req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err, "Could not add product to order")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleCurrentOrder returns the user's current active order, or 404 when
// the user has no active order.
func (h *OrderHandler) HandleCurrentOrder(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user id",
		})
	}

	order, err := h.service.CurrentActiveOrder(uint(userID))
	if err != nil {
		return respondError(c, err, "Could not retrieve current order")
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No active order for user",
		})
	}
	return c.JSON(order)
}

// HandleCompletedOrders returns all completed orders for the user.
func (h *OrderHandler) HandleCompletedOrders(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user id",
		})
	}

	orders, err := h.service.CompletedOrders(uint(userID))
	if err != nil {
		return respondError(c, err, "Could not retrieve completed orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}
