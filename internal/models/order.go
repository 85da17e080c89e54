package models

// Order statuses. The column is free-form in practice; these are the two
// values the ledger queries care about.
const (
	OrderStatusActive   = "active"
	OrderStatusComplete = "complete"
)

// Order represents a customer order. A user may accumulate many orders;
// the ledger treats the highest-id active one as current.
type Order struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"required,max=50"`
}

// OrderProduct is a line item joining an order to a product with a quantity.
type OrderProduct struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
