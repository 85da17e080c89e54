package models

// Product represents a product in the store catalog.
type Product struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category,omitempty" validate:"omitempty,max=100"`
}

// PopularProduct is the read model returned by the popularity ranking:
// a product together with the total quantity ordered across all orders.
type PopularProduct struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category,omitempty"`
	TotalQuantity int64   `json:"total_quantity"`
}
