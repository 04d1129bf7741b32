package entity

import "time"

// OrderStatus is the order's fulfilment state. Only two values exist and
// both transitions between them are allowed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusDelivered
}

// Order is a customer's single-product purchase request. Product fields are
// denormalized from the catalog snapshot taken when the order form was
// opened; after creation the order is owned by the remote store and mutated
// only by the back-office status update.
type Order struct {
	ID              string      // Document identifier assigned by the remote store.
	CustomerName    string      // Non-empty after trimming.
	CustomerPhone   string      // Exactly 11 digits.
	ProductID       string      // Reference into the catalog.
	ProductName     string      // Denormalized product name.
	ProductCategory string      // Denormalized category display name.
	UnitPrice       float64     // Fixed at form-open time.
	Quantity        int         // In [1, 99].
	TotalPrice      float64     // UnitPrice * Quantity.
	Address         string      // Delivery address, non-empty after trimming.
	Location        string      // Optional map link from captured geolocation.
	WhatsAppMessage string      // Rendered outgoing summary message.
	Status          OrderStatus // pending on creation.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
