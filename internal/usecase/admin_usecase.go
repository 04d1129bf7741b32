package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// ProductInput carries the editable product fields for create and update.
type ProductInput struct {
	Name          string   `json:"name" validate:"required"`
	NameEn        string   `json:"nameEn"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	Category      string   `json:"category" validate:"required"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Available     bool     `json:"available"`
	Featured      bool     `json:"featured"`
	Bestseller    bool     `json:"bestseller"`
	Discount      *int     `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews       *int     `json:"reviews" validate:"omitempty,gte=0"`
}

// Statistics is the back-office dashboard summary, recomputed on request.
// Revenue counts delivered orders only.
type Statistics struct {
	TotalProducts     int     `json:"totalProducts"`
	AvailableProducts int     `json:"availableProducts"`
	TotalOrders       int     `json:"totalOrders"`
	PendingOrders     int     `json:"pendingOrders"`
	DeliveredOrders   int     `json:"deliveredOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// AdminUsecase is the back-office: operator session, product and order
// management, and the dashboard statistics.
type AdminUsecase interface {
	// Login checks the credential and marks the session active.
	Login(ctx context.Context, username, password string) error

	// Logout clears the session flag.
	Logout(ctx context.Context)

	// LoggedIn reports whether the operator session is active.
	LoggedIn(ctx context.Context) bool

	// ChangePassword verifies the current password before storing the new
	// one. The username stays fixed.
	ChangePassword(ctx context.Context, current, updated string) error

	// Products lists the whole catalog, unavailable products included.
	Products(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct stores a new product.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites the product's editable fields.
	UpdateProduct(ctx context.Context, id string, input ProductInput) error

	// DeleteProduct removes the product.
	DeleteProduct(ctx context.Context, id string) error

	// Orders lists every stored order.
	Orders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves the order between pending and delivered.
	// Both directions are allowed.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error

	// DeleteOrder removes the order.
	DeleteOrder(ctx context.Context, id string) error

	// Statistics recomputes the dashboard summary from current data.
	Statistics(ctx context.Context) (*Statistics, error)
}
