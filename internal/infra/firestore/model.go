package firestoredb

import (
	"time"

	"pharmacy/internal/domain/entity"
)

type productDoc struct {
	Name          string    `firestore:"name"`
	NameEn        string    `firestore:"nameEn"`
	Price         float64   `firestore:"price"`
	OriginalPrice *float64  `firestore:"originalPrice,omitempty"`
	Category      string    `firestore:"category"`
	Description   string    `firestore:"description"`
	Image         string    `firestore:"image"`
	Available     bool      `firestore:"available"`
	Featured      bool      `firestore:"featured"`
	Bestseller    bool      `firestore:"bestseller"`
	Discount      *int      `firestore:"discount,omitempty"`
	Rating        *float64  `firestore:"rating,omitempty"`
	Reviews       *int      `firestore:"reviews,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt"`
}

func (d *productDoc) toEntity(id string) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          d.Name,
		NameEn:        d.NameEn,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Category:      entity.Category(d.Category),
		Description:   d.Description,
		Image:         d.Image,
		Available:     d.Available,
		Featured:      d.Featured,
		Bestseller:    d.Bestseller,
		Discount:      d.Discount,
		Rating:        d.Rating,
		Reviews:       d.Reviews,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func productDocFromEntity(product *entity.Product) *productDoc {
	return &productDoc{
		Name:          product.Name,
		NameEn:        product.NameEn,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Category:      string(product.Category),
		Description:   product.Description,
		Image:         product.Image,
		Available:     product.Available,
		Featured:      product.Featured,
		Bestseller:    product.Bestseller,
		Discount:      product.Discount,
		Rating:        product.Rating,
		Reviews:       product.Reviews,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

type orderDoc struct {
	CustomerName    string    `firestore:"customerName"`
	CustomerPhone   string    `firestore:"customerPhone"`
	ProductID       string    `firestore:"productId"`
	ProductName     string    `firestore:"productName"`
	ProductCategory string    `firestore:"productCategory"`
	Quantity        int       `firestore:"quantity"`
	UnitPrice       float64   `firestore:"unitPrice"`
	TotalPrice      float64   `firestore:"totalPrice"`
	Address         string    `firestore:"address"`
	Location        *string   `firestore:"location"`
	WhatsAppMessage string    `firestore:"whatsappMessage"`
	Status          string    `firestore:"status"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

func (d *orderDoc) toEntity(id string) *entity.Order {
	location := ""
	if d.Location != nil {
		location = *d.Location
	}

	return &entity.Order{
		ID:              id,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		ProductCategory: d.ProductCategory,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
		TotalPrice:      d.TotalPrice,
		Address:         d.Address,
		Location:        location,
		WhatsAppMessage: d.WhatsAppMessage,
		Status:          entity.OrderStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func orderDocFromEntity(order *entity.Order) *orderDoc {
	// Absent locations are stored as an explicit null.
	var location *string
	if order.Location != "" {
		location = &order.Location
	}

	return &orderDoc{
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		ProductID:       order.ProductID,
		ProductName:     order.ProductName,
		ProductCategory: order.ProductCategory,
		Quantity:        order.Quantity,
		UnitPrice:       order.UnitPrice,
		TotalPrice:      order.TotalPrice,
		Address:         order.Address,
		Location:        location,
		WhatsAppMessage: order.WhatsAppMessage,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
