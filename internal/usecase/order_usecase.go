package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// Order form quantity bounds.
const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 99
)

// OrderFormState tracks the single in-progress order form.
type OrderFormState string

const (
	FormIdle       OrderFormState = "idle"
	FormOpen       OrderFormState = "open"
	FormSubmitting OrderFormState = "submitting"
	FormSucceeded  OrderFormState = "succeeded"
	FormFailed     OrderFormState = "failed"
)

// OrderForm is the in-progress direct-order form. Unit price is fixed when
// the form opens; later catalog edits do not reprice it.
type OrderForm struct {
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductCategory entity.Category `json:"productCategory"`
	UnitPrice       float64         `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	Total           float64         `json:"total"`
	Location        *string         `json:"location"`
	State           OrderFormState  `json:"state"`
}

// SubmitOrderInput carries the customer fields of the order form.
type SubmitOrderInput struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required,len=11,number"`
	Address       string `json:"address" validate:"required"`
}

// OrderReceipt is the outcome of a successful submission: the stored order
// plus the chat link that continues the conversation. State is always
// FormSucceeded; failures surface as errors instead.
type OrderReceipt struct {
	Order        *entity.Order  `json:"order"`
	WhatsAppLink string         `json:"whatsappLink"`
	State        OrderFormState `json:"state"`
}

// OrderUsecase drives the direct-order workflow. One form is open at a
// time; submission stores the order remotely and only then hands the
// conversation off to chat.
type OrderUsecase interface {
	// Open starts a form for the product, snapshotting its current price.
	// An already open form is replaced.
	Open(ctx context.Context, productID string) (*OrderForm, error)

	// Form returns the current form, or an error when none is open.
	Form(ctx context.Context) (*OrderForm, error)

	// SetQuantity sets the form quantity, clamped into [1, 99].
	SetQuantity(ctx context.Context, quantity int) (*OrderForm, error)

	// CaptureLocation attaches the device position as a map link. Failure
	// leaves the form usable; the error only carries the user message.
	CaptureLocation(ctx context.Context) (*OrderForm, error)

	// Submit validates the customer fields, stores the order and returns the
	// receipt. On a storage failure the form stays open and no chat handoff
	// happens.
	Submit(ctx context.Context, input SubmitOrderInput) (*OrderReceipt, error)

	// Cancel discards the open form, if any.
	Cancel(ctx context.Context) error
}
