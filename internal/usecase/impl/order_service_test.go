package impl

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *fakeOrderRepo
	notifier  *fakeNotifier
	locator   *fakeLocator
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	notifier := &fakeNotifier{}
	locator := &fakeLocator{point: orb.Point{31.2357, 30.0444}}
	catalog := &fakeCatalog{products: []*entity.Product{
		{ID: "p1", Name: "بانادول إكسترا", Price: 50, Category: entity.CategoryPainkillers, Available: true},
		{ID: "p2", Name: "فيكس", Price: 30, Category: entity.CategoryCold, Available: false},
	}}

	return orderServiceFixtures{
		service:   NewOrderService(orderRepo, catalog, fakeMessenger{}, locator, notifier, discardLogger()),
		orderRepo: orderRepo,
		notifier:  notifier,
		locator:   locator,
	}
}

func validInput() usecase.SubmitOrderInput {
	return usecase.SubmitOrderInput{
		CustomerName:  "Sara",
		CustomerPhone: "01012345678",
		Address:       "12 Tahrir St",
	}
}

func TestOrderService_Open_SnapshotsPrice(t *testing.T) {
	fx := createTestOrderService(t)

	form, err := fx.service.Open(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", form.ProductID)
	assert.InDelta(t, 50, form.UnitPrice, 1e-9)
	assert.Equal(t, 1, form.Quantity)
	assert.Equal(t, usecase.FormOpen, form.State)
}

func TestOrderService_Open_UnavailableProduct(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Open(context.Background(), "p2")
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
}

func TestOrderService_SetQuantity_ClampsToBounds(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)

	form, err := fx.service.SetQuantity(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, form.Quantity)

	form, err = fx.service.SetQuantity(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, 99, form.Quantity)

	form, err = fx.service.SetQuantity(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, form.Quantity)
	assert.InDelta(t, 150, form.Total, 1e-9)
}

func TestOrderService_SetQuantity_NoOpenForm(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.SetQuantity(context.Background(), 2)
	assert.ErrorIs(t, err, domainerrors.ErrNoOpenOrderForm)
}

func TestOrderService_Submit_PhoneValidation(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"too short", "0101234567"},
		{"too long", "010123456789"},
		{"non numeric", "0101234567a"},
		{"leading plus", "+1234567890"},
		{"leading minus", "-1234567890"},
		{"decimal point", "123456789.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			_, err := fx.service.Open(ctx, "p1")
			require.NoError(t, err)

			input := validInput()
			input.CustomerPhone = tt.phone
			_, err = fx.service.Submit(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
			assert.Empty(t, fx.orderRepo.created)
		})
	}
}

func TestOrderService_Submit_RequiredFields(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)

	input := validInput()
	input.CustomerName = "   "
	_, err = fx.service.Submit(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_Submit_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)
	_, err = fx.service.SetQuantity(ctx, 3)
	require.NoError(t, err)

	receipt, err := fx.service.Submit(ctx, validInput())
	require.NoError(t, err)

	require.NotNil(t, receipt.Order)
	assert.Equal(t, "Sara", receipt.Order.CustomerName)
	assert.Equal(t, "01012345678", receipt.Order.CustomerPhone)
	assert.InDelta(t, 150, receipt.Order.TotalPrice, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, receipt.Order.Status)
	assert.Equal(t, "المسكنات", receipt.Order.ProductCategory)
	assert.Contains(t, receipt.Order.WhatsAppMessage, "طلب جديد من صيدلية هشام")
	assert.Contains(t, receipt.Order.WhatsAppMessage, "Sara")
	assert.Contains(t, receipt.Order.WhatsAppMessage, "12 Tahrir St")
	assert.Contains(t, receipt.WhatsAppLink, "wa://order?")
	assert.Equal(t, usecase.FormSucceeded, receipt.State)

	// The form is consumed by a successful submission.
	_, err = fx.service.Form(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoOpenOrderForm)
}

func TestOrderService_Submit_StoreFailureKeepsFormOpen(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.createErr = assert.AnError

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)

	receipt, err := fx.service.Submit(ctx, validInput())
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domainerrors.ErrOrderSaveFailed)

	// The form survives the failure so the customer can retry, and no chat
	// handoff happened for the unsaved order.
	form, err := fx.service.Form(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.FormFailed, form.State)
	assert.Contains(t, fx.notifier.messages, "تعذر حفظ الطلب في لوحة التحكم")
}

func TestOrderService_CaptureLocation_AttachesMapLink(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)

	form, err := fx.service.CaptureLocation(ctx)
	require.NoError(t, err)
	require.NotNil(t, form.Location)
	assert.Equal(t, "https://maps.google.com/?q=30.0444,31.2357", *form.Location)
}

func TestOrderService_CaptureLocation_FailureLeavesFormUsable(t *testing.T) {
	tests := []struct {
		name    string
		locErr  error
		wantErr error
	}{
		{"denied", service.ErrLocationDenied, domainerrors.ErrLocationDenied},
		{"unavailable", service.ErrLocationUnavailable, domainerrors.ErrLocationUnavailable},
		{"timeout", service.ErrLocationTimeout, domainerrors.ErrLocationTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.locator.err = tt.locErr

			_, err := fx.service.Open(ctx, "p1")
			require.NoError(t, err)

			_, err = fx.service.CaptureLocation(ctx)
			assert.ErrorIs(t, err, tt.wantErr)

			// The form is still open and submittable without a location.
			receipt, err := fx.service.Submit(ctx, validInput())
			require.NoError(t, err)
			assert.Empty(t, receipt.Order.Location)
		})
	}
}

func TestOrderService_Cancel(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	_, err := fx.service.Open(ctx, "p1")
	require.NoError(t, err)
	require.NoError(t, fx.service.Cancel(ctx))

	_, err = fx.service.Form(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNoOpenOrderForm)
}
