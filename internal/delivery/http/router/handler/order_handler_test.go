package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/usecase"
)

// stubOrderUsecase serves a fixed form, or the no-open-form error when nil.
type stubOrderUsecase struct {
	form *usecase.OrderForm
}

func (s *stubOrderUsecase) Open(context.Context, string) (*usecase.OrderForm, error) {
	return s.form, nil
}

func (s *stubOrderUsecase) Form(context.Context) (*usecase.OrderForm, error) {
	if s.form == nil {
		return nil, domainerrors.ErrNoOpenOrderForm
	}

	return s.form, nil
}

func (s *stubOrderUsecase) SetQuantity(context.Context, int) (*usecase.OrderForm, error) {
	return s.form, nil
}

func (s *stubOrderUsecase) CaptureLocation(context.Context) (*usecase.OrderForm, error) {
	return s.form, nil
}

func (s *stubOrderUsecase) Submit(context.Context, usecase.SubmitOrderInput) (*usecase.OrderReceipt, error) {
	return nil, domainerrors.ErrNoOpenOrderForm
}

func (s *stubOrderUsecase) Cancel(context.Context) error { return nil }

type stubContactUsecase struct{}

func (stubContactUsecase) Link() string        { return "https://wa.me/201006273308" }
func (stubContactUsecase) QR() ([]byte, error) { return []byte{0x89, 'P', 'N', 'G'}, nil }

func newTestOrderHandler(form *usecase.OrderForm) *OrderHandler {
	return NewOrderHandler(OrderHandlerParams{
		OrderUC:   &stubOrderUsecase{form: form},
		ContactUC: stubContactUsecase{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func getFormContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/order", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOrderHandler_GetForm_NoOpenFormIsIdle(t *testing.T) {
	h := newTestOrderHandler(nil)
	c, rec := getFormContext(t)

	require.NoError(t, h.GetForm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestOrderHandler_GetForm_ReturnsOpenForm(t *testing.T) {
	h := newTestOrderHandler(&usecase.OrderForm{
		ProductID: "p1",
		Quantity:  2,
		State:     usecase.FormOpen,
	})
	c, rec := getFormContext(t)

	require.NoError(t, h.GetForm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"open"`)
	assert.Contains(t, rec.Body.String(), `"productId":"p1"`)
}
