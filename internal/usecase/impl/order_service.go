package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
	"pharmacy/internal/usecase"
)

// orderForm is the single mutable form behind the usecase's snapshots.
type orderForm struct {
	product  *entity.Product
	price    float64
	quantity int
	location string
	state    usecase.OrderFormState
}

type orderService struct {
	orderRepo repository.OrderRepository
	catalog   usecase.CatalogUsecase
	messenger service.Messenger
	locator   service.Geolocator
	notifier  service.Notifier
	validate  *validator.Validate
	logger    *slog.Logger
	now       func() time.Time

	mu   sync.Mutex
	form *orderForm
}

// NewOrderService creates the direct-order workflow. locator may be nil when
// geolocation is not configured; orderRepo may be nil when no remote store
// is configured, which makes every submission fail.
func NewOrderService(
	orderRepo repository.OrderRepository,
	catalog usecase.CatalogUsecase,
	messenger service.Messenger,
	locator service.Geolocator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		catalog:   catalog,
		messenger: messenger,
		locator:   locator,
		notifier:  notifier,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

func clampQuantity(q int) int {
	if q < usecase.MinOrderQuantity {
		return usecase.MinOrderQuantity
	}
	if q > usecase.MaxOrderQuantity {
		return usecase.MaxOrderQuantity
	}

	return q
}

func (s *orderService) snapshot() *usecase.OrderForm {
	f := s.form

	var location *string
	if f.location != "" {
		location = &f.location
	}

	return &usecase.OrderForm{
		ProductID:       f.product.ID,
		ProductName:     f.product.Name,
		ProductCategory: f.product.Category,
		UnitPrice:       f.price,
		Quantity:        f.quantity,
		Total:           f.price * float64(f.quantity),
		Location:        location,
		State:           f.state,
	}
}

func (s *orderService) Open(ctx context.Context, productID string) (*usecase.OrderForm, error) {
	product, err := s.catalogProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Price is fixed here; later catalog edits do not reprice the form.
	s.form = &orderForm{
		product:  product,
		price:    product.Price,
		quantity: usecase.MinOrderQuantity,
		state:    usecase.FormOpen,
	}

	return s.snapshot(), nil
}

func (s *orderService) Form(_ context.Context) (*usecase.OrderForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return nil, domainerrors.ErrNoOpenOrderForm
	}

	return s.snapshot(), nil
}

func (s *orderService) SetQuantity(_ context.Context, quantity int) (*usecase.OrderForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return nil, domainerrors.ErrNoOpenOrderForm
	}

	s.form.quantity = clampQuantity(quantity)

	return s.snapshot(), nil
}

func (s *orderService) CaptureLocation(ctx context.Context) (*usecase.OrderForm, error) {
	s.mu.Lock()
	if s.form == nil {
		s.mu.Unlock()

		return nil, domainerrors.ErrNoOpenOrderForm
	}
	s.mu.Unlock()

	if s.locator == nil {
		s.notifier.Notify(service.NotifyError, domainerrors.ErrLocationUnavailable.Message())

		return nil, domainerrors.ErrLocationUnavailable
	}

	point, err := s.locator.CurrentPosition(ctx)
	if err != nil {
		appErr := locationError(err)
		s.notifier.Notify(service.NotifyError, appErr.Message())

		return nil, appErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return nil, domainerrors.ErrNoOpenOrderForm
	}

	s.form.location = mapLink(point.Lat(), point.Lon())
	s.notifier.Notify(service.NotifySuccess, "تم تحديد الموقع بنجاح")

	return s.snapshot(), nil
}

func (s *orderService) Submit(ctx context.Context, input usecase.SubmitOrderInput) (*usecase.OrderReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form == nil {
		return nil, domainerrors.ErrNoOpenOrderForm
	}

	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.Address = strings.TrimSpace(input.Address)

	if err := s.validate.Struct(input); err != nil {
		appErr := validationError(err)
		s.notifier.Notify(service.NotifyError, appErr.Message())

		return nil, appErr
	}

	f := s.form
	f.state = usecase.FormSubmitting

	total := f.price * float64(f.quantity)
	categoryName := f.product.Category.DisplayName(entity.LanguageArabic)
	message := s.buildMessage(input, categoryName, total)

	order := &entity.Order{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		ProductID:       f.product.ID,
		ProductName:     f.product.Name,
		ProductCategory: categoryName,
		UnitPrice:       f.price,
		Quantity:        f.quantity,
		TotalPrice:      total,
		Address:         input.Address,
		Location:        f.location,
		WhatsAppMessage: message,
		Status:          entity.OrderStatusPending,
	}

	if s.orderRepo == nil {
		f.state = usecase.FormFailed
		s.notifier.Notify(service.NotifyError, domainerrors.ErrOrderSaveFailed.Message())

		return nil, domainerrors.ErrOrderSaveFailed
	}

	created, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		// The form stays open so the customer can retry; no chat handoff
		// happens for an unsaved order.
		f.state = usecase.FormFailed
		s.logger.Error("order save failed", slog.Any("error", err))
		s.notifier.Notify(service.NotifyError, domainerrors.ErrOrderSaveFailed.Message())

		return nil, domainerrors.ErrOrderSaveFailed.WithDetails(err.Error())
	}

	s.form = nil
	s.notifier.Notify(service.NotifySuccess, "تم إرسال الطلب بنجاح! سيتم التواصل معك قريباً")

	return &usecase.OrderReceipt{
		Order:        created,
		WhatsAppLink: s.messenger.OrderLink(message),
		State:        usecase.FormSucceeded,
	}, nil
}

func (s *orderService) Cancel(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = nil

	return nil
}

// buildMessage renders the outgoing order summary. Caller holds the lock.
func (s *orderService) buildMessage(input usecase.SubmitOrderInput, categoryName string, total float64) string {
	f := s.form

	var b strings.Builder
	b.WriteString("🏥 *طلب جديد من صيدلية هشام*\n\n")
	fmt.Fprintf(&b, "👤 *العميل:* %s\n", input.CustomerName)
	fmt.Fprintf(&b, "📱 *الهاتف:* %s\n\n", input.CustomerPhone)
	fmt.Fprintf(&b, "💊 *المنتج:* %s\n", f.product.Name)
	fmt.Fprintf(&b, "🏷️ *الفئة:* %s\n", categoryName)
	fmt.Fprintf(&b, "💰 *سعر الوحدة:* %s جنيه\n", formatPrice(f.price))
	fmt.Fprintf(&b, "🔢 *الكمية:* %d\n", f.quantity)
	fmt.Fprintf(&b, "💵 *المجموع:* %s جنيه\n\n", formatPrice(total))
	fmt.Fprintf(&b, "📍 *العنوان:*\n%s\n\n", input.Address)
	if f.location != "" {
		fmt.Fprintf(&b, "🗺️ *الموقع على الخريطة:*\n%s\n\n", f.location)
	}
	b.WriteString("🚚 *ملاحظة:* التوصيل مجاني لجميع الطلبات!\n")
	fmt.Fprintf(&b, "⏰ *وقت الطلب:* %s", s.now().Format("2/1/2006, 15:04:05"))

	return b.String()
}

func (s *orderService) catalogProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, domainerrors.ErrProductUnavailable
	}

	return product, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mapLink(lat, lon float64) string {
	return "https://maps.google.com/?q=" +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lon, 'f', -1, 64)
}

func locationError(err error) *domainerrors.BaseError {
	switch {
	case errors.Is(err, service.ErrLocationDenied):
		return domainerrors.ErrLocationDenied
	case errors.Is(err, service.ErrLocationTimeout):
		return domainerrors.ErrLocationTimeout
	default:
		return domainerrors.ErrLocationUnavailable
	}
}

func validationError(err error) *domainerrors.BaseError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "CustomerPhone" && fe.Tag() != "required" {
				return domainerrors.ErrInvalidPhone
			}
		}
	}

	return domainerrors.ErrValidationFailed
}
