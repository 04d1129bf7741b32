package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"pharmacy/config"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
	"pharmacy/internal/usecase"
)

type adminService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	credRepo    repository.CredentialRepository
	hasher      service.PasswordHasher
	validate    *validator.Validate
	logger      *slog.Logger

	defaultUsername string
	defaultPassword string

	mu       sync.Mutex
	loggedIn bool
}

// NewAdminService creates the back-office. The configured default credential
// applies until the operator changes the password, after which the hashed
// credential in the local store wins.
func NewAdminService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	credRepo repository.CredentialRepository,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		credRepo:        credRepo,
		hasher:          hasher,
		validate:        validator.New(),
		logger:          logger,
		defaultUsername: cfg.Admin.Username,
		defaultPassword: cfg.Admin.Password,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) error {
	stored, err := s.credRepo.Load(ctx)
	if err != nil {
		s.logger.Error("load credential failed", slog.Any("error", err))

		return domainerrors.ErrInternalError
	}

	ok := false
	if stored != nil {
		ok = username == stored.Username && s.hasher.Check(password, stored.PasswordHash)
	} else {
		ok = username == s.defaultUsername && password == s.defaultPassword
	}

	if !ok {
		return domainerrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.loggedIn = true
	s.mu.Unlock()

	s.logger.Info("operator logged in", slog.String("username", username))

	return nil
}

func (s *adminService) Logout(_ context.Context) {
	s.mu.Lock()
	s.loggedIn = false
	s.mu.Unlock()
}

func (s *adminService) LoggedIn(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loggedIn
}

func (s *adminService) ChangePassword(ctx context.Context, current, updated string) error {
	stored, err := s.credRepo.Load(ctx)
	if err != nil {
		s.logger.Error("load credential failed", slog.Any("error", err))

		return domainerrors.ErrInternalError
	}

	username := s.defaultUsername
	currentOK := current == s.defaultPassword
	if stored != nil {
		username = stored.Username
		currentOK = s.hasher.Check(current, stored.PasswordHash)
	}
	if !currentOK {
		return domainerrors.ErrWrongCurrentPassword
	}

	hash, err := s.hasher.Hash(updated)
	if err != nil {
		s.logger.Error("hash password failed", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	cred := &entity.Credential{Username: username, PasswordHash: hash}
	if err := s.credRepo.Save(ctx, cred); err != nil {
		s.logger.Error("save credential failed", slog.Any("error", err))

		return domainerrors.ErrInternalError
	}

	s.logger.Info("operator password changed")

	return nil
}

func (s *adminService) Products(ctx context.Context) ([]*entity.Product, error) {
	if s.productRepo == nil {
		return nil, domainerrors.ErrRemoteStoreUnavailable
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	return products, nil
}

func (s *adminService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if s.productRepo == nil {
		return nil, domainerrors.ErrRemoteStoreUnavailable
	}

	product, err := s.productFromInput(input)
	if err != nil {
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	s.logger.Info("product created", slog.String("id", created.ID), slog.String("name", created.Name))

	return created, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id string, input usecase.ProductInput) error {
	if s.productRepo == nil {
		return domainerrors.ErrRemoteStoreUnavailable
	}

	product, err := s.productFromInput(input)
	if err != nil {
		return err
	}
	product.ID = id

	if err := s.productRepo.Update(ctx, product); err != nil {
		return errors.Wrap(err, "update product")
	}

	s.logger.Info("product updated", slog.String("id", id))

	return nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if s.productRepo == nil {
		return domainerrors.ErrRemoteStoreUnavailable
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete product")
	}

	s.logger.Info("product deleted", slog.String("id", id))

	return nil
}

func (s *adminService) Orders(ctx context.Context) ([]*entity.Order, error) {
	if s.orderRepo == nil {
		return nil, domainerrors.ErrRemoteStoreUnavailable
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	return orders, nil
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if s.orderRepo == nil {
		return domainerrors.ErrRemoteStoreUnavailable
	}
	if !status.Valid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "update order status")
	}

	s.logger.Info("order status updated", slog.String("id", id), slog.String("status", string(status)))

	return nil
}

func (s *adminService) DeleteOrder(ctx context.Context, id string) error {
	if s.orderRepo == nil {
		return domainerrors.ErrRemoteStoreUnavailable
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete order")
	}

	s.logger.Info("order deleted", slog.String("id", id))

	return nil
}

// Statistics recomputes the dashboard from current collections on every
// call; nothing is cached between requests.
func (s *adminService) Statistics(ctx context.Context) (*usecase.Statistics, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecase.Statistics{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, p := range products {
		if p.Available {
			stats.AvailableProducts++
		}
	}
	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusDelivered:
			stats.DeliveredOrders++
			stats.TotalRevenue += o.TotalPrice
		}
	}

	return stats, nil
}

func (s *adminService) productFromInput(input usecase.ProductInput) (*entity.Product, error) {
	input.Name = strings.TrimSpace(input.Name)

	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	category := entity.Category(input.Category)
	if !category.Valid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	now := time.Now()

	return &entity.Product{
		Name:          input.Name,
		NameEn:        strings.TrimSpace(input.NameEn),
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      category,
		Description:   input.Description,
		Image:         input.Image,
		Available:     input.Available,
		Featured:      input.Featured,
		Bestseller:    input.Bestseller,
		Discount:      input.Discount,
		Rating:        input.Rating,
		Reviews:       input.Reviews,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
