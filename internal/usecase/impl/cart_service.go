package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
	"pharmacy/internal/usecase"
)

type cartService struct {
	prefRepo repository.PreferenceRepository
	catalog  usecase.CatalogUsecase
	notifier service.Notifier
	logger   *slog.Logger

	// Serializes read-modify-write cycles on the preference record.
	mu sync.Mutex
}

// NewCartService creates the cart and preference manager.
func NewCartService(
	prefRepo repository.PreferenceRepository,
	catalog usecase.CatalogUsecase,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		prefRepo: prefRepo,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

func buildCartView(lines []entity.CartLine) *usecase.CartView {
	view := &usecase.CartView{Lines: lines}
	if view.Lines == nil {
		view.Lines = []entity.CartLine{}
	}
	for _, line := range lines {
		view.Count += line.Quantity
		view.Total += line.Subtotal()
	}

	return view
}

func (s *cartService) View(ctx context.Context) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	return buildCartView(prefs.Cart), nil
}

func (s *cartService) Add(ctx context.Context, productID string, quantity int) (*usecase.CartView, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, domainerrors.ErrProductUnavailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	merged := false
	for i := range prefs.Cart {
		if prefs.Cart[i].ProductID == productID {
			prefs.Cart[i].Quantity += quantity
			merged = true

			break
		}
	}
	if !merged {
		prefs.Cart = append(prefs.Cart, entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "save preferences")
	}

	s.notifier.Notify(service.NotifySuccess, fmt.Sprintf("تم إضافة %s إلى السلة", product.Name))

	return buildCartView(prefs.Cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	for i := range prefs.Cart {
		if prefs.Cart[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			prefs.Cart = append(prefs.Cart[:i], prefs.Cart[i+1:]...)
		} else {
			prefs.Cart[i].Quantity = quantity
		}

		if err := s.prefRepo.Save(ctx, prefs); err != nil {
			return nil, errors.Wrap(err, "save preferences")
		}

		return buildCartView(prefs.Cart), nil
	}

	// Unknown product identifiers leave the cart untouched.
	return buildCartView(prefs.Cart), nil
}

func (s *cartService) Remove(ctx context.Context, productID string) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	kept := prefs.Cart[:0]
	for _, line := range prefs.Cart {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	prefs.Cart = kept

	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "save preferences")
	}

	return buildCartView(prefs.Cart), nil
}

func (s *cartService) Clear(ctx context.Context) (*usecase.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}

	prefs.Cart = []entity.CartLine{}
	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, "save preferences")
	}

	s.notifier.Notify(service.NotifySuccess, "تم إفراغ السلة")

	return buildCartView(prefs.Cart), nil
}

func (s *cartService) ToggleFavorite(ctx context.Context, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "load preferences")
	}

	favored := true
	kept := prefs.Favorites[:0]
	for _, id := range prefs.Favorites {
		if id == productID {
			favored = false

			continue
		}
		kept = append(kept, id)
	}
	prefs.Favorites = kept
	if favored {
		prefs.Favorites = append(prefs.Favorites, productID)
	}

	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return false, errors.Wrap(err, "save preferences")
	}

	if favored {
		s.notifier.Notify(service.NotifySuccess, "تم الإضافة إلى المفضلة")
	} else {
		s.notifier.Notify(service.NotifyInfo, "تمت الإزالة من المفضلة")
	}

	return favored, nil
}

func (s *cartService) Favorites(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load preferences")
	}
	if prefs.Favorites == nil {
		return []string{}, nil
	}

	return prefs.Favorites, nil
}

func (s *cartService) ToggleDarkMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return false, errors.Wrap(err, "load preferences")
	}

	prefs.DarkMode = !prefs.DarkMode
	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return false, errors.Wrap(err, "save preferences")
	}

	return prefs.DarkMode, nil
}

func (s *cartService) ToggleLanguage(ctx context.Context) (entity.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return "", errors.Wrap(err, "load preferences")
	}

	prefs.Language = prefs.Language.Toggle()
	if err := s.prefRepo.Save(ctx, prefs); err != nil {
		return "", errors.Wrap(err, "save preferences")
	}

	return prefs.Language, nil
}

func (s *cartService) Settings(ctx context.Context) (bool, entity.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.prefRepo.Load(ctx)
	if err != nil {
		return false, "", errors.Wrap(err, "load preferences")
	}

	return prefs.DarkMode, prefs.Language, nil
}
