package impl

import (
	"context"
	"log/slog"
	"sync"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"
)

type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger

	mu       sync.RWMutex
	products []*entity.Product
}

// NewCatalogService creates the storefront catalog. With no remote store
// it serves the built-in seed catalog; otherwise it starts empty and fills
// on the first push from Run.
func NewCatalogService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	svc := &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}

	if productRepo == nil {
		svc.products = seedCatalog()
		logger.Info("catalog serving built-in seed products", slog.Int("count", len(svc.products)))
	}

	return svc
}

// Run subscribes to the remote collection and mirrors every snapshot
// locally. Each push replaces the whole mirror; a failed push clears it so
// stale data is never served.
func (s *catalogService) Run(ctx context.Context) error {
	if s.productRepo == nil {
		<-ctx.Done()

		return nil
	}

	return s.productRepo.Watch(ctx, func(snap repository.ProductSnapshot) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if snap.Err != nil {
			s.logger.Error("catalog subscription failed, clearing mirror", slog.Any("error", snap.Err))
			s.products = nil

			return
		}

		s.products = snap.Products
		s.logger.Debug("catalog mirror refreshed", slog.Int("count", len(snap.Products)))
	})
}

func (s *catalogService) Browse(_ context.Context, query usecase.BrowseQuery) ([]*entity.Product, error) {
	if query.Category != "" && query.Category != entity.CategoryAll && !query.Category.Valid() {
		return nil, domainerrors.ErrInvalidCategory
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := filterProducts(s.products, query.Category, query.Search)
	sortProducts(matched, query.Sort, query.Language)

	return matched, nil
}

func (s *catalogService) Product(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

func (s *catalogService) Categories(lang entity.Language) []usecase.CategoryView {
	views := make([]usecase.CategoryView, 0, len(entity.Categories())+1)
	views = append(views, usecase.CategoryView{
		ID:    entity.CategoryAll,
		Label: entity.CategoryAll.DisplayName(lang),
	})
	for _, c := range entity.Categories() {
		views = append(views, usecase.CategoryView{ID: c, Label: c.DisplayName(lang)})
	}

	return views
}
