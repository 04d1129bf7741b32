package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogService_SeedFallbackWithoutRemoteStore(t *testing.T) {
	svc := NewCatalogService(nil, discardLogger())

	products, err := svc.Browse(context.Background(), usecase.BrowseQuery{})
	require.NoError(t, err)
	assert.Len(t, products, 16)
}

func TestCatalogService_SnapshotReplacesWholeMirror(t *testing.T) {
	repo := &fakeProductRepo{snapshots: []repository.ProductSnapshot{
		{Products: []*entity.Product{
			{ID: "a", Name: "أ", Available: true},
			{ID: "b", Name: "ب", Available: true},
		}},
		{Products: []*entity.Product{
			{ID: "c", Name: "ج", Available: true},
		}},
	}}
	svc := NewCatalogService(repo, discardLogger())

	require.NoError(t, svc.Run(context.Background()))

	products, err := svc.Browse(context.Background(), usecase.BrowseQuery{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "c", products[0].ID)
}

func TestCatalogService_SubscriptionErrorClearsMirror(t *testing.T) {
	repo := &fakeProductRepo{snapshots: []repository.ProductSnapshot{
		{Products: []*entity.Product{{ID: "a", Name: "أ", Available: true}}},
		{Err: assert.AnError},
	}}
	svc := NewCatalogService(repo, discardLogger())

	require.NoError(t, svc.Run(context.Background()))

	// Stale data must not survive a failed push.
	products, err := svc.Browse(context.Background(), usecase.BrowseQuery{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_ProductLookup(t *testing.T) {
	svc := NewCatalogService(nil, discardLogger())

	product, err := svc.Product(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "بانادول إكسترا", product.Name)

	_, err = svc.Product(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_BrowseInvalidCategory(t *testing.T) {
	svc := NewCatalogService(nil, discardLogger())

	_, err := svc.Browse(context.Background(), usecase.BrowseQuery{Category: "toys"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCategory)
}

func TestCatalogService_ConcurrentNameSortedBrowse(t *testing.T) {
	svc := NewCatalogService(nil, discardLogger())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				products, err := svc.Browse(context.Background(), usecase.BrowseQuery{
					Sort:     usecase.SortByName,
					Language: entity.LanguageArabic,
				})
				assert.NoError(t, err)
				assert.NotEmpty(t, products)
			}
		}()
	}
	wg.Wait()
}

func TestCatalogService_CategoriesAllFirstLocalized(t *testing.T) {
	svc := NewCatalogService(nil, discardLogger())

	views := svc.Categories(entity.LanguageArabic)
	require.Len(t, views, 8)
	assert.Equal(t, entity.CategoryAll, views[0].ID)
	assert.Equal(t, "جميع المنتجات", views[0].Label)

	views = svc.Categories(entity.LanguageEnglish)
	assert.Equal(t, "All Products", views[0].Label)
	assert.Equal(t, "Painkillers", views[1].Label)
}
