package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/usecase"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	prefRepo *fakePreferenceRepo
	notifier *fakeNotifier
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	prefRepo := newFakePreferenceRepo()
	notifier := &fakeNotifier{}
	catalog := &fakeCatalog{products: []*entity.Product{
		{ID: "p1", Name: "بانادول", Price: 28, Image: "img1", Available: true},
		{ID: "p2", Name: "أدفيل", Price: 42, Image: "img2", Available: true},
		{ID: "p3", Name: "فيكس", Price: 30, Available: false},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return cartServiceFixtures{
		service:  NewCartService(prefRepo, catalog, notifier, logger),
		prefRepo: prefRepo,
		notifier: notifier,
	}
}

func TestCartService_Add_MergesSameProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 1)
	require.NoError(t, err)

	view, err := fx.service.Add(ctx, "p1", 2)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.Equal(t, 3, view.Count)
	assert.InDelta(t, 84, view.Total, 1e-9)
}

func TestCartService_Add_SnapshotsProductFields(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	view, err := fx.service.Add(ctx, "p1", 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, "بانادول", view.Lines[0].Name)
	assert.InDelta(t, 28, view.Lines[0].Price, 1e-9)
	assert.Equal(t, "img1", view.Lines[0].Image)
}

func TestCartService_Add_UnavailableProduct(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Add(context.Background(), "p3", 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.Add(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 2)
	require.NoError(t, err)

	view, err := fx.service.UpdateQuantity(ctx, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	// Negative quantities behave like zero.
	_, err = fx.service.Add(ctx, "p1", 1)
	require.NoError(t, err)
	view, err = fx.service.UpdateQuantity(ctx, "p1", -5)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_UpdateQuantity_SetsAbsoluteValue(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 2)
	require.NoError(t, err)

	view, err := fx.service.UpdateQuantity(ctx, "p1", 7)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 7, view.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 2)
	require.NoError(t, err)
	savesBefore := fx.prefRepo.saves

	view, err := fx.service.UpdateQuantity(ctx, "ghost", 5)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, savesBefore, fx.prefRepo.saves)
}

func TestCartService_Remove(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 1)
	require.NoError(t, err)
	_, err = fx.service.Add(ctx, "p2", 1)
	require.NoError(t, err)

	view, err := fx.service.Remove(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "p2", view.Lines[0].ProductID)
}

func TestCartService_Clear_EmptyCartSucceeds(t *testing.T) {
	fx := createTestCartService(t)

	view, err := fx.service.Clear(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
	assert.Contains(t, fx.notifier.messages, "تم إفراغ السلة")
}

func TestCartService_ToggleFavorite_Involution(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	favored, err := fx.service.ToggleFavorite(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, favored)

	favorites, err := fx.service.Favorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, favorites)

	favored, err = fx.service.ToggleFavorite(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, favored)

	favorites, err = fx.service.Favorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestCartService_ToggleDarkModeAndLanguage(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	darkMode, err := fx.service.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, darkMode)

	lang, err := fx.service.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.LanguageEnglish, lang)

	darkMode, lang2, err := fx.service.Settings(ctx)
	require.NoError(t, err)
	assert.True(t, darkMode)
	assert.Equal(t, entity.LanguageEnglish, lang2)
}

func TestCartService_MutationsPersistSynchronously(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, "p1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.prefRepo.saves)
	require.Len(t, fx.prefRepo.prefs.Cart, 1)
	assert.Equal(t, "p1", fx.prefRepo.prefs.Cart[0].ProductID)
}
