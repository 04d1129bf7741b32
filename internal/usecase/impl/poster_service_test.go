package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
)

// posterServiceFixtures holds all test dependencies for poster tests.
type posterServiceFixtures struct {
	service    usecase.PosterUsecase
	posterRepo *fakePosterRepo
	uploader   *fakeUploader
}

func createTestPosterService(t *testing.T) posterServiceFixtures {
	t.Helper()

	posterRepo := &fakePosterRepo{}
	uploader := &fakeUploader{result: &service.UploadResult{URL: "https://cdn.example/poster.png", Provider: "imgbb"}}
	svc := NewPosterService(posterRepo, uploader, discardLogger())
	svc.(*posterService).now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}

	return posterServiceFixtures{
		service:    svc,
		posterRepo: posterRepo,
		uploader:   uploader,
	}
}

func TestPosterService_Upload_ReplacesRecord(t *testing.T) {
	fx := createTestPosterService(t)
	ctx := context.Background()

	fx.posterRepo.poster = &entity.Poster{URL: "https://cdn.example/old.png"}

	data := []byte("png-bytes")
	poster, err := fx.service.Upload(ctx, "summer.png", "image/png", data)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/poster.png", poster.URL)
	assert.Equal(t, "summer.png", poster.Filename)
	assert.Equal(t, int64(len(data)), poster.Size)
	assert.Equal(t, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), poster.UploadDate)
	assert.False(t, poster.Hidden)
	assert.Equal(t, poster, fx.posterRepo.poster)
}

func TestPosterService_Upload_ProviderFailure(t *testing.T) {
	fx := createTestPosterService(t)

	fx.uploader.result = nil
	fx.uploader.err = domainerrors.ErrUploadFailed

	_, err := fx.service.Upload(context.Background(), "summer.png", "image/png", []byte("x"))
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
	assert.Nil(t, fx.posterRepo.poster)
}

func TestPosterService_Visible_HidesHiddenPoster(t *testing.T) {
	fx := createTestPosterService(t)
	ctx := context.Background()

	poster, err := fx.service.Visible(ctx)
	require.NoError(t, err)
	assert.Nil(t, poster)

	fx.posterRepo.poster = &entity.Poster{URL: "https://cdn.example/p.png", Hidden: true}
	poster, err = fx.service.Visible(ctx)
	require.NoError(t, err)
	assert.Nil(t, poster)

	// Current still returns the hidden record for the back-office.
	poster, err = fx.service.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, poster)
	assert.True(t, poster.Hidden)
}

func TestPosterService_SetHidden(t *testing.T) {
	fx := createTestPosterService(t)
	ctx := context.Background()

	_, err := fx.service.SetHidden(ctx, true)
	assert.ErrorIs(t, err, domainerrors.ErrPosterNotFound)

	fx.posterRepo.poster = &entity.Poster{URL: "https://cdn.example/p.png"}
	poster, err := fx.service.SetHidden(ctx, true)
	require.NoError(t, err)
	assert.True(t, poster.Hidden)

	visible, err := fx.service.Visible(ctx)
	require.NoError(t, err)
	assert.Nil(t, visible)

	poster, err = fx.service.SetHidden(ctx, false)
	require.NoError(t, err)
	assert.False(t, poster.Hidden)
}

func TestPosterService_Delete_Idempotent(t *testing.T) {
	fx := createTestPosterService(t)
	ctx := context.Background()

	fx.posterRepo.poster = &entity.Poster{URL: "https://cdn.example/p.png"}
	require.NoError(t, fx.service.Delete(ctx))
	assert.Nil(t, fx.posterRepo.poster)

	// Deleting with nothing stored still succeeds.
	require.NoError(t, fx.service.Delete(ctx))
}
