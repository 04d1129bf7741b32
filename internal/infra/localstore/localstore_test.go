package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"

	"pharmacy/internal/domain/entity"
)

func testBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return bucket
}

func TestPreferenceRepository_DefaultsWhenMissing(t *testing.T) {
	repo := NewPreferenceRepository(testBucket(t))

	prefs, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.LanguageArabic, prefs.Language)
	assert.False(t, prefs.DarkMode)
	assert.Empty(t, prefs.Cart)
	assert.Empty(t, prefs.Favorites)
}

func TestPreferenceRepository_RoundTrip(t *testing.T) {
	repo := NewPreferenceRepository(testBucket(t))
	ctx := context.Background()

	prefs := entity.Preferences{
		Cart: []entity.CartLine{
			{ProductID: "1", Name: "بانادول", Price: 28, Quantity: 2, Image: "img"},
		},
		Favorites: []string{"1", "5"},
		DarkMode:  true,
		Language:  entity.LanguageEnglish,
	}
	require.NoError(t, repo.Save(ctx, prefs))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestPreferenceRepository_NormalizesCorruptRecord(t *testing.T) {
	bucket := testBucket(t)
	ctx := context.Background()

	raw := []byte(`{"cart":null,"favorites":null,"darkMode":false,"language":"fr"}`)
	require.NoError(t, bucket.WriteAll(ctx, "pharmacy-store.json", raw, nil))

	repo := NewPreferenceRepository(bucket)
	prefs, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.LanguageArabic, prefs.Language)
	assert.NotNil(t, prefs.Cart)
	assert.NotNil(t, prefs.Favorites)
}

func TestPosterRepository_MissingRecordIsNil(t *testing.T) {
	repo := NewPosterRepository(testBucket(t))

	poster, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, poster)
}

func TestPosterRepository_SaveLoadDelete(t *testing.T) {
	repo := NewPosterRepository(testBucket(t))
	ctx := context.Background()

	poster := &entity.Poster{
		URL:        "https://cdn.example/poster.png",
		Filename:   "summer.png",
		UploadDate: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
		Size:       1024,
		Hidden:     true,
	}
	require.NoError(t, repo.Save(ctx, poster))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, poster, loaded)

	require.NoError(t, repo.Delete(ctx))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx))
}

func TestCredentialRepository_SaveThenLoad(t *testing.T) {
	repo := NewCredentialRepository(testBucket(t))
	ctx := context.Background()

	cred, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)

	require.NoError(t, repo.Save(ctx, &entity.Credential{Username: "admin", PasswordHash: "$2a$10$x"}))

	cred, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "admin", cred.Username)
	assert.Equal(t, "$2a$10$x", cred.PasswordHash)
}
