package localstore

import (
	"context"

	"gocloud.dev/blob"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/repository"
)

type preferenceRepository struct {
	bucket *blob.Bucket
}

// NewPreferenceRepository builds the blob-backed shopper preference store.
func NewPreferenceRepository(bucket *blob.Bucket) repository.PreferenceRepository {
	return &preferenceRepository{bucket: bucket}
}

func (r *preferenceRepository) Load(ctx context.Context) (entity.Preferences, error) {
	prefs := entity.DefaultPreferences()

	found, err := readJSON(ctx, r.bucket, preferencesKey, &prefs)
	if err != nil {
		return entity.DefaultPreferences(), err
	}
	if !found {
		return entity.DefaultPreferences(), nil
	}

	if prefs.Language != entity.LanguageArabic && prefs.Language != entity.LanguageEnglish {
		prefs.Language = entity.LanguageArabic
	}
	if prefs.Cart == nil {
		prefs.Cart = []entity.CartLine{}
	}
	if prefs.Favorites == nil {
		prefs.Favorites = []string{}
	}

	return prefs, nil
}

func (r *preferenceRepository) Save(ctx context.Context, prefs entity.Preferences) error {
	return writeJSON(ctx, r.bucket, preferencesKey, prefs)
}
