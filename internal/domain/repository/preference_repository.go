package repository

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// PreferenceRepository persists the shopper's on-device record (cart,
// favorites, dark mode, language). Load returns defaults when nothing was
// stored yet; Save is synchronous and atomic per call.
type PreferenceRepository interface {
	Load(ctx context.Context) (entity.Preferences, error)
	Save(ctx context.Context, prefs entity.Preferences) error
}

// PosterRepository persists the single marketing poster's metadata and
// visibility flag as the second on-device record.
type PosterRepository interface {
	// Load returns (nil, nil) when no poster is stored.
	Load(ctx context.Context) (*entity.Poster, error)
	Save(ctx context.Context, poster *entity.Poster) error
	Delete(ctx context.Context) error
}

// CredentialRepository persists the back-office operator credential.
// Load returns (nil, nil) when no credential was stored yet, letting the
// caller fall back to the configured default.
type CredentialRepository interface {
	Load(ctx context.Context) (*entity.Credential, error)
	Save(ctx context.Context, cred *entity.Credential) error
}
