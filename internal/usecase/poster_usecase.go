package usecase

import (
	"context"

	"pharmacy/internal/domain/entity"
)

// PosterUsecase manages the single marketing poster: one record, replaced
// on upload, with a visibility flag the storefront honors.
type PosterUsecase interface {
	// Visible returns the poster when one exists and is not hidden,
	// otherwise (nil, nil).
	Visible(ctx context.Context) (*entity.Poster, error)

	// Current returns the stored poster regardless of visibility, or
	// (nil, nil) when none exists.
	Current(ctx context.Context) (*entity.Poster, error)

	// Upload hosts the image and replaces the poster record.
	Upload(ctx context.Context, filename, mimeType string, data []byte) (*entity.Poster, error)

	// SetHidden flips the storefront visibility of the stored poster.
	SetHidden(ctx context.Context, hidden bool) (*entity.Poster, error)

	// Delete removes the poster record. Deleting when none exists succeeds.
	Delete(ctx context.Context) error
}
