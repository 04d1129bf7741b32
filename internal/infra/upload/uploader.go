// Package upload hosts images on an external provider chain. ImgBB is the
// primary host; Cloudinary takes over when ImgBB is unavailable.
package upload

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pharmacy/config"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/service"
)

// MaxImageSize is the upper bound accepted for a single image.
const MaxImageSize = 10 * 1024 * 1024

const requestTimeout = 30 * time.Second

type provider interface {
	Name() string
	Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

type chainUploader struct {
	providers []provider
	logger    *slog.Logger
}

// NewImageUploader assembles the provider chain from configuration. Providers
// without configuration are left out; an empty chain still validates input
// and reports the upload as failed.
func NewImageUploader(cfg *config.Config, logger *slog.Logger) service.ImageUploader {
	client := &http.Client{Timeout: requestTimeout}

	var providers []provider
	if cfg.Upload != nil {
		if cfg.Upload.ImgBB != nil && cfg.Upload.ImgBB.APIKey != "" {
			providers = append(providers, newImgBBProvider(cfg.Upload.ImgBB, client))
		}
		if cfg.Upload.Cloudinary != nil && cfg.Upload.Cloudinary.CloudName != "" {
			providers = append(providers, newCloudinaryProvider(cfg.Upload.Cloudinary, client))
		}
	}

	return &chainUploader{providers: providers, logger: logger}
}

func (u *chainUploader) Upload(ctx context.Context, filename, mimeType string, data []byte) (*service.UploadResult, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domainerrors.ErrNotAnImage
	}
	if len(data) > MaxImageSize {
		return nil, domainerrors.ErrImageTooLarge
	}

	for _, p := range u.providers {
		link, err := p.Upload(ctx, filename, mimeType, data)
		if err != nil {
			u.logger.Warn("image host failed, trying next",
				slog.String("provider", p.Name()), slog.Any("error", err))

			continue
		}

		return &service.UploadResult{URL: link, Provider: p.Name()}, nil
	}

	return nil, domainerrors.ErrUploadFailed
}
