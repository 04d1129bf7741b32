package impl

import (
	"context"
	"log/slog"
	"time"

	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/errors"
	"pharmacy/internal/usecase"
)

type posterService struct {
	posterRepo repository.PosterRepository
	uploader   service.ImageUploader
	logger     *slog.Logger
	now        func() time.Time
}

// NewPosterService creates the marketing poster manager.
func NewPosterService(
	posterRepo repository.PosterRepository,
	uploader service.ImageUploader,
	logger *slog.Logger,
) usecase.PosterUsecase {
	return &posterService{
		posterRepo: posterRepo,
		uploader:   uploader,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *posterService) Visible(ctx context.Context) (*entity.Poster, error) {
	poster, err := s.posterRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load poster")
	}
	if poster == nil || poster.Hidden {
		return nil, nil
	}

	return poster, nil
}

func (s *posterService) Current(ctx context.Context) (*entity.Poster, error) {
	poster, err := s.posterRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load poster")
	}

	return poster, nil
}

func (s *posterService) Upload(ctx context.Context, filename, mimeType string, data []byte) (*entity.Poster, error) {
	result, err := s.uploader.Upload(ctx, filename, mimeType, data)
	if err != nil {
		return nil, err
	}

	poster := &entity.Poster{
		URL:        result.URL,
		Filename:   filename,
		UploadDate: s.now(),
		Size:       int64(len(data)),
	}
	if err := s.posterRepo.Save(ctx, poster); err != nil {
		return nil, errors.Wrap(err, "save poster")
	}

	s.logger.Info("poster replaced",
		slog.String("filename", filename), slog.String("provider", result.Provider))

	return poster, nil
}

func (s *posterService) SetHidden(ctx context.Context, hidden bool) (*entity.Poster, error) {
	poster, err := s.posterRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load poster")
	}
	if poster == nil {
		return nil, domainerrors.ErrPosterNotFound
	}

	poster.Hidden = hidden
	if err := s.posterRepo.Save(ctx, poster); err != nil {
		return nil, errors.Wrap(err, "save poster")
	}

	return poster, nil
}

func (s *posterService) Delete(ctx context.Context) error {
	if err := s.posterRepo.Delete(ctx); err != nil {
		return errors.Wrap(err, "delete poster")
	}

	return nil
}
