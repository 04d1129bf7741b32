package localstore

import (
	"context"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/errors"
)

type posterRepository struct {
	bucket *blob.Bucket
}

// NewPosterRepository builds the blob-backed poster record store.
func NewPosterRepository(bucket *blob.Bucket) repository.PosterRepository {
	return &posterRepository{bucket: bucket}
}

func (r *posterRepository) Load(ctx context.Context) (*entity.Poster, error) {
	var poster entity.Poster

	found, err := readJSON(ctx, r.bucket, posterKey, &poster)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &poster, nil
}

func (r *posterRepository) Save(ctx context.Context, poster *entity.Poster) error {
	return writeJSON(ctx, r.bucket, posterKey, poster)
}

func (r *posterRepository) Delete(ctx context.Context) error {
	if err := r.bucket.Delete(ctx, posterKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "delete poster record")
	}

	return nil
}
