package localstore

import (
	"context"

	"gocloud.dev/blob"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/repository"
)

type credentialRepository struct {
	bucket *blob.Bucket
}

// NewCredentialRepository builds the blob-backed operator credential store.
func NewCredentialRepository(bucket *blob.Bucket) repository.CredentialRepository {
	return &credentialRepository{bucket: bucket}
}

func (r *credentialRepository) Load(ctx context.Context) (*entity.Credential, error) {
	var cred entity.Credential

	found, err := readJSON(ctx, r.bucket, credentialKey, &cred)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &cred, nil
}

func (r *credentialRepository) Save(ctx context.Context, cred *entity.Credential) error {
	return writeJSON(ctx, r.bucket, credentialKey, cred)
}
