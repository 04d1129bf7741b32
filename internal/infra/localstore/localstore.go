// Package localstore keeps the on-device records (shopper preferences,
// poster, operator credential) as JSON blobs in a local bucket.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"pharmacy/config"
	"pharmacy/internal/errors"
)

const (
	preferencesKey = "pharmacy-store.json"
	posterKey      = "pharmacy-poster.json"
	credentialKey  = "admin-credentials.json"
)

// NewBucket opens the directory-backed bucket holding the local records.
func NewBucket(cfg *config.Config, logger *slog.Logger) (*blob.Bucket, error) {
	dir := cfg.LocalStore.Path
	if dir == "" {
		dir = "./data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create local store directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fileblob.OpenBucket")
	}

	logger.Debug("opened local store", slog.String("path", dir))

	return bucket, nil
}

// readJSON loads and decodes one record. Missing records report found=false.
func readJSON(ctx context.Context, bucket *blob.Bucket, key string, out any) (bool, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "read %s", key)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "decode %s", key)
	}

	return true, nil
}

// writeJSON encodes and stores one record, replacing any previous version.
func writeJSON(ctx context.Context, bucket *blob.Bucket, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	if err := bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}

	return nil
}
