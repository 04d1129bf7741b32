// Package service declares the domain-facing contracts for infrastructure
// collaborators (image hosting, messaging handoff, geolocation, hashing).
package service

import "context"

// UploadResult is the hosting provider's answer to a successful upload.
type UploadResult struct {
	URL      string // Public image URL.
	Provider string // Which provider accepted the upload.
}

// ImageUploader exchanges a binary image for a public URL. Implementations
// must reject non-image MIME types and files over the size limit before any
// network call, and may fall back to a secondary provider when the primary
// is unavailable. Failed uploads are never retried automatically.
type ImageUploader interface {
	Upload(ctx context.Context, filename, mimeType string, data []byte) (*UploadResult, error)
}
