package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"pharmacy/config"
	"pharmacy/internal/errors"
)

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type cloudinaryProvider struct {
	cfg    *config.CloudinaryConfig
	client *http.Client
}

func newCloudinaryProvider(cfg *config.CloudinaryConfig, client *http.Client) *cloudinaryProvider {
	return &cloudinaryProvider{cfg: cfg, client: client}
}

func (p *cloudinaryProvider) Name() string { return "cloudinary" }

func (p *cloudinaryProvider) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "write form file")
	}
	if err := writer.WriteField("upload_preset", p.cfg.UploadPreset); err != nil {
		return "", errors.Wrap(err, "write preset field")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart writer")
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", p.cfg.Endpoint, p.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post image")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("cloudinary returned status %d", resp.StatusCode)
	}

	var parsed cloudinaryResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	link := parsed.SecureURL
	if link == "" {
		link = parsed.URL
	}
	if link == "" {
		return "", errors.New("cloudinary response missing url")
	}

	return link, nil
}
