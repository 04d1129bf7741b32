package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"pharmacy/config"
	"pharmacy/internal/errors"
)

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
}

type imgbbProvider struct {
	cfg    *config.ImgBBConfig
	client *http.Client
}

func newImgBBProvider(cfg *config.ImgBBConfig, client *http.Client) *imgbbProvider {
	return &imgbbProvider{cfg: cfg, client: client}
}

func (p *imgbbProvider) Name() string { return "imgbb" }

func (p *imgbbProvider) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "write form file")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart writer")
	}

	endpoint := p.cfg.Endpoint + "?key=" + url.QueryEscape(p.cfg.APIKey)
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
		return "", errors.Errorf("imgbb returned status %d", resp.StatusCode)
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errors.Wrap(err, "decode response")
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", errors.New("imgbb rejected the upload")
	}

	return parsed.Data.URL, nil
}
