package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"hostel-listing-portal/internal/config"
)

// ImgHippo uploads via the ImgHippo HTTP API: a multipart form with the API
// key and file, JSON response carrying the hosted view URL. Deletion is keyed
// by that URL.
type ImgHippo struct {
	client    *http.Client
	apiKey    string
	uploadURL string
	deleteURL string
}

func NewImgHippo(cfg config.ImgHippoConfig) *ImgHippo {
	uploadURL := cfg.UploadURL
	if uploadURL == "" {
		uploadURL = "https://api.imghippo.com/v1/upload"
	}
	deleteURL := cfg.DeleteURL
	if deleteURL == "" {
		deleteURL = "https://api.imghippo.com/v1/delete"
	}
	return &ImgHippo{
		client:    http.DefaultClient,
		apiKey:    strings.TrimSpace(cfg.APIKey),
		uploadURL: uploadURL,
		deleteURL: deleteURL,
	}
}

type imgHippoResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ViewURL string `json:"view_url"`
		URL     string `json:"url"`
	} `json:"data"`
}

func (h *ImgHippo) Upload(ctx context.Context, r io.Reader, size int64, opts UploadOptions) (*UploadResult, error) {
	if h.apiKey == "" {
		return nil, ErrNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("api_key", h.apiKey); err != nil {
		return nil, err
	}

	filename := opts.Filename
	if filename == "" {
		filename = "upload"
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	if opts.ContentType != "" {
		hdr.Set("Content-Type", opts.ContentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imghippo upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imghippo upload: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HostError{Status: resp.StatusCode, Detail: detailOf(raw)}
	}

	var parsed imgHippoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &HostError{Status: http.StatusBadGateway, Detail: string(raw)}
	}

	hosted := parsed.Data.ViewURL
	if hosted == "" {
		hosted = parsed.Data.URL
	}
	if !parsed.Success || hosted == "" {
		return nil, &HostError{Status: http.StatusBadGateway, Detail: detailOf(raw)}
	}

	return &UploadResult{URL: hosted, DeleteHandle: hosted}, nil
}

// Delete removes a hosted image addressed by its public URL.
func (h *ImgHippo) Delete(ctx context.Context, ref string) error {
	if h.apiKey == "" {
		return ErrNotConfigured
	}

	form := url.Values{}
	form.Set("api_key", h.apiKey)
	form.Set("url", ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.deleteURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("imghippo delete: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("imghippo delete: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HostError{Status: resp.StatusCode, Detail: detailOf(raw)}
	}
	return nil
}

// detailOf keeps the provider payload as JSON when possible, raw text when not.
func detailOf(raw []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return string(raw)
}

func escapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
