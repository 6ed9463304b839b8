package renderer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/agence/internal/config"
)

// Client merges a field map into a document template and returns the binary document.
type Client interface {
	Render(ctx context.Context, req Request) (*Document, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a renderer client using the provided configuration values.
func NewClient(cfg config.RendererConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &APIClient{httpClient: restyClient}
}

// Request is one rendering job.
type Request struct {
	Template string         `json:"template"`
	Format   string         `json:"format"`
	Fields   map[string]any `json:"fields"`
}

// Document is a rendered binary.
type Document struct {
	Content     []byte
	ContentType string
}

// apiError represents a renderer error payload.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Render posts the job to {base}/render.
func (c *APIClient) Render(ctx context.Context, req Request) (*Document, error) {
	if req.Template == "" {
		return nil, errors.New("template must not be empty")
	}

	apiErr := new(apiError)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetError(apiErr).
		Post("/render")
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", req.Template, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Message
		if message == "" {
			message = apiErr.Error
		}
		return nil, fmt.Errorf("renderer error: code=%d, message=%s", resp.StatusCode(), message)
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Document{Content: resp.Body(), ContentType: contentType}, nil
}
