package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// maxErrorBody limits how much of a failed response is kept for diagnostics.
const maxErrorBody = 512

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Resource   entity.Resource
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Resource, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Resource, e.StatusCode, e.Body)
}

// APIRepositoryImpl implementa o InvoiceAPIRepository sobre HTTP.
type APIRepositoryImpl struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration
}

// NewAPIRepository cria um cliente para a API de faturas.
// Timeout zero significa sem limite por requisição.
func NewAPIRepository(baseURL string, timeout time.Duration, client *http.Client) (repository.InvoiceAPIRepository, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, types.ErrNoBaseURL
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	if client == nil {
		client = &http.Client{}
	}

	return &APIRepositoryImpl{
		baseURL: u,
		client:  client,
		timeout: timeout,
	}, nil
}

// Endpoint resolves the absolute URL for a resource.
func (r *APIRepositoryImpl) Endpoint(resource entity.Resource) (string, error) {
	path := resource.Path()
	if path == "" {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownResource, resource)
	}

	u := *r.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = ""
	return u.String(), nil
}

// Request executa o GET do recurso e devolve o corpo ainda não decodificado.
func (r *APIRepositoryImpl) Request(ctx context.Context, resource entity.Resource) (io.ReadCloser, error) {
	endpoint, err := r.Endpoint(resource)
	if err != nil {
		return nil, err
	}

	cancel := context.CancelFunc(func() {})
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error building request for %s: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("error requesting %s: %w", resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	// O timeout cobre também a leitura do corpo.
	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelOnClose releases the request context once the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}
