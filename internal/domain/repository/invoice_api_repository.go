package repository

import (
	"context"
	"io"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
)

// InvoiceAPIRepository defines the transport towards the invoice API.
type InvoiceAPIRepository interface {
	// Request performs the GET for a resource and returns the undecoded body.
	// The caller must close it.
	Request(ctx context.Context, resource entity.Resource) (io.ReadCloser, error)
}
