package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type CreateCustomerRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

type UpdateCustomerRequest struct {
	ID      snowflake.ID
	Name    string
	Phone   string
	Email   string
	Address string
}

// UpdateCustomerResponse reports whether anything was written. Changed
// is false when every submitted field matched the stored row; the form
// uses that to show its "no changes" message instead of a save
// confirmation.
type UpdateCustomerResponse struct {
	Customer Customer
	Changed  bool
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (Customer, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (UpdateCustomerResponse, error)
	// Delete never cascades: rentals referencing the customer keep
	// their denormalized copy and their dangling customer id.
	Delete(ctx context.Context, id snowflake.ID) error
	// List returns customers most recently created first.
	List(ctx context.Context) ([]Customer, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrNotFound    = errors.New("not_found")
)
