package domain

import (
	"context"
	"errors"
)

// TypeGroup lists the product codes available for one product type, in
// catalog order.
type TypeGroup struct {
	Type  string   `json:"type"`
	Codes []string `json:"codes"`
}

type Service interface {
	// Seed inserts every default product whose code is not already
	// present. Existing rows are left untouched even when the shipped
	// rate differs, and calling Seed repeatedly is a no-op.
	Seed(ctx context.Context) error
	// LookupRate returns the cents-per-day rate for a product code.
	LookupRate(ctx context.Context, code string) (int64, error)
	// ListByType groups the catalog's codes by product type, types and
	// codes each in ascending order.
	ListByType(ctx context.Context) ([]TypeGroup, error)
}

var ErrNotFound = errors.New("not_found")
