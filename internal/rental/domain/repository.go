package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rental *Rental) error
	// List returns history rows newest first. search, when non-empty,
	// is matched case-insensitively as a substring of the receipt
	// reference, product type, product code and customer name.
	List(ctx context.Context, db *gorm.DB, search string) ([]HistoryRow, error)
}
