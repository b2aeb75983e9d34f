package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Product, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
}
