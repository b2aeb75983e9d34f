package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Product is one rentable product type in the catalog. RatePerDay is in
// cents. Quantity is informational only and is never decremented by a
// rental.
type Product struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Type       string       `gorm:"column:type;not null" json:"type"`
	Code       string       `gorm:"uniqueIndex;not null" json:"code"`
	RatePerDay int64        `gorm:"not null" json:"rate_per_day"`
	Quantity   int          `gorm:"not null;default:1" json:"quantity"`
	Status     string       `gorm:"not null;default:Available" json:"status"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
}

func (Product) TableName() string { return "products" }

// SeedProduct is one default catalog entry.
type SeedProduct struct {
	Type       string
	Code       string
	RatePerDay int64
	Quantity   int
}

// DefaultSeed is the fixed default catalog. The codes and rates must
// stay exactly as shipped for compatibility with existing databases.
func DefaultSeed() []SeedProduct {
	return []SeedProduct{
		{Type: "Car", Code: "CAR452", RatePerDay: 1200, Quantity: 5},
		{Type: "Van", Code: "VAN775", RatePerDay: 1900, Quantity: 3},
		{Type: "Minibus", Code: "MIN334", RatePerDay: 1200, Quantity: 2},
		{Type: "Truck", Code: "TRK7483", RatePerDay: 1500, Quantity: 2},
	}
}
