package domain

import "context"

// ProductTypeTotal is one row of the rentals-by-product-type aggregate.
type ProductTypeTotal struct {
	ProductType string `json:"product_type"`
	Rentals     int64  `json:"rentals"`
	TotalCents  int64  `json:"total_cents"`
}

// DailyCount is one day of rental activity inside the trailing window.
// Day is a calendar date in YYYY-MM-DD form.
type DailyCount struct {
	Day     string `json:"day"`
	Rentals int64  `json:"rentals"`
}

// Overview is the headline numbers for the analytics dashboard.
type Overview struct {
	Rentals      int64 `json:"rentals"`
	Customers    int64 `json:"customers"`
	RevenueCents int64 `json:"revenue_cents"`
}

// Service is a thin composition over store aggregates. Every method
// returns an empty slice (or zero counts), never an error, when no rows
// match, so callers can render "no data" states without special-casing.
type Service interface {
	TotalsByProductType(ctx context.Context) ([]ProductTypeTotal, error)
	DailyCounts(ctx context.Context, windowDays int) ([]DailyCount, error)
	Overview(ctx context.Context) (Overview, error)
}
