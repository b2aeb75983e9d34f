package seed

import (
	"context"
	"errors"

	catalogdomain "github.com/smallbiznis/rims/internal/catalog/domain"
	customerdomain "github.com/smallbiznis/rims/internal/customer/domain"
	rentaldomain "github.com/smallbiznis/rims/internal/rental/domain"
	"gorm.io/gorm"
)

// Migrate creates the customers, products and rentals tables when they
// are absent. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	return db.AutoMigrate(
		&customerdomain.Customer{},
		&catalogdomain.Product{},
		&rentaldomain.Rental{},
	)
}

// Bootstrap runs the schema migration and the default catalog seed.
// Both halves are idempotent, so repeated startups leave exactly the
// four shipped products and never touch rows an operator has edited.
func Bootstrap(db *gorm.DB, catalog catalogdomain.Service) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return catalog.Seed(context.Background())
}
