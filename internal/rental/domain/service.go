package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rims/internal/pricing"
)

// CreditTerms carries the account/credit/payment descriptors collected
// by the rental form. All fields are optional free-form selections.
type CreditTerms struct {
	CreditLimit   string
	CreditCheck   string
	SettlementDue string
	PaymentDue    string
	Deposit       string
	PaymentMethod string
	PayDueDay     string

	CreditChecked     bool
	TermsAgreed       bool
	OnHold            bool
	MailingRestricted bool

	AccountOpened string
	NextReview    string
	LastReview    string
	DateReview    string
}

// SaveRentalRequest commits one computed quote. Quote must be the
// engine's output for this selection; a nil Quote means the operator
// never computed a total and the save is rejected.
type SaveRentalRequest struct {
	CustomerID  *snowflake.ID
	ProductType string
	ProductCode string
	Quote       *pricing.Quote
	Terms       CreditTerms
}

type ListRentalRequest struct {
	Search string
}

type Service interface {
	// Save mints a receipt reference and commits the rental. On a
	// reference collision it regenerates and retries exactly once;
	// a second collision surfaces ErrDuplicateReceipt.
	Save(ctx context.Context, req SaveRentalRequest) (Rental, error)
	// List returns the rental history, newest first. An empty result
	// is an empty slice, never an error.
	List(ctx context.Context, req ListRentalRequest) ([]HistoryRow, error)
}

var (
	ErrMissingProduct    = errors.New("missing_product")
	ErrMissingTotal      = errors.New("missing_total")
	ErrInvalidDuration   = errors.New("invalid_duration")
	ErrInconsistentTotal = errors.New("inconsistent_total")
	ErrDuplicateReceipt  = errors.New("duplicate_receipt")
)
