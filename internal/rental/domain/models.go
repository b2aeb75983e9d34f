package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Rental is one committed billing record. It is append-only: nothing in
// the application mutates or deletes a rental after Save.
//
// Product type, code and the cents-per-day rate are denormalized copies
// captured at save time, so later catalog edits never alter history.
// CustomerID is optional and carries no foreign-key constraint; deleting
// a customer leaves the reference dangling on purpose.
type Rental struct {
	ID         snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID *snowflake.ID `gorm:"index" json:"customer_id,omitempty"`
	ReceiptRef string        `gorm:"uniqueIndex;not null" json:"receipt_ref"`

	ProductType string `gorm:"not null" json:"product_type"`
	ProductCode string `gorm:"not null" json:"product_code"`

	Days            int     `gorm:"not null" json:"days"`
	RatePerDay      int64   `gorm:"not null" json:"rate_per_day"`
	DiscountPercent float64 `gorm:"not null" json:"discount_percent"`
	SubtotalCents   int64   `gorm:"not null" json:"subtotal_cents"`
	TaxCents        int64   `gorm:"not null" json:"tax_cents"`
	TotalCents      int64   `gorm:"not null" json:"total_cents"`

	CreditLimit   string `json:"credit_limit,omitempty"`
	CreditCheck   string `json:"credit_check,omitempty"`
	SettlementDue string `json:"settlement_due,omitempty"`
	PaymentDue    string `json:"payment_due,omitempty"`
	Deposit       string `json:"deposit,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PayDueDay     string `json:"pay_due_day,omitempty"`

	CreditChecked     bool `gorm:"not null;default:false" json:"credit_checked"`
	TermsAgreed       bool `gorm:"not null;default:false" json:"terms_agreed"`
	OnHold            bool `gorm:"not null;default:false" json:"on_hold"`
	MailingRestricted bool `gorm:"not null;default:false" json:"mailing_restricted"`

	AccountOpened string `json:"account_opened,omitempty"`
	NextReview    string `json:"next_review,omitempty"`
	LastReview    string `json:"last_review,omitempty"`
	DateReview    string `json:"date_review,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (Rental) TableName() string { return "rentals" }

// HistoryRow is one row of the rental-history listing, with the
// customer name joined in when the rental still points at a customer.
type HistoryRow struct {
	ID           snowflake.ID `json:"id"`
	ReceiptRef   string       `json:"receipt_ref"`
	ProductType  string       `json:"product_type"`
	ProductCode  string       `json:"product_code"`
	Days         int          `json:"days"`
	TotalCents   int64        `json:"total_cents"`
	CustomerName string       `json:"customer_name,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
