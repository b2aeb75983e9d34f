package repository

import (
	"context"
	"strings"

	"github.com/smallbiznis/rims/internal/rental/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rental *domain.Rental) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO rentals (
			id, customer_id, receipt_ref, product_type, product_code,
			days, rate_per_day, discount_percent, subtotal_cents, tax_cents, total_cents,
			credit_limit, credit_check, settlement_due, payment_due, deposit,
			payment_method, pay_due_day, credit_checked, terms_agreed, on_hold,
			mailing_restricted, account_opened, next_review, last_review, date_review,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rental.ID,
		rental.CustomerID,
		rental.ReceiptRef,
		rental.ProductType,
		rental.ProductCode,
		rental.Days,
		rental.RatePerDay,
		rental.DiscountPercent,
		rental.SubtotalCents,
		rental.TaxCents,
		rental.TotalCents,
		rental.CreditLimit,
		rental.CreditCheck,
		rental.SettlementDue,
		rental.PaymentDue,
		rental.Deposit,
		rental.PaymentMethod,
		rental.PayDueDay,
		rental.CreditChecked,
		rental.TermsAgreed,
		rental.OnHold,
		rental.MailingRestricted,
		rental.AccountOpened,
		rental.NextReview,
		rental.LastReview,
		rental.DateReview,
		rental.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, search string) ([]domain.HistoryRow, error) {
	query := `SELECT r.id, r.receipt_ref, r.product_type, r.product_code,
			 r.days, r.total_cents, COALESCE(c.name, '') AS customer_name, r.created_at
		 FROM rentals r
		 LEFT JOIN customers c ON c.id = r.customer_id`

	var args []interface{}
	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query += ` WHERE LOWER(r.receipt_ref) LIKE ?
			 OR LOWER(r.product_type) LIKE ?
			 OR LOWER(r.product_code) LIKE ?
			 OR LOWER(COALESCE(c.name, '')) LIKE ?`
		args = append(args, pattern, pattern, pattern, pattern)
	}
	query += ` ORDER BY r.created_at DESC, r.id DESC`

	rows := make([]domain.HistoryRow, 0)
	err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
