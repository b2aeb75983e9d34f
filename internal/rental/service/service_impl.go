package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rims/internal/receipt"
	"github.com/smallbiznis/rims/internal/rental/domain"
	"github.com/smallbiznis/rims/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// saveAttempts bounds the receipt-reference collision recovery: the
// first attempt plus exactly one retry with a fresh reference.
const saveAttempts = 2

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Refs  receipt.Generator
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	refs  receipt.Generator
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("rental.service"),
		genID: p.GenID,
		refs:  p.Refs,
		repo:  p.Repo,
	}
}

func (s *Service) Save(ctx context.Context, req domain.SaveRentalRequest) (domain.Rental, error) {
	productType := strings.TrimSpace(req.ProductType)
	productCode := strings.TrimSpace(req.ProductCode)
	if productType == "" || productCode == "" {
		return domain.Rental{}, domain.ErrMissingProduct
	}
	if req.Quote == nil {
		return domain.Rental{}, domain.ErrMissingTotal
	}

	q := *req.Quote
	if q.Days < 0 {
		return domain.Rental{}, domain.ErrInvalidDuration
	}
	if q.SubtotalCents < 0 || q.TaxCents < 0 || q.TotalCents != q.SubtotalCents+q.TaxCents {
		return domain.Rental{}, domain.ErrInconsistentTotal
	}

	rental := domain.Rental{
		CustomerID:  req.CustomerID,
		ProductType: productType,
		ProductCode: productCode,

		Days:            q.Days,
		RatePerDay:      q.RatePerDay,
		DiscountPercent: q.DiscountPercent,
		SubtotalCents:   q.SubtotalCents,
		TaxCents:        q.TaxCents,
		TotalCents:      q.TotalCents,

		CreditLimit:   req.Terms.CreditLimit,
		CreditCheck:   req.Terms.CreditCheck,
		SettlementDue: req.Terms.SettlementDue,
		PaymentDue:    req.Terms.PaymentDue,
		Deposit:       req.Terms.Deposit,
		PaymentMethod: req.Terms.PaymentMethod,
		PayDueDay:     req.Terms.PayDueDay,

		CreditChecked:     req.Terms.CreditChecked,
		TermsAgreed:       req.Terms.TermsAgreed,
		OnHold:            req.Terms.OnHold,
		MailingRestricted: req.Terms.MailingRestricted,

		AccountOpened: req.Terms.AccountOpened,
		NextReview:    req.Terms.NextReview,
		LastReview:    req.Terms.LastReview,
		DateReview:    req.Terms.DateReview,
	}

	for attempt := 1; attempt <= saveAttempts; attempt++ {
		rental.ID = s.genID.Generate()
		rental.ReceiptRef = s.refs.Generate()
		rental.CreatedAt = time.Now().UTC()

		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return s.repo.Insert(ctx, tx, &rental)
		})
		if err == nil {
			s.log.Info("rental saved",
				zap.String("receipt_ref", rental.ReceiptRef),
				zap.String("product_code", rental.ProductCode),
				zap.Int64("total_cents", rental.TotalCents),
			)
			return rental, nil
		}
		if !db.IsDuplicateKeyErr(err) {
			return domain.Rental{}, fmt.Errorf("save rental: %w", err)
		}

		s.log.Warn("receipt reference collision",
			zap.String("receipt_ref", rental.ReceiptRef),
			zap.Int("attempt", attempt),
		)
	}

	return domain.Rental{}, domain.ErrDuplicateReceipt
}

func (s *Service) List(ctx context.Context, req domain.ListRentalRequest) ([]domain.HistoryRow, error) {
	return s.repo.List(ctx, s.db, req.Search)
}
