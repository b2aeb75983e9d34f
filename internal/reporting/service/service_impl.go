package service

import (
	"context"
	"time"

	"github.com/smallbiznis/rims/internal/reporting/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("reporting.service"),
	}
}

func (s *Service) TotalsByProductType(ctx context.Context) ([]domain.ProductTypeTotal, error) {
	rows := make([]domain.ProductTypeTotal, 0)
	err := s.db.WithContext(ctx).Raw(
		`SELECT product_type, COUNT(*) AS rentals, SUM(total_cents) AS total_cents
		 FROM rentals
		 GROUP BY product_type
		 ORDER BY product_type ASC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyCounts restricts to the trailing window. The cutoff is computed
// here rather than with SQLite date arithmetic so the boundary is exact
// regardless of how the driver stores timestamps.
func (s *Service) DailyCounts(ctx context.Context, windowDays int) ([]domain.DailyCount, error) {
	if windowDays < 0 {
		windowDays = 0
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -windowDays)

	rows := make([]domain.DailyCount, 0)
	err := s.db.WithContext(ctx).Raw(
		`SELECT date(created_at) AS day, COUNT(*) AS rentals
		 FROM rentals
		 WHERE created_at >= ?
		 GROUP BY date(created_at)
		 ORDER BY day ASC`,
		cutoff,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) Overview(ctx context.Context) (domain.Overview, error) {
	var out domain.Overview
	err := s.db.WithContext(ctx).Raw(
		`SELECT
			(SELECT COUNT(*) FROM rentals) AS rentals,
			(SELECT COUNT(*) FROM customers) AS customers,
			(SELECT COALESCE(SUM(total_cents), 0) FROM rentals) AS revenue_cents`,
	).Scan(&out).Error
	if err != nil {
		return domain.Overview{}, err
	}
	return out, nil
}
