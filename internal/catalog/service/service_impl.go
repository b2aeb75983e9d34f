package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rims/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Seed is insert-or-ignore, not upsert: a row whose code already exists
// keeps its stored rate and quantity. The whole pass runs in one
// transaction so a failure leaves no partial catalog.
func (s *Service) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, def := range domain.DefaultSeed() {
			existing, err := s.repo.FindByCode(ctx, tx, def.Code)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			product := domain.Product{
				ID:         s.genID.Generate(),
				Type:       def.Type,
				Code:       def.Code,
				RatePerDay: def.RatePerDay,
				Quantity:   def.Quantity,
				Status:     "Available",
				CreatedAt:  time.Now().UTC(),
			}
			if err := s.repo.Insert(ctx, tx, &product); err != nil {
				return err
			}
			s.log.Info("seeded product",
				zap.String("code", product.Code),
				zap.Int64("rate_per_day", product.RatePerDay),
			)
		}
		return nil
	})
}

func (s *Service) LookupRate(ctx context.Context, code string) (int64, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, domain.ErrNotFound
	}

	product, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	return product.RatePerDay, nil
}

func (s *Service) ListByType(ctx context.Context) ([]domain.TypeGroup, error) {
	products, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.TypeGroup, 0, len(products))
	for _, p := range products {
		if n := len(groups); n > 0 && groups[n-1].Type == p.Type {
			groups[n-1].Codes = append(groups[n-1].Codes, p.Code)
			continue
		}
		groups = append(groups, domain.TypeGroup{Type: p.Type, Codes: []string{p.Code}})
	}
	return groups, nil
}
