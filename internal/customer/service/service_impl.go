package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rims/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}

	s.log.Info("customer created", zap.Int64("id", int64(customer.ID)))
	return customer, nil
}

// Update writes only when a submitted field differs from the stored
// row. An identical submission is a successful no-op: timestamps stay
// untouched and Changed is false.
func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.UpdateCustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.UpdateCustomerResponse{}, domain.ErrInvalidName
	}

	existing, err := s.repo.FindByID(ctx, s.db, req.ID)
	if err != nil {
		return domain.UpdateCustomerResponse{}, err
	}
	if existing == nil {
		return domain.UpdateCustomerResponse{}, domain.ErrNotFound
	}

	updated := *existing
	updated.Name = name
	updated.Phone = strings.TrimSpace(req.Phone)
	updated.Email = strings.TrimSpace(req.Email)
	updated.Address = strings.TrimSpace(req.Address)

	if updated.Name == existing.Name &&
		updated.Phone == existing.Phone &&
		updated.Email == existing.Email &&
		updated.Address == existing.Address {
		return domain.UpdateCustomerResponse{Customer: *existing, Changed: false}, nil
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		return domain.UpdateCustomerResponse{}, err
	}

	s.log.Info("customer updated", zap.Int64("id", int64(updated.ID)))
	return domain.UpdateCustomerResponse{Customer: updated, Changed: true}, nil
}

func (s *Service) Delete(ctx context.Context, id snowflake.ID) error {
	affected, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.log.Info("customer deleted", zap.Int64("id", int64(id)))
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx, s.db)
}
