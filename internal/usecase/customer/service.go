package customer

import (
	"context"
	"errors"
	"strings"

	dom "github.com/dhdiogoh/cyga-ecommerce/internal/domain/customer"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	c.Email = normalizeEmail(c.Email)
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	existed, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	if c.Name != "" {
		existed.Name = c.Name
	}
	if c.Email != "" {
		existed.Email = normalizeEmail(c.Email)
	}
	if c.Phone != "" {
		existed.Phone = c.Phone
	}
	if c.City != "" {
		existed.City = c.City
	}
	if c.State != "" {
		existed.State = c.State
	}

	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Customer, error) {
	return s.repo.List(ctx, filter)
}

// FindOrCreateByEmail resolves the checkout customer: an existing
// record wins, otherwise a new one is created from the given data.
func (s *Service) FindOrCreateByEmail(ctx context.Context, c *dom.Customer) (*dom.Customer, error) {
	email := normalizeEmail(c.Email)
	existed, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return existed, nil
	}
	if !errors.Is(err, dom.ErrCustomerNotFound) {
		return nil, err
	}
	c.Email = email
	return s.repo.Create(ctx, c)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
