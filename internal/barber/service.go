package barber

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name   string
	Active bool
}

type UpdateRequest struct {
	Name   *string
	Active *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Barber, error)
	GetByID(ctx context.Context, id string) (*Barber, error)
	ListActive(ctx context.Context) ([]*Barber, error)
	List(ctx context.Context) ([]*Barber, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Barber, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Barber, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	b := &Barber{
		Name:   req.Name,
		Active: req.Active,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Barber, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*Barber, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) List(ctx context.Context) ([]*Barber, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Barber, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		b.Name = *req.Name
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
