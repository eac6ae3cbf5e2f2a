package catalog

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           string
	Active          bool
}

type UpdateRequest struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *string
	Active          *bool
}

type CatalogService interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	ListActive(ctx context.Context) ([]*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Service, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) CatalogService {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	svc := &Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          req.Active,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*Service, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) List(ctx context.Context) ([]*Service, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}
