package block

import (
	"context"
	"errors"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/barber"
)

type CreateRequest struct {
	StartsAt time.Time
	EndsAt   time.Time
	Reason   string
	BarberID *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Block, error)
	List(ctx context.Context) ([]*Block, error)
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*Block, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	barberService barber.Service
}

func NewService(repo Repository, barberService barber.Service) Service {
	return &service{
		repo:          repo,
		barberService: barberService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Block, error) {
	if !req.StartsAt.Before(req.EndsAt) {
		return nil, ErrInvalidTimeRange
	}

	// Barber-scoped blocks must reference an existing barber.
	if req.BarberID != nil {
		if _, err := s.barberService.GetByID(ctx, *req.BarberID); err != nil {
			if errors.Is(err, barber.ErrNotFound) {
				return nil, ErrInvalidBarber
			}
			return nil, err
		}
	}

	b := &Block{
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Reason:   req.Reason,
		BarberID: req.BarberID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context) ([]*Block, error) {
	return s.repo.List(ctx)
}

func (s *service) ListOverlapping(ctx context.Context, start, end time.Time) ([]*Block, error) {
	return s.repo.ListOverlapping(ctx, start, end)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
