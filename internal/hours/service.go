package hours

import (
	"context"
	"errors"
	"time"
)

type UpdateRequest struct {
	OpensAt  string
	ClosesAt string
	IsOpen   bool
}

type Service interface {
	List(ctx context.Context) ([]*BusinessHours, error)
	Update(ctx context.Context, weekday int, req UpdateRequest) (*BusinessHours, error)

	// ResolveWindow returns the shop's operating window for the given date.
	// A missing row or an is_open=false row yields a closed window, not an error.
	ResolveWindow(ctx context.Context, date time.Time) (Window, error)
}

type service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) Service {
	return &service{repo: repo, loc: loc}
}

func (s *service) List(ctx context.Context) ([]*BusinessHours, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, weekday int, req UpdateRequest) (*BusinessHours, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	if req.IsOpen {
		opens, err := time.Parse("15:04", req.OpensAt)
		if err != nil {
			return nil, ErrInvalidTime
		}
		closes, err := time.Parse("15:04", req.ClosesAt)
		if err != nil {
			return nil, ErrInvalidTime
		}
		if !opens.Before(closes) {
			return nil, ErrInvalidTime
		}
	}

	h := &BusinessHours{
		Weekday:  weekday,
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
		IsOpen:   req.IsOpen,
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	return s.repo.GetByWeekday(ctx, weekday)
}

func (s *service) ResolveWindow(ctx context.Context, date time.Time) (Window, error) {
	day := date.In(s.loc)
	weekday := int(day.Weekday())

	h, err := s.repo.GetByWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Window{Open: false}, nil
		}
		return Window{}, err
	}
	if !h.IsOpen {
		return Window{Open: false}, nil
	}

	opens, err := AtTime(day, h.OpensAt, s.loc)
	if err != nil {
		return Window{}, err
	}
	closes, err := AtTime(day, h.ClosesAt, s.loc)
	if err != nil {
		return Window{}, err
	}

	return Window{Open: true, OpensAt: opens, ClosesAt: closes}, nil
}
