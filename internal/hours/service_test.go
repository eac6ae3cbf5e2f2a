package hours

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows map[int]*BusinessHours
}

func (r *fakeRepo) GetByWeekday(_ context.Context, weekday int) (*BusinessHours, error) {
	if h, ok := r.rows[weekday]; ok {
		return h, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context) ([]*BusinessHours, error) {
	var out []*BusinessHours
	for _, h := range r.rows {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, h *BusinessHours) error {
	r.rows[h.Weekday] = h
	return nil
}

func TestAtTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 17, 45, 0, 0, time.UTC)

	got, err := AtTime(date, "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, loc), got)

	_, err = AtTime(date, "9h30", loc)
	assert.Error(t, err)
}

func TestResolveWindow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{rows: map[int]*BusinessHours{
		1: {Weekday: 1, OpensAt: "09:00", ClosesAt: "19:00", IsOpen: true},
		0: {Weekday: 0, IsOpen: false},
	}}
	svc := NewService(repo, time.UTC)

	t.Run("open weekday", func(t *testing.T) {
		monday := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

		w, err := svc.ResolveWindow(ctx, monday)
		require.NoError(t, err)
		assert.True(t, w.Open)
		assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), w.OpensAt)
		assert.Equal(t, time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC), w.ClosesAt)
	})

	t.Run("closed weekday", func(t *testing.T) {
		sunday := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		w, err := svc.ResolveWindow(ctx, sunday)
		require.NoError(t, err)
		assert.False(t, w.Open)
	})

	t.Run("missing row means closed", func(t *testing.T) {
		tuesday := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

		w, err := svc.ResolveWindow(ctx, tuesday)
		require.NoError(t, err)
		assert.False(t, w.Open)
	})
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{rows: map[int]*BusinessHours{}}
	svc := NewService(repo, time.UTC)

	_, err := svc.Update(ctx, 7, UpdateRequest{IsOpen: false})
	assert.ErrorIs(t, err, ErrInvalidWeekday)

	_, err = svc.Update(ctx, 1, UpdateRequest{OpensAt: "19:00", ClosesAt: "09:00", IsOpen: true})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = svc.Update(ctx, 1, UpdateRequest{OpensAt: "morning", ClosesAt: "19:00", IsOpen: true})
	assert.ErrorIs(t, err, ErrInvalidTime)

	got, err := svc.Update(ctx, 1, UpdateRequest{OpensAt: "09:00", ClosesAt: "19:00", IsOpen: true})
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.OpensAt)
	assert.True(t, got.IsOpen)
}
