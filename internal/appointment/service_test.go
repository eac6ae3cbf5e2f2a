package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitebarber/barbershop-backend/internal/barber"
	"github.com/elitebarber/barbershop-backend/internal/block"
	"github.com/elitebarber/barbershop-backend/internal/catalog"
	"github.com/elitebarber/barbershop-backend/internal/hours"
)

//
// In-memory stand-ins for the collaborating services.
//

type fakeRepo struct {
	appointments []*Appointment
	createErr    error
	nextID       int
}

func (r *fakeRepo) Create(_ context.Context, a *Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = string(rune('0' + r.nextID))
	r.appointments = append(r.appointments, a)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Appointment, error) {
	for _, a := range r.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) List(_ context.Context, _ Filter) ([]*Appointment, int, error) {
	return r.appointments, len(r.appointments), nil
}

func (r *fakeRepo) ListOverlapping(_ context.Context, start, end time.Time, barberID string) ([]*Appointment, error) {
	var out []*Appointment
	for _, a := range r.appointments {
		if a.Status == StatusCancelled {
			continue
		}
		if barberID != "" && a.BarberID != barberID {
			continue
		}
		if a.StartsAt.Before(end) && a.EndsAt.After(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) CountFutureConfirmedByPhone(_ context.Context, phone string, after time.Time) (int, error) {
	count := 0
	for _, a := range r.appointments {
		if a.CustomerPhone == phone && a.Status == StatusConfirmed && a.StartsAt.After(after) {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	for _, a := range r.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.appointments {
		if a.ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeCatalog struct {
	services map[string]*catalog.Service
}

func (c *fakeCatalog) Create(_ context.Context, _ catalog.CreateRequest) (*catalog.Service, error) {
	panic("not used")
}

func (c *fakeCatalog) GetByID(_ context.Context, id string) (*catalog.Service, error) {
	if svc, ok := c.services[id]; ok {
		return svc, nil
	}
	return nil, catalog.ErrNotFound
}

func (c *fakeCatalog) ListActive(_ context.Context) ([]*catalog.Service, error) { return nil, nil }
func (c *fakeCatalog) List(_ context.Context) ([]*catalog.Service, error)       { return nil, nil }
func (c *fakeCatalog) Update(_ context.Context, _ string, _ catalog.UpdateRequest) (*catalog.Service, error) {
	panic("not used")
}

type fakeBarbers struct {
	barbers []*barber.Barber // ascending id, like the repository returns them
}

func (b *fakeBarbers) Create(_ context.Context, _ barber.CreateRequest) (*barber.Barber, error) {
	panic("not used")
}

func (b *fakeBarbers) GetByID(_ context.Context, id string) (*barber.Barber, error) {
	for _, bb := range b.barbers {
		if bb.ID == id {
			return bb, nil
		}
	}
	return nil, barber.ErrNotFound
}

func (b *fakeBarbers) ListActive(_ context.Context) ([]*barber.Barber, error) {
	var out []*barber.Barber
	for _, bb := range b.barbers {
		if bb.Active {
			out = append(out, bb)
		}
	}
	return out, nil
}

func (b *fakeBarbers) List(_ context.Context) ([]*barber.Barber, error) { return b.barbers, nil }
func (b *fakeBarbers) Update(_ context.Context, _ string, _ barber.UpdateRequest) (*barber.Barber, error) {
	panic("not used")
}

type fakeHours struct {
	window hours.Window
}

func (h *fakeHours) List(_ context.Context) ([]*hours.BusinessHours, error) { return nil, nil }
func (h *fakeHours) Update(_ context.Context, _ int, _ hours.UpdateRequest) (*hours.BusinessHours, error) {
	panic("not used")
}

func (h *fakeHours) ResolveWindow(_ context.Context, _ time.Time) (hours.Window, error) {
	return h.window, nil
}

type fakeBlocks struct {
	blocks []*block.Block
}

func (b *fakeBlocks) Create(_ context.Context, _ block.CreateRequest) (*block.Block, error) {
	panic("not used")
}

func (b *fakeBlocks) List(_ context.Context) ([]*block.Block, error) { return b.blocks, nil }
func (b *fakeBlocks) Delete(_ context.Context, _ string) error       { return nil }

func (b *fakeBlocks) ListOverlapping(_ context.Context, start, end time.Time) ([]*block.Block, error) {
	var out []*block.Block
	for _, bl := range b.blocks {
		if bl.StartsAt.Before(end) && bl.EndsAt.After(start) {
			out = append(out, bl)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	confirmed []*Appointment
	cancelled []*Appointment
}

func (n *recordingNotifier) BookingConfirmed(a *Appointment) { n.confirmed = append(n.confirmed, a) }
func (n *recordingNotifier) BookingCancelled(a *Appointment) { n.cancelled = append(n.cancelled, a) }

//
// Fixture: two active barbers, one 45-minute service, Monday 09:00-19:00.
//

type fixture struct {
	repo     *fakeRepo
	barbers  *fakeBarbers
	hours    *fakeHours
	blocks   *fakeBlocks
	notifier *recordingNotifier
	svc      *service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo: &fakeRepo{},
		barbers: &fakeBarbers{barbers: []*barber.Barber{
			{ID: "barber-1", Name: "João", Active: true},
			{ID: "barber-2", Name: "Pedro", Active: true},
		}},
		hours: &fakeHours{window: hours.Window{
			Open:     true,
			OpensAt:  at(9, 0),
			ClosesAt: at(19, 0),
		}},
		blocks:   &fakeBlocks{},
		notifier: &recordingNotifier{},
	}

	catalogSvc := &fakeCatalog{services: map[string]*catalog.Service{
		"svc-cut": {ID: "svc-cut", Name: "Corte Tradicional", DurationMinutes: 45, Active: true},
	}}

	s := NewService(f.repo, catalogSvc, f.barbers, f.hours, f.blocks, f.notifier, time.UTC, 1)
	f.svc = s.(*service)
	f.svc.now = func() time.Time { return at(8, 0) } // before opening on the test day
	return f
}

func (f *fixture) request() BookingRequest {
	return BookingRequest{
		CustomerName:  "Carlos Mendes",
		CustomerPhone: "+5511999990000",
		CustomerEmail: "carlos@example.com",
		ServiceID:     "svc-cut",
		StartsAt:      at(10, 0),
		EndsAt:        at(10, 45),
	}
}

func TestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("specific barber success notifies customer", func(t *testing.T) {
		f := newFixture(t)
		req := f.request()
		req.BarberID = "barber-2"

		a, err := f.svc.Book(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "barber-2", a.BarberID)
		assert.Equal(t, "Pedro", a.BarberName)
		assert.Equal(t, "Corte Tradicional", a.ServiceName)
		assert.Equal(t, StatusConfirmed, a.Status)
		require.Len(t, f.notifier.confirmed, 1)
		assert.Equal(t, a.ID, f.notifier.confirmed[0].ID)
	})

	t.Run("any barber resolves first fit in id order", func(t *testing.T) {
		f := newFixture(t)

		a, err := f.svc.Book(ctx, f.request())
		require.NoError(t, err)
		assert.Equal(t, "barber-1", a.BarberID)
	})

	t.Run("any barber skips an occupied barber", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{{
			ID: "existing", BarberID: "barber-1", CustomerPhone: "other",
			StartsAt: at(10, 0), EndsAt: at(10, 45), Status: StatusConfirmed,
		}}

		a, err := f.svc.Book(ctx, f.request())
		require.NoError(t, err)
		assert.Equal(t, "barber-2", a.BarberID)
	})

	t.Run("specific barber occupied", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{{
			ID: "existing", BarberID: "barber-1", CustomerPhone: "other",
			StartsAt: at(10, 15), EndsAt: at(11, 0), Status: StatusConfirmed,
		}}

		req := f.request()
		req.BarberID = "barber-1"

		_, err := f.svc.Book(ctx, req)
		assert.ErrorIs(t, err, ErrBarberOccupied)
	})

	t.Run("slot full when every barber is booked", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{
			{ID: "a", BarberID: "barber-1", CustomerPhone: "p1", StartsAt: at(10, 0), EndsAt: at(10, 45), Status: StatusConfirmed},
			{ID: "b", BarberID: "barber-2", CustomerPhone: "p2", StartsAt: at(10, 15), EndsAt: at(11, 0), Status: StatusConfirmed},
		}

		_, err := f.svc.Book(ctx, f.request())
		assert.ErrorIs(t, err, ErrSlotFull)
	})

	t.Run("cancelled bookings free the slot", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{{
			ID: "old", BarberID: "barber-1", CustomerPhone: "other",
			StartsAt: at(10, 0), EndsAt: at(10, 45), Status: StatusCancelled,
		}}

		a, err := f.svc.Book(ctx, f.request())
		require.NoError(t, err)
		assert.Equal(t, "barber-1", a.BarberID)
	})

	t.Run("outstanding appointment limit", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{{
			ID: "mine", BarberID: "barber-2", CustomerPhone: "+5511999990000",
			StartsAt: at(16, 0), EndsAt: at(16, 45), Status: StatusConfirmed,
		}}

		_, err := f.svc.Book(ctx, f.request())
		assert.ErrorIs(t, err, ErrLimitReached)
	})

	t.Run("completed appointments do not count against the limit", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{{
			ID: "done", BarberID: "barber-2", CustomerPhone: "+5511999990000",
			StartsAt: at(9, 0), EndsAt: at(9, 45), Status: StatusCompleted,
		}}

		_, err := f.svc.Book(ctx, f.request())
		assert.NoError(t, err)
	})

	t.Run("rejects inverted time range", func(t *testing.T) {
		f := newFixture(t)
		req := f.request()
		req.StartsAt, req.EndsAt = req.EndsAt, req.StartsAt

		_, err := f.svc.Book(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("rejects a start in the past", func(t *testing.T) {
		f := newFixture(t)
		f.svc.now = func() time.Time { return at(11, 0) }

		_, err := f.svc.Book(ctx, f.request())
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t)
		req := f.request()
		req.ServiceID = "nope"

		_, err := f.svc.Book(ctx, req)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("insert race surfaces slot taken", func(t *testing.T) {
		f := newFixture(t)
		f.repo.createErr = ErrSlotTaken

		_, err := f.svc.Book(ctx, f.request())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, f.notifier.confirmed)
	})
}

func TestAvailability(t *testing.T) {
	ctx := context.Background()
	query := AvailabilityQuery{Date: testDay, ServiceID: "svc-cut"}

	t.Run("closed day is empty, not an error", func(t *testing.T) {
		f := newFixture(t)
		f.hours.window = hours.Window{Open: false}

		slots, err := f.svc.Availability(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("inactive barber offers nothing", func(t *testing.T) {
		f := newFixture(t)
		f.barbers.barbers[0].Active = false

		q := query
		q.BarberID = "barber-1"

		slots, err := f.svc.Availability(ctx, q)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("pool capacity hides fully booked slots", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{
			{ID: "a", BarberID: "barber-1", StartsAt: at(10, 0), EndsAt: at(10, 45), Status: StatusConfirmed},
			{ID: "b", BarberID: "barber-2", StartsAt: at(10, 0), EndsAt: at(10, 45), Status: StatusConfirmed},
		}

		slots, err := f.svc.Availability(ctx, query)
		require.NoError(t, err)

		labels := starts(slots)
		assert.NotContains(t, labels, "10:00")
		assert.Contains(t, labels, "10:45")
	})

	t.Run("barber scoped block ignored for any barber query", func(t *testing.T) {
		f := newFixture(t)
		barberID := "barber-1"
		f.blocks.blocks = []*block.Block{{
			ID: "bl", BarberID: &barberID, StartsAt: at(12, 0), EndsAt: at(13, 0),
		}}

		slots, err := f.svc.Availability(ctx, query)
		require.NoError(t, err)
		assert.Contains(t, starts(slots), "12:00")
	})

	t.Run("barber scoped block applies to that barber", func(t *testing.T) {
		f := newFixture(t)
		barberID := "barber-1"
		f.blocks.blocks = []*block.Block{{
			ID: "bl", BarberID: &barberID, StartsAt: at(12, 0), EndsAt: at(13, 0),
		}}

		q := query
		q.BarberID = "barber-1"

		slots, err := f.svc.Availability(ctx, q)
		require.NoError(t, err)
		assert.NotContains(t, starts(slots), "12:00")
	})

	t.Run("shop wide block applies to everyone", func(t *testing.T) {
		f := newFixture(t)
		f.blocks.blocks = []*block.Block{{
			ID: "bl", StartsAt: at(12, 0), EndsAt: at(13, 0),
		}}

		slots, err := f.svc.Availability(ctx, query)
		require.NoError(t, err)
		assert.NotContains(t, starts(slots), "12:00")
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	confirmed := func() *Appointment {
		return &Appointment{
			ID: "appt-1", BarberID: "barber-1", CustomerName: "Carlos",
			CustomerPhone: "+5511999990000", StartsAt: at(10, 0), EndsAt: at(10, 45),
			Status: StatusConfirmed,
		}
	}

	t.Run("cancelling notifies the customer", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{confirmed()}

		a, err := f.svc.UpdateStatus(ctx, "appt-1", "cancelled")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, a.Status)
		require.Len(t, f.notifier.cancelled, 1)
	})

	t.Run("completing is silent", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{confirmed()}

		a, err := f.svc.UpdateStatus(ctx, "appt-1", "completed")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, a.Status)
		assert.Empty(t, f.notifier.cancelled)
	})

	t.Run("terminal states cannot move", func(t *testing.T) {
		for _, status := range []Status{StatusCancelled, StatusCompleted} {
			f := newFixture(t)
			a := confirmed()
			a.Status = status
			f.repo.appointments = []*Appointment{a}

			_, err := f.svc.UpdateStatus(ctx, "appt-1", "cancelled")
			assert.ErrorIs(t, err, ErrFinalStatus)
		}
	})

	t.Run("only cancelled and completed are accepted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.appointments = []*Appointment{confirmed()}

		_, err := f.svc.UpdateStatus(ctx, "appt-1", "confirmed")
		assert.ErrorIs(t, err, ErrInvalidStatus)

		_, err = f.svc.UpdateStatus(ctx, "appt-1", "no-show")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.UpdateStatus(ctx, "ghost", "cancelled")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
