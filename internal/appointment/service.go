package appointment

import (
	"context"
	"time"

	"github.com/elitebarber/barbershop-backend/internal/barber"
	"github.com/elitebarber/barbershop-backend/internal/block"
	"github.com/elitebarber/barbershop-backend/internal/catalog"
	"github.com/elitebarber/barbershop-backend/internal/hours"
)

// AvailabilityQuery asks for bookable slots on a date. An empty BarberID
// means "any barber": the whole active pool shares capacity.
type AvailabilityQuery struct {
	Date      time.Time
	ServiceID string
	BarberID  string
}

// BookingRequest is a customer's submission for a chosen slot.
type BookingRequest struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	ServiceID     string
	BarberID      string // empty = any barber
	StartsAt      time.Time
	EndsAt        time.Time
	Notes         string
}

type Service interface {
	Availability(ctx context.Context, q AvailabilityQuery) ([]TimeSlot, error)
	Book(ctx context.Context, req BookingRequest) (*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	List(ctx context.Context, filter Filter) ([]*Appointment, int, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Appointment, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	catalogService catalog.CatalogService
	barberService  barber.Service
	hoursService   hours.Service
	blockService   block.Service
	notifier       Notifier
	loc            *time.Location
	bookingLimit   int

	now func() time.Time // swapped out in tests
}

func NewService(
	repo Repository,
	catalogService catalog.CatalogService,
	barberService barber.Service,
	hoursService hours.Service,
	blockService block.Service,
	notifier Notifier,
	loc *time.Location,
	bookingLimit int,
) Service {
	return &service{
		repo:           repo,
		catalogService: catalogService,
		barberService:  barberService,
		hoursService:   hoursService,
		blockService:   blockService,
		notifier:       notifier,
		loc:            loc,
		bookingLimit:   bookingLimit,
		now:            time.Now,
	}
}

// Availability gathers the day's window, pool, blocks and bookings, then
// hands everything to ComputeSlots. Persistence never leaks into the
// slot math itself.
func (s *service) Availability(ctx context.Context, q AvailabilityQuery) ([]TimeSlot, error) {
	svc, err := s.catalogService.GetByID(ctx, q.ServiceID)
	if err != nil {
		return nil, err
	}

	window, err := s.hoursService.ResolveWindow(ctx, q.Date)
	if err != nil {
		return nil, err
	}
	if !window.Open {
		// Closed day: empty result, not an error.
		return []TimeSlot{}, nil
	}

	poolSize := 0
	if q.BarberID != "" {
		b, err := s.barberService.GetByID(ctx, q.BarberID)
		if err != nil {
			return nil, err
		}
		if b.Active {
			poolSize = 1
		}
	} else {
		active, err := s.barberService.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		poolSize = len(active)
	}
	if poolSize == 0 {
		return []TimeSlot{}, nil
	}

	booked, err := s.repo.ListOverlapping(ctx, window.OpensAt, window.ClosesAt, q.BarberID)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blockService.ListOverlapping(ctx, window.OpensAt, window.ClosesAt)
	if err != nil {
		return nil, err
	}

	input := SlotInput{
		OpensAt:  window.OpensAt,
		ClosesAt: window.ClosesAt,
		Now:      s.now().In(s.loc),
		Duration: time.Duration(svc.DurationMinutes) * time.Minute,
		PoolSize: poolSize,
	}
	for _, a := range booked {
		input.Appointments = append(input.Appointments, Interval{Start: a.StartsAt, End: a.EndsAt})
	}
	for _, b := range blocks {
		// Shop-wide blocks always apply; barber-scoped blocks only when
		// that exact barber is being queried.
		if b.BarberID == nil || (q.BarberID != "" && *b.BarberID == q.BarberID) {
			input.Blocks = append(input.Blocks, Interval{Start: b.StartsAt, End: b.EndsAt})
		}
	}

	return ComputeSlots(input), nil
}

// Book re-validates the requested interval against live data, resolves
// "any barber" to a concrete one (first-fit, ascending id) and persists
// the appointment. The exclusion constraint behind Repository.Create is
// the backstop for the read-then-write race between instances.
func (s *service) Book(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if !req.StartsAt.Before(req.EndsAt) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartsAt.Before(s.now()) {
		return nil, ErrStartTimePast
	}

	svc, err := s.catalogService.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	// Outstanding-appointment limit, keyed by phone.
	outstanding, err := s.repo.CountFutureConfirmedByPhone(ctx, req.CustomerPhone, s.now())
	if err != nil {
		return nil, err
	}
	if outstanding >= s.bookingLimit {
		return nil, ErrLimitReached
	}

	overlapping, err := s.repo.ListOverlapping(ctx, req.StartsAt, req.EndsAt, "")
	if err != nil {
		return nil, err
	}

	barberID := req.BarberID
	barberName := ""

	if barberID != "" {
		b, err := s.barberService.GetByID(ctx, barberID)
		if err != nil {
			return nil, err
		}
		barberName = b.Name
		for _, a := range overlapping {
			if a.BarberID == barberID {
				return nil, ErrBarberOccupied
			}
		}
	} else {
		active, err := s.barberService.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		if len(overlapping) >= len(active) {
			return nil, ErrSlotFull
		}

		occupied := make(map[string]bool, len(overlapping))
		for _, a := range overlapping {
			occupied[a.BarberID] = true
		}
		for _, b := range active {
			if !occupied[b.ID] {
				barberID = b.ID
				barberName = b.Name
				break
			}
		}
		if barberID == "" {
			// Unreachable given the count check above; kept as a guard.
			return nil, ErrNoBarberFree
		}
	}

	a := &Appointment{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		ServiceName:   svc.Name,
		BarberID:      barberID,
		BarberName:    barberName,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Status:        StatusConfirmed,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	// Fire-and-forget; the booking stands whether or not this delivers.
	s.notifier.BookingConfirmed(a)

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Appointment, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus applies staff-driven transitions. Only confirmed
// appointments may move, to cancelled or completed; both are terminal.
func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Appointment, error) {
	st := Status(status)
	if st != StatusCancelled && st != StatusCompleted {
		return nil, ErrInvalidStatus
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusConfirmed {
		return nil, ErrFinalStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	a.Status = st

	if st == StatusCancelled {
		s.notifier.BookingCancelled(a)
	}

	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
