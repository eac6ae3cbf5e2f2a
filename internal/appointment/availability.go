package appointment

import "time"

// SlotInterval is the fixed grid step for candidate start times. It is
// independent of service duration so slots line up across services.
const SlotInterval = 15 * time.Minute

// TimeSlot is one bookable interval offered to the client.
type TimeSlot struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Label    string    `json:"label"` // "HH:MM" of the start, shop-local
}

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval intersects [start, end).
// Touching endpoints do not overlap.
func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && i.End.After(start)
}

// SlotInput carries everything slot computation needs. It is deliberately
// free of repository types so the calculation stays a pure function.
type SlotInput struct {
	OpensAt  time.Time // window start, anchored to the queried date in shop time
	ClosesAt time.Time // window end; a slot may end exactly here
	Now      time.Time
	Duration time.Duration // service duration
	PoolSize int           // barbers able to serve the query (1 for a specific barber)

	Appointments []Interval // existing non-cancelled bookings across the pool
	Blocks       []Interval // blocks applicable to the pool
}

// ComputeSlots walks the 15-minute grid from opening to closing time and
// keeps every candidate the pool can still serve. A slot is dropped when
// it would run past closing, has already started (today only), touches a
// block, or every barber in the pool is busy for its whole duration.
// Results are in ascending order by construction.
func ComputeSlots(in SlotInput) []TimeSlot {
	slots := []TimeSlot{}
	if in.PoolSize <= 0 {
		return slots
	}

	filterPast := sameDay(in.OpensAt, in.Now)

	for start := in.OpensAt; start.Before(in.ClosesAt); start = start.Add(SlotInterval) {
		end := start.Add(in.Duration)
		if end.After(in.ClosesAt) {
			continue
		}
		if filterPast && start.Before(in.Now) {
			continue
		}
		if anyOverlap(in.Blocks, start, end) {
			continue
		}
		if countOverlapping(in.Appointments, start, end) >= in.PoolSize {
			continue
		}

		slots = append(slots, TimeSlot{
			StartsAt: start,
			EndsAt:   end,
			Label:    start.Format("15:04"),
		})
	}

	return slots
}

func anyOverlap(intervals []Interval, start, end time.Time) bool {
	for _, iv := range intervals {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func countOverlapping(intervals []Interval, start, end time.Time) int {
	count := 0
	for _, iv := range intervals {
		if iv.Overlaps(start, end) {
			count++
		}
	}
	return count
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
