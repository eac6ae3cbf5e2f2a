package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2026-03-02 in the shop zone, hours 09:00-19:00.
var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), h, m, 0, 0, time.UTC)
}

func openInput(duration time.Duration, poolSize int) SlotInput {
	return SlotInput{
		OpensAt:  at(9, 0),
		ClosesAt: at(19, 0),
		Now:      at(0, 0).AddDate(0, 0, -7), // a week earlier, nothing filtered
		Duration: duration,
		PoolSize: poolSize,
	}
}

func starts(slots []TimeSlot) []string {
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.Label)
	}
	return labels
}

func TestComputeSlotsGrid(t *testing.T) {
	t.Run("45 minute service on a full day", func(t *testing.T) {
		slots := ComputeSlots(openInput(45*time.Minute, 2))
		require.NotEmpty(t, slots)

		assert.Equal(t, at(9, 0), slots[0].StartsAt)
		assert.Equal(t, at(9, 45), slots[0].EndsAt)
		assert.Equal(t, "09:00", slots[0].Label)

		// Last candidate that still fits before closing.
		last := slots[len(slots)-1]
		assert.Equal(t, at(18, 15), last.StartsAt)
		assert.Equal(t, at(19, 0), last.EndsAt)

		// 09:00 through 18:15 on a 15-minute grid.
		assert.Len(t, slots, 38)
		assert.NotContains(t, starts(slots), "18:30")
	})

	t.Run("slot may end exactly at closing time", func(t *testing.T) {
		slots := ComputeSlots(openInput(60*time.Minute, 1))
		require.NotEmpty(t, slots)

		last := slots[len(slots)-1]
		assert.Equal(t, at(18, 0), last.StartsAt)
		assert.Equal(t, at(19, 0), last.EndsAt)
	})

	t.Run("slots are strictly ascending on the grid", func(t *testing.T) {
		slots := ComputeSlots(openInput(30*time.Minute, 1))
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, SlotInterval, slots[i].StartsAt.Sub(slots[i-1].StartsAt))
		}
	})

	t.Run("empty pool yields no slots", func(t *testing.T) {
		slots := ComputeSlots(openInput(30*time.Minute, 0))
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})
}

func TestComputeSlotsPastFilter(t *testing.T) {
	t.Run("today drops already started candidates", func(t *testing.T) {
		in := openInput(45*time.Minute, 1)
		in.Now = at(10, 10)

		slots := ComputeSlots(in)
		require.NotEmpty(t, slots)
		assert.Equal(t, at(10, 15), slots[0].StartsAt)
	})

	t.Run("future date keeps the whole day", func(t *testing.T) {
		in := openInput(45*time.Minute, 1)
		in.Now = at(10, 10).AddDate(0, 0, -1)

		slots := ComputeSlots(in)
		require.NotEmpty(t, slots)
		assert.Equal(t, at(9, 0), slots[0].StartsAt)
	})
}

func TestComputeSlotsBlocks(t *testing.T) {
	in := openInput(45*time.Minute, 2)
	in.Blocks = []Interval{{Start: at(12, 0), End: at(13, 0)}}

	slots := ComputeSlots(in)
	labels := starts(slots)

	// Anything whose 45 minutes would touch [12:00, 13:00) is gone.
	assert.NotContains(t, labels, "11:30")
	assert.NotContains(t, labels, "12:00")
	assert.NotContains(t, labels, "12:45")

	// Touching endpoints do not conflict.
	assert.Contains(t, labels, "11:15") // ends 12:00 sharp
	assert.Contains(t, labels, "13:00")
}

func TestComputeSlotsCapacity(t *testing.T) {
	booked := []Interval{{Start: at(10, 0), End: at(10, 45)}}

	t.Run("one booking leaves a two barber pool open", func(t *testing.T) {
		in := openInput(45*time.Minute, 2)
		in.Appointments = booked

		assert.Contains(t, starts(ComputeSlots(in)), "10:00")
	})

	t.Run("one booking closes a single barber pool", func(t *testing.T) {
		in := openInput(45*time.Minute, 1)
		in.Appointments = booked

		labels := starts(ComputeSlots(in))
		assert.NotContains(t, labels, "10:00")
		assert.NotContains(t, labels, "09:30")
		assert.Contains(t, labels, "10:45")
	})

	t.Run("two bookings close a two barber pool", func(t *testing.T) {
		in := openInput(45*time.Minute, 2)
		in.Appointments = []Interval{
			{Start: at(10, 0), End: at(10, 45)},
			{Start: at(10, 15), End: at(11, 0)},
		}

		labels := starts(ComputeSlots(in))
		// 10:00 overlaps both existing bookings.
		assert.NotContains(t, labels, "10:00")
		assert.NotContains(t, labels, "10:15")
		// 09:15 ends 10:00 and only touches, so it stays.
		assert.Contains(t, labels, "09:15")
		assert.Contains(t, labels, "11:00")
	})
}

func TestIntervalOverlaps(t *testing.T) {
	iv := Interval{Start: at(10, 0), End: at(11, 0)}

	assert.True(t, iv.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, iv.Overlaps(at(9, 30), at(10, 15)))
	assert.True(t, iv.Overlaps(at(9, 0), at(12, 0)))

	// Half-open semantics: shared endpoints are fine.
	assert.False(t, iv.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, iv.Overlaps(at(9, 0), at(10, 0)))
}
