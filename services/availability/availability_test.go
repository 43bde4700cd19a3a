package availability

import (
	"context"
	"testing"

	"petsit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability_Classification(t *testing.T) {
	svc, slots, bookings := newTestService()
	ctx := context.Background()

	// 2024-06-01 has one active and one booked slot: the day is active.
	free := slots.add("sitter-1", "2024-06-01", "09:00")
	booked := slots.add("sitter-1", "2024-06-01", "09:15")
	bookings.consume(booked.ID, "booking-1")
	_ = free

	// 2024-06-02 is fully consumed: booked-only.
	fullyBooked := slots.add("sitter-1", "2024-06-02", "10:00")
	bookings.consume(fullyBooked.ID, "booking-2")

	result, err := svc.ComputeAvailability(ctx, "sitter-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-01"}, result.ActiveDays)
	assert.Equal(t, []string{"2024-06-02"}, result.BookedOnlyDays)
}

func TestComputeAvailability_NoSlotsMeansAbsent(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.ComputeAvailability(context.Background(), "sitter-1")
	require.NoError(t, err)
	assert.Empty(t, result.ActiveDays)
	assert.Empty(t, result.BookedOnlyDays)
}

func TestListSlots_DerivedStatusAndFilter(t *testing.T) {
	svc, slots, bookings := newTestService()
	ctx := context.Background()

	slots.add("sitter-1", "2024-06-01", "09:00")
	booked := slots.add("sitter-1", "2024-06-01", "09:15")
	bookings.consume(booked.ID, "booking-1")

	all, err := svc.ListSlots(ctx, "sitter-1", nil, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.SlotStatusActive, all[0].Status)
	assert.Equal(t, models.SlotStatusBooked, all[1].Status)
	assert.Equal(t, "booking-1", all[1].BookingID)

	active, err := svc.ListSlots(ctx, "sitter-1", nil, models.SlotStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "09:00", active[0].Time)
}

func TestEditGrid_FlagsAcrossDates(t *testing.T) {
	svc, slots, bookings := newTestService()
	ctx := context.Background()

	// 09:00 active on day one, booked on day two, unset on neither.
	slots.add("sitter-1", "2024-06-01", "09:00")
	booked := slots.add("sitter-1", "2024-06-02", "09:00")
	bookings.consume(booked.ID, "booking-1")

	// 09:15 set on day one only: free on at least one date.
	slots.add("sitter-1", "2024-06-01", "09:15")

	grid, err := svc.EditGrid(ctx, "sitter-1", []string{"2024-06-01", "2024-06-02"})
	require.NoError(t, err)
	require.Len(t, grid, 96)

	byTime := make(map[string]models.TimeFlags, len(grid))
	for _, flags := range grid {
		byTime[flags.Time] = flags
	}

	nine := byTime["09:00"]
	assert.True(t, nine.IsActive)
	assert.True(t, nine.IsBooked)
	assert.False(t, nine.IsFree, "09:00 is set on every selected date")

	nineFifteen := byTime["09:15"]
	assert.True(t, nineFifteen.IsActive)
	assert.False(t, nineFifteen.IsBooked)
	assert.True(t, nineFifteen.IsFree, "09:15 is unset on one of the dates")

	ten := byTime["10:00"]
	assert.False(t, ten.IsActive)
	assert.False(t, ten.IsBooked)
	assert.True(t, ten.IsFree)
}

func TestEditGrid_EmptyDates(t *testing.T) {
	svc, _, _ := newTestService()

	grid, err := svc.EditGrid(context.Background(), "sitter-1", nil)
	require.NoError(t, err)
	assert.Empty(t, grid)
}
