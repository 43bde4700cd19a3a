package booking

import (
	"context"
	"testing"
	"time"

	"petsit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEffectiveStatus(t *testing.T) {
	booking := &models.Booking{
		Date:      "2024-06-01",
		SlotTimes: []string{"09:00", "09:15"},
	}

	tests := []struct {
		name   string
		status string
		now    time.Time
		want   string
	}{
		{"requested never derives", models.BookingRequested, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC), models.BookingRequested},
		{"declined stays declined", models.BookingDeclined, time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC), models.BookingDeclined},
		{"accepted before start", models.BookingAccepted, time.Date(2024, 6, 1, 8, 59, 0, 0, time.UTC), models.BookingAccepted},
		{"accepted at first slot start", models.BookingAccepted, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), models.BookingCurrent},
		{"accepted mid-run", models.BookingAccepted, time.Date(2024, 6, 1, 9, 20, 0, 0, time.UTC), models.BookingCurrent},
		{"accepted late same day", models.BookingAccepted, time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC), models.BookingCurrent},
		{"accepted after the day", models.BookingAccepted, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), models.BookingDone},
		{"current after the day", models.BookingCurrent, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), models.BookingDone},
		{"current during the day", models.BookingCurrent, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), models.BookingCurrent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := *booking
			b.Status = tt.status
			assert.Equal(t, tt.want, DeriveEffectiveStatus(&b, tt.now))
		})
	}
}

func TestSweepStatuses_PersistsDerivedStatuses(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	yesterday := repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-1",
		Date:       "2024-05-31",
		SlotIDs:    []string{"slot-a"},
		SlotTimes:  []string{"09:00"},
		Status:     models.BookingAccepted,
	})
	started := repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-1",
		Date:       "2024-06-01",
		SlotIDs:    []string{"slot-b"},
		SlotTimes:  []string{"08:00"},
		Status:     models.BookingAccepted,
	})
	notYet := repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-1",
		Date:       "2024-06-01",
		SlotIDs:    []string{"slot-c"},
		SlotTimes:  []string{"18:00"},
		Status:     models.BookingAccepted,
	})

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	updated, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	done, err := repo.GetByID(ctx, yesterday.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingDone, done.Status)
	assert.True(t, done.ReadState.IsNewCreator)
	assert.True(t, done.ReadState.IsNewProvider)

	current, err := repo.GetByID(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCurrent, current.Status)

	untouched, err := repo.GetByID(ctx, notYet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, untouched.Status)
	assert.False(t, untouched.ReadState.IsNewCreator)
}

func TestSweepStatuses_InvalidatesAvailabilityOnDone(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-1",
		Date:       "2024-05-31",
		SlotIDs:    []string{"slot-a"},
		SlotTimes:  []string{"09:00"},
		Status:     models.BookingAccepted,
	})
	repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-2",
		Date:       "2024-06-01",
		SlotIDs:    []string{"slot-b"},
		SlotTimes:  []string{"08:00"},
		Status:     models.BookingAccepted,
	})

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	_, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)

	// Moving to done releases slots, so the sitter's cached day summary must
	// be dropped; moving to current keeps the slots consumed and does not.
	avail := svc.Availability.(*fakeAvailability)
	assert.Contains(t, avail.invalidated, "sitter-1")
	assert.NotContains(t, avail.invalidated, "sitter-2")
}

func TestSweepStatuses_IsIdempotent(t *testing.T) {
	svc, _, repo := newTestService()
	ctx := context.Background()

	repo.put(&models.Booking{
		BookedBy:   "user-1",
		BookedFrom: "sitter-1",
		Date:       "2024-05-31",
		SlotIDs:    []string{"slot-a"},
		SlotTimes:  []string{"09:00"},
		Status:     models.BookingAccepted,
	})

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	first, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.SweepStatuses(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}
