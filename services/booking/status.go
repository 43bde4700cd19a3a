// File: services/booking/status.go
package booking

import (
	"context"
	"time"

	"petsit/models"
	"petsit/utils"

	"go.uber.org/zap"

	bookingRepo "petsit/database/repository/booking"
)

// DeriveEffectiveStatus computes the status a booking should present at the
// given instant. Only accepted/current bookings move: an accepted booking
// whose first slot has started is current, and one whose date has fully
// passed is done. Everything else is reported as stored.
func DeriveEffectiveStatus(booking *models.Booking, now time.Time) string {
	switch booking.Status {
	case models.BookingAccepted, models.BookingCurrent:
	default:
		return booking.Status
	}

	day, err := time.ParseInLocation(utils.DateLayout, booking.Date, now.Location())
	if err != nil {
		return booking.Status
	}
	if !now.Before(day.AddDate(0, 0, 1)) {
		return models.BookingDone
	}

	if len(booking.SlotTimes) == 0 {
		return booking.Status
	}
	startMinutes, err := utils.TimeLabelToMinutes(booking.SlotTimes[0])
	if err != nil {
		return booking.Status
	}
	if !now.Before(day.Add(time.Duration(startMinutes) * time.Minute)) {
		return models.BookingCurrent
	}
	return models.BookingAccepted
}

// SweepStatuses persists derived statuses for accepted/current bookings whose
// date has arrived or passed. Run periodically by the background worker; the
// same derivation is also applied on every read, so the sweep only keeps
// stored state and notifications in line. Returns the number of bookings
// updated.
func (s *DefaultBookingService) SweepStatuses(ctx context.Context, now time.Time) (int, error) {
	logger := utils.GetLogger()

	candidates, err := s.Bookings.ListSweepable(ctx, now.Format(utils.DateLayout))
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range candidates {
		booking := &candidates[i]
		derived := DeriveEffectiveStatus(booking, now)
		if derived == booking.Status {
			continue
		}
		prevStatus := booking.Status
		booking.Status = derived
		// A system-driven change is news to both parties.
		booking.ReadState.IsNewCreator = true
		booking.ReadState.IsNewProvider = true

		err := s.Bookings.ReplaceIfStatus(ctx, booking, prevStatus)
		if err == bookingRepo.ErrStaleStatus || err == bookingRepo.ErrNotFound {
			// Lost a race with a user-initiated transition; the next sweep
			// will pick the booking up again if it still applies.
			continue
		}
		if err != nil {
			return updated, err
		}
		updated++
		// done is terminal: the booking's slots just left the uniqueness
		// filter, so the cached day summary is stale.
		if models.IsTerminalStatus(booking.Status) {
			s.Availability.InvalidateCache(ctx, booking.BookedFrom)
		}
	}

	if updated > 0 {
		logger.Info("status sweep applied", zap.Int("updated", updated))
	}
	return updated, nil
}
