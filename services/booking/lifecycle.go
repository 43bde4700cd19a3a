// File: services/booking/lifecycle.go
package booking

import (
	"context"
	"fmt"
	"time"

	"petsit/models"
	"petsit/utils"

	"go.uber.org/zap"

	bookingRepo "petsit/database/repository/booking"
)

// CreateBooking validates the selection and persists the booking. Slot
// consumption happens atomically with the insert: the partial unique index on
// slotIds rejects the write if any requested slot is already held by a
// non-terminal booking, which surfaces here as a ConflictError.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.BuildRequest(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotConsumed {
			return nil, &ConflictError{Reason: "one or more selected slots were just booked; refresh availability and retry"}
		}
		return nil, err
	}
	s.Availability.InvalidateCache(ctx, booking.BookedFrom)

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("bookedBy", booking.BookedBy),
		zap.String("bookedFrom", booking.BookedFrom),
		zap.String("date", booking.Date),
		zap.Float64("totalPrice", booking.TotalPrice),
	)
	return booking, nil
}

// GetBooking loads a booking for one of its parties, with the effective
// status derived on read.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, viewerID string) (*models.Booking, error) {
	booking, err := s.loadFor(ctx, bookingID, viewerID)
	if err != nil {
		return nil, err
	}
	booking.Status = DeriveEffectiveStatus(booking, time.Now())
	return booking, nil
}

// ListBookings lists the party's bookings as requester ("creator") or as
// sitter ("provider"), with effective statuses derived on read.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID, role string) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	switch role {
	case "provider":
		bookings, err = s.Bookings.ListByProvider(ctx, userID)
	case "creator", "":
		bookings, err = s.Bookings.ListByCreator(ctx, userID)
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range bookings {
		bookings[i].Status = DeriveEffectiveStatus(&bookings[i], now)
	}
	return bookings, nil
}

// Transition applies accept, decline or cancel. Accept and decline belong to
// the sitter while the booking is merely requested; cancel belongs to either
// party once the booking is accepted or current. Decline and cancel end the
// booking in a terminal status, which releases its slots at the storage layer.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID, actorID, action string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.loadFor(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	prevStatus := booking.Status
	effective := DeriveEffectiveStatus(booking, time.Now())
	isProvider := actorID == booking.BookedFrom

	switch action {
	case ActionAccept:
		if !isProvider {
			return nil, &ForbiddenError{Reason: "only the sitter may accept a booking"}
		}
		if effective != models.BookingRequested {
			return nil, &ConflictError{Reason: fmt.Sprintf("cannot accept a %s booking", effective)}
		}
		booking.Status = models.BookingAccepted
	case ActionDecline:
		if !isProvider {
			return nil, &ForbiddenError{Reason: "only the sitter may decline a booking"}
		}
		if effective != models.BookingRequested {
			return nil, &ConflictError{Reason: fmt.Sprintf("cannot decline a %s booking", effective)}
		}
		booking.Status = models.BookingDeclined
	case ActionCancel:
		if effective != models.BookingAccepted && effective != models.BookingCurrent {
			return nil, &ConflictError{Reason: fmt.Sprintf("cannot cancel a %s booking", effective)}
		}
		booking.Status = models.BookingCancelled
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}

	// The counterparty has something new to look at.
	if isProvider {
		booking.ReadState.IsNewCreator = true
	} else {
		booking.ReadState.IsNewProvider = true
	}

	if err := s.replace(ctx, booking, prevStatus); err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(booking.Status) {
		s.Availability.InvalidateCache(ctx, booking.BookedFrom)
	}

	logger.Info("booking transitioned",
		zap.String("bookingId", booking.ID),
		zap.String("action", action),
		zap.String("status", booking.Status),
	)
	return booking, nil
}

// MarkRead clears the acting party's unread flag. The counterparty's flag is
// untouched; the two read states are independent.
func (s *DefaultBookingService) MarkRead(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	booking, err := s.loadFor(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	if actorID == booking.BookedFrom {
		booking.ReadState.IsNewProvider = false
	} else {
		booking.ReadState.IsNewCreator = false
	}
	if err := s.replace(ctx, booking, booking.Status); err != nil {
		return nil, err
	}
	return booking, nil
}

// CloseReview records that the acting party left a review (or explicitly
// declined to). Each party closes their review at most once, and only while
// the booking is current or done; closing a review never changes the booking
// status.
func (s *DefaultBookingService) CloseReview(ctx context.Context, bookingID, actorID string, decline bool) (*models.Booking, error) {
	booking, err := s.loadFor(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	effective := DeriveEffectiveStatus(booking, time.Now())
	if effective != models.BookingCurrent && effective != models.BookingDone {
		return nil, &ConflictError{Reason: "booking is not eligible for review yet"}
	}

	if actorID == booking.BookedFrom {
		if booking.Reviews.ReviewProviderDone {
			return nil, &ConflictError{Reason: "review already closed"}
		}
		booking.Reviews.ReviewProviderDone = true
		booking.Reviews.ReviewProvider = !decline
	} else {
		if booking.Reviews.ReviewCreatorDone {
			return nil, &ConflictError{Reason: "review already closed"}
		}
		booking.Reviews.ReviewCreatorDone = true
		booking.Reviews.ReviewCreator = !decline
	}

	if err := s.replace(ctx, booking, booking.Status); err != nil {
		return nil, err
	}
	return booking, nil
}

// loadFor fetches a booking and checks the viewer is one of its parties.
func (s *DefaultBookingService) loadFor(ctx context.Context, bookingID, viewerID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return nil, err
	}
	if viewerID != booking.BookedBy && viewerID != booking.BookedFrom {
		return nil, &ForbiddenError{Reason: "not a party to this booking"}
	}
	return booking, nil
}

func (s *DefaultBookingService) replace(ctx context.Context, booking *models.Booking, expectStatus string) error {
	err := s.Bookings.ReplaceIfStatus(ctx, booking, expectStatus)
	switch err {
	case nil:
		return nil
	case bookingRepo.ErrStaleStatus:
		return &ConflictError{Reason: "booking changed concurrently; reload and retry"}
	case bookingRepo.ErrNotFound:
		return &NotFoundError{Resource: "booking", ID: booking.ID}
	default:
		return err
	}
}
