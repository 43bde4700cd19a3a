// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"petsit/models"
	"petsit/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	profileRepo "petsit/database/repository/profile"
)

// ErrDraftNotFound signals the draft session expired or never existed.
var ErrDraftNotFound = errors.New("booking draft not found or expired")

// InitiateDraft starts a cached booking form for one sitter. The draft lives
// in Redis until confirmed, cancelled or expired; nothing is persisted to the
// bookings collection until confirmation.
func (s *DefaultBookingService) InitiateDraft(ctx context.Context, userID, providerID, date string) (*models.BookingDraft, error) {
	if _, err := s.Profiles.GetByID(ctx, providerID); err != nil {
		if err == profileRepo.ErrNotFound {
			return nil, &NotFoundError{Resource: "profile", ID: providerID}
		}
		return nil, err
	}

	draft := &models.BookingDraft{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		ProviderID: providerID,
		Date:       date,
	}
	s.evaluateDraft(ctx, draft)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateDraft applies a partial selection change and re-validates the whole
// draft, so the caller always sees the current per-field warnings and price
// quote. Selecting an activity replaces any prior selection at weight 100.
func (s *DefaultBookingService) UpdateDraft(ctx context.Context, sessionID, userID string, update DraftUpdate) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	if update.Date != nil {
		draft.Date = *update.Date
		// A new date invalidates any slot selection made for the old one.
		draft.SlotIDs = nil
	}
	if update.SlotIDs != nil {
		draft.SlotIDs = update.SlotIDs
	}
	if update.Activity != nil {
		draft.Activities = []models.BookingActivity{{Kind: *update.Activity, Weight: 100}}
	}
	if update.PetPasses != nil {
		draft.PetPasses = update.PetPasses
	}
	if update.Location != nil {
		draft.Location = *update.Location
	}
	if update.Notes != nil {
		draft.Notes = *update.Notes
	}

	s.evaluateDraft(ctx, draft)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ConfirmDraft turns a clean draft into a persisted booking and drops the
// session. A draft with outstanding warnings fails with the same
// ValidationError the direct create path would produce.
func (s *DefaultBookingService) ConfirmDraft(ctx context.Context, sessionID, userID string) (*models.Booking, error) {
	draft, err := s.loadDraft(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.CreateBooking(ctx, userID, draftInput(draft))
	if err != nil {
		return nil, err
	}
	s.dropDraft(ctx, sessionID)
	return booking, nil
}

// ListPetPasses returns the caller's pets for the booking form's pet picker.
func (s *DefaultBookingService) ListPetPasses(ctx context.Context, userID string) ([]models.PetPass, error) {
	return s.PetPasses.GetByOwner(ctx, userID)
}

// CancelDraft discards the draft session.
func (s *DefaultBookingService) CancelDraft(ctx context.Context, sessionID, userID string) error {
	if _, err := s.loadDraft(ctx, sessionID, userID); err != nil {
		return err
	}
	s.dropDraft(ctx, sessionID)
	return nil
}

// evaluateDraft refreshes Warnings and PriceQuote from the current selection.
// Validation failures are recorded on the draft rather than returned; the
// form keeps working while incomplete.
func (s *DefaultBookingService) evaluateDraft(ctx context.Context, draft *models.BookingDraft) {
	draft.Warnings = nil
	draft.PriceQuote = 0

	booking, err := s.BuildRequest(ctx, draft.UserID, draftInput(draft))
	if err == nil {
		draft.PriceQuote = booking.TotalPrice
		return
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		draft.Warnings = verr.Fields
		return
	}
	draft.Warnings = map[string]string{"draft": err.Error()}
}

func draftInput(draft *models.BookingDraft) models.BookingInput {
	return models.BookingInput{
		ProviderID: draft.ProviderID,
		Date:       draft.Date,
		SlotIDs:    draft.SlotIDs,
		Activities: draft.Activities,
		PetPasses:  draft.PetPasses,
		Location:   draft.Location,
		Notes:      draft.Notes,
	}
}

func (s *DefaultBookingService) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	key := utils.DraftSessionPrefix + draft.SessionID
	if err := s.Sessions.Set(ctx, key, data, utils.DraftSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking draft: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) loadDraft(ctx context.Context, sessionID, userID string) (*models.BookingDraft, error) {
	data, err := s.Sessions.Get(ctx, utils.DraftSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	if draft.UserID != userID {
		return nil, &ForbiddenError{Reason: "draft belongs to another user"}
	}
	return &draft, nil
}

func (s *DefaultBookingService) dropDraft(ctx context.Context, sessionID string) {
	s.Sessions.Del(ctx, utils.DraftSessionPrefix+sessionID)
}
