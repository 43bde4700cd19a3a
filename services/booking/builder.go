// File: services/booking/builder.go
package booking

import (
	"context"
	"fmt"
	"sort"

	"petsit/models"
	"petsit/utils"

	profileRepo "petsit/database/repository/profile"
)

// slotsContiguous reports whether the sorted time labels form a strict
// 15-minute sequence with no gaps. Fewer than two slots are trivially
// contiguous.
func slotsContiguous(times []string) bool {
	minutes := make([]int, 0, len(times))
	for _, t := range times {
		m, err := utils.TimeLabelToMinutes(t)
		if err != nil {
			return false
		}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)
	for i := 1; i < len(minutes); i++ {
		if minutes[i]-minutes[i-1] != utils.SlotMinutes {
			return false
		}
	}
	return true
}

// computePrice derives the weighted total for the booked time:
// sum over activities of hourlyRate x (slotMinutes/60) x (weight/100),
// rounded to two decimals.
func computePrice(profile *models.Profile, activities []models.BookingActivity, slotCount int) float64 {
	totalMinutes := float64(slotCount * utils.SlotMinutes)
	var total float64
	for _, act := range activities {
		offering := profile.Activities[act.Kind]
		total += offering.Price * (totalMinutes / 60.0) * (float64(act.Weight) / 100.0)
	}
	return utils.RoundPrice(total)
}

// BuildRequest validates a requester's selection and assembles the priced
// booking record without persisting it. All field failures are collected into
// one ValidationError so the caller can highlight every invalid field at
// once; dangling slot or profile references surface as NotFoundError instead.
func (s *DefaultBookingService) BuildRequest(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	if input.ProviderID == "" {
		return nil, &NotFoundError{Resource: "profile", ID: "(unset)"}
	}
	profile, err := s.Profiles.GetByID(ctx, input.ProviderID)
	if err == profileRepo.ErrNotFound {
		return nil, &NotFoundError{Resource: "profile", ID: input.ProviderID}
	}
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}

	// Date: required, and the sitter must actually have slots on it.
	if input.Date == "" || !utils.ValidDate(input.Date) {
		verr.Flag(FieldDate, "a valid date is required")
	} else {
		daySlots, err := s.Slots.GetByCreatorAndDate(ctx, input.ProviderID, input.Date)
		if err != nil {
			return nil, err
		}
		if len(daySlots) == 0 {
			verr.Flag(FieldDate, "sitter has no slots on this date")
		}
	}

	// Slots: non-empty, existing, owned by the sitter, on the chosen date,
	// and mutually contiguous. Contiguity is a distinct flag, independent of
	// the emptiness check.
	var slotTimes []string
	if len(input.SlotIDs) == 0 {
		verr.Flag(FieldSlots, "at least one slot is required")
	} else {
		slotIDs := make([]string, 0, len(input.SlotIDs))
		seen := make(map[string]bool, len(input.SlotIDs))
		for _, id := range input.SlotIDs {
			if seen[id] {
				verr.Flag(FieldSlots, "duplicate slot selection")
				continue
			}
			seen[id] = true
			slotIDs = append(slotIDs, id)
		}
		slots, err := s.Slots.GetByIDs(ctx, slotIDs)
		if err != nil {
			return nil, err
		}
		if len(slots) != len(slotIDs) {
			return nil, &NotFoundError{Resource: "slot", ID: missingSlotID(slotIDs, slots)}
		}
		for _, slot := range slots {
			if slot.CreatorID != input.ProviderID {
				verr.Flag(FieldSlots, "slot does not belong to this sitter")
			}
			if input.Date != "" && slot.Date != input.Date {
				verr.Flag(FieldSlots, "slot does not belong to the chosen date")
			}
			slotTimes = append(slotTimes, slot.Time)
		}
		sort.Strings(slotTimes)
		if !slotsContiguous(slotTimes) {
			verr.Flag(FieldContiguity, "selected slots are not contiguous")
		}
	}

	// Activities: non-empty, enumerated, offered by the sitter, weights
	// summing to exactly 100. The model accepts multiple weighted activities
	// even though the form flow only ever yields one at 100.
	if len(input.Activities) == 0 {
		verr.Flag(FieldActivities, "an activity is required")
	} else {
		weightSum := 0
		for _, act := range input.Activities {
			if !models.IsActivityKind(act.Kind) {
				verr.Flag(FieldActivities, fmt.Sprintf("unknown activity %q", act.Kind))
				continue
			}
			offering, ok := profile.Activities[act.Kind]
			if !ok || !offering.Offered {
				verr.Flag(FieldActivities, fmt.Sprintf("sitter does not offer %q", act.Kind))
			}
			if act.Weight <= 0 {
				verr.Flag(FieldActivities, "activity weight must be positive")
			}
			weightSum += act.Weight
		}
		if weightSum != 100 {
			verr.Flag(FieldActivities, "activity weights must sum to 100")
		}
	}

	// Pet passes: non-empty, owned by the requester, species accepted by the
	// sitter.
	if len(input.PetPasses) == 0 {
		verr.Flag(FieldPetPasses, "at least one pet is required")
	} else {
		passes, err := s.PetPasses.GetByIDs(ctx, input.PetPasses)
		if err != nil {
			return nil, err
		}
		if len(passes) != len(input.PetPasses) {
			verr.Flag(FieldPetPasses, "unknown pet pass")
		}
		for _, pass := range passes {
			if pass.OwnerID != userID {
				verr.Flag(FieldPetPasses, "pet pass does not belong to you")
			}
			if !profile.Accepts(pass.Type) {
				verr.Flag(FieldPetPasses, fmt.Sprintf("sitter does not take %ss", pass.Type))
			}
		}
	}

	// Location: a concrete meeting point, not an unset sentinel.
	if input.Location.IsZero() {
		verr.Flag(FieldLocation, "a meeting location is required")
	}

	if verr.HasFlags() {
		return nil, verr
	}

	return &models.Booking{
		BookedBy:   userID,
		BookedFrom: input.ProviderID,
		Date:       input.Date,
		SlotIDs:    input.SlotIDs,
		SlotTimes:  slotTimes,
		Activities: input.Activities,
		PetPasses:  input.PetPasses,
		Location:   input.Location,
		Notes:      input.Notes,
		TotalPrice: computePrice(profile, input.Activities, len(input.SlotIDs)),
		Status:     models.BookingRequested,
		ReadState:  models.ReadState{IsNewProvider: true},
	}, nil
}

func missingSlotID(requested []string, found []models.Slot) string {
	present := make(map[string]bool, len(found))
	for _, slot := range found {
		present[slot.ID] = true
	}
	for _, id := range requested {
		if !present[id] {
			return id
		}
	}
	return "(unknown)"
}
