// File: services/availability/availability.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"petsit/models"
	"petsit/utils"

	"go.uber.org/zap"
)

// ListSlots returns the sitter's slots with their derived status, optionally
// filtered by dates and by status ("active" or "booked").
func (s *DefaultAvailabilityService) ListSlots(ctx context.Context, creatorID string, dates []string, status string) ([]models.SlotView, error) {
	var (
		slots []models.Slot
		err   error
	)
	if len(dates) > 0 {
		slots, err = s.Slots.GetByCreatorAndDates(ctx, creatorID, dates)
	} else {
		slots, err = s.Slots.GetByCreator(ctx, creatorID)
	}
	if err != nil {
		return nil, err
	}

	consumed, err := s.Bookings.ConsumedSlots(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	views := make([]models.SlotView, 0, len(slots))
	for _, slot := range slots {
		view := models.SlotView{Slot: slot, Status: models.SlotStatusActive}
		if bookingID, held := consumed[slot.ID]; held {
			view.Status = models.SlotStatusBooked
			view.BookingID = bookingID
		}
		if status != "" && view.Status != status {
			continue
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Date == views[j].Date {
			return views[i].Time < views[j].Time
		}
		return views[i].Date < views[j].Date
	})
	return views, nil
}

// classifyDays derives the day-level availability from raw slots and the
// consumed-slot map. Both calendars (sitter editor and requester view) go
// through this single derivation.
func classifyDays(slots []models.Slot, consumed map[string]string) *models.DayAvailability {
	hasActive := make(map[string]bool)
	hasBooked := make(map[string]bool)
	for _, slot := range slots {
		if _, held := consumed[slot.ID]; held {
			hasBooked[slot.Date] = true
		} else {
			hasActive[slot.Date] = true
		}
	}

	result := &models.DayAvailability{
		ActiveDays:     []string{},
		BookedOnlyDays: []string{},
	}
	for date := range hasActive {
		result.ActiveDays = append(result.ActiveDays, date)
	}
	for date := range hasBooked {
		if !hasActive[date] {
			result.BookedOnlyDays = append(result.BookedOnlyDays, date)
		}
	}
	sort.Strings(result.ActiveDays)
	sort.Strings(result.BookedOnlyDays)
	return result
}

// ComputeAvailability classifies every calendar day the sitter has slots on.
// Results are cached briefly; every slot or booking write against the sitter
// invalidates the cache.
func (s *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, creatorID string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()
	cacheKey := utils.AvailabilityCachePrefix + creatorID

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var result models.DayAvailability
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	slots, err := s.Slots.GetByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load slots: %w", err)
	}
	consumed, err := s.Bookings.ConsumedSlots(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consumed slots: %w", err)
	}

	result := classifyDays(slots, consumed)

	if s.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.String("creatorId", creatorID), zap.Error(err))
			}
		}
	}
	return result, nil
}

// EditGrid derives the per-time-of-day flags for a set of dates being edited
// simultaneously. A time is active/booked/free if it is so on at least one of
// the dates; the flags are independent and drive multi-date bulk editing.
func (s *DefaultAvailabilityService) EditGrid(ctx context.Context, creatorID string, dates []string) ([]models.TimeFlags, error) {
	if len(dates) == 0 {
		return []models.TimeFlags{}, nil
	}
	for _, d := range dates {
		if !utils.ValidDate(d) {
			return nil, fmt.Errorf("invalid date %q", d)
		}
	}

	slots, err := s.Slots.GetByCreatorAndDates(ctx, creatorID, dates)
	if err != nil {
		return nil, err
	}
	consumed, err := s.Bookings.ConsumedSlots(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	type perTime struct {
		activeCount int
		bookedCount int
		setCount    int
	}
	byTime := make(map[string]*perTime)
	for _, slot := range slots {
		pt := byTime[slot.Time]
		if pt == nil {
			pt = &perTime{}
			byTime[slot.Time] = pt
		}
		pt.setCount++
		if _, held := consumed[slot.ID]; held {
			pt.bookedCount++
		} else {
			pt.activeCount++
		}
	}

	grid := make([]models.TimeFlags, 0, 24*60/utils.SlotMinutes)
	for minutes := 0; minutes < 24*60; minutes += utils.SlotMinutes {
		label := utils.MinutesToTimeLabel(minutes)
		flags := models.TimeFlags{Time: label, IsFree: true}
		if pt, ok := byTime[label]; ok {
			flags.IsActive = pt.activeCount > 0
			flags.IsBooked = pt.bookedCount > 0
			flags.IsFree = pt.setCount < len(dates)
		}
		grid = append(grid, flags)
	}
	return grid, nil
}

// InvalidateCache drops the cached availability summary for a sitter.
func (s *DefaultAvailabilityService) InvalidateCache(ctx context.Context, creatorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCachePrefix+creatorID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("creatorId", creatorID), zap.Error(err))
	}
}
