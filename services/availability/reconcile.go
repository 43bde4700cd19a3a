// File: services/availability/reconcile.go
package availability

import (
	"context"
	"fmt"
	"sort"

	"petsit/models"
	"petsit/utils"

	"go.uber.org/zap"
)

// reconcilePlan is the computed minimal change set for one reconcile call.
type reconcilePlan struct {
	create    []models.Slot
	deleteIDs []string
}

// planReconcile computes the minimal create/delete set for one date. The
// desired state for the date is exactly requestedTimes; existing slots held by
// a non-terminal booking are never deleted, even when their time falls outside
// the requested set.
func planReconcile(creatorID, date string, requestedTimes []string, existing []models.Slot, consumed map[string]string) reconcilePlan {
	requested := make(map[string]bool, len(requestedTimes))
	for _, t := range requestedTimes {
		requested[t] = true
	}

	present := make(map[string]bool, len(existing))
	var plan reconcilePlan
	for _, slot := range existing {
		present[slot.Time] = true
		if requested[slot.Time] {
			continue
		}
		if _, held := consumed[slot.ID]; held {
			// Protects confirmed bookings from being silently revoked.
			continue
		}
		plan.deleteIDs = append(plan.deleteIDs, slot.ID)
	}

	times := make([]string, 0, len(requested))
	for t := range requested {
		if !present[t] {
			times = append(times, t)
		}
	}
	sort.Strings(times)
	for _, t := range times {
		plan.create = append(plan.create, models.Slot{
			CreatorID: creatorID,
			Date:      date,
			Time:      t,
		})
	}
	return plan
}

// dedupe drops repeated entries, keeping first-occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ReconcileSlots brings the sitter's persisted slots on the given dates in
// line with the requested dates x times cross-product. Dates not mentioned in
// the request are untouched; an empty date list is a no-op. The whole change
// set is applied atomically.
func (s *DefaultAvailabilityService) ReconcileSlots(ctx context.Context, creatorID string, dates, times []string) (*models.ReconcileResult, error) {
	logger := utils.GetLogger()

	if len(dates) == 0 {
		return &models.ReconcileResult{}, nil
	}
	for _, d := range dates {
		if !utils.ValidDate(d) {
			return nil, fmt.Errorf("invalid date %q", d)
		}
	}
	for _, t := range times {
		if _, err := utils.TimeLabelToMinutes(t); err != nil {
			return nil, err
		}
	}
	// The request encodes sets; repeated entries must not plan the same
	// (date,time) twice or the unique index aborts the whole apply.
	dates = dedupe(dates)
	times = dedupe(times)

	existing, err := s.Slots.GetByCreatorAndDates(ctx, creatorID, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing slots: %w", err)
	}
	consumed, err := s.Bookings.ConsumedSlots(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consumed slots: %w", err)
	}

	byDate := make(map[string][]models.Slot)
	for _, slot := range existing {
		byDate[slot.Date] = append(byDate[slot.Date], slot)
	}

	var total reconcilePlan
	for _, date := range dates {
		plan := planReconcile(creatorID, date, times, byDate[date], consumed)
		total.create = append(total.create, plan.create...)
		total.deleteIDs = append(total.deleteIDs, plan.deleteIDs...)
	}

	if err := s.Slots.ApplyReconcile(ctx, total.create, total.deleteIDs); err != nil {
		return nil, err
	}
	s.InvalidateCache(ctx, creatorID)

	logger.Info("reconciled slots",
		zap.String("creatorId", creatorID),
		zap.Int("created", len(total.create)),
		zap.Int("deleted", len(total.deleteIDs)),
	)
	return &models.ReconcileResult{
		Created: len(total.create),
		Deleted: len(total.deleteIDs),
	}, nil
}
