package availability

import (
	"context"
	"fmt"

	"petsit/models"
)

// fakeSlotRepo is an in-memory SlotRepository for service tests.
type fakeSlotRepo struct {
	slots  map[string]models.Slot // by slot ID
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]models.Slot)}
}

func (f *fakeSlotRepo) add(creatorID, date, timeLabel string) models.Slot {
	f.nextID++
	slot := models.Slot{
		ID:        fmt.Sprintf("slot-%d", f.nextID),
		CreatorID: creatorID,
		Date:      date,
		Time:      timeLabel,
	}
	f.slots[slot.ID] = slot
	return slot
}

func (f *fakeSlotRepo) GetByCreator(_ context.Context, creatorID string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range f.slots {
		if s.CreatorID == creatorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) GetByCreatorAndDate(ctx context.Context, creatorID, date string) ([]models.Slot, error) {
	return f.GetByCreatorAndDates(ctx, creatorID, []string{date})
}

func (f *fakeSlotRepo) GetByCreatorAndDates(_ context.Context, creatorID string, dates []string) ([]models.Slot, error) {
	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
	}
	var out []models.Slot
	for _, s := range f.slots {
		if s.CreatorID == creatorID && wanted[s.Date] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) GetByIDs(_ context.Context, ids []string) ([]models.Slot, error) {
	var out []models.Slot
	for _, id := range ids {
		if s, ok := f.slots[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSlotRepo) ApplyReconcile(_ context.Context, create []models.Slot, deleteIDs []string) error {
	for _, id := range deleteIDs {
		if _, ok := f.slots[id]; !ok {
			return fmt.Errorf("delete of unknown slot %s", id)
		}
	}
	for _, slot := range create {
		f.nextID++
		slot.ID = fmt.Sprintf("slot-%d", f.nextID)
		f.slots[slot.ID] = slot
	}
	for _, id := range deleteIDs {
		delete(f.slots, id)
	}
	return nil
}

func (f *fakeSlotRepo) EnsureIndexes() error { return nil }

// fakeBookingRepo implements only the read side the availability service
// needs: the consumed-slot map.
type fakeBookingRepo struct {
	consumed map[string]string // slot ID -> booking ID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{consumed: make(map[string]string)}
}

func (f *fakeBookingRepo) consume(slotID, bookingID string) {
	f.consumed[slotID] = bookingID
}

func (f *fakeBookingRepo) ConsumedSlots(_ context.Context, _ string) (map[string]string, error) {
	out := make(map[string]string, len(f.consumed))
	for k, v := range f.consumed {
		out[k] = v
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, _ *models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByCreator(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByProvider(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ReplaceIfStatus(_ context.Context, _ *models.Booking, _ string) error {
	return nil
}
func (f *fakeBookingRepo) ListSweepable(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func newTestService() (*DefaultAvailabilityService, *fakeSlotRepo, *fakeBookingRepo) {
	slots := newFakeSlotRepo()
	bookings := newFakeBookingRepo()
	svc := &DefaultAvailabilityService{Slots: slots, Bookings: bookings}
	return svc, slots, bookings
}
