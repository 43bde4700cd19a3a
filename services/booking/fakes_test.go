package booking

import (
	"context"
	"fmt"

	"petsit/models"

	bookingRepo "petsit/database/repository/booking"
	profileRepo "petsit/database/repository/profile"
)

type fakeSlotRepo struct {
	slots  map[string]models.Slot
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

func (f *fakeSlotRepo) GetByCreatorAndDate(_ context.Context, creatorID, date string) ([]models.Slot, error) {
	var out []models.Slot
	for _, s := range f.slots {
		if s.CreatorID == creatorID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
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

// fakeBookingRepo mirrors the storage-level uniqueness guard: an insert or
// guarded replace fails with ErrSlotConsumed while another non-terminal
// booking holds any of the same slots.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) put(b *models.Booking) *models.Booking {
	if b.ID == "" {
		f.nextID++
		b.ID = fmt.Sprintf("booking-%d", f.nextID)
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return f.bookings[b.ID]
}

func (f *fakeBookingRepo) slotHeld(slotIDs []string, excludeID string) bool {
	held := make(map[string]bool)
	for _, existing := range f.bookings {
		if existing.ID == excludeID || models.IsTerminalStatus(existing.Status) {
			continue
		}
		for _, id := range existing.SlotIDs {
			held[id] = true
		}
	}
	for _, id := range slotIDs {
		if held[id] {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	if f.slotHeld(booking.SlotIDs, "") {
		return bookingRepo.ErrSlotConsumed
	}
	f.put(booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) ListByCreator(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BookedBy == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BookedFrom == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ConsumedSlots(_ context.Context, providerID string) (map[string]string, error) {
	consumed := make(map[string]string)
	for _, b := range f.bookings {
		if b.BookedFrom != providerID || models.IsTerminalStatus(b.Status) {
			continue
		}
		for _, id := range b.SlotIDs {
			consumed[id] = b.ID
		}
	}
	return consumed, nil
}

func (f *fakeBookingRepo) ReplaceIfStatus(_ context.Context, booking *models.Booking, expectStatus string) error {
	stored, ok := f.bookings[booking.ID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	if stored.Status != expectStatus {
		return bookingRepo.ErrStaleStatus
	}
	f.put(booking)
	return nil
}

func (f *fakeBookingRepo) ListSweepable(_ context.Context, maxDate string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if (b.Status == models.BookingAccepted || b.Status == models.BookingCurrent) && b.Date <= maxDate {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	return p, nil
}

type fakePetPassRepo struct {
	passes map[string]models.PetPass
}

func (f *fakePetPassRepo) GetByIDs(_ context.Context, ids []string) ([]models.PetPass, error) {
	var out []models.PetPass
	for _, id := range ids {
		if p, ok := f.passes[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePetPassRepo) GetByOwner(_ context.Context, ownerID string) ([]models.PetPass, error) {
	var out []models.PetPass
	for _, p := range f.passes {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeAvailability satisfies the availability dependency without a cache and
// records which sitters had their summary invalidated.
type fakeAvailability struct {
	invalidated []string
}

func (f *fakeAvailability) ListSlots(_ context.Context, _ string, _ []string, _ string) ([]models.SlotView, error) {
	return nil, nil
}
func (f *fakeAvailability) ReconcileSlots(_ context.Context, _ string, _, _ []string) (*models.ReconcileResult, error) {
	return nil, nil
}
func (f *fakeAvailability) ComputeAvailability(_ context.Context, _ string) (*models.DayAvailability, error) {
	return nil, nil
}
func (f *fakeAvailability) EditGrid(_ context.Context, _ string, _ []string) ([]models.TimeFlags, error) {
	return nil, nil
}
func (f *fakeAvailability) InvalidateCache(_ context.Context, creatorID string) {
	f.invalidated = append(f.invalidated, creatorID)
}

// newTestService wires a booking service over in-memory fakes with one sitter
// ("sitter-1": gassi 20/h, hausbesuch 30/h, dogs only) and pets for "user-1".
func newTestService() (*DefaultBookingService, *fakeSlotRepo, *fakeBookingRepo) {
	slots := newFakeSlotRepo()
	bookings := newFakeBookingRepo()
	profiles := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"sitter-1": {
			ID:   "sitter-1",
			Name: "Dana",
			Activities: map[string]models.ActivityOffering{
				models.ActivityGassi:      {Offered: true, Price: 20},
				models.ActivityHausbesuch: {Offered: true, Price: 30},
				models.ActivityTierarzt:   {Offered: false, Price: 0},
			},
			TakesDogs: true,
			TakesCats: false,
		},
	}}
	passes := &fakePetPassRepo{passes: map[string]models.PetPass{
		"pet-1":     {ID: "pet-1", OwnerID: "user-1", Name: "Rex", Type: models.PetTypeDog},
		"pet-2":     {ID: "pet-2", OwnerID: "user-1", Name: "Bello", Type: models.PetTypeDog},
		"pet-cat":   {ID: "pet-cat", OwnerID: "user-1", Name: "Minka", Type: models.PetTypeCat},
		"pet-other": {ID: "pet-other", OwnerID: "user-2", Name: "Luna", Type: models.PetTypeDog},
	}}

	svc := &DefaultBookingService{
		Bookings:     bookings,
		Slots:        slots,
		Profiles:     profiles,
		PetPasses:    passes,
		Availability: &fakeAvailability{},
	}
	return svc, slots, bookings
}

var testLocation = models.Location{
	Address:   "Hundewiese 12, Berlin",
	Latitude:  52.52,
	Longitude: 13.405,
}

// addRun creates n contiguous quarter-hour slots starting at startLabel and
// returns their IDs in time order.
func addRun(slots *fakeSlotRepo, creatorID, date, startLabel string, n int) []string {
	ids := make([]string, 0, n)
	label := startLabel
	for i := 0; i < n; i++ {
		slot := slots.add(creatorID, date, label)
		ids = append(ids, slot.ID)
		label = nextLabel(label)
	}
	return ids
}

func nextLabel(label string) string {
	var h, m int
	fmt.Sscanf(label, "%d:%d", &h, &m)
	m += 15
	if m >= 60 {
		m -= 60
		h++
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
