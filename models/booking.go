package models

import "time"

// Booking statuses. A booking is non-terminal while in Requested, Accepted or
// Current; slots it references stay consumed for exactly that window.
const (
	BookingRequested = "requested"
	BookingAccepted  = "accepted"
	BookingCurrent   = "current"
	BookingDone      = "done"
	BookingDeclined  = "declined"
	BookingCancelled = "cancelled"
)

// NonTerminalStatuses are the statuses under which a booking keeps its slots
// consumed. The uniqueness index on slotIds is restricted to these.
var NonTerminalStatuses = []string{BookingRequested, BookingAccepted, BookingCurrent}

// IsTerminalStatus reports whether status frees the booking's slots.
func IsTerminalStatus(status string) bool {
	switch status {
	case BookingDeclined, BookingCancelled, BookingDone:
		return true
	}
	return false
}

// BookingActivity is one weighted service activity on a booking. Weights
// across a booking sum to exactly 100.
type BookingActivity struct {
	Kind   string `bson:"kind" json:"kind"`     // e.g. "gassi"
	Weight int    `bson:"weight" json:"weight"` // percentage share of the booked time
}

// Location is a concrete meeting point: address plus coordinates. A zero
// value is treated as unset by validation.
type Location struct {
	Address   string  `bson:"address" json:"address"`
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.Address == "" && l.Latitude == 0 && l.Longitude == 0
}

// ReadState is the per-party unread-notification sub-record. A flag is set
// whenever the counterparty changes the booking and cleared only by an
// explicit mark-read from the owning party.
type ReadState struct {
	IsNewCreator  bool `bson:"isNewCreator" json:"isNewCreator"`
	IsNewProvider bool `bson:"isNewProvider" json:"isNewProvider"`
}

// ReviewState tracks whether each party has closed out their review. Done
// means the party either left a review or explicitly declined to.
type ReviewState struct {
	ReviewCreator      bool `bson:"reviewCreator" json:"reviewCreator"`
	ReviewProvider     bool `bson:"reviewProvider" json:"reviewProvider"`
	ReviewCreatorDone  bool `bson:"reviewCreatorDone" json:"reviewCreatorDone"`
	ReviewProviderDone bool `bson:"reviewProviderDone" json:"reviewProviderDone"`
}

// Booking is a requester's validated, priced claim on a contiguous run of a
// sitter's slots on a single date.
type Booking struct {
	ID         string            `bson:"id" json:"id"`
	BookedBy   string            `bson:"bookedBy" json:"bookedBy"`     // requester (creator of the booking)
	BookedFrom string            `bson:"bookedFrom" json:"bookedFrom"` // sitter (provider)
	Date       string            `bson:"date" json:"date"`
	SlotIDs    []string          `bson:"slotIds" json:"slotIds"`     // ordered, contiguous, same date
	SlotTimes  []string          `bson:"slotTimes" json:"slotTimes"` // denormalized labels, sorted
	Activities []BookingActivity `bson:"activities" json:"activities"`
	PetPasses  []string          `bson:"petPasses" json:"petPasses"`
	Location   Location          `bson:"location" json:"location"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Remarks    string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	TotalPrice float64           `bson:"totalPrice" json:"totalPrice"`
	Status     string            `bson:"status" json:"status"`
	ReadState  ReadState         `bson:"readState" json:"readState"`
	Reviews    ReviewState       `bson:"reviews" json:"reviews"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the request payload for creating a booking, either directly
// or by confirming a draft session.
type BookingInput struct {
	ProviderID string            `json:"providerId"`
	Date       string            `json:"date"`
	SlotIDs    []string          `json:"slotIds"`
	Activities []BookingActivity `json:"activities"`
	PetPasses  []string          `json:"petPasses"`
	Location   Location          `json:"location"`
	Notes      string            `json:"notes"`
}

// BookingDraft is the cached state of a requester's in-progress booking form.
// Selection updates replace fields incrementally; Warnings carries the
// per-field validation flags recomputed on every update.
type BookingDraft struct {
	SessionID  string            `json:"sessionId"`
	UserID     string            `json:"userId"`
	ProviderID string            `json:"providerId"`
	Date       string            `json:"date"`
	SlotIDs    []string          `json:"slotIds"`
	Activities []BookingActivity `json:"activities"`
	PetPasses  []string          `json:"petPasses"`
	Location   Location          `json:"location"`
	Notes      string            `json:"notes"`
	PriceQuote float64           `json:"priceQuote"`
	Warnings   map[string]string `json:"warnings,omitempty"`
}
