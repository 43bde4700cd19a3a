package models

import "time"

// Slot statuses as reported to API consumers. A slot document itself is
// immutable once created; "booked" is derived from booking references.
const (
	SlotStatusActive = "active"
	SlotStatusBooked = "booked"
)

// Slot represents one 15-minute bookable interval for one sitter on one date.
// Identity key is (creatorId, date, time); there is no update operation —
// availability changes are always create-or-delete.
type Slot struct {
	ID        string    `bson:"id" json:"id"`
	CreatorID string    `bson:"creatorId" json:"creatorId"` // sitter advertising the interval
	Date      string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	Time      string    `bson:"time" json:"time"`           // quarter-hour label "HH:MM"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SlotView is a Slot together with its derived status, as returned by the
// listing endpoint.
type SlotView struct {
	Slot      `bson:",inline"`
	Status    string `json:"status"`              // "active" or "booked"
	BookingID string `json:"bookingId,omitempty"` // set when Status is "booked"
}

// ReconcileRequest defines the payload for bulk availability editing: the
// desired state is the cross-product of Dates and Times.
type ReconcileRequest struct {
	Dates []string `json:"dates" binding:"required"`
	Times []string `json:"times" binding:"required"`
}

// ReconcileResult reports the applied changes for user-facing summary
// messaging ("N slots created, M deleted").
type ReconcileResult struct {
	Created int `json:"created"`
	Deleted int `json:"deleted"`
}

// DayAvailability classifies a sitter's calendar days: ActiveDays have at
// least one free advertised slot, BookedOnlyDays are fully consumed by
// non-terminal bookings. Days absent from both sets are unavailable.
type DayAvailability struct {
	ActiveDays     []string `json:"activeDays"`
	BookedOnlyDays []string `json:"bookedOnlyDays"`
}

// TimeFlags carries the per-time-of-day edit flags for a set of dates being
// edited simultaneously. The flags are not mutually exclusive: a time is
// active/booked/free if it is so on at least one of the selected dates.
type TimeFlags struct {
	Time     string `json:"time"`
	IsActive bool   `json:"isActive"`
	IsBooked bool   `json:"isBooked"`
	IsFree   bool   `json:"isFree"`
}
