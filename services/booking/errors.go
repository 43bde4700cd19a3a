package booking

import (
	"fmt"
	"sort"
	"strings"
)

// Validation field keys reported by the request builder. Each key maps to one
// form field so the caller can highlight every invalid field at once.
const (
	FieldDate       = "date"
	FieldSlots      = "slots"
	FieldContiguity = "slotsNotContiguous"
	FieldActivities = "activities"
	FieldPetPasses  = "petPasses"
	FieldLocation   = "location"
)

// ValidationError reports every invalid booking field together, not
// fail-fast. Recoverable by re-prompting the user.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("booking request invalid: %s", strings.Join(keys, ", "))
}

// Flag records a field failure, allocating the map on first use.
func (e *ValidationError) Flag(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
}

// HasFlags reports whether any field failed.
func (e *ValidationError) HasFlags() bool {
	return len(e.Fields) > 0
}

// ConflictError signals a collision with a slot already consumed by a
// non-terminal booking, or a lost status race. Retryable after the caller
// refreshes availability.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NotFoundError signals a dangling reference. Fatal for the single operation,
// non-retryable without correcting the reference.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ForbiddenError signals the actor is not a party to the booking or the
// action does not belong to their role in the current state.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}
