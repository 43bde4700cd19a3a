package models

// Pet species recognized for sitter compatibility checks.
const (
	PetTypeDog = "dog"
	PetTypeCat = "cat"
)

// PetPass is the pet profile slice this core reads: an opaque identifier with
// a display name and species. Pet profiles are owned by the accounts service.
type PetPass struct {
	ID      string `bson:"id" json:"id"`
	OwnerID string `bson:"ownerId" json:"ownerId"`
	Name    string `bson:"name" json:"name"`
	Type    string `bson:"type" json:"type"` // species, e.g. "dog"
}
