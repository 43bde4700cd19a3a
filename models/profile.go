package models

// The fixed set of service activities a sitter can offer.
const (
	ActivityHausbesuch = "hausbesuch" // home visit
	ActivityGassi      = "gassi"      // dog walking
	ActivityTraining   = "training"
	ActivityHerberge   = "herberge" // boarding
	ActivityTierarzt   = "tierarzt" // vet accompaniment
)

// ActivityKinds lists every valid activity kind.
var ActivityKinds = []string{
	ActivityHausbesuch,
	ActivityGassi,
	ActivityTraining,
	ActivityHerberge,
	ActivityTierarzt,
}

// IsActivityKind reports whether kind is one of the enumerated activities.
func IsActivityKind(kind string) bool {
	for _, k := range ActivityKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ActivityOffering is one sitter-side service entry: whether the activity is
// offered and its hourly rate in currency units.
type ActivityOffering struct {
	Offered bool    `bson:"offered" json:"offered"`
	Price   float64 `bson:"price" json:"price"` // per hour, non-negative
}

// Profile is the sitter profile slice this core reads. Profile management
// itself lives in the accounts service; only offerings and species
// compatibility are consumed here.
type Profile struct {
	ID         string                      `bson:"id" json:"id"`
	Name       string                      `bson:"name" json:"name"`
	Activities map[string]ActivityOffering `bson:"activities" json:"activities"`
	TakesDogs  bool                        `bson:"takesDogs" json:"takesDogs"`
	TakesCats  bool                        `bson:"takesCats" json:"takesCats"`
}

// Accepts reports whether the sitter takes pets of the given species.
func (p *Profile) Accepts(species string) bool {
	switch species {
	case PetTypeDog:
		return p.TakesDogs
	case PetTypeCat:
		return p.TakesCats
	}
	return false
}
