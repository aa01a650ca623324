package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealType is a static catalog entry mapping a meal name to its carbon
// emission factor in kgCO2e per standard serving. Seeded externally and
// read-only to the application.
type MealType struct {
	ID             int64
	Type           string  // Unique meal name, e.g. "Beef", "Vegan".
	EmissionFactor float64 // kgCO2e per serving.
}

// TransportType is a static catalog entry mapping a transport mode to its
// carbon emission factor in kgCO2e per kilometre.
type TransportType struct {
	ID             int64
	Type           string  // Unique mode name, e.g. "Car", "Bicycle".
	EmissionFactor float64 // kgCO2e per km.
}

// Meal is a single logged meal choice with the emission value that was
// resolved when the event was recorded. Events are never mutated afterwards,
// so the stored value is authoritative for all later reads.
type Meal struct {
	ID         int64
	UserID     uuid.UUID // Owning user. Must reference an existing account.
	MealTypeID int64
	Type       string  // Denormalized catalog name, filled on reads.
	Emission   float64 // kgCO2e resolved at insert time.
	CreatedAt  time.Time
}

// TransportTrip is a single logged transport choice. Emission carries the
// per-km catalog factor at the time of recording; the effective emission of
// the trip is Emission multiplied by Distance.
type TransportTrip struct {
	ID              int64
	UserID          uuid.UUID
	TransportTypeID int64
	Type            string  // Denormalized catalog name, filled on reads.
	Distance        float64 // Kilometres travelled. Never negative.
	Emission        float64 // Per-km factor captured at insert time.
	CreatedAt       time.Time
}

// CarbonCost returns the effective emission of the trip.
func (t *TransportTrip) CarbonCost() float64 {
	return t.Emission * t.Distance
}
