package repository

import (
	"context"

	"goeco/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository persists and reads back logged meal and transport
// events. Events are insert-only; nothing in the service updates or deletes
// them.
type ActivityRepository interface {
	// CreateMeal persists a new meal event with its resolved emission value.
	CreateMeal(ctx context.Context, meal *entity.Meal) error

	// CreateTransportTrip persists a new transport event.
	CreateTransportTrip(ctx context.Context, trip *entity.TransportTrip) error

	// FindMealsByUserID returns all meal events for a user in insertion
	// order, with the catalog type name joined in.
	FindMealsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error)

	// FindTransportTripsByUserID returns all transport events for a user in
	// insertion order, with the catalog type name joined in.
	FindTransportTripsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TransportTrip, error)
}
