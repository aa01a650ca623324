package usecase

import (
	"context"

	"goeco/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RecordMealInput defines the data required to log a meal choice.
type RecordMealInput struct {
	UserID   uuid.UUID
	MealType string
}

// RecordTransportInput defines the data required to log a transport trip.
type RecordTransportInput struct {
	UserID        uuid.UUID
	TransportType string
	Distance      float64
}

// --- Output DTOs ---

// RecordMealOutput returns the persisted meal event.
type RecordMealOutput struct {
	Meal *entity.Meal
}

// RecordTransportOutput returns the persisted transport event.
type RecordTransportOutput struct {
	Trip *entity.TransportTrip
}

// ActivityUsecase defines the interface for activity-logging operations.
// Both operations resolve the emission value from the catalog at recording
// time and never recompute it afterwards.
type ActivityUsecase interface {
	RecordMeal(ctx context.Context, input RecordMealInput) (*RecordMealOutput, error)
	RecordTransport(ctx context.Context, input RecordTransportInput) (*RecordTransportOutput, error)
}
