package usecase

import (
	"context"

	"goeco/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// MealRecommendationOutput returns a user's meal history along with a
// single recommendation string derived from it.
type MealRecommendationOutput struct {
	Meals          []*entity.Meal
	Recommendation string
}

// TransportRecommendationOutput returns a user's transport history along
// with a single recommendation string derived from it.
type TransportRecommendationOutput struct {
	Trips          []*entity.TransportTrip
	Recommendation string
}

// DashboardOutput aggregates a user's full activity history. TotalCarbon is
// pre-formatted to two decimal places, "0.00" when no activity exists.
type DashboardOutput struct {
	UserID      uuid.UUID
	Meals       []*entity.Meal
	Trips       []*entity.TransportTrip
	TotalCarbon string
}

// InsightUsecase defines the read-side operations that derive
// recommendations and aggregates from recorded activity.
//
// The recommendation operations fail with a not-found error when the user
// has no matching activity; Dashboard instead returns empty collections and
// a zero total.
type InsightUsecase interface {
	MealRecommendation(ctx context.Context, userID uuid.UUID) (*MealRecommendationOutput, error)
	TransportRecommendation(ctx context.Context, userID uuid.UUID) (*TransportRecommendationOutput, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)
}
