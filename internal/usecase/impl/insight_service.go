package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "goeco/internal/delivery/context"
	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/domain/repository"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Recommendation messages keyed by emission band. Meal bands apply to the
// stored per-serving value; transport bands apply to factor times distance.
const (
	mealHighRecommendation     = "High carbon footprint meal. Consider switching to Vegan or Vegetarian options."
	mealModerateRecommendation = "Moderate carbon footprint. Consider switching to Chicken or Fish."
	mealLowRecommendation      = "Low carbon footprint meal. Great choice!"

	transportHighRecommendation     = "High carbon footprint trip. Consider Public Transportation, a Bicycle or walking instead."
	transportModerateRecommendation = "Moderate carbon footprint. Consider combining trips or choosing a greener transport mode."
	transportLowRecommendation      = "Low carbon footprint trip. Great choice!"
)

// Band boundaries in kgCO2e.
const (
	mealHighThreshold     = 2.0
	mealModerateThreshold = 1.0

	transportHighThreshold     = 10.0
	transportModerateThreshold = 5.0
)

// insightService implements the InsightUsecase interface.
type insightService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// InsightServiceParams holds dependencies for InsightService, injected by Fx.
type InsightServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewInsightService is the constructor for insightService.
func NewInsightService(params InsightServiceParams) usecase.InsightUsecase {
	return &insightService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *insightService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MealRecommendation fetches the user's meal history and derives one
// recommendation message. The loop overwrites the message on every event,
// so the last recorded meal alone decides the result.
func (srv *insightService) MealRecommendation(ctx context.Context, userID uuid.UUID) (*usecase.MealRecommendationOutput, error) {
	meals, err := srv.activityRepo.FindMealsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find meals")
	}
	if len(meals) == 0 {
		return nil, domainerrors.ErrNoMeals
	}

	var recommendation string
	for _, meal := range meals {
		recommendation = mealMessage(meal.Emission)
	}

	return &usecase.MealRecommendationOutput{
		Meals:          meals,
		Recommendation: recommendation,
	}, nil
}

// TransportRecommendation applies the same last-wins pattern over transport
// events, banding on the effective cost of each trip.
func (srv *insightService) TransportRecommendation(ctx context.Context, userID uuid.UUID) (*usecase.TransportRecommendationOutput, error) {
	trips, err := srv.activityRepo.FindTransportTripsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transport trips")
	}
	if len(trips) == 0 {
		return nil, domainerrors.ErrNoTransport
	}

	var recommendation string
	for _, trip := range trips {
		recommendation = transportMessage(trip.CarbonCost())
	}

	return &usecase.TransportRecommendationOutput{
		Trips:          trips,
		Recommendation: recommendation,
	}, nil
}

// Dashboard aggregates the user's full history. Unlike the recommendation
// reads it never fails on an empty history; it returns empty collections
// and a total of "0.00".
func (srv *insightService) Dashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	meals, err := srv.activityRepo.FindMealsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find meals")
	}

	trips, err := srv.activityRepo.FindTransportTripsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transport trips")
	}

	total := sumCarbon(meals, trips)

	srv.log(ctx).Debug("Dashboard computed",
		slog.String("userId", userID.String()),
		slog.Int("meals", len(meals)),
		slog.Int("trips", len(trips)),
		slog.Float64("totalCarbon", total),
	)

	return &usecase.DashboardOutput{
		UserID:      userID,
		Meals:       meals,
		Trips:       trips,
		TotalCarbon: strconv.FormatFloat(total, 'f', 2, 64),
	}, nil
}

// sumCarbon adds stored meal emissions directly and transport emissions as
// factor times distance. Stored values are never recomputed.
func sumCarbon(meals []*entity.Meal, trips []*entity.TransportTrip) float64 {
	var total float64
	for _, meal := range meals {
		total += meal.Emission
	}
	for _, trip := range trips {
		total += trip.CarbonCost()
	}

	return total
}

func mealMessage(emission float64) string {
	switch {
	case emission > mealHighThreshold:
		return mealHighRecommendation
	case emission > mealModerateThreshold:
		return mealModerateRecommendation
	default:
		return mealLowRecommendation
	}
}

func transportMessage(emission float64) string {
	switch {
	case emission > transportHighThreshold:
		return transportHighRecommendation
	case emission > transportModerateThreshold:
		return transportModerateRecommendation
	default:
		return transportLowRecommendation
	}
}
