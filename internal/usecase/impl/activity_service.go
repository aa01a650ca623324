package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "goeco/internal/delivery/context"
	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/domain/repository"
	"goeco/internal/domain/service"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	predictor service.EmissionPredictor
	logger    *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Predictor service.EmissionPredictor
	Logger    *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		predictor: params.Predictor,
		logger:    params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordMeal resolves the emission for a meal type and persists the event.
// The prediction model takes precedence when it knows the type; otherwise
// the catalog's static per-serving factor applies. Lookup and insert share
// one transaction so a failed insert leaves no partial state.
func (srv *activityService) RecordMeal(ctx context.Context, input usecase.RecordMealInput) (*usecase.RecordMealOutput, error) {
	if err := srv.ensureUserExists(ctx, input.UserID); err != nil {
		return nil, err
	}

	var meal *entity.Meal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealType, err := repoFactory.CatalogRepo().FindMealType(ctx, input.MealType)
		if errors.Is(err, repository.ErrMealTypeNotFound) {
			return domainerrors.ErrInvalidMealType
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up meal type")
		}

		emission := mealType.EmissionFactor
		if predicted, ok := srv.predictor.PredictMeal(mealType.Type); ok {
			emission = predicted
		}

		meal = &entity.Meal{
			UserID:     input.UserID,
			MealTypeID: mealType.ID,
			Type:       mealType.Type,
			Emission:   emission,
		}

		return repoFactory.ActivityRepo().CreateMeal(ctx, meal)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Meal recorded",
		slog.String("userId", input.UserID.String()),
		slog.String("type", meal.Type),
		slog.Float64("emission", meal.Emission),
	)

	return &usecase.RecordMealOutput{Meal: meal}, nil
}

// RecordTransport validates the distance, resolves the per-km factor and
// persists the event. The stored emission is the factor itself; readers
// multiply by distance to get the effective cost.
func (srv *activityService) RecordTransport(ctx context.Context, input usecase.RecordTransportInput) (*usecase.RecordTransportOutput, error) {
	if input.Distance < 0 || math.IsNaN(input.Distance) || math.IsInf(input.Distance, 0) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("distance must be a non-negative number")
	}

	if err := srv.ensureUserExists(ctx, input.UserID); err != nil {
		return nil, err
	}

	var trip *entity.TransportTrip
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transportType, err := repoFactory.CatalogRepo().FindTransportType(ctx, input.TransportType)
		if errors.Is(err, repository.ErrTransportTypeNotFound) {
			return domainerrors.ErrInvalidTransportType
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up transport type")
		}

		trip = &entity.TransportTrip{
			UserID:          input.UserID,
			TransportTypeID: transportType.ID,
			Type:            transportType.Type,
			Distance:        input.Distance,
			Emission:        transportType.EmissionFactor,
		}

		return repoFactory.ActivityRepo().CreateTransportTrip(ctx, trip)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Transport recorded",
		slog.String("userId", input.UserID.String()),
		slog.String("type", trip.Type),
		slog.Float64("distance", trip.Distance),
		slog.Float64("emission", trip.CarbonCost()),
	)

	return &usecase.RecordTransportOutput{Trip: trip}, nil
}

func (srv *activityService) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidUser
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}
