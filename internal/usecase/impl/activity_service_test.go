package impl

import (
	"context"
	"math"
	"testing"

	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activityFixture struct {
	service      usecase.ActivityUsecase
	userRepo     *stubUserRepo
	activityRepo *stubActivityRepo
	txManager    *stubTxManager
	userID       uuid.UUID
}

func newActivityFixture(t *testing.T, predictor *stubPredictor) *activityFixture {
	t.Helper()

	userRepo := newStubUserRepo()
	activityRepo := newStubActivityRepo()
	txManager := &stubTxManager{
		userRepo:     userRepo,
		catalogRepo:  newStubCatalogRepo(),
		activityRepo: activityRepo,
	}
	if predictor == nil {
		predictor = &stubPredictor{}
	}

	userID := uuid.New()
	userRepo.users["alice@example.com"] = &entity.User{ID: userID, Email: "alice@example.com"}

	return &activityFixture{
		service: &activityService{
			txManager: txManager,
			userRepo:  userRepo,
			predictor: predictor,
			logger:    testLogger(),
		},
		userRepo:     userRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		userID:       userID,
	}
}

func TestActivityService_RecordMeal_Success(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	output, err := fixture.service.RecordMeal(context.Background(), usecase.RecordMealInput{
		UserID:   fixture.userID,
		MealType: "Beef",
	})
	require.NoError(t, err)
	require.NotNil(t, output.Meal)

	assert.Equal(t, "Beef", output.Meal.Type)
	assert.InDelta(t, 6.61, output.Meal.Emission, 1e-9)
	assert.Equal(t, fixture.userID, output.Meal.UserID)
	assert.Equal(t, int64(1), fixture.txManager.executeCount.Load())
}

func TestActivityService_RecordMeal_PredictorOverridesCatalog(t *testing.T) {
	predictor := &stubPredictor{values: map[string]float64{"Beef": 7.25}}
	fixture := newActivityFixture(t, predictor)

	output, err := fixture.service.RecordMeal(context.Background(), usecase.RecordMealInput{
		UserID:   fixture.userID,
		MealType: "Beef",
	})
	require.NoError(t, err)

	assert.InDelta(t, 7.25, output.Meal.Emission, 1e-9)
}

func TestActivityService_RecordMeal_UnknownType(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	_, err := fixture.service.RecordMeal(context.Background(), usecase.RecordMealInput{
		UserID:   fixture.userID,
		MealType: "Unicorn",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMealType)
	assert.Empty(t, fixture.activityRepo.meals)
}

func TestActivityService_RecordMeal_UnknownUser(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	_, err := fixture.service.RecordMeal(context.Background(), usecase.RecordMealInput{
		UserID:   uuid.New(),
		MealType: "Beef",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUser)
}

func TestActivityService_RecordTransport_Success(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	output, err := fixture.service.RecordTransport(context.Background(), usecase.RecordTransportInput{
		UserID:        fixture.userID,
		TransportType: "Car",
		Distance:      20,
	})
	require.NoError(t, err)
	require.NotNil(t, output.Trip)

	assert.Equal(t, "Car", output.Trip.Type)
	assert.InDelta(t, 20, output.Trip.Distance, 1e-9)
	// The stored emission is the per-km factor; the effective cost scales
	// with distance.
	assert.InDelta(t, 0.78, output.Trip.Emission, 1e-9)
	assert.InDelta(t, 15.6, output.Trip.CarbonCost(), 1e-9)
}

func TestActivityService_RecordTransport_ZeroDistance(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	output, err := fixture.service.RecordTransport(context.Background(), usecase.RecordTransportInput{
		UserID:        fixture.userID,
		TransportType: "Car",
		Distance:      0,
	})
	require.NoError(t, err)
	assert.Zero(t, output.Trip.CarbonCost())
}

func TestActivityService_RecordTransport_InvalidDistance(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	for _, distance := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := fixture.service.RecordTransport(context.Background(), usecase.RecordTransportInput{
			UserID:        fixture.userID,
			TransportType: "Car",
			Distance:      distance,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
	assert.Empty(t, fixture.activityRepo.trips)
}

func TestActivityService_RecordTransport_UnknownType(t *testing.T) {
	fixture := newActivityFixture(t, nil)

	_, err := fixture.service.RecordTransport(context.Background(), usecase.RecordTransportInput{
		UserID:        fixture.userID,
		TransportType: "Teleporter",
		Distance:      5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransportType)
}
