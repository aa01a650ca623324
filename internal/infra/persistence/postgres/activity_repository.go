package postgres

import (
	"context"

	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/domain/repository"
	"goeco/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// CreateMeal persists a new meal event. A foreign key violation on the user
// reference maps to the domain's invalid-user error.
func (repo *activityRepository) CreateMeal(ctx context.Context, meal *entity.Meal) error {
	mealM := &model.MealModel{
		UserID:     meal.UserID,
		MealTypeID: meal.MealTypeID,
		Emission:   meal.Emission,
	}

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt

	return nil
}

// CreateTransportTrip persists a new transport event.
func (repo *activityRepository) CreateTransportTrip(ctx context.Context, trip *entity.TransportTrip) error {
	tripM := &model.TransportTripModel{
		UserID:          trip.UserID,
		TransportTypeID: trip.TransportTypeID,
		Distance:        trip.Distance,
		Emission:        trip.Emission,
	}

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transport trip")
	}

	trip.ID = tripM.ID
	trip.CreatedAt = tripM.CreatedAt

	return nil
}

// FindMealsByUserID returns all meal events for a user in insertion order,
// joining in the catalog type name for each row.
func (repo *activityRepository) FindMealsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Meal, error) {
	var mealMs []*model.MealModel
	if err := repo.db.WithContext(ctx).
		Preload("MealType").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&mealMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find meals by user id")
	}

	meals := make([]*entity.Meal, 0, len(mealMs))
	for _, mealM := range mealMs {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// FindTransportTripsByUserID returns all transport events for a user in
// insertion order, joining in the catalog type name for each row.
func (repo *activityRepository) FindTransportTripsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TransportTrip, error) {
	var tripMs []*model.TransportTripModel
	if err := repo.db.WithContext(ctx).
		Preload("TransportType").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tripMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transport trips by user id")
	}

	trips := make([]*entity.TransportTrip, 0, len(tripMs))
	for _, tripM := range tripMs {
		trips = append(trips, toTransportTripDomain(tripM))
	}

	return trips, nil
}

// --- Mapper Functions ---

func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	meal := &entity.Meal{
		ID:         data.ID,
		UserID:     data.UserID,
		MealTypeID: data.MealTypeID,
		Emission:   data.Emission,
		CreatedAt:  data.CreatedAt,
	}
	if data.MealType != nil {
		meal.Type = data.MealType.Type
	}

	return meal
}

func toTransportTripDomain(data *model.TransportTripModel) *entity.TransportTrip {
	if data == nil {
		return nil
	}

	trip := &entity.TransportTrip{
		ID:              data.ID,
		UserID:          data.UserID,
		TransportTypeID: data.TransportTypeID,
		Distance:        data.Distance,
		Emission:        data.Emission,
		CreatedAt:       data.CreatedAt,
	}
	if data.TransportType != nil {
		trip.Type = data.TransportType.Type
	}

	return trip
}
