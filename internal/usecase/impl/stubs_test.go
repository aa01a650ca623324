package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/domain/repository"
	"goeco/internal/domain/service"

	"github.com/google/uuid"
)

// Hand-written test doubles. Each stub stores its rows in memory and keeps
// the same error contracts as the real PostgreSQL implementations.

type stubUserRepo struct {
	users       map[string]*entity.User // keyed by email
	createErr   error
	findByIDErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User)}
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Email]; ok {
		return domainerrors.ErrEmailTaken
	}
	user.ID = uuid.New()
	r.users[user.Email] = user

	return nil
}

type stubCatalogRepo struct {
	mealTypes      map[string]*entity.MealType
	transportTypes map[string]*entity.TransportType
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		mealTypes: map[string]*entity.MealType{
			"Beef":       {ID: 1, Type: "Beef", EmissionFactor: 6.61},
			"Chicken":    {ID: 2, Type: "Chicken", EmissionFactor: 1.26},
			"Vegetarian": {ID: 3, Type: "Vegetarian", EmissionFactor: 0.66},
			"Vegan":      {ID: 4, Type: "Vegan", EmissionFactor: 0.39},
		},
		transportTypes: map[string]*entity.TransportType{
			"Car":                   {ID: 1, Type: "Car", EmissionFactor: 0.78},
			"Motorcycle":            {ID: 2, Type: "Motorcycle", EmissionFactor: 0.45},
			"Public Transportation": {ID: 3, Type: "Public Transportation", EmissionFactor: 0.12},
			"Bicycle":               {ID: 4, Type: "Bicycle", EmissionFactor: 0},
		},
	}
}

func (r *stubCatalogRepo) FindMealType(_ context.Context, typeName string) (*entity.MealType, error) {
	if mealType, ok := r.mealTypes[typeName]; ok {
		return mealType, nil
	}

	return nil, repository.ErrMealTypeNotFound
}

func (r *stubCatalogRepo) FindTransportType(_ context.Context, typeName string) (*entity.TransportType, error) {
	if transportType, ok := r.transportTypes[typeName]; ok {
		return transportType, nil
	}

	return nil, repository.ErrTransportTypeNotFound
}

type stubActivityRepo struct {
	meals        []*entity.Meal
	trips        []*entity.TransportTrip
	findMealsErr error
	findTripsErr error
	nextID       int64
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{}
}

func (r *stubActivityRepo) CreateMeal(_ context.Context, meal *entity.Meal) error {
	r.nextID++
	meal.ID = r.nextID
	r.meals = append(r.meals, meal)

	return nil
}

func (r *stubActivityRepo) CreateTransportTrip(_ context.Context, trip *entity.TransportTrip) error {
	r.nextID++
	trip.ID = r.nextID
	r.trips = append(r.trips, trip)

	return nil
}

func (r *stubActivityRepo) FindMealsByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Meal, error) {
	if r.findMealsErr != nil {
		return nil, r.findMealsErr
	}
	var meals []*entity.Meal
	for _, meal := range r.meals {
		if meal.UserID == userID {
			meals = append(meals, meal)
		}
	}

	return meals, nil
}

func (r *stubActivityRepo) FindTransportTripsByUserID(_ context.Context, userID uuid.UUID) ([]*entity.TransportTrip, error) {
	if r.findTripsErr != nil {
		return nil, r.findTripsErr
	}
	var trips []*entity.TransportTrip
	for _, trip := range r.trips {
		if trip.UserID == userID {
			trips = append(trips, trip)
		}
	}

	return trips, nil
}

// stubTxManager runs the callback directly against the shared stub
// repositories; there is no real transaction to manage.
type stubTxManager struct {
	userRepo     *stubUserRepo
	catalogRepo  *stubCatalogRepo
	activityRepo *stubActivityRepo
	executeCount atomic.Int64
}

func (tm *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.executeCount.Add(1)

	return fn(tm)
}

func (tm *stubTxManager) UserRepo() repository.UserRepository         { return tm.userRepo }
func (tm *stubTxManager) CatalogRepo() repository.CatalogRepository   { return tm.catalogRepo }
func (tm *stubTxManager) ActivityRepo() repository.ActivityRepository { return tm.activityRepo }

type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct {
	token       string
	generateErr error
}

func (s *stubTokenService) GenerateToken(userID uuid.UUID, email string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	if s.token != "" {
		return s.token, nil
	}

	return "token-for-" + userID.String(), nil
}

func (s *stubTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, domainerrors.ErrTokenInvalid
}

func (s *stubTokenService) GetTokenDuration() time.Duration {
	return time.Hour
}

type stubPredictor struct {
	values map[string]float64
}

func (p *stubPredictor) PredictMeal(typeName string) (float64, bool) {
	emission, ok := p.values[typeName]

	return emission, ok
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
