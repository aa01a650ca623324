package handler

import (
	"log/slog"
	"net/http"
	"time"

	"goeco/internal/delivery/http/response"
	"goeco/internal/domain/entity"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for activity-logging handlers.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordMealRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Type   string `json:"type" validate:"required"`
}

type recordTransportRequest struct {
	UserID   string   `json:"userId" validate:"required,uuid"`
	Type     string   `json:"type" validate:"required"`
	Distance *float64 `json:"distance" validate:"required"`
}

// mealView is the public shape of a logged meal.
type mealView struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	CarbonEmission float64   `json:"carbonEmission"`
	CreatedAt      time.Time `json:"createdAt"`
}

// transportView is the public shape of a logged trip. CarbonEmission is the
// effective cost of the trip, factor times distance.
type transportView struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	Type           string    `json:"type"`
	Distance       float64   `json:"distance"`
	CarbonEmission float64   `json:"carbonEmission"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toMealView(meal *entity.Meal) mealView {
	return mealView{
		ID:             meal.ID,
		UserID:         meal.UserID.String(),
		Type:           meal.Type,
		CarbonEmission: meal.Emission,
		CreatedAt:      meal.CreatedAt,
	}
}

func toTransportView(trip *entity.TransportTrip) transportView {
	return transportView{
		ID:             trip.ID,
		UserID:         trip.UserID.String(),
		Type:           trip.Type,
		Distance:       trip.Distance,
		CarbonEmission: trip.CarbonCost(),
		CreatedAt:      trip.CreatedAt,
	}
}

// RecordMeal handles logging a meal choice.
func (h *ActivityHandler) RecordMeal(c echo.Context) error {
	var req recordMealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.RecordMeal(c.Request().Context(), usecase.RecordMealInput{
		UserID:   userID,
		MealType: req.Type,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMealView(output.Meal), "Meal added successfully")
}

// RecordTransport handles logging a transport trip.
func (h *ActivityHandler) RecordTransport(c echo.Context) error {
	var req recordTransportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transport input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.RecordTransport(c.Request().Context(), usecase.RecordTransportInput{
		UserID:        userID,
		TransportType: req.Type,
		Distance:      *req.Distance,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTransportView(output.Trip), "Transport added successfully")
}
