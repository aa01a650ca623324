package handler

import (
	"log/slog"
	"net/http"

	"goeco/internal/delivery/http/middleware"
	"goeco/internal/delivery/http/response"
	"goeco/internal/domain/entity"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InsightHandler holds dependencies for recommendation and dashboard handlers.
type InsightHandler struct {
	uc     usecase.InsightUsecase
	logger *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler, injected by Fx.
func NewInsightHandler(uc usecase.InsightUsecase, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{
		uc:     uc,
		logger: logger,
	}
}

func toMealViews(meals []*entity.Meal) []mealView {
	views := make([]mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, toMealView(meal))
	}

	return views
}

func toTransportViews(trips []*entity.TransportTrip) []transportView {
	views := make([]transportView, 0, len(trips))
	for _, trip := range trips {
		views = append(views, toTransportView(trip))
	}

	return views
}

// MealRecommendation returns the user's meal history and a suggestion text.
func (h *InsightHandler) MealRecommendation(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.MealRecommendation(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"meals":              toMealViews(output.Meals),
		"mealRecommendation": output.Recommendation,
	}, "Meal recommendation computed")
}

// TransportRecommendation returns the user's transport history and a
// suggestion text.
func (h *InsightHandler) TransportRecommendation(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	output, err := h.uc.TransportRecommendation(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"transport":               toTransportViews(output.Trips),
		"transportRecommendation": output.Recommendation,
	}, "Transport recommendation computed")
}

// Dashboard aggregates the caller's full activity history. The identity
// comes from the validated token, not the path parameter.
func (h *InsightHandler) Dashboard(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Forbidden(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	output, err := h.uc.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":              output.UserID.String(),
		"meals":               toMealViews(output.Meals),
		"transport":           toTransportViews(output.Trips),
		"totalCarbonEmission": output.TotalCarbon,
	}, "Dashboard computed")
}
