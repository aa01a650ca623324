package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpmiddleware "goeco/internal/delivery/http/middleware"
	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightHandler_MealRecommendation_Success(t *testing.T) {
	userID := uuid.New()
	uc := &stubInsightUsecase{
		mealRecOut: &usecase.MealRecommendationOutput{
			Meals:          []*entity.Meal{{ID: 1, UserID: userID, Type: "Vegan", Emission: 0.39}},
			Recommendation: "Low carbon footprint meal. Great choice!",
		},
	}
	h := NewInsightHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/user/:userId/meal_recommendation")
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, h.MealRecommendation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mealRecommendation")
	assert.Contains(t, rec.Body.String(), "Great choice")
	assert.Equal(t, userID, uc.lastUserID)
}

func TestInsightHandler_MealRecommendation_NoMeals(t *testing.T) {
	uc := &stubInsightUsecase{mealRecErr: domainerrors.ErrNoMeals}
	h := NewInsightHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(uuid.NewString())

	err := h.MealRecommendation(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoMeals)
}

func TestInsightHandler_MealRecommendation_BadUserID(t *testing.T) {
	h := NewInsightHandler(&stubInsightUsecase{}, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.MealRecommendation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInsightHandler_TransportRecommendation_Success(t *testing.T) {
	userID := uuid.New()
	uc := &stubInsightUsecase{
		transportRecOut: &usecase.TransportRecommendationOutput{
			Trips:          []*entity.TransportTrip{{ID: 1, UserID: userID, Type: "Car", Distance: 20, Emission: 0.78}},
			Recommendation: "High carbon footprint trip. Consider Public Transportation, a Bicycle or walking instead.",
		},
	}
	h := NewInsightHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())

	require.NoError(t, h.TransportRecommendation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "High carbon footprint")
}

func TestInsightHandler_Dashboard_UsesTokenIdentity(t *testing.T) {
	tokenUserID := uuid.New()
	uc := &stubInsightUsecase{
		dashboardOut: &usecase.DashboardOutput{
			UserID:      tokenUserID,
			TotalCarbon: "14.80",
		},
	}
	h := NewInsightHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The path parameter names a different user; the claims win.
	c.SetParamNames("userId")
	c.SetParamValues(uuid.NewString())
	c.Set(httpmiddleware.ContextKeyUserID, tokenUserID)

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, tokenUserID, uc.lastUserID)
	assert.Contains(t, rec.Body.String(), "14.80")
}

func TestInsightHandler_Dashboard_EmptyHistory(t *testing.T) {
	userID := uuid.New()
	uc := &stubInsightUsecase{
		dashboardOut: &usecase.DashboardOutput{UserID: userID, TotalCarbon: "0.00"},
	}
	h := NewInsightHandler(uc, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(httpmiddleware.ContextKeyUserID, userID)

	// An empty history is a 200 with a zero total, not a 404.
	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "0.00")
}

func TestInsightHandler_Dashboard_MissingIdentity(t *testing.T) {
	h := NewInsightHandler(&stubInsightUsecase{}, discardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWelcome(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Welcome(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to GoEco-Living!")
}
