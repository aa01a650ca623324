package handler

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"strings"

	"goeco/internal/delivery/http/validator"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Stub usecases let handler tests drive every response path without a
// database behind them.

type stubUserUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
}

func (s *stubUserUsecase) RegisterUser(context.Context, usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubUserUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

type stubActivityUsecase struct {
	mealOut      *usecase.RecordMealOutput
	mealErr      error
	transportOut *usecase.RecordTransportOutput
	transportErr error

	lastMealInput      usecase.RecordMealInput
	lastTransportInput usecase.RecordTransportInput
}

func (s *stubActivityUsecase) RecordMeal(_ context.Context, input usecase.RecordMealInput) (*usecase.RecordMealOutput, error) {
	s.lastMealInput = input

	return s.mealOut, s.mealErr
}

func (s *stubActivityUsecase) RecordTransport(_ context.Context, input usecase.RecordTransportInput) (*usecase.RecordTransportOutput, error) {
	s.lastTransportInput = input

	return s.transportOut, s.transportErr
}

type stubInsightUsecase struct {
	mealRecOut      *usecase.MealRecommendationOutput
	mealRecErr      error
	transportRecOut *usecase.TransportRecommendationOutput
	transportRecErr error
	dashboardOut    *usecase.DashboardOutput
	dashboardErr    error

	lastUserID uuid.UUID
}

func (s *stubInsightUsecase) MealRecommendation(_ context.Context, userID uuid.UUID) (*usecase.MealRecommendationOutput, error) {
	s.lastUserID = userID

	return s.mealRecOut, s.mealRecErr
}

func (s *stubInsightUsecase) TransportRecommendation(_ context.Context, userID uuid.UUID) (*usecase.TransportRecommendationOutput, error) {
	s.lastUserID = userID

	return s.transportRecOut, s.transportRecErr
}

func (s *stubInsightUsecase) Dashboard(_ context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	s.lastUserID = userID

	return s.dashboardOut, s.dashboardErr
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
