package handler

import (
	"net/http"
	"testing"

	"goeco/internal/domain/entity"
	domainerrors "goeco/internal/domain/errors"
	"goeco/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityHandler_RecordMeal_Success(t *testing.T) {
	userID := uuid.New()
	uc := &stubActivityUsecase{
		mealOut: &usecase.RecordMealOutput{
			Meal: &entity.Meal{ID: 1, UserID: userID, Type: "Beef", Emission: 6.61},
		},
	}
	h := NewActivityHandler(uc, discardLogger())

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/meals",
		`{"userId":"`+userID.String()+`","type":"Beef"}`)

	require.NoError(t, h.RecordMeal(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Beef")
	assert.Contains(t, rec.Body.String(), "6.61")
	assert.Equal(t, userID, uc.lastMealInput.UserID)
}

func TestActivityHandler_RecordMeal_MissingType(t *testing.T) {
	h := NewActivityHandler(&stubActivityUsecase{}, discardLogger())

	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/meals",
		`{"userId":"`+uuid.NewString()+`"}`)

	err := h.RecordMeal(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestActivityHandler_RecordMeal_UnknownType(t *testing.T) {
	uc := &stubActivityUsecase{mealErr: domainerrors.ErrInvalidMealType}
	h := NewActivityHandler(uc, discardLogger())

	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/meals",
		`{"userId":"`+uuid.NewString()+`","type":"Unicorn"}`)

	err := h.RecordMeal(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMealType)
}

func TestActivityHandler_RecordTransport_Success(t *testing.T) {
	userID := uuid.New()
	uc := &stubActivityUsecase{
		transportOut: &usecase.RecordTransportOutput{
			Trip: &entity.TransportTrip{ID: 1, UserID: userID, Type: "Car", Distance: 20, Emission: 0.78},
		},
	}
	h := NewActivityHandler(uc, discardLogger())

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/transport",
		`{"userId":"`+userID.String()+`","type":"Car","distance":20}`)

	require.NoError(t, h.RecordTransport(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The view exposes the effective cost, factor times distance.
	assert.Contains(t, rec.Body.String(), "15.6")
	assert.InDelta(t, 20, uc.lastTransportInput.Distance, 1e-9)
}

func TestActivityHandler_RecordTransport_ZeroDistanceAccepted(t *testing.T) {
	userID := uuid.New()
	uc := &stubActivityUsecase{
		transportOut: &usecase.RecordTransportOutput{
			Trip: &entity.TransportTrip{ID: 1, UserID: userID, Type: "Walk", Distance: 0, Emission: 0},
		},
	}
	h := NewActivityHandler(uc, discardLogger())

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/transport",
		`{"userId":"`+userID.String()+`","type":"Walk","distance":0}`)

	// Zero is a legal distance; "required" applies to the field's presence,
	// which the pointer type preserves.
	require.NoError(t, h.RecordTransport(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestActivityHandler_RecordTransport_MissingDistance(t *testing.T) {
	h := NewActivityHandler(&stubActivityUsecase{}, discardLogger())

	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/transport",
		`{"userId":"`+uuid.NewString()+`","type":"Car"}`)

	err := h.RecordTransport(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
