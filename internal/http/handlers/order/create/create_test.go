package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campusdk/campusportalen/internal/http/middlewarectx"
	"github.com/campusdk/campusportalen/internal/models"
	orderservice "github.com/campusdk/campusportalen/internal/services/order"
)

type OrderServiceMock struct {
	mock.Mock
}

func (m *OrderServiceMock) Create(ctx context.Context, userUID string, req models.DummyOrder) (string, error) {
	args := m.Called(ctx, userUID, req)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	mealUID := "a0000000-0000-4000-8000-000000000001"

	tests := []struct {
		name           string
		requestBody    interface{}
		userUID        string
		mockUID        string
		mockErr        error
		wantStatusCode int
		wantError      string
		wantStatus     string
	}{
		{
			name:           "valid order",
			requestBody:    models.DummyOrder{MealUID: mealUID, Quantity: 2},
			userUID:        "uid-student",
			mockUID:        "uid-order",
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			userUID:        "uid-student",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name:           "validation error - meal id not a uuid",
			requestBody:    models.DummyOrder{MealUID: "not-a-uuid", Quantity: 2},
			userUID:        "uid-student",
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field MealUID can contain only uuid",
			wantStatus:     "Error",
		},
		{
			name:           "missing identity",
			requestBody:    models.DummyOrder{MealUID: mealUID, Quantity: 2},
			userUID:        "",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
			wantStatus:     "Error",
		},
		{
			name:           "unknown meal",
			requestBody:    models.DummyOrder{MealUID: mealUID, Quantity: 2},
			userUID:        "uid-student",
			mockErr:        orderservice.ErrMealNotFound,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "unknown meal",
			wantStatus:     "Error",
		},
		{
			name:           "service error",
			requestBody:    models.DummyOrder{MealUID: mealUID, Quantity: 2},
			userUID:        "uid-student",
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not create order",
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(OrderServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockUID != "" || tt.mockErr != nil {
				serviceMock.On("Create", mock.Anything, tt.userUID, tt.requestBody.(models.DummyOrder)).
					Return(tt.mockUID, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])
			if tt.wantError != "" {
				assert.Contains(t, got["error"], tt.wantError)
			}
			if tt.mockUID != "" {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.mockUID, data["id"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
