package overview

import (
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

	"github.com/campusdk/campusportalen/internal/models"
)

type StatsServiceMock struct {
	mock.Mock
}

func (m *StatsServiceMock) Overview(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestOverviewHandler_ServeHTTP(t *testing.T) {
	t.Run("returns the aggregated numbers", func(t *testing.T) {
		serviceMock := new(StatsServiceMock)
		serviceMock.On("Overview", mock.Anything).
			Return(&models.Stats{PortionsSold: 5, CO2SavedKg: 1.0, WasteSavedKg: 0.45}, nil).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

		assert.Equal(t, "OK", got["status"])
		data := got["data"].(map[string]any)
		assert.Equal(t, float64(5), data["portions_sold"])
		assert.Equal(t, 1.0, data["co2_saved_kg"])
		assert.Equal(t, 0.45, data["waste_saved_kg"])
	})

	t.Run("service error answers 500 with truncated message", func(t *testing.T) {
		serviceMock := new(StatsServiceMock)
		serviceMock.On("Overview", mock.Anything).
			Return(nil, errors.New("db error")).Once()

		handler := New(newNoopLogger(), serviceMock)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Error", got["status"])
		assert.Equal(t, "db error", got["error"])
	})
}
