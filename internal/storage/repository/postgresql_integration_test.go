package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdk/campusportalen/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("create and fetch active user", func(t *testing.T) {
		uid, err := storage.CreateUser(ctx, models.User{
			Email:        "elev@campus.dk",
			Name:         "Emma Elev",
			Role:         models.RoleStudent,
			PasswordHash: "digest",
			Active:       true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, uid)

		got, err := storage.GetActiveUserByEmail(ctx, "elev@campus.dk")
		require.NoError(t, err)
		assert.Equal(t, uid, got.UID)
		assert.Equal(t, "Emma Elev", got.Name)
		assert.Equal(t, models.RoleStudent, got.Role)
	})

	t.Run("inactive user is not found", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Email:        "gone@campus.dk",
			Name:         "Gone",
			Role:         models.RoleStudent,
			PasswordHash: "digest",
			Active:       false,
		})
		require.NoError(t, err)

		got, err := storage.GetActiveUserByEmail(ctx, "gone@campus.dk")
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("unknown email maps to ErrNotFound", func(t *testing.T) {
		got, err := storage.GetActiveUserByEmail(ctx, "nobody@campus.dk")
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("count users", func(t *testing.T) {
		count, err := storage.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestStorage_Meals(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	co2 := 1.2

	t.Run("create and get meal", func(t *testing.T) {
		description := "Med kartofler"
		portions := 40
		uid, err := storage.CreateMeal(ctx, models.Meal{
			Name:              "Dagens ret",
			Description:       &description,
			Price:             25.50,
			Day:               day,
			IsTodaySpecial:    true,
			CO2KgPerPortion:   &co2,
			PortionsAvailable: &portions,
		})
		require.NoError(t, err)

		got, err := storage.GetMeal(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "Dagens ret", got.Name)
		assert.Equal(t, 25.50, got.Price)
		require.NotNil(t, got.Description)
		assert.Equal(t, description, *got.Description)
		require.NotNil(t, got.CO2KgPerPortion)
		assert.Equal(t, co2, *got.CO2KgPerPortion)
		require.NotNil(t, got.PortionsAvailable)
		assert.Equal(t, portions, *got.PortionsAvailable)
	})

	t.Run("get unknown meal maps to ErrNotFound", func(t *testing.T) {
		got, err := storage.GetMeal(ctx, uuid.New().String())
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("find special by day", func(t *testing.T) {
		got, err := storage.FindSpecialByDay(ctx, day)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Dagens ret", got.Name)
	})

	t.Run("no special on another day returns nil", func(t *testing.T) {
		got, err := storage.FindSpecialByDay(ctx, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list surplus by day", func(t *testing.T) {
		factory.CreateMeal(t, "Rester af lasagne", 15, day, false, true, nil)
		factory.CreateMeal(t, "Overskudsboller", 5, day, false, true, nil)
		factory.CreateMeal(t, "Andet tilbud", 10, day.AddDate(0, 0, 1), false, true, nil)

		got, err := storage.ListSurplusByDay(ctx, day)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Overskudsboller", got[0].Name)
		assert.Equal(t, "Rester af lasagne", got[1].Name)
	})

	t.Run("sum co2 skips meals without a value", func(t *testing.T) {
		sum, err := storage.SumCO2PerPortion(ctx)
		require.NoError(t, err)
		assert.Equal(t, co2, sum)
	})
}

func TestStorage_Orders(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	userUID := factory.CreateUser(t, "elev@campus.dk", "Emma Elev", models.RoleStudent, "digest", true)
	mealUID := factory.CreateMeal(t, "Dagens ret", 25.50, day, true, false, nil)

	t.Run("create order", func(t *testing.T) {
		uid, err := storage.CreateOrder(ctx, models.Order{
			UserUID:    userUID,
			MealUID:    mealUID,
			Quantity:   2,
			TotalPrice: 51.00,
			Status:     models.OrderStatusCreated,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, uid)
	})

	t.Run("aggregations exclude cancelled orders", func(t *testing.T) {
		factory.CreateOrder(t, userUID, mealUID, 3, 76.50, models.OrderStatusPaid)
		factory.CreateOrder(t, userUID, mealUID, 1, 25.50, models.OrderStatusFulfilled)
		factory.CreateOrder(t, userUID, mealUID, 10, 255.00, models.OrderStatusCancelled)

		sold, err := storage.SumQuantitySold(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, sold)

		completed, err := storage.SumQuantityCompleted(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, completed)
	})
}

func TestStorage_Events(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	adminUID := factory.CreateUser(t, "admin@campus.dk", "Admin", models.RoleAdmin, "digest", true)
	studentUID := factory.CreateUser(t, "elev@campus.dk", "Emma Elev", models.RoleStudent, "digest", true)

	now := time.Now().UTC()

	t.Run("list upcoming excludes past events", func(t *testing.T) {
		factory.CreateEvent(t, "Gammel fest", now.AddDate(0, 0, -7), adminUID)
		factory.CreateEvent(t, "Gallafest", now.AddDate(0, 0, 14), adminUID)
		factory.CreateEvent(t, "Fredagscafé", now.AddDate(0, 0, 7), adminUID)

		got, err := storage.ListUpcomingEvents(ctx, now)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Fredagscafé", got[0].Title)
		assert.Equal(t, "Gallafest", got[1].Title)
	})

	t.Run("signup is unique per event and user", func(t *testing.T) {
		eventUID := factory.CreateEvent(t, "Brætspilsaften", now.AddDate(0, 0, 3), adminUID)

		exists, err := storage.FindSignup(ctx, eventUID, studentUID)
		require.NoError(t, err)
		assert.False(t, exists)

		uid, err := storage.CreateSignup(ctx, eventUID, studentUID)
		require.NoError(t, err)
		assert.NotEmpty(t, uid)

		exists, err = storage.FindSignup(ctx, eventUID, studentUID)
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = storage.CreateSignup(ctx, eventUID, studentUID)
		assert.True(t, errors.Is(err, ErrAlreadyExists))

		signups, err := storage.ListSignupsByEvent(ctx, eventUID)
		require.NoError(t, err)
		require.Len(t, signups, 1)
		assert.Equal(t, studentUID, signups[0].UserUID)
	})
}

func TestStorage_News(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	adminUID := factory.CreateUser(t, "admin@campus.dk", "Admin", models.RoleAdmin, "digest", true)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create news", func(t *testing.T) {
		imageURL := "https://campus.dk/billede.jpg"
		uid, err := storage.CreateNews(ctx, models.News{
			Title:     "Velkommen tilbage",
			Text:      "Skolen starter igen.",
			ImageURL:  &imageURL,
			CreatedBy: adminUID,
			CreatedAt: base,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, uid)
	})

	t.Run("list is newest first and capped", func(t *testing.T) {
		for i := range 25 {
			factory.CreateNews(t, "Nyhed", "Tekst", adminUID, base.Add(time.Duration(i+1)*time.Hour))
		}

		got, err := storage.ListNews(ctx, 20)
		require.NoError(t, err)
		require.Len(t, got, 20)
		assert.True(t, got[0].CreatedAt.After(got[19].CreatedAt))
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
		}
	})
}
