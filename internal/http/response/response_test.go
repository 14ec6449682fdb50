package response

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"id": "uid-1"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"id": "uid-1"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something broke")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
}

func TestTruncated(t *testing.T) {
	t.Run("short message is kept whole", func(t *testing.T) {
		assert.Equal(t, "connection refused", Truncated(errors.New("connection refused")))
	})

	t.Run("long message is cut to 120 characters", func(t *testing.T) {
		long := strings.Repeat("x", 500)
		got := Truncated(errors.New(long))
		assert.Len(t, got, 120)
		assert.Equal(t, long[:120], got)
	})
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		MealUID  string `validate:"required,uuid"`
		Quantity int    `validate:"required,gte=1"`
	}

	v := validator.New()
	err := v.Struct(payload{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email is a required field")
	assert.Contains(t, resp.Error, "field MealUID is a required field")
	assert.Contains(t, resp.Error, "field Quantity is a required field")
}
