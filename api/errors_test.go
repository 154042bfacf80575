package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-generics/api"
)

func TestError_IsMatchesSentinelForCode(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		err := api.OutOfRange(7, 3)
		assert.ErrorIs(t, err, api.ErrIndexOutOfRange)
		assert.NotErrorIs(t, err, api.ErrInvalidArgument)
		assert.Equal(t, 7, err.Context["index"])
		assert.Equal(t, 3, err.Context["len"])
	})

	t.Run("invalid argument survives wrapping", func(t *testing.T) {
		base := api.NewError(api.ErrCodeInvalidArgument, "upper bound must be > 1")
		wrapped := fmt.Errorf("norepeat: %w", base)
		assert.ErrorIs(t, wrapped, api.ErrInvalidArgument)

		var coded *api.Error
		require.True(t, errors.As(wrapped, &coded))
		assert.Equal(t, api.ErrCodeInvalidArgument, coded.Code)
	})

	t.Run("ok code matches nothing", func(t *testing.T) {
		err := api.NewError(api.ErrCodeOK, "fine")
		assert.False(t, errors.Is(err, api.ErrEmpty))
	})
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "empty", api.NewError(api.ErrCodeEmpty, "empty").Error())
	assert.Contains(t, api.OutOfRange(-1, 0).Error(), "index out of range (context:")
}

func TestError_WithContextOnZeroValue(t *testing.T) {
	e := &api.Error{Code: api.ErrCodeEmpty, Message: "queue"}
	e.WithContext("op", "peek")
	assert.Equal(t, "peek", e.Context["op"])
}

func TestCheckIndex(t *testing.T) {
	assert.NoError(t, api.CheckIndex(0, 1))
	assert.NoError(t, api.CheckIndex(4, 5))
	assert.ErrorIs(t, api.CheckIndex(5, 5), api.ErrIndexOutOfRange)
	assert.ErrorIs(t, api.CheckIndex(-1, 5), api.ErrIndexOutOfRange)
	assert.ErrorIs(t, api.CheckIndex(0, 0), api.ErrIndexOutOfRange)
}

func TestGeneratorFunc(t *testing.T) {
	n := 0
	var g api.Generator[int] = api.GeneratorFunc[int](func() int {
		n++
		return n * 10
	})
	assert.Equal(t, 10, g.Next())
	assert.Equal(t, 20, g.Next())
}
