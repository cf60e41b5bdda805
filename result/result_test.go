package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-pihole/result"
)

var errBoom = errors.New("boom")

func TestOk(t *testing.T) {
	t.Parallel()

	r := result.Ok(42)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Unwrap())
	assert.NoError(t, r.Err())
}

func TestErr(t *testing.T) {
	t.Parallel()

	r := result.Err[int](errBoom)
	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), errBoom)
}

func TestUnwrapPanicsOnFailure(t *testing.T) {
	t.Parallel()

	r := result.Err[string](errBoom)
	assert.Panics(t, func() { r.Unwrap() })
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, result.Ok(7).UnwrapOr(0))
	assert.Equal(t, 0, result.Err[int](errBoom).UnwrapOr(0))
}

func TestGet(t *testing.T) {
	t.Parallel()

	value, err := result.Ok("x").Get()
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	value, err = result.Err[string](errBoom).Get()
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, value)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := result.Map(result.Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Unwrap())

	asString := result.Map(result.Ok(42), strconv.Itoa)
	assert.Equal(t, "42", asString.Unwrap())

	failed := result.Map(result.Err[int](errBoom), func(v int) int { return v * 2 })
	assert.True(t, failed.IsErr())
	assert.ErrorIs(t, failed.Err(), errBoom)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrapped := result.MapErr(result.Err[int](errBoom), func(err error) error {
		return errors.Join(errors.New("context"), err)
	})
	assert.ErrorIs(t, wrapped.Err(), errBoom)

	untouched := result.MapErr(result.Ok(1), func(err error) error { return errors.New("never") })
	assert.True(t, untouched.IsOk())
	assert.Equal(t, 1, untouched.Unwrap())
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	parse := func(s string) result.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Err[int](err)
		}
		return result.Ok(n)
	}

	assert.Equal(t, 42, result.AndThen(result.Ok("42"), parse).Unwrap())
	assert.True(t, result.AndThen(result.Ok("nope"), parse).IsErr())
	assert.ErrorIs(t, result.AndThen(result.Err[string](errBoom), parse).Err(), errBoom)
}

func TestZeroValueIsFailure(t *testing.T) {
	t.Parallel()

	var r result.Result[int]
	assert.True(t, r.IsErr())
	assert.False(t, r.IsOk())
}
