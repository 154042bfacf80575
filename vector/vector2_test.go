// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/hioload-generics/vector"
)

const eps = 1e-9

func TestVector2_Arithmetic(t *testing.T) {
	v1 := vector.New(2.0, 4.7)
	v2 := vector.New(6.7, 9.1)

	sum := v1.Add(v2)
	assert.InDelta(t, 8.7, sum.DX, eps)
	assert.InDelta(t, 13.8, sum.DY, eps)

	diff := v2.Sub(v1)
	assert.InDelta(t, 4.7, diff.DX, eps)
	assert.InDelta(t, 4.4, diff.DY, eps)

	assert.Equal(t, vector.New(6, 18), vector.New(2, 6).Scale(3))
	assert.Equal(t, vector.New[uint](5, 9), vector.New[uint](2, 6).Add(vector.New[uint](3, 3)))
	assert.Equal(t, vector.Vector2[int]{}, vector.Zero[int]())
}

func TestVector2_Negated(t *testing.T) {
	assert.Equal(t, vector.New(-2.0, -4.7), vector.Negated(vector.New(2.0, 4.7)))
	assert.Equal(t, vector.New[int8](3, -4), vector.Negated(vector.New[int8](-3, 4)))
}

func TestVector2_Map(t *testing.T) {
	v := vector.Map(vector.New(1, 2), func(c int) float64 { return float64(c) / 2 })
	assert.Equal(t, vector.New(0.5, 1.0), v)
}

func TestVector2_Magnitude(t *testing.T) {
	assert.Equal(t, 5.0, vector.Magnitude(vector.New(3.0, 4.0)))
	assert.InDelta(t, 5.10783711564885, vector.Magnitude(vector.New(2.0, 4.7)), eps)
	assert.Equal(t, float32(5), vector.Magnitude(vector.New[float32](-3, 4)))
}

func TestVector2_Infinity(t *testing.T) {
	inf := vector.Infinity[float32]()
	assert.True(t, math.IsInf(float64(inf.DX), 1))
	assert.True(t, math.IsInf(float64(inf.DY), 1))
	assert.True(t, math.IsInf(vector.Magnitude(vector.Infinity[float64]()), 1))
}

func TestVector2_DirectionAndAngle(t *testing.T) {
	v5 := vector.New(50.0, 50.0)
	v6 := vector.New(-10.0, 50.0)

	assert.InDelta(t, 45.0, vector.RadiansToDegrees(vector.Direction(v5)), eps)
	assert.InDelta(t, 101.30993247402, vector.RadiansToDegrees(vector.Direction(v6)), 1e-9)
	assert.InDelta(t, 56.3099324740202, vector.RadiansToDegrees(vector.Angle(v5, v6)), 1e-9)

	cases := []struct {
		v   vector.Vector2[float64]
		deg float64
	}{
		{vector.New(1.0, 0.0), 0},
		{vector.New(0.0, 1.0), 90},
		{vector.New(-1.0, 0.0), 180},
		{vector.New(-1.0, -1.0), 225},
		{vector.New(1.0, -1.0), -45},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.deg, vector.RadiansToDegrees(vector.Direction(tc.v)), 1e-9, "%v", tc.v)
	}
}

func TestInterpolate(t *testing.T) {
	p := vector.Interpolate(vector.New(2.0, 3.0), vector.New(4.0, 7.0), 0.5)
	assert.Equal(t, vector.New(3.0, 5.0), p)
	assert.Equal(t, vector.New(2.0, 3.0), vector.Interpolate(vector.New(2.0, 3.0), vector.New(4.0, 7.0), 0))
}

func TestSameSign(t *testing.T) {
	assert.False(t, vector.SameSign(5, -4))
	assert.True(t, vector.SameSign(-1, -9))
	assert.True(t, vector.SameSign(7, 6))
	assert.True(t, vector.SameSign(0.0, 3.5))
}

func TestVector2_String(t *testing.T) {
	assert.Equal(t, "Vector2(dx: 1, dy: -2)", vector.New(1, -2).String())
}
