// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-generics/api"
	"github.com/momentics/hioload-generics/fake"
	"github.com/momentics/hioload-generics/generator"
	"github.com/momentics/hioload-generics/internal/random"
)

func TestNewNoRepeat_RejectsSmallBounds(t *testing.T) {
	for _, ub := range []int{1, 0, -3} {
		g, err := generator.NewNoRepeat(ub, nil)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, api.ErrInvalidArgument, "upper bound %d", ub)
	}
}

func TestNoRepeat_ShiftsPastPrevious(t *testing.T) {
	// First draw 2 from [0,5); then draws from [0,4): 2 -> 3, 1 -> 1, 1 -> 2, 0 -> 0.
	src := fake.NewSource(2, 2, 1, 1, 0)
	g, err := generator.NewNoRepeat(5, src)
	require.NoError(t, err)

	_, ok := g.Previous()
	assert.False(t, ok)

	var got []int
	for range 5 {
		got = append(got, g.Next())
	}
	assert.Equal(t, []int{2, 3, 1, 2, 0}, got)
	assert.Equal(t, []int{5, 4, 4, 4, 4}, src.IntNCalls)

	prev, ok := g.Previous()
	assert.True(t, ok)
	assert.Equal(t, 0, prev)
}

func TestNoRepeat_UpperBoundTwoAlternates(t *testing.T) {
	g, err := generator.NewNoRepeat(2, random.NewSeeded(99))
	require.NoError(t, err)
	first := g.Next()
	for i := 1; i < 50; i++ {
		want := (first + i) % 2
		assert.Equal(t, want, g.Next(), "draw %d", i)
	}
}

func TestNoRepeat_PropertyNoConsecutiveRepeats(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		ub := 2 + int(seed%6)
		g, err := generator.NewNoRepeat(ub, random.NewSeeded(seed))
		require.NoError(t, err)

		prev := g.Next()
		counts := make([]int, ub)
		counts[prev]++
		for i := 0; i < 5000; i++ {
			v := g.Next()
			if v < 0 || v >= ub {
				t.Fatalf("seed %d: value %d outside [0,%d)", seed, v, ub)
			}
			if v == prev {
				t.Fatalf("seed %d: repeated %d at draw %d", seed, v, i)
			}
			counts[v]++
			prev = v
		}
		for v, c := range counts {
			if c == 0 {
				t.Errorf("seed %d: value %d never produced", seed, v)
			}
		}
	}
}

func TestNoRepeat_SeededIsReproducible(t *testing.T) {
	a, _ := generator.NewNoRepeat(65, random.NewSeeded(3))
	b, _ := generator.NewNoRepeat(65, random.NewSeeded(3))
	xs, err := generator.Take[int](a, 20)
	require.NoError(t, err)
	ys, err := generator.Take[int](b, 20)
	require.NoError(t, err)
	assert.Equal(t, xs, ys)
}
