package main

import (
	"math"
	"testing"

	"github.com/ohsayan/mathlib/trig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableQuarters64(t *testing.T) {
	rows := table[float64](4)
	require.Len(t, rows, 5)

	for i, r := range rows {
		assert.Equal(t, i, r.Step)
		assert.Equal(t, float64(90*i), r.Deg.Value())
		assert.True(t, r.Exact, "step %d: %v != %v", i, r.Deg, r.Rad)
		assert.Equal(t, trig.UnitRadians, r.DegPlusQuarter.Unit())
		assert.Equal(t, trig.UnitDegrees, r.RadPlusQuarter.Unit())
	}

	assert.Equal(t, 0.0, rows[0].Rad.Value())
	assert.Equal(t, 0.5*math.Pi, rows[0].DegPlusQuarter.Value())
	assert.Equal(t, 2*math.Pi, rows[4].Rad.Value())
	assert.Equal(t, 450.0, rows[4].RadPlusQuarter.Value())
}

func TestTableQuarters32(t *testing.T) {
	rows := table[float32](4)
	require.Len(t, rows, 5)

	for i, r := range rows {
		assert.True(t, r.Exact, "step %d: %v != %v", i, r.Deg, r.Rad)
	}

	assert.Equal(t, float32(360), rows[4].Deg.Value())
	assert.Equal(t, 2*trig.Pi32, rows[4].Rad.Value())
	assert.Equal(t, float32(450), rows[4].RadPlusQuarter.Value())
}

func TestTableSteps(t *testing.T) {
	for _, n := range []int{1, 3, 7, 360} {
		rows := table[float64](n)
		require.Len(t, rows, n+1)
		assert.Equal(t, 0.0, rows[0].Deg.Value())
		assert.Equal(t, 360.0, rows[n].Deg.Value())
		assert.InDelta(t, 2*math.Pi, rows[n].Rad.Value(), 1e-12)
	}
}

func TestRowString(t *testing.T) {
	r := table[float64](2)[1]
	s := r.String()
	assert.Contains(t, s, "+180.00°")
	assert.Contains(t, s, "+3.1416 rad")
	assert.Contains(t, s, "true")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(8, 64))
	assert.NoError(t, validate(1, 32))
	assert.Error(t, validate(0, 64))
	assert.Error(t, validate(-3, 32))
	assert.Error(t, validate(8, 16))
}
