package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDirtyTrackerTransitions(t *testing.T) {
	d := NewDirtyTracker()
	assert.Equal(t, Stale, d.State(), "initial state")

	d.Computed()
	assert.True(t, d.Fresh())

	d.Edit()
	assert.Equal(t, Stale, d.State())

	d.Computed()
	assert.Equal(t, Fresh, d.State())

	assert.True(t, d.ToggleTax(true))
	assert.False(t, d.ToggleTax(false))
	assert.Equal(t, Fresh, d.State(), "toggling never changes the state by itself")

	d.Reset()
	assert.Equal(t, "stale", d.State().String())
}

func TestSavingsRateField(t *testing.T) {
	high := decimal.NewFromFloat(13.75)
	ref := decimal.NewFromFloat(0.1)

	var f SavingsRateField
	assert.True(t, f.Auto())
	assert.Equal(t, "6.27", f.Value(high, ref).String())

	low := decimal.NewFromFloat(8)
	assert.Equal(t, "5.7", f.Value(low, ref).String(), "auto follows the benchmark")

	f.Edit(decimal.NewFromFloat(7.5))
	assert.Equal(t, RateManual, f.Mode())
	assert.Equal(t, "7.5", f.Value(high, ref).String())
	assert.Equal(t, "7.5", f.Value(low, ref).String())

	assert.True(t, f.Reset(high, ref))
	assert.True(t, f.Auto())
	assert.False(t, f.Reset(high, ref), "reset in auto mode is a no-op")

	f.Edit(decimal.RequireFromString("6.27"))
	assert.False(t, f.Reset(high, ref), "same value is not a change")
}
