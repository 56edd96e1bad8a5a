package carbon

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"abc", 0},
		{"1e3", 1000},
		{"NaN", 0},
		{"Inf", 0},
		{"-4", 0},
		{"12abc", 12},
		{"3.5 kg", 3.5},
		{".5", 0.5},
		{"+8", 8},
		{"1e", 1},
		{"2.5e2t", 250},
		{"1,000", 1},
		{"0x10", 0},
		{"abc12", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseQuantity(tt.in), 0)
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float64", 2.5, 2.5},
		{"float32", float32(1.5), 1.5},
		{"int", 4, 4},
		{"int64", int64(9), 9},
		{"uint", uint(3), 3},
		{"numeric string", "42", 42},
		{"non-numeric string", "lots", 0},
		{"json number", json.Number("8.25"), 8.25},
		{"bad json number", json.Number("x"), 0},
		{"bool", true, 0},
		{"slice", []int{1}, 0},
		{"NaN", math.NaN(), 0},
		{"negative int", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantity(tt.in), 0)
		})
	}
}

func TestActivityInputsFromAny(t *testing.T) {
	inputs := ActivityInputsFromAny(map[string]any{
		KeyElectricity: "100",
		KeyTransport:   50,
		KeyFuel:        nil,
		"unknown":      12,
	})

	require.Contains(t, inputs, KeyWaste, "defaults are filled in")
	assert.InDelta(t, 100.0, inputs.Get(KeyElectricity), 0)
	assert.InDelta(t, 50.0, inputs.Get(KeyTransport), 0)
	assert.InDelta(t, 0.0, inputs.Get(KeyFuel), 0)
	assert.Equal(t, "197.00", EstimateCO2e(inputs))
}

func TestOffsetInputsFromAny(t *testing.T) {
	offsets := OffsetInputsFromAny(map[string]any{
		KeyAfforestation: 10.0,
		KeyCarbonCredits: "oops",
	})

	assert.Len(t, offsets, 3)
	assert.InDelta(t, 10.0, SumOffsets(offsets), 0)
}

func TestClone_Independent(t *testing.T) {
	a := ActivityInputs{KeyFuel: 1}
	b := a.Clone()
	b[KeyFuel] = 2
	assert.InDelta(t, 1.0, a[KeyFuel], 0)

	o := OffsetInputs{KeyRenewables: 1}
	p := o.Clone()
	p[KeyRenewables] = 5
	assert.InDelta(t, 1.0, o[KeyRenewables], 0)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("mining")
	require.NoError(t, err)
	assert.Equal(t, CategoryMining, c)
	assert.True(t, c.IncludesMiningActivities())
	assert.Len(t, c.Activities(), 5)

	c, err = ParseCategory(" Organization ")
	require.NoError(t, err)
	assert.Equal(t, CategoryOrganization, c)
	assert.Len(t, c.Activities(), 4)

	_, err = ParseCategory("household")
	require.ErrorIs(t, err, ErrUnknownCategory)

	assert.Equal(t, "-", CategoryNone.DisplayName())
	assert.True(t, CategoryNone.Valid())
	assert.False(t, Category("Farm").Valid())
}
