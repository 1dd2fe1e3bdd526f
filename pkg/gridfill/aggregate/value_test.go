package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func ptr(f float64) *float64 { return &f }

func TestGetUnitAwareValue(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		unit   models.Unit
		gwp    *float64
		odp    *float64
		want   *float64
	}{
		{"mt parses number", map[string]any{"amount": 12.5}, models.UnitMT, nil, nil, ptr(12.5)},
		{"mt parses string", map[string]any{"amount": "3"}, models.UnitMT, nil, nil, ptr(3)},
		{"mt malformed", map[string]any{"amount": "abc"}, models.UnitMT, nil, nil, nil},
		{"mt missing", map[string]any{}, models.UnitMT, nil, nil, nil},
		{"gwp precomputed wins", map[string]any{"amount": 2.0, "amount_gwp": 2860.0}, models.UnitGWP, ptr(1), nil, ptr(2860)},
		{"gwp from multiplier", map[string]any{"amount": 2.0}, models.UnitGWP, ptr(1430), nil, ptr(2860)},
		{"gwp unavailable", map[string]any{"amount": 2.0}, models.UnitGWP, nil, nil, nil},
		{"odp precomputed", map[string]any{"amount": 2.0, "amount_odp": 0.11}, models.UnitODP, nil, nil, ptr(0.11)},
		{"odp from multiplier", map[string]any{"amount": 10.0}, models.UnitODP, nil, ptr(0.055), ptr(0.55)},
		{"odp base malformed", map[string]any{"amount": "x"}, models.UnitODP, nil, ptr(1), nil},
		{"unknown unit", map[string]any{"amount": 1.0}, models.Unit("kg"), nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetUnitAwareValue(models.Row{Fields: tt.fields}, "amount", tt.unit, tt.gwp, tt.odp)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestMultipliers(t *testing.T) {
	gwp, odp := Multipliers(models.Row{Fields: map[string]any{"gwp": 1430.0, "odp": "0"}})
	require.NotNil(t, gwp)
	require.NotNil(t, odp)
	assert.Equal(t, 1430.0, *gwp)
	assert.Equal(t, 0.0, *odp)

	gwp, odp = Multipliers(models.Row{})
	assert.Nil(t, gwp)
	assert.Nil(t, odp)
}

func TestAccumulatorIsCompensated(t *testing.T) {
	values := []float64{1e16, 1, -1e16}
	assert.Equal(t, 1.0, SumFloats(values))

	var naive float64
	small := make([]float64, 0, 10000)
	for i := 0; i < 10000; i++ {
		small = append(small, 0.1)
		naive += 0.1
	}
	assert.InDelta(t, 1000.0, SumFloats(small), 1e-12)
	assert.NotEqual(t, 1000.0, naive)

	assert.Equal(t, 0.0, SumFloats(nil))
}
