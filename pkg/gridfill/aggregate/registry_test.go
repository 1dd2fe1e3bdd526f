package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{FuncSumTotal, FuncSumTotalUsages}, r.Names())

	_, ok := r.Lookup("count")
	assert.False(t, ok)

	require.NoError(t, r.Register("count", func(in Input) float64 {
		return float64(len(scope(in.Rows, in.Index)))
	}))
	fn, ok := r.Lookup("count")
	require.True(t, ok)
	assert.Equal(t, 2.0, fn(Input{Rows: []models.Row{{}, {}, {Type: models.RowTypeTotal}}, Index: 2}))

	assert.Error(t, r.Register("", fn))
	assert.Error(t, r.Register("nil", nil))
}

func TestUnitSelection(t *testing.T) {
	s := NewUnitSelection(models.ContextSectionA)
	assert.Equal(t, models.UnitMT, s.Current())
	assert.Equal(t, []models.Unit{models.UnitMT, models.UnitODP}, s.Allowed())

	require.NoError(t, s.Select(models.UnitODP))
	assert.Equal(t, models.UnitODP, s.Current())

	err := s.Select(models.UnitGWP)
	assert.ErrorIs(t, err, ErrUnitNotAllowed)
	assert.Equal(t, models.UnitODP, s.Current())

	assert.ErrorIs(t, s.Select("kg"), ErrUnknownUnit)

	d := NewUnitSelection("")
	require.NoError(t, d.Select(models.UnitGWP))
	assert.Equal(t, models.UnitGWP, d.Current())
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("odp")
	require.NoError(t, err)
	assert.Equal(t, models.UnitODP, u)

	_, err = ParseUnit("tons")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
