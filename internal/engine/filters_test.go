package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxdash/internal/models"
)

var testAnchor = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFilterModels(t *testing.T) {
	src := Generate(DefaultSeed, testAnchor).Models()

	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{"all", ModelNames, ModelNames},
		{"none", []string{}, nil},
		{"nil selection", nil, nil},
		{"subset keeps source order", []string{"Lexus LS", "BMW Série 7"}, []string{"BMW Série 7", "Lexus LS"}},
		{"unknown names are ignored", []string{"Fusca", "Audi A8"}, []string{"Audi A8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterModels(src, tt.selected)
			assert.LessOrEqual(t, len(got), len(src))

			var names []string
			for _, r := range got {
				names = append(names, r.Model)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterModelsDoesNotMutateSource(t *testing.T) {
	d := Generate(DefaultSeed, testAnchor)
	before := d.Models()

	got := FilterModels(d.Models(), []string{"Audi A8"})
	require.Len(t, got, 1)
	got[0].Profit = -1

	assert.Equal(t, before, d.Models())
}

func TestFilterRegions(t *testing.T) {
	src := Generate(DefaultSeed, testAnchor).Regions()

	got := FilterRegions(src, []string{"Sul", "Norte"})
	require.Len(t, got, 2)
	assert.Equal(t, "Norte", got[0].Region)
	assert.Equal(t, "Sul", got[1].Region)
	assert.Equal(t, -30.0346, got[1].Latitude)

	assert.Empty(t, FilterRegions(src, nil))
}

func TestFilterByDateRange(t *testing.T) {
	qs := Generate(DefaultSeed, testAnchor).Quarters()

	t.Run("inclusive bounds", func(t *testing.T) {
		got, err := FilterByDateRange(qs, day("2025-03-31"), day("2025-12-31"))
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, day("2025-03-31"), got[0].Date)
		assert.Equal(t, day("2025-12-31"), got[3].Date)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		got, err := FilterByDateRange(qs, day("2026-09-30").Add(18*time.Hour), day("2026-09-30").Add(time.Hour))
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("idempotent", func(t *testing.T) {
		start, end := day("2024-01-01"), day("2025-06-30")
		once, err := FilterByDateRange(qs, start, end)
		require.NoError(t, err)
		twice, err := FilterByDateRange(once, start, end)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("empty window", func(t *testing.T) {
		got, err := FilterByDateRange(qs, day("2026-10-01"), day("2026-10-19"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("reversed bounds fail", func(t *testing.T) {
		got, err := FilterByDateRange(qs, day("2025-12-31"), day("2025-01-01"))
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, got)

		var re *RangeError
		require.ErrorAs(t, err, &re)
		assert.Len(t, re.Bounds, 2)
	})
}

func TestNewDateRange(t *testing.T) {
	_, err := NewDateRange(day("2025-01-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), "expected 2 bounds, got 1")

	_, err = NewDateRange(day("2025-01-01"), day("2025-02-01"), day("2025-03-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(day("2025-02-01"), day("2025-01-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewDateRange(day("2025-01-01"), day("2025-01-01"))
	require.NoError(t, err)
	assert.Equal(t, r.Start, r.End)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-01-01", " 2024-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, models.DateRange{Start: day("2024-01-01"), End: day("2024-12-31")}, r)

	_, err = ParseDateRange("2024-01-01", "31/12/2024")
	assert.ErrorIs(t, err, ErrInvalidRange)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "31/12/2024", pe.Value)

	_, err = ParseDateRange("2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Audi A8", "Lexus LS"}, SplitNames(" Audi A8 ,, Lexus LS,"))
	assert.Empty(t, SplitNames(""))
}
