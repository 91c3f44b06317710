package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	d := Generate(DefaultSeed, testAnchor)

	ms, qs, rs := d.Models(), d.Quarters(), d.Regions()
	require.Len(t, ms, 5)
	require.Len(t, qs, 16)
	require.Len(t, rs, 5)

	for i, r := range ms {
		assert.Equal(t, ModelNames[i], r.Model)
		assert.GreaterOrEqual(t, r.UnitsSold, 50)
		assert.Less(t, r.UnitsSold, 500)
		assert.GreaterOrEqual(t, r.Profit, 200000.0)
		assert.LessOrEqual(t, r.Profit, 800000.0)
		assert.GreaterOrEqual(t, r.Cost, 150000.0)
		assert.LessOrEqual(t, r.Cost, 600000.0)
		assert.Equal(t, roundTo(r.Profit, 2), r.Profit)
	}

	for _, r := range qs {
		assert.GreaterOrEqual(t, r.UnitsSold, 40)
		assert.Less(t, r.UnitsSold, 150)
		assert.GreaterOrEqual(t, r.NewCustomers, 30)
		assert.Less(t, r.NewCustomers, 90)
	}

	for i, r := range rs {
		assert.Equal(t, RegionNames[i], r.Region)
		assert.Equal(t, regionCoords[i][0], r.Latitude)
		assert.Equal(t, regionCoords[i][1], r.Longitude)
		assert.GreaterOrEqual(t, r.UnitsSold, 100)
		assert.Less(t, r.UnitsSold, 600)
		assert.GreaterOrEqual(t, r.Satisfaction, 4.0)
		assert.LessOrEqual(t, r.Satisfaction, 5.0)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, DefaultSeed, -7, 1 << 40} {
		a := Generate(seed, testAnchor)
		b := Generate(seed, testAnchor.AddDate(0, 5, 3))

		assert.Equal(t, a.Models(), b.Models(), "seed %d", seed)
		assert.Equal(t, a.Regions(), b.Regions(), "seed %d", seed)

		aq, bq := a.Quarters(), b.Quarters()
		for i := range aq {
			assert.Equal(t, aq[i].UnitsSold, bq[i].UnitsSold)
			assert.Equal(t, aq[i].NewCustomers, bq[i].NewCustomers)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := Generate(1, testAnchor)
	b := Generate(2, testAnchor)
	assert.NotEqual(t, a.Models(), b.Models())
}

func TestQuarterEnds(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		first  string
		last   string
	}{
		{"mid quarter", testAnchor, "2022-12-31", "2026-09-30"},
		{"exactly on quarter end", day("2026-09-30"), "2022-12-31", "2026-09-30"},
		{"first day of year", day("2026-01-01"), "2022-03-31", "2025-12-31"},
		{"leap year february", day("2024-02-29"), "2020-03-31", "2023-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuarterEnds(tt.anchor, Periods)
			require.Len(t, got, Periods)
			assert.Equal(t, day(tt.first), got[0])
			assert.Equal(t, day(tt.last), got[Periods-1])
			assert.False(t, got[Periods-1].After(tt.anchor))

			for i := 1; i < len(got); i++ {
				assert.True(t, got[i].After(got[i-1]))
				assert.Equal(t, got[i-1].AddDate(0, 0, 1).AddDate(0, 3, -1), got[i])
			}
		})
	}
}

func TestDatasetAccessorsReturnCopies(t *testing.T) {
	d := Generate(DefaultSeed, testAnchor)

	names := d.ModelNames()
	names[0] = "Fusca"
	assert.Equal(t, ModelNames[0], d.ModelNames()[0])

	rs := d.Regions()
	rs[0].Satisfaction = 0
	assert.NotZero(t, d.Regions()[0].Satisfaction)

	span := d.Span()
	assert.Equal(t, day("2022-12-31"), span.Start)
	assert.Equal(t, day("2026-09-30"), span.End)
	assert.Equal(t, day("2026-10-19"), d.Anchor())
}
