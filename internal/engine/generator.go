package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"luxdash/internal/models"
)

// DefaultSeed matches the seed the dashboard has always shipped with.
const DefaultSeed int64 = 42

// Periods is 4 years of quarters.
const Periods = 16

var ModelNames = []string{"Mercedes-Benz S-Class", "BMW Série 7", "Audi A8", "Porsche Cayenne", "Lexus LS"}

var RegionNames = []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"}

// Approximate centroids, indexed like RegionNames.
var regionCoords = [][2]float64{
	{-1.4558, -62.8266},
	{-7.1153, -36.6612},
	{-15.7801, -47.9292},
	{-22.9035, -43.2096},
	{-30.0346, -51.2177},
}

// stream wraps the PRNG so that every draw goes through one ordered source.
type stream struct{ r *rand.Rand }

func newStream(seed int64) *stream {
	s := uint64(seed)
	return &stream{r: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// intn draws from [lo, hi).
func (s *stream) intn(lo, hi int) int { return lo + s.r.IntN(hi-lo) }

// uniform draws from [lo, hi) rounded to cents.
func (s *stream) uniform(lo, hi float64) float64 {
	return roundTo(lo+s.r.Float64()*(hi-lo), 2)
}

// Generate builds the three tables. The numeric columns depend only on seed;
// the quarter dates depend only on anchor.
//
// Draw order: model sales, profit, cost; quarterly sales, customers;
// region sales, satisfaction.
func Generate(seed int64, anchor time.Time) *Dataset {
	st := newStream(seed)
	n := len(ModelNames)

	ms := make([]models.VehicleModelRecord, n)
	for i, name := range ModelNames {
		ms[i].Model = name
	}
	for i := range ms {
		ms[i].UnitsSold = st.intn(50, 500)
	}
	for i := range ms {
		ms[i].Profit = st.uniform(200000, 800000)
	}
	for i := range ms {
		ms[i].Cost = st.uniform(150000, 600000)
	}

	dates := QuarterEnds(anchor, Periods)
	qs := make([]models.QuarterlyRecord, Periods)
	for i := range qs {
		qs[i].Date = dates[i]
		qs[i].UnitsSold = st.intn(40, 150)
	}
	for i := range qs {
		qs[i].NewCustomers = st.intn(30, 90)
	}

	rs := make([]models.RegionRecord, len(RegionNames))
	for i, name := range RegionNames {
		rs[i].Region = name
		rs[i].Latitude = regionCoords[i][0]
		rs[i].Longitude = regionCoords[i][1]
	}
	for i := range rs {
		rs[i].UnitsSold = st.intn(100, 600)
	}
	for i := range rs {
		// uniform rounds to cents, so 5.0 is reachable and 4.0 is the floor
		rs[i].Satisfaction = st.uniform(4.0, 5.0)
	}

	return &Dataset{
		seed:       seed,
		anchor:     truncateDay(anchor),
		models:     ms,
		quarters:   qs,
		regions:    rs,
		modelDict:  append([]string(nil), ModelNames...),
		regionDict: append([]string(nil), RegionNames...),
	}
}

// QuarterEnds returns n consecutive calendar-quarter end days, oldest first,
// the last one being the latest quarter end on or before anchor.
func QuarterEnds(anchor time.Time, n int) []time.Time {
	day := truncateDay(anchor)

	// months counted from year 0, pointing at the quarter's last month
	idx := day.Year()*12 + int(day.Month()) - 1
	idx = idx - idx%3 + 2
	if quarterEnd(idx).After(day) {
		idx -= 3
	}

	out := make([]time.Time, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = quarterEnd(idx)
		idx -= 3
	}
	return out
}

func quarterEnd(monthIdx int) time.Time {
	y, m := monthIdx/12, time.Month(monthIdx%12+1)
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
