package models

import "time"

type VehicleModelRecord struct {
	Model     string  `json:"model"`
	UnitsSold int     `json:"units_sold"`
	Profit    float64 `json:"profit"`
	Cost      float64 `json:"cost"`
}

type QuarterlyRecord struct {
	Date         time.Time `json:"date"`
	UnitsSold    int       `json:"units_sold"`
	NewCustomers int       `json:"new_customers"`
}

type RegionRecord struct {
	Region       string  `json:"region"`
	UnitsSold    int     `json:"units_sold"`
	Satisfaction float64 `json:"satisfaction"`
	Latitude     float64 `json:"lat"`
	Longitude    float64 `json:"lon"`
}

// Units lets the aggregator sum any of the three tables.
func (r VehicleModelRecord) Units() int { return r.UnitsSold }
func (r QuarterlyRecord) Units() int    { return r.UnitsSold }
func (r RegionRecord) Units() int       { return r.UnitsSold }

// DateRange is an inclusive pair of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Selection is what the presentation layer sends back on every change.
// A nil Range means the whole time series.
type Selection struct {
	Models  []string   `json:"models"`
	Regions []string   `json:"regions"`
	Range   *DateRange `json:"range,omitempty"`
}

type DatasetView struct {
	Seed       int64                `json:"seed"`
	Anchor     time.Time            `json:"anchor"`
	ModelDict  []string             `json:"model_names"`
	RegionDict []string             `json:"region_names"`
	Models     []VehicleModelRecord `json:"models"`
	Quarters   []QuarterlyRecord    `json:"quarters"`
	Regions    []RegionRecord       `json:"regions"`
}

type KPIs struct {
	TotalUnitsSold int       `json:"total_units_sold"`
	TotalProfit    float64   `json:"total_profit"`
	TotalCost      float64   `json:"total_cost"`
	ProfitMargin   float64   `json:"profit_margin"`
	Cards          []KPICard `json:"cards"`
}

type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// ChartConfig is a render-ready chart description. Empty is set instead of
// Series when the input table had no rows.
type ChartConfig struct {
	ID         string        `json:"id"`
	ChartType  string        `json:"chart_type"`
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis,omitempty"`
	YAxis      string        `json:"y_axis,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`
	Colors     []string      `json:"colors,omitempty"`
	ColorScale string        `json:"color_scale,omitempty"`
	ShowLegend bool          `json:"show_legend"`
	Empty      string        `json:"empty,omitempty"`
}

type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x,omitempty"`
	Size  float64 `json:"size,omitempty"`
	Lat   float64 `json:"lat,omitempty"`
	Lon   float64 `json:"lon,omitempty"`
}

type DashboardData struct {
	SessionID   string               `json:"session_id"`
	Selection   Selection            `json:"selection"`
	Models      []VehicleModelRecord `json:"models"`
	Quarters    []QuarterlyRecord    `json:"quarters"`
	Regions     []RegionRecord       `json:"regions"`
	KPIs        KPIs                 `json:"kpis"`
	Insights    []string             `json:"insights"`
	Charts      []ChartConfig        `json:"charts"`
	GeneratedAt time.Time            `json:"generated_at"`
	Caption     string               `json:"caption"`
}
