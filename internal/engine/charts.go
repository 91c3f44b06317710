package engine

import (
	"luxdash/internal/models"
)

// MainColor is the dashboard's single theme color.
const MainColor = "#656d4a"

const (
	emptyModels  = "Nenhum dado para os modelos selecionados."
	emptyDates   = "Nenhum dado para o intervalo de datas selecionado."
	emptyRegions = "Nenhuma região selecionada."
	emptyMap     = "Nenhuma região selecionada para o mapa."
)

// BuildCharts produces the six chart payloads in page order.
func BuildCharts(ms []models.VehicleModelRecord, qs []models.QuarterlyRecord, rs []models.RegionRecord) []models.ChartConfig {
	return []models.ChartConfig{
		modelShareChart(ms),
		modelComparisonChart(ms),
		quarterlyTrendChart(qs),
		regionSalesChart(rs),
		satisfactionScatter(rs),
		regionMap(rs),
	}
}

func modelShareChart(ms []models.VehicleModelRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "model_share",
		ChartType:  "pie",
		Title:      "Distribuição de Vendas por Modelo",
		ShowLegend: true,
	}
	if len(ms) == 0 {
		c.Empty = emptyModels
		return c
	}
	pts := make([]models.ChartPoint, len(ms))
	for i, r := range ms {
		pts[i] = models.ChartPoint{Label: r.Model, Value: float64(r.UnitsSold)}
	}
	c.Series = []models.ChartSeries{{Name: "Vendas", Data: pts, Color: MainColor}}
	c.Colors = []string{MainColor}
	return c
}

func modelComparisonChart(ms []models.VehicleModelRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "model_comparison",
		ChartType:  "grouped_bar",
		Title:      "Comparação de Vendas, Lucro e Custo por Modelo",
		XAxis:      "Modelo",
		ShowLegend: true,
	}
	if len(ms) == 0 {
		c.Empty = emptyModels
		return c
	}
	fields := []struct {
		name string
		get  func(models.VehicleModelRecord) float64
	}{
		{"Vendas", func(r models.VehicleModelRecord) float64 { return float64(r.UnitsSold) }},
		{"Lucro", func(r models.VehicleModelRecord) float64 { return r.Profit }},
		{"Custo", func(r models.VehicleModelRecord) float64 { return r.Cost }},
	}
	for _, fd := range fields {
		pts := make([]models.ChartPoint, len(ms))
		for i, r := range ms {
			pts[i] = models.ChartPoint{Label: r.Model, Value: fd.get(r)}
		}
		c.Series = append(c.Series, models.ChartSeries{Name: fd.name, Data: pts, Color: MainColor})
	}
	c.Colors = assignColors(len(c.Series))
	return c
}

func quarterlyTrendChart(qs []models.QuarterlyRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "quarterly_trend",
		ChartType:  "line",
		Title:      "Vendas e Novos Clientes por Trimestre",
		XAxis:      "Data",
		YAxis:      "Quantidade",
		ShowLegend: true,
	}
	if len(qs) == 0 {
		c.Empty = emptyDates
		return c
	}
	sales := make([]models.ChartPoint, len(qs))
	customers := make([]models.ChartPoint, len(qs))
	for i, r := range qs {
		label := r.Date.Format(DateLayout)
		sales[i] = models.ChartPoint{Label: label, Value: float64(r.UnitsSold)}
		customers[i] = models.ChartPoint{Label: label, Value: float64(r.NewCustomers)}
	}
	c.Series = []models.ChartSeries{
		{Name: "Vendas", Data: sales, Color: MainColor},
		{Name: "Clientes", Data: customers, Color: MainColor},
	}
	c.Colors = assignColors(2)
	return c
}

func regionSalesChart(rs []models.RegionRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "region_sales",
		ChartType:  "bar",
		Title:      "Vendas por Região",
		XAxis:      "Região",
		YAxis:      "Vendas",
		ShowLegend: true,
	}
	if len(rs) == 0 {
		c.Empty = emptyRegions
		return c
	}
	pts := make([]models.ChartPoint, len(rs))
	for i, r := range rs {
		pts[i] = models.ChartPoint{Label: r.Region, Value: float64(r.UnitsSold)}
	}
	c.Series = []models.ChartSeries{{Name: "Vendas", Data: pts, Color: MainColor}}
	c.Colors = assignColors(len(rs))
	return c
}

func satisfactionScatter(rs []models.RegionRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "satisfaction_scatter",
		ChartType:  "scatter",
		Title:      "Relação entre Vendas e Satisfação do Cliente",
		XAxis:      "Vendas",
		YAxis:      "Satisfação",
		ShowLegend: true,
	}
	if len(rs) == 0 {
		c.Empty = emptyRegions
		return c
	}
	for _, r := range rs {
		c.Series = append(c.Series, models.ChartSeries{
			Name: r.Region,
			Data: []models.ChartPoint{{
				Label: r.Region,
				X:     float64(r.UnitsSold),
				Value: r.Satisfaction,
				Size:  float64(r.UnitsSold),
			}},
			Color: MainColor,
		})
	}
	c.Colors = assignColors(len(rs))
	return c
}

// regionMap colors by satisfaction on a continuous scale, so it carries no
// discrete palette.
func regionMap(rs []models.RegionRecord) models.ChartConfig {
	c := models.ChartConfig{
		ID:         "region_map",
		ChartType:  "scatter_map",
		Title:      "Mapa Interativo de Vendas e Satisfação por Região",
		ColorScale: "Viridis",
	}
	if len(rs) == 0 {
		c.Empty = emptyMap
		return c
	}
	pts := make([]models.ChartPoint, len(rs))
	for i, r := range rs {
		pts[i] = models.ChartPoint{
			Label: r.Region,
			Value: r.Satisfaction,
			Size:  float64(r.UnitsSold),
			Lat:   r.Latitude,
			Lon:   r.Longitude,
		}
	}
	c.Series = []models.ChartSeries{{Name: "Satisfação", Data: pts}}
	return c
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = MainColor
	}
	return colors
}
