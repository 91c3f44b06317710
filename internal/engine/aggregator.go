package engine

import (
	"fmt"

	"luxdash/internal/models"
)

type unitCounter interface {
	Units() int
}

// TotalUnitsSold sums unitsSold across any of the tables. 0 when empty.
func TotalUnitsSold[T unitCounter](rows []T) int {
	total := 0
	for _, r := range rows {
		total += r.Units()
	}
	return total
}

func TotalProfit(rows []models.VehicleModelRecord) float64 {
	return sumBy(rows, func(r models.VehicleModelRecord) float64 { return r.Profit })
}

func TotalCost(rows []models.VehicleModelRecord) float64 {
	return sumBy(rows, func(r models.VehicleModelRecord) float64 { return r.Cost })
}

// ProfitMargin is profit per unit sold. Zero units yields 0, not a fault.
func ProfitMargin(totalProfit float64, totalUnits int) float64 {
	if totalUnits <= 0 {
		return 0
	}
	return totalProfit / float64(totalUnits)
}

// ArgmaxBy returns the first record holding the largest key.
func ArgmaxBy[T any](rows []T, key func(T) float64) (T, error) {
	var best T
	if len(rows) == 0 {
		return best, fmt.Errorf("argmax: %w", ErrEmptyInput)
	}
	best = rows[0]
	bestVal := key(best)
	for _, r := range rows[1:] {
		if v := key(r); v > bestVal {
			best, bestVal = r, v
		}
	}
	return best, nil
}

// MeanBy is 0 for an empty table.
func MeanBy[T any](rows []T, key func(T) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	return sumBy(rows, key) / float64(len(rows))
}

func sumBy[T any](rows []T, key func(T) float64) float64 {
	var total float64
	for _, r := range rows {
		total += key(r)
	}
	return roundTo(total, 2)
}

// ComputeKPIs derives the four scalar KPIs and their display cards from the
// filtered model table.
func ComputeKPIs(rows []models.VehicleModelRecord, f *Formatter) models.KPIs {
	units := TotalUnitsSold(rows)
	profit := TotalProfit(rows)
	cost := TotalCost(rows)
	margin := ProfitMargin(profit, units)

	return models.KPIs{
		TotalUnitsSold: units,
		TotalProfit:    profit,
		TotalCost:      cost,
		ProfitMargin:   margin,
		Cards: []models.KPICard{
			{Label: "Vendas Totais", Value: f.Int(units), Delta: "+8% vs último ano"},
			{Label: "Lucro Total (R$)", Value: f.Currency(profit), Delta: "+5% vs último ano"},
			{Label: "Custo Total (R$)", Value: f.Currency(cost), Delta: "-3% vs último ano"},
			{Label: "Margem de Lucro (%)", Value: f.Fixed(margin, 2), Delta: "+2%"},
		},
	}
}
