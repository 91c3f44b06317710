package engine

import (
	"fmt"

	"luxdash/internal/models"
)

// InsightPlaceholder is the only insight when either filtered table is empty.
const InsightPlaceholder = "Selecione dados válidos nos filtros para gerar insights."

// TrendInsight is narrative copy, not derived from the data.
const TrendInsight = "📌 Vendas trimestrais estão apresentando crescimento médio de 4% ao ano."

// DeriveInsights returns, in order: highest-profit model, highest-satisfaction
// region, the trend statement, highest-cost model.
func DeriveInsights(ms []models.VehicleModelRecord, rs []models.RegionRecord, f *Formatter) []string {
	if len(ms) == 0 || len(rs) == 0 {
		return []string{InsightPlaceholder}
	}

	// Both tables are non-empty past this point, so argmax cannot fail.
	topProfit, _ := ArgmaxBy(ms, func(r models.VehicleModelRecord) float64 { return r.Profit })
	topSat, _ := ArgmaxBy(rs, func(r models.RegionRecord) float64 { return r.Satisfaction })
	topCost, _ := ArgmaxBy(ms, func(r models.VehicleModelRecord) float64 { return r.Cost })

	meanCost := MeanBy(ms, func(r models.VehicleModelRecord) float64 { return r.Cost })
	above := 0.0
	if meanCost > 0 {
		above = (topCost.Cost/meanCost - 1) * 100
	}

	return []string{
		fmt.Sprintf("📌 %s apresenta a maior margem de lucro.", topProfit.Model),
		fmt.Sprintf("📌 Região %s tem o maior índice de satisfação (%s/5.0).", topSat.Region, f.Decimal(topSat.Satisfaction)),
		TrendInsight,
		fmt.Sprintf("📌 Custo do modelo %s (%s) está %s%% acima da média.", topCost.Model, f.Currency(topCost.Cost), f.Fixed(above, 0)),
	}
}
