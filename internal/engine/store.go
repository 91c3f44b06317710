package engine

import (
	"slices"
	"time"

	"luxdash/internal/models"
)

// Dataset holds the three generated tables. It is never mutated after
// Generate returns; every accessor hands out a copy.
type Dataset struct {
	seed   int64
	anchor time.Time

	models   []models.VehicleModelRecord
	quarters []models.QuarterlyRecord
	regions  []models.RegionRecord

	// Dictionaries (fixed vocabularies, source order)
	modelDict  []string
	regionDict []string
}

func (d *Dataset) Seed() int64       { return d.seed }
func (d *Dataset) Anchor() time.Time { return d.anchor }

func (d *Dataset) Models() []models.VehicleModelRecord { return slices.Clone(d.models) }
func (d *Dataset) Quarters() []models.QuarterlyRecord  { return slices.Clone(d.quarters) }
func (d *Dataset) Regions() []models.RegionRecord      { return slices.Clone(d.regions) }

func (d *Dataset) ModelNames() []string  { return slices.Clone(d.modelDict) }
func (d *Dataset) RegionNames() []string { return slices.Clone(d.regionDict) }

// Span returns the first and last quarter dates.
func (d *Dataset) Span() models.DateRange {
	if len(d.quarters) == 0 {
		return models.DateRange{}
	}
	return models.DateRange{Start: d.quarters[0].Date, End: d.quarters[len(d.quarters)-1].Date}
}

// View flattens the dataset into its JSON form.
func (d *Dataset) View() models.DatasetView {
	return models.DatasetView{
		Seed:       d.seed,
		Anchor:     d.anchor,
		ModelDict:  d.ModelNames(),
		RegionDict: d.RegionNames(),
		Models:     d.Models(),
		Quarters:   d.Quarters(),
		Regions:    d.Regions(),
	}
}
