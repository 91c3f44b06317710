package engine

import (
	"strings"
	"time"

	"luxdash/internal/models"
)

// DateLayout is the calendar-day format accepted from callers.
const DateLayout = "2006-01-02"

// FilterModels keeps the records whose model is in names, in source order.
// An empty names set selects nothing.
func FilterModels(rows []models.VehicleModelRecord, names []string) []models.VehicleModelRecord {
	set := toSet(names)
	out := make([]models.VehicleModelRecord, 0, len(rows))
	for _, r := range rows {
		if set[r.Model] {
			out = append(out, r)
		}
	}
	return out
}

// FilterRegions is FilterModels over region names.
func FilterRegions(rows []models.RegionRecord, names []string) []models.RegionRecord {
	set := toSet(names)
	out := make([]models.RegionRecord, 0, len(rows))
	for _, r := range rows {
		if set[r.Region] {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDateRange keeps records whose date falls in [start, end], compared
// by calendar day. start after end is an ErrInvalidRange, never a swap.
func FilterByDateRange(rows []models.QuarterlyRecord, start, end time.Time) ([]models.QuarterlyRecord, error) {
	s, e := truncateDay(start), truncateDay(end)
	if s.After(e) {
		return nil, &RangeError{Bounds: []time.Time{start, end}}
	}
	out := make([]models.QuarterlyRecord, 0, len(rows))
	for _, r := range rows {
		d := truncateDay(r.Date)
		if !d.Before(s) && !d.After(e) {
			out = append(out, r)
		}
	}
	return out, nil
}

// NewDateRange validates a bound list coming from a picker: exactly two
// bounds, start not after end.
func NewDateRange(bounds ...time.Time) (models.DateRange, error) {
	if len(bounds) != 2 || truncateDay(bounds[0]).After(truncateDay(bounds[1])) {
		return models.DateRange{}, &RangeError{Bounds: bounds}
	}
	return models.DateRange{Start: truncateDay(bounds[0]), End: truncateDay(bounds[1])}, nil
}

// ParseDateRange parses YYYY-MM-DD bounds and validates them with NewDateRange.
func ParseDateRange(values ...string) (models.DateRange, error) {
	bounds := make([]time.Time, 0, len(values))
	for _, v := range values {
		t, err := time.Parse(DateLayout, strings.TrimSpace(v))
		if err != nil {
			return models.DateRange{}, &ParseError{Value: v, Wrapped: err}
		}
		bounds = append(bounds, t)
	}
	return NewDateRange(bounds...)
}

// SplitNames splits a comma separated list, dropping blanks.
func SplitNames(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
