package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"luxdash/internal/models"
)

const captionLayout = "02/01/2006 15:04:05"

// Option configures a Session.
type Option func(*Session)

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithAnchor pins the date the quarterly series ends at. Without it the
// session reads the clock once, on first use.
func WithAnchor(anchor time.Time) Option {
	return func(s *Session) { s.anchor = anchor }
}

func WithFormatter(f *Formatter) Option {
	return func(s *Session) { s.format = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session owns the generated dataset for one dashboard lifetime. The dataset
// is built once on first use and shared read-only afterwards; there is no
// teardown.
type Session struct {
	id     string
	seed   int64
	anchor time.Time
	format *Formatter
	logger *slog.Logger
	now    func() time.Time

	once sync.Once
	data *Dataset
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		seed: DefaultSeed,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.format == nil {
		s.format = NewFormatter("en-US", "R$", 2)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

func (s *Session) ID() string { return s.id }

// Dataset generates the tables on the first call and returns the cached copy
// afterwards.
func (s *Session) Dataset() *Dataset {
	s.once.Do(func() {
		start := time.Now()
		anchor := s.anchor
		if anchor.IsZero() {
			anchor = s.now()
		}
		s.data = Generate(s.seed, anchor)
		s.logger.Info("dataset generated",
			"session", s.id,
			"seed", s.seed,
			"anchor", s.data.Anchor().Format(DateLayout),
			"models", len(s.data.models),
			"quarters", len(s.data.quarters),
			"regions", len(s.data.regions),
			"took", time.Since(start))
	})
	return s.data
}

// DefaultSelection is every model, every region and the full date span.
func (s *Session) DefaultSelection() models.Selection {
	d := s.Dataset()
	span := d.Span()
	return models.Selection{
		Models:  d.ModelNames(),
		Regions: d.RegionNames(),
		Range:   &span,
	}
}

// Evaluate is the whole recompute step: source tables plus selection in,
// filtered tables, KPIs, insights and chart payloads out. Empty model or
// region selections are not errors; a reversed range is.
func (s *Session) Evaluate(sel models.Selection) (*models.DashboardData, error) {
	d := s.Dataset()

	span := d.Span()
	if sel.Range == nil {
		sel.Range = &span
	}

	ms := FilterModels(d.models, sel.Models)
	rs := FilterRegions(d.regions, sel.Regions)
	qs, err := FilterByDateRange(d.quarters, sel.Range.Start, sel.Range.End)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	now := s.now()
	out := &models.DashboardData{
		SessionID:   s.id,
		Selection:   sel,
		Models:      ms,
		Quarters:    qs,
		Regions:     rs,
		KPIs:        ComputeKPIs(ms, s.format),
		Insights:    DeriveInsights(ms, rs, s.format),
		Charts:      BuildCharts(ms, qs, rs),
		GeneratedAt: now,
		Caption:     "Dados fictícios gerados automaticamente - Atualizado em: " + now.Format(captionLayout),
	}

	s.logger.Debug("dashboard evaluated",
		"session", s.id,
		"models", len(ms),
		"quarters", len(qs),
		"regions", len(rs))
	return out, nil
}
