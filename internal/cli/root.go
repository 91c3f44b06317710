// Package cli provides the command-line interface for the dashboard backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"luxdash/internal/config"
	"luxdash/internal/engine"
	"luxdash/internal/models"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

type appKey struct{}

// app is what PersistentPreRunE hands down to subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func fromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	return &app{logger: slog.New(slog.DiscardHandler)}
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "luxdash",
		Short: "Luxury vehicle sales dashboard backend",
		Long: `luxdash generates a reproducible synthetic dataset of luxury vehicle
sales in Brazil and serves filtered KPIs, chart payloads and insights
over HTTP, as terminal reports, or as XLSX workbooks.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey{}, &app{cfg: cfg, logger: logger})
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./luxdash.yaml)")
	rootCmd.PersistentFlags().Int64("seed", engine.DefaultSeed, "Random seed for the synthetic dataset")
	rootCmd.PersistentFlags().String("anchor", "", "Last day of the quarterly series, YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	lvl, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// newSession builds the engine session described by the loaded config.
func (a *app) newSession() (*engine.Session, error) {
	anchor, err := a.cfg.AnchorDate()
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithSeed(a.cfg.Data.Seed),
		engine.WithFormatter(engine.NewFormatter(a.cfg.Format.Locale, a.cfg.Format.CurrencySymbol, a.cfg.Format.Precision)),
		engine.WithLogger(a.logger),
	}
	if !anchor.IsZero() {
		opts = append(opts, engine.WithAnchor(anchor))
	}
	return engine.NewSession(opts...), nil
}

// selectionFlags are shared by report and export.
type selectionFlags struct {
	models  []string
	regions []string
	start   string
	end     string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.models, "models", nil, "Model names to include (default: all)")
	cmd.Flags().StringSliceVar(&f.regions, "regions", nil, "Region names to include (default: all)")
	cmd.Flags().StringVar(&f.start, "start", "", "First day of the date range, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.end, "end", "", "Last day of the date range, YYYY-MM-DD")
}

// selection mirrors the HTTP query rules: an unset flag selects everything.
func (f *selectionFlags) selection(cmd *cobra.Command, s *engine.Session) (models.Selection, error) {
	sel := s.DefaultSelection()
	if cmd.Flags().Changed("models") {
		sel.Models = f.models
	}
	if cmd.Flags().Changed("regions") {
		sel.Regions = f.regions
	}

	var bounds []string
	for _, v := range []string{f.start, f.end} {
		if v != "" {
			bounds = append(bounds, v)
		}
	}
	if len(bounds) > 0 {
		r, err := engine.ParseDateRange(bounds...)
		if err != nil {
			return sel, err
		}
		sel.Range = &r
	}
	return sel, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "luxdash %s (built %s, echo %s)\n", Version, BuildDate, echo.Version)
		},
	}
}

func since(t time.Time) string { return time.Since(t).Round(time.Millisecond).String() }
