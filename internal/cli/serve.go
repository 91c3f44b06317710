package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"luxdash/internal/api"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), fromContext(cmd.Context()))
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	return cmd
}

func runServe(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := a.newSession()
	if err != nil {
		return err
	}

	// The API is live immediately and answers 503 until the dataset is ready.
	h := api.NewHandler(nil, a.logger)
	e := api.NewServer(h, api.ServerOptions{
		CORSOrigins: a.cfg.Server.CORSOrigins,
		RateLimit:   a.cfg.Server.RateLimit,
	}, a.logger)
	e.Logger.SetLevel(echoLevel(a.cfg.Log.Level))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("background: generating dataset", "session", session.ID())
		t0 := time.Now()
		session.Dataset()
		h.SetSession(session)
		a.logger.Info("background: dataset ready, API fully live", "took", since(t0))
		return nil
	})

	g.Go(func() error {
		a.logger.Info("server starting", "addr", a.cfg.Server.Addr)
		if err := e.Start(a.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutCtx)
	})

	return g.Wait()
}

func echoLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
