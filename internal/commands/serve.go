package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/regu-ai/regu/internal/api"
	"github.com/regu-ai/regu/internal/config"
	"github.com/regu-ai/regu/internal/logging"
	"github.com/regu-ai/regu/internal/project"
)

// serveSettings are resolved from flags, REGU_* environment variables and
// regu.yaml, in that order of precedence.
type serveSettings struct {
	Port     string
	Env      string
	LogLevel string
}

func newServeCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over a read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return err
			}
			cfg, err := config.Load(filepath.Join(absDir, config.FileName))
			if err != nil {
				return err
			}
			settings, err := loadServeSettings(cmd, cfg)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), absDir, settings)
		},
	}

	addRepoFlag(cmd, &repoDir)
	cmd.Flags().String("port", "", "listen port (env REGU_PORT)")
	cmd.Flags().String("env", "", "environment, development enables console logs (env REGU_ENV)")
	cmd.Flags().String("log-level", "", "log level (env REGU_LOG_LEVEL)")

	return cmd
}

func loadServeSettings(cmd *cobra.Command, cfg *config.Config) (serveSettings, error) {
	v := viper.New()
	v.SetEnvPrefix("REGU")
	v.AutomaticEnv()

	v.SetDefault("port", cfg.Server.Port)
	v.SetDefault("env", cfg.Server.Env)
	v.SetDefault("log_level", "info")

	for key, flag := range map[string]string{"port": "port", "env": "env", "log_level": "log-level"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return serveSettings{}, err
		}
	}

	s := serveSettings{
		Port:     v.GetString("port"),
		Env:      v.GetString("env"),
		LogLevel: v.GetString("log_level"),
	}
	if s.Port == "" {
		s.Port = "8000"
	}
	return s, nil
}

func runServer(ctx context.Context, repoRoot string, s serveSettings) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(os.Stdout, s.Env, s.LogLevel)

	open := func() (*project.Project, error) { return project.Open(repoRoot) }
	if _, err := open(); err != nil {
		logger.Error().Err(err).Str("repo", repoRoot).Msg("snapshot is invalid, requests will fail until it is fixed")
	}

	e := api.NewServer(open, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + s.Port
		logger.Info().Str("addr", addr).Str("repo", repoRoot).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
