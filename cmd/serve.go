package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medscroll/onboarding/internal/config"
	"github.com/medscroll/onboarding/internal/httpapi"
	"github.com/medscroll/onboarding/internal/onboarding"
	"github.com/medscroll/onboarding/internal/store"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the onboarding HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	quizzes := st.QuizCategoryRepo()
	if err := quizzes.SeedDefaults(cmd.Context()); err != nil {
		return fmt.Errorf("seed quiz categories: %w", err)
	}

	tax, err := buildTaxonomy(cfg, log)
	if err != nil {
		return err
	}

	svc := onboarding.NewService(
		st.ConversationRepo(),
		st.ProfileRepo(),
		tax,
		quizzes,
		onboarding.DefaultConfig(),
		log,
	)

	if cfg.APIKey == "" {
		log.Warn().Msg("ONBOARDING_API_KEY not set; API is unauthenticated")
	}
	srv := httpapi.NewServer(svc, log, cfg.APIKey)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Str("db", dbPath).Msg("starting onboarding service")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// buildTaxonomy assembles the taxonomy provider: seed or file override,
// optionally behind a Redis cache.
func buildTaxonomy(cfg config.Config, log zerolog.Logger) (taxonomy.Provider, error) {
	var tax taxonomy.Provider
	if cfg.TaxonomyFile != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyFile)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		log.Info().Str("file", cfg.TaxonomyFile).Msg("taxonomy loaded from file")
		tax = loaded
	} else {
		tax = taxonomy.NewStatic(nil)
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		tax = taxonomy.NewCache(tax, rdb, cfg.TaxonomyCacheTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("taxonomy cache enabled")
	}
	return tax, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
