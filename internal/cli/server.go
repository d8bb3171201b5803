package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hanzi-quiz-service/internal/app"
	"hanzi-quiz-service/internal/config"
	"hanzi-quiz-service/internal/domain"
	"hanzi-quiz-service/internal/infra/deepseek"
	"hanzi-quiz-service/internal/infra/memory"
	pgsource "hanzi-quiz-service/internal/infra/postgres"
	redissession "hanzi-quiz-service/internal/infra/redis"
	"hanzi-quiz-service/internal/logger"
	transport "hanzi-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	bank := memory.NewQuestionBank()
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		drafts, err := pgsource.NewQuestionLoader(pool).LoadDrafts(ctx)
		if err != nil {
			return err
		}
		memory.SeedBank(bank, drafts)
		log.Info("bank seeded from postgres", zap.Int("questions", bank.Size()))
	} else {
		memory.SeedBank(bank, memory.DefaultSeed())
		log.Info("bank seeded from built-in set", zap.Int("questions", bank.Size()))
	}

	var sessions app.SessionRepository = memory.NewSessionStore()
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sessions = redissession.NewSessionStore(redisClient, config.Duration(cfg.Redis.TTL, 10*time.Minute))
	}

	apiKey := cfg.DeepSeek.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	var generator app.Generator
	if cfg.DeepSeek.BaseURL != "" {
		generator = deepseek.NewClient(
			cfg.DeepSeek.BaseURL,
			apiKey,
			cfg.DeepSeek.Model,
			config.Duration(cfg.DeepSeek.Timeout, 30*time.Second),
		)
	} else {
		generator = unconfiguredGenerator{}
		log.Warn("deepseek base_url not configured; question generation disabled")
	}

	sessionSize := cfg.Quiz.SessionSize
	if sessionSize <= 0 {
		sessionSize = domain.DefaultSessionSize
	}
	service := app.NewGameService(bank, sessions, generator, sessionSize)
	handler := transport.NewHandler(service, log)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting quiz service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// unconfiguredGenerator stands in when no generator endpoint is configured; a
// generation attempt fails like any other extraction failure, bank unchanged.
type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Complete(context.Context, string) (string, error) {
	return "", domain.ErrGenerationExtraction
}
