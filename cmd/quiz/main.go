package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-manager/internal/config"
	"github.com/aliskhannn/quiz-manager/internal/delivery/console"
	"github.com/aliskhannn/quiz-manager/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/quiz-manager/internal/infra/postgres/repository"
	"github.com/aliskhannn/quiz-manager/internal/logger"
	"github.com/aliskhannn/quiz-manager/internal/repository"
	"github.com/aliskhannn/quiz-manager/internal/service"
	"github.com/aliskhannn/quiz-manager/internal/storage"
)

func main() {
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Env, cfg.Log.Level, cfg.Log.Output)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reading the console blocks, so an interrupt cannot be observed by the
	// handler until the next line arrives. Exit right away instead.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			lg.Info("shutdown signal received")
			_ = lg.Sync()
			os.Exit(130)
		case <-done:
		}
	}()

	questionRepo := repository.NewQuestionRepository(cfg.Store.Path)

	var scoreRepo service.ScoreRepository = storage.NewScoreStorage()
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to score database", zap.Error(err))
		}
		defer pool.Close()

		repo := pgrepo.NewScoreRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			lg.Fatal("failed to prepare score database", zap.Error(err))
		}
		scoreRepo = repo
	}

	quizService := service.NewQuizService(lg, questionRepo, scoreRepo, repository.LoadBank)

	lg.Info("quiz started",
		zap.String("store", questionRepo.Path()),
		zap.Bool("score_db", cfg.DB.Enabled()),
	)

	handler := console.NewHandler(lg, quizService, os.Stdin, os.Stdout, cfg.Scores.Limit)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("console handler failed", zap.Error(err))
	}
	close(done)
}
