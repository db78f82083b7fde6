// Package app wires configuration, storage, services, and the HTTP
// server into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/wordloop/wordloop-backend/internal/adapter/classifier"
	"github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	cardrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/card"
	reviewrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/review"
	schedulerepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/schedule"
	sessionrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/session"
	userrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/user"
	wordlistrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/wordlist"
	"github.com/wordloop/wordloop-backend/internal/auth"
	"github.com/wordloop/wordloop-backend/internal/config"
	"github.com/wordloop/wordloop-backend/internal/service/account"
	"github.com/wordloop/wordloop-backend/internal/service/card"
	"github.com/wordloop/wordloop-backend/internal/service/importer"
	"github.com/wordloop/wordloop-backend/internal/service/review"
	"github.com/wordloop/wordloop-backend/internal/service/schedule"
	"github.com/wordloop/wordloop-backend/internal/service/session"
	"github.com/wordloop/wordloop-backend/internal/service/wordlist"
	"github.com/wordloop/wordloop-backend/internal/transport/middleware"
	"github.com/wordloop/wordloop-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires services and the HTTP server, and blocks until
// ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cards := cardrepo.New(pool)
	reviews := reviewrepo.New(pool)
	schedules := schedulerepo.New(pool)
	sessions := sessionrepo.New(pool)
	users := userrepo.New(pool)
	wordLists := wordlistrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	scheduleSvc := schedule.NewService(logger, schedules)
	cardSvc := card.NewService(logger, cards, scheduleSvc)
	reviewSvc := review.NewService(logger, cards, reviews, schedules, users, txManager, nil)
	wordListSvc := wordlist.NewService(logger, wordLists)
	sessionSvc := session.NewService(logger, sessions, cards, reviewSvc)
	accountSvc := account.NewService(logger, users, jwtManager, cfg.Auth.BcryptCost)
	importSvc := importer.NewService(logger, cardSvc, classifier.NewClient(cfg.Classifier), cfg.Import)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(accountSvc, logger),
		Cards:     rest.NewCardHandler(cardSvc, logger),
		Review:    rest.NewReviewHandler(reviewSvc, logger),
		Stats:     rest.NewStatsHandler(reviewSvc, logger),
		WordLists: rest.NewWordListHandler(wordListSvc, logger),
		Sessions:  rest.NewSessionHandler(sessionSvc, logger),
		Schedule:  rest.NewScheduleHandler(scheduleSvc, logger),
		Import:    rest.NewImportHandler(importSvc, cfg.Import.MaxFileSize, logger),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(jwtManager))

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
