package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	gqltransport "github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/lawndon/lawndon-backend/internal/adapter/postgres"
	forumrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/forum"
	mowerrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/mower"
	mowingrepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/mowing"
	profilerepo "github.com/lawndon/lawndon-backend/internal/adapter/postgres/profile"
	"github.com/lawndon/lawndon-backend/internal/config"
	"github.com/lawndon/lawndon-backend/internal/questions"
	forumsvc "github.com/lawndon/lawndon-backend/internal/service/forum"
	mowersvc "github.com/lawndon/lawndon-backend/internal/service/mower"
	mowingsvc "github.com/lawndon/lawndon-backend/internal/service/mowing"
	profilesvc "github.com/lawndon/lawndon-backend/internal/service/profile"
	graphqlapi "github.com/lawndon/lawndon-backend/internal/transport/graphql"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/dataloader"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/generated"
	"github.com/lawndon/lawndon-backend/internal/transport/graphql/resolver"
	"github.com/lawndon/lawndon-backend/internal/transport/middleware"
	"github.com/lawndon/lawndon-backend/internal/transport/rest"
	"github.com/lawndon/lawndon-backend/migrations"
)

// Run is the API server entry point. It loads configuration, connects to
// the database, applies migrations, wires repositories, services and the
// GraphQL transport, and serves HTTP until the context is cancelled or a
// termination signal arrives.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	bank, err := questions.Load()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	// Repositories and services.
	profiles := profilerepo.New(pool)
	mowers := mowerrepo.New(pool)
	mowings := mowingrepo.New(pool)
	forums := forumrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	profileService := profilesvc.NewService(logger, profiles)
	mowerService := mowersvc.NewService(logger, profiles, mowers, txManager)
	mowingService := mowingsvc.NewService(logger, profiles, mowings, txManager)
	forumService := forumsvc.NewService(logger, profiles, forums, txManager)

	res := resolver.NewResolver(logger, profileService, mowerService, mowingService, forumService)

	// GraphQL server.
	srv := handler.New(generated.NewExecutableSchema(generated.Config{Resolvers: res}))
	srv.AddTransport(gqltransport.Options{})
	srv.AddTransport(gqltransport.GET{})
	srv.AddTransport(gqltransport.POST{})
	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	srv.SetErrorPresenter(graphqlapi.NewErrorPresenter(logger))
	srv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	if cfg.GraphQL.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}

	loaderRepos := &dataloader.Repos{Profile: profiles}

	// Routes.
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	questionsHandler := rest.NewQuestionsHandler(bank)

	mux := http.NewServeMux()
	mux.Handle("/query", dataloader.Middleware(loaderRepos)(srv))
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /questions", questionsHandler.List)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("/playground", playground.Handler("Lawndon GraphQL", "/query"))
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	root := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
	)(mux)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      root,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	logger.Info("http server listening", slog.String("addr", httpServer.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// migrate applies the embedded goose migrations. Goose needs database/sql,
// so it opens its own short-lived connection next to the pgx pool.
func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}
