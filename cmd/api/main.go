package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"nexusai-site/internal/config"
	"nexusai-site/internal/content"
	"nexusai-site/internal/db"
	"nexusai-site/internal/httpserver"
	"nexusai-site/internal/logging"
	"nexusai-site/internal/migrate"
	casestudyrepo "nexusai-site/internal/repository/casestudy"
	jobrepo "nexusai-site/internal/repository/job"
	leadrepo "nexusai-site/internal/repository/lead"
	planrepo "nexusai-site/internal/repository/plan"
	postrepo "nexusai-site/internal/repository/post"
	blogsvc "nexusai-site/internal/service/blog"
	careerssvc "nexusai-site/internal/service/careers"
	contactsvc "nexusai-site/internal/service/contact"
	portfoliosvc "nexusai-site/internal/service/portfolio"
	pricingsvc "nexusai-site/internal/service/pricing"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n%s", err, config.Usage())
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.Named("api")
	defer func() { _ = logger.Sync() }()

	catalog, err := content.Load()
	if err != nil {
		logger.Fatal("load content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("posts", len(catalog.Posts)),
		zap.Int("case_studies", len(catalog.CaseStudies)),
		zap.Int("jobs", len(catalog.Jobs)),
		zap.Int("plans", len(catalog.Plans)),
	)

	ctx := context.Background()
	var (
		dbpool *pgxpool.Pool
		leads  leadrepo.Repository
	)
	if cfg.StoreEnabled() {
		dbpool, err = db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			logger.Fatal("connect to db", zap.Error(err))
		}
		defer dbpool.Close()
		if err := migrate.Apply(ctx, dbpool); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}
		leads = leadrepo.NewPostgres(dbpool, logger)
	} else {
		logger.Info("DB_DSN not set; contact submissions are logged only")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		BlogSvc:      blogsvc.New(postrepo.NewStatic(catalog.Posts)),
		PortfolioSvc: portfoliosvc.New(casestudyrepo.NewStatic(catalog.CaseStudies, catalog.CaseStudyCategories)),
		CareersSvc:   careerssvc.New(jobrepo.NewStatic(catalog.Jobs)),
		PricingSvc:   pricingsvc.New(planrepo.NewStatic(catalog.Plans, catalog.AddOns)),
		ContactSvc: contactsvc.New(contactsvc.Options{
			Strict: cfg.ContactStrictValidation,
			Store:  leads,
			Logger: logger,
		}),
	}, cfg.CORSAllowedOrigins)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
