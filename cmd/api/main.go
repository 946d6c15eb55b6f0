package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/melsayed/sales-analyst-api/infrastructure/database/postgres"
	"github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai"
	"github.com/melsayed/sales-analyst-api/infrastructure/integrator/openai/openaiclient"
	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/api"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/scheduler"
	"github.com/melsayed/sales-analyst-api/internal/usecases/analyzing"
	"github.com/melsayed/sales-analyst-api/internal/usecases/answering"
	"github.com/melsayed/sales-analyst-api/internal/usecases/authenticating"
	"github.com/melsayed/sales-analyst-api/internal/usecases/classifying"
	"github.com/melsayed/sales-analyst-api/internal/usecases/performing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	salesRepo := repository.NewSalesRepository(pgConn)
	coverageRepo := repository.NewCoverageRepository(pgConn)
	supplyRepo := repository.NewSupplyRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	answerRepo := repository.NewAnswerRepository(pgConn)
	summaryRepo := repository.NewSummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	openaiClient := openaiclient.NewClient(cfg)
	integrator := openai.New(cfg, openaiClient)

	classifier := classifying.NewService(cfg)
	analyzer := analyzing.NewService(salesRepo, coverageRepo, supplyRepo, cfg)
	performer := performing.NewService(performanceRepo, cfg)
	answerer := answering.NewService(classifier, analyzer, integrator, salesRepo, answerRepo, cfg)

	summaryRefreshService := scheduler.NewSummaryRefreshService(summaryRepo, cfg)
	oosScanService := scheduler.NewOOSScanService(salesRepo, analyzer, cfg)

	if err := summaryRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the summary refresh scheduler")
	} else {
		logrus.Info("Summary refresh scheduler started")
	}

	if err := oosScanService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the OOS scan scheduler")
	} else {
		logrus.Info("OOS scan scheduler started")
	}

	server, err := api.New(
		cfg,
		answerer,
		analyzer,
		performer,
		authenticator,
		salesRepo,
		summaryRefreshService,
		oosScanService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and anchors the working directory so
// the .env file resolves relative to the binary's source tree.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
