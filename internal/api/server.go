package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/melsayed/sales-analyst-api/infrastructure/repository"
	"github.com/melsayed/sales-analyst-api/internal/api/handler"
	"github.com/melsayed/sales-analyst-api/internal/api/handler/router"
	"github.com/melsayed/sales-analyst-api/internal/config"
	"github.com/melsayed/sales-analyst-api/internal/scheduler"
	"github.com/melsayed/sales-analyst-api/internal/usecases/analyzing"
	"github.com/melsayed/sales-analyst-api/internal/usecases/answering"
	"github.com/melsayed/sales-analyst-api/internal/usecases/authenticating"
	"github.com/melsayed/sales-analyst-api/internal/usecases/performing"
	"github.com/melsayed/sales-analyst-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	answeringService answering.AnsweringService,
	analyzingService analyzing.AnalyzingService,
	performingService performing.PerformingService,
	authenticator authenticating.Authenticator,
	salesRepository repository.SalesRepository,
	summaryRefreshService *scheduler.SummaryRefreshService,
	oosScanService *scheduler.OOSScanService,
) (*Server, error) {
	brandServices := handler.BrandServices{
		Analyzer: analyzingService,
		Sales:    salesRepository,
		Config:   config,
	}

	itemServices := handler.ItemServices{
		Analyzer: analyzingService,
		Sales:    salesRepository,
		Config:   config,
	}

	cronServices := handler.CronJobServices{
		SummaryRefreshService: summaryRefreshService,
		OOSScanService:        oosScanService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Questions(answeringService)...),
		router.WithRoutes(handler.Brands(brandServices)...),
		router.WithRoutes(handler.Coverage(brandServices)...),
		router.WithRoutes(handler.Items(itemServices)...),
		router.WithRoutes(handler.Analytics(performingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error while running the server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down cleanly")
	return nil
}
