package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/config"
	"github.com/mamadbah2/agence/internal/diagnostics"
	"github.com/mamadbah2/agence/internal/repository/mongodb"
	"github.com/mamadbah2/agence/internal/repository/sheets"
	"github.com/mamadbah2/agence/internal/scheduler"
	"github.com/mamadbah2/agence/internal/server/handlers"
	"github.com/mamadbah2/agence/internal/server/router"
	documentsvc "github.com/mamadbah2/agence/internal/service/documents"
	registersvc "github.com/mamadbah2/agence/internal/service/register"
	"github.com/mamadbah2/agence/internal/settings"
	"github.com/mamadbah2/agence/pkg/clients/renderer"
	"github.com/mamadbah2/agence/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Encoding))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	// Left as a nil interface when no renderer is configured.
	var rendererClient renderer.Client
	if cfg.Renderer.Enabled() {
		rendererClient = renderer.NewClient(cfg.Renderer)
		baseLogger.Info("document renderer enabled", zap.String("base_url", cfg.Renderer.BaseURL))
	} else {
		baseLogger.Warn("renderer base url missing, binary rendering disabled")
	}

	engine := diagnostics.NewEngine()
	assembler := documentsvc.NewAssembler(documentsvc.NewAgentDirectory(cfg.Agency.EmailDomain), engine)
	documentSvc := documentsvc.NewService(assembler, mongoRepo, rendererClient, cfg.Renderer.TemplatesDir, baseLogger.Named("svc.documents"))

	var registerSync handlers.RegisterSyncer
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		registerSvc := registersvc.NewService(sheetsRepo, mongoRepo, cfg.Register.SheetRange, baseLogger.Named("svc.register"))
		registerSync = registerSvc

		sched, err := scheduler.NewScheduler(cfg.Register, registerSvc, baseLogger.Named("scheduler"))
		if err != nil {
			baseLogger.Fatal("failed to init scheduler", zap.Error(err))
		}
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	} else {
		baseLogger.Warn("google sheets not configured, mandate register disabled")
	}

	httpEngine := router.New(router.Handlers{
		Documents: handlers.NewDocumentHandler(documentSvc, baseLogger.Named("handlers.documents")),
		Mandates:  handlers.NewMandateHandler(mongoRepo, baseLogger.Named("handlers.mandates")),
		Admin:     handlers.NewAdminHandler(engine, settings.NewCachedStore(mongoRepo.Settings()), registerSync, baseLogger.Named("handlers.admin")),
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpEngine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
