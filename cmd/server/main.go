package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	financeapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/finance"
	hrapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/hr"
	procurementapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/procurement"
	projectapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/project"
	reportapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/report"
	salesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/auth"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/cache"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/delivery"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/export"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/scheduler"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/storage"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/telemetry"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/handler"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/middleware"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Business Administration API
//	@version		1.0
//	@description	Records for HR, finance, projects, procurement and sales, with composite reports and document exports.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting backoffice API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	// Telemetry
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	reportMetrics, err := telemetry.NewReportMetrics(meterProvider.Meter("report"))
	if err != nil {
		log.Fatal("Failed to create report metrics", zap.Error(err))
	}

	// Database
	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterGormTracing(db.DB, cfg.Database.DBName); err != nil {
			log.Warn("Database tracing unavailable", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Repositories
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	requestRepo := persistence.NewGormProcurementRequestRepository(db.DB)
	leadRepo := persistence.NewGormLeadRepository(db.DB)
	opportunityRepo := persistence.NewGormOpportunityRepository(db.DB)
	scheduleRepo := persistence.NewGormReportScheduleRepository(db.DB)
	fileRepo := persistence.NewGormStoredFileRepository(db.DB)

	// Record services
	employeeService := hrapp.NewEmployeeService(employeeRepo)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	financeStats := financeapp.NewStatsService(invoiceRepo, expenseRepo)
	projectService := projectapp.NewProjectService(projectRepo, taskRepo)
	requestService := procurementapp.NewRequestService(requestRepo)
	salesService := salesapp.NewSalesService(leadRepo, opportunityRepo)

	// Artifact storage
	objectStore, err := storage.New(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	fileService := filesapp.NewFileService(fileRepo, objectStore, cfg.Storage.PresignTTL, log)

	// Report assembly and export
	assembler := reportapp.NewAssembler(reportapp.Sources{
		Invoices:      invoiceRepo,
		Expenses:      expenseRepo,
		Employees:     employeeRepo,
		Projects:      projectRepo,
		Tasks:         taskRepo,
		Requests:      requestRepo,
		Leads:         leadRepo,
		Opportunities: opportunityRepo,
	}, cfg.Report.CompanyName, reportMetrics, log)

	location, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Warn("Unknown report timezone, using UTC", zap.String("timezone", cfg.Report.Timezone), zap.Error(err))
		location = time.UTC
	}
	formatter := export.NewFormatter(cfg.Report.Locale, cfg.Report.CurrencySymbol, location)
	browser := export.NewChromeBrowser(export.ChromeConfig{
		RemoteURL:     cfg.Export.ChromeRemoteURL,
		ExecPath:      cfg.Export.ChromePath,
		NoSandbox:     cfg.Export.NoSandbox,
		RenderTimeout: cfg.Export.RenderTimeout,
		MaxTabs:       cfg.Export.PoolSize,
		Logger:        log,
	})
	defer func() {
		if err := browser.Close(); err != nil {
			log.Warn("Error closing browser", zap.Error(err))
		}
	}()
	exportService := reportapp.NewExportService(assembler, reportapp.Renderers{
		Tabular:     export.NewTabularRenderer(browser, formatter, cfg.Report.Locale),
		Spreadsheet: export.NewSpreadsheetRenderer(formatter),
		Charts: export.NewChartSnapshotRenderer(browser, formatter, export.ChartSnapshotConfig{
			FrontendBaseURL: cfg.Report.FrontendBaseURL,
			DashboardPath:   cfg.Report.DashboardPath,
			ImageWidth:      cfg.Export.ImageWidth,
			RegionTimeout:   cfg.Export.RegionTimeout,
			Lang:            cfg.Report.Locale,
		}, log),
	}, fileService, cfg.Report.CompanyName, reportMetrics, log)

	// Scheduled reports
	deliverer, closeDeliverer, err := delivery.New(ctx, cfg.Delivery, log)
	if err != nil {
		log.Fatal("Failed to initialize report delivery", zap.Error(err))
	}
	defer func() {
		if err := closeDeliverer(); err != nil {
			log.Warn("Error closing report delivery", zap.Error(err))
		}
	}()
	scheduleService := reportapp.NewScheduleService(scheduleRepo, exportService, deliverer, reportMetrics, log)

	var runner *scheduler.ReportScheduleRunner
	if cfg.Scheduler.Enabled {
		locker, err := cache.NewLockerFactory(cfg.Redis, cache.WithLogger(log)).CreateLocker(ctx)
		if err != nil {
			log.Fatal("Failed to create schedule locker", zap.Error(err))
		}
		defer func() {
			if err := locker.Close(); err != nil {
				log.Warn("Error closing schedule locker", zap.Error(err))
			}
		}()

		schedCfg := scheduler.SchedulerConfig{
			Enabled:           true,
			MaxConcurrentJobs: cfg.Scheduler.MaxConcurrentJobs,
			JobTimeout:        cfg.Scheduler.JobTimeout,
			LockTTL:           cfg.Scheduler.LockTTL,
		}
		pool := scheduler.NewScheduler(schedCfg, scheduleService, locker, log)
		runner = scheduler.NewReportScheduleRunner(scheduler.ReportScheduleRunnerConfig{
			Enabled:      true,
			TickInterval: cfg.Scheduler.TickInterval,
			Scheduler:    schedCfg,
		}, scheduleService, pool, log)
		if err := runner.Start(ctx); err != nil {
			log.Fatal("Failed to start report schedule runner", zap.Error(err))
		}
	}

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies", zap.Error(err))
	}
	engine.Use(
		logger.Recovery(log),
		middleware.Tracing(),
		logger.GinMiddleware(log),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			Enabled:       cfg.Telemetry.MetricsEnabled,
		}),
		middleware.CORS(cfg.HTTP, cfg.IsProduction()),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	healthChecks := map[string]handler.HealthChecker{"database": db}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, healthChecks)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	if cfg.JWT.Disabled {
		log.Warn("JWT authentication is disabled")
	} else {
		r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
			Verifier:  auth.NewVerifier(cfg.JWT),
			SkipPaths: []string{"/api/v1/system/ping"},
			Logger:    log,
		}))
	}

	registerRoutes(r, routeHandlers{
		system:      systemHandler,
		employees:   handler.NewEmployeeHandler(employeeService),
		finance:     handler.NewFinanceHandler(invoiceService, expenseService),
		projects:    handler.NewProjectHandler(projectService),
		procurement: handler.NewProcurementHandler(requestService),
		sales:       handler.NewSalesHandler(salesService),
		files:       handler.NewFileHandler(fileService),
		reports: handler.NewReportHandler(assembler, exportService, scheduleService, handler.StatsSources{
			Finance:     financeStats,
			Employees:   employeeService,
			Projects:    projectService,
			Procurement: requestService,
			Sales:       salesService,
		}, cfg.Scheduler.Enabled),
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if runner != nil {
		if err := runner.Stop(shutdownCtx); err != nil {
			log.Warn("Report schedule runner did not stop cleanly", zap.Error(err))
		}
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
