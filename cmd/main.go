package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createInvoiceHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/create_invoice"
	getAvailableSlotsHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/get_available_slots"
	getCustomerInvoicesHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/get_customer_invoices"
	getInvoiceHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/get_invoice"
	listServicesHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/list_services"
	quoteOrderHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/quote_order"
	voidInvoiceHandler "github.com/lotusspa/SPA-OrderService/internal/api/handlers/void_invoice"
	"github.com/lotusspa/SPA-OrderService/internal/api/middleware"
	"github.com/lotusspa/SPA-OrderService/internal/config"
	catalogRepo "github.com/lotusspa/SPA-OrderService/internal/infra/storage/catalog"
	invoiceRepo "github.com/lotusspa/SPA-OrderService/internal/infra/storage/invoice"
	customerServiceClient "github.com/lotusspa/SPA-OrderService/internal/integrations/customerservice"
	"github.com/lotusspa/SPA-OrderService/internal/pricing"
	"github.com/lotusspa/SPA-OrderService/internal/schedule"
	catalogService "github.com/lotusspa/SPA-OrderService/internal/service/catalog"
	invoicesService "github.com/lotusspa/SPA-OrderService/internal/service/invoices"
	createInvoiceUC "github.com/lotusspa/SPA-OrderService/internal/usecase/create_invoice"
	getAvailableSlotsUC "github.com/lotusspa/SPA-OrderService/internal/usecase/get_available_slots"
	quoteOrderUC "github.com/lotusspa/SPA-OrderService/internal/usecase/quote_order"
	"github.com/lotusspa/SPA-OrderService/pkg/dbmetrics"
	"github.com/lotusspa/SPA-OrderService/pkg/logger"
	"github.com/lotusspa/SPA-OrderService/pkg/metrics"
	"github.com/lotusspa/SPA-OrderService/pkg/simpletxmanager"
	"github.com/lotusspa/SPA-OrderService/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SPA-OrderService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize integration clients
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CustomerService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Initialize repositories (with or without metrics)
	var (
		invoiceRepository *invoiceRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Transaction manager interface used by the usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		invoiceRepository = invoiceRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		invoiceRepository = invoiceRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	invoicesSvc := invoicesService.NewService(
		invoiceRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		log,
	)

	// Tax policy shared by the pricing usecases
	taxPolicy := pricing.TaxPolicy{RateBps: cfg.Pricing.TaxRateBps}

	// Initialize use cases
	createInvoiceUseCase := createInvoiceUC.NewUseCase(
		invoiceRepository,
		catalogRepository,
		customerClient,
		txMgr,
		taxPolicy,
		log,
	)

	quoteOrderUseCase := quoteOrderUC.NewUseCase(taxPolicy, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		schedule.DefaultCatalog(),
		log,
	)

	// Initialize handlers
	createInvoice := createInvoiceHandler.NewHandler(createInvoiceUseCase, log)
	quoteOrder := quoteOrderHandler.NewHandler(quoteOrderUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getInvoice := getInvoiceHandler.NewHandler(invoicesSvc, log)
	getCustomerInvoices := getCustomerInvoicesHandler.NewHandler(invoicesSvc, log)
	voidInvoice := voidInvoiceHandler.NewHandler(invoicesSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)

	// Configure the router
	r := mux.NewRouter()

	// Metrics middleware (if metrics are enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Available booking slots for a date
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Preview order totals without persisting anything
	api.HandleFunc("/orders/quote", quoteOrder.Handle).Methods(http.MethodPost)

	// Active catalog services
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Invoices ---
	// Issue an invoice
	protected.HandleFunc("/invoices", createInvoice.Handle).Methods(http.MethodPost)

	// Get an invoice by ID
	protected.HandleFunc("/invoices/{invoiceId}", getInvoice.Handle).Methods(http.MethodGet)

	// Void an issued invoice
	protected.HandleFunc("/invoices/{invoiceId}/void", voidInvoice.Handle).Methods(http.MethodPatch)

	// Customer invoice history
	protected.HandleFunc("/customers/{customerId}/invoices", getCustomerInvoices.Handle).Methods(http.MethodGet)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop the connection pool metrics collector
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
