// Package wire provides dependency injection for the rcb application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	cliadapter "github.com/example/rcb/internal/adapters/cli"
	"github.com/example/rcb/internal/adapters/sqlite"
	"github.com/example/rcb/internal/app"
	"github.com/example/rcb/internal/config"
	"github.com/example/rcb/internal/db"
	"github.com/example/rcb/internal/infra/metrics"
	"github.com/example/rcb/internal/ports/primary"
)

var (
	cfg      config.Config
	database *sql.DB
	registry *prometheus.Registry

	productionService primary.ProductionService
	dispatchService   primary.DispatchService
	inquiryService    primary.InquiryService
	processLogService primary.ProcessLogService

	once sync.Once
)

// initServices initializes the database, repositories, and services.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	path := cfg.SQLite.Path
	if path == "" {
		path, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err = db.Open(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.InitSchema(database); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	// Seeding is idempotent; a pool seeded at init is never reset here.
	if err := db.SeedLocations(database, cfg.Pool.Size); err != nil {
		log.Fatalf("failed to seed location pool: %v", err)
	}

	ledgerRepo := sqlite.NewLedgerRepository(database, cfg.Bags.RefPrefix)
	locationRepo := sqlite.NewLocationRepository(database)
	eventRepo := sqlite.NewPoolEventRepository(database)
	processLogRepo := sqlite.NewProcessLogRepository(database)

	registry = prometheus.NewRegistry()
	m := metrics.New(registry)
	registry.MustRegister(metrics.NewPoolCollector(locationRepo))

	productionService = app.NewProductionService(ledgerRepo, cfg.Bags.Products, cfg.Bags.RefPrefix, m)
	dispatchService = app.NewDispatchService(ledgerRepo, cfg.Bags.Products, cfg.Bags.RefPrefix, m)
	inquiryService = app.NewInquiryService(ledgerRepo, locationRepo, eventRepo)
	processLogService = app.NewProcessLogService(processLogRepo)
}

// Config returns the loaded deployment configuration.
func Config() config.Config {
	once.Do(initServices)
	return cfg
}

// MetricsRegistry returns the prometheus registry for the serve command.
func MetricsRegistry() *prometheus.Registry {
	once.Do(initServices)
	return registry
}

// ProductionService returns the singleton ProductionService instance.
func ProductionService() primary.ProductionService {
	once.Do(initServices)
	return productionService
}

// DispatchService returns the singleton DispatchService instance.
func DispatchService() primary.DispatchService {
	once.Do(initServices)
	return dispatchService
}

// InquiryService returns the singleton InquiryService instance.
func InquiryService() primary.InquiryService {
	once.Do(initServices)
	return inquiryService
}

// ProcessLogService returns the singleton ProcessLogService instance.
func ProcessLogService() primary.ProcessLogService {
	once.Do(initServices)
	return processLogService
}

// Close releases the shared database handle.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// ProductionAdapter returns a new ProductionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func ProductionAdapter() *cliadapter.ProductionAdapter {
	return ProductionAdapterWithOutput(os.Stdout)
}

// ProductionAdapterWithOutput returns a ProductionAdapter writing to out.
func ProductionAdapterWithOutput(out io.Writer) *cliadapter.ProductionAdapter {
	once.Do(initServices)
	return cliadapter.NewProductionAdapter(productionService, out)
}

// DispatchAdapter returns a new DispatchAdapter writing to stdout.
func DispatchAdapter() *cliadapter.DispatchAdapter {
	return DispatchAdapterWithOutput(os.Stdout)
}

// DispatchAdapterWithOutput returns a DispatchAdapter writing to out.
func DispatchAdapterWithOutput(out io.Writer) *cliadapter.DispatchAdapter {
	once.Do(initServices)
	return cliadapter.NewDispatchAdapter(dispatchService, out)
}

// InquiryAdapter returns a new InquiryAdapter writing to stdout.
func InquiryAdapter() *cliadapter.InquiryAdapter {
	return InquiryAdapterWithOutput(os.Stdout)
}

// InquiryAdapterWithOutput returns an InquiryAdapter writing to out.
func InquiryAdapterWithOutput(out io.Writer) *cliadapter.InquiryAdapter {
	once.Do(initServices)
	return cliadapter.NewInquiryAdapter(inquiryService, out)
}

// ReactorAdapter returns a new ReactorAdapter writing to stdout.
func ReactorAdapter() *cliadapter.ReactorAdapter {
	return ReactorAdapterWithOutput(os.Stdout)
}

// ReactorAdapterWithOutput returns a ReactorAdapter writing to out.
func ReactorAdapterWithOutput(out io.Writer) *cliadapter.ReactorAdapter {
	once.Do(initServices)
	return cliadapter.NewReactorAdapter(processLogService, out)
}
