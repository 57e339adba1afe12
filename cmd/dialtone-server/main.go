package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	"dialtone/internal/formatter/handler"
	"dialtone/internal/formatter/service"
	fmtvalidator "dialtone/internal/formatter/validator"
	"dialtone/pkg/config"
	"dialtone/pkg/contracts"
	"dialtone/pkg/events"
	"dialtone/pkg/logger"
	"dialtone/pkg/middleware"
	"dialtone/pkg/model"
	"dialtone/pkg/tabular"
	"dialtone/pkg/tabular/mongotab"
)

const serviceName = "dialtone-server"

func main() {
	cfg := config.Load(serviceName)
	log := cfg.Log
	log.Info("Starting phone formatting service")

	var mongoClient *mongo.Client
	if cfg.TableBackend == config.BackendMongo {
		cfg.SetMongo()
		mongoClient = cfg.Mongo.Client
		defer cfg.Mongo.Disconnect(context.Background())
	}

	publisher := initPublisher(cfg, log)
	if publisher != nil {
		defer publisher.Close()
	}

	formatterService := service.NewFormatterService(
		fmtvalidator.NewOptionsValidator(),
		publisher,
		log,
	)
	log.Info("Formatter service initialized")

	server := setupHTTPServer(cfg, formatterService, mongoClient, log)

	run(cfg, server, log)
}

func initPublisher(cfg *config.Config, log *logger.Logger) *events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}

	publisher, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaReportTopic, serviceName)
	if err != nil {
		log.Fatal("Failed to create report publisher", "error", err)
	}

	log.Info("Report publisher enabled", "topic", cfg.KafkaReportTopic)
	return publisher
}

func storeFactory(cfg *config.Config, mongoClient *mongo.Client) handler.StoreFactory {
	if cfg.TableBackend == config.BackendMongo {
		db := mongoClient.Database(cfg.MongoDatabaseName)
		return func(headerRow int) tabular.Store {
			return mongotab.NewStore(db, headerRow)
		}
	}
	return func(headerRow int) tabular.Store {
		return tabular.NewCSVStore(cfg.SheetDir, headerRow)
	}
}

func setupHTTPServer(cfg *config.Config, formatterService service.FormatterService, mongoClient *mongo.Client, log *logger.Logger) *http.Server {
	healthRouter := httprouter.New()
	mount(healthRouter, handler.NewHealthHandler(mongoClient, log))

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(log)(healthHTTPHandler)

	formatterRouter := httprouter.New()
	mount(formatterRouter, handler.NewFormatterHandler(
		formatterService,
		storeFactory(cfg, mongoClient),
		model.Options{Style: cfg.DefaultStyle, HeaderRow: cfg.HeaderRow},
		log,
	))

	// Middleware order: Recovery -> Logging -> MaxSize -> Timeout -> Router
	var apiHandler http.Handler = formatterRouter
	apiHandler = middleware.RequestTimeout(cfg.RequestTimeout)(apiHandler)
	apiHandler = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(apiHandler)
	apiHandler = middleware.RequestLogging(log)(apiHandler)
	apiHandler = middleware.Recovery(log)(apiHandler)

	mux := http.NewServeMux()
	mux.Handle("/health", healthHTTPHandler)
	mux.Handle("/ready", healthHTTPHandler)
	mux.Handle("/", apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Info("HTTP server configured", "port", cfg.Port)
	return server
}

func mount(router *httprouter.Router, handlers ...contracts.Handler) {
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}
}

func run(cfg *config.Config, server *http.Server, log *logger.Logger) {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)
		gracefulShutdown(cfg, server, log)
	}
}

func gracefulShutdown(cfg *config.Config, server *http.Server, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		if err := server.Close(); err != nil {
			log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	log.Info("Server stopped gracefully")
}
