package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corray333/cargo-manager/internal/dal/postgres"
	"github.com/corray333/cargo-manager/internal/dal/rabbitmq"
	outboxrepo "github.com/corray333/cargo-manager/internal/dal/repositories/outbox/postgres"
	raterepo "github.com/corray333/cargo-manager/internal/dal/repositories/rate/postgres"
	"github.com/corray333/cargo-manager/internal/otel"
	"github.com/corray333/cargo-manager/internal/service/services/currencysvc"
	"github.com/corray333/cargo-manager/internal/service/services/ordersvc"
	httptransport "github.com/corray333/cargo-manager/internal/transport/http"
	outboxworker "github.com/corray333/cargo-manager/internal/worker/outbox"
	ratesworker "github.com/corray333/cargo-manager/internal/worker/rates"
)

// App represents the application.
type App struct {
	orderSvc       *ordersvc.OrderService
	currencySvc    *currencysvc.CurrencyService
	transport      *httptransport.HTTPTransport
	outboxWorker   *outboxworker.Worker
	ratesWorker    *ratesworker.Worker
	postgresClient *postgres.Client
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()
	postgresClient := postgres.MustNewClient()
	rabbitMqClient := rabbitmq.MustNewClient()
	rabbitMqClient.MustDeclareQueue("cargo.order.events")

	currencySvc := currencysvc.MustNewCurrencyService(
		currencysvc.WithRateRepository(raterepo.NewRateRepository(postgresClient.Pool())),
	)
	if _, _, err := currencySvc.RefreshNow(context.Background()); err != nil {
		panic("failed to load currency rates: " + err.Error())
	}

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithPostgresClient(postgresClient),
		ordersvc.WithRateProvider(currencySvc),
	)

	transport := httptransport.NewHTTPTransport(orderSvc, currencySvc)
	transport.RegisterRoutes()

	outboxWorker := outboxworker.NewWorker(
		outboxrepo.NewOutboxRepository(postgresClient.Pool()),
		rabbitMqClient,
	)
	ratesWorker := ratesworker.NewWorker(currencySvc)

	return &App{
		orderSvc:       orderSvc,
		currencySvc:    currencySvc,
		transport:      transport,
		outboxWorker:   outboxWorker,
		ratesWorker:    ratesWorker,
		postgresClient: postgresClient,
		rabbitMqClient: rabbitMqClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go a.outboxWorker.Start(workerCtx)
	go a.ratesWorker.Start(workerCtx)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	cancelWorkers()

	if err := a.rabbitMqClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Tracer provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
