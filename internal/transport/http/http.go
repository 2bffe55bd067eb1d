package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/corray333/cargo-manager/internal/service/models/currency"
	"github.com/corray333/cargo-manager/internal/service/models/order"
	convertamounts "github.com/corray333/cargo-manager/internal/transport/http/convert_amounts"
	createorder "github.com/corray333/cargo-manager/internal/transport/http/create_order"
	deleteorder "github.com/corray333/cargo-manager/internal/transport/http/delete_order"
	getorder "github.com/corray333/cargo-manager/internal/transport/http/get_order"
	getrates "github.com/corray333/cargo-manager/internal/transport/http/get_rates"
	listorders "github.com/corray333/cargo-manager/internal/transport/http/list_orders"
	refreshrates "github.com/corray333/cargo-manager/internal/transport/http/refresh_rates"
	updateorder "github.com/corray333/cargo-manager/internal/transport/http/update_order"
	"github.com/corray333/cargo-manager/pkg/http/middleware/trace"
	"github.com/corray333/cargo-manager/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

type orderService interface {
	Create(ctx context.Context, o order.Order, totals order.TotalsPatch) (int64, error)
	Update(ctx context.Context, id int64, model order.UpdateOrderModel) (int64, error)
	Get(ctx context.Context, id int64) (*order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type currencyService interface {
	Rates() (currency.Rates, time.Time)
	RefreshNow(ctx context.Context) (currency.Rates, time.Time, error)
	ConvertAll(amount float64, from currency.Currency) currency.Triple
}

type HTTPTransport struct {
	server      *http.Server
	router      *chi.Mux
	orderSvc    orderService
	currencySvc currencyService
}

func NewHTTPTransport(orderSvc orderService, currencySvc currencyService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:      server,
		router:      router,
		orderSvc:    orderSvc,
		currencySvc: currencySvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/{orderId}", h.getOrder)
			r.Put("/{orderId}", h.updateOrder)
			r.Delete("/{orderId}", h.deleteOrder)
		})

		r.Route("/currency", func(r chi.Router) {
			r.Get("/rates", h.getRates)
			r.Post("/update-now", h.refreshRates)
			r.Get("/conversions", h.convertAmounts)
		})
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) updateOrder(w http.ResponseWriter, r *http.Request) {
	updateorder.UpdateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	deleteorder.DeleteOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) getRates(w http.ResponseWriter, r *http.Request) {
	getrates.GetRates(w, r, h.currencySvc)
}

func (h *HTTPTransport) refreshRates(w http.ResponseWriter, r *http.Request) {
	refreshrates.RefreshRates(w, r, h.currencySvc)
}

func (h *HTTPTransport) convertAmounts(w http.ResponseWriter, r *http.Request) {
	convertamounts.ConvertAmounts(w, r, h.currencySvc)
}

func (h *HTTPTransport) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Error sending health response", "error", err)
	}
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
