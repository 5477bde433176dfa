package rest

import (
	"context"
	"net/http"

	core_port "property-management-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	dashboardHandler *DashboardHandler,
	propertyHandler *PropertyHandler,
	tenantHandler *TenantHandler,
	paymentHandler *PaymentHandler,
	authHandler *AuthHandler,
	authMiddleware *AuthMiddleware,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: []string{"http://localhost:5173"},

		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},

		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},

		// AllowCredentials - разрешает отправку cookies и Authorization хедера
		AllowCredentials: true,

		// MaxAge - на сколько секунд браузер может кэшировать результат preflight-запроса
		MaxAge: 300, // 5 минут
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Публичные маршруты ---
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// --- Приватные маршруты ---
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// batch-эндпоинт дашборда
			r.Get("/batch/dashboard", dashboardHandler.GetDashboard)
			r.Post("/batch/dashboard", dashboardHandler.PostDashboard)

			r.Post("/properties", propertyHandler.CreateProperty)
			r.Get("/properties", propertyHandler.FindProperties)
			r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)

			r.Post("/tenants", tenantHandler.CreateTenant)
			r.Get("/tenants", tenantHandler.FindTenants)

			r.Post("/payments", paymentHandler.CreatePayment)
			r.Get("/payments", paymentHandler.FindPayments)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
