package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"resto-admin/internal/admin/adapter/broker"
	database "resto-admin/internal/admin/adapter/db"
	"resto-admin/internal/admin/api/http/handle"
	"resto-admin/internal/admin/app/core"
	"resto-admin/internal/admin/app/services"
	"resto-admin/internal/xpkg/config"
	"resto-admin/internal/xpkg/db"
	"resto-admin/internal/xpkg/logger"
)

var ErrServerClosed = errors.New("server closed")

type Server struct {
	router *mux.Router
	cfg    *config.Config
	srv    *http.Server
	mylog  logger.Logger
	db     core.IDB
	mb     core.IBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
}

func NewServer(ctx, appCtx context.Context, cfg *config.Config, mylog logger.Logger) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		router: mux.NewRouter(),
	}
}

// Run initializes connections and routes, then listens until the server
// stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	if err := s.initializeDatabase(); err != nil {
		mylog.Action("db_connection_failed").Error("Failed to connect to database", err)
		return err
	}
	mylog.Action("db_connected").Info("Successful database connection")

	if err := s.initializeBroker(); err != nil {
		mylog.Action("mb_connection_failed").Error("Failed to connect to message broker", err)
		return err
	}
	mylog.Action("mb_connected").Info("Successful message broker connection")

	s.Configure()

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTP.Port),
		Handler: s.router,
	}
	s.mu.Unlock()

	mylog.Info("server is running", "port", s.cfg.HTTP.Port)
	return s.startHTTPServer()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, core.WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Action("db_close_failed").Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Action("db_closed").Info("Database closed")
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Action("mb_close_failed").Error("Failed to close message broker", err)
			return fmt.Errorf("mb close: %w", err)
		}
		s.mylog.Action("mb_closed").Info("Message broker closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) initializeDatabase() error {
	conn, err := db.Start(s.appCtx, &s.cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = conn
	return nil
}

func (s *Server) initializeBroker() error {
	mb, err := broker.New(s.cfg.RMQ, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	return nil
}

// Configure wires repositories, services and routes.
func (s *Server) Configure() {
	orderRepo := database.NewOrderRepo(s.db)
	menuRepo := database.NewMenuRepo(s.db)
	promoRepo := database.NewPromotionRepo(s.db)

	authService := services.NewAuthService(s.cfg.Admin, s.mylog)
	reportService := services.NewReportService(orderRepo, menuRepo, s.mylog)
	orderService := services.NewOrderService(orderRepo, s.mb, s.mylog)
	menuService := services.NewMenuService(menuRepo, s.mylog)
	promoService := services.NewPromotionService(promoRepo, s.mylog)

	authHandler := handle.NewAuthHandler(authService, s.mylog)
	reportHandler := handle.NewReportHandler(reportService, s.mylog)
	orderHandler := handle.NewOrderHandler(orderService, s.mylog)
	menuHandler := handle.NewMenuHandler(menuService, s.mylog)
	promoHandler := handle.NewPromotionHandler(promoService, s.mylog)

	s.router.HandleFunc("/auth/login", authHandler.Login()).Methods(http.MethodPost)
	s.router.HandleFunc("/auth/logout", authHandler.Logout()).Methods(http.MethodPost)

	admin := s.router.NewRoute().Subrouter()
	admin.Use(handle.RequireAuth(authService))

	admin.HandleFunc("/reports/revenue", reportHandler.RevenueReport()).Methods(http.MethodGet)
	admin.HandleFunc("/reports/revenue/export", reportHandler.ExportCSV()).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/revenue", reportHandler.RevenueWidget()).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/orders", reportHandler.OrderStatsWidget()).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/order-time", reportHandler.OrderTimeWidget()).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/most-ordered", reportHandler.MostOrdered()).Methods(http.MethodGet)

	admin.HandleFunc("/orders", orderHandler.List()).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", orderHandler.Get()).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/history", orderHandler.StatusHistory()).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", orderHandler.ChangeStatus()).Methods(http.MethodPatch)

	admin.HandleFunc("/menu", menuHandler.List()).Methods(http.MethodGet)
	admin.HandleFunc("/menu", menuHandler.Create()).Methods(http.MethodPost)
	admin.HandleFunc("/menu/{id}", menuHandler.Get()).Methods(http.MethodGet)
	admin.HandleFunc("/menu/{id}", menuHandler.Update()).Methods(http.MethodPut)
	admin.HandleFunc("/menu/{id}", menuHandler.Delete()).Methods(http.MethodDelete)

	admin.HandleFunc("/promotions", promoHandler.List()).Methods(http.MethodGet)
	admin.HandleFunc("/promotions", promoHandler.Create()).Methods(http.MethodPost)
	admin.HandleFunc("/promotions/{id}", promoHandler.Update()).Methods(http.MethodPut)
	admin.HandleFunc("/promotions/{id}", promoHandler.Delete()).Methods(http.MethodDelete)
	admin.HandleFunc("/promotions/{id}/active", promoHandler.ToggleActive()).Methods(http.MethodPatch)
}
