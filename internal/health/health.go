// Package health содержит health check сервер.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server представляет health check сервер
type Server struct {
	server *http.Server
	db     DatabaseInterface
	logger *zap.Logger
}

// NewServer создает новый health check сервер
func NewServer(port string, logger *zap.Logger, db DatabaseInterface) *Server {
	mux := http.NewServeMux()

	healthServer := &Server{
		server: &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		},
		db:     db,
		logger: logger,
	}

	mux.HandleFunc("/health", healthServer.healthHandler)
	mux.HandleFunc("/ready", healthServer.readyHandler)
	mux.HandleFunc("/live", healthServer.liveHandler)

	return healthServer
}

// Start запускает health check сервер
func (s *Server) Start() error {
	s.logger.Info("Starting health check server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Stop останавливает health check сервер
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("Stopping health check server")
	return s.server.Shutdown(ctx)
}

// healthHandler обрабатывает запросы /health
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK

	if err := s.checkDatabase(r.Context()); err != nil {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
		s.logger.Error("Health check failed", zap.Error(err))
	}

	writeStatus(w, code, status)
}

// readyHandler обрабатывает запросы /ready
func (s *Server) readyHandler(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	code := http.StatusOK

	// Готовность означает доступную базу данных истории
	if err := s.checkDatabase(r.Context()); err != nil {
		status = "not ready"
		code = http.StatusServiceUnavailable
		s.logger.Error("Readiness check failed", zap.Error(err))
	}

	writeStatus(w, code, status)
}

// liveHandler обрабатывает запросы /live
func (s *Server) liveHandler(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "alive")
}

// checkDatabase проверяет доступность базы данных истории
func (s *Server) checkDatabase(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// writeStatus пишет JSON ответ со статусом
func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"status":%q,"timestamp":%q}`, status, time.Now().Format(time.RFC3339))
}
