// Package web exposes the booking service over HTTP. Routing, status-code
// mapping and JSON shapes live here; all booking semantics stay in the
// service.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/example/island-booking/internal/booking"
	"github.com/go-playground/validator/v10"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Server struct {
	svc      *booking.Service
	logger   *logrus.Logger
	validate *validator.Validate
}

func New(svc *booking.Service, logger *logrus.Logger) *Server {
	return &Server{svc: svc, logger: logger, validate: validator.New()}
}

func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.contentType, s.logging)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`"ok"`))
	}).Methods(http.MethodGet)

	router.HandleFunc("/reservations", s.handleList).Methods(http.MethodGet)
	router.HandleFunc("/reservations", s.handleCreate).Methods(http.MethodPost)
	router.HandleFunc("/reservations/{id}", s.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/reservations/{id}", s.handleUpdate).Methods(http.MethodPatch)
	router.HandleFunc("/reservations/{id}", s.handleDelete).Methods(http.MethodDelete)
	router.HandleFunc("/vacancy", s.handleVacancy).Methods(http.MethodGet)

	cors := gorillaHandlers.CORS(gorillaHandlers.AllowedOrigins([]string{"*"}))
	return cors(router)
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func Start(ctx context.Context, addr string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) contentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
