package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Router struct {
	handler *CompareHandler
	router  *mux.Router
	log     *zap.Logger
}

// NewRouter creates a router serving the comparison routes.
func NewRouter(handler *CompareHandler, router *mux.Router, log *zap.Logger) *Router {
	return &Router{handler: handler, router: router, log: log}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(r.requestLogger)

	// body: {"oldHours": "...", "newHours": "...", "toleranceMinutes": 3}
	r.router.HandleFunc("/v1/compare", r.handler.Compare).Methods(http.MethodPost)

	r.router.HandleFunc("/ping", r.handler.Ping).Methods(http.MethodGet)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		r.log.Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("remote", req.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
