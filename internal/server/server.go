package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/smartmatch/jobmatcher/internal/catalog"
)

// Server exposes the recommendation engine over a small JSON API. The job
// catalog is loaded before the server starts and shared read-only across all
// requests, so handlers need no locking.
type Server struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	http    *http.Server
}

func New(addr string, c *catalog.Catalog, logger *zap.Logger) *Server {
	s := &Server{
		catalog: c,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: s.handleHealth,
	}))
	mux.HandleFunc("/api/recommend", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: s.handleRecommend,
	}))

	s.http = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.http.Addr), zap.Int("catalog_jobs", s.catalog.Len()))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
