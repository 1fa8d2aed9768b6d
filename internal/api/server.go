package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/config"
	"github.com/govardhan-06/pdf-upload-extract-system/internal/extract"
)

// Server is the HTTP API for the extraction backend. The viewer's fetcher
// talks to /extract; the rendering surface streams bytes from /pdf/.
type Server struct {
	router     chi.Router
	extractor  *extract.Service
	downloader *Downloader
	log        *slog.Logger
	cfg        config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(extractor *extract.Service, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		extractor:  extractor,
		downloader: NewDownloader(cfg.DownloadTimeout, cfg.MaxPDFBytes),
		log:        log,
		cfg:        cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases resources held by the server's outbound clients.
func (s *Server) Close() {
	s.downloader.Close()
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	// The viewer frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/extract", s.handleExtract)
	r.Get("/pdf/", s.handlePDF)

	r.Group(func(r chi.Router) {
		if s.cfg.StatsAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.StatsAPIKey))
		}
		r.Get("/api/stats/extract", s.handleExtractStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
