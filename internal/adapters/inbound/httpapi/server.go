package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/application"
	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

// Server is the HTTP backend of the browser form.
type Server struct {
	config   domain.ServerConfig
	router   *chi.Mux
	sessions *application.SessionService
	submits  *application.SubmitService
	drafts   *application.DraftService
	scores   *application.ScoreService
	now      func() time.Time
}

// NewServer creates a new API server.
func NewServer(
	cfg domain.ServerConfig,
	sessions *application.SessionService,
	submits *application.SubmitService,
	drafts *application.DraftService,
	scores *application.ScoreService,
) *Server {
	s := &Server{
		config:   cfg,
		sessions: sessions,
		submits:  submits,
		drafts:   drafts,
		scores:   scores,
		now:      time.Now,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/instrument", s.handleInstrument)
		r.Get("/session", s.handleOpenSession)
		r.Post("/score", s.handleScore)
		r.Post("/submit", s.handleSubmit)

		r.Route("/draft", func(r chi.Router) {
			r.Get("/", s.handleLoadDraft)
			r.Put("/", s.handleSaveDraft)
			r.Delete("/", s.handleClearDraft)
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
