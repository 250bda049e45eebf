package api

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
)

// NewRouter wires all routes. gen may be nil when no LLM provider is
// configured; POST /api/generate answers 503 and the rest keeps working.
func NewRouter(tracker *progress.Tracker, gen *questiongen.Generator) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/generate", GenerateHandler(gen))
		ar.Get("/analytics", AnalyticsHandler(tracker))
		ar.Get("/recommendations", RecommendationsHandler(tracker))
		ar.Get("/history", HistoryHandler(tracker))
		ar.Delete("/data", ClearDataHandler(tracker))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}

// Serve blocks on ListenAndServe.
func Serve(addr string, r *chi.Mux) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
