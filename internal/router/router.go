package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"training-pets/internal/adapters/storage/mongodb"
	"training-pets/internal/domain/analytics"
	"training-pets/internal/domain/dogs"
	"training-pets/internal/domain/exercises"
	"training-pets/internal/domain/live"
	"training-pets/internal/domain/progress"
	"training-pets/internal/domain/tasks"
	"training-pets/internal/middleware"
	"training-pets/internal/platform/logger"
	"training-pets/internal/ports/store"
)

type Options struct {
	// Opcional: si viene, se usa tal cual (los tests inyectan el store en
	// memoria). Si no, se resuelve por env: DATABASE_URL + DATABASE_NAME.
	Store store.Store

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	st := opts.Store
	if st == nil {
		st = openFromEnv(log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/health", healthHandler())
	r.Get("/", rootHandler())
	r.Get("/test", diagnosticsHandler(st))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Servicios y rutas por módulo, todos contra el mismo handle de store.
	dogs.RegisterRoutes(r, dogs.NewService(st))
	exercises.RegisterRoutes(r, exercises.NewService(st))
	tasks.RegisterRoutes(r, tasks.NewService(st))
	progress.RegisterRoutes(r, progress.NewService(st))
	analytics.RegisterRoutes(r, analytics.NewService(st))
	live.RegisterRoutes(r, live.NewService(st), log)

	return r
}

// openFromEnv resuelve el handle de store. Nunca bloquea el arranque:
// sin DATABASE_URL o con conexión fallida arranca en modo degradado
// (lecturas vacías, escrituras con error, /test lo reporta).
func openFromEnv(log logger.Logger) store.Store {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		log.Warn("DATABASE_URL not set, storage degraded", nil)
		return store.Unavailable{}
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "trainingpets"
	}

	st, err := mongodb.Open(uri, name)
	if err != nil {
		log.Error("store connect failed, storage degraded", map[string]any{"error": err.Error()})
		return store.Unavailable{Reason: err}
	}

	log.Info("store connected", map[string]any{"database": name})
	return st
}
