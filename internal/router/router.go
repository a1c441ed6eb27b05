package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "zoo-inventory/internal/adapters/storage/memory"
	"zoo-inventory/internal/adapters/storage/sqlstore"
	_ "zoo-inventory/internal/docs"
	"zoo-inventory/internal/domain/animalcares"
	"zoo-inventory/internal/domain/animals"
	"zoo-inventory/internal/domain/cares"
	"zoo-inventory/internal/middleware"
	"zoo-inventory/internal/platform/apperr"
	"zoo-inventory/internal/platform/config"
	"zoo-inventory/internal/platform/dates"
	"zoo-inventory/internal/platform/logger"
	"zoo-inventory/internal/platform/metrics"
)

type Options struct {
	// nil => config.Default()
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene, usa la base (pgx o sqlite). Si no, in-memory.
	Store *sqlstore.Provider

	// Registry para /metrics. nil => uno nuevo por router.
	Registry *prometheus.Registry
	// RateLimiter lo crea y lo detiene el caller (tiene goroutine de limpieza).
	RateLimiter *middleware.RateLimiter
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigin))

	var recorder metrics.Recorder = metrics.Nop()
	if cfg.Server.MetricsEnabled {
		reg := opts.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		collector := metrics.NewCollector(reg)
		recorder = collector
		r.Use(collector.Middleware)
		r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))
	}

	r.Get("/health", healthHandler(opts.Store))

	// Endpoint de prueba que usa el frontend para verificar conectividad.
	r.Get("/message", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello from backend!"))
	})

	if cfg.Server.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	var (
		animalRepo     animals.Repository
		careRepo       cares.Repository
		animalCareRepo animalcares.Repository
	)

	if opts.Store != nil {
		storeOpts := sqlstore.Options{Metrics: recorder, Logger: log}
		animalRepo = sqlstore.NewAnimalsRepo(opts.Store, storeOpts)
		careRepo = sqlstore.NewCaresRepo(opts.Store, storeOpts)
		animalCareRepo = sqlstore.NewAnimalCaresRepo(opts.Store, storeOpts)
	} else {
		log.Warn("no database configured, using in-memory repositories", nil)
		animalRepo = mem.NewAnimalRepo()
		careRepo = mem.NewCareRepo()
		animalCareRepo = mem.NewAnimalCareRepo()
	}

	datePolicy := dates.Policy{Strict: cfg.Dates.Strict}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo, animals.Options{
		ListActiveOnly: cfg.Animals.ListActiveOnly,
		Dates:          datePolicy,
		Logger:         log,
	})
	caresSvc := cares.NewService(careRepo, log)
	animalCaresSvc := animalcares.NewService(animalCareRepo, animalcares.Options{
		Dates:  datePolicy,
		Logger: log,
	})

	rs := apperr.Responder{Log: log, ExposeInternal: cfg.Server.ExposeInternalErrors}

	// Rutas por módulo; el rate limit solo aplica al API, no a health/metrics.
	r.Group(func(api chi.Router) {
		if opts.RateLimiter != nil {
			api.Use(opts.RateLimiter.Middleware)
		}
		animals.RegisterRoutes(api, animalsSvc, rs)
		cares.RegisterRoutes(api, caresSvc, rs)
		animalcares.RegisterRoutes(api, animalCaresSvc, rs)
	})

	return r
}

func healthHandler(store *sqlstore.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Health(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
