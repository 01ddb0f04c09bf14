package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-shop-api/docs"
	mem "pet-shop-api/internal/adapters/storage/memory"
	pg "pet-shop-api/internal/adapters/storage/postgres"
	"pet-shop-api/internal/config"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/rules"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/metrics"
	"pet-shop-api/internal/platform/ratelimiter"
	"pet-shop-api/internal/platform/web"
	"pet-shop-api/internal/ports/storage"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => nop

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	Pool pg.Pool

	// Resolver DNS del chequeo de entregabilidad; nil => net.DefaultResolver.
	Resolver rules.DomainResolver
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	cfg := opts.Config

	var (
		userRepo users.Repository
		petRepo  pets.Repository
		tx       storage.Transactor
	)
	if opts.Pool != nil {
		db := pg.NewDB(opts.Pool, log.With(map[string]any{"module": "postgres"}))
		userRepo, petRepo, tx = pg.NewUsersRepo(db), pg.NewPetsRepo(db), db
		log.Info("storage: postgres", nil)
	} else {
		db := mem.NewDB()
		userRepo, petRepo, tx = mem.NewUserRepo(db), mem.NewPetRepo(db), db
		log.Info("storage: in-memory", nil)
	}

	emails := rules.NewEmailValidator(rules.EmailOptions{
		CheckDeliverability: cfg.Email.CheckDeliverability,
		Resolver:            opts.Resolver,
	}, log)

	// Services por módulo; pets valida owners contra users
	usersSvc := users.NewService(userRepo, petRepo, tx, emails, log, users.Options{
		EmptyListNotFound: cfg.API.EmptyListNotFound,
	})
	petsSvc := pets.NewService(petRepo, usersSvc, tx, log, pets.Options{
		EmptyListNotFound: cfg.API.EmptyListNotFound,
	})

	m := metrics.NewHTTP()
	var limiter *ratelimiter.MapLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimiter.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute)
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics(m))

	r.Get("/health", health(opts.Pool))
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		web.Detail(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		web.Detail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Rutas por módulo, detrás del rate limit
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, m, log))

		users.RegisterRoutes(r, usersSvc, log, users.HandlerOptions{DefaultPageLimit: cfg.API.DefaultPageLimit})
		pets.RegisterRoutes(r, petsSvc, log, pets.HandlerOptions{DefaultPageLimit: cfg.API.DefaultPageLimit})
	})

	return r
}

type pinger interface {
	Ping(ctx context.Context) error
}

// health hace ping a la base cuando el pool lo soporta.
func health(pool pg.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := pool.(pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				web.Detail(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
