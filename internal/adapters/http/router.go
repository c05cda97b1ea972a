package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"sobasite/internal/adapters/http/health"
	"sobasite/internal/adapters/http/page"
	"sobasite/internal/adapters/http/reservation"
	"sobasite/internal/adapters/http/site"
	"sobasite/internal/config"
	"sobasite/internal/platform/logger"
	"sobasite/internal/platform/metrics"
	platformMiddleware "sobasite/internal/platform/middleware"
)

type RouterDependencies struct {
	Config             *config.HttpConfig
	Logger             logger.Logger
	PageHandler        *page.Handler
	ReservationHandler *reservation.Handler
	SiteHandler        *site.Handler
	LivenessHandler    *health.LivenessHandler
	ReadinessHandler   *health.ReadinessHandler
	MetricsProvider    *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(
		cfg.RateLimit.GlobalRequests,
		time.Duration(cfg.RateLimit.GlobalWindow)*time.Second,
	))
	r.Use(httprate.LimitByIP(
		cfg.RateLimit.RequestsPerIP,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(page.Static()))))

	r.Group(func(formRouter chi.Router) {
		formRouter.Use(platformMiddleware.MaxBodyBytes(cfg.Server.MaxFormBytes))

		formRouter.Get("/", deps.PageHandler.Show)
		formRouter.Post("/", deps.PageHandler.Submit)

		formRouter.Route("/api", func(apiRouter chi.Router) {
			apiRouter.Get("/site", ErrorHandler(deps.SiteHandler.GetContent))

			apiRouter.Route("/reservations", func(reservationRouter chi.Router) {
				reservationRouter.Post("/", ErrorHandler(deps.ReservationHandler.SubmitForm))
				reservationRouter.Post("/validate", ErrorHandler(deps.ReservationHandler.ValidateForm))
			})

			apiRouter.Route("/forms", func(formsRouter chi.Router) {
				formsRouter.Post("/", ErrorHandler(deps.ReservationHandler.OpenSession))
				formsRouter.Route("/{id}", func(sessionRouter chi.Router) {
					sessionRouter.Get("/", ErrorHandler(deps.ReservationHandler.GetSession))
					sessionRouter.Delete("/", ErrorHandler(deps.ReservationHandler.CloseSession))
					sessionRouter.Put("/fields/{field}", ErrorHandler(deps.ReservationHandler.ChangeField))
					sessionRouter.Post("/submit", ErrorHandler(deps.ReservationHandler.SubmitSession))
				})
			})
		})
	})

	return r
}
