package main

import (
	"context"

	"go.uber.org/fx"

	"sobasite/internal/adapters/health"
	httpAdapter "sobasite/internal/adapters/http"
	healthHttp "sobasite/internal/adapters/http/health"
	pageHandler "sobasite/internal/adapters/http/page"
	reservationHandler "sobasite/internal/adapters/http/reservation"
	siteHandler "sobasite/internal/adapters/http/site"
	"sobasite/internal/adapters/inquiry"
	sessionRepo "sobasite/internal/adapters/repository/memory"
	"sobasite/internal/adapters/session"
	siteLoader "sobasite/internal/adapters/site"
	"sobasite/internal/adapters/validator"
	"sobasite/internal/config"
	"sobasite/internal/core/domain/site"
	"sobasite/internal/core/ports"
	reservationUseCase "sobasite/internal/core/usecase/reservation"
	platformHealth "sobasite/internal/platform/health"
	"sobasite/internal/platform/logger"
	"sobasite/internal/platform/metrics"
	"sobasite/internal/platform/render"
	platformValidator "sobasite/internal/platform/validator"
	"sobasite/internal/version"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadForm),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Environment: cfg.Environment,
			Version:     version.Get(),
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Invoke(func(v platformValidator.Validator, httpCfg *config.HttpConfig, formCfg *config.FormConfig) error {
		if err := v.Validate(httpCfg); err != nil {
			return err
		}
		if err := httpCfg.CheckCORS(); err != nil {
			return err
		}
		return v.Validate(formCfg)
	}),

	// Site content and templates
	fx.Provide(func(cfg *config.FormConfig, v platformValidator.Validator) (*site.Content, error) {
		return siteLoader.Load(cfg.Site.ContentPath, v)
	}),
	fx.Provide(func() (*render.Engine, error) {
		return render.New(pageHandler.Templates(), nil)
	}),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(repo *sessionRepo.SessionRepository, cfg *config.FormConfig) *health.SessionStoreChecker {
			return health.NewSessionStoreChecker(repo, cfg.Session.MaxSessions)
		},
		fx.As(new(platformHealth.Checker)),
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker, cfg *config.HttpConfig) *platformHealth.Manager {
			m := platformHealth.NewManager(cfg.Health.CheckTimeout)
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(reservationHandler.NewHandler),
	fx.Provide(siteHandler.NewHandler),
	fx.Provide(pageHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Info())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface, cfg *config.HttpConfig) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm, cfg.Health.ReadinessTimeout)
	}),
	fx.Provide(func(
		cfg *config.HttpConfig,
		log logger.Logger,
		page *pageHandler.Handler,
		reservation *reservationHandler.Handler,
		siteContent *siteHandler.Handler,
		liveness *healthHttp.LivenessHandler,
		readiness *healthHttp.ReadinessHandler,
		metrics *metrics.Provider,
	) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:             cfg,
			Logger:             log,
			PageHandler:        page,
			ReservationHandler: reservation,
			SiteHandler:        siteContent,
			LivenessHandler:    liveness,
			ReadinessHandler:   readiness,
			MetricsProvider:    metrics,
		}
	}),

	// Domain
	fx.Provide(sessionRepo.NewSessionRepository),
	fx.Provide(func(repo *sessionRepo.SessionRepository) ports.SessionRepository { return repo }),
	fx.Provide(fx.Annotate(inquiry.NewLogSink, fx.As(new(ports.InquirySink)))),
	fx.Provide(func(p *metrics.Provider) reservationUseCase.SubmissionRecorder { return p }),
	fx.Provide(func(cfg *config.FormConfig) reservationUseCase.Settings {
		return reservationUseCase.Settings{
			SessionTTL:  cfg.Session.TTL,
			MaxSessions: cfg.Session.MaxSessions,
		}
	}),
	fx.Provide(reservationUseCase.NewUsecase),
	fx.Provide(func(uc *reservationUseCase.Usecase) reservationHandler.Manager { return uc }),
	fx.Provide(func(uc *reservationUseCase.Usecase) pageHandler.Submitter { return uc }),
	fx.Provide(func(e *render.Engine) pageHandler.Renderer { return e }),
	fx.Provide(func(uc *reservationUseCase.Usecase, p *metrics.Provider, cfg *config.FormConfig, log logger.Logger) *session.Sweeper {
		return session.NewSweeper(uc, p, cfg.Session.SweepInterval, log)
	}),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, sweeper *session.Sweeper, srv *httpAdapter.Server, log logger.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return log.Sync()
			},
		})
		lc.Append(fx.Hook{
			OnStart: sweeper.Start,
			OnStop:  sweeper.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
