package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mannam/config"
	"mannam/database"
	"mannam/router"

	"mannam/pkg/area"
	"mannam/pkg/curation"
	"mannam/pkg/hashtag"
	"mannam/pkg/orchestrator"
	"mannam/pkg/tour"

	hashtagCtrlImp "mannam/pkg/hashtag/controllerImp"
	healthCtrlImp "mannam/pkg/health/controllerImp"
	cardCtrlImp "mannam/pkg/photocard/controllerImp"
	cardRepoImp "mannam/pkg/photocard/repositoryImp"
	recCtrlImp "mannam/pkg/recommend/controllerImp"
	reviewCtrlImp "mannam/pkg/review/controllerImp"
	reviewRepoImp "mannam/pkg/review/repositoryImp"
	sessCtrlImp "mannam/pkg/session/controllerImp"
	"mannam/pkg/session/repository"
	sessRepoImp "mannam/pkg/session/repositoryImp"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Optional area-code overrides
	if cfg.AreaCodesPath != "" {
		if err := area.LoadOverrides(cfg.AreaCodesPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.AreaCodesPath).Msg("area code overrides not loaded")
		}
	}

	// 4) LLM (mock fallback when no endpoint configured)
	var llm curation.Client
	if cfg.LLMEndpoint != "" {
		llm = curation.NewHTTP(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout, log.Logger)
	} else {
		log.Warn().Msg("LLM_ENDPOINT not set, using mock curation client")
		llm = curation.NewMock()
	}

	// 5) Tour API client
	search := tour.New(tour.Config{
		APIKey:          cfg.TourAPIKey,
		KorServiceURL:   cfg.KorServiceURL,
		TarRlteURL:      cfg.TarRlteURL,
		BaseYM:          cfg.BaseYM,
		Timeout:         cfg.SearchTimeout,
		RelatedRequired: cfg.RelatedRequired,
	}, log.Logger)

	// 6) Repos
	sessRepo := sessRepoImp.New(db)
	cardRepo := cardRepoImp.New(db)
	reviewRepo := reviewRepoImp.New(db)

	// 7) Orchestrator with a reopen hook so a dying connection can't strand
	//    a session in processing
	orch := orchestrator.New(sessRepo, llm, search, orchestrator.Options{
		MaxJobs: cfg.MaxJobs,
		Reopen: func() (repository.SessionRepository, error) {
			fresh, err := database.Open(cfg.DBPath)
			if err != nil {
				return nil, err
			}
			return sessRepoImp.New(fresh), nil
		},
	}, log.Logger)

	// 8) Services + controllers
	hashtagSvc := hashtag.New(llm, db, log.Logger)

	cardCtrl := cardCtrlImp.New(cardRepo)
	sessCtrl := sessCtrlImp.New(sessRepo, cardRepo, orch)
	hashCtrl := hashtagCtrlImp.New(hashtagSvc)
	recCtrl := recCtrlImp.New(search)
	revCtrl := reviewCtrlImp.New(reviewRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	r := router.New(e, cardCtrl, sessCtrl, hashCtrl, recCtrl, revCtrl, hCtrl)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := r.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	// 10) Drain on SIGINT/SIGTERM: stop intake, let inflight jobs land
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	if err := orch.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("orchestrator drain incomplete")
	}
	log.Info().Msg("bye")
}
