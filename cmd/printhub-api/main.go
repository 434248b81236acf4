package main

import (
	"fmt"
	"os"

	"github.com/nurpe/printhub-api/internal/auth"
	"github.com/nurpe/printhub-api/internal/config"
	"github.com/nurpe/printhub-api/internal/db"
	"github.com/nurpe/printhub-api/internal/excel"
	httphandler "github.com/nurpe/printhub-api/internal/http"
	"github.com/nurpe/printhub-api/internal/http/middleware"
	"github.com/nurpe/printhub-api/internal/logger"
	"github.com/nurpe/printhub-api/internal/pdf"
	"github.com/nurpe/printhub-api/internal/repository"
	"github.com/nurpe/printhub-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	submissionRepo := repository.NewSubmissionRepository(database)
	testimonialRepo := repository.NewTestimonialRepository(database)

	submissionService := service.NewSubmissionService(submissionRepo, testimonialRepo, excel.NewGenerator())
	quoteService := service.NewQuoteService(pdf.NewGenerator(), cfg.Quote.Currency)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(submissionService, quoteService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting printhub api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
