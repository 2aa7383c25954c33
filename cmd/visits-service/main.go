package main

import (
	"fmt"
	"os"

	"github.com/jmorales/aguaruta-visits/internal/config"
	"github.com/jmorales/aguaruta-visits/internal/db"
	"github.com/jmorales/aguaruta-visits/internal/excel"
	httphandler "github.com/jmorales/aguaruta-visits/internal/http"
	"github.com/jmorales/aguaruta-visits/internal/logger"
	"github.com/jmorales/aguaruta-visits/internal/pdf"
	"github.com/jmorales/aguaruta-visits/internal/repository"
	"github.com/jmorales/aguaruta-visits/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	// Store selection happens exactly once. If the SQLite driver cannot be
	// loaded the process keeps serving from memory; data then lives only for
	// the process lifetime.
	var store repository.Store
	sqliteReady := false
	database, err := db.Open(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("sqlite unavailable, falling back to in-memory store")
		store = repository.NewMemoryStore()
	} else {
		store = repository.NewSQLiteStore(database)
		sqliteReady = true
	}

	clientService := service.NewClientService(store)
	visitService := service.NewVisitService(store)

	handler := httphandler.NewHandler(
		clientService,
		visitService,
		excel.NewGenerator(),
		pdf.NewGenerator(),
		sqliteReady,
		log,
	)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Bool("sqlite", sqliteReady).Msg("starting visits service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
