package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/api"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/chat"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/config"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/db"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/gateway"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/recommend"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	// Flags override the environment
	port := flag.Int("port", cfg.Port, "Port to listen on")
	dbPath := flag.String("db", cfg.DBPath, "Path to SQLite database")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	data, err := dataset.Load(database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load reference dataset")
	}
	log.Info().
		Int("suburbs", len(data.Suburbs)).
		Int("stations", len(data.Stations)).
		Msg("reference dataset loaded")

	engine := recommend.NewEngine(data)
	router := gateway.NewRouter(cfg.ValhallaURL, cfg.CacheTTL)
	isochrone := gateway.NewIsochroneClient(cfg.ValhallaURL, cfg.CacheTTL)
	overpass := gateway.NewOverpassClient(cfg.OverpassURL, cfg.CacheTTL)
	transit := gateway.NewTransitClient(cfg.TripPlannerURL, cfg.TfNSWAPIKey, cfg.CacheTTL)
	commute := gateway.NewCommuteService(transit, router)
	chatClient := chat.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)

	handlers := api.NewHandlers(data, engine, router, isochrone, overpass, commute, chatClient)

	addr := fmt.Sprintf(":%d", *port)
	log.Info().Str("addr", addr).Msg("starting server")

	if err := http.ListenAndServe(addr, api.NewRouter(handlers)); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
