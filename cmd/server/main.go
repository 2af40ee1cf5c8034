package main

import (
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/trivium-games/trivium/internal/catalog"
	"github.com/trivium-games/trivium/internal/config"
	"github.com/trivium-games/trivium/internal/handlers"
	"github.com/trivium-games/trivium/internal/middleware"
	"github.com/trivium-games/trivium/internal/random"
	"github.com/trivium-games/trivium/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logrus.New()
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Question catalogue: embedded bbolt file behind an LRU query cache.
	boltRepo, err := catalog.OpenBolt(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("opening question catalogue: %v", err)
	}
	defer boltRepo.Close()

	repo, err := catalog.NewCached(boltRepo, cfg.CacheSize)
	if err != nil {
		log.Fatalf("building catalogue cache: %v", err)
	}

	store := session.New(repo, random.New(), logger, cfg.DefaultSettings())
	srv := handlers.NewSessionServer(store, logger)

	mux := http.NewServeMux()

	mux.Handle("/rooms", middleware.LogMiddleware(logger)(srv.ListRoomsHandler()))
	mux.Handle("/session/state", middleware.LogMiddleware(logger)(srv.StateHandler()))
	mux.Handle("/session/ws", middleware.LogMiddleware(logger)(srv.SessionWSHandler()))

	addr := ":" + cfg.Port
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
