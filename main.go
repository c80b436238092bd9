package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/config"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/database"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/logging"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/router"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/storage"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if cfg.Log.File != "" {
		if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
	}

	logger := logging.New(cfg.Log)

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// binary file store for uploaded documents
	store, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("init upload store: %v", err)
	}

	// setup router
	r := router.SetupRouter(cfg, db, store, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.WithField("addr", addr).Info("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
