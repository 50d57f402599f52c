package main

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"packsight/internal/backend"
	"packsight/internal/capture"
	"packsight/internal/config"
	"packsight/internal/httpserver"
	"packsight/internal/httpserver/handlers"
	"packsight/internal/logger"
	"packsight/internal/models"
	"packsight/internal/records"
	"packsight/internal/session"
	"packsight/internal/wizard"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	cfg := config.Load()
	if cfg.BackendURL == "" {
		lg.Fatalw("BACKEND_URL is empty")
	}
	if cfg.SessionSecret == "" {
		lg.Fatalw("SESSION_SECRET is empty")
	}

	var (
		sessionStore session.Store
		recordStore  records.Store
	)
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			lg.Fatalw("db connect failed", "error", err)
		}
		if err := db.AutoMigrate(&models.Session{}, &models.InspectionRecord{}); err != nil {
			lg.Fatalw("automigrate failed", "error", err)
		}
		sessionStore = session.NewGormStore(db)
		recordStore = records.NewGormStore(db)
	} else {
		lg.Infow("DATABASE_URL empty, using in-memory stores")
		sessionStore = session.NewMemStore()
		recordStore = records.NewMemStore()
	}

	reg, err := capture.NewRegistry(filepath.Join(cfg.SpoolDir, "packsight-previews"))
	if err != nil {
		lg.Fatalw("spool dir setup failed", "error", err)
	}

	bc := backend.New(cfg.BackendURL)
	sessions := session.NewManager(sessionStore, bc, cfg.SessionSecret, cfg.SessionTTL)
	wizards := wizard.NewManager()

	deps := handlers.NewDeps(bc, sessions, wizards, reg, recordStore, lg)
	router := httpserver.NewRouter(deps)

	lg.Infow("listening", "port", cfg.HTTPPort, "backend", cfg.BackendURL)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatal(err)
	}
}
