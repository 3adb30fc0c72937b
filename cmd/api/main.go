package main

import (
	"net/http"
	"os"
	"time"

	"tamagotchi-api/internal/adapters/auth/token"
	"tamagotchi-api/internal/adapters/storage/postgres"
	"tamagotchi-api/internal/platform/logger"
	"tamagotchi-api/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	// Fail closed: sin JWT_SECRET no se arranca. Jamás un default firmable.
	tokens, err := token.NewManager(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Error("configuration error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	opts := router.Options{
		Tokens: tokens,
		Log:    log,
	}

	// Postgres opcional; el default es in-memory (se pierde al reiniciar).
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := postgres.Open(dsn)
		if err != nil {
			log.Error("database connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
		log.Info("using postgres storage", nil)
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
