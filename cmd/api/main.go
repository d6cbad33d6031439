package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tonycharles1/Trackz/internal/config"
	"github.com/tonycharles1/Trackz/internal/handlers"
	"github.com/tonycharles1/Trackz/internal/routes"
	"github.com/tonycharles1/Trackz/internal/sheetstore"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	// 1. --- Spreadsheet Backend Connection ---
	// A failed connection does not kill the server: it starts in degraded
	// mode and every data endpoint answers with setup guidance instead.
	var (
		store      *sheetstore.Store
		connectErr error
	)
	if connectErr = cfg.Validate(); connectErr != nil {
		log.Printf("WARNING: starting without a spreadsheet backend: %v", connectErr)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		client, err := sheetstore.Connect(ctx, cfg.Credentials, cfg.SpreadsheetID)
		cancel()
		if err != nil {
			connectErr = err
			log.Printf("WARNING: could not connect to the spreadsheet backend: %v", err)
		} else {
			store = sheetstore.New(client)
			// 2. --- Schema Bootstrap ---
			// Missing tabs are created with their headers so a blank
			// spreadsheet works out of the box.
			if err := store.EnsureSchema(); err != nil {
				log.Printf("WARNING: could not verify the spreadsheet schema: %v", err)
			}
		}
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store:      store,
		Cfg:        cfg,
		ConnectErr: connectErr,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting Trackz API server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
