package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "github.com/yourorg/listing-browser/http"
	"github.com/yourorg/listing-browser/internal/env"
	"github.com/yourorg/listing-browser/internal/logger"
	"github.com/yourorg/listing-browser/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] no .env file loaded")
	}

	port := env.GetInt("PORT", 4000)
	st := store.Open(store.Config{
		// A missing URI is not fatal here: the fetch endpoint reports it
		// as a 500 so the client can show the error and offer a retry.
		URI:        os.Getenv("MONGODB_URI"),
		Database:   env.Get("MONGODB_DB", "listings"),
		Collection: env.Get("MONGODB_COLLECTION", "properties"),
	})

	lg := logger.New(os.Stdout)
	router := BuildRouter(httpapi.PropertiesDeps{Source: st}, lg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[INFO] listing-browser api listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[INFO] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Printf("[WARN] store close: %v", err)
	}
}
