package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"world-travel-planner/internal/adapters/distance"
	"world-travel-planner/internal/adapters/repositories"
	"world-travel-planner/internal/api"
	"world-travel-planner/internal/catalog"
	"world-travel-planner/internal/config"
	"world-travel-planner/internal/platform/graceful"
)

const shutdownTimeout = 10 * time.Second

// main is the application composition root.
// It loads the city catalog once, wires the distance provider and starts the HTTP server.
func main() {
	config.Load()

	port := config.Get("PORT", "8080")
	catalogCfg := config.CatalogFromEnv()

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	repo, closeRepo, err := repositories.Open(catalogCfg)
	if err != nil {
		log.Fatal(err)
	}

	cat, err := catalog.Load(ctx, repo)
	// The catalog is held in memory; the source is not needed after loading.
	if cerr := closeRepo(); cerr != nil {
		log.Printf("close catalog source failed: err=%v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Catalog loaded source=%s cities=%d continents=%d", catalogCfg.Source, cat.Len(), len(cat.Continents()))

	// Plans from a shared catalog repeat the same city pairs.
	provider, err := distance.NewCachingProvider(distance.NewGreatCircleProvider(), max(cat.Len()*cat.Len(), 1))
	if err != nil {
		log.Fatal(err)
	}
	router := api.NewRouter(cat, provider)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Server listening addr=:%s", port)
	if err := serve(ctx, srv, ln); err != nil {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

// serve runs srv on ln until ctx is done, then shuts it down and returns
// only once in-flight requests have finished or shutdownTimeout expires.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	if err := <-shutdownDone; err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	return nil
}
