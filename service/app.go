package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/app/repositories"
	"inkwell/app/routes"
)

// RunAppServer starts the blog service and blocks until an interrupt or
// termination signal arrives. Startup failures are fatal; there is no
// degraded mode.
func RunAppServer() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.Setup(db, cfg.StaticDir),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Printf("Blog service listening on port %d", cfg.Port)
	log.Printf("Serving client assets from %s", cfg.StaticDir)
	for _, endpoint := range routes.Endpoints() {
		log.Printf("  %s", endpoint)
	}

	if err := serveUntilSignal(srv, stop, cfg.ShutdownTimeout); err != nil {
		// Close explicitly: log.Fatalf exits without running defers.
		db.Close()
		log.Fatalf("Server error: %v", err)
	}
	// The deferred db.Close runs after the server has stopped accepting
	// requests, so the connection is closed before process exit.
}

// serveUntilSignal runs srv until a stop signal or a listen failure. Listen
// errors are reported back to the caller rather than aborting the serving
// goroutine, so cleanup still happens. Split from RunAppServer for testing.
func serveUntilSignal(srv *http.Server, stop <-chan os.Signal, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-stop:
	}

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
