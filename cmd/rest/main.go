package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"namedeck/internal/bootstrap"
	"namedeck/internal/config"
	"namedeck/internal/server"
	"namedeck/internal/tracer"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start the websocket hub
	go container.WebSocketHub.Run()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Shut the WhatsApp session down cleanly on interrupt
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		container.SessionService.Shutdown()
		container.Logger.Sync()
		shutdownTracer(context.Background())
		os.Exit(0)
	}()

	// 6. Run Server
	// Flush telemetry before exiting; log.Fatal would skip deferred
	// shutdowns.
	if err := srv.Run(); err != nil {
		container.Logger.Sync()
		shutdownTracer(context.Background())
		log.Fatal(err)
	}
}
