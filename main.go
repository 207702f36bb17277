package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot/app"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("c", "config.ini", "config file")
	flag.Parse()

	// Credentials may live in a .env next to the binary.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.New(ctx, *configPath)
	if err != nil {
		panic(err)
	}

	if err := application.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = application.Shutdown(shutdownCtx)
}
