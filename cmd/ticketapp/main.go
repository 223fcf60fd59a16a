package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"ticketapp/internal/buildinfo"
	"ticketapp/internal/cli"
	"ticketapp/internal/config"
	"ticketapp/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
