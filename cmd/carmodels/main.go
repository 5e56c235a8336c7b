package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/chup1x/carmodels/internal/app"
	"github.com/chup1x/carmodels/internal/config"
	"github.com/chup1x/carmodels/internal/logging"
)

const name = "carmodels"

var (
	// overridden during build with ldflags
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatalf("%s: %s", name, err.Error())
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Browse vehicle models by make and model year",
		Version: version,
		Commands: []*cli.Command{
			serveCmd(),
			prerenderCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Prerender the seed result pages and start the web server",
		Action: func(ctx context.Context, _ *cli.Command) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Serve(ctx)
		},
	}
}

func prerenderCmd() *cli.Command {
	return &cli.Command{
		Name:  "prerender",
		Usage: "Render the seed result pages to static files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "dist",
				Usage:   "output directory",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := build()
			if err != nil {
				return err
			}

			written, err := a.Export(ctx, cmd.String("out"))
			if err != nil {
				return err
			}
			for _, path := range written {
				slog.Info("wrote result page", "path", path)
			}
			return nil
		},
	}
}

func build() (*app.App, error) {
	cfg, err := config.ReadConfig()
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	logger := logging.SetDefault(name, version, cfg.Log.SlogLevel())
	return app.New(cfg, logger)
}
