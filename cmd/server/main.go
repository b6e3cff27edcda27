// Command server runs the content API and its maintenance tasks.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"content-api/internal/config"
	"content-api/internal/logger"
)

func main() {
	cmd := &cli.Command{
		Name:  "server",
		Usage: "Bilingual content API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load environment variables from `FILE` when it exists",
				Value: ".env",
			},
		},
		Before: loadEnv,
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server (default)",
				Action: serve,
			},
			{
				Name:      "migrate",
				Usage:     "Apply or roll back database migrations",
				ArgsUsage: "[up|down]",
				Action:    migrateCmd,
			},
			{
				Name:  "seed",
				Usage: "Load starter categories, authors and articles",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "read the fixture from `FILE` instead of the built-in one",
					},
					&cli.BoolFlag{
						Name:  "keep",
						Usage: "keep existing content instead of clearing it first",
					},
				},
				Action: seedCmd,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("Command failed", slog.String("error", err.Error()))
	}
}

// loadEnv reads the env file into the process environment. Variables that
// are already set win over the file.
func loadEnv(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := godotenv.Load(cmd.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ctx, err
	}
	return ctx, nil
}

// loadConfig parses the configuration and installs the configured logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel)
	return cfg, nil
}
