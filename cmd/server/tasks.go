package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"content-api/internal/infrastructure/database"
	"content-api/internal/logger"
	"content-api/internal/repository"
	"content-api/internal/seed"
	"content-api/internal/service"
	"content-api/internal/validator"
)

// migrateCmd applies migrations up (default) or rolls them all back.
func migrateCmd(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	direction := cmd.Args().First()
	if direction == "" {
		direction = "up"
	}

	if err := database.Migrate(cfg.DatabaseDSN(), direction); err != nil {
		return err
	}
	logger.Info("Migration complete", slog.String("direction", direction))
	return nil
}

// seedCmd loads a fixture through the validated write path. Existing content
// is cleared first unless --keep is set or APP_ENV is production.
func seedCmd(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fixture, err := loadFixture(cmd.String("file"))
	if err != nil {
		return err
	}

	pool, err := database.NewPostgres(ctx, poolConfig(cfg), nil)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.HealthCheck(ctx, pool); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	content := service.NewContentService(
		repository.NewPostgresArticleRepository(pool),
		repository.NewPostgresCategoryRepository(pool),
		repository.NewPostgresAuthorRepository(pool),
		validator.NewValidator(),
	)

	var clear seed.ClearFunc
	switch {
	case cfg.IsProduction():
		logger.Warn("Production environment, existing content is kept")
	case !cmd.Bool("keep"):
		clear = func(ctx context.Context) error {
			return repository.TruncateContent(ctx, pool)
		}
	}

	_, err = seed.NewSeeder(content, clear).Run(ctx, fixture)
	return err
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.DefaultFixture()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return seed.LoadFixture(f)
}
