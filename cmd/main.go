package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/urfave/cli/v2"

	"resto-admin/internal/admin"
	"resto-admin/internal/xpkg/config"
	"resto-admin/internal/xpkg/logger"
	"resto-admin/migrations"
)

func main() {
	mylog := logger.New("resto-admin")

	app := &cli.App{
		Name:  "resto-admin",
		Usage: "restaurant back-office administration service",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the admin HTTP server",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						mylog.Action("config_load_failed").Error("Failed to load configuration", err)
						return err
					}
					return admin.Execute(c.Context, cfg, mylog)
				},
			},
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "down",
						Usage: "roll all migrations back instead of applying them",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						mylog.Action("config_load_failed").Error("Failed to load configuration", err)
						return err
					}
					return runMigrations(c.Context, cfg, mylog, c.Bool("down"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		mylog.Error("Command failed", err)
		os.Exit(1)
	}
}

func runMigrations(_ context.Context, cfg *config.Config, mylog logger.Logger, down bool) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	url := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Database)

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		mylog.Action("migration_failed").Error("Migration run failed", err)
		return err
	}

	mylog.Action("migration_completed").Info("Database schema is up to date")
	return nil
}
