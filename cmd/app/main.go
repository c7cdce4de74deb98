// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/messaging/cmd/app/commands"
	"github.com/allisson/messaging/internal/app"
	"github.com/allisson/messaging/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Multi-tenant messaging backend",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server and the revocation sweeper",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-user",
				Usage: "Register a new user account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Unique login name",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Plaintext password (hashed before storage)",
					},
					&cli.BoolFlag{
						Name:    "admin",
						Aliases: []string{"a"},
						Value:   false,
						Usage:   "Grant the admin role to the account",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					userUseCase, err := container.UserUseCase()
					if err != nil {
						return err
					}

					return commands.RunCreateUser(
						ctx,
						userUseCase,
						logger,
						os.Stdout,
						cmd.String("username"),
						cmd.String("password"),
						cmd.Bool("admin"),
						cmd.String("format"),
					)
				},
			},
			{
				Name:  "clean-revoked-tokens",
				Usage: "Purge revocation records for tokens that already expired",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Value:   false,
						Usage:   "Show how many records would be purged without purging",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					authUseCase, err := container.AuthUseCase(ctx)
					if err != nil {
						return err
					}

					return commands.RunCleanRevokedTokens(
						ctx,
						authUseCase,
						logger,
						os.Stdout,
						cmd.Bool("dry-run"),
						cmd.String("format"),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
