package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/custody/cmd/app/commands"
	"github.com/allisson/custody/internal/app"
	"github.com/allisson/custody/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-project",
			Usage: "Create a project and assign its manager",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Project name",
				},
				&cli.StringFlag{
					Name:     "manager",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Manager principal ID (UUID)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				authUseCase, err := container.AuthUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateProject(
					ctx,
					authUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("manager"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "issue-token",
			Usage: "Issue a signed bearer token for a principal",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "subject",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Principal ID (UUID)",
				},
				&cli.StringSliceFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "Role to grant: admin, projectManager or accountant (repeatable)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				tokenService, err := container.TokenService()
				if err != nil {
					return err
				}

				return commands.RunIssueToken(
					tokenService,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("subject"),
					cmd.StringSlice("role"),
					cmd.String("format"),
				)
			},
		},
	}
}
