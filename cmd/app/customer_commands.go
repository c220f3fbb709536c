package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/custody/cmd/app/commands"
	"github.com/allisson/custody/internal/app"
	"github.com/allisson/custody/internal/config"
)

func getCustomerCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-customer",
			Usage: "Create a customer in a project",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "project",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Project ID (UUID)",
				},
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Customer name",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Customer email",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				txManager, err := container.TxManager()
				if err != nil {
					return err
				}

				customerRepo, err := container.CustomerRepository()
				if err != nil {
					return err
				}

				return commands.RunCreateCustomer(
					ctx,
					txManager,
					customerRepo,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("project"),
					cmd.String("name"),
					cmd.String("email"),
					cmd.String("format"),
				)
			},
		},
	}
}
