package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/custody/cmd/app/commands"
	"github.com/allisson/custody/internal/app"
	"github.com/allisson/custody/internal/config"
)

func getAccountCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-account",
			Usage: "Open an account with an initial balance",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Account ID",
				},
				&cli.StringFlag{
					Name:    "balance",
					Aliases: []string{"b"},
					Value:   "0",
					Usage:   "Initial balance as a decimal string",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				accountUseCase, err := container.AccountUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAccount(
					ctx,
					accountUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("balance"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "withdraw",
			Usage: "Debit an account under its lock",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Account ID",
				},
				&cli.StringFlag{
					Name:     "amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Amount to withdraw as a decimal string",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				accountUseCase, err := container.AccountUseCase()
				if err != nil {
					return err
				}

				return commands.RunWithdraw(
					ctx,
					accountUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("amount"),
					cmd.String("format"),
				)
			},
		},
	}
}
