package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/linkcodec/cmd/app/commands"
	"github.com/allisson/linkcodec/internal/app"
	"github.com/allisson/linkcodec/internal/config"
	codecUseCase "github.com/allisson/linkcodec/internal/codec/usecase"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withCodecUseCase builds a container from the environment and hands its codec use
// case to run. The container is shut down when run returns.
func withCodecUseCase(
	ctx context.Context,
	run func(container *app.Container, useCase codecUseCase.CodecUseCase) error,
) error {
	container := app.NewContainer(config.Load())
	defer commands.CloseContainer(container, container.Logger())

	useCase, err := container.CodecUseCase()
	if err != nil {
		return err
	}
	return run(container, useCase)
}

func getCodecCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Mint tokens for one or more identifiers (\"-\" reads them from stdin)",
			ArgsUsage: "<id> [id...] | -",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				stdio := commands.DefaultIO()
				args, err := commands.ReadArgs(cmd.Args().Slice(), stdio.Reader)
				if err != nil {
					return err
				}
				return withCodecUseCase(ctx, func(c *app.Container, uc codecUseCase.CodecUseCase) error {
					return commands.RunEncode(ctx, uc, c.Logger(), stdio.Writer, args, cmd.String("format"))
				})
			},
		},
		{
			Name:      "decode",
			Usage:     "Recover the identifiers carried by one or more tokens (\"-\" reads them from stdin)",
			ArgsUsage: "<token> [token...] | -",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				stdio := commands.DefaultIO()
				args, err := commands.ReadArgs(cmd.Args().Slice(), stdio.Reader)
				if err != nil {
					return err
				}
				return withCodecUseCase(ctx, func(c *app.Container, uc codecUseCase.CodecUseCase) error {
					return commands.RunDecode(ctx, uc, c.Logger(), stdio.Writer, args, cmd.String("format"))
				})
			},
		},
		{
			Name:  "link",
			Usage: "Build the console link for a record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "resource",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Resource name (e.g., user, student, billing, invoice)",
				},
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Record identifier",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCodecUseCase(ctx, func(c *app.Container, uc codecUseCase.CodecUseCase) error {
					return commands.RunBuildLink(
						ctx,
						uc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("resource"),
						cmd.String("id"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "resolve-link",
			Usage: "Resolve a console link token to its backend API path",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "resource",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Resource name the link was built for",
				},
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token read from the link query string",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withCodecUseCase(ctx, func(c *app.Container, uc codecUseCase.CodecUseCase) error {
					return commands.RunResolveLink(
						ctx,
						uc,
						c.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("resource"),
						cmd.String("token"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "create-codec-key",
			Usage: "Generate a new codec key and IV",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Value:   16,
					Usage:   "Key size in bytes (16, 24 or 32)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "KMS key URI used to encrypt the generated key (e.g., base64key://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunCreateCodecKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("size")),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
