package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/anylai/signup/cmd/app/commands"
	"github.com/anylai/signup/internal/app"
	"github.com/anylai/signup/internal/config"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "kind",
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "Document kind: 'individual' (CPF) or 'organization' (CNPJ)",
	}
}

func valueFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "value",
		Aliases: []string{"v"},
		Usage:   usage,
	}
}

// withDocumentUseCase builds a container, hands its document use case to run and closes it.
func withDocumentUseCase(
	run func(useCase documentUseCase.DocumentUseCase, logger *slog.Logger, w io.Writer) error,
) error {
	cfg := config.Load()
	// One-shot commands never serve a scrape endpoint.
	cfg.MetricsEnabled = false

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	useCase, err := container.DocumentUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize document use case: %w", err)
	}

	return run(useCase, logger, commands.DefaultIO().Writer)
}

func getDocumentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "format-document",
			Usage: "Mask a CPF or CNPJ value",
			Flags: []cli.Flag{kindFlag(), valueFlag("Document value, masked or not"), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(
					func(useCase documentUseCase.DocumentUseCase, logger *slog.Logger, w io.Writer) error {
						return commands.RunFormatDocument(
							ctx, useCase, logger, w,
							cmd.String("kind"), cmd.String("value"), cmd.String("format"),
						)
					},
				)
			},
		},
		{
			Name:  "validate-document",
			Usage: "Report whether a CPF or CNPJ value has the required number of digits",
			Flags: []cli.Flag{kindFlag(), valueFlag("Document value, masked or not"), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(
					func(useCase documentUseCase.DocumentUseCase, logger *slog.Logger, w io.Writer) error {
						return commands.RunValidateDocument(
							ctx, useCase, logger, w,
							cmd.String("kind"), cmd.String("value"), cmd.String("format"),
						)
					},
				)
			},
		},
		{
			Name:  "format-phone",
			Usage: "Mask a fixed-line or mobile phone number",
			Flags: []cli.Flag{valueFlag("Phone value, masked or not"), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withDocumentUseCase(
					func(useCase documentUseCase.DocumentUseCase, logger *slog.Logger, w io.Writer) error {
						return commands.RunFormatPhone(
							ctx, useCase, logger, w,
							cmd.String("value"), cmd.String("format"),
						)
					},
				)
			},
		},
	}
}
