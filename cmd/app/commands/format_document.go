package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// RunFormatDocument masks a CPF or CNPJ value and writes it in text or JSON format.
func RunFormatDocument(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	w io.Writer,
	kind string,
	value string,
	format string,
) error {
	if err := checkOutputFormat(format); err != nil {
		return err
	}

	documentKind, err := documentDomain.ParseKind(kind)
	if err != nil {
		return fmt.Errorf("failed to parse document kind: %w", err)
	}

	formatted, err := useCase.Format(ctx, documentKind, value)
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}

	logger.Debug("document formatted", slog.String("kind", documentKind.String()))

	if format == FormatJSON {
		return writeJSON(w, map[string]interface{}{
			"kind":   formatted.Kind.String(),
			"label":  formatted.Kind.Label(),
			"digits": formatted.Digits,
			"masked": formatted.Masked,
			"hint":   formatted.Hint,
		})
	}

	_, err = fmt.Fprintf(w, "%s: %s\nDigits: %s\nHint: %s\n",
		formatted.Kind.Label(), formatted.Masked, formatted.Digits, formatted.Hint)
	return err
}
