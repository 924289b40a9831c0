package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// RunFormatPhone masks a Brazilian phone number and writes it in text or JSON format.
func RunFormatPhone(
	ctx context.Context,
	useCase documentUseCase.DocumentUseCase,
	logger *slog.Logger,
	w io.Writer,
	value string,
	format string,
) error {
	if err := checkOutputFormat(format); err != nil {
		return err
	}

	formatted, err := useCase.FormatPhone(ctx, value)
	if err != nil {
		return fmt.Errorf("failed to format phone: %w", err)
	}

	logger.Debug("phone formatted", slog.String("shape", string(formatted.Shape)))

	if format == FormatJSON {
		return writeJSON(w, map[string]interface{}{
			"digits": formatted.Digits,
			"masked": formatted.Masked,
			"shape":  string(formatted.Shape),
		})
	}

	_, err = fmt.Fprintf(w, "Phone: %s\nDigits: %s\nShape: %s\n", formatted.Masked, formatted.Digits, formatted.Shape)
	return err
}
