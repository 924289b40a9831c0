package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// RunValidateDocument reports whether a CPF or CNPJ value has the required digit count.
// An incomplete value is a normal result, not an error.
func RunValidateDocument(
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

	result, err := useCase.Validate(ctx, documentKind, value)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	logger.Debug("document validated",
		slog.String("kind", documentKind.String()),
		slog.String("status", string(result.Status)),
	)

	if format == FormatJSON {
		return writeJSON(w, map[string]interface{}{
			"kind":            result.Kind.String(),
			"digits_present":  result.DigitsPresent,
			"digits_required": result.DigitsRequired,
			"is_complete":     result.IsComplete,
			"status":          string(result.Status),
			"message":         result.Message,
		})
	}

	if _, err := fmt.Fprintf(w, "%s %s: %s\n", result.Kind.Label(), result.Counter(), result.Status); err != nil {
		return err
	}
	if result.Message != "" {
		_, err = fmt.Fprintln(w, result.Message)
	}
	return err
}
