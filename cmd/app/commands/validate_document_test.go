package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

func TestRunValidateDocument(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	useCase := documentUseCase.NewDocumentUseCase()

	t.Run("text-output-incomplete", func(t *testing.T) {
		var out bytes.Buffer
		err := RunValidateDocument(ctx, useCase, logger, &out, "individual", "123.456.789-0", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "CPF 10/11 digits: incomplete")
		require.Contains(t, out.String(), "CPF incomplete, missing 1 digit(s)")
	})

	t.Run("text-output-complete", func(t *testing.T) {
		var out bytes.Buffer
		err := RunValidateDocument(ctx, useCase, logger, &out, "organization", "12.345.678/0001-95", "text")

		require.NoError(t, err)
		require.Equal(t, "CNPJ 14/14 digits: complete\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunValidateDocument(ctx, useCase, logger, &out, "individual", "", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"status": "empty"`)
		require.Contains(t, out.String(), `"digits_required": 11`)
		require.Contains(t, out.String(), `"is_complete": false`)
	})

	t.Run("invalid-kind", func(t *testing.T) {
		err := RunValidateDocument(ctx, useCase, logger, &bytes.Buffer{}, "", "123", "text")

		require.Error(t, err)
	})
}
