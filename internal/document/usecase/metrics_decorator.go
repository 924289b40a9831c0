package usecase

import (
	"context"
	"time"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	"github.com/anylai/signup/internal/metrics"
)

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Format records metrics for document formatting.
func (d *documentUseCaseWithMetrics) Format(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*FormattedDocument, error) {
	start := time.Now()
	formatted, err := d.next.Format(ctx, kind, input)
	d.record(ctx, "document_format", start, statusOf(err))
	return formatted, err
}

// Validate records metrics for document validation. The status label carries the
// field state so dashboards can tell incomplete documents apart from errors.
func (d *documentUseCaseWithMetrics) Validate(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*documentDomain.ValidationResult, error) {
	start := time.Now()
	result, err := d.next.Validate(ctx, kind, input)

	status := statusOf(err)
	if result != nil {
		status = string(result.Status)
	}

	d.record(ctx, "document_validate", start, status)
	return result, err
}

// FormatPhone records metrics for phone formatting.
func (d *documentUseCaseWithMetrics) FormatPhone(ctx context.Context, input string) (*FormattedPhone, error) {
	start := time.Now()
	formatted, err := d.next.FormatPhone(ctx, input)
	d.record(ctx, "phone_format", start, statusOf(err))
	return formatted, err
}

// FormatField records metrics for generic field formatting.
func (d *documentUseCaseWithMetrics) FormatField(
	ctx context.Context,
	mask documentDomain.MaskType,
	input string,
) (*FormattedField, error) {
	start := time.Now()
	formatted, err := d.next.FormatField(ctx, mask, input)
	d.record(ctx, "field_format", start, statusOf(err))
	return formatted, err
}

func (d *documentUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	d.metrics.RecordOperation(ctx, "document", operation, status)
	d.metrics.RecordDuration(ctx, "document", operation, time.Since(start), status)
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
