package usecase

import (
	"context"
	"time"

	"github.com/anylai/signup/internal/metrics"
	registrationDomain "github.com/anylai/signup/internal/registration/domain"
)

const metricsDomain = "registration"

// registrationUseCaseWithMetrics decorates RegistrationUseCase with metrics instrumentation.
type registrationUseCaseWithMetrics struct {
	next    RegistrationUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistrationUseCaseWithMetrics wraps a RegistrationUseCase with metrics recording.
func NewRegistrationUseCaseWithMetrics(
	useCase RegistrationUseCase,
	m metrics.BusinessMetrics,
) RegistrationUseCase {
	return &registrationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Apply records metrics for form changes.
func (r *registrationUseCaseWithMetrics) Apply(
	ctx context.Context,
	form registrationDomain.Form,
	change registrationDomain.Change,
) (*FormState, error) {
	start := time.Now()
	state, err := r.next.Apply(ctx, form, change)
	r.record(ctx, "registration_apply", start, statusOf(err))
	return state, err
}

// Check records metrics for form reviews. Ready forms count as "ready", the rest as "not_ready".
func (r *registrationUseCaseWithMetrics) Check(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Review, error) {
	start := time.Now()
	review, err := r.next.Check(ctx, form)

	status := statusOf(err)
	if review != nil {
		status = "not_ready"
		if review.Ready {
			status = "ready"
		}
	}

	r.record(ctx, "registration_check", start, status)
	return review, err
}

// Register records metrics for registrations.
func (r *registrationUseCaseWithMetrics) Register(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Registration, error) {
	start := time.Now()
	registration, err := r.next.Register(ctx, form)
	r.record(ctx, "registration_register", start, statusOf(err))
	return registration, err
}

func (r *registrationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	r.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	r.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
