// Package usecase renders broker profile cards.
package usecase

import (
	"context"
	"time"

	brokerDomain "github.com/anylai/signup/internal/broker/domain"
	apperrors "github.com/anylai/signup/internal/errors"
	"github.com/anylai/signup/internal/metrics"
)

// BrokerUseCase defines the broker card operations.
type BrokerUseCase interface {
	// BuildCard validates profile and renders its card.
	BuildCard(ctx context.Context, profile brokerDomain.Profile) (*brokerDomain.Card, error)
}

type brokerUseCase struct{}

// NewBrokerUseCase creates a new BrokerUseCase.
func NewBrokerUseCase() BrokerUseCase {
	return &brokerUseCase{}
}

// BuildCard validates profile and renders its card.
func (b *brokerUseCase) BuildCard(ctx context.Context, profile brokerDomain.Profile) (*brokerDomain.Card, error) {
	if err := profile.Validate(); err != nil {
		return nil, apperrors.Wrap(brokerDomain.ErrInvalidProfile, err.Error())
	}

	card := brokerDomain.NewCard(profile)
	return &card, nil
}

type brokerUseCaseWithMetrics struct {
	next    BrokerUseCase
	metrics metrics.BusinessMetrics
}

// NewBrokerUseCaseWithMetrics wraps a BrokerUseCase with metrics recording.
func NewBrokerUseCaseWithMetrics(useCase BrokerUseCase, m metrics.BusinessMetrics) BrokerUseCase {
	return &brokerUseCaseWithMetrics{next: useCase, metrics: m}
}

// BuildCard records metrics for card rendering.
func (b *brokerUseCaseWithMetrics) BuildCard(
	ctx context.Context,
	profile brokerDomain.Profile,
) (*brokerDomain.Card, error) {
	start := time.Now()
	card, err := b.next.BuildCard(ctx, profile)

	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, "broker", "broker_card", status)
	b.metrics.RecordDuration(ctx, "broker", "broker_card", time.Since(start), status)
	return card, err
}
