package app

import (
	"fmt"

	brokerHTTP "github.com/anylai/signup/internal/broker/http"
	brokerUseCase "github.com/anylai/signup/internal/broker/usecase"
)

// BrokerUseCase returns the broker card use case.
func (c *Container) BrokerUseCase() (brokerUseCase.BrokerUseCase, error) {
	var err error
	c.brokerUseCaseInit.Do(func() {
		c.brokerUseCase, err = c.initBrokerUseCase()
		if err != nil {
			c.setInitError("brokerUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("brokerUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.brokerUseCase, nil
}

// BrokerHandler returns the HTTP handler for broker cards.
func (c *Container) BrokerHandler() (*brokerHTTP.BrokerHandler, error) {
	var err error
	c.brokerHandlerInit.Do(func() {
		c.brokerHandler, err = c.initBrokerHandler()
		if err != nil {
			c.setInitError("brokerHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("brokerHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.brokerHandler, nil
}

func (c *Container) initBrokerUseCase() (brokerUseCase.BrokerUseCase, error) {
	baseUseCase := brokerUseCase.NewBrokerUseCase()

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for broker use case: %w", err)
		}
		return brokerUseCase.NewBrokerUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initBrokerHandler() (*brokerHTTP.BrokerHandler, error) {
	useCase, err := c.BrokerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get broker use case for broker handler: %w", err)
	}
	return brokerHTTP.NewBrokerHandler(useCase, c.Logger()), nil
}
