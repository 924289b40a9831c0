package app

import (
	"fmt"

	registrationHTTP "github.com/anylai/signup/internal/registration/http"
	registrationService "github.com/anylai/signup/internal/registration/service"
	registrationUseCase "github.com/anylai/signup/internal/registration/usecase"
)

// PasswordService returns the argon2id password hashing service.
func (c *Container) PasswordService() (registrationService.PasswordService, error) {
	var err error
	c.passwordServiceInit.Do(func() {
		c.passwordService, err = registrationService.NewPasswordService()
		if err != nil {
			c.setInitError("passwordService", fmt.Errorf("failed to create password service: %w", err))
		}
	})
	if storedErr := c.initError("passwordService"); storedErr != nil {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// RegistrationUseCase returns the registration use case.
func (c *Container) RegistrationUseCase() (registrationUseCase.RegistrationUseCase, error) {
	var err error
	c.registrationUseCaseInit.Do(func() {
		c.registrationUseCase, err = c.initRegistrationUseCase()
		if err != nil {
			c.setInitError("registrationUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("registrationUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.registrationUseCase, nil
}

// RegistrationHandler returns the HTTP handler for the registration form.
func (c *Container) RegistrationHandler() (*registrationHTTP.RegistrationHandler, error) {
	var err error
	c.registrationHandlerInit.Do(func() {
		c.registrationHandler, err = c.initRegistrationHandler()
		if err != nil {
			c.setInitError("registrationHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("registrationHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.registrationHandler, nil
}

func (c *Container) initRegistrationUseCase() (registrationUseCase.RegistrationUseCase, error) {
	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for registration use case: %w", err)
	}

	baseUseCase := registrationUseCase.NewRegistrationUseCase(passwordService, c.config.PasswordMinLength)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for registration use case: %w", err)
		}
		return registrationUseCase.NewRegistrationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initRegistrationHandler() (*registrationHTTP.RegistrationHandler, error) {
	useCase, err := c.RegistrationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration use case for registration handler: %w", err)
	}
	return registrationHTTP.NewRegistrationHandler(useCase, c.Logger()), nil
}
