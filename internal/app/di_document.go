package app

import (
	"fmt"

	documentHTTP "github.com/anylai/signup/internal/document/http"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// DocumentUseCase returns the document formatting use case.
func (c *Container) DocumentUseCase() (documentUseCase.DocumentUseCase, error) {
	var err error
	c.documentUseCaseInit.Do(func() {
		c.documentUseCase, err = c.initDocumentUseCase()
		if err != nil {
			c.setInitError("documentUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("documentUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.documentUseCase, nil
}

// DocumentHandler returns the HTTP handler for document, phone and field formatting.
func (c *Container) DocumentHandler() (*documentHTTP.DocumentHandler, error) {
	var err error
	c.documentHandlerInit.Do(func() {
		c.documentHandler, err = c.initDocumentHandler()
		if err != nil {
			c.setInitError("documentHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("documentHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.documentHandler, nil
}

func (c *Container) initDocumentUseCase() (documentUseCase.DocumentUseCase, error) {
	baseUseCase := documentUseCase.NewDocumentUseCase()

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for document use case: %w", err)
		}
		return documentUseCase.NewDocumentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initDocumentHandler() (*documentHTTP.DocumentHandler, error) {
	useCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get document use case for document handler: %w", err)
	}
	return documentHTTP.NewDocumentHandler(useCase, c.Logger()), nil
}
