// Package mocks provides mock implementations of the document use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// MockDocumentUseCase is a mock implementation of DocumentUseCase for testing.
type MockDocumentUseCase struct {
	mock.Mock
}

// NewMockDocumentUseCase creates a mock and registers its expectation check on cleanup.
func NewMockDocumentUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentUseCase {
	m := &MockDocumentUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Format mocks the Format method of DocumentUseCase.
func (m *MockDocumentUseCase) Format(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*documentUseCase.FormattedDocument, error) {
	args := m.Called(ctx, kind, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentUseCase.FormattedDocument), args.Error(1)
}

// Validate mocks the Validate method of DocumentUseCase.
func (m *MockDocumentUseCase) Validate(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*documentDomain.ValidationResult, error) {
	args := m.Called(ctx, kind, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentDomain.ValidationResult), args.Error(1)
}

// FormatPhone mocks the FormatPhone method of DocumentUseCase.
func (m *MockDocumentUseCase) FormatPhone(ctx context.Context, input string) (*documentUseCase.FormattedPhone, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentUseCase.FormattedPhone), args.Error(1)
}

// FormatField mocks the FormatField method of DocumentUseCase.
func (m *MockDocumentUseCase) FormatField(
	ctx context.Context,
	mask documentDomain.MaskType,
	input string,
) (*documentUseCase.FormattedField, error) {
	args := m.Called(ctx, mask, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documentUseCase.FormattedField), args.Error(1)
}
