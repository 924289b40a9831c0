// Package mocks provides mock implementations of the registration use case and services for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	registrationDomain "github.com/anylai/signup/internal/registration/domain"
	registrationUseCase "github.com/anylai/signup/internal/registration/usecase"
)

// MockRegistrationUseCase is a mock implementation of RegistrationUseCase for testing.
type MockRegistrationUseCase struct {
	mock.Mock
}

// NewMockRegistrationUseCase creates a mock and registers its expectation check on cleanup.
func NewMockRegistrationUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistrationUseCase {
	m := &MockRegistrationUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Apply mocks the Apply method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Apply(
	ctx context.Context,
	form registrationDomain.Form,
	change registrationDomain.Change,
) (*registrationUseCase.FormState, error) {
	args := m.Called(ctx, form, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationUseCase.FormState), args.Error(1)
}

// Check mocks the Check method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Check(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Review, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationDomain.Review), args.Error(1)
}

// Register mocks the Register method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Register(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Registration, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationDomain.Registration), args.Error(1)
}

// MockPasswordService is a mock implementation of PasswordService for testing.
type MockPasswordService struct {
	mock.Mock
}

// NewMockPasswordService creates a mock and registers its expectation check on cleanup.
func NewMockPasswordService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordService {
	m := &MockPasswordService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Hash mocks the Hash method of PasswordService.
func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// Compare mocks the Compare method of PasswordService.
func (m *MockPasswordService) Compare(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}
