package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	"github.com/anylai/signup/internal/document/usecase"
	usecaseMocks "github.com/anylai/signup/internal/document/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectRecord(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "document", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "document", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestDocumentUseCaseWithMetrics_Format(t *testing.T) {
	ctx := context.Background()

	t.Run("Format_Success", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockDocumentUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewDocumentUseCaseWithMetrics(mockNext, mockMetrics)

		expected := &usecase.FormattedDocument{
			Kind:   documentDomain.KindIndividual,
			Digits: "123",
			Masked: "123",
		}
		mockNext.On("Format", ctx, documentDomain.KindIndividual, "123").Return(expected, nil).Once()
		expectRecord(ctx, mockMetrics, "document_format", "success")

		result, err := uc.Format(ctx, documentDomain.KindIndividual, "123")

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Format_Error", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockDocumentUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewDocumentUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Format", ctx, documentDomain.Kind("x"), "1").Return(nil, documentDomain.ErrInvalidKind).Once()
		expectRecord(ctx, mockMetrics, "document_format", "error")

		result, err := uc.Format(ctx, documentDomain.Kind("x"), "1")

		assert.ErrorIs(t, err, documentDomain.ErrInvalidKind)
		assert.Nil(t, result)
		mockMetrics.AssertExpectations(t)
	})
}

func TestDocumentUseCaseWithMetrics_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("Validate_RecordsFieldStatus", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockDocumentUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewDocumentUseCaseWithMetrics(mockNext, mockMetrics)

		expected := documentDomain.Validate(documentDomain.KindIndividual, "123")
		mockNext.On("Validate", ctx, documentDomain.KindIndividual, "123").Return(&expected, nil).Once()
		expectRecord(ctx, mockMetrics, "document_validate", "incomplete")

		result, err := uc.Validate(ctx, documentDomain.KindIndividual, "123")

		assert.NoError(t, err)
		assert.Equal(t, &expected, result)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Validate_Error", func(t *testing.T) {
		mockNext := usecaseMocks.NewMockDocumentUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		uc := usecase.NewDocumentUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Validate", ctx, documentDomain.Kind(""), "").Return(nil, documentDomain.ErrInvalidKind).Once()
		expectRecord(ctx, mockMetrics, "document_validate", "error")

		_, err := uc.Validate(ctx, documentDomain.Kind(""), "")

		assert.Error(t, err)
		mockMetrics.AssertExpectations(t)
	})
}

func TestDocumentUseCaseWithMetrics_FormatPhoneAndField(t *testing.T) {
	ctx := context.Background()
	mockNext := usecaseMocks.NewMockDocumentUseCase(t)
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewDocumentUseCaseWithMetrics(mockNext, mockMetrics)

	phone := &usecase.FormattedPhone{Digits: "11", Masked: "11", Shape: documentDomain.PhoneFixedLine}
	field := &usecase.FormattedField{Mask: documentDomain.MaskNone, Value: "a", Display: "a"}

	mockNext.On("FormatPhone", ctx, "11").Return(phone, nil).Once()
	mockNext.On("FormatField", ctx, documentDomain.MaskNone, "a").Return(field, nil).Once()
	expectRecord(ctx, mockMetrics, "phone_format", "success")
	expectRecord(ctx, mockMetrics, "field_format", "success")

	gotPhone, err := uc.FormatPhone(ctx, "11")
	assert.NoError(t, err)
	assert.Equal(t, phone, gotPhone)

	gotField, err := uc.FormatField(ctx, documentDomain.MaskNone, "a")
	assert.NoError(t, err)
	assert.Equal(t, field, gotField)

	mockMetrics.AssertExpectations(t)
}
