package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/usecase"
)

// MockRetreatRepository
type MockRetreatRepository struct {
	mock.Mock
}

func (m *MockRetreatRepository) Create(ctx context.Context, r *entity.RetreatRegistration) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRetreatRepository) FindByMemberID(ctx context.Context, memberID string) (*entity.RetreatRegistration, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RetreatRegistration), args.Error(1)
}

func (m *MockRetreatRepository) FindAll(ctx context.Context) ([]*entity.RetreatRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RetreatRegistration), args.Error(1)
}

func (m *MockRetreatRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRetreatRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func TestRetreatSignupSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockMemberRepo := new(MockMemberRepository)

	mockMemberRepo.On("FindByID", ctx, "member-1").Return(&entity.Member{ID: "member-1"}, nil)
	mockRepo.On("FindByMemberID", ctx, "member-1").Return(nil, entity.ErrRegistrationNotFound)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, mockMemberRepo)

	output, err := uc.Execute(ctx, usecase.RetreatSignupInput{
		MemberID:      "member-1",
		PaymentMethod: entity.PaymentMethodBizum,
		PaymentType:   "full",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, entity.PaymentStatusPending, output.Status)
	mockRepo.AssertCalled(t, "Create", ctx, mock.Anything)
}

func TestRetreatSignupMemberNotFound(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockMemberRepo := new(MockMemberRepository)

	mockMemberRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrMemberNotFound)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, mockMemberRepo)

	output, err := uc.Execute(ctx, usecase.RetreatSignupInput{
		MemberID:      "ghost",
		PaymentMethod: entity.PaymentMethodCash,
	})

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "MEMBER_NOT_FOUND", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

// Uma inscrição por membro
func TestRetreatSignupAlreadyRegistered(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockMemberRepo := new(MockMemberRepository)

	mockMemberRepo.On("FindByID", ctx, "member-1").Return(&entity.Member{ID: "member-1"}, nil)
	mockRepo.On("FindByMemberID", ctx, "member-1").Return(&entity.RetreatRegistration{ID: "reg-1"}, nil)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, mockMemberRepo)

	output, err := uc.Execute(ctx, usecase.RetreatSignupInput{
		MemberID:      "member-1",
		PaymentMethod: entity.PaymentMethodCard,
	})

	assert.Error(t, err)
	assert.Nil(t, output)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ALREADY_REGISTERED", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestRetreatSignupInvalidPaymentMethod(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockMemberRepo := new(MockMemberRepository)

	mockMemberRepo.On("FindByID", ctx, "member-1").Return(&entity.Member{ID: "member-1"}, nil)
	mockRepo.On("FindByMemberID", ctx, "member-1").Return(nil, entity.ErrRegistrationNotFound)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, mockMemberRepo)

	output, err := uc.Execute(ctx, usecase.RetreatSignupInput{
		MemberID:      "member-1",
		PaymentMethod: "boleto",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockRepo.On("UpdateStatus", ctx, "reg-1", entity.PaymentStatusConfirmed).Return(nil)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, new(MockMemberRepository))

	assert.NoError(t, uc.UpdatePaymentStatus(ctx, "reg-1", entity.PaymentStatusConfirmed))
	mockRepo.AssertCalled(t, "UpdateStatus", ctx, "reg-1", entity.PaymentStatusConfirmed)
}

func TestUpdatePaymentStatusInvalid(t *testing.T) {
	mockRepo := new(MockRetreatRepository)
	uc := usecase.NewRetreatSignupUseCase(mockRepo, new(MockMemberRepository))

	err := uc.UpdatePaymentStatus(context.Background(), "reg-1", "paid")

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestUpdatePaymentStatusNotFound(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRetreatRepository)
	mockRepo.On("UpdateStatus", ctx, "ghost", entity.PaymentStatusRejected).Return(entity.ErrRegistrationNotFound)

	uc := usecase.NewRetreatSignupUseCase(mockRepo, new(MockMemberRepository))

	err := uc.UpdatePaymentStatus(ctx, "ghost", entity.PaymentStatusRejected)

	assert.Error(t, err)

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
