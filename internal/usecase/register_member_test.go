package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/infra/queue"
	"github.com/adbonpastor/church-api/internal/usecase"
)

// MockMemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entity.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByMemberID(ctx context.Context, memberID string) (*entity.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFamilyMemberRepository
type MockFamilyMemberRepository struct {
	mock.Mock
}

func (m *MockFamilyMemberRepository) Create(ctx context.Context, member *entity.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyMemberRepository) FindByMainMemberID(ctx context.Context, mainMemberID string) ([]*entity.FamilyMember, error) {
	args := m.Called(ctx, mainMemberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FamilyMember), args.Error(1)
}

func (m *MockFamilyMemberRepository) FindByID(ctx context.Context, id string) (*entity.FamilyMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FamilyMember), args.Error(1)
}

func (m *MockFamilyMemberRepository) Update(ctx context.Context, member *entity.FamilyMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyMemberRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishWelcome(ctx context.Context, payload queue.WelcomePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(to, name, memberID, cardLink string) error {
	args := m.Called(to, name, memberID, cardLink)
	return args.Error(0)
}

func validRegisterInput() usecase.RegisterMemberInput {
	return usecase.RegisterMemberInput{
		FullName:       "João Silva",
		Email:          "joao@example.com",
		Phone:          "+34 612 345 678",
		BirthDate:      "1990-05-15",
		Address:        "Carrer de Sants 10",
		City:           "Barcelona",
		ZipCode:        "08014",
		Country:        "Espanha",
		ChurchName:     "AD Bon Pastor",
		DocumentType:   "nie",
		DocumentNumber: "X1234567A",
	}
}

// TestRegisterMemberSuccess - fluxo completo com familiares e fila
func TestRegisterMemberSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)
	mockQueue := new(MockQueueProducer)
	mockEmail := new(MockEmailService)

	var created *entity.Member
	mockRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Member)
	}).Return(nil)
	mockFamilyRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishWelcome", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, mockQueue, mockEmail, "https://app.example.com/card")

	input := validRegisterInput()
	input.FamilyMembers = []usecase.FamilyMemberInput{
		{FullName: "Maria Silva", BirthDate: "2015-03-10", Relationship: "FILHO"},
		{FullName: "Ana Silva", Relationship: "CONJUGE"},
	}

	output, err := uc.Execute(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.ID)
	assert.Regexp(t, `^[0-9A-Z]{9}$`, output.MemberID)
	assert.Equal(t, "João Silva", output.FullName)
	assert.Equal(t, 2, output.FamilyCount)
	assert.Equal(t, "Cadastro realizado com sucesso!", output.Msg)

	// O member_id e o registered_at saem do usecase, não do input
	assert.Equal(t, created.MemberID, output.MemberID)
	assert.False(t, created.RegisteredAt.IsZero())
	_, perr := time.Parse(time.RFC3339, output.RegisteredAt)
	assert.NoError(t, perr)

	// Campos do input passam intactos para a entidade
	assert.Equal(t, input.Email, created.Email)
	assert.Equal(t, input.BirthDate, created.BirthDate)
	assert.Equal(t, input.DocumentNumber, created.DocumentNumber)

	mockRepo.AssertNumberOfCalls(t, "Create", 1)
	mockFamilyRepo.AssertNumberOfCalls(t, "Create", 2)
	mockQueue.AssertCalled(t, "PublishWelcome", ctx, mock.Anything)
	mockEmail.AssertNotCalled(t, "SendWelcome")
}

// TestRegisterMemberValidationFailure - cadastro não chega no banco
func TestRegisterMemberValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)
	mockQueue := new(MockQueueProducer)
	mockEmail := new(MockEmailService)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, mockQueue, mockEmail, "https://app.example.com/card")

	input := validRegisterInput()
	input.Email = "" // email vazio!

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))

	mockRepo.AssertNotCalled(t, "Create")
	mockQueue.AssertNotCalled(t, "PublishWelcome")
}

// TestRegisterMemberInvalidDocument - documento preenchido com formato errado
func TestRegisterMemberInvalidDocument(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, nil, nil, "https://app.example.com/card")

	input := validRegisterInput()
	input.DocumentType = "dni"
	input.DocumentNumber = "12345678" // falta a letra

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockRepo.AssertNotCalled(t, "Create")
}

// TestRegisterMemberDuplicateMemberID - colisão de member_id gera novo e tenta de novo
func TestRegisterMemberDuplicateMemberID(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)
	mockQueue := new(MockQueueProducer)

	firstID := ""
	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrDuplicateMemberID).Once().Run(func(args mock.Arguments) {
		firstID = args.Get(1).(*entity.Member).MemberID
	})
	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	mockQueue.On("PublishWelcome", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, mockQueue, nil, "https://app.example.com/card")

	output, err := uc.Execute(ctx, validRegisterInput())

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEqual(t, firstID, output.MemberID)
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}

// TestRegisterMemberEmailExists - email duplicado vira erro de domínio
func TestRegisterMemberEmailExists(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)

	mockRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)
	mockRepo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, nil, nil, "https://app.example.com/card")

	output, err := uc.Execute(ctx, validRegisterInput())

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))

	var domainErr *usecase.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "EMAIL_EXISTS", domainErr.Code)
}

// TestRegisterMemberFamilyFailureRollback - falha num familiar desfaz o titular
func TestRegisterMemberFamilyFailureRollback(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockFamilyRepo.On("Create", ctx, mock.Anything).Return(errors.New("database error"))
	mockRepo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, nil, nil, "https://app.example.com/card")

	input := validRegisterInput()
	input.FamilyMembers = []usecase.FamilyMemberInput{{FullName: "Maria Silva"}}

	output, err := uc.Execute(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
	mockRepo.AssertCalled(t, "Delete", ctx, mock.Anything)
}

// TestRegisterMemberWithoutQueue - sem broker o cadastro continua valendo
func TestRegisterMemberWithoutQueue(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockMemberRepository)
	mockFamilyRepo := new(MockFamilyMemberRepository)
	mockEmail := new(MockEmailService)
	mockEmail.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterMemberUseCase(mockRepo, mockFamilyRepo, nil, mockEmail, "https://app.example.com/card")

	output, err := uc.Execute(ctx, validRegisterInput())

	assert.NoError(t, err)
	assert.NotNil(t, output)
}
