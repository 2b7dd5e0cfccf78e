package usecase

import (
	"context"
	"errors"

	"github.com/adbonpastor/church-api/internal/entity"
)

type RetreatSignupUseCase struct {
	Repo       RetreatRepositoryInterface
	MemberRepo MemberRepositoryInterface
}

func NewRetreatSignupUseCase(repo RetreatRepositoryInterface, memberRepo MemberRepositoryInterface) *RetreatSignupUseCase {
	return &RetreatSignupUseCase{Repo: repo, MemberRepo: memberRepo}
}

func (uc *RetreatSignupUseCase) Execute(ctx context.Context, input RetreatSignupInput) (*RetreatSignupOutput, error) {

	if _, err := uc.MemberRepo.FindByID(ctx, input.MemberID); err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			return nil, &DomainError{Code: "MEMBER_NOT_FOUND", Message: "membro não encontrado"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	// Uma inscrição por membro
	if existing, err := uc.Repo.FindByMemberID(ctx, input.MemberID); err == nil && existing != nil {
		return nil, &DomainError{
			Code:    "ALREADY_REGISTERED",
			Message: "membro já inscrito no retiro",
		}
	}

	registration, err := entity.NewRetreatRegistration(input.MemberID, input.PaymentMethod, input.PaymentType)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	registration.PaymentProofURL = input.PaymentProofURL

	if err := uc.Repo.Create(ctx, registration); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist retreat registration: " + err.Error(),
		}
	}

	return &RetreatSignupOutput{
		ID:     registration.ID,
		Status: registration.Status,
		Msg:    "Inscrição no retiro realizada com sucesso!",
	}, nil
}

// UpdatePaymentStatus muda o status de pagamento de uma inscrição (admin)
func (uc *RetreatSignupUseCase) UpdatePaymentStatus(ctx context.Context, registrationID, status string) error {
	if !entity.ValidPaymentStatus(status) {
		return &DomainError{Code: "INVALID_STATUS", Message: "status must be pending, confirmed or rejected"}
	}

	if err := uc.Repo.UpdateStatus(ctx, registrationID, status); err != nil {
		if errors.Is(err, entity.ErrRegistrationNotFound) {
			return &DomainError{Code: "NOT_FOUND", Message: "inscrição não encontrada"}
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
