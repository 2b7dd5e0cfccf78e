package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/infra/queue"
)

type RegisterMemberUseCase struct {
	Repo         MemberRepositoryInterface
	FamilyRepo   entity.FamilyMemberRepositoryInterface
	Queue        QueueProducerInterface
	EmailService EmailService
	CardBaseURL  string
}

func NewRegisterMemberUseCase(
	repo MemberRepositoryInterface,
	familyRepo entity.FamilyMemberRepositoryInterface,
	producer QueueProducerInterface,
	emailService EmailService,
	cardBaseURL string,
) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{
		Repo:         repo,
		FamilyRepo:   familyRepo,
		Queue:        producer,
		EmailService: emailService,
		CardBaseURL:  cardBaseURL,
	}
}

func (uc *RegisterMemberUseCase) Execute(ctx context.Context, input RegisterMemberInput) (*RegisterMemberOutput, error) {

	validationErrors := ValidateRegisterMemberInput(input)
	if len(validationErrors) > 0 {

		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	now := time.Now()

	member := &entity.Member{
		ID:             uuid.New().String(),
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		BirthDate:      input.BirthDate,
		Address:        input.Address,
		City:           input.City,
		ZipCode:        input.ZipCode,
		Country:        input.Country,
		ChurchName:     input.ChurchName,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,

		// Gerados exatamente uma vez, aqui
		MemberID:        NewMemberID(),
		RegisteredAt:    now,
		ProfilePhotoURL: input.ProfilePhotoURL,

		CreatedAt: now,
		UpdatedAt: now,
	}

	familyMembers := make([]*entity.FamilyMember, 0, len(input.FamilyMembers))
	for _, fm := range input.FamilyMembers {
		familyMembers = append(familyMembers, &entity.FamilyMember{
			ID:             uuid.New().String(),
			MainMemberID:   member.ID,
			FullName:       fm.FullName,
			BirthDate:      fm.BirthDate,
			Relationship:   fm.Relationship,
			Phone:          fm.Phone,
			Address:        fm.Address,
			City:           fm.City,
			ZipCode:        fm.ZipCode,
			Country:        fm.Country,
			ChurchName:     fm.ChurchName,
			DocumentType:   fm.DocumentType,
			DocumentNumber: fm.DocumentNumber,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	txn := NewTransaction()

	txn.AddOperation("create_member", func(ctx context.Context) error {
		err := uc.Repo.Create(ctx, member)
		if errors.Is(err, entity.ErrDuplicateMemberID) {
			// Colisão de member_id: gera outro e tenta mais uma vez
			member.MemberID = NewMemberID()
			err = uc.Repo.Create(ctx, member)
		}
		return err
	})

	txn.AddCompensation("delete_member", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, member.ID)
	})

	for _, fm := range familyMembers {
		fm := fm
		txn.AddOperation("create_family_member", func(ctx context.Context) error {
			return uc.FamilyRepo.Create(ctx, fm)
		})
	}

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{
				Code:    "EMAIL_EXISTS",
				Message: "este email já está registrado",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist member and family: " + err.Error(),
		}
	}

	// Cartão de boas-vindas vai pela fila; se a fila estiver fora, o email
	// sai direto em background para não perder o cadastro
	payload := queue.WelcomePayload{
		MemberID:   member.ID,
		MemberCode: member.MemberID,
		Name:       member.FullName,
		Email:      member.Email,
		CardLink:   uc.CardBaseURL + "/" + member.MemberID,
	}

	if uc.Queue != nil {
		if err := uc.Queue.PublishWelcome(ctx, payload); err != nil && uc.EmailService != nil {
			go uc.EmailService.SendWelcome(member.Email, member.FullName, member.MemberID, payload.CardLink)
		}
	} else if uc.EmailService != nil {
		go uc.EmailService.SendWelcome(member.Email, member.FullName, member.MemberID, payload.CardLink)
	}

	return &RegisterMemberOutput{
		ID:           member.ID,
		MemberID:     member.MemberID,
		FullName:     member.FullName,
		RegisteredAt: member.RegisteredAt.Format(time.RFC3339),
		FamilyCount:  len(familyMembers),
		Msg:          "Cadastro realizado com sucesso!",
	}, nil
}
