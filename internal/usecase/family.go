package usecase

import (
	"context"
	"time"

	"github.com/adbonpastor/church-api/internal/entity"
)

// FamilyRoster é a coleção de familiares de um titular, editada via
// operações explícitas em vez de estado solto no formulário. Remoção de
// familiar já persistido apaga a linha no banco antes de sair da lista;
// familiar ainda sem identidade só sai da lista em memória.
type FamilyRoster struct {
	mainMemberID string
	members      []*entity.FamilyMember
	repo         entity.FamilyMemberRepositoryInterface
}

func NewFamilyRoster(mainMemberID string, repo entity.FamilyMemberRepositoryInterface) *FamilyRoster {
	return &FamilyRoster{
		mainMemberID: mainMemberID,
		members:      []*entity.FamilyMember{},
		repo:         repo,
	}
}

// Load carrega os familiares persistidos do titular
func (r *FamilyRoster) Load(ctx context.Context) error {
	members, err := r.repo.FindByMainMemberID(ctx, r.mainMemberID)
	if err != nil {
		return err
	}
	r.members = members
	return nil
}

func (r *FamilyRoster) Members() []*entity.FamilyMember {
	return r.members
}

// Add inclui um familiar novo na lista, ainda sem identidade no banco
func (r *FamilyRoster) Add(input FamilyMemberInput) *entity.FamilyMember {
	member := &entity.FamilyMember{
		MainMemberID:   r.mainMemberID,
		FullName:       input.FullName,
		BirthDate:      input.BirthDate,
		Relationship:   input.Relationship,
		Phone:          input.Phone,
		Address:        input.Address,
		City:           input.City,
		ZipCode:        input.ZipCode,
		Country:        input.Country,
		ChurchName:     input.ChurchName,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
	}
	r.members = append(r.members, member)
	return member
}

// Update aplica os campos do input sobre o familiar na posição dada
func (r *FamilyRoster) Update(index int, input FamilyMemberInput) error {
	if index < 0 || index >= len(r.members) {
		return &DomainError{Code: "NOT_FOUND", Message: "family member not found"}
	}

	m := r.members[index]
	m.FullName = input.FullName
	m.BirthDate = input.BirthDate
	m.Relationship = input.Relationship
	m.Phone = input.Phone
	m.Address = input.Address
	m.City = input.City
	m.ZipCode = input.ZipCode
	m.Country = input.Country
	m.ChurchName = input.ChurchName
	m.DocumentType = input.DocumentType
	m.DocumentNumber = input.DocumentNumber
	return nil
}

// Remove tira o familiar da lista. Se já foi persistido, a linha do banco
// é removida primeiro; se a remoção falhar, a lista não muda.
func (r *FamilyRoster) Remove(ctx context.Context, index int) error {
	if index < 0 || index >= len(r.members) {
		return &DomainError{Code: "NOT_FOUND", Message: "family member not found"}
	}

	member := r.members[index]
	if member.Persisted() {
		if err := r.repo.Delete(ctx, member.ID); err != nil {
			return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to delete family member: " + err.Error()}
		}
	}

	r.members = append(r.members[:index], r.members[index+1:]...)
	return nil
}

// Save persiste a lista inteira: atualiza quem tem ID, insere quem não tem
func (r *FamilyRoster) Save(ctx context.Context) error {
	now := time.Now()

	for _, m := range r.members {
		if m.Persisted() {
			m.UpdatedAt = now
			if err := r.repo.Update(ctx, m); err != nil {
				return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to update family member: " + err.Error()}
			}
			continue
		}

		created, err := entity.NewFamilyMember(r.mainMemberID, m.FullName)
		if err != nil {
			return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		m.ID = created.ID
		m.CreatedAt = created.CreatedAt
		m.UpdatedAt = created.UpdatedAt
		if err := r.repo.Create(ctx, m); err != nil {
			m.ID = ""
			return &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to create family member: " + err.Error()}
		}
	}

	return nil
}
