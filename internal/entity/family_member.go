package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// FamilyMember representa um familiar vinculado a um membro titular.
// Não possui member_id próprio; pertence a exatamente um titular.
type FamilyMember struct {
	ID           string    `json:"id"`
	MainMemberID string    `json:"main_member_id"`
	FullName     string    `json:"full_name"`
	BirthDate    string    `json:"birth_date"` // YYYY-MM-DD
	Relationship string    `json:"relationship"` // FILHO, CONJUGE, PAI, MAE, etc
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	ZipCode      string    `json:"zip_code"`
	Country      string    `json:"country"`
	ChurchName   string    `json:"church_name"`
	DocumentType string    `json:"document_type"`
	DocumentNumber string  `json:"document_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewFamilyMember cria um novo familiar com validações básicas
func NewFamilyMember(mainMemberID, fullName string) (*FamilyMember, error) {
	if mainMemberID == "" {
		return nil, errors.New("main_member_id is required")
	}
	if fullName == "" {
		return nil, errors.New("full_name is required")
	}

	return &FamilyMember{
		ID:           uuid.New().String(),
		MainMemberID: mainMemberID,
		FullName:     fullName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// Persisted informa se o familiar já possui identidade no banco.
// Familiares ainda não salvos são removidos apenas da lista em memória.
func (f *FamilyMember) Persisted() bool {
	return f.ID != ""
}

// FamilyMemberRepositoryInterface define os métodos para o repositório de familiares
type FamilyMemberRepositoryInterface interface {
	Create(ctx context.Context, member *FamilyMember) error
	FindByMainMemberID(ctx context.Context, mainMemberID string) ([]*FamilyMember, error)
	FindByID(ctx context.Context, id string) (*FamilyMember, error)
	Update(ctx context.Context, member *FamilyMember) error
	Delete(ctx context.Context, id string) error
}
