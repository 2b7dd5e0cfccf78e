package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidade: Member (perfil de um membro registrado da igreja)
type Member struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	BirthDate string `json:"birth_date"` // YYYY-MM-DD, vazio = não informado
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`

	ChurchName     string `json:"church_name"`
	DocumentType   string `json:"document_type"` // passport, nie, dni, cpf, other
	DocumentNumber string `json:"document_number"`

	// Gerados no registro, imutáveis depois
	MemberID        string    `json:"member_id"`
	RegisteredAt    time.Time `json:"registered_at"`
	ProfilePhotoURL string    `json:"profile_photo_url"`

	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewMember(fullName, email, memberID string) (*Member, error) {
	member := &Member{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		MemberID:     memberID,
		RegisteredAt: time.Now(),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

func (m *Member) Validate() error {
	if m.FullName == "" {
		return errors.New("full_name is required")
	}
	if m.MemberID == "" {
		return errors.New("member_id is required")
	}
	return nil
}

// Age devolve a idade em anos (ano atual - ano de nascimento, sem
// considerar mês/dia). Retorna -1 quando não há data de nascimento.
func (m *Member) Age(now time.Time) int {
	if m.BirthDate == "" {
		return -1
	}
	born, err := time.Parse("2006-01-02", m.BirthDate)
	if err != nil {
		return -1
	}
	return now.Year() - born.Year()
}
