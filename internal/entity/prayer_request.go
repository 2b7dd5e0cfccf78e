package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// UnknownAuthorName é o placeholder usado quando o perfil vinculado a um
// pedido de oração ou testemunho não existe mais.
const UnknownAuthorName = "Desconhecido"

type PrayerRequest struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	Title      string    `json:"title"`
	Description string   `json:"description"`
	IsApproved bool      `json:"is_approved"`
	IsAnswered bool      `json:"is_answered"`
	AuthorName string    `json:"author_name"` // resolvido na leitura; nunca vazio
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewPrayerRequest(memberID, title, description string) (*PrayerRequest, error) {
	if memberID == "" {
		return nil, errors.New("member_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	if description == "" {
		return nil, errors.New("description is required")
	}

	return &PrayerRequest{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		Title:       title,
		Description: description,
		AuthorName:  UnknownAuthorName,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}
