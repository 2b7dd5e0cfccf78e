package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Testimony struct {
	ID         string    `json:"id"`
	MemberID   string    `json:"member_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"is_approved"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewTestimony(memberID, title, content string) (*Testimony, error) {
	if memberID == "" {
		return nil, errors.New("member_id is required")
	}
	if title == "" {
		return nil, errors.New("title is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	return &Testimony{
		ID:         uuid.New().String(),
		MemberID:   memberID,
		Title:      title,
		Content:    content,
		AuthorName: UnknownAuthorName,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}, nil
}
