package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsUrgent  bool      `json:"is_urgent"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAnnouncement(title, content, createdBy string, isUrgent bool) (*Announcement, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if content == "" {
		return nil, errors.New("content is required")
	}

	return &Announcement{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		IsUrgent:  isUrgent,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}, nil
}
