package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Gallery struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventID     string    `json:"event_id"` // opcional
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GalleryPhoto struct {
	ID         string    `json:"id"`
	GalleryID  string    `json:"gallery_id"`
	PhotoURL   string    `json:"photo_url"`
	Caption    string    `json:"caption"`
	IsApproved bool      `json:"is_approved"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewGallery(title, description, eventID string) (*Gallery, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}

	return &Gallery{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		EventID:     eventID,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

func NewGalleryPhoto(galleryID, photoURL, caption, uploadedBy string) (*GalleryPhoto, error) {
	if galleryID == "" {
		return nil, errors.New("gallery_id is required")
	}
	if photoURL == "" {
		return nil, errors.New("photo_url is required")
	}

	return &GalleryPhoto{
		ID:         uuid.New().String(),
		GalleryID:  galleryID,
		PhotoURL:   photoURL,
		Caption:    caption,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now(),
	}, nil
}
