package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"` // YYYY-MM-DD
	EventTime   string    `json:"event_time"` // HH:MM, vazio = dia inteiro
	CreatedAt   time.Time `json:"created_at"`
}

func NewEvent(name, description, eventDate, eventTime string) (*Event, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if eventDate == "" {
		return nil, errors.New("event_date is required")
	}
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, errors.New("event_date must be a valid date (YYYY-MM-DD)")
	}

	return &Event{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		EventDate:   eventDate,
		EventTime:   eventTime,
		CreatedAt:   time.Now(),
	}, nil
}
