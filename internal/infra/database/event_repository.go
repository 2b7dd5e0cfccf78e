package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	query := `INSERT INTO events (id, name, description, event_date, event_time, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, e.ID, e.Name, e.Description, e.EventDate, nullable(e.EventTime), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// FindUpcoming lista eventos do dia informado em diante, em ordem de data
func (r *EventRepository) FindUpcoming(ctx context.Context, fromDate string) ([]*entity.Event, error) {
	query := `SELECT id, name, description, event_date, event_time, created_at FROM events WHERE event_date >= $1 ORDER BY event_date ASC, event_time ASC NULLS LAST`
	rows, err := r.DB.QueryContext(ctx, query, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		e := &entity.Event{}
		var eventTime sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.EventDate, &eventTime, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.EventTime = eventTime.String
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
