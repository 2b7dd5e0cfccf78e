package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type AnnouncementRepository struct {
	DB *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	query := `INSERT INTO announcements (id, title, content, is_urgent, created_by, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query, a.ID, a.Title, a.Content, a.IsUrgent, a.CreatedBy, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Announcement, error) {
	query := `SELECT id, title, content, is_urgent, created_by, created_at FROM announcements ORDER BY created_at DESC LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*entity.Announcement
	for rows.Next() {
		a := &entity.Announcement{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.IsUrgent, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}
