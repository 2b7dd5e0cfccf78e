package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type TestimonyRepository struct {
	DB *sql.DB
}

func NewTestimonyRepository(db *sql.DB) *TestimonyRepository {
	return &TestimonyRepository{DB: db}
}

func (r *TestimonyRepository) Create(ctx context.Context, t *entity.Testimony) error {
	query := `INSERT INTO testimonies (id, member_id, title, content, is_approved, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query, t.ID, t.MemberID, t.Title, t.Content, t.IsApproved, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create testimony: %w", err)
	}
	return nil
}

func (r *TestimonyRepository) FindAll(ctx context.Context, approvedOnly bool) ([]*entity.Testimony, error) {
	query := `
		SELECT t.id, t.member_id, t.title, t.content, t.is_approved,
			COALESCE(m.full_name, ''), t.created_at, t.updated_at
		FROM testimonies t
		LEFT JOIN members m ON m.id = t.member_id
	`
	if approvedOnly {
		query += ` WHERE t.is_approved = TRUE`
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonies: %w", err)
	}
	defer rows.Close()

	var testimonies []*entity.Testimony
	for rows.Next() {
		t := &entity.Testimony{}
		if err := rows.Scan(&t.ID, &t.MemberID, &t.Title, &t.Content, &t.IsApproved, &t.AuthorName, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimony: %w", err)
		}
		if t.AuthorName == "" {
			t.AuthorName = entity.UnknownAuthorName
		}
		testimonies = append(testimonies, t)
	}
	return testimonies, rows.Err()
}

func (r *TestimonyRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE testimonies SET is_approved = $2, updated_at = NOW() WHERE id = $1`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to update testimony: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TestimonyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM testimonies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimony: %w", err)
	}
	return nil
}
