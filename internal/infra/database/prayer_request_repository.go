package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type PrayerRequestRepository struct {
	DB *sql.DB
}

func NewPrayerRequestRepository(db *sql.DB) *PrayerRequestRepository {
	return &PrayerRequestRepository{DB: db}
}

func (r *PrayerRequestRepository) Create(ctx context.Context, p *entity.PrayerRequest) error {
	query := `INSERT INTO prayer_requests (id, member_id, title, description, is_approved, is_answered, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.MemberID, p.Title, p.Description, p.IsApproved, p.IsAnswered, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create prayer request: %w", err)
	}
	return nil
}

// FindAll devolve os pedidos com o nome do autor resolvido via LEFT JOIN.
// Perfil apagado vira o placeholder, nunca um nome vazio.
func (r *PrayerRequestRepository) FindAll(ctx context.Context, approvedOnly bool) ([]*entity.PrayerRequest, error) {
	query := `
		SELECT p.id, p.member_id, p.title, p.description, p.is_approved, p.is_answered,
			COALESCE(m.full_name, ''), p.created_at, p.updated_at
		FROM prayer_requests p
		LEFT JOIN members m ON m.id = p.member_id
	`
	if approvedOnly {
		query += ` WHERE p.is_approved = TRUE`
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list prayer requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.PrayerRequest
	for rows.Next() {
		p := &entity.PrayerRequest{}
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Title, &p.Description, &p.IsApproved, &p.IsAnswered, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prayer request: %w", err)
		}
		if p.AuthorName == "" {
			p.AuthorName = entity.UnknownAuthorName
		}
		requests = append(requests, p)
	}
	return requests, rows.Err()
}

func (r *PrayerRequestRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setFlag(ctx, id, "is_approved", approved)
}

func (r *PrayerRequestRepository) SetAnswered(ctx context.Context, id string, answered bool) error {
	return r.setFlag(ctx, id, "is_answered", answered)
}

func (r *PrayerRequestRepository) setFlag(ctx context.Context, id, column string, value bool) error {
	query := fmt.Sprintf(`UPDATE prayer_requests SET %s = $2, updated_at = NOW() WHERE id = $1`, column)
	result, err := r.DB.ExecContext(ctx, query, id, value)
	if err != nil {
		return fmt.Errorf("failed to update prayer request: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PrayerRequestRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM prayer_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete prayer request: %w", err)
	}
	return nil
}
