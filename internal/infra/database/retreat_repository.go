package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type RetreatRepository struct {
	DB *sql.DB
}

func NewRetreatRepository(db *sql.DB) *RetreatRepository {
	return &RetreatRepository{DB: db}
}

func (r *RetreatRepository) Create(ctx context.Context, reg *entity.RetreatRegistration) error {
	query := `INSERT INTO retreat_registrations (id, member_id, payment_method, payment_type, payment_proof_url, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query, reg.ID, reg.MemberID, reg.PaymentMethod, reg.PaymentType, reg.PaymentProofURL, reg.Status, reg.CreatedAt, reg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create retreat registration: %w", err)
	}
	return nil
}

func (r *RetreatRepository) FindByMemberID(ctx context.Context, memberID string) (*entity.RetreatRegistration, error) {
	query := `SELECT id, member_id, payment_method, payment_type, payment_proof_url, status, created_at, updated_at FROM retreat_registrations WHERE member_id = $1`
	reg := &entity.RetreatRegistration{}
	err := r.DB.QueryRowContext(ctx, query, memberID).Scan(&reg.ID, &reg.MemberID, &reg.PaymentMethod, &reg.PaymentType, &reg.PaymentProofURL, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find retreat registration: %w", err)
	}
	return reg, nil
}

func (r *RetreatRepository) FindAll(ctx context.Context) ([]*entity.RetreatRegistration, error) {
	query := `SELECT id, member_id, payment_method, payment_type, payment_proof_url, status, created_at, updated_at FROM retreat_registrations ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list retreat registrations: %w", err)
	}
	defer rows.Close()

	var regs []*entity.RetreatRegistration
	for rows.Next() {
		reg := &entity.RetreatRegistration{}
		err := rows.Scan(&reg.ID, &reg.MemberID, &reg.PaymentMethod, &reg.PaymentType, &reg.PaymentProofURL, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retreat registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *RetreatRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE retreat_registrations SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return entity.ErrRegistrationNotFound
	}
	return nil
}

func (r *RetreatRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM retreat_registrations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count retreat registrations: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
