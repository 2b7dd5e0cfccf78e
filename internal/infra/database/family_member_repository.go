package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type FamilyMemberRepository struct {
	DB *sql.DB
}

func NewFamilyMemberRepository(db *sql.DB) *FamilyMemberRepository {
	return &FamilyMemberRepository{DB: db}
}

func (r *FamilyMemberRepository) Create(ctx context.Context, fm *entity.FamilyMember) error {
	query := `INSERT INTO family_members (id, main_member_id, full_name, birth_date, relationship, phone, address, city, zip_code, country, church_name, document_type, document_number, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.DB.ExecContext(ctx, query, fm.ID, fm.MainMemberID, fm.FullName, nullable(fm.BirthDate), fm.Relationship, fm.Phone, fm.Address, fm.City, fm.ZipCode, fm.Country, fm.ChurchName, fm.DocumentType, fm.DocumentNumber, fm.CreatedAt, fm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create family member: %w", err)
	}
	return nil
}

func (r *FamilyMemberRepository) FindByMainMemberID(ctx context.Context, mainMemberID string) ([]*entity.FamilyMember, error) {
	query := `SELECT id, main_member_id, full_name, birth_date, relationship, phone, address, city, zip_code, country, church_name, document_type, document_number, created_at, updated_at FROM family_members WHERE main_member_id = $1 ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, mainMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	defer rows.Close()
	var members []*entity.FamilyMember
	for rows.Next() {
		fm, err := scanFamilyMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan family member: %w", err)
		}
		members = append(members, fm)
	}
	return members, rows.Err()
}

func (r *FamilyMemberRepository) FindByID(ctx context.Context, id string) (*entity.FamilyMember, error) {
	query := `SELECT id, main_member_id, full_name, birth_date, relationship, phone, address, city, zip_code, country, church_name, document_type, document_number, created_at, updated_at FROM family_members WHERE id = $1`
	fm, err := scanFamilyMember(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("family member not found")
		}
		return nil, fmt.Errorf("failed to find family member: %w", err)
	}
	return fm, nil
}

func (r *FamilyMemberRepository) Update(ctx context.Context, fm *entity.FamilyMember) error {
	query := `UPDATE family_members SET full_name = $2, birth_date = $3, relationship = $4, phone = $5, address = $6, city = $7, zip_code = $8, country = $9, church_name = $10, document_type = $11, document_number = $12, updated_at = $13 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, fm.ID, fm.FullName, nullable(fm.BirthDate), fm.Relationship, fm.Phone, fm.Address, fm.City, fm.ZipCode, fm.Country, fm.ChurchName, fm.DocumentType, fm.DocumentNumber, fm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update family member: %w", err)
	}
	return nil
}

func (r *FamilyMemberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM family_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete family member: %w", err)
	}
	return nil
}

func scanFamilyMember(row rowScanner) (*entity.FamilyMember, error) {
	fm := &entity.FamilyMember{}
	var birthDate sql.NullString
	err := row.Scan(&fm.ID, &fm.MainMemberID, &fm.FullName, &birthDate, &fm.Relationship, &fm.Phone, &fm.Address, &fm.City, &fm.ZipCode, &fm.Country, &fm.ChurchName, &fm.DocumentType, &fm.DocumentNumber, &fm.CreatedAt, &fm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	fm.BirthDate = birthDate.String
	return fm, nil
}
