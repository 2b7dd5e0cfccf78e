package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/adbonpastor/church-api/internal/entity"
)

type MemberRepository struct {
	DB *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

const memberColumns = `id, full_name, email, phone, birth_date, address, city, zip_code,
	country, church_name, document_type, document_number, member_id,
	registered_at, profile_photo_url, is_admin, created_at, updated_at`

func (r *MemberRepository) Create(ctx context.Context, m *entity.Member) error {
	query := `
		INSERT INTO members (id, full_name, email, phone, birth_date, address, city,
			zip_code, country, church_name, document_type, document_number,
			member_id, registered_at, profile_photo_url, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.FullName, m.Email, m.Phone, nullable(m.BirthDate),
		m.Address, m.City, m.ZipCode, m.Country, m.ChurchName,
		m.DocumentType, m.DocumentNumber, m.MemberID, m.RegisteredAt,
		m.ProfilePhotoURL, m.IsAdmin, m.CreatedAt, m.UpdatedAt,
	)

	if err != nil {

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Duas constraints UNIQUE: email e member_id
			if pgErr.ConstraintName == "members_member_id_key" {
				return entity.ErrDuplicateMemberID
			}
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("database error creating member: %v", err)
		return err
	}

	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *MemberRepository) FindByMemberID(ctx context.Context, memberID string) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, memberID))
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *MemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count)
	return count, err
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *MemberRepository) scanOne(row rowScanner) (*entity.Member, error) {
	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, entity.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanMember(row rowScanner) (*entity.Member, error) {
	m := &entity.Member{}
	var birthDate, photoURL sql.NullString

	err := row.Scan(
		&m.ID, &m.FullName, &m.Email, &m.Phone, &birthDate,
		&m.Address, &m.City, &m.ZipCode, &m.Country, &m.ChurchName,
		&m.DocumentType, &m.DocumentNumber, &m.MemberID,
		&m.RegisteredAt, &photoURL, &m.IsAdmin, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.BirthDate = birthDate.String
	m.ProfilePhotoURL = photoURL.String
	return m, nil
}

// nullable converte string vazia em NULL para colunas de data
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
