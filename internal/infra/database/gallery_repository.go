package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adbonpastor/church-api/internal/entity"
)

type GalleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

func (r *GalleryRepository) Create(ctx context.Context, g *entity.Gallery) error {
	query := `INSERT INTO galleries (id, title, description, event_id, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query, g.ID, g.Title, g.Description, nullable(g.EventID), g.IsActive, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery: %w", err)
	}
	return nil
}

func (r *GalleryRepository) FindActive(ctx context.Context) ([]*entity.Gallery, error) {
	query := `SELECT id, title, description, event_id, is_active, created_at, updated_at FROM galleries WHERE is_active = TRUE ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	defer rows.Close()

	var galleries []*entity.Gallery
	for rows.Next() {
		g := &entity.Gallery{}
		var eventID sql.NullString
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &eventID, &g.IsActive, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery: %w", err)
		}
		g.EventID = eventID.String
		galleries = append(galleries, g)
	}
	return galleries, rows.Err()
}

func (r *GalleryRepository) AddPhoto(ctx context.Context, p *entity.GalleryPhoto) error {
	query := `INSERT INTO gallery_photos (id, gallery_id, photo_url, caption, is_approved, uploaded_by, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.GalleryID, p.PhotoURL, p.Caption, p.IsApproved, p.UploadedBy, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add gallery photo: %w", err)
	}
	return nil
}

func (r *GalleryRepository) FindPhotos(ctx context.Context, galleryID string, approvedOnly bool) ([]*entity.GalleryPhoto, error) {
	query := `SELECT id, gallery_id, photo_url, caption, is_approved, uploaded_by, created_at FROM gallery_photos WHERE gallery_id = $1`
	if approvedOnly {
		query += ` AND is_approved = TRUE`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery photos: %w", err)
	}
	defer rows.Close()

	var photos []*entity.GalleryPhoto
	for rows.Next() {
		p := &entity.GalleryPhoto{}
		if err := rows.Scan(&p.ID, &p.GalleryID, &p.PhotoURL, &p.Caption, &p.IsApproved, &p.UploadedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *GalleryRepository) ApprovePhoto(ctx context.Context, photoID string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE gallery_photos SET is_approved = TRUE WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("failed to approve photo: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM galleries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery: %w", err)
	}
	return nil
}
