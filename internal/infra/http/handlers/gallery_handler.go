package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/infra/http/middleware"
)

type GalleryRepositoryInterface interface {
	Create(ctx context.Context, g *entity.Gallery) error
	FindActive(ctx context.Context) ([]*entity.Gallery, error)
	AddPhoto(ctx context.Context, p *entity.GalleryPhoto) error
	FindPhotos(ctx context.Context, galleryID string, approvedOnly bool) ([]*entity.GalleryPhoto, error)
	ApprovePhoto(ctx context.Context, photoID string) error
	Delete(ctx context.Context, id string) error
}

type GalleryHandler struct {
	Repo    GalleryRepositoryInterface
	Storage Uploader
}

func NewGalleryHandler(repo GalleryRepositoryInterface, storage Uploader) *GalleryHandler {
	return &GalleryHandler{Repo: repo, Storage: storage}
}

// Create (POST /admin/galleries)
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		EventID     string `json:"event_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	gallery, err := entity.NewGallery(input.Title, input.Description, input.EventID)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), gallery); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao criar galeria")
		return
	}

	writeJSON(w, http.StatusCreated, gallery)
}

// List (GET /galleries)
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	galleries, err := h.Repo.FindActive(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar galerias")
		return
	}

	writeJSON(w, http.StatusOK, galleries)
}

// UploadPhoto (POST /galleries/{id}/photos) manda o arquivo pro storage e
// registra a foto pendente de aprovação
func (h *GalleryHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	galleryID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "photo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "READ_ERROR", "failed to read file")
		return
	}

	url, err := h.Storage.Upload(r.Context(), "galleries/"+galleryID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		middleware.RecordIntegrationError("s3")
		writeErrorResponse(w, http.StatusBadGateway, "STORAGE_ERROR", "failed to store photo")
		return
	}

	photo, err := entity.NewGalleryPhoto(galleryID, url, r.FormValue("caption"), r.FormValue("uploaded_by"))
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.AddPhoto(r.Context(), photo); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao registrar foto")
		return
	}

	writeJSON(w, http.StatusCreated, photo)
}

// ListPhotos (GET /galleries/{id}/photos)
func (h *GalleryHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	galleryID := chi.URLParam(r, "id")
	approvedOnly := r.URL.Query().Get("all") != "true"

	photos, err := h.Repo.FindPhotos(r.Context(), galleryID, approvedOnly)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar fotos")
		return
	}

	writeJSON(w, http.StatusOK, photos)
}

// ApprovePhoto (PATCH /admin/galleries/photos/{photoId}/approve)
func (h *GalleryHandler) ApprovePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoId")

	if err := h.Repo.ApprovePhoto(r.Context(), photoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "foto não encontrada")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao aprovar foto")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"approved": true})
}
