package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/usecase"
)

type AnnouncementHandler struct {
	Repo usecase.AnnouncementRepositoryInterface
}

func NewAnnouncementHandler(repo usecase.AnnouncementRepositoryInterface) *AnnouncementHandler {
	return &AnnouncementHandler{Repo: repo}
}

// Create (POST /admin/announcements)
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		IsUrgent  bool   `json:"is_urgent"`
		CreatedBy string `json:"created_by"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	announcement, err := entity.NewAnnouncement(input.Title, input.Content, input.CreatedBy, input.IsUrgent)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), announcement); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao criar anúncio")
		return
	}

	writeJSON(w, http.StatusCreated, announcement)
}

// List (GET /announcements)
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.Repo.FindRecent(r.Context(), 20)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar anúncios")
		return
	}

	writeJSON(w, http.StatusOK, announcements)
}

// Delete (DELETE /admin/announcements/{id})
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao remover anúncio")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
