package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
)

type EventRepositoryInterface interface {
	Create(ctx context.Context, e *entity.Event) error
	FindUpcoming(ctx context.Context, fromDate string) ([]*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventHandler struct {
	Repo EventRepositoryInterface
}

func NewEventHandler(repo EventRepositoryInterface) *EventHandler {
	return &EventHandler{Repo: repo}
}

// Create (POST /admin/events)
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		EventDate   string `json:"event_date"`
		EventTime   string `json:"event_time"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	event, err := entity.NewEvent(input.Name, input.Description, input.EventDate, input.EventTime)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), event); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao criar evento")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// List (GET /events) devolve o calendário de hoje em diante
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")

	events, err := h.Repo.FindUpcoming(r.Context(), today)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar eventos")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// Delete (DELETE /admin/events/{id})
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao remover evento")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
