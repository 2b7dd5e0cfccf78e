package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/usecase"
)

type FamilyHandler struct {
	Repo entity.FamilyMemberRepositoryInterface
}

func NewFamilyHandler(repo entity.FamilyMemberRepositoryInterface) *FamilyHandler {
	return &FamilyHandler{Repo: repo}
}

// List (GET /members/{id}/family)
func (h *FamilyHandler) List(w http.ResponseWriter, r *http.Request) {
	mainID := chi.URLParam(r, "id")

	roster := usecase.NewFamilyRoster(mainID, h.Repo)
	if err := roster.Load(r.Context()); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar familiares")
		return
	}

	writeJSON(w, http.StatusOK, roster.Members())
}

// Save (PUT /members/{id}/family) recebe a lista completa do formulário:
// quem tem id é atualizado, quem não tem é inserido
func (h *FamilyHandler) Save(w http.ResponseWriter, r *http.Request) {
	mainID := chi.URLParam(r, "id")

	var inputs []usecase.FamilyMemberInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	roster := usecase.NewFamilyRoster(mainID, h.Repo)
	if err := roster.Load(r.Context()); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao carregar familiares")
		return
	}

	for _, input := range inputs {
		// Documento preenchido tem que bater com o formato do tipo
		if !usecase.ValidateDocument(input.DocumentType, input.DocumentNumber) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				usecase.DocumentValidationMessage(input.DocumentType, false))
			return
		}

		if input.ID != "" {
			if idx := findByID(roster.Members(), input.ID); idx >= 0 {
				roster.Update(idx, input)
				continue
			}
		}
		roster.Add(input)
	}

	if err := roster.Save(r.Context()); err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao salvar familiares")
		return
	}

	writeJSON(w, http.StatusOK, roster.Members())
}

// Remove (DELETE /members/{id}/family/{index})
func (h *FamilyHandler) Remove(w http.ResponseWriter, r *http.Request) {
	mainID := chi.URLParam(r, "id")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_INDEX", "index must be a number")
		return
	}

	roster := usecase.NewFamilyRoster(mainID, h.Repo)
	if err := roster.Load(r.Context()); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao carregar familiares")
		return
	}

	if err := roster.Remove(r.Context(), index); err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeErrorResponse(w, http.StatusNotFound, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao remover familiar")
		return
	}

	writeJSON(w, http.StatusOK, roster.Members())
}

func findByID(members []*entity.FamilyMember, id string) int {
	for i, m := range members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
