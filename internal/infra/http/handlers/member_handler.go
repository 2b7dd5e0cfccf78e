package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/entity"
	"github.com/adbonpastor/church-api/internal/infra/http/middleware"
	"github.com/adbonpastor/church-api/internal/usecase"
)

type MemberHandler struct {
	RegisterUC *usecase.RegisterMemberUseCase
	Repo       usecase.MemberRepositoryInterface
}

func NewMemberHandler(uc *usecase.RegisterMemberUseCase, repo usecase.MemberRepositoryInterface) *MemberHandler {
	return &MemberHandler{
		RegisterUC: uc,
		Repo:       repo,
	}
}

// Register (POST /members)
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterMemberInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusUnprocessableEntity
			if domainErr.Code == "EMAIL_EXISTS" {
				status = http.StatusConflict
			}
			writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	middleware.RecordRegistration(len(input.FamilyMembers))

	writeJSON(w, http.StatusCreated, output)
}

// List (GET /admin/members)
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar membros")
		return
	}

	writeJSON(w, http.StatusOK, members)
}

// GetByMemberID (GET /members/{memberId}) busca pelo código do cartão
func (h *MemberHandler) GetByMemberID(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "memberId")
	if memberID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_ID", "member id is required")
		return
	}

	member, err := h.Repo.FindByMemberID(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "membro não encontrado")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao buscar membro")
		return
	}

	writeJSON(w, http.StatusOK, member)
}
