package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/adbonpastor/church-api/internal/infra/http/middleware"
	"github.com/adbonpastor/church-api/internal/usecase"
)

type RetreatHandler struct {
	SignupUC *usecase.RetreatSignupUseCase
	Repo     usecase.RetreatRepositoryInterface
	Storage  Uploader
}

func NewRetreatHandler(uc *usecase.RetreatSignupUseCase, repo usecase.RetreatRepositoryInterface, storage Uploader) *RetreatHandler {
	return &RetreatHandler{
		SignupUC: uc,
		Repo:     repo,
		Storage:  storage,
	}
}

// Signup (POST /retreat/registrations)
func (h *RetreatHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input usecase.RetreatSignupInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.SignupUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusUnprocessableEntity
			switch domainErr.Code {
			case "MEMBER_NOT_FOUND":
				status = http.StatusNotFound
			case "ALREADY_REGISTERED":
				status = http.StatusConflict
			}
			writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	middleware.RecordRetreatSignup(input.PaymentMethod)

	writeJSON(w, http.StatusCreated, output)
}

// UploadProof (POST /retreat/registrations/{id}/proof) recebe o comprovante
// de pagamento por multipart e guarda no storage
func (h *RetreatHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "proof file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "READ_ERROR", "failed to read file")
		return
	}

	url, err := h.Storage.Upload(r.Context(), "payment-proofs/"+registrationID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		middleware.RecordIntegrationError("s3")
		writeErrorResponse(w, http.StatusBadGateway, "STORAGE_ERROR", "failed to store payment proof")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"payment_proof_url": url})
}

// List (GET /admin/retreat/registrations)
func (h *RetreatHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao listar inscrições")
		return
	}

	writeJSON(w, http.StatusOK, regs)
}

// UpdateStatus (PATCH /admin/retreat/registrations/{id}/status)
func (h *RetreatHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	registrationID := chi.URLParam(r, "id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := h.SignupUC.UpdatePaymentStatus(r.Context(), registrationID, input.Status); err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusUnprocessableEntity
			if domainErr.Code == "NOT_FOUND" {
				status = http.StatusNotFound
			}
			writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Erro ao atualizar status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": input.Status})
}
