package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adbonpastor/church-api/internal/usecase"
)

// ValidationHandler valida o formato de um documento enquanto o usuário
// digita. Só checa formato; nada é gravado.
type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

func (h *ValidationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		DocumentType   string `json:"document_type"`
		DocumentNumber string `json:"document_number"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	valid := usecase.ValidateDocument(input.DocumentType, input.DocumentNumber)

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   valid,
		"message": usecase.DocumentValidationMessage(input.DocumentType, valid),
	})
}
