package handlers

import (
	"net/http"

	"github.com/adbonpastor/church-api/internal/usecase"
)

// LookupHandler preenche o campo cidade a partir do código postal.
// Falha da consulta externa devolve cidade vazia com 200: o formulário
// segue com o que o usuário digitou.
type LookupHandler struct {
	Postal usecase.PostalLookup
}

func NewLookupHandler(postal usecase.PostalLookup) *LookupHandler {
	return &LookupHandler{Postal: postal}
}

// HandleMunicipality (GET /lookup/municipality?country=Espanha&postal=08020)
func (h *LookupHandler) HandleMunicipality(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	postal := r.URL.Query().Get("postal")

	if country == "" || postal == "" {
		writeErrorResponse(w, http.StatusBadRequest, "MISSING_FIELDS", "country and postal are required")
		return
	}

	city := h.Postal.Municipality(r.Context(), country, postal)

	writeJSON(w, http.StatusOK, map[string]string{"city": city})
}
