package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adbonpastor/church-api/internal/infra/http/handlers"
)

type stubPostalLookup struct {
	city string
}

func (s stubPostalLookup) Municipality(ctx context.Context, country, postalCode string) string {
	return s.city
}

func TestLookupMunicipalitySuccess(t *testing.T) {
	handler := handlers.NewLookupHandler(stubPostalLookup{city: "Barcelona"})

	req := httptest.NewRequest("GET", "/lookup/municipality?country=Espanha&postal=08020", nil)
	w := httptest.NewRecorder()

	handler.HandleMunicipality(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Barcelona", response["city"])
}

// Consulta externa falhou: cidade vazia com 200, o formulário continua
func TestLookupMunicipalityNotFound(t *testing.T) {
	handler := handlers.NewLookupHandler(stubPostalLookup{city: ""})

	req := httptest.NewRequest("GET", "/lookup/municipality?country=Espanha&postal=99999", nil)
	w := httptest.NewRecorder()

	handler.HandleMunicipality(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.NewDecoder(w.Body).Decode(&response)
	assert.Empty(t, response["city"])
}

func TestLookupMunicipalityMissingParams(t *testing.T) {
	handler := handlers.NewLookupHandler(stubPostalLookup{})

	req := httptest.NewRequest("GET", "/lookup/municipality?country=Espanha", nil)
	w := httptest.NewRecorder()

	handler.HandleMunicipality(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
