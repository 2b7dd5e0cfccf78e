package zippopotam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMunicipalitySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ES/08020", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"post code": "08020",
			"country": "Spain",
			"country abbreviation": "ES",
			"places": [{"place name": "Barcelona", "state": "Cataluna", "state abbreviation": "CT"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	city := client.Municipality(context.Background(), "Espanha", "08020")

	assert.Equal(t, "Barcelona", city)
}

// Código postal inexistente: a API devolve 404 e a busca vira string vazia
func TestMunicipalityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	assert.Empty(t, client.Municipality(context.Background(), "Portugal", "99999"))
}

// País fora da tabela não dispara consulta nenhuma
func TestMunicipalityUnknownCountry(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)

	assert.Empty(t, client.Municipality(context.Background(), "Atlantida", "08020"))
	assert.False(t, called)
}

func TestMunicipalityEmptyPostalCode(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")

	assert.Empty(t, client.Municipality(context.Background(), "Espanha", ""))
}

func TestMunicipalityMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	assert.Empty(t, client.Municipality(context.Background(), "Espanha", "08020"))
}

func TestCountryCode(t *testing.T) {
	code, ok := CountryCode("Espanha")
	assert.True(t, ok)
	assert.Equal(t, "ES", code)

	code, ok = CountryCode("Países Baixos")
	assert.True(t, ok)
	assert.Equal(t, "NL", code)

	_, ok = CountryCode("Atlantida")
	assert.False(t, ok)
}
