package zippopotam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.zippopotam.us"

// Países aceitos no formulário de registro e seus códigos ISO.
// País fora da tabela não dispara consulta nenhuma.
var countryCodes = map[string]string{
	"Espanha":      "ES",
	"Portugal":     "PT",
	"França":       "FR",
	"Alemanha":     "DE",
	"Itália":       "IT",
	"Reino Unido":  "GB",
	"Bélgica":      "BE",
	"Holanda":      "NL",
	"Países Baixos": "NL",
	"Suíça":        "CH",
	"Áustria":      "AT",
	"Suécia":       "SE",
	"Noruega":      "NO",
	"Dinamarca":    "DK",
	"Finlândia":    "FI",
	"Irlanda":      "IE",
	"Polónia":      "PL",
}

// CountryCode devolve o código ISO de um país conhecido
func CountryCode(country string) (string, bool) {
	code, ok := countryCodes[country]
	return code, ok
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Municipality resolve o município de um código postal para preencher o
// campo cidade do formulário. Qualquer falha (país desconhecido, rede,
// código inexistente) devolve string vazia: o cadastro nunca depende disso.
func (c *Client) Municipality(ctx context.Context, country, postalCode string) string {
	code, ok := CountryCode(country)
	if !ok || postalCode == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, code, url.PathEscape(postalCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var data lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ""
	}

	if len(data.Places) == 0 {
		return ""
	}
	return data.Places[0].PlaceName
}
