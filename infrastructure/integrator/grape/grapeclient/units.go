package grapeclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	grapedomain "github.com/vfg2006/grape-extractor/infrastructure/integrator/grape/domain"
)

type ResponseUnits struct {
	Rows []grapedomain.UnitRow `json:"Rows"`
}

// GetUnits lista as unidades de uma categoria no dia informado. Com date
// nulo a API devolve a listagem sem recorte de período.
func (c *GrapeClient) GetUnits(category string, date *time.Time) ([]grapedomain.UnitRow, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Grape.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	// A barra final faz parte do contrato do endpoint de listagem
	endpoint.Path = path.Join(endpoint.Path, category, "unit") + "/"

	applyDateParams(endpoint, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", c.session.AuthorizationHeader())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, NewHTTPError(resp, body)
	}

	var response ResponseUnits
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Rows == nil {
		return nil, ErrMissingRows
	}

	return response.Rows, nil
}
