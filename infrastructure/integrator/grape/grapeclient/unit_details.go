package grapeclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/vfg2006/grape-extractor/internal/domain"
)

// GetUnitDetails busca os dados dia a dia de uma unidade. As linhas voltam
// como registros ordenados porque a ordem das chaves do JSON define a ordem
// das colunas do CSV final.
func (c *GrapeClient) GetUnitDetails(category string, unitID int64, date *time.Time) ([]*domain.Record, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Grape.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, category, "unit", strconv.FormatInt(unitID, 10))

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

	rows, err := decodeRows(body)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return rows, nil
}
