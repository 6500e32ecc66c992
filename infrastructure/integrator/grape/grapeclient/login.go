package grapeclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sirupsen/logrus"
)

// LoginRequest é o corpo esperado pelo endpoint de login. Os nomes dos
// campos seguem o contrato da API, em PascalCase.
type LoginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type LoginResponse struct {
	Token string `json:"Token"`
}

// Authenticate envia as credenciais e guarda o token da sessão. As demais
// operações do cliente exigem que esta chamada tenha ocorrido antes.
func (c *GrapeClient) Authenticate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Grape.BaseURL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "account", "login")

	payload, err := json.Marshal(LoginRequest{
		UserName: c.config.Extraction.Username,
		Password: c.config.Extraction.Password,
	})
	if err != nil {
		return fmt.Errorf("erro ao montar o corpo do login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.Errorf("Login rejeitado pela API. Status: %d", resp.StatusCode)
		return NewHTTPError(resp, body)
	}

	var response LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.Token == "" {
		return ErrMissingToken
	}

	c.session = &Session{Token: response.Token}

	return nil
}
