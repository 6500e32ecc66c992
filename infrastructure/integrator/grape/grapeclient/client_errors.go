package grapeclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Erros específicos para a comunicação com a API da GrapeMedia
var (
	// Erros de sessão
	ErrNotAuthenticated = errors.New("cliente não autenticado; chame Authenticate antes de consultar a API")
	ErrMissingToken     = errors.New("resposta de login não contém o campo Token")

	// Erros de resposta
	ErrMissingRows = errors.New("resposta não contém o campo Rows")
)

// maxBodySnippet limita o trecho do corpo carregado no erro
const maxBodySnippet = 512

// HTTPError representa uma resposta fora da faixa 2xx. O corpo vai junto
// truncado para facilitar o diagnóstico nos logs.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implementa a interface error
func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("requisição para %s falhou com status %d: %s", e.URL, e.StatusCode, e.Body)
	}

	return fmt.Sprintf("requisição para %s falhou com status %d", e.URL, e.StatusCode)
}

// NewHTTPError cria um novo HTTPError a partir da resposta recebida
func NewHTTPError(resp *http.Response, body []byte) *HTTPError {
	snippet := string(body)
	if len(snippet) > maxBodySnippet {
		snippet = snippet[:maxBodySnippet]
	}

	requestURL := ""
	if resp.Request != nil && resp.Request.URL != nil {
		requestURL = resp.Request.URL.String()
	}

	return &HTTPError{
		StatusCode: resp.StatusCode,
		URL:        requestURL,
		Body:       snippet,
	}
}

// IsAuthError verifica se o erro indica sessão ausente ou login rejeitado
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrMissingToken) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden
	}

	return false
}
