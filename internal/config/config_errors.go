package config

import (
	"errors"
	"fmt"
)

// Erros específicos para o carregamento e validação da configuração
var (
	// Erros de arquivo
	ErrConfigFileUnreadable = errors.New("não foi possível ler o arquivo de configuração")
	ErrConfigFileInvalid    = errors.New("conteúdo do arquivo de configuração inválido")

	// Erros de credenciais
	ErrMissingUsername = errors.New("parâmetro username ausente na configuração")
	ErrMissingPassword = errors.New("parâmetro #password ausente na configuração")

	// Erros de janela de extração
	ErrInvalidDateType   = errors.New("date_type desconhecido")
	ErrInvalidIncrement  = errors.New("incremento deve ser um inteiro positivo")
	ErrMissingDateBounds = errors.New("date_start e date_end são obrigatórios no modo fixo")
	ErrInvalidDateBound  = errors.New("data da janela de extração em formato inválido")
)

// ConfigError é um erro com contexto adicional para configuração
type ConfigError struct {
	Err     error  // Erro base
	Field   string // Chave de configuração envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsCredentialError verifica se o erro está relacionado a credenciais ausentes
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrMissingUsername) ||
		errors.Is(err, ErrMissingPassword)
}

// IsDateWindowError verifica se o erro está relacionado à janela de datas
func IsDateWindowError(err error) bool {
	return errors.Is(err, ErrInvalidDateType) ||
		errors.Is(err, ErrInvalidIncrement) ||
		errors.Is(err, ErrMissingDateBounds) ||
		errors.Is(err, ErrInvalidDateBound)
}

// NewConfigError cria um novo ConfigError
func NewConfigError(err error, field string, details string) *ConfigError {
	return &ConfigError{
		Err:     err,
		Field:   field,
		Details: details,
	}
}
