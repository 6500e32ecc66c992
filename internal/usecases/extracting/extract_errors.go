package extracting

import (
	"errors"
	"fmt"
)

// Erros específicos para o ciclo de extração
var (
	// Erros de preparação
	ErrDateWindow = errors.New("janela de datas da extração inválida")
	ErrGenerateID = errors.New("erro ao gerar o identificador da execução")

	// Erros de comunicação com a GrapeMedia
	ErrAuthentication   = errors.New("falha na autenticação com a API da GrapeMedia")
	ErrUnitDiscovery    = errors.New("falha ao listar as unidades de uma categoria")
	ErrDetailExtraction = errors.New("falha ao extrair os detalhes de uma unidade")

	// Erros de saída
	ErrExport = errors.New("falha ao exportar o arquivo CSV")
)

// ExtractError é um erro com contexto adicional para a extração
type ExtractError struct {
	Err      error  // Erro base
	Category string // Categoria envolvida (quando aplicável)
	UnitID   int64  // Unidade envolvida (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExtractError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExtractError) Unwrap() error {
	return e.Err
}

// IsNetworkStepError verifica se o erro veio de uma chamada à API externa
func IsNetworkStepError(err error) bool {
	return errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrUnitDiscovery) ||
		errors.Is(err, ErrDetailExtraction)
}

// NewExtractError cria um novo ExtractError
func NewExtractError(err error, details string) *ExtractError {
	return &ExtractError{
		Err:     err,
		Details: details,
	}
}

// NewCategoryExtractError cria um novo ExtractError com contexto de categoria
func NewCategoryExtractError(err error, category string, details string) *ExtractError {
	return &ExtractError{
		Err:      err,
		Category: category,
		Details:  details,
	}
}

// NewUnitExtractError cria um novo ExtractError com contexto de unidade
func NewUnitExtractError(err error, category string, unitID int64, details string) *ExtractError {
	return &ExtractError{
		Err:      err,
		Category: category,
		UnitID:   unitID,
		Details:  details,
	}
}
