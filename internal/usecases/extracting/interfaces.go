package extracting

import (
	"github.com/vfg2006/grape-extractor/internal/domain"
)

// Extractor define a interface para executar uma extração completa
type Extractor interface {
	// Run executa o ciclo inteiro: janela de datas, login, descoberta de
	// unidades, extração dos detalhes e exportação do CSV
	Run() (*domain.ExtractionResult, error)
}

// RowExporter define a interface para gravar as linhas extraídas
type RowExporter interface {
	Export(rows []*domain.Record) error
}
