package exporter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/grape-extractor/internal/domain"
)

// Erros específicos para a gravação do CSV
var (
	ErrNoRows       = errors.New("nenhuma linha para exportar")
	ErrUnknownField = errors.New("campo fora do cabeçalho do CSV")
)

// CSVExporter grava os registros extraídos em um único arquivo CSV.
type CSVExporter struct {
	path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

// Export grava o arquivo inteiro de uma vez. O cabeçalho vem da ordem das
// chaves da primeira linha; as demais linhas precisam caber nesse conjunto.
// Campos ausentes viram valor vazio; campos desconhecidos interrompem a
// exportação.
func (e *CSVExporter) Export(rows []*domain.Record) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return fmt.Errorf("erro ao criar o diretório de saída: %w", err)
	}

	file, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("erro ao criar o arquivo de saída: %w", err)
	}
	defer file.Close()

	header := rows[0].Keys()

	logrus.Infof("Gravando %d linhas em %s", len(rows), e.path)

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("erro ao gravar o cabeçalho: %w", err)
	}

	fields := make([]string, len(header))

	for _, row := range rows {
		for i := range fields {
			fields[i] = ""
		}

		for _, key := range row.Keys() {
			position, ok := index[key]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, key)
			}

			value, _ := row.Get(key)
			fields[position] = formatValue(value)
		}

		if err := writer.Write(fields); err != nil {
			return fmt.Errorf("erro ao gravar a linha: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("erro ao finalizar o arquivo: %w", err)
	}

	return nil
}

// formatValue converte um valor decodificado do JSON para o texto da célula.
// json.Number preserva o literal recebido da API, sem arredondamento;
// estruturas aninhadas viram o próprio JSON compacto.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *domain.Record, []any:
		return marshalNested(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func marshalNested(value any) string {
	text, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(text)
}
