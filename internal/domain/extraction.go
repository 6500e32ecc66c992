package domain

import "time"

// ExtractionResult resume uma execução do extrator: janela de datas
// processada, unidades descobertas por categoria e o destino dos dados.
type ExtractionResult struct {
	RunID           string         `json:"run_id"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      time.Time      `json:"finished_at"`
	DateStart       string         `json:"date_start,omitempty"`
	DateEnd         string         `json:"date_end,omitempty"`
	DayCount        int            `json:"day_count"`
	UnitsByCategory map[string]int `json:"units_by_category"`
	RowCount        int            `json:"row_count"`
	OutputPath      string         `json:"output_path,omitempty"`
	Written         bool           `json:"written"`
}

func (r *ExtractionResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
