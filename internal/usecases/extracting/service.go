package extracting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/grape-extractor/infrastructure/integrator/grape"
	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/domain"
	"github.com/vfg2006/grape-extractor/pkg/utils"
)

// Service executa a extração de ponta a ponta contra a API da GrapeMedia.
type Service struct {
	cfg      *config.Config
	grape    grape.GrapeIntegrator
	exporter RowExporter
	now      func() time.Time
}

// NewService cria uma nova instância do serviço de extração
func NewService(cfg *config.Config, grapeService grape.GrapeIntegrator, exporter RowExporter) Extractor {
	return &Service{
		cfg:      cfg,
		grape:    grapeService,
		exporter: exporter,
		now:      time.Now,
	}
}

// Run executa as etapas em sequência. Qualquer falha de configuração,
// autenticação ou rede interrompe a execução; resultado vazio não é erro.
func (s *Service) Run() (*domain.ExtractionResult, error) {
	startedAt := s.now()

	runID, err := utils.GenerateRunID()
	if err != nil {
		return nil, NewExtractError(ErrGenerateID, err.Error())
	}

	result := &domain.ExtractionResult{
		RunID:      runID,
		StartedAt:  startedAt,
		OutputPath: s.cfg.Output.Path,
	}

	dates, err := s.extractionDates()
	if err != nil {
		return nil, err
	}

	s.logDateWindow(dates, result)

	logrus.Info("Iniciando conexão com a GrapeMedia")

	if err := s.grape.Authenticate(); err != nil {
		return nil, NewExtractError(ErrAuthentication, err.Error())
	}

	logrus.Infof("Autenticado como usuário %s", s.cfg.Extraction.Username)

	available, err := s.discoverUnits(dates)
	if err != nil {
		return nil, err
	}

	result.UnitsByCategory = make(map[string]int, len(available))
	for category, ids := range available {
		result.UnitsByCategory[category] = len(ids)
	}

	outputRows, err := s.extractDetails(dates, available)
	if err != nil {
		return nil, err
	}

	result.RowCount = len(outputRows)

	if len(outputRows) == 0 {
		logrus.Warn("A extração não produziu dados")
		result.FinishedAt = s.now()
		return result, nil
	}

	logrus.Infof("Exportando %d linhas de dados", len(outputRows))

	if err := s.exporter.Export(outputRows); err != nil {
		return nil, NewExtractError(ErrExport, err.Error())
	}

	result.Written = true
	result.FinishedAt = s.now()

	logrus.Info("Extração finalizada")

	return result, nil
}

// extractionDates monta a lista de dias a consultar, do mais recente para
// o mais antigo.
func (s *Service) extractionDates() ([]time.Time, error) {
	params := s.cfg.Extraction

	if params.Incremental() {
		// Janela relativa: os N dias anteriores, terminando ontem
		end := utils.Yesterday(s.now())
		return utils.DaysBefore(end, params.Increment), nil
	}

	start, err := utils.ParseDate(params.DateStart)
	if err != nil {
		return nil, NewExtractError(ErrDateWindow, err.Error())
	}

	end, err := utils.ParseDate(params.DateEnd)
	if err != nil {
		return nil, NewExtractError(ErrDateWindow, err.Error())
	}

	return utils.DatesBetween(start, end), nil
}

// logDateWindow registra a janela calculada e carrega os limites no
// resultado da execução. Janela vazia é um caso válido.
func (s *Service) logDateWindow(dates []time.Time, result *domain.ExtractionResult) {
	mode := s.cfg.Extraction.DateType
	if mode == "" {
		mode = "fixed"
	}

	result.DayCount = len(dates)

	if len(dates) == 0 {
		logrus.Warnf("Executando no modo de datas %s com janela vazia; nada a extrair", mode)
		return
	}

	// As datas vêm em ordem decrescente
	result.DateEnd = dates[0].Format(time.DateOnly)
	result.DateStart = dates[len(dates)-1].Format(time.DateOnly)

	logrus.Infof(
		"Executando no modo de datas %s, extraindo dados entre: %s -> %s",
		mode,
		result.DateStart,
		result.DateEnd,
	)
}

// discoverUnits lista, por categoria configurada, as unidades vistas em
// qualquer um dos dias da janela, sem repetição e na ordem da primeira
// aparição.
func (s *Service) discoverUnits(dates []time.Time) (map[string][]int64, error) {
	if len(s.cfg.Extraction.Categories) == 0 {
		logrus.Warn("Nenhuma categoria configurada para extração")
	}

	available := make(map[string][]int64)

	for _, category := range s.cfg.Extraction.Categories {
		logrus.Infof("Buscando unidades de %s", category)

		seen := make(map[int64]bool)
		ids := []int64{}

		for _, date := range dates {
			unitIDs, err := s.grape.ListUnitIDs(category, date)
			if err != nil {
				return nil, NewCategoryExtractError(ErrUnitDiscovery, category, err.Error())
			}

			for _, id := range unitIDs {
				if seen[id] {
					continue
				}

				seen[id] = true
				ids = append(ids, id)
			}
		}

		available[category] = ids
	}

	return available, nil
}

// extractDetails percorre categoria > unidade > dia e etiqueta cada linha
// com a unidade e a categoria de origem antes dos campos da própria linha.
func (s *Service) extractDetails(dates []time.Time, available map[string][]int64) ([]*domain.Record, error) {
	outputRows := []*domain.Record{}

	for _, category := range s.cfg.Extraction.Categories {
		ids := available[category]

		if len(ids) == 0 {
			logrus.Infof("Pulando %s - nenhuma unidade", category)
			continue
		}

		logrus.Infof("Extraindo %s (%d unidades)", category, len(ids))

		for _, unitID := range ids {
			for _, date := range dates {
				rows, err := s.grape.ListUnitDetails(category, unitID, date)
				if err != nil {
					return nil, NewUnitExtractError(ErrDetailExtraction, category, unitID, err.Error())
				}

				for _, row := range rows {
					tagged := domain.NewRecord()
					tagged.Set("UnitID", unitID)
					tagged.Set("Category", category)
					tagged.Merge(row)

					outputRows = append(outputRows, tagged)
				}
			}
		}
	}

	return outputRows, nil
}
