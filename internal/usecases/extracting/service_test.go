package extracting

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	grapemocks "github.com/vfg2006/grape-extractor/infrastructure/integrator/grape/mocks"
	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/domain"
	"github.com/vfg2006/grape-extractor/internal/usecases/extracting/mocks"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func detailRow(pairs ...any) *domain.Record {
	record := domain.NewRecord()
	for i := 0; i < len(pairs); i += 2 {
		record.Set(pairs[i].(string), pairs[i+1])
	}

	return record
}

func fixedConfig(categories ...string) *config.Config {
	return &config.Config{
		Output: config.Output{Path: "/data/out/tables/grape.csv"},
		Extraction: config.Extraction{
			DateStart:  "2024-03-01",
			DateEnd:    "2024-03-03",
			Username:   "analytics",
			Password:   "s3cr3t",
			Categories: categories,
		},
	}
}

func newTestService(cfg *config.Config, grape *grapemocks.MockGrapeIntegrator, exporter *mocks.MockRowExporter) *Service {
	return &Service{
		cfg:      cfg,
		grape:    grape,
		exporter: exporter,
		now:      func() time.Time { return time.Date(2024, 3, 6, 15, 4, 5, 0, time.UTC) },
	}
}

func TestService_Run_ModoFixo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	service := newTestService(fixedConfig("ssp"), mockGrape, mockExporter)

	// Janela (2024-03-01, 2024-03-03]: dois dias, do mais recente para o mais antigo
	day3 := day(2024, 3, 3)
	day2 := day(2024, 3, 2)

	mockGrape.EXPECT().Authenticate().Return(nil)

	mockGrape.EXPECT().ListUnitIDs("ssp", day3).Return([]int64{12, 34}, nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day2).Return([]int64{34, 12}, nil)

	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), day3).
		Return([]*domain.Record{detailRow("Date", "2024-03-03", "Impressions", json.Number("100"))}, nil)
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), day2).
		Return([]*domain.Record{detailRow("Date", "2024-03-02", "Impressions", json.Number("90"))}, nil)
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(34), day3).
		Return([]*domain.Record{detailRow("Date", "2024-03-03", "Impressions", json.Number("40"))}, nil)

	// Resposta vazia em um dos dias não derruba a execução
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(34), day2).
		Return([]*domain.Record{}, nil)

	var exported []*domain.Record
	mockExporter.EXPECT().Export(gomock.Any()).
		DoAndReturn(func(rows []*domain.Record) error {
			exported = rows
			return nil
		})

	result, err := service.Run()
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.DayCount)
	assert.Equal(t, "2024-03-02", result.DateStart)
	assert.Equal(t, "2024-03-03", result.DateEnd)
	assert.Equal(t, map[string]int{"ssp": 2}, result.UnitsByCategory)
	assert.Equal(t, 3, result.RowCount)
	assert.True(t, result.Written)
	assert.Equal(t, "/data/out/tables/grape.csv", result.OutputPath)

	require.Len(t, exported, 3)

	// Cada linha é etiquetada com UnitID e Category antes dos campos da API
	first := exported[0]
	assert.Equal(t, []string{"UnitID", "Category", "Date", "Impressions"}, first.Keys())

	unitID, _ := first.Get("UnitID")
	assert.Equal(t, int64(12), unitID)

	category, _ := first.Get("Category")
	assert.Equal(t, "ssp", category)
}

func TestService_Run_DetalheComUnitIDProprio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp")
	cfg.Extraction.DateStart = "2024-03-02"
	cfg.Extraction.DateEnd = "2024-03-03"

	service := newTestService(cfg, mockGrape, mockExporter)

	day3 := day(2024, 3, 3)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day3).Return([]int64{12}, nil)

	// A própria API devolve um campo UnitID na linha de detalhe
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), day3).
		Return([]*domain.Record{detailRow("UnitID", json.Number("999"), "Clicks", json.Number("5"))}, nil)

	var exported []*domain.Record
	mockExporter.EXPECT().Export(gomock.Any()).
		DoAndReturn(func(rows []*domain.Record) error {
			exported = rows
			return nil
		})

	_, err := service.Run()
	require.NoError(t, err)
	require.Len(t, exported, 1)

	// O valor da API prevalece, mas a coluna continua na primeira posição
	row := exported[0]
	assert.Equal(t, []string{"UnitID", "Category", "Clicks"}, row.Keys())

	unitID, _ := row.Get("UnitID")
	assert.Equal(t, json.Number("999"), unitID)
}

func TestService_Run_ModoIncremental(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := &config.Config{
		Extraction: config.Extraction{
			DateType:   "incremental",
			Increment:  3,
			Username:   "analytics",
			Password:   "s3cr3t",
			Categories: []string{"ssp"},
		},
	}

	service := newTestService(cfg, mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(nil)

	// Com "agora" em 2024-03-06, a janela cobre exatamente os 3 dias que
	// terminam ontem: 05, 04 e 03 de março
	mockGrape.EXPECT().ListUnitIDs("ssp", day(2024, 3, 5)).Return([]int64{}, nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day(2024, 3, 4)).Return([]int64{}, nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day(2024, 3, 3)).Return([]int64{}, nil)

	result, err := service.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, result.DayCount)
	assert.Equal(t, "2024-03-03", result.DateStart)
	assert.Equal(t, "2024-03-05", result.DateEnd)
	assert.False(t, result.Written)
	assert.Zero(t, result.RowCount)
}

func TestService_Run_JanelaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp")
	cfg.Extraction.DateStart = "2024-03-03"
	cfg.Extraction.DateEnd = "2024-03-03"

	service := newTestService(cfg, mockGrape, mockExporter)

	// Limites iguais geram janela vazia; o login ainda acontece, mas
	// nenhuma consulta de unidade é feita
	mockGrape.EXPECT().Authenticate().Return(nil)

	result, err := service.Run()
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Zero(t, result.DayCount)
	assert.Empty(t, result.DateStart)
	assert.Empty(t, result.DateEnd)
	assert.False(t, result.Written)
}

func TestService_Run_FalhaDeAutenticacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	service := newTestService(fixedConfig("ssp"), mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(errors.New("credenciais recusadas"))

	result, err := service.Run()

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.True(t, IsNetworkStepError(err))
	assert.Contains(t, err.Error(), "credenciais recusadas")
}

func TestService_Run_ErroNaDescoberta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	service := newTestService(fixedConfig("ssp"), mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", gomock.Any()).Return(nil, errors.New("timeout"))

	result, err := service.Run()

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnitDiscovery)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "ssp", extractErr.Category)
}

func TestService_Run_ErroNosDetalhes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp")
	cfg.Extraction.DateStart = "2024-03-02"
	cfg.Extraction.DateEnd = "2024-03-03"

	service := newTestService(cfg, mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", gomock.Any()).Return([]int64{12}, nil)
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), gomock.Any()).
		Return(nil, errors.New("HTTP 500"))

	result, err := service.Run()

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDetailExtraction)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "ssp", extractErr.Category)
	assert.Equal(t, int64(12), extractErr.UnitID)
}

func TestService_Run_ErroNaExportacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp")
	cfg.Extraction.DateStart = "2024-03-02"
	cfg.Extraction.DateEnd = "2024-03-03"

	service := newTestService(cfg, mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", gomock.Any()).Return([]int64{12}, nil)
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), gomock.Any()).
		Return([]*domain.Record{detailRow("Clicks", json.Number("1"))}, nil)
	mockExporter.EXPECT().Export(gomock.Any()).Return(errors.New("disco cheio"))

	result, err := service.Run()

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExport)
	assert.False(t, IsNetworkStepError(err))
}

func TestService_Run_CategoriaSemUnidadesEhPulada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp", "sklik")
	cfg.Extraction.DateStart = "2024-03-02"
	cfg.Extraction.DateEnd = "2024-03-03"

	service := newTestService(cfg, mockGrape, mockExporter)

	day3 := day(2024, 3, 3)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day3).Return([]int64{12}, nil)
	mockGrape.EXPECT().ListUnitIDs("sklik", day3).Return([]int64{}, nil)
	mockGrape.EXPECT().ListUnitDetails("ssp", int64(12), day3).
		Return([]*domain.Record{detailRow("Clicks", json.Number("1"))}, nil)
	mockExporter.EXPECT().Export(gomock.Any()).Return(nil)

	result, err := service.Run()
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"ssp": 1, "sklik": 0}, result.UnitsByCategory)
	assert.Equal(t, 1, result.RowCount)
}

func TestService_Run_DeduplicaUnidadesEntreDias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	service := newTestService(fixedConfig("ssp"), mockGrape, mockExporter)

	day3 := day(2024, 3, 3)
	day2 := day(2024, 3, 2)

	mockGrape.EXPECT().Authenticate().Return(nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day3).Return([]int64{12, 34}, nil)
	mockGrape.EXPECT().ListUnitIDs("ssp", day2).Return([]int64{34, 56}, nil)

	type call struct {
		unitID int64
		date   time.Time
	}
	var calls []call

	mockGrape.EXPECT().ListUnitDetails("ssp", gomock.Any(), gomock.Any()).
		DoAndReturn(func(category string, unitID int64, date time.Time) ([]*domain.Record, error) {
			calls = append(calls, call{unitID: unitID, date: date})
			return []*domain.Record{detailRow("Clicks", json.Number("1"))}, nil
		}).
		Times(6)

	mockExporter.EXPECT().Export(gomock.Any()).Return(nil)

	result, err := service.Run()
	require.NoError(t, err)

	// Unidades na ordem da primeira aparição, cada uma consultada em todos
	// os dias da janela
	expected := []call{
		{unitID: 12, date: day3},
		{unitID: 12, date: day2},
		{unitID: 34, date: day3},
		{unitID: 34, date: day2},
		{unitID: 56, date: day3},
		{unitID: 56, date: day2},
	}
	assert.Equal(t, expected, calls)
	assert.Equal(t, map[string]int{"ssp": 3}, result.UnitsByCategory)
	assert.Equal(t, 6, result.RowCount)
}

func TestService_Run_SemCategorias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	service := newTestService(fixedConfig(), mockGrape, mockExporter)

	mockGrape.EXPECT().Authenticate().Return(nil)

	result, err := service.Run()
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.Zero(t, result.RowCount)
	assert.Empty(t, result.UnitsByCategory)
}

func TestService_Run_JanelaInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGrape := grapemocks.NewMockGrapeIntegrator(ctrl)
	mockExporter := mocks.NewMockRowExporter(ctrl)

	cfg := fixedConfig("ssp")
	cfg.Extraction.DateStart = "03/01/2024"

	service := newTestService(cfg, mockGrape, mockExporter)

	result, err := service.Run()

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDateWindow)
}
