package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/domain"
	"github.com/vfg2006/grape-extractor/internal/usecases/extracting"
)

// ExtractionSyncConfig representa a configuração do agendador de extrações
type ExtractionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ExtractionSyncService gerencia o agendamento e a execução recorrente da
// extração da GrapeMedia
type ExtractionSyncService struct {
	scheduler           *gocron.Scheduler
	config              ExtractionSyncConfig
	appConfig           *config.Config
	extractor           extracting.Extractor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.ExtractionResult
	lastError           string
}

// NewExtractionSyncService cria uma nova instância do serviço de extração agendada
func NewExtractionSyncService(
	extractor extracting.Extractor,
	appConfig *config.Config,
) *ExtractionSyncService {
	// Criar a configuração com base na config global
	syncConfig := ExtractionSyncConfig{
		CronSchedule: appConfig.Sync.CronSchedule,
		SyncEnabled:  appConfig.Sync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de extrações carregada")

	return &ExtractionSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		extractor:   extractor,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ExtractionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Extração agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de extrações")

	// Agendar a extração recorrente
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runExtraction()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a extração recorrente: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de extrações")
		s.scheduler.Stop()
	}()

	return nil
}

// runExtraction executa uma extração completa, garantindo uma única
// execução por vez
func (s *ExtractionSyncService) runExtraction() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando extração agendada")

	result, err := s.extractor.Run()

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		s.lastResult = nil
	} else {
		s.lastError = ""
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Extração agendada falhou")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"run_id":   result.RunID,
		"rows":     result.RowCount,
		"written":  result.Written,
	}).Info("Extração agendada concluída")
}

// TriggerManualSync inicia manualmente uma extração
func (s *ExtractionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Extração já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando extração manual")
	go s.runExtraction()
}

// GetStatus retorna o status atual do agendador
func (s *ExtractionSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	if s.lastResult != nil {
		status["last_run_id"] = s.lastResult.RunID
		status["last_row_count"] = s.lastResult.RowCount
		status["last_written"] = s.lastResult.Written
		status["last_output_path"] = s.lastResult.OutputPath
		status["last_date_start"] = s.lastResult.DateStart
		status["last_date_end"] = s.lastResult.DateEnd
	}

	return status
}
