package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/grape-extractor/internal/scheduler"
	"github.com/vfg2006/grape-extractor/pkg/apiErrors"
)

// JobType define o tipo de job que será executado
const (
	JobTypeExtraction = "extraction"
	JobTypeAll        = "all"
)

// JobServices contém os serviços de job necessários para executar manualmente
type JobServices struct {
	ExtractionSyncService *scheduler.ExtractionSyncService
}

// RunJob executa manualmente um job específico
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunJob")

		// Obter o tipo de job da URL
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		// Validar o tipo de job
		switch jobType {
		case JobTypeExtraction, JobTypeAll:
			if services.ExtractionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de extração não disponível", nil)
				return
			}
			services.ExtractionSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: extraction, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetJobsStatus retorna o status dos jobs agendados
func GetJobsStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetJobsStatus")

		if services.ExtractionSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de extração não disponível", nil)
			return
		}

		status := map[string]any{
			"extraction": services.ExtractionSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
