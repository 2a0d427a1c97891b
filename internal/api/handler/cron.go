package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/ad-extractor-api/internal/scheduler"
	"github.com/vfg2006/ad-extractor-api/pkg/apiErrors"
)

// CronJobServices agrupa os agendadores expostos pelas rotas de cron
type CronJobServices struct {
	ExtractionSyncService *scheduler.ExtractionSyncService
}

// TriggerExtractionSync dispara manualmente a sincronização de extrações
func TriggerExtractionSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := services.ExtractionSyncService.TriggerManualSync(r.Context()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "sincronização iniciada",
		})
	}
}

// ExtractionSyncStatus expõe o estado atual do agendador
func ExtractionSyncStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.ExtractionSyncService.GetStatus())
	}
}
