package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

// TriggerDataReload dispara a recarga em segundo plano e responde imediatamente
func TriggerDataReload(reloader scheduler.Reloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := reloader.TriggerManualSync(r.Context())
		if errors.Is(err, scheduler.ErrReloadInProgress) {
			apiErrors.WriteError(w, apiErrors.ErrReloadInProgress, "Recarga de dados já está em execução", nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao disparar recarga de dados")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar recarga de dados", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted"})
	}
}

func GetDataReloadStatus(reloader scheduler.Reloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, reloader.GetStatus())
	}
}
