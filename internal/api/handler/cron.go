package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoices-api/internal/scheduler"
	"github.com/vfg2006/invoices-api/pkg/apiErrors"
	"github.com/vfg2006/invoices-api/pkg/log"
)

// CronJobTypeDemoReset recria o banco de demonstração
const CronJobTypeDemoReset = "demo-reset"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DemoResetService *scheduler.DemoResetService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var started bool
		switch cronType {
		case CronJobTypeDemoReset:
			if services.DemoResetService == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de reset do banco de demonstração não disponível", nil)
				return
			}
			started = services.DemoResetService.TriggerManualReset()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: demo-reset", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		response := map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		}
		if err := writeJSON(w, http.StatusAccepted, response); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DemoResetService != nil {
			status[CronJobTypeDemoReset] = services.DemoResetService.GetStatus()
		}

		if err := writeJSON(w, http.StatusOK, status); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	}
}
