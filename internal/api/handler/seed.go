package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/invoices-api/internal/usecases/seeding"
	"github.com/vfg2006/invoices-api/pkg/log"
)

const seedSuccessMessage = "Database seeded successfully"

type seedResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SeedDatabase recria o banco de demonstração. A execução não é cancelada
// se o cliente desconectar no meio do seed.
func SeedDatabase(bootstrapper seeding.Bootstrapper, enabled bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SeedDatabase")

		if !enabled {
			writeSeedResponse(w, http.StatusForbidden, seedResponse{Error: "Seeding is disabled"})
			return
		}

		report, err := bootstrapper.Run(context.WithoutCancel(r.Context()))
		if err != nil {
			logger.WithError(err).Error("Erro ao executar o seed")
			writeSeedResponse(w, http.StatusInternalServerError, seedResponse{Error: err.Error()})
			return
		}

		logger.WithField("run_id", report.RunID).Infof(
			"Seed concluído: %d usuários, %d clientes, %d faturas, %d meses de receita",
			report.Users.Inserted, report.Customers.Inserted, report.Invoices.Inserted, report.Revenue.Inserted,
		)

		writeSeedResponse(w, http.StatusOK, seedResponse{Message: seedSuccessMessage})
	})
}

func writeSeedResponse(w http.ResponseWriter, status int, body seedResponse) {
	if err := writeJSON(w, status, body); err != nil {
		log.L.WithError(err).Warn("Erro ao codificar resposta do seed")
	}
}
