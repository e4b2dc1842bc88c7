package handler

import (
	"net/http"

	"github.com/vfg2006/invoices-api/internal/ui/fonts"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoices-api/pkg/log"
)

func ListCustomers(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.ListCustomers(r.Context())
		if err != nil {
			writeInvoiceError(w, err, "Erro ao listar clientes")
			return
		}

		if err := writeJSON(w, http.StatusOK, customers); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	})
}

func ListRevenue(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revenue, err := service.ListRevenue(r.Context())
		if err != nil {
			writeInvoiceError(w, err, "Erro ao listar receita")
			return
		}

		if err := writeJSON(w, http.StatusOK, revenue); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	})
}

func ListFonts() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusOK, fonts.All()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	})
}
