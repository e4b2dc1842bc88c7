package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoices-api/pkg/apiErrors"
	"github.com/vfg2006/invoices-api/pkg/log"
)

func ListInvoices(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")

		invoices, err := service.ListInvoices(r.Context(), customerID)
		if err != nil {
			writeInvoiceError(w, err, "Erro ao listar faturas")
			return
		}

		if err := writeJSON(w, http.StatusOK, invoices); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	})
}

func GetInvoice(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		invoice, err := service.GetInvoice(r.Context(), id)
		if err != nil {
			writeInvoiceError(w, err, "Erro ao buscar fatura")
			return
		}

		if err := writeJSON(w, http.StatusOK, invoice); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao codificar resposta")
		}
	})
}

// CreateInvoice recebe o formulário (customerId, amount, status) e redireciona com 303
func CreateInvoice(service invoicing.Invoicer, redirectPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateInvoice")

		form, ok := parseInvoiceForm(w, r)
		if !ok {
			return
		}

		if _, err := service.CreateInvoice(r.Context(), form); err != nil {
			writeInvoiceError(w, err, invoicing.ErrCreateInvoice.Error())
			return
		}

		http.Redirect(w, r, redirectPath, http.StatusSeeOther)
	})
}

func UpdateInvoice(service invoicing.Invoicer, redirectPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpdateInvoice")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		form, ok := parseInvoiceForm(w, r)
		if !ok {
			return
		}

		if err := service.UpdateInvoice(r.Context(), id, form); err != nil {
			writeInvoiceError(w, err, invoicing.ErrUpdateInvoice.Error())
			return
		}

		http.Redirect(w, r, redirectPath, http.StatusSeeOther)
	})
}

func DeleteInvoice(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteInvoice")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura é obrigatório", nil)
			return
		}

		if err := service.DeleteInvoice(r.Context(), id); err != nil {
			writeInvoiceError(w, err, invoicing.ErrDeleteInvoice.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// parseInvoiceForm já escreve a resposta de erro quando o formulário é rejeitado
func parseInvoiceForm(w http.ResponseWriter, r *http.Request) (*domain.InvoiceForm, bool) {
	if err := r.ParseForm(); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Formulário inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formulário inválido", nil)
		return nil, false
	}

	form, err := invoicing.ParseInvoiceForm(
		r.PostForm.Get(invoicing.FieldCustomerID),
		r.PostForm.Get(invoicing.FieldAmount),
		r.PostForm.Get(invoicing.FieldStatus),
	)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Campos da fatura inválidos", validationErr.Fields)
			return nil, false
		}

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar formulário", nil)
		return nil, false
	}

	return form, true
}

func writeInvoiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var invoiceErr *invoicing.InvoiceError
	if errors.As(err, &invoiceErr) {
		apiErr := apiErrors.FromError(invoiceErr, invoiceErr.Code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
		return
	}

	log.L.WithError(err).Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
