package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/invoices-api/internal/api/handler/router"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoices-api/internal/usecases/seeding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Seed(bootstrapper seeding.Bootstrapper, enabled bool) []router.Route {
	return []router.Route{
		{
			Path:    "/seed",
			Method:  http.MethodGet,
			Handler: SeedDatabase(bootstrapper, enabled),
		},
	}
}

// Invoices redireciona para redirectPath após criar ou atualizar uma fatura
func Invoices(service invoicing.Invoicer, redirectPath string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: ListInvoices(service),
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodPost,
			Handler: CreateInvoice(service, redirectPath),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodGet,
			Handler: GetInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodPost,
			Handler: UpdateInvoice(service, redirectPath),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodPut,
			Handler: UpdateInvoice(service, redirectPath),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInvoice(service),
		},
	}
}

func Customers(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(service),
		},
	}
}

func Revenue(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue",
			Method:  http.MethodGet,
			Handler: ListRevenue(service),
		},
	}
}

func Fonts() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ui/fonts",
			Method:  http.MethodGet,
			Handler: ListFonts(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// writeJSON escreve a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
