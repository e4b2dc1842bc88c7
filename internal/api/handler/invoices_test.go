package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoices-api/internal/api/handler/router"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing/mocks"
	"github.com/vfg2006/invoices-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	testRedirectPath = "/dashboard/invoices"
	testCustomerID   = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	testInvoiceID    = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
)

func newInvoiceRouter(t *testing.T) (http.Handler, *mocks.MockInvoicer) {
	ctrl := gomock.NewController(t)
	mockInvoicer := mocks.NewMockInvoicer(ctrl)

	rt := router.New(
		router.WithRoutes(Invoices(mockInvoicer, testRedirectPath)...),
		router.WithRoutes(Customers(mockInvoicer)...),
		router.WithRoutes(Revenue(mockInvoicer)...),
	)

	return rt, mockInvoicer
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateInvoice(t *testing.T) {
	t.Run("Formulário válido grava em centavos e redireciona", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)

		mockInvoicer.EXPECT().CreateInvoice(gomock.Any(), &domain.InvoiceForm{
			CustomerID:  testCustomerID,
			AmountCents: 1999,
			Status:      domain.InvoiceStatusPending,
		}).Return(&domain.Invoice{ID: testInvoiceID}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(http.MethodPost, "/v1/invoices", url.Values{
			"customerId": {testCustomerID},
			"amount":     {"19.99"},
			"status":     {"pending"},
		}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, testRedirectPath, rec.Header().Get("Location"))
	})

	t.Run("Valor negativo não chega ao serviço", func(t *testing.T) {
		rt, _ := newInvoiceRouter(t)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(http.MethodPost, "/v1/invoices", url.Values{
			"customerId": {testCustomerID},
			"amount":     {"-5"},
			"status":     {"pending"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidRequest, body.Code)
		assert.Equal(t, map[string]any{"amount": []any{"Amount must be greater than 0"}}, body.Details)
	})

	t.Run("Falha no banco devolve erro genérico", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)

		mockInvoicer.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(nil, invoicing.NewInvoiceError(invoicing.ErrCreateInvoice, apiErrors.ErrDatabaseOperation, ""))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(http.MethodPost, "/v1/invoices", url.Values{
			"customerId": {testCustomerID},
			"amount":     {"10"},
			"status":     {"paid"},
		}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, body.Code)
		assert.Equal(t, "Failed to create invoice", body.Message)
	})
}

func TestUpdateInvoice(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut} {
		t.Run(method+" atualiza e redireciona", func(t *testing.T) {
			rt, mockInvoicer := newInvoiceRouter(t)

			mockInvoicer.EXPECT().UpdateInvoice(gomock.Any(), testInvoiceID, &domain.InvoiceForm{
				CustomerID:  testCustomerID,
				AmountCents: 44800,
				Status:      domain.InvoiceStatusPaid,
			}).Return(nil)

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, formRequest(method, "/v1/invoices/"+testInvoiceID, url.Values{
				"customerId": {testCustomerID},
				"amount":     {"448"},
				"status":     {"paid"},
			}))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, testRedirectPath, rec.Header().Get("Location"))
		})
	}

	t.Run("Fatura inexistente", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)

		mockInvoicer.EXPECT().UpdateInvoice(gomock.Any(), testInvoiceID, gomock.Any()).
			Return(invoicing.NewInvoiceError(invoicing.ErrInvoiceNotFound, apiErrors.ErrInvoiceNotFound, testInvoiceID))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(http.MethodPut, "/v1/invoices/"+testInvoiceID, url.Values{
			"customerId": {testCustomerID},
			"amount":     {"1"},
			"status":     {"paid"},
		}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrInvoiceNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("Status inválido", func(t *testing.T) {
		rt, _ := newInvoiceRouter(t)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, formRequest(http.MethodPut, "/v1/invoices/"+testInvoiceID, url.Values{
			"customerId": {testCustomerID},
			"amount":     {"1"},
			"status":     {"overdue"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeAPIError(t, rec)
		assert.Contains(t, body.Details, "status")
	})
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("Remove e responde 204", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)
		mockInvoicer.EXPECT().DeleteInvoice(gomock.Any(), testInvoiceID).Return(nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/invoices/"+testInvoiceID, nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Erro inesperado", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)
		mockInvoicer.EXPECT().DeleteInvoice(gomock.Any(), testInvoiceID).Return(errors.New("boom"))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/invoices/"+testInvoiceID, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
	})
}

func TestListAndGetInvoices(t *testing.T) {
	invoice := &domain.Invoice{
		ID:         testInvoiceID,
		CustomerID: testCustomerID,
		Amount:     15795,
		Status:     domain.InvoiceStatusPending,
		Date:       time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Lista filtrando por cliente", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)
		mockInvoicer.EXPECT().ListInvoices(gomock.Any(), testCustomerID).Return([]*domain.Invoice{invoice}, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/invoices?customer_id="+testCustomerID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Invoice
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, int64(15795), got[0].Amount)
	})

	t.Run("Busca por ID", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)
		mockInvoicer.EXPECT().GetInvoice(gomock.Any(), testInvoiceID).Return(invoice, nil)

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/invoices/"+testInvoiceID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("Cliente e receita", func(t *testing.T) {
		rt, mockInvoicer := newInvoiceRouter(t)
		mockInvoicer.EXPECT().ListCustomers(gomock.Any()).Return([]*domain.Customer{{ID: testCustomerID, Name: "Delba de Oliveira"}}, nil)
		mockInvoicer.EXPECT().ListRevenue(gomock.Any()).
			Return(nil, invoicing.NewInvoiceError(invoicing.ErrFetchRevenue, apiErrors.ErrDatabaseOperation, ""))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/customers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Delba de Oliveira")

		rec = httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/revenue", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch revenue", decodeAPIError(t, rec).Message)
	})
}
