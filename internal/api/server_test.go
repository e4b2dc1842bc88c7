package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoices-api/internal/config"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/internal/scheduler"
	invoicingmocks "github.com/vfg2006/invoices-api/internal/usecases/invoicing/mocks"
	seedingmocks "github.com/vfg2006/invoices-api/internal/usecases/seeding/mocks"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, seedEnabled bool) (*Server, *seedingmocks.MockBootstrapper, *invoicingmocks.MockInvoicer) {
	ctrl := gomock.NewController(t)
	mockBootstrapper := seedingmocks.NewMockBootstrapper(ctrl)
	mockInvoicer := invoicingmocks.NewMockInvoicer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		App:    config.App{InvoicesRedirectPath: "/dashboard/invoices"},
		Seed:   config.Seed{Enabled: seedEnabled, ResetCron: "0 4 * * *"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	server, err := New(cfg, mockBootstrapper, mockInvoicer, scheduler.NewDemoResetService(mockBootstrapper, cfg))
	require.NoError(t, err)

	return server, mockBootstrapper, mockInvoicer
}

func TestServer_Routes(t *testing.T) {
	server, mockBootstrapper, mockInvoicer := newTestServer(t, true)

	mockBootstrapper.EXPECT().Run(gomock.Any()).Return(&domain.SeedReport{}, nil)
	mockInvoicer.EXPECT().ListCustomers(gomock.Any()).Return([]*domain.Customer{}, nil)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/seed", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/customers", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/ui/fonts", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/cron/status", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/v1/desconhecida", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestServer_SeedDisabled(t *testing.T) {
	server, _, _ := newTestServer(t, false)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
