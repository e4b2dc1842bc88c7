package main

import (
	"context"

	"github.com/vfg2006/invoices-api/infrastructure/database/postgres"
	"github.com/vfg2006/invoices-api/infrastructure/repository"
	"github.com/vfg2006/invoices-api/internal/api"
	"github.com/vfg2006/invoices-api/internal/config"
	"github.com/vfg2006/invoices-api/internal/scheduler"
	"github.com/vfg2006/invoices-api/internal/usecases/invoicing"
	"github.com/vfg2006/invoices-api/internal/usecases/seeding"
	"github.com/vfg2006/invoices-api/pkg/log"
)

func main() {
	// Formato dos logs antes da configuração; o nível vem do .env
	_, _ = log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar configuração")
	}

	logLevel, err := log.Setup(cfg.App.LogLevel)
	if err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando '%s'", cfg.App.LogLevel, logLevel)
	}
	log.L.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	revenueRepo := repository.NewRevenueRepository(pgConn)

	invoiceService := invoicing.NewService(invoiceRepo, customerRepo, revenueRepo)

	// O seed abre a própria conexão a cada execução
	bootstrapper := seeding.NewService(
		repository.NewSeedRepositoryOpener(cfg.Database),
		seeding.PlaceholderDataset(),
	)

	demoResetService := scheduler.NewDemoResetService(bootstrapper, cfg)
	if err := demoResetService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de reset do banco de demonstração")
	}

	server, err := api.New(cfg, bootstrapper, invoiceService, demoResetService)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao criar o servidor HTTP")
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor encerrado com erro")
	}
}

// pgconn cria o pool de conexões usado pelas rotas de fatura
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
