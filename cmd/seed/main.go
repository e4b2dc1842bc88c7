package main

import (
	"context"
	"os"

	"github.com/vfg2006/invoices-api/infrastructure/repository"
	"github.com/vfg2006/invoices-api/internal/config"
	"github.com/vfg2006/invoices-api/internal/usecases/seeding"
	"github.com/vfg2006/invoices-api/pkg/log"
	"github.com/vfg2006/invoices-api/pkg/utils"
)

// Recria o banco de demonstração uma vez e imprime o relatório
func main() {
	_, _ = log.Setup("info")
	log.L.Info("Iniciando script de seed...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Error("Erro ao carregar configuração")
		os.Exit(1)
	}

	if _, err := log.Setup(cfg.App.LogLevel); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}

	ctx, _ := log.WithCorrelationID(context.Background())

	bootstrapper := seeding.NewService(
		repository.NewSeedRepositoryOpener(cfg.Database),
		seeding.PlaceholderDataset(),
	)

	report, err := bootstrapper.Run(ctx)
	if report != nil {
		log.L.Infof("Relatório do seed:\n%s", utils.PrettyJSON(report))
	}
	if err != nil {
		log.L.WithError(err).Error("❌ Seed falhou")
		os.Exit(1)
	}

	log.L.Info("✅ Database seeded successfully")
}
