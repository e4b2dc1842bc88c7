// Package seeding recria o schema e carrega o dataset de demonstração
package seeding

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/invoices-api/infrastructure/repository"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/pkg/log"
	"github.com/vfg2006/invoices-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const passwordHashCost = 10

const (
	StepReset     = "reset"
	StepUsers     = "users"
	StepCustomers = "customers"
	StepInvoices  = "invoices"
	StepRevenue   = "revenue"
)

type Bootstrapper interface {
	Run(ctx context.Context) (*domain.SeedReport, error)
}

type Service struct {
	opener  repository.SeedRepositoryOpener
	dataset domain.SeedDataset
	now     func() time.Time

	// Execuções simultâneas são serializadas
	runMutex sync.Mutex
}

func NewService(opener repository.SeedRepositoryOpener, dataset domain.SeedDataset) Bootstrapper {
	return &Service{
		opener:  opener,
		dataset: dataset,
		now:     time.Now,
	}
}

// Run abre uma conexão dedicada, executa as etapas em ordem e fecha a conexão
// em qualquer saída. Etapas já concluídas não são revertidas se uma etapa
// posterior falhar.
func (s *Service) Run(ctx context.Context) (*domain.SeedReport, error) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	runID, err := utils.NewRunID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o ID da execução do seed")
	}

	logger := log.ForContext(ctx).WithField("run_id", runID)
	report := &domain.SeedReport{RunID: runID, StartedAt: s.now()}

	repo, err := s.opener.Open(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao abrir conexão para o seed")
		return report, errors.Wrap(err, "seeding: conexão")
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.WithError(err).Warn("Erro ao fechar conexão do seed")
		}
	}()

	steps := []struct {
		name string
		run  func() error
	}{
		{StepReset, func() (err error) {
			report.DroppedTables, err = s.Reset(ctx, repo)
			return err
		}},
		{StepUsers, func() (err error) {
			report.Users, err = s.SeedUsers(ctx, repo)
			return err
		}},
		{StepCustomers, func() (err error) {
			report.Customers, err = s.SeedCustomers(ctx, repo)
			return err
		}},
		{StepInvoices, func() (err error) {
			report.Invoices, err = s.SeedInvoices(ctx, repo)
			return err
		}},
		{StepRevenue, func() (err error) {
			report.Revenue, err = s.SeedRevenue(ctx, repo)
			return err
		}},
	}

	for _, step := range steps {
		stepStartedAt := time.Now()

		if err := step.run(); err != nil {
			logger.WithFields(log.Fields{
				"step":  step.name,
				"error": err.Error(),
			}).Error("❌ Erro no seed")
			return report, errors.Wrapf(err, "seeding: step %s", step.name)
		}

		logger.WithFields(log.Fields{
			"step":        step.name,
			"duration_ms": time.Since(stepStartedAt).Milliseconds(),
		}).Info("Etapa do seed concluída")
	}

	report.FinishedAt = s.now()
	logger.Infof("✅ Seed concluído em %s", report.FinishedAt.Sub(report.StartedAt))

	return report, nil
}

// Reset remove todas as tabelas do schema public, uma por vez
func (s *Service) Reset(ctx context.Context, repo repository.SeedRepository) ([]string, error) {
	logger := log.ForContext(ctx)
	logger.Info("🗑️ Removendo todas as tabelas...")

	tables, err := repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	dropped := make([]string, 0, len(tables))
	for _, table := range tables {
		if err := repo.DropTable(ctx, table); err != nil {
			return dropped, err
		}
		dropped = append(dropped, table)
		logger.WithField("table", table).Debugf("  ✓ Tabela removida: %s", table)
	}

	logger.Infof("✅ %d tabelas removidas", len(dropped))
	return dropped, nil
}

func (s *Service) SeedUsers(ctx context.Context, repo repository.SeedRepository) (domain.SeedStepReport, error) {
	if err := repo.EnsureUUIDExtension(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	if err := repo.CreateUsersTable(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	return insertAll(ctx, StepUsers, s.dataset.Users, func(ctx context.Context, user domain.User) (bool, error) {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), passwordHashCost)
		if err != nil {
			return false, errors.Wrapf(err, "erro ao gerar hash da senha de %s", user.Email)
		}

		user.Password = string(hashedPassword)
		return repo.InsertUser(ctx, user)
	})
}

func (s *Service) SeedCustomers(ctx context.Context, repo repository.SeedRepository) (domain.SeedStepReport, error) {
	if err := repo.EnsureUUIDExtension(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	if err := repo.CreateCustomersTable(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	return insertAll(ctx, StepCustomers, s.dataset.Customers, repo.InsertCustomer)
}

func (s *Service) SeedInvoices(ctx context.Context, repo repository.SeedRepository) (domain.SeedStepReport, error) {
	if err := repo.EnsureUUIDExtension(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	if err := repo.CreateInvoicesTable(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	return insertAll(ctx, StepInvoices, s.dataset.Invoices, repo.InsertInvoice)
}

func (s *Service) SeedRevenue(ctx context.Context, repo repository.SeedRepository) (domain.SeedStepReport, error) {
	if err := repo.CreateRevenueTable(ctx); err != nil {
		return domain.SeedStepReport{}, err
	}

	return insertAll(ctx, StepRevenue, s.dataset.Revenue, repo.InsertRevenue)
}

// insertAll dispara um insert por linha e aguarda todos; o primeiro erro cancela os demais
func insertAll[T any](
	ctx context.Context,
	step string,
	rows []T,
	insert func(context.Context, T) (bool, error),
) (domain.SeedStepReport, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var inserted atomic.Int64
	for _, row := range rows {
		group.Go(func() error {
			ok, err := insert(groupCtx, row)
			if err != nil {
				return err
			}
			if ok {
				inserted.Add(1)
			}
			return nil
		})
	}

	err := group.Wait()
	report := domain.SeedStepReport{Total: len(rows), Inserted: int(inserted.Load())}

	log.ForContext(ctx).WithFields(log.Fields{
		"step":     step,
		"total":    report.Total,
		"inserted": report.Inserted,
	}).Debugf("Linhas inseridas em %s: %d de %d", step, report.Inserted, report.Total)

	return report, err
}
