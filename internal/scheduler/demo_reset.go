// Package scheduler contém os agendamentos da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoices-api/internal/config"
	"github.com/vfg2006/invoices-api/internal/domain"
	"github.com/vfg2006/invoices-api/internal/usecases/seeding"
	"github.com/vfg2006/invoices-api/pkg/log"
)

var ErrResetAlreadyRunning = errors.New("reset do banco de demonstração já em andamento")

type DemoResetConfig struct {
	CronSchedule string
	ResetEnabled bool
}

// DemoResetService recria periodicamente o banco de demonstração
type DemoResetService struct {
	scheduler    *gocron.Scheduler
	config       DemoResetConfig
	bootstrapper seeding.Bootstrapper

	resetRunning          bool
	resetMutex            sync.Mutex
	lastResetStartedAt    time.Time
	lastResetCompletedAt  time.Time
	lastResetReport       *domain.SeedReport
	lastResetErrorMessage string
}

func NewDemoResetService(bootstrapper seeding.Bootstrapper, cfg *config.Config) *DemoResetService {
	resetConfig := DemoResetConfig{
		CronSchedule: cfg.Seed.ResetCron,    // Default: 4h da manhã todos os dias
		ResetEnabled: cfg.Seed.ResetEnabled, // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": resetConfig.CronSchedule,
		"reset_enabled": resetConfig.ResetEnabled,
	}).Info("Configuração do agendador de reset do banco de demonstração carregada")

	return &DemoResetService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       resetConfig,
		bootstrapper: bootstrapper,
	}
}

func (s *DemoResetService) Start(ctx context.Context) error {
	if !s.config.ResetEnabled {
		logrus.Info("Reset do banco de demonstração desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reset do banco de demonstração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		jobCtx, _ := log.WithCorrelationID(ctx)
		if err := s.RunReset(jobCtx); err != nil {
			log.ForContext(jobCtx).WithError(err).Error("Erro no reset agendado do banco de demonstração")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reset do banco de demonstração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reset do banco de demonstração")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReset executa o seed completo; devolve ErrResetAlreadyRunning se houver outro em andamento
func (s *DemoResetService) RunReset(ctx context.Context) error {
	if !s.begin() {
		return ErrResetAlreadyRunning
	}

	report, err := s.bootstrapper.Run(ctx)
	s.finish(report, err)

	return err
}

// TriggerManualReset dispara o reset em background e informa se foi aceito
func (s *DemoResetService) TriggerManualReset() bool {
	if !s.begin() {
		logrus.Info("Reset do banco de demonstração já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando reset manual do banco de demonstração")

	go func() {
		ctx, _ := log.WithCorrelationID(context.Background())

		report, err := s.bootstrapper.Run(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro no reset manual do banco de demonstração")
		}
		s.finish(report, err)
	}()

	return true
}

func (s *DemoResetService) begin() bool {
	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	if s.resetRunning {
		return false
	}

	s.resetRunning = true
	s.lastResetStartedAt = time.Now()
	return true
}

func (s *DemoResetService) finish(report *domain.SeedReport, err error) {
	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	s.resetRunning = false
	s.lastResetCompletedAt = time.Now()
	s.lastResetReport = report
	s.lastResetErrorMessage = ""
	if err != nil {
		s.lastResetErrorMessage = err.Error()
	}
}

// GetStatus retorna o status atual do agendador
func (s *DemoResetService) GetStatus() map[string]any {
	s.resetMutex.Lock()
	defer s.resetMutex.Unlock()

	return map[string]any{
		"reset_enabled":           s.config.ResetEnabled,
		"reset_cron":              s.config.CronSchedule,
		"reset_running":           s.resetRunning,
		"last_reset_started_at":   s.lastResetStartedAt,
		"last_reset_completed_at": s.lastResetCompletedAt,
		"last_reset_report":       s.lastResetReport,
		"last_reset_error":        s.lastResetErrorMessage,
	}
}
