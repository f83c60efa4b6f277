// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/loading"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

var ErrReloadInProgress = errors.New("data reload already in progress")

// Reloader é o que a API precisa do agendador
type Reloader interface {
	TriggerManualSync(ctx context.Context) error
	GetStatus() domain.ReloadStatus
}

type DataReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DataReloadService struct {
	scheduler           *gocron.Scheduler
	loader              loading.Loader
	config              DataReloadConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   *time.Time
	lastSyncCompletedAt *time.Time
	lastError           string
	lastResult          *domain.LoadResult
}

func NewDataReloadService(loader loading.Loader, cfg *config.Config) *DataReloadService {
	reloadConfig := DataReloadConfig{
		CronSchedule: cfg.Data.ReloadCron,    // Default: a cada 6 horas
		SyncEnabled:  cfg.Data.ReloadEnabled, // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga de dados carregada")

	return &DataReloadService{
		scheduler: gocron.NewScheduler(time.UTC),
		loader:    loader,
		config:    reloadConfig,
	}
}

func (s *DataReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Reload(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload executa a carga de forma síncrona; execuções nunca se sobrepõem
func (s *DataReloadService) Reload(ctx context.Context) (*domain.LoadResult, error) {
	if !s.begin() {
		log.ForContext(ctx).Warn("Recarga de dados já está em execução")
		return nil, ErrReloadInProgress
	}

	result, err := s.loader.Load(ctx)
	s.finish(result, err)

	return result, err
}

// TriggerManualSync dispara a recarga em segundo plano, preservando os valores do contexto da requisição
func (s *DataReloadService) TriggerManualSync(ctx context.Context) error {
	if !s.begin() {
		return ErrReloadInProgress
	}

	log.ForContext(ctx).Info("Iniciando recarga manual de dados")

	go func() {
		result, err := s.loader.Load(context.WithoutCancel(ctx))
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro na recarga manual de dados")
		}
		s.finish(result, err)
	}()

	return nil
}

func (s *DataReloadService) GetStatus() domain.ReloadStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return domain.ReloadStatus{
		Enabled:         s.config.SyncEnabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.syncRunning,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
		LastError:       s.lastError,
		LastResult:      s.lastResult,
	}
}

func (s *DataReloadService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	now := time.Now().UTC()
	s.syncRunning = true
	s.lastSyncStartedAt = &now
	return true
}

func (s *DataReloadService) finish(result *domain.LoadResult, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	now := time.Now().UTC()
	s.syncRunning = false
	s.lastSyncCompletedAt = &now

	if err != nil {
		s.lastError = err.Error()
		return
	}

	s.lastError = ""
	s.lastResult = result
}
