// Package loading carrega os arquivos JSON de contas, vendedores, negócios, atividades e metas na base.
//
// A carga é idempotente: chaves já existentes são ignoradas, nunca sobrescritas.
package loading

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	EntityAccounts   = "accounts"
	EntityReps       = "reps"
	EntityDeals      = "deals"
	EntityActivities = "activities"
	EntityTargets    = "targets"
)

type Loader interface {
	Load(ctx context.Context) (*domain.LoadResult, error)
}

// Store é a parte da conexão usada pela carga
type Store interface {
	Migrate(ctx context.Context) error
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	dataDir            string
	store              Store
	accountRepository  repository.AccountRepository
	repRepository      repository.RepRepository
	dealRepository     repository.DealRepository
	activityRepository repository.ActivityRepository
	targetRepository   repository.TargetRepository
	validate           *validator.Validate
}

func NewService(
	dataDir string,
	store Store,
	accountRepository repository.AccountRepository,
	repRepository repository.RepRepository,
	dealRepository repository.DealRepository,
	activityRepository repository.ActivityRepository,
	targetRepository repository.TargetRepository,
) Loader {
	return &Service{
		dataDir:            dataDir,
		store:              store,
		accountRepository:  accountRepository,
		repRepository:      repRepository,
		dealRepository:     dealRepository,
		activityRepository: activityRepository,
		targetRepository:   targetRepository,
		validate:           newValidator(),
	}
}

// dataset guarda os registros válidos de uma execução
type dataset struct {
	accounts   []*domain.Account
	reps       []*domain.Rep
	deals      []*domain.Deal
	activities []*domain.Activity
	targets    []*domain.Target
}

func (s *Service) Load(ctx context.Context) (*domain.LoadResult, error) {
	batchID, err := utils.NewBatchID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o identificador da carga")
	}

	logger := log.ForContext(ctx).WithField("batch_id", batchID)

	if info, err := os.Stat(s.dataDir); err != nil || !info.IsDir() {
		return nil, errors.Wrapf(ErrDataDirNotFound, "diretório %q", s.dataDir)
	}

	result := &domain.LoadResult{
		BatchID:   batchID,
		StartedAt: time.Now().UTC(),
		Entities:  make(map[string]domain.EntityLoadResult, 5),
	}

	logger.Infof("Iniciando carga de dados de %s", s.dataDir)

	if err := s.store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaMigration, err)
	}

	data := &dataset{}
	var readErr error

	if data.accounts, readErr = readEntity(s, logger, result, EntityAccounts, (*accountRecord).toDomain); readErr != nil {
		return nil, readErr
	}
	if data.reps, readErr = readEntity(s, logger, result, EntityReps, (*repRecord).toDomain); readErr != nil {
		return nil, readErr
	}
	if data.deals, readErr = readEntity(s, logger, result, EntityDeals, (*dealRecord).toDomain); readErr != nil {
		return nil, readErr
	}
	if data.activities, readErr = readEntity(s, logger, result, EntityActivities, (*activityRecord).toDomain); readErr != nil {
		return nil, readErr
	}
	if data.targets, readErr = readEntity(s, logger, result, EntityTargets, (*targetRecord).toDomain); readErr != nil {
		return nil, readErr
	}

	err = s.store.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.insert(ctx, tx, data, result)
	})
	if err != nil {
		logger.WithError(err).Error("Carga de dados revertida")
		return nil, fmt.Errorf("%w: %w", ErrInsertRecords, err)
	}

	result.FinishedAt = time.Now().UTC()

	for entity, stats := range result.Entities {
		logger.WithFields(log.Fields{
			"entity":   entity,
			"read":     stats.Read,
			"invalid":  stats.Invalid,
			"inserted": stats.Inserted,
		}).Info("Entidade carregada")
	}
	logger.Infof("Carga de dados concluída em %s", result.FinishedAt.Sub(result.StartedAt))

	return result, nil
}

func (s *Service) insert(ctx context.Context, tx *sql.Tx, data *dataset, result *domain.LoadResult) error {
	steps := []struct {
		entity string
		insert func() (int64, error)
	}{
		{EntityAccounts, func() (int64, error) { return s.accountRepository.InsertMissing(ctx, tx, data.accounts) }},
		{EntityReps, func() (int64, error) { return s.repRepository.InsertMissing(ctx, tx, data.reps) }},
		{EntityDeals, func() (int64, error) { return s.dealRepository.InsertMissing(ctx, tx, data.deals) }},
		{EntityActivities, func() (int64, error) { return s.activityRepository.InsertMissing(ctx, tx, data.activities) }},
		{EntityTargets, func() (int64, error) { return s.targetRepository.InsertMissing(ctx, tx, data.targets) }},
	}

	for _, step := range steps {
		inserted, err := step.insert()
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir %s", step.entity)
		}

		stats := result.Entities[step.entity]
		stats.Inserted = inserted
		result.Entities[step.entity] = stats
	}

	return nil
}

// readEntity lê <entity>.json, valida cada registro e converte os válidos.
// Arquivo ausente é ignorado com aviso; registro inválido é descartado e contado.
func readEntity[R any, T any](
	s *Service,
	logger log.Logger,
	result *domain.LoadResult,
	entity string,
	convert func(*R) (T, error),
) ([]T, error) {
	items := make([]T, 0)
	path := filepath.Join(s.dataDir, entity+".json")

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warnf("Arquivo %s não encontrado, entidade ignorada", path)
		result.Entities[entity] = domain.EntityLoadResult{}
		return items, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrapf(ErrInvalidFile, "%s: %v", path, err)
	}

	stats := domain.EntityLoadResult{Read: len(raw)}

	for i, message := range raw {
		record := new(R)

		err := json.Unmarshal(message, record)
		if err == nil {
			err = s.validate.Struct(record)
		}

		var item T
		if err == nil {
			item, err = convert(record)
		}

		if err != nil {
			stats.Invalid++
			logger.WithError(err).Warnf("Registro %d de %s inválido, ignorado", i, entity)
			continue
		}

		items = append(items, item)
	}

	result.Entities[entity] = stats
	return items, nil
}
