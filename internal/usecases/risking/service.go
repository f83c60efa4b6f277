package risking

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	metrics            config.Metrics
	dealRepository     repository.DealRepository
	repRepository      repository.RepRepository
	accountRepository  repository.AccountRepository
	activityRepository repository.ActivityRepository
	targetRepository   repository.TargetRepository
}

func NewService(
	metrics config.Metrics,
	dealRepository repository.DealRepository,
	repRepository repository.RepRepository,
	accountRepository repository.AccountRepository,
	activityRepository repository.ActivityRepository,
	targetRepository repository.TargetRepository,
) RiskAnalyzer {
	return &Service{
		metrics:            metrics,
		dealRepository:     dealRepository,
		repRepository:      repRepository,
		accountRepository:  accountRepository,
		activityRepository: activityRepository,
		targetRepository:   targetRepository,
	}
}

// GetRiskFactors executa as três análises em paralelo; a primeira falha cancela as demais
func (s *Service) GetRiskFactors(ctx context.Context) (*domain.RiskFactors, error) {
	logger := log.ForContext(ctx)

	total, err := s.dealRepository.CountDeals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar negócios")
	}

	if total == 0 {
		logger.Debug("Nenhum negócio na base, retornando riscos vazios")
		return domain.EmptyRiskFactors(s.metrics.StaleDealThresholdDays, s.metrics.LowActivityThresholdDays), nil
	}

	reference, err := s.referenceDate(ctx)
	if err != nil {
		return nil, err
	}

	anchor, err := s.dealRepository.GetLatestClosedDate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a data do último fechamento")
	}

	risks := &domain.RiskFactors{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deals, err := s.dealRepository.ListOpenWithLastActivity(gctx)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar negócios abertos")
		}
		risks.StaleDeals = analyzeStaleDeals(deals, reference, s.metrics)
		return nil
	})

	g.Go(func() error {
		reps, err := s.underperformingReps(gctx, anchor)
		if err != nil {
			return err
		}
		risks.UnderperformingReps = reps
		return nil
	})

	g.Go(func() error {
		stats, err := s.accountRepository.ListActivityStats(gctx)
		if err != nil {
			return errors.Wrap(err, "erro ao buscar atividades por conta")
		}
		risks.LowActivityAccounts = analyzeLowActivityAccounts(stats, reference, s.metrics)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"reference":   reference.Format(time.DateOnly),
		"stale":       risks.StaleDeals.Count,
		"reps":        risks.UnderperformingReps.Count,
		"lowActivity": risks.LowActivityAccounts.Count,
	}).Debug("Fatores de risco calculados")

	return risks, nil
}

// referenceDate é o "agora" da base: o evento mais recente entre negócios e atividades.
// Difere da âncora só de negócios (MAX(closed_at)) por incluir as atividades, o que evita dias ociosos negativos.
func (s *Service) referenceDate(ctx context.Context) (time.Time, error) {
	latestDeal, err := s.dealRepository.GetLatestDealDate(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "erro ao buscar a data do negócio mais recente")
	}

	latestActivity, err := s.activityRepository.GetLatestActivityDate(ctx)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "erro ao buscar a data da atividade mais recente")
	}

	var reference time.Time
	for _, candidate := range []*time.Time{latestDeal, latestActivity} {
		if candidate != nil && candidate.After(reference) {
			reference = *candidate
		}
	}

	return period.Day(reference), nil
}

func (s *Service) underperformingReps(ctx context.Context, anchor *time.Time) (*domain.UnderperformingRepsRisk, error) {
	if anchor == nil {
		return &domain.UnderperformingRepsRisk{Items: []*domain.UnderperformingRep{}}, nil
	}

	quarter := period.QuarterOf(*anchor)

	deals, err := s.dealRepository.ListClosedBetween(ctx, quarter.Window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar negócios fechados de %s", quarter.Label)
	}

	reps, err := s.repRepository.ListReps(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendedores")
	}

	months := quarter.MonthKeys()
	targets, err := s.targetRepository.ListByMonths(ctx, months)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar as metas de %s", quarter.Label)
	}

	return analyzeUnderperformingReps(reps, deals, domain.SumTargets(targets, months), s.metrics), nil
}
