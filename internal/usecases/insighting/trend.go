package insighting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

func (s *Service) GetRevenueTrend(ctx context.Context) (*domain.RevenueTrend, error) {
	targets, err := s.targetRepository.ListLatest(ctx, s.metrics.RevenueTrendMonths)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as metas mais recentes")
	}

	trend := &domain.RevenueTrend{Months: make([]*domain.RevenueTrendMonth, 0, len(targets))}
	if len(targets) == 0 {
		return trend, nil
	}

	// As metas já vêm em ordem cronológica; uma única consulta cobre do primeiro ao último mês
	first, err := period.MonthWindow(targets[0].Month)
	if err != nil {
		return nil, errors.Wrap(err, "meta cadastrada com mês inválido")
	}

	last, err := period.MonthWindow(targets[len(targets)-1].Month)
	if err != nil {
		return nil, errors.Wrap(err, "meta cadastrada com mês inválido")
	}

	deals, err := s.dealRepository.ListClosedBetween(ctx, period.Window{Start: first.Start, End: last.End})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar os negócios fechados do período")
	}

	revenueByMonth := make(map[string]float64, len(targets))
	for _, deal := range deals {
		if deal.IsWon() && deal.ClosedAt != nil {
			revenueByMonth[period.MonthKey(*deal.ClosedAt)] += deal.Amount
		}
	}

	for _, target := range targets {
		revenue := revenueByMonth[target.Month]
		trend.Months = append(trend.Months, &domain.RevenueTrendMonth{
			Month:   target.Month,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
			Target:  utils.RoundWithTwoDecimalPlace(target.Target),
			Gap:     utils.RoundWithTwoDecimalPlace(revenue - target.Target),
		})
	}

	return trend, nil
}
