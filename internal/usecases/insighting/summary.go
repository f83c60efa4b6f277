package insighting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

func (s *Service) GetSummary(ctx context.Context) (*domain.Summary, error) {
	logger := log.ForContext(ctx)

	// O trimestre corrente é ancorado no último fechamento registrado, não no relógio
	anchor, err := s.dealRepository.GetLatestClosedDate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar a data do último fechamento")
	}

	if anchor == nil {
		logger.Debug("Nenhum negócio fechado encontrado, retornando resumo vazio")
		return domain.EmptySummary(), nil
	}

	quarter := period.QuarterOf(*anchor)
	previous := period.PreviousQuarter(quarter)

	revenue, err := s.wonRevenue(ctx, quarter.Window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao calcular a receita de %s", quarter.Label)
	}

	previousRevenue, err := s.wonRevenue(ctx, previous.Window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao calcular a receita de %s", previous.Label)
	}

	months := quarter.MonthKeys()
	targets, err := s.targetRepository.ListByMonths(ctx, months)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar as metas de %s", quarter.Label)
	}
	target := domain.SumTargets(targets, months)

	summary := &domain.Summary{
		Quarter:               &quarter.Label,
		CurrentQuarterRevenue: utils.RoundWithTwoDecimalPlace(revenue),
		Target:                utils.RoundWithTwoDecimalPlace(target),
		GapPercent:            utils.RoundWithTwoDecimalPlace(utils.Percent(revenue-target, target)),
	}

	// Sem receita no trimestre anterior não há base de comparação: null, não 0
	if previousRevenue > 0 {
		qoq := utils.RoundWithTwoDecimalPlace(utils.Percent(revenue-previousRevenue, previousRevenue))
		summary.QoQChangePercent = &qoq
	}

	logger.WithFields(log.Fields{
		"quarter": quarter.Label,
		"revenue": revenue,
		"target":  target,
	}).Debug("Resumo do trimestre calculado")

	return summary, nil
}

// wonRevenue soma os negócios ganhos fechados dentro da janela
func (s *Service) wonRevenue(ctx context.Context, window period.Window) (float64, error) {
	deals, err := s.dealRepository.ListClosedBetween(ctx, window)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, deal := range deals {
		if deal.IsWon() {
			total += deal.Amount
		}
	}
	return total, nil
}
