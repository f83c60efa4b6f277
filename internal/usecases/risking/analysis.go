package risking

import (
	"cmp"
	"slices"
	"time"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
)

func analyzeStaleDeals(deals []*domain.OpenDealActivity, reference time.Time, metrics config.Metrics) *domain.StaleDealsRisk {
	stale := make([]*domain.StaleDeal, 0)
	urgent := 0

	for _, deal := range deals {
		days := period.DaysBetween(deal.LastTouch(), reference)
		if days <= metrics.StaleDealThresholdDays {
			continue
		}

		if days > metrics.UrgentStaleDealDays {
			urgent++
		}

		stale = append(stale, &domain.StaleDeal{
			DealID:            deal.ID,
			AccountName:       deal.AccountName,
			RepID:             deal.RepID,
			Stage:             deal.Stage,
			Amount:            deal.Amount,
			DaysSinceActivity: days,
		})
	}

	slices.SortFunc(stale, func(a, b *domain.StaleDeal) int {
		return cmp.Or(
			cmp.Compare(b.DaysSinceActivity, a.DaysSinceActivity),
			cmp.Compare(a.DealID, b.DealID),
		)
	})

	return &domain.StaleDealsRisk{
		Count:         len(stale),
		ThresholdDays: metrics.StaleDealThresholdDays,
		UrgentCount:   urgent,
		Items:         limit(stale, metrics.RiskItemsLimit),
	}
}

// analyzeUnderperformingReps compara a receita ganha de cada vendedor com a meta do trimestre.
// Vendedores que aparecem apenas nos negócios entram com o próprio ID como nome.
func analyzeUnderperformingReps(reps []*domain.Rep, deals []*domain.Deal, target float64, metrics config.Metrics) *domain.UnderperformingRepsRisk {
	names := make(map[string]string, len(reps))
	revenue := make(map[string]float64, len(reps))

	for _, rep := range reps {
		names[rep.ID] = rep.Name
		revenue[rep.ID] = 0
	}

	for _, deal := range deals {
		if !deal.IsWon() {
			continue
		}
		if _, ok := names[deal.RepID]; !ok {
			names[deal.RepID] = deal.RepID
		}
		revenue[deal.RepID] += deal.Amount
	}

	items := make([]*domain.UnderperformingRep, 0)
	for repID, repRevenue := range revenue {
		percent := utils.RoundWithOneDecimalPlace(utils.Percent(repRevenue, target))
		if percent >= metrics.UnderperformingPercent {
			continue
		}

		items = append(items, &domain.UnderperformingRep{
			RepID:           repID,
			RepName:         names[repID],
			Revenue:         utils.RoundWithTwoDecimalPlace(repRevenue),
			Target:          utils.RoundWithTwoDecimalPlace(target),
			PercentOfTarget: percent,
		})
	}

	slices.SortFunc(items, func(a, b *domain.UnderperformingRep) int {
		return cmp.Or(
			cmp.Compare(a.PercentOfTarget, b.PercentOfTarget),
			cmp.Compare(a.RepID, b.RepID),
		)
	})

	return &domain.UnderperformingRepsRisk{
		Count: len(items),
		Items: limit(items, metrics.RiskItemsLimit),
	}
}

func analyzeLowActivityAccounts(stats []*domain.AccountActivityStats, reference time.Time, metrics config.Metrics) *domain.LowActivityAccountsRisk {
	items := make([]*domain.LowActivityAccount, 0)

	for _, account := range stats {
		var daysSince *int
		if account.LastActivityAt != nil {
			days := period.DaysBetween(*account.LastActivityAt, reference)
			daysSince = &days
		}

		unknown := daysSince == nil
		inactive := daysSince != nil && *daysSince > metrics.LowActivityThresholdDays
		sparse := account.ActivityCount < metrics.LowActivityMinCount
		if !unknown && !inactive && !sparse {
			continue
		}

		items = append(items, &domain.LowActivityAccount{
			AccountID:             account.AccountID,
			AccountName:           account.AccountName,
			ActivityCount:         account.ActivityCount,
			DaysSinceLastActivity: daysSince,
		})
	}

	slices.SortFunc(items, func(a, b *domain.LowActivityAccount) int {
		return cmp.Or(
			cmp.Compare(a.ActivityCount, b.ActivityCount),
			cmp.Compare(a.AccountID, b.AccountID),
		)
	})

	return &domain.LowActivityAccountsRisk{
		Count:         len(items),
		ThresholdDays: metrics.LowActivityThresholdDays,
		Items:         limit(items, metrics.RiskItemsLimit),
	}
}

// limit corta a lista para o tamanho máximo; n <= 0 desativa o corte
func limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
