package insighting

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"github.com/vfg2006/revenue-intelligence-api/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

// monthBucket acumula os negócios de um mês antes do cálculo dos indicadores
type monthBucket struct {
	pipeline   float64
	won        int
	lost       int
	wonAmounts []float64
	cycleDays  []float64
}

func (s *Service) GetDrivers(ctx context.Context) (*domain.DriversReport, error) {
	logger := log.ForContext(ctx)

	// O ano de referência vem da meta mais recente, não dos negócios
	latestMonth, err := s.targetRepository.GetLatestMonth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o mês da meta mais recente")
	}

	if latestMonth == "" {
		logger.Debug("Nenhuma meta cadastrada, retornando indicadores vazios")
		return domain.EmptyDriversReport(), nil
	}

	reference, err := period.ParseMonthKey(latestMonth)
	if err != nil {
		return nil, errors.Wrap(err, "meta cadastrada com mês inválido")
	}

	year := reference.Year()
	window := period.YearWindow(year)

	buckets := make(map[string]*monthBucket, 12)
	months := period.YearMonthKeys(year)
	for _, month := range months {
		buckets[month] = &monthBucket{}
	}

	openDeals, err := s.dealRepository.ListOpenCreatedBetween(ctx, window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar o pipeline de %d", year)
	}

	for _, deal := range openDeals {
		if bucket, ok := buckets[period.MonthKey(deal.CreatedAt)]; ok {
			bucket.pipeline += deal.Amount
		}
	}

	closedDeals, err := s.dealRepository.ListClosedBetween(ctx, window)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar os negócios fechados de %d", year)
	}

	for _, deal := range closedDeals {
		if deal.ClosedAt == nil {
			continue
		}

		bucket, ok := buckets[period.MonthKey(*deal.ClosedAt)]
		if !ok {
			continue
		}

		switch {
		case deal.IsWon():
			bucket.won++
			bucket.wonAmounts = append(bucket.wonAmounts, deal.Amount)
			bucket.cycleDays = append(bucket.cycleDays, float64(period.DaysBetween(deal.CreatedAt, *deal.ClosedAt)))
		case deal.IsLost():
			bucket.lost++
		}
	}

	report := &domain.DriversReport{
		Year:    &year,
		Monthly: make([]*domain.MonthlyDriver, 0, len(months)),
	}

	for _, month := range months {
		report.Monthly = append(report.Monthly, buckets[month].driver(month))
	}

	logger.WithField("year", year).Debug("Indicadores mensais calculados")

	return report, nil
}

func (b *monthBucket) driver(month string) *domain.MonthlyDriver {
	driver := &domain.MonthlyDriver{
		Month:         month,
		PipelineValue: utils.RoundWithTwoDecimalPlace(b.pipeline),
	}

	if closed := b.won + b.lost; closed > 0 {
		winRate := utils.Round(float64(b.won)/float64(closed), 4)
		driver.WinRate = &winRate
	}

	if len(b.wonAmounts) > 0 {
		driver.AvgDealSize = utils.RoundWithTwoDecimalPlace(stat.Mean(b.wonAmounts, nil))
		driver.SalesCycleDays = int(math.Round(stat.Mean(b.cycleDays, nil)))
	}

	return driver
}
