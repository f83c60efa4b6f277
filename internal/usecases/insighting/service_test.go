package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
	"github.com/vfg2006/revenue-intelligence-api/pkg/period"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func wonDeal(id string, amount float64, created, closed time.Time) *domain.Deal {
	return &domain.Deal{ID: id, Stage: domain.StageClosedWon, Amount: amount, CreatedAt: created, ClosedAt: &closed}
}

func lostDeal(id string, amount float64, created, closed time.Time) *domain.Deal {
	return &domain.Deal{ID: id, Stage: domain.StageClosedLost, Amount: amount, CreatedAt: created, ClosedAt: &closed}
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockDealRepository, *mocks.MockTargetRepository) {
	dealRepo := mocks.NewMockDealRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)

	service := &Service{
		metrics:          config.DefaultMetrics(),
		dealRepository:   dealRepo,
		targetRepository: targetRepo,
	}
	return service, dealRepo, targetRepo
}

func TestService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, targetRepo := newTestService(ctrl)

	q2 := period.QuarterOf(day(2024, time.May, 15))
	q1 := period.PreviousQuarter(q2)
	q2Months := []string{"2024-04", "2024-05", "2024-06"}

	tests := []struct {
		name     string
		setup    func()
		wantErr  bool
		validate func(t *testing.T, result *domain.Summary)
	}{
		{
			name: "Sem negócios fechados - deve retornar resumo vazio",
			setup: func() {
				dealRepo.EXPECT().GetLatestClosedDate(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.Summary) {
				assert.Nil(t, result.Quarter)
				assert.Zero(t, result.CurrentQuarterRevenue)
				assert.Zero(t, result.Target)
				assert.Zero(t, result.GapPercent)
				assert.Nil(t, result.QoQChangePercent)
			},
		},
		{
			name: "Q2 2024 com receita 1000 e meta 1500 - gap de -33.33",
			setup: func() {
				dealRepo.EXPECT().GetLatestClosedDate(gomock.Any()).Return(dayPtr(2024, time.May, 15), nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q2.Window).
					Return([]*domain.Deal{wonDeal("D1", 1000, day(2024, time.May, 1), day(2024, time.May, 15))}, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q1.Window).Return([]*domain.Deal{}, nil)
				targetRepo.EXPECT().ListByMonths(gomock.Any(), q2Months).Return([]*domain.Target{
					{Month: "2024-04", Target: 500},
					{Month: "2024-05", Target: 500},
					{Month: "2024-06", Target: 500},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.Summary) {
				require.NotNil(t, result.Quarter)
				assert.Equal(t, "Q2 2024", *result.Quarter)
				assert.Equal(t, 1000.0, result.CurrentQuarterRevenue)
				assert.Equal(t, 1500.0, result.Target)
				assert.Equal(t, -33.33, result.GapPercent)
				assert.Nil(t, result.QoQChangePercent, "sem receita anterior não há base de comparação")
			},
		},
		{
			name: "Receita anterior positiva - deve calcular variação QoQ e ignorar perdidos",
			setup: func() {
				dealRepo.EXPECT().GetLatestClosedDate(gomock.Any()).Return(dayPtr(2024, time.June, 30), nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q2.Window).Return([]*domain.Deal{
					wonDeal("D1", 1000, day(2024, time.April, 1), day(2024, time.April, 20)),
					wonDeal("D2", 500, day(2024, time.May, 1), day(2024, time.June, 30)),
					lostDeal("D3", 300, day(2024, time.May, 1), day(2024, time.June, 1)),
				}, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q1.Window).Return([]*domain.Deal{
					wonDeal("D0", 1000, day(2024, time.January, 1), day(2024, time.March, 31)),
				}, nil)
				targetRepo.EXPECT().ListByMonths(gomock.Any(), q2Months).Return([]*domain.Target{}, nil)
			},
			validate: func(t *testing.T, result *domain.Summary) {
				assert.Equal(t, 1500.0, result.CurrentQuarterRevenue)
				assert.Zero(t, result.Target)
				assert.Zero(t, result.GapPercent, "sem meta o gap é 0")
				require.NotNil(t, result.QoQChangePercent)
				assert.Equal(t, 50.0, *result.QoQChangePercent)
			},
		},
		{
			name: "Trimestre só com perdidos e sem metas - gap 0 e QoQ nulo",
			setup: func() {
				dealRepo.EXPECT().GetLatestClosedDate(gomock.Any()).Return(dayPtr(2024, time.May, 2), nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q2.Window).
					Return([]*domain.Deal{lostDeal("D1", 900, day(2024, time.April, 1), day(2024, time.May, 2))}, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q1.Window).Return(nil, nil)
				targetRepo.EXPECT().ListByMonths(gomock.Any(), q2Months).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.Summary) {
				assert.Zero(t, result.CurrentQuarterRevenue)
				assert.Zero(t, result.GapPercent)
				assert.Nil(t, result.QoQChangePercent)
			},
		},
		{
			name: "Falha no repositório - deve propagar o erro",
			setup: func() {
				dealRepo.EXPECT().GetLatestClosedDate(gomock.Any()).Return(dayPtr(2024, time.May, 15), nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), q2.Window).Return(nil, errors.New("conexão perdida"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetSummary(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_GetDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, targetRepo := newTestService(ctrl)
	year2024 := period.YearWindow(2024)

	tests := []struct {
		name     string
		setup    func()
		wantErr  bool
		validate func(t *testing.T, result *domain.DriversReport)
	}{
		{
			name: "Sem metas - deve retornar ano nulo e lista vazia",
			setup: func() {
				targetRepo.EXPECT().GetLatestMonth(gomock.Any()).Return("", nil)
			},
			validate: func(t *testing.T, result *domain.DriversReport) {
				assert.Nil(t, result.Year)
				assert.NotNil(t, result.Monthly)
				assert.Empty(t, result.Monthly)
			},
		},
		{
			name: "Ano com dados em março e maio - deve preencher os 12 meses",
			setup: func() {
				targetRepo.EXPECT().GetLatestMonth(gomock.Any()).Return("2024-06", nil)
				dealRepo.EXPECT().ListOpenCreatedBetween(gomock.Any(), year2024).Return([]*domain.Deal{
					{ID: "P1", Stage: domain.StageProspecting, Amount: 100, CreatedAt: day(2024, time.March, 10)},
					{ID: "P2", Stage: domain.StageNegotiation, Amount: 50, CreatedAt: day(2024, time.March, 31)},
				}, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), year2024).Return([]*domain.Deal{
					wonDeal("W1", 1000, day(2024, time.May, 1), day(2024, time.May, 15)),
					wonDeal("W2", 500, day(2024, time.May, 1), day(2024, time.May, 31)),
					lostDeal("L1", 800, day(2024, time.April, 1), day(2024, time.May, 20)),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.DriversReport) {
				require.NotNil(t, result.Year)
				assert.Equal(t, 2024, *result.Year)
				require.Len(t, result.Monthly, 12)

				for i, month := range period.YearMonthKeys(2024) {
					assert.Equal(t, month, result.Monthly[i].Month)
				}

				january := result.Monthly[0]
				assert.Nil(t, january.WinRate, "sem fechamentos a taxa de conversão é nula")
				assert.Zero(t, january.PipelineValue)
				assert.Zero(t, january.AvgDealSize)
				assert.Zero(t, january.SalesCycleDays)

				march := result.Monthly[2]
				assert.Equal(t, 150.0, march.PipelineValue)
				assert.Nil(t, march.WinRate)

				may := result.Monthly[4]
				require.NotNil(t, may.WinRate)
				assert.InDelta(t, 0.6667, *may.WinRate, 0.00001)
				assert.Equal(t, 750.0, may.AvgDealSize)
				assert.Equal(t, 22, may.SalesCycleDays)
			},
		},
		{
			name: "Apenas perdidos no mês - taxa de conversão zero",
			setup: func() {
				targetRepo.EXPECT().GetLatestMonth(gomock.Any()).Return("2024-12", nil)
				dealRepo.EXPECT().ListOpenCreatedBetween(gomock.Any(), year2024).Return(nil, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), year2024).Return([]*domain.Deal{
					lostDeal("L1", 800, day(2024, time.February, 1), day(2024, time.February, 29)),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.DriversReport) {
				february := result.Monthly[1]
				require.NotNil(t, february.WinRate)
				assert.Zero(t, *february.WinRate)
				assert.Zero(t, february.AvgDealSize)
			},
		},
		{
			name: "Mês de meta inválido - deve retornar erro",
			setup: func() {
				targetRepo.EXPECT().GetLatestMonth(gomock.Any()).Return("2024-13", nil)
			},
			wantErr: true,
		},
		{
			name: "Falha ao buscar negócios fechados - deve propagar o erro",
			setup: func() {
				targetRepo.EXPECT().GetLatestMonth(gomock.Any()).Return("2024-06", nil)
				dealRepo.EXPECT().ListOpenCreatedBetween(gomock.Any(), year2024).Return(nil, nil)
				dealRepo.EXPECT().ListClosedBetween(gomock.Any(), year2024).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetDrivers(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_GetRevenueTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, dealRepo, targetRepo := newTestService(ctrl)

	t.Run("Sem metas - deve retornar lista vazia sem consultar negócios", func(t *testing.T) {
		targetRepo.EXPECT().ListLatest(gomock.Any(), 6).Return([]*domain.Target{}, nil)

		result, err := service.GetRevenueTrend(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, result.Months)
		assert.Empty(t, result.Months)
	})

	t.Run("Deve comparar receita e meta com o fim real de cada mês", func(t *testing.T) {
		targetRepo.EXPECT().ListLatest(gomock.Any(), 6).Return([]*domain.Target{
			{Month: "2024-01", Target: 500},
			{Month: "2024-02", Target: 500},
			{Month: "2024-03", Target: 500},
		}, nil)
		dealRepo.EXPECT().
			ListClosedBetween(gomock.Any(), period.Window{Start: day(2024, time.January, 1), End: day(2024, time.March, 31)}).
			Return([]*domain.Deal{
				wonDeal("W1", 700, day(2024, time.February, 1), day(2024, time.February, 29)),
				lostDeal("L1", 100, day(2024, time.February, 1), day(2024, time.February, 10)),
				wonDeal("W2", 200, day(2024, time.March, 1), day(2024, time.March, 31)),
			}, nil)

		result, err := service.GetRevenueTrend(context.Background())
		require.NoError(t, err)
		require.Len(t, result.Months, 3)

		assert.Equal(t, &domain.RevenueTrendMonth{Month: "2024-01", Revenue: 0, Target: 500, Gap: -500}, result.Months[0])
		assert.Equal(t, &domain.RevenueTrendMonth{Month: "2024-02", Revenue: 700, Target: 500, Gap: 200}, result.Months[1])
		assert.Equal(t, &domain.RevenueTrendMonth{Month: "2024-03", Revenue: 200, Target: 500, Gap: -300}, result.Months[2])
	})

	t.Run("Falha ao buscar metas - deve propagar o erro", func(t *testing.T) {
		targetRepo.EXPECT().ListLatest(gomock.Any(), 6).Return(nil, errors.New("falha"))

		_, err := service.GetRevenueTrend(context.Background())
		assert.Error(t, err)
	})
}
