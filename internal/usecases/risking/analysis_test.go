package risking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func openDeal(id string, created time.Time, lastActivity *time.Time) *domain.OpenDealActivity {
	return &domain.OpenDealActivity{
		Deal: domain.Deal{
			ID:        id,
			AccountID: "A-" + id,
			RepID:     "R1",
			Stage:     domain.StageNegotiation,
			Amount:    100,
			CreatedAt: created,
		},
		AccountName:    "Conta " + id,
		LastActivityAt: lastActivity,
	}
}

func TestAnalyzeStaleDeals(t *testing.T) {
	metrics := config.DefaultMetrics()
	reference := day(2024, time.July, 31)

	t.Run("Deve classificar por inatividade e contar os urgentes", func(t *testing.T) {
		deals := []*domain.OpenDealActivity{
			openDeal("D1", day(2024, time.May, 1), dayPtr(2024, time.June, 21)),
			openDeal("D2", day(2024, time.May, 1), nil),
			openDeal("D3", day(2024, time.May, 1), dayPtr(2024, time.July, 20)),
			openDeal("D4", day(2024, time.July, 1), nil),
		}

		result := analyzeStaleDeals(deals, reference, metrics)

		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 30, result.ThresholdDays)
		assert.Equal(t, 1, result.UrgentCount)
		require.Len(t, result.Items, 2)

		assert.Equal(t, "D2", result.Items[0].DealID)
		assert.Equal(t, 91, result.Items[0].DaysSinceActivity)
		assert.Equal(t, "Conta D2", result.Items[0].AccountName)

		assert.Equal(t, "D1", result.Items[1].DealID)
		assert.Equal(t, 40, result.Items[1].DaysSinceActivity)
	})

	t.Run("Count reflete o total e items respeita o limite", func(t *testing.T) {
		deals := make([]*domain.OpenDealActivity, 0, 7)
		for i := 0; i < 7; i++ {
			deals = append(deals, openDeal(fmt.Sprintf("D%d", i), day(2024, time.January, 1+i), nil))
		}

		result := analyzeStaleDeals(deals, reference, metrics)

		assert.Equal(t, 7, result.Count)
		assert.Len(t, result.Items, metrics.RiskItemsLimit)
		assert.GreaterOrEqual(t, result.Count, len(result.Items))
		assert.Equal(t, "D0", result.Items[0].DealID, "o mais antigo vem primeiro")
	})

	t.Run("Sem negócios abertos - lista vazia, não nula", func(t *testing.T) {
		result := analyzeStaleDeals(nil, reference, metrics)
		assert.Zero(t, result.Count)
		assert.NotNil(t, result.Items)
	})
}

func TestAnalyzeUnderperformingReps(t *testing.T) {
	metrics := config.DefaultMetrics()
	closed := day(2024, time.May, 10)

	reps := []*domain.Rep{
		{ID: "R1", Name: "Ana"},
		{ID: "R2", Name: "Bruno"},
		{ID: "R3", Name: "Carla"},
	}
	deals := []*domain.Deal{
		{ID: "W1", RepID: "R1", Stage: domain.StageClosedWon, Amount: 1400, ClosedAt: &closed},
		{ID: "W2", RepID: "R2", Stage: domain.StageClosedWon, Amount: 600, ClosedAt: &closed},
		{ID: "L1", RepID: "R3", Stage: domain.StageClosedLost, Amount: 5000, ClosedAt: &closed},
		{ID: "W3", RepID: "R9", Stage: domain.StageClosedWon, Amount: 100, ClosedAt: &closed},
	}

	t.Run("Deve listar abaixo de 80% do pior para o melhor", func(t *testing.T) {
		result := analyzeUnderperformingReps(reps, deals, 1500, metrics)

		assert.Equal(t, 3, result.Count)
		require.Len(t, result.Items, 3)

		assert.Equal(t, &domain.UnderperformingRep{RepID: "R3", RepName: "Carla", Revenue: 0, Target: 1500, PercentOfTarget: 0}, result.Items[0])
		assert.Equal(t, &domain.UnderperformingRep{RepID: "R9", RepName: "R9", Revenue: 100, Target: 1500, PercentOfTarget: 6.7}, result.Items[1])
		assert.Equal(t, &domain.UnderperformingRep{RepID: "R2", RepName: "Bruno", Revenue: 600, Target: 1500, PercentOfTarget: 40}, result.Items[2])
	})

	t.Run("Meta zero - percentual zero para todos", func(t *testing.T) {
		result := analyzeUnderperformingReps(reps, deals, 0, metrics)

		assert.Equal(t, 4, result.Count)
		for _, item := range result.Items {
			assert.Zero(t, item.PercentOfTarget)
		}
	})

	t.Run("Todos acima do limite - lista vazia", func(t *testing.T) {
		result := analyzeUnderperformingReps(reps[:1], deals[:1], 1000, metrics)
		assert.Zero(t, result.Count)
		assert.Empty(t, result.Items)
	})
}

func TestAnalyzeLowActivityAccounts(t *testing.T) {
	metrics := config.DefaultMetrics()
	reference := day(2024, time.July, 31)

	stats := []*domain.AccountActivityStats{
		{AccountID: "A1", AccountName: "Acme", ActivityCount: 5, LastActivityAt: dayPtr(2024, time.July, 25)},
		{AccountID: "A2", AccountName: "Globex", ActivityCount: 1, LastActivityAt: dayPtr(2024, time.July, 30)},
		{AccountID: "A3", AccountName: "Initech", ActivityCount: 0},
		{AccountID: "A4", AccountName: "Umbrella", ActivityCount: 4, LastActivityAt: dayPtr(2024, time.June, 1)},
	}

	result := analyzeLowActivityAccounts(stats, reference, metrics)

	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 30, result.ThresholdDays)
	require.Len(t, result.Items, 3)

	assert.Equal(t, "A3", result.Items[0].AccountID)
	assert.Nil(t, result.Items[0].DaysSinceLastActivity, "sem atividade a data é desconhecida")

	assert.Equal(t, "A2", result.Items[1].AccountID)
	require.NotNil(t, result.Items[1].DaysSinceLastActivity)
	assert.Equal(t, 1, *result.Items[1].DaysSinceLastActivity)

	assert.Equal(t, "A4", result.Items[2].AccountID)
	assert.Equal(t, 60, *result.Items[2].DaysSinceLastActivity)
}

func TestLimit(t *testing.T) {
	assert.Equal(t, []int{1, 2}, limit([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, limit([]int{1, 2, 3}, 5))
	assert.Equal(t, []int{1, 2, 3}, limit([]int{1, 2, 3}, 0))
}
