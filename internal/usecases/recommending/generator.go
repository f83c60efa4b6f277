// Package recommending transforma os fatores de risco em ações sugeridas, em ordem fixa de prioridade.
package recommending

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

const HealthyPipelineMessage = "Pipeline looks healthy: no immediate risks detected"

// Generate é uma função pura: a mesma entrada sempre produz a mesma lista
func Generate(risks *domain.RiskFactors, metrics config.Metrics) []string {
	recommendations := make([]string, 0, metrics.RecommendationsLimit)
	if risks == nil {
		return append(recommendations, HealthyPipelineMessage)
	}

	if stale := risks.StaleDeals; stale != nil && stale.Count > 0 {
		if stale.UrgentCount > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Urgently review %d deals idle for more than %d days", stale.UrgentCount, metrics.UrgentStaleDealDays))
		} else {
			recommendations = append(recommendations, fmt.Sprintf(
				"Focus on %d stale deals with no recent activity", stale.Count))
		}
	}

	if reps := risks.UnderperformingReps; reps != nil {
		coached := 0
		for _, rep := range reps.Items {
			if coached >= metrics.CoachingLimit {
				break
			}
			if rep.PercentOfTarget >= metrics.CriticalPercent {
				continue
			}

			recommendations = append(recommendations, fmt.Sprintf(
				"Coach %s to recover pipeline (%s%% of target)", rep.RepName, formatPercent(rep.PercentOfTarget)))
			coached++
		}
	}

	if accounts := risks.LowActivityAccounts; accounts != nil {
		engaged := 0
		for _, account := range accounts.Items {
			if engaged >= metrics.EngagementLimit {
				break
			}
			if account.ActivityCount >= metrics.EngagementMaxActivity {
				continue
			}

			recommendations = append(recommendations, fmt.Sprintf(
				"Increase engagement with %s (%d activities logged)", account.AccountName, account.ActivityCount))
			engaged++
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, HealthyPipelineMessage)
	}

	if metrics.RecommendationsLimit > 0 && len(recommendations) > metrics.RecommendationsLimit {
		recommendations = recommendations[:metrics.RecommendationsLimit]
	}

	return recommendations
}

// formatPercent omite casas decimais desnecessárias (40 em vez de 40.0)
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
