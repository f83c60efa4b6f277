package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/risking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(
	insighter insighting.Insighter,
	riskAnalyzer risking.RiskAnalyzer,
	recommender recommending.Recommender,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(insighter),
		},
		{
			Path:    "/api/drivers",
			Method:  http.MethodGet,
			Handler: GetDrivers(insighter),
		},
		{
			Path:    "/api/risk-factors",
			Method:  http.MethodGet,
			Handler: GetRiskFactors(riskAnalyzer),
		},
		{
			Path:    "/api/recommendations",
			Method:  http.MethodGet,
			Handler: GetRecommendations(recommender),
		},
		{
			Path:    "/api/revenue-trend",
			Method:  http.MethodGet,
			Handler: GetRevenueTrend(insighter),
		},
	}
}

func DataReload(reloader scheduler.Reloader) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data/status",
			Method:  http.MethodGet,
			Handler: GetDataReloadStatus(reloader),
		},
		{
			Path:    "/api/data/reload",
			Method:  http.MethodPost,
			Handler: TriggerDataReload(reloader),
		},
	}
}
