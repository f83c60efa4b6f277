package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/risking"
	"github.com/vfg2006/revenue-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

// GetSummary retorna receita, meta e variação do trimestre mais recente
func GetSummary(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetSummary(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o resumo do trimestre")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

// GetDrivers retorna os indicadores mensais do ano de referência
func GetDrivers(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := service.GetDrivers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular os indicadores mensais")
			return
		}

		writeJSON(w, r, http.StatusOK, drivers)
	}
}

func GetRevenueTrend(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := service.GetRevenueTrend(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular a tendência de receita")
			return
		}

		writeJSON(w, r, http.StatusOK, trend)
	}
}

func GetRiskFactors(service risking.RiskAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		risks, err := service.GetRiskFactors(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular os fatores de risco")
			return
		}

		writeJSON(w, r, http.StatusOK, risks)
	}
}

func GetRecommendations(service recommending.Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := service.GetRecommendations(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar as recomendações")
			return
		}

		writeJSON(w, r, http.StatusOK, recommendations)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
