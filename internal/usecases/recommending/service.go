package recommending

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/risking"
)

type Recommender interface {
	GetRecommendations(ctx context.Context) ([]string, error)
}

type Service struct {
	metrics      config.Metrics
	riskAnalyzer risking.RiskAnalyzer
}

func NewService(metrics config.Metrics, riskAnalyzer risking.RiskAnalyzer) Recommender {
	return &Service{
		metrics:      metrics,
		riskAnalyzer: riskAnalyzer,
	}
}

func (s *Service) GetRecommendations(ctx context.Context) ([]string, error) {
	risks, err := s.riskAnalyzer.GetRiskFactors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular os fatores de risco")
	}

	return Generate(risks, s.metrics), nil
}
