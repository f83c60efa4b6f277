package risking

import (
	"context"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// RiskAnalyzer identifica negócios parados, vendedores abaixo da meta e contas com pouca atividade
type RiskAnalyzer interface {
	GetRiskFactors(ctx context.Context) (*domain.RiskFactors, error)
}
