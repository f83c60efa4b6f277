package insighting

import (
	"context"

	"github.com/vfg2006/revenue-intelligence-api/internal/domain"
)

// Insighter define as métricas de receita derivadas de negócios e metas
type Insighter interface {
	// GetSummary calcula receita, meta e variação do trimestre mais recente com negócios fechados
	GetSummary(ctx context.Context) (*domain.Summary, error)

	// GetDrivers calcula os indicadores mensais do ano da meta mais recente
	GetDrivers(ctx context.Context) (*domain.DriversReport, error)

	// GetRevenueTrend compara receita e meta dos meses mais recentes com meta cadastrada
	GetRevenueTrend(ctx context.Context) (*domain.RevenueTrend, error)
}
