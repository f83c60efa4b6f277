package insighting

import (
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
)

// Service implementa Insighter lendo negócios e metas do repositório a cada chamada
type Service struct {
	metrics          config.Metrics
	dealRepository   repository.DealRepository
	targetRepository repository.TargetRepository
}

// NewService cria uma nova instância do serviço de métricas
func NewService(
	metrics config.Metrics,
	dealRepository repository.DealRepository,
	targetRepository repository.TargetRepository,
) Insighter {
	return &Service{
		metrics:          metrics,
		dealRepository:   dealRepository,
		targetRepository: targetRepository,
	}
}
