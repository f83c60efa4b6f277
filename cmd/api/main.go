package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/api"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/scheduler"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/loading"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/recommending"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/risking"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := connect(ctx, cfg.Database)
	defer conn.Close()

	accountRepo := repository.NewAccountRepository(conn)
	repRepo := repository.NewRepRepository(conn)
	dealRepo := repository.NewDealRepository(conn)
	activityRepo := repository.NewActivityRepository(conn)
	targetRepo := repository.NewTargetRepository(conn)

	loader := loading.NewService(cfg.Data.Dir, conn, accountRepo, repRepo, dealRepo, activityRepo, targetRepo)
	reloadService := scheduler.NewDataReloadService(loader, cfg)

	// Sem o schema as métricas falhariam mesmo quando a carga inicial não encontra os arquivos
	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o schema do banco de dados")
	}

	if cfg.Data.LoadOnStartup {
		if _, err := reloadService.Reload(ctx); err != nil {
			logrus.WithError(err).Error("Erro na carga inicial de dados")
		}
	}

	insightService := insighting.NewService(cfg.Metrics, dealRepo, targetRepo)
	riskService := risking.NewService(cfg.Metrics, dealRepo, repRepo, accountRepo, activityRepo, targetRepo)
	recommendationService := recommending.NewService(cfg.Metrics, riskService)

	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de dados")
	}

	server, err := api.New(cfg, insightService, riskService, recommendationService, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func connect(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
