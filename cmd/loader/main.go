// Comando loader executa uma carga única dos arquivos JSON e encerra.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/database"
	"github.com/vfg2006/revenue-intelligence-api/infrastructure/repository"
	"github.com/vfg2006/revenue-intelligence-api/internal/config"
	"github.com/vfg2006/revenue-intelligence-api/internal/usecases/loading"
	"github.com/vfg2006/revenue-intelligence-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	dataDir := flag.String("data-dir", cfg.Data.Dir, "diretório com os arquivos JSON")
	flag.Parse()

	log.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	loader := loading.NewService(
		*dataDir,
		conn,
		repository.NewAccountRepository(conn),
		repository.NewRepRepository(conn),
		repository.NewDealRepository(conn),
		repository.NewActivityRepository(conn),
		repository.NewTargetRepository(conn),
	)

	result, err := loader.Load(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na carga de dados")
		conn.Close()
		os.Exit(1)
	}

	for entity, counts := range result.Entities {
		logrus.WithFields(logrus.Fields{
			"batch_id": result.BatchID,
			"entity":   entity,
			"read":     counts.Read,
			"invalid":  counts.Invalid,
			"inserted": counts.Inserted,
		}).Info("Entidade carregada")
	}
}
