package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4"
	"github.com/vfg2006/backoffice-metrics-sync/infrastructure/integrator/ga4/ga4client"
	"github.com/vfg2006/backoffice-metrics-sync/internal/config"
	"github.com/vfg2006/backoffice-metrics-sync/internal/export"
	"github.com/vfg2006/backoffice-metrics-sync/internal/usecases/syncing"
	"github.com/vfg2006/backoffice-metrics-sync/pkg/log"
)

func main() {
	// Configuração ausente é fatal antes de qualquer chamada de rede
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	logger := log.ForSync(log.NewSyncID())
	logger.WithFields(log.Fields{
		"property_id": cfg.GA4.PropertyID,
		"window_days": cfg.GA4.LookbackDays,
	}).Info("Iniciando sincronização de métricas do GA4")

	client, err := ga4client.NewClient(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao criar o cliente do GA4")
	}

	integrator := ga4.New(cfg, client)
	writer := export.NewWriter(cfg.Output.Path)
	service := syncing.NewService(cfg, integrator, writer).WithLogger(logger)

	if _, err := service.Sync(); err != nil {
		logger.WithError(err).Fatal("Erro ao sincronizar métricas")
	}

	fmt.Printf("Updated %s\n", writer.Path())
}
