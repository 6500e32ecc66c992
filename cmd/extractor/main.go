package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/grape-extractor/infrastructure/exporter"
	"github.com/vfg2006/grape-extractor/infrastructure/integrator/grape"
	"github.com/vfg2006/grape-extractor/infrastructure/integrator/grape/grapeclient"
	"github.com/vfg2006/grape-extractor/internal/api"
	"github.com/vfg2006/grape-extractor/internal/config"
	"github.com/vfg2006/grape-extractor/internal/scheduler"
	"github.com/vfg2006/grape-extractor/internal/usecases/extracting"
)

func main() {
	configPath := flag.String("config", "/data/config.json", "caminho do arquivo de configuração")
	debug := flag.Bool("debug", false, "força o nível de log para debug")
	flag.Parse()

	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	if *debug {
		logLevel = logrus.DebugLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	grapeClient := grapeclient.NewClient(cfg)
	grapeIntegrator := grape.New(cfg, grapeClient)

	csvExporter := exporter.NewCSVExporter(cfg.Output.Path)

	extractor := extracting.NewService(cfg, grapeIntegrator, csvExporter)

	// Sem agendamento a execução é única: extrai, exporta e encerra
	if !cfg.Sync.Enabled {
		runOnce(extractor)
		return
	}

	extractionSyncService := scheduler.NewExtractionSyncService(extractor, cfg)

	if err := extractionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de extrações")
	} else {
		logrus.Info("Agendador de extrações iniciado com sucesso")
	}

	server, err := api.New(cfg, extractionSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func runOnce(extractor extracting.Extractor) {
	result, err := extractor.Run()
	if err != nil {
		logrus.WithError(err).Fatal("Extração falhou")
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"row_count": result.RowCount,
		"written":   result.Written,
		"duration":  result.Duration().String(),
	}).Info("Extração única concluída")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
