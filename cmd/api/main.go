package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-extractor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ad-extractor-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-extractor-api/infrastructure/repository"
	"github.com/vfg2006/ad-extractor-api/internal/api"
	"github.com/vfg2006/ad-extractor-api/internal/catalog"
	"github.com/vfg2006/ad-extractor-api/internal/config"
	"github.com/vfg2006/ad-extractor-api/internal/scheduler"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/connecting"
	"github.com/vfg2006/ad-extractor-api/internal/usecases/extracting"
	"github.com/vfg2006/ad-extractor-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	connectionRepo := repository.NewConnectionRepository(pgConn)
	historyRepo := repository.NewExtractionHistoryRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	appMetrics := metrics.New()

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg, appMetrics)
	metaIntegrator := meta.New(cfg, metaClient)

	fieldCatalog := catalog.New()

	extractor := extracting.NewService(
		fieldCatalog,
		metaIntegrator,
		connectionRepo,
		historyRepo,
		datasetRepo,
		appMetrics,
	)

	connectionService := connecting.NewService(connectionRepo, metaIntegrator)

	extractionSyncService := scheduler.NewExtractionSyncService(
		connectionRepo,
		extractor,
		fieldCatalog,
		cfg,
	)

	if err := extractionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de extrações em lote")
	} else {
		logrus.Info("Agendador de extrações em lote iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		fieldCatalog,
		extractor,
		connectionService,
		authenticator,
		historyRepo,
		extractionSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
