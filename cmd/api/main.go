package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe"
	"github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/scribeclient"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository"
	"github.com/vfg2006/content-pulse-api/internal/api"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/scheduler"
	"github.com/vfg2006/content-pulse-api/internal/usecases/accessing"
	"github.com/vfg2006/content-pulse-api/internal/usecases/analyzing"
	"github.com/vfg2006/content-pulse-api/internal/usecases/authenticating"
	"github.com/vfg2006/content-pulse-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	contentItemRepo := repository.NewContentItemRepository(pgConn)
	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	organizationRepo := repository.NewOrganizationRepository(pgConn)
	analyticsCacheRepo := repository.NewAnalyticsCacheRepository(pgConn)
	insightCacheRepo := repository.NewInsightCacheRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	scribeClient := scribeclient.NewClient(cfg)
	scribeIntegrator := scribe.New(cfg, scribeClient)

	accessor := accessing.NewService(workspaceRepo, organizationRepo)

	// Inicializa os serviços de analytics e insights com suporte a cache
	analyticsService := analyzing.NewService(
		cfg,
		snapshotRepo,
		contentItemRepo,
		organizationRepo,
		accessor,
	).WithCache(analyticsCacheRepo)

	insightService := insighting.NewService(
		cfg,
		analyticsService,
		scribeIntegrator,
		accessor,
	).WithCache(insightCacheRepo)

	cacheCleanupService := scheduler.NewCacheCleanupService(
		analyticsCacheRepo,
		insightCacheRepo,
		snapshotRepo,
		cfg,
	)

	if err := cacheCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de cache")
	} else {
		logrus.Info("Agendador de limpeza de cache iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		insightService,
		authenticator,
		cacheCleanupService,
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
