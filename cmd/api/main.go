package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/database/postgres"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/api"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/scheduler"
	"github.com/robotads/robotads-api/internal/usecases/account"
	"github.com/robotads/robotads-api/internal/usecases/authenticating"
	"github.com/robotads/robotads-api/internal/usecases/optimizing"
	"github.com/robotads/robotads-api/internal/usecases/ruling"
	"github.com/robotads/robotads-api/internal/usecases/tokening"
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

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	ruleRepo := repository.NewRuleRepository(pgConn)
	optimizationLogRepo := repository.NewOptimizationLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	amazonClient := amazonclient.NewClient(cfg)
	amazonIntegrator := amazon.New(cfg, amazonClient)

	tokenManager := tokening.NewService(cfg, amazonClient, accountRepo)

	accountService := account.NewService(accountRepo, amazonClient)
	ruleService := ruling.NewService(ruleRepo)

	// Motor de otimização: avaliação de regras, execução de ações e auditoria
	optimizer := optimizing.NewService(
		cfg,
		amazonIntegrator,
		tokenManager,
		accountRepo,
		ruleRepo,
		optimizationLogRepo,
	)

	// Inicializa o agendador do ciclo de otimização
	optimizationSyncService := scheduler.NewOptimizationSyncService(
		accountRepo,
		optimizer,
		cfg,
	)

	// Inicia o agendador em background
	if err := optimizationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ciclo de otimização")
	} else {
		logrus.Info("Agendador do ciclo de otimização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountService,
		ruleService,
		authenticator,
		optimizationSyncService,
		optimizationLogRepo,
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
