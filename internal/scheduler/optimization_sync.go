package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/usecases/optimizing"
)

// OptimizationSyncConfig representa a configuração do agendador do ciclo de otimização
type OptimizationSyncConfig struct {
	CronSchedule     string
	Timezone         string
	MinIntervalHours int
	SyncEnabled      bool
}

// OptimizationSyncService gerencia o agendamento e execução do ciclo de
// otimização das contas de anúncios
type OptimizationSyncService struct {
	scheduler           *gocron.Scheduler
	config              OptimizationSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	optimizer           optimizing.Optimizer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOptimizationSyncService cria uma nova instância do serviço de sincronização do ciclo de otimização
func NewOptimizationSyncService(
	accountRepo repository.AccountRepository,
	optimizer optimizing.Optimizer,
	appConfig *config.Config,
) *OptimizationSyncService {
	// Criar a configuração com base na config global
	syncConfig := OptimizationSyncConfig{
		CronSchedule:     appConfig.OptimizationSync.CronSchedule,
		Timezone:         appConfig.OptimizationSync.Timezone,
		MinIntervalHours: appConfig.OptimizationSync.MinIntervalHours,
		SyncEnabled:      appConfig.OptimizationSync.Enabled,
	}

	// Criar o agendador no fuso configurado. O padrão de 2h da manhã só faz
	// sentido no fuso certo.
	location, err := time.LoadLocation(syncConfig.Timezone)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"timezone": syncConfig.Timezone,
			"error":    err.Error(),
		}).Warn("Fuso horário inválido para o ciclo de otimização, usando fuso local")
		location = time.Local
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      syncConfig.CronSchedule,
		"timezone":           syncConfig.Timezone,
		"min_interval_hours": syncConfig.MinIntervalHours,
		"sync_enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do ciclo de otimização carregada")

	return &OptimizationSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		accountRepo: accountRepo,
		optimizer:   optimizer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *OptimizationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ciclo de otimização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do ciclo de otimização")

	// Agendar o ciclo de otimização
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runOptimizationCycle("")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de otimização: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do ciclo de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// runOptimizationCycle roda o ciclo para todas as contas elegíveis, ou para
// uma única conta quando accountID é informado (disparo manual). Uma execução
// por vez: disparos sobrepostos são ignorados.
func (s *OptimizationSyncService) runOptimizationCycle(accountID string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de otimização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	accounts, err := s.getAccountsToOptimize(accountID)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para o ciclo de otimização")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta elegível encontrada para o ciclo de otimização")
		return
	}

	logrus.WithField("accounts", len(accounts)).Info("Iniciando ciclo de otimização")

	succeeded := 0
	failed := 0

	// As contas são processadas em sequência. A falha de uma conta nunca
	// interrompe o ciclo das demais.
	for _, account := range accounts {
		if err := s.optimizer.OptimizeAccount(account); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"account_id":   account.ID,
				"account_name": account.Name,
				"error":        err.Error(),
			}).Error("Erro ao otimizar conta")
			continue
		}
		succeeded++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"accounts":  len(accounts),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Ciclo de otimização concluído")

	s.lastSyncCompletedAt = time.Now()
}

// getAccountsToOptimize resolve o conjunto de contas do ciclo. Disparos
// manuais de conta única pulam a checagem de intervalo mínimo.
func (s *OptimizationSyncService) getAccountsToOptimize(accountID string) ([]*domain.Account, error) {
	if accountID != "" {
		account, err := s.accountRepo.GetAccountByID(accountID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, fmt.Errorf("%w: %s", optimizing.ErrAccountNotFound, accountID)
		}
		return []*domain.Account{account}, nil
	}

	accounts, err := s.accountRepo.ListOptimizableAccounts()
	if err != nil {
		return nil, err
	}

	minInterval := time.Duration(s.config.MinIntervalHours) * time.Hour

	eligible := make([]*domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.LastOptimizedAt != nil && time.Since(*account.LastOptimizedAt) < minInterval {
			logrus.WithFields(logrus.Fields{
				"account_id":        account.ID,
				"last_optimized_at": account.LastOptimizedAt,
			}).Info("Conta otimizada recentemente, pulando neste ciclo")
			continue
		}
		eligible = append(eligible, account)
	}

	return eligible, nil
}

// TriggerManualSync inicia manualmente um ciclo de otimização. Com accountID
// vazio roda para todas as contas elegíveis. Retorna false quando um ciclo
// já está em andamento.
func (s *OptimizationSyncService) TriggerManualSync(accountID string) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de otimização já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.WithField("account_id", accountID).Info("Iniciando ciclo de otimização manual")
	go s.runOptimizationCycle(accountID)

	return true
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timezone":          s.config.Timezone,
		"sync_min_interval_h":    s.config.MinIntervalHours,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
