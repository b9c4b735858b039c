package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/robotads/robotads-api/infrastructure/repository/mocks"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/usecases/optimizing"
	optimizingmocks "github.com/robotads/robotads-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ctrl *gomock.Controller) (*OptimizationSyncService, *mocks.MockAccountRepository, *optimizingmocks.MockOptimizer) {
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockOptimizer := optimizingmocks.NewMockOptimizer(ctrl)

	service := &OptimizationSyncService{
		config: OptimizationSyncConfig{
			CronSchedule:     "0 2 * * *",
			Timezone:         "UTC",
			MinIntervalHours: 24,
			SyncEnabled:      true,
		},
		accountRepo: mockAccountRepo,
		optimizer:   mockOptimizer,
	}

	return service, mockAccountRepo, mockOptimizer
}

func TestOptimizationSyncService_RunCycle_AccountIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockAccountRepo, mockOptimizer := newTestSyncService(ctrl)

	accounts := []*domain.Account{
		{ID: "acc1", Name: "Conta 1", Status: domain.AccountStatusActive},
		{ID: "acc2", Name: "Conta 2", Status: domain.AccountStatusActive},
	}

	mockAccountRepo.EXPECT().ListOptimizableAccounts().Return(accounts, nil)

	// A falha da primeira conta não impede a otimização da segunda
	mockOptimizer.EXPECT().OptimizeAccount(accounts[0]).Return(errors.New("erro na resposta da API"))
	mockOptimizer.EXPECT().OptimizeAccount(accounts[1]).Return(nil)

	service.runOptimizationCycle("")

	assert.False(t, service.GetStatus()["sync_running"].(bool))
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestOptimizationSyncService_RunCycle_SkipsRecentlyOptimized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockAccountRepo, mockOptimizer := newTestSyncService(ctrl)

	recent := time.Now().Add(-2 * time.Hour)
	stale := time.Now().Add(-48 * time.Hour)

	accounts := []*domain.Account{
		{ID: "acc1", Name: "Otimizada há pouco", Status: domain.AccountStatusActive, LastOptimizedAt: &recent},
		{ID: "acc2", Name: "Nunca otimizada", Status: domain.AccountStatusActive},
		{ID: "acc3", Name: "Otimizada há dois dias", Status: domain.AccountStatusActive, LastOptimizedAt: &stale},
	}

	mockAccountRepo.EXPECT().ListOptimizableAccounts().Return(accounts, nil)

	// acc1 fica de fora: otimizada dentro do intervalo mínimo de 24h
	mockOptimizer.EXPECT().OptimizeAccount(accounts[1]).Return(nil)
	mockOptimizer.EXPECT().OptimizeAccount(accounts[2]).Return(nil)

	service.runOptimizationCycle("")
}

func TestOptimizationSyncService_ManualSingleAccountBypassesInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockAccountRepo, _ := newTestSyncService(ctrl)

	recent := time.Now().Add(-time.Hour)
	account := &domain.Account{
		ID:              "acc1",
		Status:          domain.AccountStatusActive,
		LastOptimizedAt: &recent,
	}

	mockAccountRepo.EXPECT().GetAccountByID("acc1").Return(account, nil)

	accounts, err := service.getAccountsToOptimize("acc1")

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acc1", accounts[0].ID)
}

func TestOptimizationSyncService_ManualUnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockAccountRepo, _ := newTestSyncService(ctrl)

	mockAccountRepo.EXPECT().GetAccountByID("missing").Return(nil, nil)

	accounts, err := service.getAccountsToOptimize("missing")

	assert.Nil(t, accounts)
	assert.ErrorIs(t, err, optimizing.ErrAccountNotFound)
}

func TestOptimizationSyncService_TriggerManualSync_RejectsConcurrentRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestSyncService(ctrl)

	// Simula um ciclo em andamento
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	started := service.TriggerManualSync("")
	assert.False(t, started)
}

func TestOptimizationSyncService_OverlappingCycleIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestSyncService(ctrl)

	// Com um ciclo marcado como em andamento, uma nova execução retorna sem
	// tocar no repositório nem no otimizador
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.runOptimizationCycle("")
}

func TestOptimizationSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestSyncService(ctrl)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, 24, status["sync_min_interval_h"])
	assert.Equal(t, false, status["sync_running"])
}
