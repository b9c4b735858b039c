package optimizing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/internal/usecases/optimizing/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Bid:    config.Bid{Min: 0.02, Max: 1000},
		Budget: config.Budget{Min: 1, Max: 1000000},
	}
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:        "acc1",
		UserID:    10,
		ProfileID: "profile-1",
		Status:    domain.AccountStatusActive,
	}
}

func TestExecutor_ComputeBid(t *testing.T) {
	executor := NewExecutor(testConfig(), nil)

	tests := []struct {
		name          string
		action        domain.Action
		currentBid    float64
		hasCurrentBid bool
		expected      float64
		expectedErr   error
	}{
		{
			name:          "set_bid usa o valor da ação direto",
			action:        domain.Action{Type: domain.ActionSetBid, Value: 1.25},
			hasCurrentBid: false,
			expected:      1.25,
		},
		{
			name:          "ajuste percentual negativo reduz o lance",
			action:        domain.Action{Type: domain.ActionAdjustBidPercentage, Value: -10},
			currentBid:    0.5,
			hasCurrentBid: true,
			expected:      0.45,
		},
		{
			name:          "ajuste percentual arredonda para duas casas",
			action:        domain.Action{Type: domain.ActionAdjustBidPercentage, Value: 33},
			currentBid:    1.0,
			hasCurrentBid: true,
			expected:      1.33,
		},
		{
			name:          "ajuste absoluto soma ao lance atual",
			action:        domain.Action{Type: domain.ActionAdjustBidAmount, Value: 0.05},
			currentBid:    0.4,
			hasCurrentBid: true,
			expected:      0.45,
		},
		{
			name:          "lance abaixo do mínimo é limitado ao mínimo",
			action:        domain.Action{Type: domain.ActionAdjustBidAmount, Value: -0.9},
			currentBid:    0.5,
			hasCurrentBid: true,
			expected:      0.02,
		},
		{
			name:          "lance acima do máximo é limitado ao máximo",
			action:        domain.Action{Type: domain.ActionSetBid, Value: 5000},
			hasCurrentBid: false,
			expected:      1000,
		},
		{
			name:          "ajuste percentual sem lance atual falha",
			action:        domain.Action{Type: domain.ActionAdjustBidPercentage, Value: -10},
			hasCurrentBid: false,
			expectedErr:   ErrMissingCurrentBid,
		},
		{
			name:          "ajuste absoluto sem lance atual falha",
			action:        domain.Action{Type: domain.ActionAdjustBidAmount, Value: 0.1},
			hasCurrentBid: false,
			expectedErr:   ErrMissingCurrentBid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newBid, err := executor.computeBid(tt.action, tt.currentBid, tt.hasCurrentBid)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, newBid)
		})
	}
}

func TestExecutor_Execute_KeywordBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)
	account := testAccount()

	rule := &domain.Rule{
		ID:           "rule1",
		TargetEntity: domain.EntityTypeKeyword,
		Action:       domain.Action{Type: domain.ActionAdjustBidPercentage, Value: -10},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeKeyword,
		EntityID:   "K1",
		CampaignID: "C1",
		Metrics: map[domain.Metric]float64{
			domain.MetricACOS: 0.45,
			domain.MetricBid:  0.5,
		},
	}

	mockPlatform.EXPECT().
		UpdateKeywordBid(account, "K1", 0.45).
		Return(&amazondomain.MutationResult{StatusCode: 207, Code: "SUCCESS"}, nil)

	results := executor.Execute(account, rule, snapshot)

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "K1", results[0].EntityID)
	require.NotNil(t, results[0].OldValue)
	require.NotNil(t, results[0].NewValue)
	assert.Equal(t, 0.5, *results[0].OldValue)
	assert.Equal(t, 0.45, *results[0].NewValue)
	assert.Equal(t, 207, results[0].StatusCode)
}

func TestExecutor_Execute_CampaignBidExpandsToKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)
	account := testAccount()

	rule := &domain.Rule{
		ID:           "rule1",
		TargetEntity: domain.EntityTypeCampaign,
		Action:       domain.Action{Type: domain.ActionAdjustBidPercentage, Value: -20},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "C1",
		CampaignID: "C1",
		Metrics:    map[domain.Metric]float64{domain.MetricSpend: 120},
	}

	mockPlatform.EXPECT().
		ListKeywordsByCampaign(account, "C1").
		Return([]amazondomain.Keyword{
			{KeywordID: "K1", CampaignID: "C1", State: amazondomain.EntityStateEnabled, Bid: 1.0},
			{KeywordID: "K2", CampaignID: "C1", State: amazondomain.EntityStateEnabled, Bid: 0.5},
			{KeywordID: "K3", CampaignID: "C1", State: amazondomain.EntityStateEnabled, Bid: 2.0},
		}, nil)

	// A segunda palavra-chave falha, as irmãs seguem sendo ajustadas
	mockPlatform.EXPECT().
		UpdateKeywordBid(account, "K1", 0.8).
		Return(&amazondomain.MutationResult{StatusCode: 207}, nil)
	mockPlatform.EXPECT().
		UpdateKeywordBid(account, "K2", 0.4).
		Return(nil, errors.New("erro na resposta da API. Status: 500"))
	mockPlatform.EXPECT().
		UpdateKeywordBid(account, "K3", 1.6).
		Return(&amazondomain.MutationResult{StatusCode: 207}, nil)

	results := executor.Execute(account, rule, snapshot)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestExecutor_Execute_ExpansionSkipsInactiveKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)
	account := testAccount()

	rule := &domain.Rule{
		ID:           "rule1",
		TargetEntity: domain.EntityTypeCampaign,
		Action:       domain.Action{Type: domain.ActionAdjustBidPercentage, Value: -20},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "C1",
		CampaignID: "C1",
		Metrics:    map[domain.Metric]float64{domain.MetricSpend: 120},
	}

	// Só a palavra-chave ativa recebe o ajuste; pausada e arquivada ficam fora
	mockPlatform.EXPECT().
		ListKeywordsByCampaign(account, "C1").
		Return([]amazondomain.Keyword{
			{KeywordID: "K1", CampaignID: "C1", State: amazondomain.EntityStateEnabled, Bid: 1.0},
			{KeywordID: "K2", CampaignID: "C1", State: amazondomain.EntityStatePaused, Bid: 0.5},
			{KeywordID: "K3", CampaignID: "C1", State: "archived", Bid: 2.0},
		}, nil)

	mockPlatform.EXPECT().
		UpdateKeywordBid(account, "K1", 0.8).
		Return(&amazondomain.MutationResult{StatusCode: 207}, nil)

	results := executor.Execute(account, rule, snapshot)

	require.Len(t, results, 1)
	assert.Equal(t, "K1", results[0].EntityID)
	assert.NoError(t, results[0].Err)
}

func TestExecutor_Execute_CampaignWithoutKeywords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)
	account := testAccount()

	rule := &domain.Rule{
		TargetEntity: domain.EntityTypeCampaign,
		Action:       domain.Action{Type: domain.ActionSetBid, Value: 0.7},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "C1",
		CampaignID: "C1",
	}

	mockPlatform.EXPECT().
		ListKeywordsByCampaign(account, "C1").
		Return([]amazondomain.Keyword{}, nil)

	results := executor.Execute(account, rule, snapshot)
	assert.Empty(t, results)
}

func TestExecutor_Execute_StateActions(t *testing.T) {
	tests := []struct {
		name          string
		action        domain.ActionType
		entityType    domain.EntityType
		expectedState string
	}{
		{"pausar campanha", domain.ActionPauseEntity, domain.EntityTypeCampaign, amazondomain.EntityStatePaused},
		{"reativar campanha", domain.ActionEnableEntity, domain.EntityTypeCampaign, amazondomain.EntityStateEnabled},
		{"pausar palavra-chave", domain.ActionPauseEntity, domain.EntityTypeKeyword, amazondomain.EntityStatePaused},
		{"reativar palavra-chave", domain.ActionEnableEntity, domain.EntityTypeKeyword, amazondomain.EntityStateEnabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPlatform := mocks.NewMockAdsPlatform(ctrl)
			executor := NewExecutor(testConfig(), mockPlatform)
			account := testAccount()

			rule := &domain.Rule{Action: domain.Action{Type: tt.action}}
			snapshot := &domain.PerformanceSnapshot{
				EntityType: tt.entityType,
				EntityID:   "E1",
			}

			if tt.entityType == domain.EntityTypeCampaign {
				mockPlatform.EXPECT().
					UpdateCampaignState(account, "E1", tt.expectedState).
					Return(&amazondomain.MutationResult{StatusCode: 207}, nil)
			} else {
				mockPlatform.EXPECT().
					UpdateKeywordState(account, "E1", tt.expectedState).
					Return(&amazondomain.MutationResult{StatusCode: 207}, nil)
			}

			results := executor.Execute(account, rule, snapshot)

			require.Len(t, results, 1)
			assert.NoError(t, results[0].Err)
			assert.Equal(t, 207, results[0].StatusCode)
		})
	}
}

func TestExecutor_ComputeBudget(t *testing.T) {
	executor := NewExecutor(testConfig(), nil)

	tests := []struct {
		name          string
		action        domain.Action
		currentBudget float64
		expected      float64
	}{
		{
			name:          "ajuste percentual positivo aumenta o orçamento",
			action:        domain.Action{Type: domain.ActionAdjustBudgetPercentage, Value: 20},
			currentBudget: 50,
			expected:      60,
		},
		{
			name:          "ajuste percentual arredonda para duas casas",
			action:        domain.Action{Type: domain.ActionAdjustBudgetPercentage, Value: -33},
			currentBudget: 10,
			expected:      6.7,
		},
		{
			name:          "ajuste absoluto soma ao orçamento atual",
			action:        domain.Action{Type: domain.ActionAdjustBudgetAmount, Value: -5},
			currentBudget: 20,
			expected:      15,
		},
		{
			name:          "orçamento abaixo do mínimo é limitado ao mínimo",
			action:        domain.Action{Type: domain.ActionAdjustBudgetAmount, Value: -50},
			currentBudget: 10,
			expected:      1,
		},
		{
			name:          "orçamento acima do máximo é limitado ao máximo",
			action:        domain.Action{Type: domain.ActionAdjustBudgetPercentage, Value: 1000},
			currentBudget: 500000,
			expected:      1000000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newBudget, err := executor.computeBudget(tt.action, tt.currentBudget)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, newBudget)
		})
	}
}

func TestExecutor_Execute_CampaignBudgetAdjustment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)
	account := testAccount()

	rule := &domain.Rule{
		ID:           "rule1",
		TargetEntity: domain.EntityTypeCampaign,
		Action:       domain.Action{Type: domain.ActionAdjustBudgetPercentage, Value: -25},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "C1",
		CampaignID: "C1",
		Metrics: map[domain.Metric]float64{
			domain.MetricACOS:   0.6,
			domain.MetricBudget: 40,
		},
	}

	mockPlatform.EXPECT().
		UpdateCampaignBudget(account, "C1", 30.0).
		Return(&amazondomain.MutationResult{StatusCode: 207, Code: "SUCCESS"}, nil)

	results := executor.Execute(account, rule, snapshot)

	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	require.NotNil(t, results[0].OldValue)
	require.NotNil(t, results[0].NewValue)
	assert.Equal(t, 40.0, *results[0].OldValue)
	assert.Equal(t, 30.0, *results[0].NewValue)
	assert.Equal(t, 207, results[0].StatusCode)
}

func TestExecutor_Execute_BudgetWithoutCurrentValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)

	rule := &domain.Rule{
		TargetEntity: domain.EntityTypeCampaign,
		Action:       domain.Action{Type: domain.ActionAdjustBudgetAmount, Value: 10},
	}

	// Snapshot sem orçamento conhecido: nenhuma chamada remota acontece
	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeCampaign,
		EntityID:   "C1",
		CampaignID: "C1",
		Metrics:    map[domain.Metric]float64{domain.MetricSpend: 80},
	}

	results := executor.Execute(testAccount(), rule, snapshot)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrMissingCurrentBudget)
}

func TestExecutor_Execute_BudgetOnKeywordIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)

	rule := &domain.Rule{
		Action: domain.Action{Type: domain.ActionAdjustBudgetPercentage, Value: 10},
	}

	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeKeyword,
		EntityID:   "K1",
		CampaignID: "C1",
	}

	results := executor.Execute(testAccount(), rule, snapshot)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrUnsupportedAction)
}

func TestExecutor_Execute_UnsupportedStateEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlatform := mocks.NewMockAdsPlatform(ctrl)
	executor := NewExecutor(testConfig(), mockPlatform)

	rule := &domain.Rule{Action: domain.Action{Type: domain.ActionPauseEntity}}
	snapshot := &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeAdGroup,
		EntityID:   "G1",
	}

	results := executor.Execute(testAccount(), rule, snapshot)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrUnsupportedAction)
}
