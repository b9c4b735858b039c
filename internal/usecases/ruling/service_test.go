package ruling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/robotads/robotads-api/infrastructure/repository/mocks"
	"github.com/robotads/robotads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validRule(userID int) *domain.Rule {
	return &domain.Rule{
		UserID:       userID,
		Name:         "Pausar palavras-chave sem conversão",
		Enabled:      true,
		Priority:     1,
		TargetEntity: domain.EntityTypeKeyword,
		Conditions: []domain.Condition{
			{Metric: domain.MetricClicks, Comparison: domain.OperatorGreaterOrEqual, Value: 50},
			{Metric: domain.MetricOrders, Comparison: domain.OperatorEqual, Value: 0},
		},
		Action: domain.Action{Type: domain.ActionPauseEntity},
	}
}

func TestService_CreateRule(t *testing.T) {
	tests := []struct {
		name        string
		rule        *domain.Rule
		setup       func(repo *mocks.MockRuleRepository)
		expectedErr error
		validate    func(t *testing.T, created *domain.Rule)
	}{
		{
			name: "regra válida recebe id, escopo e janelas padrão",
			rule: validRule(10),
			setup: func(repo *mocks.MockRuleRepository) {
				repo.EXPECT().CreateRule(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, created *domain.Rule) {
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, domain.MatchScopeAll, created.MatchScope)
				assert.Equal(t, domain.DefaultFrequencyHours, created.FrequencyHours)
				for _, c := range created.Conditions {
					assert.Equal(t, domain.DefaultLookbackDays, c.LookbackDays)
				}
			},
		},
		{
			name:        "regra sem nome é rejeitada",
			rule:        &domain.Rule{UserID: 10},
			expectedErr: ErrRuleNameRequired,
		},
		{
			name: "métrica desconhecida é rejeitada antes do banco",
			rule: &domain.Rule{
				UserID:       10,
				Name:         "Regra inválida",
				TargetEntity: domain.EntityTypeKeyword,
				Conditions: []domain.Condition{
					{Metric: domain.Metric("cliques"), Comparison: domain.OperatorGreaterThan, Value: 1},
				},
				Action: domain.Action{Type: domain.ActionPauseEntity},
			},
			expectedErr: domain.ErrUnknownMetric,
		},
		{
			name: "entidade alvo ad_group é rejeitada",
			rule: &domain.Rule{
				UserID:       10,
				Name:         "Regra de grupo",
				TargetEntity: domain.EntityTypeAdGroup,
				Conditions: []domain.Condition{
					{Metric: domain.MetricClicks, Comparison: domain.OperatorGreaterThan, Value: 1},
				},
				Action: domain.Action{Type: domain.ActionPauseEntity},
			},
			expectedErr: domain.ErrUnknownTargetEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRuleRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			service := NewService(repo)
			created, err := service.CreateRule(tt.rule)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			tt.validate(t, created)
		})
	}
}

func TestService_GetRule_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(repo)

	stored := validRule(10)
	stored.ID = "rule1"

	repo.EXPECT().GetRuleByID("rule1").Return(stored, nil).Times(2)

	// Dono enxerga a regra
	rule, err := service.GetRule(10, "rule1")
	require.NoError(t, err)
	assert.Equal(t, "rule1", rule.ID)

	// Outro usuário é barrado
	rule, err = service.GetRule(99, "rule1")
	assert.Nil(t, rule)
	assert.ErrorIs(t, err, ErrRuleForbidden)
}

func TestService_GetRule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().GetRuleByID("missing").Return(nil, nil)

	rule, err := service.GetRule(10, "missing")
	assert.Nil(t, rule)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_UpdateRule_PreservesLastRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(repo)

	existing := validRule(10)
	existing.ID = "rule1"

	repo.EXPECT().GetRuleByID("rule1").Return(existing, nil)
	repo.EXPECT().UpdateRule(gomock.Any()).Return(nil)

	update := validRule(10)
	update.ID = "rule1"
	update.Name = "Nome novo"

	updated, err := service.UpdateRule(update)

	require.NoError(t, err)
	assert.Equal(t, existing.LastRun, updated.LastRun)
	assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Nome novo", updated.Name)
}

func TestService_DeleteRule_ChecksOwnershipFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRuleRepository(ctrl)
	service := NewService(repo)

	stored := validRule(10)
	stored.ID = "rule1"

	// O usuário 99 não é o dono: a exclusão nem chega ao repositório
	repo.EXPECT().GetRuleByID("rule1").Return(stored, nil)

	err := service.DeleteRule(99, "rule1")
	assert.ErrorIs(t, err, ErrRuleForbidden)
}
