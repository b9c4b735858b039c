package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRule_Due(t *testing.T) {
	now := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		lastRun        *time.Time
		frequencyHours int
		expected       bool
	}{
		{"nunca executada roda imediatamente", nil, 24, true},
		{"executada há pouco não roda", timePtr(now.Add(-2 * time.Hour)), 24, false},
		{"frequência cumprida roda de novo", timePtr(now.Add(-25 * time.Hour)), 24, true},
		{"exatamente na frequência roda", timePtr(now.Add(-24 * time.Hour)), 24, true},
		{"frequência zero usa o padrão de 24h", timePtr(now.Add(-12 * time.Hour)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &Rule{LastRun: tt.lastRun, FrequencyHours: tt.frequencyHours}
			assert.Equal(t, tt.expected, rule.Due(now))
		})
	}
}

func TestRule_MatchesCampaign(t *testing.T) {
	tests := []struct {
		name        string
		scope       MatchScope
		campaignIDs []string
		campaignID  string
		expected    bool
	}{
		{"escopo all aceita qualquer campanha", MatchScopeAll, nil, "C1", true},
		{"escopo selected aceita campanha listada", MatchScopeSelected, []string{"C1", "C2"}, "C2", true},
		{"escopo selected rejeita campanha fora da lista", MatchScopeSelected, []string{"C1"}, "C9", false},
		{"escopo vazio se comporta como all", MatchScope(""), nil, "C1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &Rule{MatchScope: tt.scope, CampaignIDs: tt.campaignIDs}
			assert.Equal(t, tt.expected, rule.MatchesCampaign(tt.campaignID))
		})
	}
}

func TestRule_Validate(t *testing.T) {
	valid := &Rule{
		TargetEntity: EntityTypeKeyword,
		Conditions: []Condition{
			{Metric: MetricACOS, Comparison: OperatorGreaterThan, Value: 0.3},
		},
		Action: Action{Type: ActionAdjustBidPercentage, Value: -10},
	}
	assert.NoError(t, valid.Validate())

	budgetRule := &Rule{
		TargetEntity: EntityTypeCampaign,
		Conditions: []Condition{
			{Metric: MetricACOS, Comparison: OperatorLessThan, Value: 0.2},
		},
		Action: Action{Type: ActionAdjustBudgetAmount, Value: 5},
	}
	assert.NoError(t, budgetRule.Validate())

	tests := []struct {
		name        string
		mutate      func(r *Rule)
		expectedErr error
	}{
		{"sem condições", func(r *Rule) { r.Conditions = nil }, ErrRuleWithoutConditions},
		{"métrica desconhecida", func(r *Rule) { r.Conditions[0].Metric = "vendas" }, ErrUnknownMetric},
		{"operador desconhecido", func(r *Rule) { r.Conditions[0].Comparison = "!=" }, ErrUnknownOperator},
		{"ação desconhecida", func(r *Rule) { r.Action.Type = "duplicate_campaign" }, ErrUnknownAction},
		{"entidade alvo ad_group", func(r *Rule) { r.TargetEntity = EntityTypeAdGroup }, ErrUnknownTargetEntity},
		{"ajuste de orçamento com alvo de palavra-chave", func(r *Rule) {
			r.Action.Type = ActionAdjustBudgetPercentage
		}, ErrBudgetNeedsCampaign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &Rule{
				TargetEntity: EntityTypeKeyword,
				Conditions: []Condition{
					{Metric: MetricACOS, Comparison: OperatorGreaterThan, Value: 0.3},
				},
				Action: Action{Type: ActionAdjustBidPercentage, Value: -10},
			}
			tt.mutate(rule)
			assert.ErrorIs(t, rule.Validate(), tt.expectedErr)
		})
	}
}

func TestRule_Reason(t *testing.T) {
	rule := &Rule{
		Conditions: []Condition{
			{Metric: MetricACOS, Comparison: OperatorGreaterThan, Value: 0.3},
			{Metric: MetricClicks, Comparison: OperatorGreaterOrEqual, Value: 100},
		},
	}

	assert.Equal(t, "acos > 0.3 and clicks >= 100", rule.Reason())
}

func TestAccountStatus_SkipsOptimization(t *testing.T) {
	blocked := []AccountStatus{
		AccountStatusReauthRequired,
		AccountStatusPendingProfile,
		AccountStatusErrorNoProfile,
		AccountStatusErrorConfig,
	}
	for _, status := range blocked {
		assert.True(t, status.SkipsOptimization(), string(status))
	}

	recoverable := []AccountStatus{
		AccountStatusActive,
		AccountStatusErrorRateLimit,
		AccountStatusErrorSync,
		AccountStatusErrorProfileFetch,
	}
	for _, status := range recoverable {
		assert.False(t, status.SkipsOptimization(), string(status))
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
