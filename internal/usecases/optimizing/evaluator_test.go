package optimizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/robotads/robotads-api/internal/domain"
)

func snapshotWith(entityID string, metrics map[domain.Metric]float64) *domain.PerformanceSnapshot {
	return &domain.PerformanceSnapshot{
		EntityType: domain.EntityTypeKeyword,
		EntityID:   entityID,
		CampaignID: "C1",
		Metrics:    metrics,
	}
}

func TestEvaluateConditions(t *testing.T) {
	tests := []struct {
		name       string
		conditions []domain.Condition
		snapshots  SnapshotSet
		expected   bool
	}{
		{
			name: "ACOS alto na janela de 7 dias dispara a condição",
			conditions: []domain.Condition{
				{Metric: domain.MetricACOS, Comparison: domain.OperatorGreaterThan, Value: 0.3, LookbackDays: 7},
			},
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricACOS: 0.45})},
			},
			expected: true,
		},
		{
			name: "semântica AND: uma condição reprovada derruba a regra",
			conditions: []domain.Condition{
				{Metric: domain.MetricACOS, Comparison: domain.OperatorGreaterThan, Value: 0.3, LookbackDays: 7},
				{Metric: domain.MetricClicks, Comparison: domain.OperatorGreaterOrEqual, Value: 100, LookbackDays: 7},
			},
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{
					domain.MetricACOS:   0.45,
					domain.MetricClicks: 40,
				})},
			},
			expected: false,
		},
		{
			name: "condições em janelas diferentes usam snapshots diferentes",
			conditions: []domain.Condition{
				{Metric: domain.MetricSpend, Comparison: domain.OperatorGreaterThan, Value: 50, LookbackDays: 7},
				{Metric: domain.MetricOrders, Comparison: domain.OperatorEqual, Value: 0, LookbackDays: 30},
			},
			snapshots: SnapshotSet{
				7:  {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricSpend: 80})},
				30: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricOrders: 0})},
			},
			expected: true,
		},
		{
			name: "métrica ausente no snapshot nunca dispara",
			conditions: []domain.Condition{
				{Metric: domain.MetricACOS, Comparison: domain.OperatorGreaterThan, Value: 0.3, LookbackDays: 7},
			},
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricSpend: 12.5})},
			},
			expected: false,
		},
		{
			name: "entidade fora da janela da condição nunca dispara",
			conditions: []domain.Condition{
				{Metric: domain.MetricSpend, Comparison: domain.OperatorGreaterThan, Value: 0, LookbackDays: 30},
			},
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricSpend: 10})},
			},
			expected: false,
		},
		{
			name:       "regra sem condições nunca dispara",
			conditions: nil,
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricSpend: 10})},
			},
			expected: false,
		},
		{
			name: "lookback zero usa a janela padrão de 7 dias",
			conditions: []domain.Condition{
				{Metric: domain.MetricClicks, Comparison: domain.OperatorGreaterThan, Value: 5},
			},
			snapshots: SnapshotSet{
				7: {"K1": snapshotWith("K1", map[domain.Metric]float64{domain.MetricClicks: 9})},
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateConditions("K1", tt.conditions, tt.snapshots)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		op        domain.Operator
		threshold float64
		expected  bool
	}{
		{"maior que", 0.45, domain.OperatorGreaterThan, 0.3, true},
		{"maior que no limite", 0.3, domain.OperatorGreaterThan, 0.3, false},
		{"menor que", 2, domain.OperatorLessThan, 5, true},
		{"maior ou igual no limite", 100, domain.OperatorGreaterOrEqual, 100, true},
		{"menor ou igual", 99, domain.OperatorLessOrEqual, 100, true},
		{"igualdade exata", 1.5, domain.OperatorEqual, 1.5, true},
		{"igualdade tolerante a ruído de ponto flutuante", 0.1 + 0.2, domain.OperatorEqual, 0.3, true},
		{"igualdade dentro do epsilon", 1.505, domain.OperatorEqual, 1.5, true},
		{"igualdade fora do epsilon", 1.52, domain.OperatorEqual, 1.5, false},
		{"operador desconhecido reprova", 1, domain.Operator("!="), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, compare(tt.value, tt.op, tt.threshold))
		})
	}
}
