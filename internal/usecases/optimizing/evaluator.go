package optimizing

import (
	"math"

	"github.com/robotads/robotads-api/internal/domain"
)

// SnapshotSet agrupa os snapshots de performance por janela de análise (em
// dias) e, dentro da janela, por entidade
type SnapshotSet map[int]map[string]*domain.PerformanceSnapshot

// EvaluateConditions aplica todas as condições da regra sobre a entidade.
// A semântica é AND: basta uma condição falhar para a regra não disparar.
// Métrica ausente ou não numérica reprova a condição, nunca dispara ação.
func EvaluateConditions(entityID string, conditions []domain.Condition, snapshots SnapshotSet) bool {
	if len(conditions) == 0 {
		return false
	}

	for _, condition := range conditions {
		snapshot, ok := snapshots[condition.Window()][entityID]
		if !ok {
			return false
		}

		value, ok := snapshot.MetricValue(condition.Metric)
		if !ok {
			return false
		}

		if !compare(value, condition.Comparison, condition.Value) {
			return false
		}
	}

	return true
}

// compare resolve um operador de comparação. A igualdade é tolerante a ruído
// de ponto flutuante: |a-b| < 0.01 conta como igual.
func compare(value float64, op domain.Operator, threshold float64) bool {
	switch op {
	case domain.OperatorGreaterThan:
		return value > threshold
	case domain.OperatorLessThan:
		return value < threshold
	case domain.OperatorGreaterOrEqual:
		return value >= threshold
	case domain.OperatorLessOrEqual:
		return value <= threshold
	case domain.OperatorEqual:
		return math.Abs(value-threshold) < domain.EqualityEpsilon
	}

	return false
}
