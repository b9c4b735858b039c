package domain

import "time"

// OptimizationLogDetails guarda o antes/depois de uma ação e o resultado
// bruto retornado pela API de anúncios
type OptimizationLogDetails struct {
	Performance map[Metric]float64 `json:"performance,omitempty"`
	ActionValue float64            `json:"action_value"`
	OldValue    *float64           `json:"old_value,omitempty"`
	NewValue    *float64           `json:"new_value,omitempty"`
	StatusCode  int                `json:"status_code,omitempty"`
	Result      string             `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// OptimizationLog é a trilha de auditoria: uma linha por ação tentada,
// bem ou mal sucedida
type OptimizationLog struct {
	ID         string                 `json:"id"`
	UserID     int                    `json:"user_id"`
	RuleID     string                 `json:"rule_id"`
	AccountID  string                 `json:"account_id"`
	EntityType EntityType             `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Action     ActionType             `json:"action"`
	Reason     string                 `json:"reason"`
	Success    bool                   `json:"success"`
	Details    OptimizationLogDetails `json:"details"`
	CreatedAt  time.Time              `json:"created_at"`
}

// OptimizationLogFilter filtra a listagem da trilha de auditoria
type OptimizationLogFilter struct {
	AccountID string
	RuleID    string
	UserID    int
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
}
