package optimizing

import (
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/pkg/utils"
)

// AuditLogger grava uma linha na trilha de auditoria para cada ação tentada,
// bem ou mal sucedida. Falha ao gravar não interrompe o ciclo: a otimização
// em si já aconteceu.
type AuditLogger struct {
	logRepo repository.OptimizationLogRepository
}

func NewAuditLogger(logRepo repository.OptimizationLogRepository) *AuditLogger {
	return &AuditLogger{
		logRepo: logRepo,
	}
}

func (a *AuditLogger) Record(account *domain.Account, rule *domain.Rule, snapshot *domain.PerformanceSnapshot, result ActionResult) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithField("error", err.Error()).Error("optimization: failed to generate audit log id")
		return
	}

	details := domain.OptimizationLogDetails{
		ActionValue: rule.Action.Value,
		OldValue:    result.OldValue,
		NewValue:    result.NewValue,
		StatusCode:  result.StatusCode,
		Result:      result.Response,
	}

	if snapshot != nil {
		details.Performance = snapshot.Metrics
	}

	if result.Err != nil {
		details.Error = result.Err.Error()
	}

	log := &domain.OptimizationLog{
		ID:         id,
		UserID:     account.UserID,
		RuleID:     rule.ID,
		AccountID:  account.ID,
		EntityType: result.EntityType,
		EntityID:   result.EntityID,
		Action:     rule.Action.Type,
		Reason:     rule.Reason(),
		Success:    result.Err == nil,
	}
	log.Details = details

	if err := a.logRepo.Insert(log); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"rule_id":    rule.ID,
			"entity_id":  result.EntityID,
			"error":      err.Error(),
		}).Error("optimization: failed to persist audit log")
	}
}
