package ruling

import (
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/pkg/apiErrors"
	"github.com/robotads/robotads-api/pkg/utils"
)

// RuleService concentra o CRUD das regras de otimização de um usuário
type RuleService interface {
	ListRules(userID int) ([]*domain.Rule, error)
	GetRule(userID int, ruleID string) (*domain.Rule, error)
	CreateRule(rule *domain.Rule) (*domain.Rule, error)
	UpdateRule(rule *domain.Rule) (*domain.Rule, error)
	DeleteRule(userID int, ruleID string) error
}

type Service struct {
	ruleRepository repository.RuleRepository
}

func NewService(ruleRepository repository.RuleRepository) RuleService {
	return &Service{
		ruleRepository: ruleRepository,
	}
}

func (s *Service) ListRules(userID int) ([]*domain.Rule, error) {
	rules, err := s.ruleRepository.ListRules(userID)
	if err != nil {
		logrus.Error("Error listing rules on the repository:", err)
		return nil, NewRuleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar regras no banco de dados")
	}

	return rules, nil
}

func (s *Service) GetRule(userID int, ruleID string) (*domain.Rule, error) {
	if ruleID == "" {
		return nil, NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da regra é obrigatório")
	}

	rule, err := s.ruleRepository.GetRuleByID(ruleID)
	if err != nil {
		logrus.Error("Error getting rule by id on the repository:", err)
		return nil, NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao buscar regra no banco de dados")
	}

	if rule == nil {
		return nil, NewRuleErrorWithID(ErrRuleNotFound, apiErrors.ErrInvalidRequest, ruleID, "Regra não encontrada")
	}

	// Regras são privadas: um usuário nunca enxerga as regras de outro
	if rule.UserID != userID {
		return nil, NewRuleErrorWithID(ErrRuleForbidden, apiErrors.ErrInsufficientPrivilege, ruleID, "Regra pertence a outro usuário")
	}

	return rule, nil
}

func (s *Service) CreateRule(rule *domain.Rule) (*domain.Rule, error) {
	if rule.Name == "" {
		return nil, NewRuleError(ErrRuleNameRequired, apiErrors.ErrMissingRequiredData, "Nome da regra é obrigatório")
	}

	applyRuleDefaults(rule)

	if err := rule.Validate(); err != nil {
		return nil, NewRuleError(err, apiErrors.ErrInvalidRequest, err.Error())
	}

	ruleID, err := utils.GenerateID()
	if err != nil {
		return nil, NewRuleError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para regra")
	}
	rule.ID = ruleID

	if err := s.ruleRepository.CreateRule(rule); err != nil {
		logrus.Error("Error creating rule on the repository:", err)
		return nil, NewRuleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar regra no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"user_id":   rule.UserID,
		"rule_name": rule.Name,
	}).Info("Regra de otimização criada")

	return rule, nil
}

func (s *Service) UpdateRule(rule *domain.Rule) (*domain.Rule, error) {
	if rule.ID == "" {
		return nil, NewRuleError(ErrRuleIDRequired, apiErrors.ErrMissingRequiredData, "Identificador da regra é obrigatório")
	}

	existing, err := s.GetRule(rule.UserID, rule.ID)
	if err != nil {
		return nil, err
	}

	applyRuleDefaults(rule)

	if err := rule.Validate(); err != nil {
		return nil, NewRuleErrorWithID(err, apiErrors.ErrInvalidRequest, rule.ID, err.Error())
	}

	rule.LastRun = existing.LastRun
	rule.CreatedAt = existing.CreatedAt

	if err := s.ruleRepository.UpdateRule(rule); err != nil {
		logrus.Error("Error updating rule on the repository:", err)
		return nil, NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rule.ID, "Falha ao atualizar regra no banco de dados")
	}

	return rule, nil
}

func (s *Service) DeleteRule(userID int, ruleID string) error {
	if _, err := s.GetRule(userID, ruleID); err != nil {
		return err
	}

	if err := s.ruleRepository.DeleteRule(ruleID); err != nil {
		logrus.Error("Error deleting rule on the repository:", err)
		return NewRuleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, ruleID, "Falha ao excluir regra no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": ruleID,
		"user_id": userID,
	}).Info("Regra de otimização excluída")

	return nil
}

// applyRuleDefaults preenche escopo, frequência e janelas ausentes
func applyRuleDefaults(rule *domain.Rule) {
	if rule.MatchScope == "" {
		rule.MatchScope = domain.MatchScopeAll
	}

	if rule.FrequencyHours <= 0 {
		rule.FrequencyHours = domain.DefaultFrequencyHours
	}

	for i := range rule.Conditions {
		if rule.Conditions[i].LookbackDays <= 0 {
			rule.Conditions[i].LookbackDays = domain.DefaultLookbackDays
		}
	}
}
