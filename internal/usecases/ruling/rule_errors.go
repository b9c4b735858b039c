package ruling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de regras
var (
	ErrRuleIDRequired   = errors.New("rule ID is required")
	ErrRuleNameRequired = errors.New("rule name is required")
	ErrRuleNotFound     = errors.New("rule not found")
	ErrRuleForbidden    = errors.New("rule belongs to another user")

	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating rule ID")
)

// RuleError é um erro com contexto adicional para regras
type RuleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	RuleID  string // ID da regra envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *RuleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

func NewRuleError(err error, code string, details string) *RuleError {
	return &RuleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewRuleErrorWithID(err error, code string, ruleID string, details string) *RuleError {
	return &RuleError{
		Err:     err,
		Code:    code,
		RuleID:  ruleID,
		Details: details,
	}
}
