package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/robotads/robotads-api/infrastructure/database/postgres"
	"github.com/robotads/robotads-api/internal/domain"
)

const (
	rulesTable   = "rules r"
	rulesColumns = "r.id, r.user_id, r.name, r.enabled, r.priority, r.target_entity, r.match_scope, r.campaign_ids, r.conditions, r.action, r.frequency_hours, r.last_run, r.created_at, r.updated_at"
)

type RuleRepository interface {
	GetRuleByID(ruleID string) (*domain.Rule, error)
	ListRules(userID int) ([]*domain.Rule, error)
	ListEnabledByUser(userID int) ([]*domain.Rule, error)
	CreateRule(rule *domain.Rule) error
	UpdateRule(rule *domain.Rule) error
	DeleteRule(ruleID string) error
	UpdateLastRun(ruleID string, ranAt time.Time) error
}

type ruleRepository struct {
	conn *postgres.Connection
}

func NewRuleRepository(conn *postgres.Connection) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

func (r *ruleRepository) GetRuleByID(ruleID string) (*domain.Rule, error) {
	rulesSQL, rulesArgs, err := squirrel.
		Select(rulesColumns).
		From(rulesTable).
		Where(squirrel.Eq{"r.id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(rulesSQL, rulesArgs...)

	rule, err := deserializeRule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return rule, nil
}

func (r *ruleRepository) ListRules(userID int) ([]*domain.Rule, error) {
	return r.listRules(squirrel.Eq{"r.user_id": userID})
}

// ListEnabledByUser retorna as regras ativas do usuário na ordem de
// avaliação: prioridade crescente, desempate pela data de criação
func (r *ruleRepository) ListEnabledByUser(userID int) ([]*domain.Rule, error) {
	return r.listRules(squirrel.Eq{"r.user_id": userID, "r.enabled": true})
}

func (r *ruleRepository) listRules(whereClause map[string]interface{}) ([]*domain.Rule, error) {
	rulesSQL, rulesArgs, err := squirrel.
		Select(rulesColumns).
		From(rulesTable).
		Where(whereClause).
		OrderBy("r.priority ASC, r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(rulesSQL, rulesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	rules := make([]*domain.Rule, 0)

	for rows.Next() {
		rule, err := deserializeRule(rows)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func deserializeRule(row scanner) (*domain.Rule, error) {
	rule := &domain.Rule{}

	var (
		campaignIDs    pq.StringArray
		conditionsJSON []byte
		actionJSON     []byte
		lastRun        sql.NullTime
	)

	if err := row.Scan(
		&rule.ID,
		&rule.UserID,
		&rule.Name,
		&rule.Enabled,
		&rule.Priority,
		&rule.TargetEntity,
		&rule.MatchScope,
		&campaignIDs,
		&conditionsJSON,
		&actionJSON,
		&rule.FrequencyHours,
		&lastRun,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	); err != nil {
		return nil, err
	}

	rule.CampaignIDs = campaignIDs

	if err := jsoniter.Unmarshal(conditionsJSON, &rule.Conditions); err != nil {
		return nil, fmt.Errorf("erro ao deserializar condições da regra %s: %w", rule.ID, err)
	}

	if err := jsoniter.Unmarshal(actionJSON, &rule.Action); err != nil {
		return nil, fmt.Errorf("erro ao deserializar ação da regra %s: %w", rule.ID, err)
	}

	if lastRun.Valid {
		rule.LastRun = &lastRun.Time
	}

	return rule, nil
}

func (r *ruleRepository) CreateRule(rule *domain.Rule) error {
	conditionsJSON, actionJSON, err := serializeRuleParts(rule)
	if err != nil {
		return err
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("rules").
		Columns("id", "user_id", "name", "enabled", "priority", "target_entity", "match_scope", "campaign_ids", "conditions", "action", "frequency_hours").
		Values(
			rule.ID,
			rule.UserID,
			rule.Name,
			rule.Enabled,
			rule.Priority,
			rule.TargetEntity,
			rule.MatchScope,
			pq.StringArray(rule.CampaignIDs),
			conditionsJSON,
			actionJSON,
			rule.FrequencyHours,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *ruleRepository) UpdateRule(rule *domain.Rule) error {
	if rule.ID == "" {
		return errors.New("ID is required")
	}

	conditionsJSON, actionJSON, err := serializeRuleParts(rule)
	if err != nil {
		return err
	}

	sqlQuery, args, err := squirrel.
		Update("rules").
		Set("name", rule.Name).
		Set("enabled", rule.Enabled).
		Set("priority", rule.Priority).
		Set("target_entity", rule.TargetEntity).
		Set("match_scope", rule.MatchScope).
		Set("campaign_ids", pq.StringArray(rule.CampaignIDs)).
		Set("conditions", conditionsJSON).
		Set("action", actionJSON).
		Set("frequency_hours", rule.FrequencyHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("rule not found")
	}

	return nil
}

func serializeRuleParts(rule *domain.Rule) ([]byte, []byte, error) {
	conditionsJSON, err := jsoniter.Marshal(rule.Conditions)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar condições: %w", err)
	}

	actionJSON, err := jsoniter.Marshal(rule.Action)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar ação: %w", err)
	}

	return conditionsJSON, actionJSON, nil
}

func (r *ruleRepository) DeleteRule(ruleID string) error {
	sqlQuery, args, err := squirrel.
		Delete("rules").
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("rule not found")
	}

	return nil
}

// UpdateLastRun marca a regra como executada ao fim do seu ciclo, com ou sem
// falhas parciais: a checagem de frequência conta qualquer tentativa.
func (r *ruleRepository) UpdateLastRun(ruleID string, ranAt time.Time) error {
	sqlQuery, args, err := squirrel.
		Update("rules").
		Set("last_run", ranAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
