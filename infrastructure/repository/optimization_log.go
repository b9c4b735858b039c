package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/robotads/robotads-api/infrastructure/database/postgres"
	"github.com/robotads/robotads-api/internal/domain"
)

const (
	optimizationLogsTable   = "optimization_logs ol"
	optimizationLogsColumns = "ol.id, ol.user_id, ol.rule_id, ol.account_id, ol.entity_type, ol.entity_id, ol.action, ol.reason, ol.success, ol.details, ol.created_at"

	defaultLogListLimit = 100
)

type OptimizationLogRepository interface {
	Insert(log *domain.OptimizationLog) error
	List(filter *domain.OptimizationLogFilter) ([]*domain.OptimizationLog, error)
}

type optimizationLogRepository struct {
	conn *postgres.Connection
}

func NewOptimizationLogRepository(conn *postgres.Connection) OptimizationLogRepository {
	return &optimizationLogRepository{
		conn: conn,
	}
}

func (o *optimizationLogRepository) Insert(log *domain.OptimizationLog) error {
	detailsJSON, err := jsoniter.Marshal(log.Details)
	if err != nil {
		return fmt.Errorf("erro ao serializar detalhes do log: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("optimization_logs").
		Columns("id", "user_id", "rule_id", "account_id", "entity_type", "entity_id", "action", "reason", "success", "details").
		Values(
			log.ID,
			log.UserID,
			log.RuleID,
			log.AccountID,
			log.EntityType,
			log.EntityID,
			log.Action,
			log.Reason,
			log.Success,
			detailsJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = o.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// List retorna a trilha de auditoria em ordem cronológica inversa
func (o *optimizationLogRepository) List(filter *domain.OptimizationLogFilter) ([]*domain.OptimizationLog, error) {
	queryBuilder := squirrel.
		Select(optimizationLogsColumns).
		From(optimizationLogsTable).
		OrderBy("ol.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	limit := uint64(defaultLogListLimit)
	if filter != nil {
		if filter.UserID > 0 {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"ol.user_id": filter.UserID})
		}
		if filter.AccountID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"ol.account_id": filter.AccountID})
		}
		if filter.RuleID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"ol.rule_id": filter.RuleID})
		}
		if filter.StartDate != nil && !filter.StartDate.IsZero() {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"ol.created_at": *filter.StartDate})
		}
		if filter.EndDate != nil && !filter.EndDate.IsZero() {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"ol.created_at": *filter.EndDate})
		}
		if filter.Limit > 0 {
			limit = filter.Limit
		}
	}

	logsSQL, logsArgs, err := queryBuilder.Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := o.conn.Query(logsSQL, logsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	logs := make([]*domain.OptimizationLog, 0)

	for rows.Next() {
		log, err := deserializeOptimizationLog(rows)
		if err != nil {
			return nil, err
		}

		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func deserializeOptimizationLog(row scanner) (*domain.OptimizationLog, error) {
	log := &domain.OptimizationLog{}

	var detailsJSON []byte

	if err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.RuleID,
		&log.AccountID,
		&log.EntityType,
		&log.EntityID,
		&log.Action,
		&log.Reason,
		&log.Success,
		&detailsJSON,
		&log.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(detailsJSON) > 0 {
		if err := jsoniter.Unmarshal(detailsJSON, &log.Details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar detalhes do log %s: %w", log.ID, err)
		}
	}

	return log, nil
}
