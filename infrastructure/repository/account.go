package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/robotads/robotads-api/infrastructure/database/postgres"
	"github.com/robotads/robotads-api/internal/domain"
)

const (
	accountsTable   = "accounts a"
	accountsColumns = "a.id, a.user_id, a.name, a.nickname, a.profile_id, a.region, a.access_token, a.refresh_token, a.token_expires_at, a.status, a.last_optimized_at, a.created_at, a.updated_at"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
	ListOptimizableAccounts() ([]*domain.Account, error)
	UpdateAccount(account *domain.UpdateAccountRequest) error
	UpdateStatus(accountID string, status domain.AccountStatus) error
	UpdateCredentials(accountID, accessToken, refreshToken string, expiresAt time.Time) error
	UpdateLastOptimizedAt(accountID string, optimizedAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, err
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select(accountsColumns).
		From(accountsTable).
		OrderBy("a.nickname ASC, a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts, nil
}

// ListOptimizableAccounts retorna as contas elegíveis para o ciclo de
// otimização: com refresh token cadastrado e sem status que bloqueie o ciclo
func (a *accountRepository) ListOptimizableAccounts() ([]*domain.Account, error) {
	blocked := make([]domain.AccountStatus, 0)
	for _, status := range domain.AllAccountStatuses {
		if status.SkipsOptimization() {
			blocked = append(blocked, status)
		}
	}

	queryBuilder := squirrel.
		Select(accountsColumns).
		From(accountsTable).
		Where(squirrel.NotEq{"a.refresh_token": ""}).
		Where(squirrel.NotEq{"a.status": blocked}).
		OrderBy("a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		acc, err := deserializeAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

// scanner cobre *sql.Row e *sql.Rows para reutilizar a deserialização
type scanner interface {
	Scan(dest ...any) error
}

func deserializeAccount(row scanner) (*domain.Account, error) {
	acc := &domain.Account{}

	var tokenExpiresAt, lastOptimizedAt sql.NullTime

	if err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.Name,
		&acc.Nickname,
		&acc.ProfileID,
		&acc.Region,
		&acc.AccessToken,
		&acc.RefreshToken,
		&tokenExpiresAt,
		&acc.Status,
		&lastOptimizedAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if tokenExpiresAt.Valid {
		acc.TokenExpiresAt = tokenExpiresAt.Time
	}

	if lastOptimizedAt.Valid {
		acc.LastOptimizedAt = &lastOptimizedAt.Time
	}

	return acc, nil
}

func (a *accountRepository) UpdateAccount(account *domain.UpdateAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	// Constrói a query de atualização
	queryBuilder := squirrel.
		Update("accounts").
		Where(squirrel.Eq{"id": account.ID}).
		Set("updated_at", squirrel.Expr("NOW()")).
		PlaceholderFormat(squirrel.Dollar)

	// Adiciona os campos que foram fornecidos para atualização
	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.ProfileID != nil {
		queryBuilder = queryBuilder.Set("profile_id", *account.ProfileID)
	}

	if account.Region != nil {
		queryBuilder = queryBuilder.Set("region", *account.Region)
	}

	if account.RefreshToken != nil {
		queryBuilder = queryBuilder.Set("refresh_token", *account.RefreshToken)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	// Converte a query para SQL
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	// Executa a query
	result, err := a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	// Verifica se algum registro foi afetado
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("account not found")
	}

	return nil
}

func (a *accountRepository) UpdateStatus(accountID string, status domain.AccountStatus) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateCredentials persiste o par de tokens renovado. Só é chamada depois de
// uma renovação bem sucedida: falha na Amazon nunca sobrescreve o que há no banco.
func (a *accountRepository) UpdateCredentials(accountID, accessToken, refreshToken string, expiresAt time.Time) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("access_token", accessToken).
		Set("refresh_token", refreshToken).
		Set("token_expires_at", expiresAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (a *accountRepository) UpdateLastOptimizedAt(accountID string, optimizedAt time.Time) error {
	sqlQuery, args, err := squirrel.
		Update("accounts").
		Set("last_optimized_at", optimizedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = a.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
