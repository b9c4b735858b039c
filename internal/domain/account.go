package domain

import (
	"time"
)

type AccountStatus string

const (
	AccountStatusActive            AccountStatus = "active"
	AccountStatusReauthRequired    AccountStatus = "reauth_required"
	AccountStatusPendingProfile    AccountStatus = "pending_profile"
	AccountStatusErrorNoProfile    AccountStatus = "error_no_profile"
	AccountStatusErrorProfileFetch AccountStatus = "error_profile_fetch"
	AccountStatusErrorRateLimit    AccountStatus = "error_rate_limit"
	AccountStatusErrorSync         AccountStatus = "error_sync"
	AccountStatusErrorConfig       AccountStatus = "error_config"
)

// AllAccountStatuses lista os estados possíveis de uma conta vinculada
var AllAccountStatuses = []AccountStatus{
	AccountStatusActive,
	AccountStatusReauthRequired,
	AccountStatusPendingProfile,
	AccountStatusErrorNoProfile,
	AccountStatusErrorProfileFetch,
	AccountStatusErrorRateLimit,
	AccountStatusErrorSync,
	AccountStatusErrorConfig,
}

// SkipsOptimization indica se contas neste status devem ser ignoradas pelo
// ciclo de otimização. A recuperação para "active" acontece apenas via
// revinculação manual da conta, nunca automaticamente.
func (s AccountStatus) SkipsOptimization() bool {
	switch s {
	case AccountStatusReauthRequired,
		AccountStatusPendingProfile,
		AccountStatusErrorNoProfile,
		AccountStatusErrorConfig:
		return true
	}
	return false
}

type Account struct {
	ID              string        `json:"id"`
	UserID          int           `json:"user_id"`
	Name            string        `json:"name"`
	Nickname        *string       `json:"nickname"`
	ProfileID       string        `json:"profile_id"`
	Region          string        `json:"region"`
	AccessToken     string        `json:"-"`
	RefreshToken    string        `json:"-"`
	TokenExpiresAt  time.Time     `json:"token_expires_at"`
	Status          AccountStatus `json:"status"`
	LastOptimizedAt *time.Time    `json:"last_optimized_at"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// HasToken indica se a conta possui credenciais para chamar a API de anúncios
func (a *Account) HasToken() bool {
	return a.RefreshToken != ""
}

type AccountResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Nickname        *string       `json:"nickname"`
	ProfileID       string        `json:"profile_id"`
	Region          string        `json:"region"`
	Status          AccountStatus `json:"status"`
	HasToken        bool          `json:"hasToken"`
	LastOptimizedAt *time.Time    `json:"last_optimized_at"`
}

type UpdateAccountRequest struct {
	ID           string  `json:"id"`
	Nickname     *string `json:"nickname,omitempty"`
	ProfileID    *string `json:"profile_id,omitempty"`
	Region       *string `json:"region,omitempty"`
	RefreshToken *string `json:"refresh_token,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type UpdateAccountResponse struct {
	ID        string  `json:"id"`
	Nickname  *string `json:"nickname,omitempty"`
	ProfileID *string `json:"profile_id,omitempty"`
	Region    *string `json:"region,omitempty"`
	Status    *string `json:"status,omitempty"`
}
