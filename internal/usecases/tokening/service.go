package tokening

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
)

// TokenManager garante um access token válido antes de qualquer chamada à
// API de anúncios
type TokenManager interface {
	EnsureValidToken(account *domain.Account) (*domain.Account, error)
}

type Service struct {
	client      amazonclient.Client
	accountRepo repository.AccountRepository
	margin      time.Duration

	// injetável nos testes
	now func() time.Time
}

func NewService(cfg *config.Config, client amazonclient.Client, accountRepo repository.AccountRepository) *Service {
	margin := time.Duration(cfg.Amazon.TokenRefreshMarginMinutes) * time.Minute

	return &Service{
		client:      client,
		accountRepo: accountRepo,
		margin:      margin,
		now:         time.Now,
	}
}

// EnsureValidToken renova o access token quando ele expira dentro da margem
// de segurança. O token renovado só é persistido quando a renovação dá certo:
// em caso de falha as credenciais do banco permanecem intactas.
func (s *Service) EnsureValidToken(account *domain.Account) (*domain.Account, error) {
	if !account.HasToken() {
		return nil, ErrAccountWithoutToken
	}

	if s.now().Add(s.margin).Before(account.TokenExpiresAt) && account.AccessToken != "" {
		return account, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expires_at": account.TokenExpiresAt,
	}).Info("Renovando token de acesso da conta")

	tokenResp, err := s.client.RefreshAccessToken(account.RefreshToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Falha ao renovar token de acesso")
		return nil, fmt.Errorf("%w: %v", ErrTokenRefreshFailed, err)
	}

	refreshToken := account.RefreshToken
	if tokenResp.RefreshToken != "" {
		refreshToken = tokenResp.RefreshToken
	}

	expiresAt := s.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	if err := s.accountRepo.UpdateCredentials(account.ID, tokenResp.AccessToken, refreshToken, expiresAt); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("Falha ao persistir credenciais renovadas")
		return nil, err
	}

	refreshed := *account
	refreshed.AccessToken = tokenResp.AccessToken
	refreshed.RefreshToken = refreshToken
	refreshed.TokenExpiresAt = expiresAt

	return &refreshed, nil
}
