package account

import (
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/infrastructure/repository"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/pkg/apiErrors"
)

type AccountService interface {
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error)
	GetAccount(accountID string) (*domain.Account, error)
	UpdateAccount(request *domain.UpdateAccountRequest) (*domain.UpdateAccountResponse, error)
	ListCampaigns(accountID string) ([]amazondomain.Campaign, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	amazonClient      amazonclient.Client
}

func NewService(
	accountRepository repository.AccountRepository,
	amazonClient amazonclient.Client,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		amazonClient:      amazonClient,
	}
}

func (s *Service) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma as contas para o formato de resposta da API, sem expor tokens
	accountsResponse := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		accountsResponse = append(accountsResponse, &domain.AccountResponse{
			ID:              account.ID,
			Name:            account.Name,
			Nickname:        account.Nickname,
			ProfileID:       account.ProfileID,
			Region:          account.Region,
			Status:          account.Status,
			HasToken:        account.HasToken(),
			LastOptimizedAt: account.LastOptimizedAt,
		})
	}

	return accountsResponse, nil
}

func (s *Service) GetAccount(accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	return account, nil
}

// ListCampaigns lista as campanhas da conta na Amazon Ads. A listagem alimenta
// a seleção de escopo das regras, então o token é usado como está: conta com
// token vencido aparece como falha de integração e não dispara refresh aqui.
func (s *Service) ListCampaigns(accountID string) ([]amazondomain.Campaign, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if !account.HasToken() {
		return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrInvalidToken, accountID, "Conta sem token de acesso")
	}

	campaigns, err := s.amazonClient.ListCampaigns(amazondomain.Credentials{
		AccessToken: account.AccessToken,
		ProfileID:   account.ProfileID,
		Region:      account.Region,
	})
	if err != nil {
		logrus.Error("Error listing campaigns on Amazon Ads:", err)
		return nil, NewAccountErrorWithID(ErrAmazonIntegration, apiErrors.ErrExternalService, accountID, "Falha ao listar campanhas na Amazon Ads")
	}

	return campaigns, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) (*domain.UpdateAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	// Revinculação: um refresh token novo é validado contra a Amazon antes de
	// ser aceito; se passar, a conta sai de qualquer status de erro
	if request.RefreshToken != nil && *request.RefreshToken != "" {
		if _, err := s.amazonClient.RefreshAccessToken(*request.RefreshToken); err != nil {
			logrus.Warn("Invalid refresh token for account:", account.ID)
			return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrInvalidToken, request.ID, "Refresh token inválido para a conta")
		}

		if request.Status == nil {
			active := string(domain.AccountStatusActive)
			request.Status = &active
		}
	}

	// Atualiza a conta no repositório
	err = s.accountRepository.UpdateAccount(request)
	if err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateAccountResponse{
		ID:        request.ID,
		Nickname:  request.Nickname,
		ProfileID: request.ProfileID,
		Region:    request.Region,
		Status:    request.Status,
	}, nil
}
