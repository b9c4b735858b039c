package account

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clientmocks "github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient/mocks"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/infrastructure/repository/mocks"
	"github.com/robotads/robotads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (AccountService, *mocks.MockAccountRepository, *clientmocks.MockClient) {
	repo := mocks.NewMockAccountRepository(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	return NewService(repo, client), repo, client
}

func linkedAccount() *domain.Account {
	expiresAt := time.Now().Add(time.Hour)
	return &domain.Account{
		ID:             "acc1",
		UserID:         10,
		Name:           "Loja Demo",
		ProfileID:      "profile-1",
		Region:         "na",
		AccessToken:    "access-token",
		RefreshToken:   "refresh-token",
		TokenExpiresAt: expiresAt,
		Status:         domain.AccountStatusActive,
	}
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, client := newTestService(ctrl)
	account := linkedAccount()

	repo.EXPECT().GetAccountByID("acc1").Return(account, nil)
	client.EXPECT().
		ListCampaigns(amazondomain.Credentials{
			AccessToken: "access-token",
			ProfileID:   "profile-1",
			Region:      "na",
		}).
		Return([]amazondomain.Campaign{
			{CampaignID: "C1", Name: "Campanha 1", State: amazondomain.EntityStateEnabled},
			{CampaignID: "C2", Name: "Campanha 2", State: amazondomain.EntityStatePaused},
		}, nil)

	campaigns, err := service.ListCampaigns("acc1")

	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, "C1", campaigns[0].CampaignID)
}

func TestService_ListCampaigns_AccountWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _ := newTestService(ctrl)

	account := linkedAccount()
	account.RefreshToken = ""

	repo.EXPECT().GetAccountByID("acc1").Return(account, nil)

	campaigns, err := service.ListCampaigns("acc1")

	assert.Nil(t, campaigns)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ListCampaigns_IntegrationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, client := newTestService(ctrl)
	account := linkedAccount()

	repo.EXPECT().GetAccountByID("acc1").Return(account, nil)
	client.EXPECT().ListCampaigns(gomock.Any()).Return(nil, errors.New("401 unauthorized"))

	campaigns, err := service.ListCampaigns("acc1")

	assert.Nil(t, campaigns)
	assert.ErrorIs(t, err, ErrAmazonIntegration)
}

func TestService_GetAccount_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, _ := newTestService(ctrl)

	repo.EXPECT().GetAccountByID("missing").Return(nil, nil)

	account, err := service.GetAccount("missing")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestService_UpdateAccount_RelinkValidatesRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, client := newTestService(ctrl)

	stored := linkedAccount()
	stored.Status = domain.AccountStatusReauthRequired

	newToken := "new-refresh-token"
	request := &domain.UpdateAccountRequest{ID: "acc1", RefreshToken: &newToken}

	repo.EXPECT().GetAccountByID("acc1").Return(stored, nil)
	client.EXPECT().
		RefreshAccessToken(newToken).
		Return(&amazondomain.TokenResponse{AccessToken: "fresh", ExpiresIn: 3600}, nil)
	repo.EXPECT().
		UpdateAccount(gomock.Any()).
		DoAndReturn(func(req *domain.UpdateAccountRequest) error {
			// Revinculação bem sucedida devolve a conta ao status ativo
			require.NotNil(t, req.Status)
			assert.Equal(t, string(domain.AccountStatusActive), *req.Status)
			return nil
		})

	resp, err := service.UpdateAccount(request)

	require.NoError(t, err)
	assert.Equal(t, "acc1", resp.ID)
}

func TestService_UpdateAccount_RejectsInvalidRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, repo, client := newTestService(ctrl)

	stored := linkedAccount()
	badToken := "bad-token"
	request := &domain.UpdateAccountRequest{ID: "acc1", RefreshToken: &badToken}

	repo.EXPECT().GetAccountByID("acc1").Return(stored, nil)
	client.EXPECT().RefreshAccessToken(badToken).Return(nil, errors.New("invalid_grant"))

	resp, err := service.UpdateAccount(request)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
