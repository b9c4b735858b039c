package amazonclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/config"
)

type Client interface {
	RefreshAccessToken(refreshToken string) (*amazondomain.TokenResponse, error)
	ListCampaigns(creds amazondomain.Credentials) ([]amazondomain.Campaign, error)
	ListAdGroups(creds amazondomain.Credentials, campaignID string) ([]amazondomain.AdGroup, error)
	ListKeywords(creds amazondomain.Credentials, adGroupID string) ([]amazondomain.Keyword, error)
	CreateReport(creds amazondomain.Credentials, recordType, startDate, endDate string) (*amazondomain.ReportInfo, error)
	GetReport(creds amazondomain.Credentials, reportID string) (*amazondomain.ReportInfo, error)
	DownloadReport(creds amazondomain.Credentials, location string) ([]byte, error)
	UpdateKeywordBid(creds amazondomain.Credentials, keywordID string, bid float64) (*amazondomain.MutationResult, error)
	UpdateKeywordState(creds amazondomain.Credentials, keywordID, state string) (*amazondomain.MutationResult, error)
	UpdateCampaignState(creds amazondomain.Credentials, campaignID, state string) (*amazondomain.MutationResult, error)
	UpdateCampaignBudget(creds amazondomain.Credentials, campaignID string, budget float64) (*amazondomain.MutationResult, error)
}

type AmazonClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AmazonClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// baseURL resolve o endpoint regional da Amazon Ads API.
// Contas sem região usam o default da configuração.
func (c *AmazonClient) baseURL(region string) string {
	if region == "" {
		region = c.Cfg.Amazon.DefaultRegion
	}

	if region == "" || region == "na" {
		return "https://advertising-api.amazon.com"
	}

	return fmt.Sprintf("https://advertising-api-%s.amazon.com", region)
}

// doRequest executa uma chamada autenticada com os três headers exigidos
// pela Amazon: bearer token, client id da aplicação e profile (scope)
func (c *AmazonClient) doRequest(creds amazondomain.Credentials, method, url string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Amazon-Advertising-API-ClientId", c.Cfg.Amazon.ClientID)
	req.Header.Set("Amazon-Advertising-API-Scope", creds.ProfileID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "erro ao ler resposta")
	}

	return resp.StatusCode, respBody, nil
}

// handleStatus traduz os códigos de erro da API para os sentinelas do pacote
func handleStatus(statusCode int, body []byte) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusTooManyRequests:
		return errors.Wrapf(ErrRateLimited, "status %d", statusCode)
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.Wrapf(ErrUnauthorized, "status %d: %s", statusCode, string(body))
	default:
		return errors.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
	}
}
