package amazonclient

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

type keywordUpdate struct {
	KeywordID string   `json:"keywordId"`
	Bid       *float64 `json:"bid,omitempty"`
	State     string   `json:"state,omitempty"`
}

type campaignUpdate struct {
	CampaignID string   `json:"campaignId"`
	State      string   `json:"state,omitempty"`
	Budget     *float64 `json:"dailyBudget,omitempty"`
}

// UpdateKeywordBid altera o lance de uma palavra-chave
func (c *AmazonClient) UpdateKeywordBid(creds amazondomain.Credentials, keywordID string, bid float64) (*amazondomain.MutationResult, error) {
	payload := []keywordUpdate{{KeywordID: keywordID, Bid: &bid}}

	return c.updateEntity(creds, "/v2/sp/keywords", payload)
}

// UpdateKeywordState pausa ou reativa uma palavra-chave
func (c *AmazonClient) UpdateKeywordState(creds amazondomain.Credentials, keywordID, state string) (*amazondomain.MutationResult, error) {
	payload := []keywordUpdate{{KeywordID: keywordID, State: state}}

	return c.updateEntity(creds, "/v2/sp/keywords", payload)
}

// UpdateCampaignState pausa ou reativa uma campanha
func (c *AmazonClient) UpdateCampaignState(creds amazondomain.Credentials, campaignID, state string) (*amazondomain.MutationResult, error) {
	payload := []campaignUpdate{{CampaignID: campaignID, State: state}}

	return c.updateEntity(creds, "/v2/sp/campaigns", payload)
}

// UpdateCampaignBudget altera o orçamento diário de uma campanha
func (c *AmazonClient) UpdateCampaignBudget(creds amazondomain.Credentials, campaignID string, budget float64) (*amazondomain.MutationResult, error) {
	payload := []campaignUpdate{{CampaignID: campaignID, Budget: &budget}}

	return c.updateEntity(creds, "/v2/sp/campaigns", payload)
}

func (c *AmazonClient) updateEntity(creds amazondomain.Credentials, path string, payload interface{}) (*amazondomain.MutationResult, error) {
	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar payload de atualização: %w", err)
	}

	requestURL := c.baseURL(creds.Region) + path

	statusCode, respBody, err := c.doRequest(creds, http.MethodPut, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar entidade: %w", err)
	}

	if err := handleStatus(statusCode, respBody); err != nil {
		return nil, err
	}

	// A API devolve um resultado por item enviado; mandamos sempre um único
	var results []amazondomain.MutationResult
	if err := jsoniter.Unmarshal(respBody, &results); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resultado da atualização: %w", err)
	}

	result := &amazondomain.MutationResult{StatusCode: statusCode}
	if len(results) > 0 {
		result.Code = results[0].Code
		result.Details = results[0].Details
	}

	return result, nil
}
