package amazonclient

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

// ListCampaigns lista as campanhas Sponsored Products do profile da conta
func (c *AmazonClient) ListCampaigns(creds amazondomain.Credentials) ([]amazondomain.Campaign, error) {
	requestURL := fmt.Sprintf("%s/v2/sp/campaigns", c.baseURL(creds.Region))

	statusCode, body, err := c.doRequest(creds, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		return nil, err
	}

	var campaigns []amazondomain.Campaign
	if err := jsoniter.Unmarshal(body, &campaigns); err != nil {
		return nil, fmt.Errorf("erro ao decodificar campanhas: %w", err)
	}

	return campaigns, nil
}
