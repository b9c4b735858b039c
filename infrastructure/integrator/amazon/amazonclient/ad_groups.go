package amazonclient

import (
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

// ListAdGroups lista os grupos de anúncio de uma campanha
func (c *AmazonClient) ListAdGroups(creds amazondomain.Credentials, campaignID string) ([]amazondomain.AdGroup, error) {
	params := url.Values{}
	params.Add("campaignIdFilter", campaignID)

	requestURL := fmt.Sprintf("%s/v2/sp/adGroups?%s", c.baseURL(creds.Region), params.Encode())

	statusCode, body, err := c.doRequest(creds, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar grupos de anúncio: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		return nil, err
	}

	var adGroups []amazondomain.AdGroup
	if err := jsoniter.Unmarshal(body, &adGroups); err != nil {
		return nil, fmt.Errorf("erro ao decodificar grupos de anúncio: %w", err)
	}

	return adGroups, nil
}
