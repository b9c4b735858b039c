package amazonclient

import (
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

// ListKeywords lista as palavras-chave de um grupo de anúncio
func (c *AmazonClient) ListKeywords(creds amazondomain.Credentials, adGroupID string) ([]amazondomain.Keyword, error) {
	params := url.Values{}
	params.Add("adGroupIdFilter", adGroupID)

	requestURL := fmt.Sprintf("%s/v2/sp/keywords?%s", c.baseURL(creds.Region), params.Encode())

	statusCode, body, err := c.doRequest(creds, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar palavras-chave: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		return nil, err
	}

	var keywords []amazondomain.Keyword
	if err := jsoniter.Unmarshal(body, &keywords); err != nil {
		return nil, fmt.Errorf("erro ao decodificar palavras-chave: %w", err)
	}

	return keywords, nil
}
