package amazonclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

// RefreshAccessToken troca o refresh token da conta por um novo access token
// no endpoint OAuth da Amazon (Login with Amazon)
func (c *AmazonClient) RefreshAccessToken(refreshToken string) (*amazondomain.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "refresh_token")
	params.Add("refresh_token", refreshToken)
	params.Add("client_id", c.Cfg.Amazon.ClientID)
	params.Add("client_secret", c.Cfg.Amazon.ClientSecret)

	req, err := http.NewRequest(http.MethodPost, c.Cfg.Amazon.TokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar token de acesso: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro renovando token de acesso. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
			return nil, fmt.Errorf("%w. Status: %d", ErrUnauthorized, resp.StatusCode)
		}
		return nil, fmt.Errorf("erro ao renovar token de acesso. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp amazondomain.TokenResponse
	err = jsoniter.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	logrus.Infof("Token de acesso renovado com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	hours := duration / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d horas e %d minutos", hours, minutes)
}
