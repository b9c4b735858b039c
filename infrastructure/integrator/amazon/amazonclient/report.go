package amazonclient

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
)

// Métricas pedidas em cada tipo de relatório. A Amazon devolve somente as
// colunas solicitadas, então a lista precisa cobrir tudo que as regras usam.
var reportMetrics = map[string]string{
	amazondomain.ReportRecordTypeCampaigns: "campaignId,impressions,clicks,cost,attributedSales14d,attributedConversions14d",
	amazondomain.ReportRecordTypeKeywords:  "keywordId,campaignId,adGroupId,impressions,clicks,cost,attributedSales14d,attributedConversions14d",
}

type createReportRequest struct {
	ReportDate string `json:"reportDate"`
	Metrics    string `json:"metrics"`
}

// CreateReport solicita a geração assíncrona de um relatório de performance.
// A Amazon gera relatórios por dia; startDate/endDate no formato YYYYMMDD.
func (c *AmazonClient) CreateReport(creds amazondomain.Credentials, recordType, startDate, endDate string) (*amazondomain.ReportInfo, error) {
	metrics, ok := reportMetrics[recordType]
	if !ok {
		return nil, fmt.Errorf("tipo de relatório desconhecido: %s", recordType)
	}

	payload, err := jsoniter.Marshal(createReportRequest{
		ReportDate: endDate,
		Metrics:    metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição do relatório: %w", err)
	}

	requestURL := fmt.Sprintf("%s/v2/sp/%s/report", c.baseURL(creds.Region), recordType)

	statusCode, body, err := c.doRequest(creds, http.MethodPost, requestURL, payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar relatório: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
		return nil, errors.Wrap(ErrReportCreationFailed, err.Error())
	}

	var info amazondomain.ReportInfo
	if err := jsoniter.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do relatório: %w", err)
	}

	if info.ReportID == "" {
		return nil, errors.Wrap(ErrReportCreationFailed, "resposta sem reportId")
	}

	info.RecordType = recordType

	return &info, nil
}

// GetReport consulta o estado de processamento de um relatório
func (c *AmazonClient) GetReport(creds amazondomain.Credentials, reportID string) (*amazondomain.ReportInfo, error) {
	requestURL := fmt.Sprintf("%s/v2/reports/%s", c.baseURL(creds.Region), reportID)

	statusCode, body, err := c.doRequest(creds, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar relatório: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		return nil, err
	}

	var info amazondomain.ReportInfo
	if err := jsoniter.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("erro ao decodificar estado do relatório: %w", err)
	}

	return &info, nil
}

// DownloadReport baixa o conteúdo de um relatório pronto. A location vem da
// resposta do GetReport quando o status é SUCCESS.
func (c *AmazonClient) DownloadReport(creds amazondomain.Credentials, location string) ([]byte, error) {
	requestURL := location
	if requestURL == "" {
		return nil, fmt.Errorf("location do relatório não pode ser vazia")
	}

	statusCode, body, err := c.doRequest(creds, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar relatório: %w", err)
	}

	if err := handleStatus(statusCode, body); err != nil {
		return nil, err
	}

	return body, nil
}
