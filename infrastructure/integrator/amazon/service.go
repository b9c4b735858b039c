package amazon

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/pkg/utils"
)

type AmazonIntegrator struct {
	cfg    *config.Config
	Client amazonclient.Client

	// injetável nos testes para não dormir de verdade durante o polling
	sleep func(time.Duration)
}

func New(cfg *config.Config, client amazonclient.Client) *AmazonIntegrator {
	return &AmazonIntegrator{
		cfg:    cfg,
		Client: client,
		sleep:  time.Sleep,
	}
}

func credentials(account *domain.Account) amazondomain.Credentials {
	return amazondomain.Credentials{
		AccessToken: account.AccessToken,
		ProfileID:   account.ProfileID,
		Region:      account.Region,
	}
}

// acumulador dos totais brutos de uma entidade dentro da janela
type metricTotals struct {
	campaignID  string
	adGroupID   string
	impressions float64
	clicks      float64
	spend       float64
	sales       float64
	orders      float64
	raw         map[string]string
}

// FetchSnapshots baixa os relatórios de performance da janela e devolve um
// snapshot agregado por entidade. A janela termina sempre em ontem: relatórios
// do dia corrente ainda estão incompletos na Amazon.
func (s *AmazonIntegrator) FetchSnapshots(account *domain.Account, entityType domain.EntityType, lookbackDays int) (map[string]*domain.PerformanceSnapshot, error) {
	if lookbackDays <= 0 {
		lookbackDays = domain.DefaultLookbackDays
	}

	recordType := amazondomain.ReportRecordTypeCampaigns
	if entityType == domain.EntityTypeKeyword {
		recordType = amazondomain.ReportRecordTypeKeywords
	}

	creds := credentials(account)
	endDate := time.Now().AddDate(0, 0, -1)

	totals := make(map[string]*metricTotals)
	for day := 0; day < lookbackDays; day++ {
		reportDate := endDate.AddDate(0, 0, -day).Format("20060102")

		data, err := s.fetchDailyReport(creds, recordType, reportDate)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"record_type": recordType,
				"report_date": reportDate,
				"error":       err.Error(),
			}).Error("optimization: failed to fetch daily performance report")
			return nil, err
		}

		if err := accumulateReportRows(data, recordType, totals); err != nil {
			return nil, err
		}
	}

	snapshots := make(map[string]*domain.PerformanceSnapshot, len(totals))
	for entityID, t := range totals {
		snapshots[entityID] = buildSnapshot(entityType, entityID, t)
	}

	if len(snapshots) > 0 {
		if entityType == domain.EntityTypeKeyword {
			if err := s.mergeKeywordBids(creds, snapshots); err != nil {
				return nil, err
			}
		} else {
			if err := s.mergeCampaignBudgets(creds, snapshots); err != nil {
				return nil, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"entity_type":   entityType,
		"lookback_days": lookbackDays,
		"entities":      len(snapshots),
	}).Debug("optimization: performance snapshots built")

	return snapshots, nil
}

// fetchDailyReport cria o relatório de um dia, aguarda o processamento
// assíncrono e baixa o resultado
func (s *AmazonIntegrator) fetchDailyReport(creds amazondomain.Credentials, recordType, reportDate string) ([]byte, error) {
	info, err := s.Client.CreateReport(creds, recordType, reportDate, reportDate)
	if err != nil {
		return nil, err
	}

	for attempt := 0; info.Status != amazondomain.ReportStatusSuccess; attempt++ {
		if info.Status == amazondomain.ReportStatusFailure {
			return nil, errors.Wrapf(amazonclient.ErrReportCreationFailed, "relatório %s: %s", info.ReportID, info.StatusDetails)
		}

		if attempt >= s.cfg.ReportPoll.MaxAttempts {
			return nil, errors.Wrapf(amazonclient.ErrReportTimeout, "relatório %s após %d tentativas", info.ReportID, attempt)
		}

		s.sleep(time.Duration(s.cfg.ReportPoll.IntervalSeconds) * time.Second)

		info, err = s.Client.GetReport(creds, info.ReportID)
		if err != nil {
			return nil, err
		}
	}

	return s.Client.DownloadReport(creds, info.Location)
}

// accumulateReportRows soma as colunas brutas de um relatório diário nos
// totais da janela. Valores não numéricos são preservados em raw, no mesmo
// espírito do parseFloat com fallback do restante do sistema.
func accumulateReportRows(data []byte, recordType string, totals map[string]*metricTotals) error {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err == io.EOF {
		return nil // relatório vazio, dia sem tráfego
	}
	if err != nil {
		return fmt.Errorf("erro ao ler cabeçalho do relatório: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	idColumn := "campaignId"
	if recordType == amazondomain.ReportRecordTypeKeywords {
		idColumn = "keywordId"
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("erro ao ler linha do relatório: %w", err)
		}

		entityID := cell(row, columns, idColumn)
		if entityID == "" {
			continue
		}

		t, ok := totals[entityID]
		if !ok {
			t = &metricTotals{raw: make(map[string]string)}
			totals[entityID] = t
		}

		if recordType == amazondomain.ReportRecordTypeKeywords {
			t.campaignID = cell(row, columns, "campaignId")
			t.adGroupID = cell(row, columns, "adGroupId")
		} else {
			t.campaignID = entityID
		}

		t.impressions += parseCell(row, columns, "impressions", t.raw)
		t.clicks += parseCell(row, columns, "clicks", t.raw)
		t.spend += parseCell(row, columns, "cost", t.raw)
		t.sales += parseCell(row, columns, "attributedSales14d", t.raw)
		t.orders += parseCell(row, columns, "attributedConversions14d", t.raw)
	}

	return nil
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseCell(row []string, columns map[string]int, name string, raw map[string]string) float64 {
	value := cell(row, columns, name)
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		raw[name] = value
		return 0
	}

	return parsed
}

// buildSnapshot deriva as métricas compostas a partir dos totais da janela.
// Divisões por zero viram zero: entidade sem tráfego não dispara regra de razão.
func buildSnapshot(entityType domain.EntityType, entityID string, t *metricTotals) *domain.PerformanceSnapshot {
	metrics := map[domain.Metric]float64{
		domain.MetricImpressions: t.impressions,
		domain.MetricClicks:      t.clicks,
		domain.MetricSpend:       t.spend,
		domain.MetricOrders:      t.orders,
	}

	if t.sales > 0 {
		metrics[domain.MetricACOS] = utils.RoundWithTwoDecimalPlace(t.spend / t.sales)
		metrics[domain.MetricROAS] = utils.RoundWithTwoDecimalPlace(t.sales / t.spend)
	}
	if t.impressions > 0 {
		metrics[domain.MetricCTR] = t.clicks / t.impressions
	}
	if t.clicks > 0 {
		metrics[domain.MetricCPC] = utils.RoundWithTwoDecimalPlace(t.spend / t.clicks)
		metrics[domain.MetricConversionRate] = t.orders / t.clicks
	}

	return &domain.PerformanceSnapshot{
		EntityType: entityType,
		EntityID:   entityID,
		CampaignID: t.campaignID,
		AdGroupID:  t.adGroupID,
		Metrics:    metrics,
		Raw:        t.raw,
	}
}

// mergeKeywordBids completa os snapshots de palavra-chave com o lance atual,
// que não vem no relatório de performance
func (s *AmazonIntegrator) mergeKeywordBids(creds amazondomain.Credentials, snapshots map[string]*domain.PerformanceSnapshot) error {
	adGroups := make(map[string]struct{})
	for _, snapshot := range snapshots {
		if snapshot.AdGroupID != "" {
			adGroups[snapshot.AdGroupID] = struct{}{}
		}
	}

	for adGroupID := range adGroups {
		keywords, err := s.Client.ListKeywords(creds, adGroupID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_group_id": adGroupID,
				"error":       err.Error(),
			}).Error("optimization: failed to list keywords for bid merge")
			return err
		}

		for _, keyword := range keywords {
			if snapshot, ok := snapshots[keyword.KeywordID]; ok {
				snapshot.Metrics[domain.MetricBid] = keyword.Bid
			}
		}
	}

	return nil
}

// mergeCampaignBudgets completa os snapshots de campanha com o orçamento
// diário atual, que também não vem no relatório
func (s *AmazonIntegrator) mergeCampaignBudgets(creds amazondomain.Credentials, snapshots map[string]*domain.PerformanceSnapshot) error {
	campaigns, err := s.Client.ListCampaigns(creds)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"profile_id": creds.ProfileID,
			"error":      err.Error(),
		}).Error("optimization: failed to list campaigns for budget merge")
		return err
	}

	for _, campaign := range campaigns {
		if snapshot, ok := snapshots[campaign.CampaignID]; ok {
			snapshot.Metrics[domain.MetricBudget] = campaign.DailyBudget
		}
	}

	return nil
}

// ListKeywordsByCampaign enumera as palavras-chave de uma campanha passando
// por seus grupos de anúncio
func (s *AmazonIntegrator) ListKeywordsByCampaign(account *domain.Account, campaignID string) ([]amazondomain.Keyword, error) {
	creds := credentials(account)

	adGroups, err := s.Client.ListAdGroups(creds, campaignID)
	if err != nil {
		return nil, err
	}

	allKeywords := make([]amazondomain.Keyword, 0)
	for _, adGroup := range adGroups {
		keywords, err := s.Client.ListKeywords(creds, adGroup.AdGroupID)
		if err != nil {
			return nil, err
		}
		allKeywords = append(allKeywords, keywords...)
	}

	return allKeywords, nil
}

func (s *AmazonIntegrator) UpdateKeywordBid(account *domain.Account, keywordID string, bid float64) (*amazondomain.MutationResult, error) {
	return s.Client.UpdateKeywordBid(credentials(account), keywordID, bid)
}

func (s *AmazonIntegrator) UpdateKeywordState(account *domain.Account, keywordID, state string) (*amazondomain.MutationResult, error) {
	return s.Client.UpdateKeywordState(credentials(account), keywordID, state)
}

func (s *AmazonIntegrator) UpdateCampaignState(account *domain.Account, campaignID, state string) (*amazondomain.MutationResult, error) {
	return s.Client.UpdateCampaignState(credentials(account), campaignID, state)
}

func (s *AmazonIntegrator) UpdateCampaignBudget(account *domain.Account, campaignID string, budget float64) (*amazondomain.MutationResult, error) {
	return s.Client.UpdateCampaignBudget(credentials(account), campaignID, budget)
}
