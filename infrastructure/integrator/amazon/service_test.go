package amazon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient"
	clientmocks "github.com/robotads/robotads-api/infrastructure/integrator/amazon/amazonclient/mocks"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(ctrl *gomock.Controller) (*AmazonIntegrator, *clientmocks.MockClient, *int) {
	client := clientmocks.NewMockClient(ctrl)

	sleeps := 0
	integrator := &AmazonIntegrator{
		cfg: &config.Config{
			ReportPoll: config.ReportPoll{MaxAttempts: 2, IntervalSeconds: 1},
		},
		Client: client,
		sleep:  func(time.Duration) { sleeps++ },
	}

	return integrator, client, &sleeps
}

func testAccount() *domain.Account {
	return &domain.Account{
		ID:          "acc1",
		UserID:      10,
		ProfileID:   "profile-1",
		Region:      "na",
		AccessToken: "access-token",
	}
}

func readyReport(id string) *amazondomain.ReportInfo {
	return &amazondomain.ReportInfo{
		ReportID: id,
		Status:   amazondomain.ReportStatusSuccess,
		Location: "https://reports.amazon.com/" + id,
	}
}

func TestAmazonIntegrator_FetchSnapshots_Campaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	day1 := []byte("campaignId,impressions,clicks,cost,attributedSales14d,attributedConversions14d\n" +
		"C1,1000,50,25.00,100.00,5\n")
	day2 := []byte("campaignId,impressions,clicks,cost,attributedSales14d,attributedConversions14d\n" +
		"C1,500,25,12.50,0,0\n" +
		"C2,200,0,0,0,0\n")

	gomock.InOrder(
		client.EXPECT().
			CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
			Return(readyReport("r1"), nil),
		client.EXPECT().
			DownloadReport(gomock.Any(), "https://reports.amazon.com/r1").
			Return(day1, nil),
		client.EXPECT().
			CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
			Return(readyReport("r2"), nil),
		client.EXPECT().
			DownloadReport(gomock.Any(), "https://reports.amazon.com/r2").
			Return(day2, nil),
	)

	// O orçamento diário não vem no relatório: é buscado na listagem
	client.EXPECT().
		ListCampaigns(gomock.Any()).
		Return([]amazondomain.Campaign{
			{CampaignID: "C1", State: amazondomain.EntityStateEnabled, DailyBudget: 45.50},
			{CampaignID: "C2", State: amazondomain.EntityStateEnabled, DailyBudget: 10},
		}, nil)

	snapshots, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 2)

	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	// C1 soma os dois dias da janela
	c1 := snapshots["C1"]
	require.NotNil(t, c1)
	assert.Equal(t, domain.EntityTypeCampaign, c1.EntityType)
	assert.Equal(t, "C1", c1.CampaignID)
	assert.Equal(t, 1500.0, c1.Metrics[domain.MetricImpressions])
	assert.Equal(t, 75.0, c1.Metrics[domain.MetricClicks])
	assert.Equal(t, 37.5, c1.Metrics[domain.MetricSpend])
	assert.Equal(t, 5.0, c1.Metrics[domain.MetricOrders])

	// Métricas derivadas: acos = spend/sales, roas = sales/spend, arredondadas
	assert.Equal(t, 0.38, c1.Metrics[domain.MetricACOS])
	assert.Equal(t, 2.67, c1.Metrics[domain.MetricROAS])
	assert.Equal(t, 0.05, c1.Metrics[domain.MetricCTR])
	assert.Equal(t, 0.5, c1.Metrics[domain.MetricCPC])
	assert.InDelta(t, 5.0/75.0, c1.Metrics[domain.MetricConversionRate], 1e-9)
	assert.Equal(t, 45.50, c1.Metrics[domain.MetricBudget])

	// C2 não tem vendas nem cliques: métricas de razão ficam ausentes
	c2 := snapshots["C2"]
	require.NotNil(t, c2)
	_, hasACOS := c2.Metrics[domain.MetricACOS]
	_, hasCPC := c2.Metrics[domain.MetricCPC]
	assert.False(t, hasACOS)
	assert.False(t, hasCPC)
	assert.Equal(t, 0.0, c2.Metrics[domain.MetricCTR])
}

func TestAmazonIntegrator_FetchSnapshots_KeywordsMergeBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	report := []byte("keywordId,campaignId,adGroupId,impressions,clicks,cost,attributedSales14d,attributedConversions14d\n" +
		"K1,C1,G1,100,10,5.00,20.00,2\n")

	client.EXPECT().
		CreateReport(gomock.Any(), amazondomain.ReportRecordTypeKeywords, gomock.Any(), gomock.Any()).
		Return(readyReport("r1"), nil)
	client.EXPECT().
		DownloadReport(gomock.Any(), gomock.Any()).
		Return(report, nil)

	// O lance atual não vem no relatório: é buscado na listagem do grupo
	client.EXPECT().
		ListKeywords(gomock.Any(), "G1").
		Return([]amazondomain.Keyword{
			{KeywordID: "K1", AdGroupID: "G1", CampaignID: "C1", Bid: 0.75},
		}, nil)

	snapshots, err := integrator.FetchSnapshots(account, domain.EntityTypeKeyword, 1)

	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	k1 := snapshots["K1"]
	require.NotNil(t, k1)
	assert.Equal(t, "C1", k1.CampaignID)
	assert.Equal(t, "G1", k1.AdGroupID)
	assert.Equal(t, 0.75, k1.Metrics[domain.MetricBid])
}

func TestAmazonIntegrator_FetchSnapshots_PollsUntilReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, sleeps := newTestIntegrator(ctrl)
	account := testAccount()

	report := []byte("campaignId,impressions,clicks,cost,attributedSales14d,attributedConversions14d\n")

	gomock.InOrder(
		client.EXPECT().
			CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
			Return(&amazondomain.ReportInfo{ReportID: "r1", Status: amazondomain.ReportStatusInProgress}, nil),
		client.EXPECT().
			GetReport(gomock.Any(), "r1").
			Return(readyReport("r1"), nil),
		client.EXPECT().
			DownloadReport(gomock.Any(), "https://reports.amazon.com/r1").
			Return(report, nil),
	)

	_, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, *sleeps)
}

func TestAmazonIntegrator_FetchSnapshots_ReportTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, sleeps := newTestIntegrator(ctrl)
	account := testAccount()

	inProgress := &amazondomain.ReportInfo{ReportID: "r1", Status: amazondomain.ReportStatusInProgress}

	client.EXPECT().
		CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
		Return(inProgress, nil)
	client.EXPECT().
		GetReport(gomock.Any(), "r1").
		Return(inProgress, nil).
		Times(2)

	_, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 1)

	assert.ErrorIs(t, err, amazonclient.ErrReportTimeout)
	assert.Equal(t, 2, *sleeps)
}

func TestAmazonIntegrator_FetchSnapshots_ReportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	client.EXPECT().
		CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
		Return(&amazondomain.ReportInfo{
			ReportID:      "r1",
			Status:        amazondomain.ReportStatusFailure,
			StatusDetails: "report generation failed",
		}, nil)

	_, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 1)

	assert.ErrorIs(t, err, amazonclient.ErrReportCreationFailed)
}

func TestAmazonIntegrator_FetchSnapshots_EmptyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	client.EXPECT().
		CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
		Return(readyReport("r1"), nil)
	client.EXPECT().
		DownloadReport(gomock.Any(), gomock.Any()).
		Return([]byte(""), nil)

	snapshots, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 1)

	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestAmazonIntegrator_FetchSnapshots_NonNumericCellGoesToRaw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	report := []byte("campaignId,impressions,clicks,cost,attributedSales14d,attributedConversions14d\n" +
		"C1,100,10,N/A,20.00,1\n")

	client.EXPECT().
		CreateReport(gomock.Any(), amazondomain.ReportRecordTypeCampaigns, gomock.Any(), gomock.Any()).
		Return(readyReport("r1"), nil)
	client.EXPECT().
		DownloadReport(gomock.Any(), gomock.Any()).
		Return(report, nil)
	client.EXPECT().
		ListCampaigns(gomock.Any()).
		Return([]amazondomain.Campaign{}, nil)

	snapshots, err := integrator.FetchSnapshots(account, domain.EntityTypeCampaign, 1)

	require.NoError(t, err)
	c1 := snapshots["C1"]
	require.NotNil(t, c1)
	assert.Equal(t, 0.0, c1.Metrics[domain.MetricSpend])
	assert.Equal(t, "N/A", c1.Raw["cost"])
}

func TestAmazonIntegrator_ListKeywordsByCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator, client, _ := newTestIntegrator(ctrl)
	account := testAccount()

	client.EXPECT().
		ListAdGroups(gomock.Any(), "C1").
		Return([]amazondomain.AdGroup{
			{AdGroupID: "G1", CampaignID: "C1"},
			{AdGroupID: "G2", CampaignID: "C1"},
		}, nil)
	client.EXPECT().
		ListKeywords(gomock.Any(), "G1").
		Return([]amazondomain.Keyword{{KeywordID: "K1", AdGroupID: "G1"}}, nil)
	client.EXPECT().
		ListKeywords(gomock.Any(), "G2").
		Return([]amazondomain.Keyword{{KeywordID: "K2", AdGroupID: "G2"}}, nil)

	keywords, err := integrator.ListKeywordsByCampaign(account, "C1")

	require.NoError(t, err)
	require.Len(t, keywords, 2)
	assert.Equal(t, "K1", keywords[0].KeywordID)
	assert.Equal(t, "K2", keywords[1].KeywordID)
}
