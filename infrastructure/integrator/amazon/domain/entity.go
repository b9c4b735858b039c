package domain

// Credentials carrega o contexto por conta exigido em toda chamada à
// Amazon Ads API: bearer token, profile e região do endpoint
type Credentials struct {
	AccessToken string
	ProfileID   string
	Region      string
}

type Campaign struct {
	CampaignID   string  `json:"campaignId"`
	Name         string  `json:"name"`
	CampaignType string  `json:"campaignType"`
	State        string  `json:"state"`
	DailyBudget  float64 `json:"dailyBudget"`
}

type AdGroup struct {
	AdGroupID  string  `json:"adGroupId"`
	CampaignID string  `json:"campaignId"`
	Name       string  `json:"name"`
	State      string  `json:"state"`
	DefaultBid float64 `json:"defaultBid"`
}

type Keyword struct {
	KeywordID   string  `json:"keywordId"`
	AdGroupID   string  `json:"adGroupId"`
	CampaignID  string  `json:"campaignId"`
	KeywordText string  `json:"keywordText"`
	MatchType   string  `json:"matchType"`
	State       string  `json:"state"`
	Bid         float64 `json:"bid"`
}

const (
	EntityStateEnabled = "enabled"
	EntityStatePaused  = "paused"
)

// MutationResult é o retorno bruto de uma chamada de escrita (lance/estado)
type MutationResult struct {
	StatusCode int
	Code       string `json:"code"`
	Details    string `json:"details"`
}
