package domain

// Estados do processamento assíncrono de relatórios na Amazon Ads API
const (
	ReportStatusInProgress = "IN_PROGRESS"
	ReportStatusSuccess    = "SUCCESS"
	ReportStatusFailure    = "FAILURE"
)

// Tipos de registro aceitos na criação de relatórios de performance
const (
	ReportRecordTypeCampaigns = "campaigns"
	ReportRecordTypeKeywords  = "keywords"
)

// ReportInfo é a resposta da criação e do polling de um relatório
type ReportInfo struct {
	ReportID      string `json:"reportId"`
	RecordType    string `json:"recordType"`
	Status        string `json:"status"`
	StatusDetails string `json:"statusDetails"`
	Location      string `json:"location"`
	FileSize      int64  `json:"fileSize"`
}

// ErrorResponse é o envelope de erro padrão da Amazon Ads API
type ErrorResponse struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
