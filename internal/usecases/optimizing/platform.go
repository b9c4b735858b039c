package optimizing

import (
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/domain"
)

// AdsPlatform é a superfície da plataforma de anúncios usada pelo motor de
// otimização. O integrador da Amazon é a implementação de produção.
type AdsPlatform interface {
	FetchSnapshots(account *domain.Account, entityType domain.EntityType, lookbackDays int) (map[string]*domain.PerformanceSnapshot, error)
	ListKeywordsByCampaign(account *domain.Account, campaignID string) ([]amazondomain.Keyword, error)
	UpdateKeywordBid(account *domain.Account, keywordID string, bid float64) (*amazondomain.MutationResult, error)
	UpdateKeywordState(account *domain.Account, keywordID, state string) (*amazondomain.MutationResult, error)
	UpdateCampaignState(account *domain.Account, campaignID, state string) (*amazondomain.MutationResult, error)
	UpdateCampaignBudget(account *domain.Account, campaignID string, budget float64) (*amazondomain.MutationResult, error)
}
