package optimizing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	amazondomain "github.com/robotads/robotads-api/infrastructure/integrator/amazon/domain"
	"github.com/robotads/robotads-api/internal/config"
	"github.com/robotads/robotads-api/internal/domain"
	"github.com/robotads/robotads-api/pkg/utils"
)

// ActionResult é o desfecho de uma ação aplicada a uma entidade
type ActionResult struct {
	EntityType domain.EntityType
	EntityID   string
	OldValue   *float64
	NewValue   *float64
	StatusCode int
	Response   string
	Err        error
}

// Executor traduz a ação de uma regra em chamadas de escrita na plataforma.
// Todo lance calculado é arredondado para duas casas e limitado aos valores
// mínimo e máximo configurados.
type Executor struct {
	platform  AdsPlatform
	bidMin    float64
	bidMax    float64
	budgetMin float64
	budgetMax float64
}

func NewExecutor(cfg *config.Config, platform AdsPlatform) *Executor {
	return &Executor{
		platform:  platform,
		bidMin:    cfg.Bid.Min,
		bidMax:    cfg.Bid.Max,
		budgetMin: cfg.Budget.Min,
		budgetMax: cfg.Budget.Max,
	}
}

// Execute aplica a ação da regra sobre a entidade que disparou as condições.
// Regras de campanha com ação de lance são expandidas para as palavras-chave
// filhas: a Amazon não tem lance no nível de campanha.
func (e *Executor) Execute(account *domain.Account, rule *domain.Rule, snapshot *domain.PerformanceSnapshot) []ActionResult {
	switch rule.Action.Type {
	case domain.ActionPauseEntity:
		return []ActionResult{e.updateState(account, snapshot, amazondomain.EntityStatePaused)}
	case domain.ActionEnableEntity:
		return []ActionResult{e.updateState(account, snapshot, amazondomain.EntityStateEnabled)}
	case domain.ActionAdjustBidPercentage, domain.ActionAdjustBidAmount, domain.ActionSetBid:
		return e.executeBidAction(account, rule, snapshot)
	case domain.ActionAdjustBudgetPercentage, domain.ActionAdjustBudgetAmount:
		return []ActionResult{e.executeBudgetAction(account, rule, snapshot)}
	}

	return []ActionResult{{
		EntityType: snapshot.EntityType,
		EntityID:   snapshot.EntityID,
		Err:        fmt.Errorf("%w: %s em %s", ErrUnsupportedAction, rule.Action.Type, snapshot.EntityType),
	}}
}

func (e *Executor) updateState(account *domain.Account, snapshot *domain.PerformanceSnapshot, state string) ActionResult {
	result := ActionResult{
		EntityType: snapshot.EntityType,
		EntityID:   snapshot.EntityID,
	}

	var (
		mutation *amazondomain.MutationResult
		err      error
	)

	switch snapshot.EntityType {
	case domain.EntityTypeCampaign:
		mutation, err = e.platform.UpdateCampaignState(account, snapshot.EntityID, state)
	case domain.EntityTypeKeyword:
		mutation, err = e.platform.UpdateKeywordState(account, snapshot.EntityID, state)
	default:
		result.Err = fmt.Errorf("%w: mudança de estado em %s", ErrUnsupportedAction, snapshot.EntityType)
		return result
	}

	result.Err = err
	if mutation != nil {
		result.StatusCode = mutation.StatusCode
		result.Response = mutation.Details
	}

	return result
}

func (e *Executor) executeBidAction(account *domain.Account, rule *domain.Rule, snapshot *domain.PerformanceSnapshot) []ActionResult {
	if snapshot.EntityType == domain.EntityTypeKeyword {
		currentBid, ok := snapshot.MetricValue(domain.MetricBid)
		return []ActionResult{e.applyKeywordBid(account, snapshot.EntityID, rule.Action, currentBid, ok)}
	}

	// Expansão campanha -> palavras-chave filhas. A falha em uma filha não
	// impede o ajuste das demais.
	keywords, err := e.platform.ListKeywordsByCampaign(account, snapshot.EntityID)
	if err != nil {
		return []ActionResult{{
			EntityType: snapshot.EntityType,
			EntityID:   snapshot.EntityID,
			Err:        err,
		}}
	}

	if len(keywords) == 0 {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"campaign_id": snapshot.EntityID,
		}).Warn("optimization: campaign has no keywords to adjust")
		return nil
	}

	// Só palavras-chave ativas recebem ajuste: mexer no lance de uma
	// palavra-chave pausada ou arquivada não tem efeito e polui a auditoria
	results := make([]ActionResult, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword.State != amazondomain.EntityStateEnabled {
			continue
		}
		results = append(results, e.applyKeywordBid(account, keyword.KeywordID, rule.Action, keyword.Bid, keyword.Bid > 0))
	}

	return results
}

// executeBudgetAction ajusta o orçamento diário da campanha que disparou a
// regra. O orçamento atual vem do snapshot, completado pela listagem de
// campanhas na fase de coleta.
func (e *Executor) executeBudgetAction(account *domain.Account, rule *domain.Rule, snapshot *domain.PerformanceSnapshot) ActionResult {
	result := ActionResult{
		EntityType: snapshot.EntityType,
		EntityID:   snapshot.EntityID,
	}

	if snapshot.EntityType != domain.EntityTypeCampaign {
		result.Err = fmt.Errorf("%w: %s em %s", ErrUnsupportedAction, rule.Action.Type, snapshot.EntityType)
		return result
	}

	currentBudget, ok := snapshot.MetricValue(domain.MetricBudget)
	if !ok {
		result.Err = ErrMissingCurrentBudget
		return result
	}

	old := currentBudget
	result.OldValue = &old

	newBudget, err := e.computeBudget(rule.Action, currentBudget)
	if err != nil {
		result.Err = err
		return result
	}
	result.NewValue = &newBudget

	mutation, err := e.platform.UpdateCampaignBudget(account, snapshot.EntityID, newBudget)
	result.Err = err
	if mutation != nil {
		result.StatusCode = mutation.StatusCode
		result.Response = mutation.Details
	}

	return result
}

func (e *Executor) applyKeywordBid(account *domain.Account, keywordID string, action domain.Action, currentBid float64, hasCurrentBid bool) ActionResult {
	result := ActionResult{
		EntityType: domain.EntityTypeKeyword,
		EntityID:   keywordID,
	}

	if hasCurrentBid {
		old := currentBid
		result.OldValue = &old
	}

	newBid, err := e.computeBid(action, currentBid, hasCurrentBid)
	if err != nil {
		result.Err = err
		return result
	}
	result.NewValue = &newBid

	mutation, err := e.platform.UpdateKeywordBid(account, keywordID, newBid)
	result.Err = err
	if mutation != nil {
		result.StatusCode = mutation.StatusCode
		result.Response = mutation.Details
	}

	return result
}

// computeBid calcula o novo lance segundo o tipo de ajuste e aplica o
// arredondamento e os limites globais
func (e *Executor) computeBid(action domain.Action, currentBid float64, hasCurrentBid bool) (float64, error) {
	var newBid float64

	switch action.Type {
	case domain.ActionSetBid:
		newBid = action.Value
	case domain.ActionAdjustBidPercentage:
		if !hasCurrentBid {
			return 0, ErrMissingCurrentBid
		}
		newBid = currentBid * (1 + action.Value/100)
	case domain.ActionAdjustBidAmount:
		if !hasCurrentBid {
			return 0, ErrMissingCurrentBid
		}
		newBid = currentBid + action.Value
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAction, action.Type)
	}

	newBid = utils.RoundWithTwoDecimalPlace(newBid)

	if newBid < e.bidMin {
		newBid = e.bidMin
	}
	if newBid > e.bidMax {
		newBid = e.bidMax
	}

	return newBid, nil
}

// computeBudget segue a mesma aritmética do lance, com os limites próprios do
// orçamento diário
func (e *Executor) computeBudget(action domain.Action, currentBudget float64) (float64, error) {
	var newBudget float64

	switch action.Type {
	case domain.ActionAdjustBudgetPercentage:
		newBudget = currentBudget * (1 + action.Value/100)
	case domain.ActionAdjustBudgetAmount:
		newBudget = currentBudget + action.Value
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAction, action.Type)
	}

	newBudget = utils.RoundWithTwoDecimalPlace(newBudget)

	if newBudget < e.budgetMin {
		newBudget = e.budgetMin
	}
	if newBudget > e.budgetMax {
		newBudget = e.budgetMax
	}

	return newBudget, nil
}
