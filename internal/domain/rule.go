package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdGroup  EntityType = "ad_group"
	EntityTypeKeyword  EntityType = "keyword"
)

type Metric string

const (
	MetricSpend          Metric = "spend"
	MetricOrders         Metric = "orders"
	MetricClicks         Metric = "clicks"
	MetricImpressions    Metric = "impressions"
	MetricACOS           Metric = "acos"
	MetricCTR            Metric = "ctr"
	MetricCPC            Metric = "cpc"
	MetricConversionRate Metric = "conversion_rate"
	MetricROAS           Metric = "roas"
	MetricBid            Metric = "bid"
	MetricBudget         Metric = "budget"
)

// KnownMetrics é o conjunto fechado de métricas aceitas em condições
var KnownMetrics = map[Metric]struct{}{
	MetricSpend:          {},
	MetricOrders:         {},
	MetricClicks:         {},
	MetricImpressions:    {},
	MetricACOS:           {},
	MetricCTR:            {},
	MetricCPC:            {},
	MetricConversionRate: {},
	MetricROAS:           {},
	MetricBid:            {},
	MetricBudget:         {},
}

type Operator string

const (
	OperatorGreaterThan      Operator = ">"
	OperatorLessThan         Operator = "<"
	OperatorGreaterOrEqual   Operator = ">="
	OperatorLessOrEqual      Operator = "<="
	OperatorEqual            Operator = "="
	DefaultLookbackDays               = 7
	DefaultFrequencyHours             = 24
	EqualityEpsilon          float64  = 0.01
)

var KnownOperators = map[Operator]struct{}{
	OperatorGreaterThan:    {},
	OperatorLessThan:       {},
	OperatorGreaterOrEqual: {},
	OperatorLessOrEqual:    {},
	OperatorEqual:          {},
}

type ActionType string

const (
	ActionAdjustBidPercentage    ActionType = "adjust_bid_percentage"
	ActionAdjustBidAmount        ActionType = "adjust_bid_amount"
	ActionSetBid                 ActionType = "set_bid"
	ActionAdjustBudgetPercentage ActionType = "adjust_budget_percentage"
	ActionAdjustBudgetAmount     ActionType = "adjust_budget_amount"
	ActionPauseEntity            ActionType = "pause_entity"
	ActionEnableEntity           ActionType = "enable_entity"
)

var KnownActions = map[ActionType]struct{}{
	ActionAdjustBidPercentage:    {},
	ActionAdjustBidAmount:        {},
	ActionSetBid:                 {},
	ActionAdjustBudgetPercentage: {},
	ActionAdjustBudgetAmount:     {},
	ActionPauseEntity:            {},
	ActionEnableEntity:           {},
}

// IsBudgetAction indica se a ação mexe no orçamento diário, que só existe no
// nível de campanha
func (a Action) IsBudgetAction() bool {
	return a.Type == ActionAdjustBudgetPercentage || a.Type == ActionAdjustBudgetAmount
}

type MatchScope string

const (
	MatchScopeAll      MatchScope = "all"
	MatchScopeSelected MatchScope = "selected"
)

type Condition struct {
	Metric       Metric   `json:"metric"`
	Comparison   Operator `json:"comparison"`
	Value        float64  `json:"value"`
	LookbackDays int      `json:"lookback_days"`
}

// Window retorna a janela de análise da condição, aplicando o padrão de 7 dias
func (c Condition) Window() int {
	if c.LookbackDays <= 0 {
		return DefaultLookbackDays
	}
	return c.LookbackDays
}

type Action struct {
	Type  ActionType `json:"type"`
	Value float64    `json:"value"`
}

type Rule struct {
	ID             string      `json:"id"`
	UserID         int         `json:"user_id"`
	Name           string      `json:"name"`
	Enabled        bool        `json:"enabled"`
	Priority       int         `json:"priority"`
	TargetEntity   EntityType  `json:"target_entity"`
	MatchScope     MatchScope  `json:"match_scope"`
	CampaignIDs    []string    `json:"campaign_ids"`
	Conditions     []Condition `json:"conditions"`
	Action         Action      `json:"action"`
	FrequencyHours int         `json:"frequency_hours"`
	LastRun        *time.Time  `json:"last_run"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

var (
	ErrRuleWithoutConditions = errors.New("regra precisa de pelo menos uma condição")
	ErrUnknownMetric         = errors.New("métrica desconhecida")
	ErrUnknownOperator       = errors.New("operador de comparação desconhecido")
	ErrUnknownAction         = errors.New("tipo de ação desconhecido")
	ErrUnknownTargetEntity   = errors.New("tipo de entidade alvo desconhecido")
	ErrBudgetNeedsCampaign   = errors.New("ação de orçamento exige regra com alvo de campanha")
)

// Validate garante que a regra referencia apenas métricas, operadores e ações
// do conjunto fechado suportado pelo motor
func (r *Rule) Validate() error {
	if len(r.Conditions) == 0 {
		return ErrRuleWithoutConditions
	}

	for _, c := range r.Conditions {
		if _, ok := KnownMetrics[c.Metric]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownMetric, c.Metric)
		}
		if _, ok := KnownOperators[c.Comparison]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownOperator, c.Comparison)
		}
	}

	if _, ok := KnownActions[r.Action.Type]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, r.Action.Type)
	}

	if r.TargetEntity != EntityTypeCampaign && r.TargetEntity != EntityTypeKeyword {
		return fmt.Errorf("%w: %s", ErrUnknownTargetEntity, r.TargetEntity)
	}

	if r.Action.IsBudgetAction() && r.TargetEntity != EntityTypeCampaign {
		return fmt.Errorf("%w: alvo %s", ErrBudgetNeedsCampaign, r.TargetEntity)
	}

	return nil
}

// Due indica se a regra já pode rodar novamente considerando frequency_hours
func (r *Rule) Due(now time.Time) bool {
	if r.LastRun == nil {
		return true
	}

	frequency := r.FrequencyHours
	if frequency <= 0 {
		frequency = DefaultFrequencyHours
	}

	return now.Sub(*r.LastRun) >= time.Duration(frequency)*time.Hour
}

// MatchesCampaign verifica se a entidade pertence ao escopo da regra
func (r *Rule) MatchesCampaign(campaignID string) bool {
	if r.MatchScope != MatchScopeSelected {
		return true
	}

	for _, id := range r.CampaignIDs {
		if id == campaignID {
			return true
		}
	}

	return false
}

// Reason monta a justificativa legível gravada no log de auditoria,
// no formato "metric comparison threshold"
func (r *Rule) Reason() string {
	parts := make([]string, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		parts = append(parts, fmt.Sprintf("%s %s %s",
			c.Metric,
			c.Comparison,
			strconv.FormatFloat(c.Value, 'f', -1, 64),
		))
	}
	return strings.Join(parts, " and ")
}
