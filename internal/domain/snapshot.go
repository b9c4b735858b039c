package domain

// PerformanceSnapshot agrega as métricas de uma entidade em uma janela de
// análise. Valores não numéricos do relatório ficam apenas em Raw.
type PerformanceSnapshot struct {
	EntityType EntityType         `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	CampaignID string             `json:"campaign_id"`
	AdGroupID  string             `json:"ad_group_id"`
	Metrics    map[Metric]float64 `json:"metrics"`
	Raw        map[string]string  `json:"raw,omitempty"`
}

// MetricValue retorna o valor numérico da métrica; ok=false quando a métrica
// não existe no snapshot ou não pôde ser convertida para número
func (s *PerformanceSnapshot) MetricValue(metric Metric) (float64, bool) {
	if s == nil || s.Metrics == nil {
		return 0, false
	}

	value, ok := s.Metrics[metric]
	return value, ok
}
