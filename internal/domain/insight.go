package domain

import (
	"time"
)

type InsightCategory string

const (
	InsightCategoryTopics     InsightCategory = "topics"
	InsightCategoryEngagement InsightCategory = "engagement"
	InsightCategoryThemes     InsightCategory = "themes"
	InsightCategoryMetrics    InsightCategory = "metrics"
)

// CategoryPrecedence define a ordem fixa de desempate entre categorias na
// curadoria; categorias fora da lista vêm por último.
var CategoryPrecedence = []InsightCategory{
	InsightCategoryTopics,
	InsightCategoryEngagement,
	InsightCategoryThemes,
	InsightCategoryMetrics,
}

// Insight é uma observação textual gerada pelo serviço de redação a partir das
// métricas de um critério de ranqueamento. Efêmero: só existe dentro do
// payload de cache em que foi embutido.
type Insight struct {
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Category InsightCategory `json:"category"`
	Priority int             `json:"priority"`
}

// InsightFilters reúne os parâmetros de uma consulta de insights
type InsightFilters struct {
	Period  *PeriodWindow
	Context ContextFilter
}

// InsightsResponse é o payload devolvido ao chamador de GET /v1/insights
type InsightsResponse struct {
	Insights    []Insight `json:"insights"`
	Summary     *string   `json:"summary,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Cached      bool      `json:"cached"`
}
