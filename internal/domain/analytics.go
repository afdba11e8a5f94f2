package domain

import (
	"fmt"
	"time"
)

type SortColumn string

const (
	SortByImpressions    SortColumn = "impressions"
	SortByLikes          SortColumn = "likes"
	SortByComments       SortColumn = "comments"
	SortByShares         SortColumn = "shares"
	SortByEngagementRate SortColumn = "engagementRate"
)

// AllSortColumns lista os cinco critérios de ranqueamento, na ordem em que o
// gerador de insights é invocado
var AllSortColumns = []SortColumn{
	SortByImpressions,
	SortByLikes,
	SortByComments,
	SortByShares,
	SortByEngagementRate,
}

// ParseSortColumn valida a coluna de ordenação; vazio assume impressions
func ParseSortColumn(raw string) (SortColumn, error) {
	if raw == "" {
		return SortByImpressions, nil
	}
	for _, column := range AllSortColumns {
		if raw == string(column) {
			return column, nil
		}
	}
	return "", fmt.Errorf("coluna de ordenação desconhecida: %s", raw)
}

type SortDirection string

const (
	SortDesc SortDirection = "desc"
	SortAsc  SortDirection = "asc"
)

// ParseSortDirection valida a direção de ordenação; vazio assume desc
func ParseSortDirection(raw string) (SortDirection, error) {
	switch raw {
	case "":
		return SortDesc, nil
	case string(SortAsc), string(SortDesc):
		return SortDirection(raw), nil
	}
	return "", fmt.Errorf("direção de ordenação desconhecida: %s", raw)
}

// MetricTotals agrega os deltas de todas as peças de conteúdo do período
type MetricTotals struct {
	Impressions    int     `json:"impressions"`
	Likes          int     `json:"likes"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Clicks         int     `json:"clicks"`
	EngagementRate float64 `json:"engagement_rate"`
}

// TimeSeriesPoint é o agregado de um dia de calendário, somado sobre o último
// snapshot de cada vínculo externo naquele dia
type TimeSeriesPoint struct {
	Date        string `json:"date"` // 2006-01-02
	Impressions int    `json:"impressions"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Shares      int    `json:"shares"`
	Clicks      int    `json:"clicks"`
}

// AnalyticsFilters reúne os parâmetros de uma consulta de analytics
type AnalyticsFilters struct {
	Period        *PeriodWindow
	Context       ContextFilter
	SortColumn    SortColumn
	SortDirection SortDirection
}

// AnalyticsResult é o payload completo do dashboard de desempenho
type AnalyticsResult struct {
	Totals            MetricTotals          `json:"totals"`
	PreviousTotals    *MetricTotals         `json:"previous_totals,omitempty"`
	TimeSeries        []TimeSeriesPoint     `json:"time_series"`
	TopItems          []*DeltaRecord        `json:"top_items"`
	PublishingPattern [7]int                `json:"publishing_pattern"` // 0=domingo .. 6=sábado
	StatusCounts      map[ContentStatus]int `json:"status_counts"`
	OrganizationNames map[string]string     `json:"organization_names,omitempty"`
	GeneratedAt       time.Time             `json:"generated_at"`
	Cached            bool                  `json:"cached"`
}
