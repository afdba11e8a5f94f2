package domain

import (
	"time"
)

// DeltaRecord é a saída do motor de deltas: o acréscimo local ao período de
// cada métrica para um vínculo externo de um item.
// Invariante: todo campo de delta é limitado a >= 0; quedas aparentes nos
// contadores cumulativos são tratadas como ruído de medição.
type DeltaRecord struct {
	ItemID              string     `json:"item_id"`
	ExternalID          string     `json:"external_id"`
	ImpressionsDelta    int        `json:"impressions_delta"`
	LikesDelta          int        `json:"likes_delta"`
	CommentsDelta       int        `json:"comments_delta"`
	SharesDelta         int        `json:"shares_delta"`
	ClicksDelta         int        `json:"clicks_delta"`
	EngagementRateDelta float64    `json:"engagement_rate_delta"`
	OrganizationID      *string    `json:"organization_id,omitempty"`
	Excerpt             string     `json:"excerpt"`
	PublishedAt         *time.Time `json:"published_at,omitempty"`
}

// MetricValue retorna o delta correspondente a uma coluna de ordenação
func (d *DeltaRecord) MetricValue(column SortColumn) float64 {
	switch column {
	case SortByLikes:
		return float64(d.LikesDelta)
	case SortByComments:
		return float64(d.CommentsDelta)
	case SortByShares:
		return float64(d.SharesDelta)
	case SortByEngagementRate:
		return d.EngagementRateDelta
	default:
		return float64(d.ImpressionsDelta)
	}
}
