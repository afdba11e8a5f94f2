package domain

import (
	"time"
)

// MetricSnapshot representa uma leitura pontual dos contadores cumulativos de
// engajamento de um item publicado em uma plataforma externa. Imutável depois
// de gravado; múltiplos snapshots podem cair no mesmo dia.
type MetricSnapshot struct {
	ID             int64     `json:"id"`
	ItemExternalID string    `json:"item_external_id"`
	UserID         string    `json:"user_id"`
	Impressions    int       `json:"impressions"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Shares         int       `json:"shares"`
	Clicks         int       `json:"clicks"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// EngagementTotal soma as interações diretas (likes + comments + shares)
func (s *MetricSnapshot) EngagementTotal() int {
	return s.Likes + s.Comments + s.Shares
}

// FetchedDay retorna o dia de calendário do snapshot no formato 2006-01-02
func (s *MetricSnapshot) FetchedDay() string {
	return s.FetchedAt.Format(time.DateOnly)
}
