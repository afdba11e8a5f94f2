package domain

// ItemMetrics descreve um item de conteúdo enviado ao Scribe para análise
type ItemMetrics struct {
	ExternalID      string  `json:"external_id"`
	Excerpt         string  `json:"excerpt,omitempty"`
	Impressions     int     `json:"impressions"`
	Likes           int     `json:"likes"`
	Comments        int     `json:"comments"`
	Shares          int     `json:"shares"`
	Clicks          int     `json:"clicks"`
	EngagementRate  float64 `json:"engagement_rate"`
	PublishedAt     string  `json:"published_at,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

type GenerateInsightsRequest struct {
	Criterion string        `json:"criterion"`
	Items     []ItemMetrics `json:"items"`
}

type GeneratedInsight struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

type GenerateInsightsResponse struct {
	Insights []GeneratedInsight `json:"insights"`
}

type SummarizeRequest struct {
	Insights []GeneratedInsight `json:"insights"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
