package scribe

import (
	"time"

	scribedomain "github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/domain"
	"github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/scribeclient"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

type ScribeIntegrator interface {
	GenerateInsights(items []*domain.DeltaRecord, criterion domain.SortColumn, organizationNames map[string]string) ([]domain.Insight, error)
	Summarize(insights []domain.Insight) (string, error)
}

type ScribeService struct {
	cfg    *config.Config
	Client scribeclient.Client
}

func New(cfg *config.Config, client scribeclient.Client) ScribeIntegrator {
	return &ScribeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ScribeService) GenerateInsights(items []*domain.DeltaRecord, criterion domain.SortColumn, organizationNames map[string]string) ([]domain.Insight, error) {
	request := scribedomain.GenerateInsightsRequest{
		Criterion: string(criterion),
		Items:     make([]scribedomain.ItemMetrics, 0, len(items)),
	}

	for _, item := range items {
		metrics := scribedomain.ItemMetrics{
			ExternalID:     item.ExternalID,
			Excerpt:        item.Excerpt,
			Impressions:    item.ImpressionsDelta,
			Likes:          item.LikesDelta,
			Comments:       item.CommentsDelta,
			Shares:         item.SharesDelta,
			Clicks:         item.ClicksDelta,
			EngagementRate: item.EngagementRateDelta,
		}

		if item.PublishedAt != nil {
			metrics.PublishedAt = item.PublishedAt.Format(time.DateOnly)
		}

		if item.OrganizationID != nil {
			metrics.OrganizationName = organizationNames[*item.OrganizationID]
		}

		request.Items = append(request.Items, metrics)
	}

	resp, err := s.Client.GenerateInsights(request)
	if err != nil {
		return nil, err
	}

	insights := make([]domain.Insight, 0, len(resp.Insights))
	for _, generated := range resp.Insights {
		insights = append(insights, domain.Insight{
			Title:    generated.Title,
			Body:     generated.Body,
			Category: parseCategory(generated.Category),
			Priority: generated.Priority,
		})
	}

	return insights, nil
}

func (s *ScribeService) Summarize(insights []domain.Insight) (string, error) {
	request := scribedomain.SummarizeRequest{
		Insights: make([]scribedomain.GeneratedInsight, 0, len(insights)),
	}

	for _, insight := range insights {
		request.Insights = append(request.Insights, scribedomain.GeneratedInsight{
			Title:    insight.Title,
			Body:     insight.Body,
			Category: string(insight.Category),
			Priority: insight.Priority,
		})
	}

	resp, err := s.Client.Summarize(request)
	if err != nil {
		return "", err
	}

	return resp.Summary, nil
}

// parseCategory normaliza categorias desconhecidas vindas do Scribe
func parseCategory(raw string) domain.InsightCategory {
	category := domain.InsightCategory(raw)
	for _, known := range domain.CategoryPrecedence {
		if category == known {
			return category
		}
	}

	return domain.InsightCategoryMetrics
}
