package insighting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	scribemocks "github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe/mocks"
	repomocks "github.com/vfg2006/content-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	accessingmocks "github.com/vfg2006/content-pulse-api/internal/usecases/accessing/mocks"
	analyzingmocks "github.com/vfg2006/content-pulse-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func insightTestConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			CacheTTLHours:        24,
			TopItemsLimit:        10,
			MaxConcurrentFetches: 5,
		},
	}
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGetInsights(t *testing.T) {
	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	window := &domain.PeriodWindow{
		Preset:            domain.PeriodPresetCustom,
		StartDate:         windowStart,
		EndDate:           windowStart.AddDate(0, 0, 30),
		PreviousStartDate: windowStart.AddDate(0, 0, -30),
	}

	requester := "user-1"
	identitySet := domain.NewSoloIdentitySet(requester)

	analytics := &domain.AnalyticsResult{
		TopItems: []*domain.DeltaRecord{
			{ExternalID: "ext-1", ImpressionsDelta: 500, LikesDelta: 40},
			{ExternalID: "ext-2", ImpressionsDelta: 200, LikesDelta: 90},
		},
	}

	tests := []struct {
		name     string
		filters  *domain.InsightFilters
		useCache bool
		setup    func(
			analyzer *analyzingmocks.MockAnalyzer,
			scribe *scribemocks.MockScribeIntegrator,
			cacheRepo *repomocks.MockInsightCacheRepository,
			accessor *accessingmocks.MockAccessor,
		)
		validate func(t *testing.T, response *domain.InsightsResponse, err error)
	}{
		{
			name: "Sem filtros de período - erro antes de qualquer consulta",
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, response)
			},
		},
		{
			name:     "Cache fresco com resumo do dia - devolve tudo como está, sem recomputar",
			filters:  &domain.InsightFilters{Period: window},
			useCache: true,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)

				now := time.Now()
				cacheRepo.EXPECT().Get(gomock.Any()).Return(&domain.InsightCacheEntry{
					ID:                 "cache-1",
					Insights:           []domain.Insight{{Title: "Tema A", Category: domain.InsightCategoryTopics, Priority: 5}},
					Summary:            stringPtr("resumo do dia"),
					SummaryGeneratedAt: timePtr(now),
					GeneratedAt:        now.Add(-2 * time.Hour),
					ExpiresAt:          now.Add(20 * time.Hour),
				}, nil)
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.NoError(t, err)
				assert.True(t, response.Cached)
				assert.Len(t, response.Insights, 1)
				assert.Equal(t, "resumo do dia", *response.Summary)
			},
		},
		{
			name:     "Cache fresco com resumo de ontem - só o resumo é regenerado e regravado",
			filters:  &domain.InsightFilters{Period: window},
			useCache: true,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)

				now := time.Now()
				cachedInsights := []domain.Insight{{Title: "Tema A", Category: domain.InsightCategoryTopics, Priority: 5}}

				cacheRepo.EXPECT().Get(gomock.Any()).Return(&domain.InsightCacheEntry{
					ID:                 "cache-1",
					Insights:           cachedInsights,
					Summary:            stringPtr("resumo antigo"),
					SummaryGeneratedAt: timePtr(now.AddDate(0, 0, -1)),
					GeneratedAt:        now.Add(-20 * time.Hour),
					ExpiresAt:          now.Add(2 * time.Hour),
				}, nil)

				scribe.EXPECT().Summarize(cachedInsights).Return("resumo novo", nil)
				cacheRepo.EXPECT().UpdateSummary("cache-1", "resumo novo", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.NoError(t, err)
				assert.True(t, response.Cached)
				assert.Len(t, response.Insights, 1)
				assert.Equal(t, "resumo novo", *response.Summary)
			},
		},
		{
			name:     "Cache vazio - gera insights para os cinco critérios e grava a entrada",
			filters:  &domain.InsightFilters{Period: window},
			useCache: true,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				cacheRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

				analyzer.EXPECT().GetAnalytics(requester, &domain.AnalyticsFilters{
					Period:        window,
					SortColumn:    domain.SortByImpressions,
					SortDirection: domain.SortDesc,
				}).Return(analytics, nil)

				scribe.EXPECT().
					GenerateInsights(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(items []*domain.DeltaRecord, criterion domain.SortColumn, names map[string]string) ([]domain.Insight, error) {
						return []domain.Insight{{
							Title:    "Insight de " + string(criterion),
							Category: domain.InsightCategoryMetrics,
							Priority: 5,
						}}, nil
					}).
					Times(5)

				scribe.EXPECT().Summarize(gomock.Any()).Return("resumo do período", nil)
				cacheRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.NoError(t, err)
				assert.False(t, response.Cached)
				assert.Len(t, response.Insights, 4)
				assert.Equal(t, "resumo do período", *response.Summary)
			},
		},
		{
			name:     "Um critério falha - o feed segue com os demais",
			filters:  &domain.InsightFilters{Period: window},
			useCache: false,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				analyzer.EXPECT().GetAnalytics(requester, gomock.Any()).Return(analytics, nil)

				scribe.EXPECT().
					GenerateInsights(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(items []*domain.DeltaRecord, criterion domain.SortColumn, names map[string]string) ([]domain.Insight, error) {
						if criterion == domain.SortByLikes {
							return nil, errors.New("serviço indisponível")
						}
						return []domain.Insight{{
							Title:    "Insight de " + string(criterion),
							Category: domain.InsightCategoryMetrics,
							Priority: 5,
						}}, nil
					}).
					Times(5)

				scribe.EXPECT().Summarize(gomock.Any()).Return("resumo parcial", nil)
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, response.Insights, 4)
				for _, insight := range response.Insights {
					assert.NotEqual(t, "Insight de likes", insight.Title)
				}
			},
		},
		{
			name:     "Resumo falha - feed devolvido sem resumo",
			filters:  &domain.InsightFilters{Period: window},
			useCache: false,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				analyzer.EXPECT().GetAnalytics(requester, gomock.Any()).Return(analytics, nil)

				scribe.EXPECT().
					GenerateInsights(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(items []*domain.DeltaRecord, criterion domain.SortColumn, names map[string]string) ([]domain.Insight, error) {
						return []domain.Insight{{
							Title:    "Insight de " + string(criterion),
							Category: domain.InsightCategoryMetrics,
							Priority: 5,
						}}, nil
					}).
					Times(5)

				scribe.EXPECT().Summarize(gomock.Any()).Return("", errors.New("serviço indisponível"))
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.NoError(t, err)
				assert.Len(t, response.Insights, 4)
				assert.Nil(t, response.Summary)
			},
		},
		{
			name:     "Erro no motor de analytics - consulta falha por inteiro",
			filters:  &domain.InsightFilters{Period: window},
			useCache: false,
			setup: func(
				analyzer *analyzingmocks.MockAnalyzer,
				scribe *scribemocks.MockScribeIntegrator,
				cacheRepo *repomocks.MockInsightCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				analyzer.EXPECT().GetAnalytics(requester, gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, response *domain.InsightsResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
			scribeService := scribemocks.NewMockScribeIntegrator(ctrl)
			cacheRepo := repomocks.NewMockInsightCacheRepository(ctrl)
			accessor := accessingmocks.NewMockAccessor(ctrl)

			tt.setup(analyzer, scribeService, cacheRepo, accessor)

			service := &Service{
				cfg:           insightTestConfig(),
				analyzer:      analyzer,
				scribeService: scribeService,
				accessor:      accessor,
			}
			if tt.useCache {
				service.WithCache(cacheRepo)
			}

			response, err := service.GetInsights(requester, tt.filters)
			tt.validate(t, response, err)
		})
	}
}
