package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/content-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	accessingmocks "github.com/vfg2006/content-pulse-api/internal/usecases/accessing/mocks"
	"go.uber.org/mock/gomock"
)

func analyticsTestConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			CacheTTLHours:        24,
			TopItemsLimit:        10,
			MaxConcurrentFetches: 5,
		},
	}
}

func TestGetAnalytics(t *testing.T) {
	windowStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	window := &domain.PeriodWindow{
		Preset:            domain.PeriodPresetCustom,
		StartDate:         windowStart,
		EndDate:           windowStart.AddDate(0, 0, 30),
		PreviousStartDate: windowStart.AddDate(0, 0, -30),
	}

	requester := "user-1"
	identitySet := domain.NewSoloIdentitySet(requester)

	items := []*domain.ContentItem{
		{
			ID:               "item-1",
			UserID:           requester,
			PublishTarget:    domain.PublishTargetPersonal,
			Status:           domain.ContentStatusPublished,
			ExternalBindings: []domain.ExternalBinding{{ExternalID: "ext-1"}},
			PublishedAt:      timePtr(windowStart.AddDate(0, 0, 2)),
		},
	}

	snapshots := []*domain.MetricSnapshot{
		snapshot("ext-1", windowStart.AddDate(0, 0, 5), 200, 14, 4, 2, 9),
	}

	tests := []struct {
		name     string
		filters  *domain.AnalyticsFilters
		useCache bool
		setup    func(
			snapshotRepo *repomocks.MockSnapshotRepository,
			contentItemRepo *repomocks.MockContentItemRepository,
			organizationRepo *repomocks.MockOrganizationRepository,
			cacheRepo *repomocks.MockAnalyticsCacheRepository,
			accessor *accessingmocks.MockAccessor,
		)
		validate func(t *testing.T, result *domain.AnalyticsResult, err error)
	}{
		{
			name: "Sem filtros de período - erro antes de consultar qualquer repositório",
			setup: func(
				snapshotRepo *repomocks.MockSnapshotRepository,
				contentItemRepo *repomocks.MockContentItemRepository,
				organizationRepo *repomocks.MockOrganizationRepository,
				cacheRepo *repomocks.MockAnalyticsCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
			},
			validate: func(t *testing.T, result *domain.AnalyticsResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:     "Cache fresco - devolve o payload armazenado marcado como cached",
			filters:  &domain.AnalyticsFilters{Period: window, SortColumn: domain.SortByImpressions, SortDirection: domain.SortDesc},
			useCache: true,
			setup: func(
				snapshotRepo *repomocks.MockSnapshotRepository,
				contentItemRepo *repomocks.MockContentItemRepository,
				organizationRepo *repomocks.MockOrganizationRepository,
				cacheRepo *repomocks.MockAnalyticsCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)

				cacheRepo.EXPECT().Get(gomock.Any()).Return(&domain.AnalyticsCacheEntry{
					Payload: &domain.AnalyticsResult{
						Totals: domain.MetricTotals{Impressions: 999},
					},
					GeneratedAt: time.Now().Add(-time.Hour),
					ExpiresAt:   time.Now().Add(time.Hour),
				}, nil)
			},
			validate: func(t *testing.T, result *domain.AnalyticsResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Cached)
				assert.Equal(t, 999, result.Totals.Impressions)
			},
		},
		{
			name:     "Cache expirado - recomputa o painel e regrava a entrada",
			filters:  &domain.AnalyticsFilters{Period: window, SortColumn: domain.SortByImpressions, SortDirection: domain.SortDesc},
			useCache: true,
			setup: func(
				snapshotRepo *repomocks.MockSnapshotRepository,
				contentItemRepo *repomocks.MockContentItemRepository,
				organizationRepo *repomocks.MockOrganizationRepository,
				cacheRepo *repomocks.MockAnalyticsCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)

				cacheRepo.EXPECT().Get(gomock.Any()).Return(&domain.AnalyticsCacheEntry{
					Payload:   &domain.AnalyticsResult{},
					ExpiresAt: time.Now().Add(-time.Hour),
				}, nil)

				contentItemRepo.EXPECT().ListByIdentities(identitySet.Members, nil).Return(items, nil)
				organizationRepo.EXPECT().GetNamesByIdentities(identitySet.Members).Return(map[string]string{"org-1": "Org Um"}, nil)
				accessor.EXPECT().FilterVisible(requester, items, domain.ContextFilter{}).Return(items, nil)
				snapshotRepo.EXPECT().GetByExternalIDs([]string{"ext-1"}, gomock.Any()).Return(snapshots, nil)
				cacheRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.AnalyticsResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Cached)
				assert.Equal(t, 200, result.Totals.Impressions)
				assert.Equal(t, 0.1, result.Totals.EngagementRate)
				assert.Len(t, result.TopItems, 1)
				assert.NotNil(t, result.PreviousTotals)
				assert.Equal(t, 0, result.PreviousTotals.Impressions)
				assert.Equal(t, map[string]string{"org-1": "Org Um"}, result.OrganizationNames)
			},
		},
		{
			name:     "Erro ao buscar nomes de organizações - painel segue sem os nomes",
			filters:  &domain.AnalyticsFilters{Period: window, SortColumn: domain.SortByImpressions, SortDirection: domain.SortDesc},
			useCache: false,
			setup: func(
				snapshotRepo *repomocks.MockSnapshotRepository,
				contentItemRepo *repomocks.MockContentItemRepository,
				organizationRepo *repomocks.MockOrganizationRepository,
				cacheRepo *repomocks.MockAnalyticsCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				contentItemRepo.EXPECT().ListByIdentities(identitySet.Members, nil).Return(items, nil)
				organizationRepo.EXPECT().GetNamesByIdentities(identitySet.Members).Return(nil, errors.New("timeout"))
				accessor.EXPECT().FilterVisible(requester, items, domain.ContextFilter{}).Return(items, nil)
				snapshotRepo.EXPECT().GetByExternalIDs([]string{"ext-1"}, gomock.Any()).Return(snapshots, nil)
			},
			validate: func(t *testing.T, result *domain.AnalyticsResult, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result.OrganizationNames)
				assert.Equal(t, 200, result.Totals.Impressions)
			},
		},
		{
			name:     "Erro ao listar itens - consulta falha por inteiro",
			filters:  &domain.AnalyticsFilters{Period: window, SortColumn: domain.SortByImpressions, SortDirection: domain.SortDesc},
			useCache: false,
			setup: func(
				snapshotRepo *repomocks.MockSnapshotRepository,
				contentItemRepo *repomocks.MockContentItemRepository,
				organizationRepo *repomocks.MockOrganizationRepository,
				cacheRepo *repomocks.MockAnalyticsCacheRepository,
				accessor *accessingmocks.MockAccessor,
			) {
				accessor.EXPECT().ResolveIdentitySet(requester).Return(identitySet, nil)
				contentItemRepo.EXPECT().ListByIdentities(identitySet.Members, nil).Return(nil, errors.New("connection refused"))
				organizationRepo.EXPECT().GetNamesByIdentities(identitySet.Members).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AnalyticsResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			snapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
			contentItemRepo := repomocks.NewMockContentItemRepository(ctrl)
			organizationRepo := repomocks.NewMockOrganizationRepository(ctrl)
			cacheRepo := repomocks.NewMockAnalyticsCacheRepository(ctrl)
			accessor := accessingmocks.NewMockAccessor(ctrl)

			tt.setup(snapshotRepo, contentItemRepo, organizationRepo, cacheRepo, accessor)

			service := &Service{
				cfg:                    analyticsTestConfig(),
				snapshotRepository:     snapshotRepo,
				contentItemRepository:  contentItemRepo,
				organizationRepository: organizationRepo,
				accessor:               accessor,
			}
			if tt.useCache {
				service.WithCache(cacheRepo)
			}

			result, err := service.GetAnalytics(requester, tt.filters)
			tt.validate(t, result, err)
		})
	}
}
