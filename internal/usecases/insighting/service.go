package insighting

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-pulse-api/infrastructure/integrator/scribe"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/internal/usecases/accessing"
	"github.com/vfg2006/content-pulse-api/internal/usecases/analyzing"
)

// Insighter produz o feed curado de insights de um solicitante
type Insighter interface {
	GetInsights(requester string, filters *domain.InsightFilters) (*domain.InsightsResponse, error)
}

type Service struct {
	cfg                    *config.Config
	analyzer               analyzing.Analyzer
	scribeService          scribe.ScribeIntegrator
	insightCacheRepository repository.InsightCacheRepository
	accessor               accessing.Accessor
	useCache               bool
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	analyzer analyzing.Analyzer,
	scribeService scribe.ScribeIntegrator,
	accessor accessing.Accessor,
) *Service {
	return &Service{
		cfg:           cfg,
		analyzer:      analyzer,
		scribeService: scribeService,
		accessor:      accessor,
	}
}

// WithCache habilita o cache de insights curados
func (s *Service) WithCache(cacheRepo repository.InsightCacheRepository) *Service {
	s.insightCacheRepository = cacheRepo
	s.useCache = cacheRepo != nil
	return s
}

// GetInsights devolve os insights curados do período. Em cache fresco, só o
// resumo narrativo pode ser regenerado, e apenas quando o armazenado foi
// gerado em outro dia de calendário; o payload de insights nunca é recomputado
// dentro da janela de frescor.
func (s *Service) GetInsights(requester string, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	if filters == nil || filters.Period == nil {
		return nil, fmt.Errorf("é necessário informar o período da consulta")
	}

	identitySet, err := s.accessor.ResolveIdentitySet(requester)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cacheKey := domain.NewCacheKey(identitySet.RootIdentity, filters.Period, filters.Context)

	if s.useCache {
		if cached := s.lookupCache(cacheKey, now); cached != nil {
			return cached, nil
		}
	}

	analytics, err := s.analyzer.GetAnalytics(requester, &domain.AnalyticsFilters{
		Period:        filters.Period,
		Context:       filters.Context,
		SortColumn:    domain.SortByImpressions,
		SortDirection: domain.SortDesc,
	})
	if err != nil {
		return nil, err
	}

	raw := s.generateRawInsights(analytics)
	curated := curate(raw)

	summary := s.summarize(curated, identitySet.RootIdentity)

	expiresAt := now.Add(time.Duration(s.cfg.Analytics.CacheTTLHours) * time.Hour)

	if s.useCache {
		entry := &domain.InsightCacheEntry{
			Key:         cacheKey,
			Insights:    curated,
			Summary:     summary,
			GeneratedAt: now,
			ExpiresAt:   expiresAt,
		}
		if summary != nil {
			entry.SummaryGeneratedAt = &now
		}

		if err := s.insightCacheRepository.SaveOrUpdate(entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"root_identity": cacheKey.RootIdentity,
				"period":        cacheKey.Period,
				"context":       cacheKey.Context,
			}).Warn("Erro ao gravar o cache de insights")
		}
	}

	return &domain.InsightsResponse{
		Insights:    curated,
		Summary:     summary,
		GeneratedAt: now,
		ExpiresAt:   expiresAt,
	}, nil
}

// generateRawInsights invoca o gerador uma vez por critério de ranqueamento,
// em paralelo. Falhas individuais são absorvidas: o feed segue com os
// critérios que responderam.
func (s *Service) generateRawInsights(analytics *domain.AnalyticsResult) []domain.Insight {
	maxConcurrent := s.cfg.Analytics.MaxConcurrentFetches
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var mutex sync.Mutex

	raw := make([]domain.Insight, 0)

	for _, criterion := range domain.AllSortColumns {
		wg.Add(1)

		go func(criterion domain.SortColumn) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			topByCriterion := reorderByCriterion(analytics.TopItems, criterion)

			insights, err := s.scribeService.GenerateInsights(topByCriterion, criterion, analytics.OrganizationNames)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"criterion": string(criterion),
				}).Warn("Erro ao gerar insights para o critério; seguindo sem ele")
				return
			}

			mutex.Lock()
			raw = append(raw, insights...)
			mutex.Unlock()
		}(criterion)
	}

	wg.Wait()

	return raw
}

// summarize pede o resumo narrativo ao Scribe; falha vira resumo ausente
func (s *Service) summarize(insights []domain.Insight, rootIdentity string) *string {
	if len(insights) == 0 {
		return nil
	}

	summary, err := s.scribeService.Summarize(insights)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"root_identity": rootIdentity,
		}).Warn("Erro ao gerar o resumo narrativo; seguindo sem ele")
		return nil
	}

	return &summary
}

// lookupCache devolve a entrada fresca, regenerando o resumo quando o
// armazenado é de outro dia de calendário. A regeneração regrava apenas o
// campo de resumo.
func (s *Service) lookupCache(key domain.CacheKey, now time.Time) *domain.InsightsResponse {
	entry, err := s.insightCacheRepository.Get(key)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"root_identity": key.RootIdentity,
			"period":        key.Period,
			"context":       key.Context,
		}).Warn("Erro ao consultar o cache de insights")
		return nil
	}

	if entry == nil || !entry.IsFresh(now) {
		return nil
	}

	response := &domain.InsightsResponse{
		Insights:    entry.Insights,
		Summary:     entry.Summary,
		GeneratedAt: entry.GeneratedAt,
		ExpiresAt:   entry.ExpiresAt,
		Cached:      true,
	}

	if entry.HasSummaryForDay(now) {
		return response
	}

	summary := s.summarize(entry.Insights, key.RootIdentity)
	if summary == nil {
		return response
	}

	if err := s.insightCacheRepository.UpdateSummary(entry.ID, *summary, now); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"root_identity": key.RootIdentity,
			"period":        key.Period,
			"context":       key.Context,
		}).Warn("Erro ao regravar o resumo no cache de insights")
	}

	response.Summary = summary
	return response
}

// reorderByCriterion reordena os itens de destaque pelo critério informado
func reorderByCriterion(items []*domain.DeltaRecord, criterion domain.SortColumn) []*domain.DeltaRecord {
	reordered := make([]*domain.DeltaRecord, len(items))
	copy(reordered, items)

	sort.SliceStable(reordered, func(i, j int) bool {
		return reordered[i].MetricValue(criterion) > reordered[j].MetricValue(criterion)
	})

	return reordered
}
