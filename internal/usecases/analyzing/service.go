package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository"
	"github.com/vfg2006/content-pulse-api/internal/config"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/internal/usecases/accessing"
)

// Analyzer calcula o painel de desempenho de um solicitante para um período
type Analyzer interface {
	GetAnalytics(requester string, filters *domain.AnalyticsFilters) (*domain.AnalyticsResult, error)
}

type Service struct {
	cfg                      *config.Config
	snapshotRepository       repository.SnapshotRepository
	contentItemRepository    repository.ContentItemRepository
	organizationRepository   repository.OrganizationRepository
	analyticsCacheRepository repository.AnalyticsCacheRepository
	accessor                 accessing.Accessor
	useCache                 bool
}

// NewService cria uma nova instância do serviço de analytics
func NewService(
	cfg *config.Config,
	snapshotRepo repository.SnapshotRepository,
	contentItemRepo repository.ContentItemRepository,
	organizationRepo repository.OrganizationRepository,
	accessor accessing.Accessor,
) *Service {
	return &Service{
		cfg:                    cfg,
		snapshotRepository:     snapshotRepo,
		contentItemRepository:  contentItemRepo,
		organizationRepository: organizationRepo,
		accessor:               accessor,
	}
}

// WithCache habilita o cache de payloads de analytics
func (s *Service) WithCache(cacheRepo repository.AnalyticsCacheRepository) *Service {
	s.analyticsCacheRepository = cacheRepo
	s.useCache = cacheRepo != nil
	return s
}

// GetAnalytics resolve o conjunto de identidades, aplica visibilidade e
// contexto, computa os deltas do período e agrega o resultado final. O filtro
// de acesso roda antes de qualquer soma; é isso que impede vazamento de dados
// entre tenants nos agregados.
func (s *Service) GetAnalytics(requester string, filters *domain.AnalyticsFilters) (*domain.AnalyticsResult, error) {
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

	var (
		items             []*domain.ContentItem
		organizationNames map[string]string
		itemsError        error
		namesError        error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		items, itemsError = s.contentItemRepository.ListByIdentities(identitySet.Members, nil)
	}()

	go func() {
		defer wg.Done()
		organizationNames, namesError = s.organizationRepository.GetNamesByIdentities(identitySet.Members)
	}()

	wg.Wait()

	if itemsError != nil {
		return nil, itemsError
	}

	if namesError != nil {
		logrus.WithError(namesError).WithFields(logrus.Fields{
			"root_identity": identitySet.RootIdentity,
		}).Warn("Erro ao buscar nomes de organizações; seguindo sem eles")
		organizationNames = nil
	}

	visible, err := s.accessor.FilterVisible(requester, items, filters.Context)
	if err != nil {
		return nil, err
	}

	window := filters.Period

	var snapshots []*domain.MetricSnapshot
	externalIDs := collectExternalIDs(visible)
	if len(externalIDs) > 0 {
		endDate := window.EndDate
		snapshots, err = s.snapshotRepository.GetByExternalIDs(externalIDs, &endDate)
		if err != nil {
			return nil, err
		}
	}

	index := buildSnapshotIndex(snapshots)
	deltas := computeDeltas(visible, index, window)

	result := &domain.AnalyticsResult{
		Totals:            sumTotals(deltas),
		TimeSeries:        buildTimeSeries(snapshots, window),
		TopItems:          rankTopItems(deltas, filters.SortColumn, filters.SortDirection, s.cfg.Analytics.TopItemsLimit),
		PublishingPattern: buildPublishingPattern(visible, window),
		StatusCounts:      countByStatus(visible, window),
		OrganizationNames: organizationNames,
		GeneratedAt:       now,
	}

	if previousWindow := window.PreviousWindow(); previousWindow != nil {
		previousDeltas := computeDeltas(visible, index, previousWindow)
		previousTotals := sumTotals(previousDeltas)
		result.PreviousTotals = &previousTotals
	}

	if s.useCache {
		s.storeCache(cacheKey, result, now)
	}

	return result, nil
}

// lookupCache devolve o payload armazenado quando ainda está fresco
func (s *Service) lookupCache(key domain.CacheKey, now time.Time) *domain.AnalyticsResult {
	entry, err := s.analyticsCacheRepository.Get(key)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"root_identity": key.RootIdentity,
			"period":        key.Period,
			"context":       key.Context,
		}).Warn("Erro ao consultar o cache de analytics")
		return nil
	}

	if entry == nil || entry.Payload == nil || !entry.IsFresh(now) {
		return nil
	}

	payload := entry.Payload
	payload.Cached = true
	return payload
}

func (s *Service) storeCache(key domain.CacheKey, result *domain.AnalyticsResult, now time.Time) {
	entry := &domain.AnalyticsCacheEntry{
		Key:         key,
		Payload:     result,
		GeneratedAt: now,
		ExpiresAt:   now.Add(time.Duration(s.cfg.Analytics.CacheTTLHours) * time.Hour),
	}

	if err := s.analyticsCacheRepository.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"root_identity": key.RootIdentity,
			"period":        key.Period,
			"context":       key.Context,
		}).Warn("Erro ao gravar o cache de analytics")
	}
}
