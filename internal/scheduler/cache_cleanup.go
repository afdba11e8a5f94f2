package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository"
	"github.com/vfg2006/content-pulse-api/internal/config"
)

// CacheCleanupConfig representa a configuração do agendador de limpeza
type CacheCleanupConfig struct {
	CronSchedule          string
	CleanupEnabled        bool
	CacheRetentionDays    int
	SnapshotRetentionDays int
}

// CacheCleanupService remove periodicamente entradas de cache expiradas e
// snapshots fora da janela de retenção
type CacheCleanupService struct {
	scheduler              *gocron.Scheduler
	config                 CacheCleanupConfig
	analyticsCacheRepo     repository.AnalyticsCacheRepository
	insightCacheRepo       repository.InsightCacheRepository
	snapshotRepo           repository.SnapshotRepository
	cleanupRunning         bool
	cleanupMutex           sync.Mutex
	lastCleanupStartedAt   time.Time
	lastCleanupCompletedAt time.Time
}

// NewCacheCleanupService cria uma nova instância do serviço de limpeza
func NewCacheCleanupService(
	analyticsCacheRepo repository.AnalyticsCacheRepository,
	insightCacheRepo repository.InsightCacheRepository,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *CacheCleanupService {
	cleanupConfig := CacheCleanupConfig{
		CronSchedule:          appConfig.CacheCleanup.CronSchedule,
		CleanupEnabled:        appConfig.CacheCleanup.Enabled,
		CacheRetentionDays:    appConfig.CacheCleanup.CacheRetentionDays,
		SnapshotRetentionDays: appConfig.CacheCleanup.SnapshotRetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           cleanupConfig.CronSchedule,
		"cleanup_enabled":         cleanupConfig.CleanupEnabled,
		"cache_retention_days":    cleanupConfig.CacheRetentionDays,
		"snapshot_retention_days": cleanupConfig.SnapshotRetentionDays,
	}).Info("Configuração do agendador de limpeza de cache carregada")

	return &CacheCleanupService{
		scheduler:          scheduler,
		config:             cleanupConfig,
		analyticsCacheRepo: analyticsCacheRepo,
		insightCacheRepo:   insightCacheRepo,
		snapshotRepo:       snapshotRepo,
		cleanupRunning:     false,
	}
}

// Start inicia o agendador
func (s *CacheCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup executa o ciclo completo de limpeza
func (s *CacheCleanupService) runCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastCleanupStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.Info("Iniciando limpeza de cache e snapshots antigos")

	analyticsRemoved, err := s.analyticsCacheRepo.DeleteExpired(s.config.CacheRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover entradas expiradas do cache de analytics")
	}

	insightsRemoved, err := s.insightCacheRepo.DeleteExpired(s.config.CacheRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover entradas expiradas do cache de insights")
	}

	snapshotsRemoved, err := s.snapshotRepo.DeleteOlderThan(s.config.SnapshotRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover snapshots fora da janela de retenção")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":          duration.String(),
		"analytics_removed": analyticsRemoved,
		"insights_removed":  insightsRemoved,
		"snapshots_removed": snapshotsRemoved,
	}).Info("Limpeza de cache concluída")

	s.lastCleanupCompletedAt = time.Now()
}

// TriggerManualCleanup inicia manualmente um ciclo de limpeza
func (s *CacheCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de cache")
	go s.runCleanup()
}

// GetStatus retorna o status atual do agendador
func (s *CacheCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":           s.config.CleanupEnabled,
		"cleanup_cron":              s.config.CronSchedule,
		"cache_retention_days":      s.config.CacheRetentionDays,
		"snapshot_retention_days":   s.config.SnapshotRetentionDays,
		"last_cleanup_started_at":   s.lastCleanupStartedAt,
		"last_cleanup_completed_at": s.lastCleanupCompletedAt,
	}
}
