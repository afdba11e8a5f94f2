package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func newTestCleanupService(
	analyticsRepo *mocks.MockAnalyticsCacheRepository,
	insightRepo *mocks.MockInsightCacheRepository,
	snapshotRepo *mocks.MockSnapshotRepository,
) *CacheCleanupService {
	return &CacheCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config: CacheCleanupConfig{
			CronSchedule:          "0 3 * * *",
			CleanupEnabled:        true,
			CacheRetentionDays:    7,
			SnapshotRetentionDays: 730,
		},
		analyticsCacheRepo: analyticsRepo,
		insightCacheRepo:   insightRepo,
		snapshotRepo:       snapshotRepo,
	}
}

func TestRunCleanup(t *testing.T) {
	tests := []struct {
		name  string
		setup func(
			analyticsRepo *mocks.MockAnalyticsCacheRepository,
			insightRepo *mocks.MockInsightCacheRepository,
			snapshotRepo *mocks.MockSnapshotRepository,
		)
		validate func(t *testing.T, service *CacheCleanupService)
	}{
		{
			name: "Ciclo completo - remove dos dois caches e dos snapshots com a retenção configurada",
			setup: func(
				analyticsRepo *mocks.MockAnalyticsCacheRepository,
				insightRepo *mocks.MockInsightCacheRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
			) {
				analyticsRepo.EXPECT().DeleteExpired(7).Return(int64(12), nil)
				insightRepo.EXPECT().DeleteExpired(7).Return(int64(4), nil)
				snapshotRepo.EXPECT().DeleteOlderThan(730).Return(int64(250), nil)
			},
			validate: func(t *testing.T, service *CacheCleanupService) {
				assert.False(t, service.lastCleanupStartedAt.IsZero())
				assert.False(t, service.lastCleanupCompletedAt.IsZero())
			},
		},
		{
			name: "Falha em um repositório - as demais limpezas seguem",
			setup: func(
				analyticsRepo *mocks.MockAnalyticsCacheRepository,
				insightRepo *mocks.MockInsightCacheRepository,
				snapshotRepo *mocks.MockSnapshotRepository,
			) {
				analyticsRepo.EXPECT().DeleteExpired(7).Return(int64(0), errors.New("connection refused"))
				insightRepo.EXPECT().DeleteExpired(7).Return(int64(2), nil)
				snapshotRepo.EXPECT().DeleteOlderThan(730).Return(int64(0), nil)
			},
			validate: func(t *testing.T, service *CacheCleanupService) {
				assert.False(t, service.lastCleanupCompletedAt.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyticsRepo := mocks.NewMockAnalyticsCacheRepository(ctrl)
			insightRepo := mocks.NewMockInsightCacheRepository(ctrl)
			snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

			tt.setup(analyticsRepo, insightRepo, snapshotRepo)

			service := newTestCleanupService(analyticsRepo, insightRepo, snapshotRepo)
			service.runCleanup()
			tt.validate(t, service)
		})
	}
}

func TestRunCleanupAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyticsRepo := mocks.NewMockAnalyticsCacheRepository(ctrl)
	insightRepo := mocks.NewMockInsightCacheRepository(ctrl)
	snapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := newTestCleanupService(analyticsRepo, insightRepo, snapshotRepo)
	service.cleanupRunning = true

	// Com uma limpeza em andamento, nenhum repositório deve ser tocado
	service.runCleanup()

	assert.True(t, service.lastCleanupStartedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestCleanupService(
		mocks.NewMockAnalyticsCacheRepository(ctrl),
		mocks.NewMockInsightCacheRepository(ctrl),
		mocks.NewMockSnapshotRepository(ctrl),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, "0 3 * * *", status["cleanup_cron"])
	assert.Equal(t, 7, status["cache_retention_days"])
	assert.Equal(t, 730, status["snapshot_retention_days"])
}
