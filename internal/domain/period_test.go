package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriodWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	customStart := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	customEnd := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		preset    string
		startDate *time.Time
		endDate   *time.Time
		validate  func(t *testing.T, window *PeriodWindow, err error)
	}{
		{
			name:   "Preset de 30 dias - janela termina em agora e começa 30 dias antes",
			preset: PeriodPreset30d,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.NoError(t, err)
				assert.Equal(t, PeriodPreset30d, window.Preset)
				assert.Equal(t, now, window.EndDate)
				assert.Equal(t, now.AddDate(0, 0, -30), window.StartDate)
				assert.Equal(t, now.AddDate(0, 0, -60), window.PreviousStartDate)
			},
		},
		{
			name:   "Preset de 7 dias - datas derivadas de agora",
			preset: PeriodPreset7d,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.NoError(t, err)
				assert.Equal(t, now.AddDate(0, 0, -7), window.StartDate)
				assert.Equal(t, now, window.EndDate)
			},
		},
		{
			name:   "Preset all - cobre todo o histórico",
			preset: PeriodPresetAll,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.NoError(t, err)
				assert.True(t, window.IsAllTime())
				assert.Equal(t, time.Unix(0, 0).UTC(), window.StartDate)
				assert.Equal(t, now, window.EndDate)
			},
		},
		{
			name:      "Período custom válido - janela anterior com a mesma duração",
			preset:    PeriodPresetCustom,
			startDate: &customStart,
			endDate:   &customEnd,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.NoError(t, err)
				assert.True(t, window.IsCustom())
				assert.Equal(t, customStart, window.StartDate)
				assert.Equal(t, customEnd, window.EndDate)
				assert.Equal(t, customStart.Add(-customEnd.Sub(customStart)), window.PreviousStartDate)
			},
		},
		{
			name:      "Período custom sem data final - erro de período inválido",
			preset:    PeriodPresetCustom,
			startDate: &customStart,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Nil(t, window)
			},
		},
		{
			name:      "Período custom com início depois do fim - erro de período inválido",
			preset:    PeriodPresetCustom,
			startDate: &customEnd,
			endDate:   &customStart,
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Nil(t, window)
			},
		},
		{
			name:   "Preset desconhecido - erro de período inválido",
			preset: "15d",
			validate: func(t *testing.T, window *PeriodWindow, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Nil(t, window)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ResolvePeriodWindow(tt.preset, tt.startDate, tt.endDate, now)
			tt.validate(t, window, err)
		})
	}
}

func TestPreviousWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Preset de 30 dias - janela anterior encosta no início da atual", func(t *testing.T) {
		window, err := ResolvePeriodWindow(PeriodPreset30d, nil, nil, now)
		assert.NoError(t, err)

		previous := window.PreviousWindow()
		assert.NotNil(t, previous)
		assert.Equal(t, window.PreviousStartDate, previous.StartDate)
		assert.True(t, previous.EndDate.Before(window.StartDate))
		assert.Equal(t, window.StartDate.Add(-time.Nanosecond), previous.EndDate)
	})

	t.Run("All-time - não existe janela anterior", func(t *testing.T) {
		window, err := ResolvePeriodWindow(PeriodPresetAll, nil, nil, now)
		assert.NoError(t, err)
		assert.Nil(t, window.PreviousWindow())
	})
}

func TestPeriodWindowContains(t *testing.T) {
	window := &PeriodWindow{
		Preset:    PeriodPresetCustom,
		StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, window.Contains(window.StartDate))
	assert.True(t, window.Contains(window.EndDate))
	assert.True(t, window.Contains(time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(window.StartDate.Add(-time.Second)))
	assert.False(t, window.Contains(window.EndDate.Add(time.Second)))
}

func TestNewCacheKey(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Preset - chave guarda o nome do preset sem datas", func(t *testing.T) {
		window, _ := ResolvePeriodWindow(PeriodPreset30d, nil, nil, now)
		key := NewCacheKey("owner-1", window, ContextFilter{Kind: ContextAll})

		assert.Equal(t, "owner-1", key.RootIdentity)
		assert.Equal(t, PeriodPreset30d, key.Period)
		assert.Equal(t, "all", key.Context)
		assert.Nil(t, key.StartDate)
		assert.Nil(t, key.EndDate)
	})

	t.Run("Custom - chave carrega as datas exatas", func(t *testing.T) {
		start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
		window, _ := ResolvePeriodWindow(PeriodPresetCustom, &start, &end, now)

		key := NewCacheKey("owner-1", window, ContextFilter{Kind: ContextOrganization, OrganizationID: "org-7"})

		assert.Equal(t, PeriodPresetCustom, key.Period)
		assert.Equal(t, "org-7", key.Context)
		assert.NotNil(t, key.StartDate)
		assert.NotNil(t, key.EndDate)
		assert.Equal(t, start, *key.StartDate)
		assert.Equal(t, end, *key.EndDate)
	})
}
