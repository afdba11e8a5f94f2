package domain

import (
	"errors"
	"time"
)

const (
	PeriodPreset7d     = "7d"
	PeriodPreset30d    = "30d"
	PeriodPreset90d    = "90d"
	PeriodPresetAll    = "all"
	PeriodPresetCustom = "custom"
)

// ErrInvalidPeriod indica um período malformado (preset desconhecido, datas
// ausentes no modo custom ou início posterior ao fim)
var ErrInvalidPeriod = errors.New("período inválido")

var presetDays = map[string]int{
	PeriodPreset7d:  7,
	PeriodPreset30d: 30,
	PeriodPreset90d: 90,
}

// PeriodWindow delimita o intervalo de análise. Para presets, as datas são
// derivadas de "agora" a cada chamada; o nome do preset é preservado porque é
// ele (e não as datas calculadas) que entra na chave de cache.
type PeriodWindow struct {
	Preset            string    `json:"preset"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	PreviousStartDate time.Time `json:"previous_start_date"`
}

// IsAllTime indica se a janela cobre todo o histórico (sem período anterior)
func (w *PeriodWindow) IsAllTime() bool {
	return w.Preset == PeriodPresetAll
}

// IsCustom indica se a janela veio de um intervalo explícito de datas
func (w *PeriodWindow) IsCustom() bool {
	return w.Preset == PeriodPresetCustom
}

// Contains verifica se um instante cai dentro da janela (inclusivo nas bordas)
func (w *PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.StartDate) && !t.After(w.EndDate)
}

// ResolvePeriodWindow converte um preset ou um intervalo explícito em uma
// janela concreta. Datas explícitas só são aceitas (e exigidas) no modo custom.
func ResolvePeriodWindow(preset string, startDate, endDate *time.Time, now time.Time) (*PeriodWindow, error) {
	switch preset {
	case PeriodPreset7d, PeriodPreset30d, PeriodPreset90d:
		days := presetDays[preset]
		start := now.AddDate(0, 0, -days)
		return &PeriodWindow{
			Preset:            preset,
			StartDate:         start,
			EndDate:           now,
			PreviousStartDate: start.AddDate(0, 0, -days),
		}, nil

	case PeriodPresetAll:
		return &PeriodWindow{
			Preset:    PeriodPresetAll,
			StartDate: time.Unix(0, 0).UTC(),
			EndDate:   now,
		}, nil

	case PeriodPresetCustom:
		if startDate == nil || endDate == nil || startDate.IsZero() || endDate.IsZero() {
			return nil, ErrInvalidPeriod
		}
		if startDate.After(*endDate) {
			return nil, ErrInvalidPeriod
		}
		duration := endDate.Sub(*startDate)
		return &PeriodWindow{
			Preset:            PeriodPresetCustom,
			StartDate:         *startDate,
			EndDate:           *endDate,
			PreviousStartDate: startDate.Add(-duration),
		}, nil
	}

	return nil, ErrInvalidPeriod
}

// PreviousWindow deriva a janela imediatamente anterior, de mesma duração:
// [startDate - duração, startDate). Não definida para all-time.
func (w *PeriodWindow) PreviousWindow() *PeriodWindow {
	if w.IsAllTime() {
		return nil
	}
	return &PeriodWindow{
		Preset:    w.Preset,
		StartDate: w.PreviousStartDate,
		EndDate:   w.StartDate.Add(-time.Nanosecond),
	}
}
