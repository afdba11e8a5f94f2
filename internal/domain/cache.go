package domain

import (
	"time"
)

// CacheKey identifica uma entrada de cache: identidade raiz do conjunto,
// período, contexto e, apenas para períodos custom, as datas exatas.
// Presets não entram com datas calculadas porque "30 dias atrás" muda a cada
// chamada; o nome do preset é a parte estável da chave.
type CacheKey struct {
	RootIdentity string
	Period       string
	Context      string
	StartDate    *time.Time
	EndDate      *time.Time
}

// NewCacheKey monta a chave a partir de uma janela resolvida
func NewCacheKey(rootIdentity string, window *PeriodWindow, context ContextFilter) CacheKey {
	key := CacheKey{
		RootIdentity: rootIdentity,
		Period:       window.Preset,
		Context:      context.String(),
	}
	if window.IsCustom() {
		start := window.StartDate
		end := window.EndDate
		key.StartDate = &start
		key.EndDate = &end
	}
	return key
}

// AnalyticsCacheEntry guarda um payload de analytics já computado
type AnalyticsCacheEntry struct {
	ID          string
	Key         CacheKey
	Payload     *AnalyticsResult
	GeneratedAt time.Time
	ExpiresAt   time.Time
}

// IsFresh indica se a entrada ainda está dentro da janela de frescor
func (e *AnalyticsCacheEntry) IsFresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// InsightCacheEntry guarda os insights curados e o resumo narrativo. O resumo
// tem ciclo de vida próprio: só é regravado quando gerado em um dia de
// calendário diferente do último registro.
type InsightCacheEntry struct {
	ID                 string
	Key                CacheKey
	Insights           []Insight
	Summary            *string
	SummaryGeneratedAt *time.Time
	GeneratedAt        time.Time
	ExpiresAt          time.Time
}

// IsFresh indica se a entrada ainda está dentro da janela de frescor
func (e *InsightCacheEntry) IsFresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// HasSummaryForDay verifica se o resumo armazenado foi gerado no mesmo dia de
// calendário do instante informado
func (e *InsightCacheEntry) HasSummaryForDay(now time.Time) bool {
	if e.Summary == nil || e.SummaryGeneratedAt == nil {
		return false
	}
	return e.SummaryGeneratedAt.Format(time.DateOnly) == now.Format(time.DateOnly)
}
