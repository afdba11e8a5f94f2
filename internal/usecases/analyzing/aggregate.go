package analyzing

import (
	"sort"

	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/pkg/utils"
)

// sumTotals soma os deltas de todos os registros e calcula a taxa de
// engajamento agregada, protegida contra divisão por zero
func sumTotals(records []*domain.DeltaRecord) domain.MetricTotals {
	totals := domain.MetricTotals{}

	for _, record := range records {
		totals.Impressions += record.ImpressionsDelta
		totals.Likes += record.LikesDelta
		totals.Comments += record.CommentsDelta
		totals.Shares += record.SharesDelta
		totals.Clicks += record.ClicksDelta
	}

	if totals.Impressions > 0 {
		engagement := float64(totals.Likes + totals.Comments + totals.Shares)
		totals.EngagementRate = utils.RoundWithFourDecimalPlace(engagement / float64(totals.Impressions))
	}

	return totals
}

// buildTimeSeries agrupa os snapshots brutos por dia de calendário. Dentro de
// um dia, só o snapshot mais recente de cada vínculo externo conta, para não
// somar duas vezes leituras repetidas no mesmo dia. Dias sem dados não são
// preenchidos.
func buildTimeSeries(snapshots []*domain.MetricSnapshot, window *domain.PeriodWindow) []domain.TimeSeriesPoint {
	latestPerDay := make(map[string]map[string]*domain.MetricSnapshot)

	for _, snapshot := range snapshots {
		if !window.Contains(snapshot.FetchedAt) {
			continue
		}

		day := snapshot.FetchedDay()
		if latestPerDay[day] == nil {
			latestPerDay[day] = make(map[string]*domain.MetricSnapshot)
		}

		current := latestPerDay[day][snapshot.ItemExternalID]
		if current == nil || snapshot.FetchedAt.After(current.FetchedAt) {
			latestPerDay[day][snapshot.ItemExternalID] = snapshot
		}
	}

	points := make([]domain.TimeSeriesPoint, 0, len(latestPerDay))
	for day, perItem := range latestPerDay {
		point := domain.TimeSeriesPoint{Date: day}
		for _, snapshot := range perItem {
			point.Impressions += snapshot.Impressions
			point.Likes += snapshot.Likes
			point.Comments += snapshot.Comments
			point.Shares += snapshot.Shares
			point.Clicks += snapshot.Clicks
		}
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// rankTopItems ordena os registros pela coluna escolhida e corta no limite
func rankTopItems(records []*domain.DeltaRecord, column domain.SortColumn, direction domain.SortDirection, limit int) []*domain.DeltaRecord {
	ranked := make([]*domain.DeltaRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		if direction == domain.SortAsc {
			return ranked[i].MetricValue(column) < ranked[j].MetricValue(column)
		}
		return ranked[i].MetricValue(column) > ranked[j].MetricValue(column)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// buildPublishingPattern conta os itens publicados dentro do período por dia
// da semana (0=domingo .. 6=sábado)
func buildPublishingPattern(items []*domain.ContentItem, window *domain.PeriodWindow) [7]int {
	var pattern [7]int

	for _, item := range items {
		if item.PublishedAt == nil || !window.Contains(*item.PublishedAt) {
			continue
		}
		pattern[int(item.PublishedAt.Weekday())]++
	}

	return pattern
}

// countByStatus conta os itens por status de ciclo de vida, considerando a
// data relevante de cada status para o enquadramento no período
func countByStatus(items []*domain.ContentItem, window *domain.PeriodWindow) map[domain.ContentStatus]int {
	counts := make(map[domain.ContentStatus]int)

	for _, item := range items {
		relevantDate := item.RelevantDate()
		if relevantDate == nil || !window.Contains(*relevantDate) {
			continue
		}
		counts[item.Status]++
	}

	return counts
}

// collectExternalIDs reúne os IDs externos de todos os vínculos dos itens
func collectExternalIDs(items []*domain.ContentItem) []string {
	seen := make(map[string]bool)
	externalIDs := make([]string, 0, len(items))

	for _, item := range items {
		for _, binding := range item.ExternalBindings {
			if binding.ExternalID == "" || seen[binding.ExternalID] {
				continue
			}
			seen[binding.ExternalID] = true
			externalIDs = append(externalIDs, binding.ExternalID)
		}
	}

	return externalIDs
}
