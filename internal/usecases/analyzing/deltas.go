package analyzing

import (
	"sort"
	"time"

	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/pkg/utils"
)

// snapshotIndex indexa os snapshots por vínculo externo, cada lista ordenada
// por fetched_at crescente. A ordenação permite localizar baseline e última
// leitura do período por busca binária.
type snapshotIndex map[string][]*domain.MetricSnapshot

func buildSnapshotIndex(snapshots []*domain.MetricSnapshot) snapshotIndex {
	index := make(snapshotIndex)
	for _, snapshot := range snapshots {
		index[snapshot.ItemExternalID] = append(index[snapshot.ItemExternalID], snapshot)
	}

	for _, list := range index {
		sort.Slice(list, func(i, j int) bool {
			return list[i].FetchedAt.Before(list[j].FetchedAt)
		})
	}

	return index
}

// lastAtOrBefore retorna o snapshot mais recente com fetched_at <= limit
func lastAtOrBefore(snapshots []*domain.MetricSnapshot, limit time.Time) *domain.MetricSnapshot {
	idx := sort.Search(len(snapshots), func(i int) bool {
		return snapshots[i].FetchedAt.After(limit)
	})
	if idx == 0 {
		return nil
	}
	return snapshots[idx-1]
}

// latestInWindow retorna o snapshot mais recente dentro da janela, ou nil
func latestInWindow(snapshots []*domain.MetricSnapshot, window *domain.PeriodWindow) *domain.MetricSnapshot {
	candidate := lastAtOrBefore(snapshots, window.EndDate)
	if candidate == nil || candidate.FetchedAt.Before(window.StartDate) {
		return nil
	}
	return candidate
}

// earliestInWindow retorna o snapshot mais antigo dentro da janela, ou nil
func earliestInWindow(snapshots []*domain.MetricSnapshot, window *domain.PeriodWindow) *domain.MetricSnapshot {
	idx := sort.Search(len(snapshots), func(i int) bool {
		return !snapshots[i].FetchedAt.Before(window.StartDate)
	})
	if idx == len(snapshots) || snapshots[idx].FetchedAt.After(window.EndDate) {
		return nil
	}
	return snapshots[idx]
}

// selectBaseline escolhe o snapshot que representa o valor das métricas no
// início do período. Nil significa baseline zero.
//
// Ordem de seleção:
//  1. all-time, ou item publicado depois do início do período: baseline zero
//  2. snapshot mais recente com fetched_at <= início do período
//  3. snapshot mais antigo dentro do período
//  4. baseline zero
func selectBaseline(snapshots []*domain.MetricSnapshot, item *domain.ContentItem, window *domain.PeriodWindow) *domain.MetricSnapshot {
	if window.IsAllTime() {
		return nil
	}
	if item.PublishedAt != nil && item.PublishedAt.After(window.StartDate) {
		return nil
	}

	if baseline := lastAtOrBefore(snapshots, window.StartDate); baseline != nil {
		return baseline
	}

	return earliestInWindow(snapshots, window)
}

func clampDelta(latest, baseline int) int {
	delta := latest - baseline
	if delta < 0 {
		return 0
	}
	return delta
}

// computeDeltas converte os contadores cumulativos em acréscimos locais ao
// período, um registro por vínculo externo de cada item. Itens sem snapshot
// dentro da janela não contribuem; quedas aparentes nos contadores são
// absorvidas pelo clamp em zero.
func computeDeltas(items []*domain.ContentItem, index snapshotIndex, window *domain.PeriodWindow) []*domain.DeltaRecord {
	records := make([]*domain.DeltaRecord, 0, len(items))

	for _, item := range items {
		for _, binding := range item.ExternalBindings {
			snapshots := index[binding.ExternalID]
			if len(snapshots) == 0 {
				continue
			}

			latest := latestInWindow(snapshots, window)
			if latest == nil {
				continue
			}

			baseline := selectBaseline(snapshots, item, window)

			record := &domain.DeltaRecord{
				ItemID:      item.ID,
				ExternalID:  binding.ExternalID,
				Excerpt:     item.Excerpt,
				PublishedAt: item.PublishedAt,
			}

			if binding.OrganizationID != nil {
				record.OrganizationID = binding.OrganizationID
			} else {
				record.OrganizationID = item.OrganizationID()
			}

			if baseline != nil {
				record.ImpressionsDelta = clampDelta(latest.Impressions, baseline.Impressions)
				record.LikesDelta = clampDelta(latest.Likes, baseline.Likes)
				record.CommentsDelta = clampDelta(latest.Comments, baseline.Comments)
				record.SharesDelta = clampDelta(latest.Shares, baseline.Shares)
				record.ClicksDelta = clampDelta(latest.Clicks, baseline.Clicks)
			} else {
				record.ImpressionsDelta = latest.Impressions
				record.LikesDelta = latest.Likes
				record.CommentsDelta = latest.Comments
				record.SharesDelta = latest.Shares
				record.ClicksDelta = latest.Clicks
			}

			if record.ImpressionsDelta > 0 {
				engagement := float64(record.LikesDelta + record.CommentsDelta + record.SharesDelta)
				record.EngagementRateDelta = utils.RoundWithFourDecimalPlace(engagement / float64(record.ImpressionsDelta))
			}

			records = append(records, record)
		}
	}

	return records
}
