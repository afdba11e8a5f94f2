package insighting

import (
	"sort"
	"strings"
	"unicode"

	"github.com/vfg2006/content-pulse-api/internal/domain"
)

const (
	curationFloor = 4
	curationCap   = 12
	curationRatio = 0.6
)

// normalizeTitle reduz o título a uma chave de comparação: minúsculas, apenas
// letras e dígitos
func normalizeTitle(title string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// categoryRank devolve a posição da categoria na ordem de precedência;
// categorias fora da lista vêm por último
func categoryRank(category domain.InsightCategory) int {
	for i, known := range domain.CategoryPrecedence {
		if category == known {
			return i
		}
	}
	return len(domain.CategoryPrecedence)
}

// curate aplica o passe de curadoria sobre os insights brutos: deduplica
// títulos quase idênticos dentro de cada categoria, ordena por prioridade com
// desempate pela precedência de categorias e corta em um limite proporcional
// ao volume de sinal disponível.
func curate(raw []domain.Insight) []domain.Insight {
	type dedupeKey struct {
		category domain.InsightCategory
		title    string
	}

	seen := make(map[dedupeKey]bool)
	deduped := make([]domain.Insight, 0, len(raw))

	for _, insight := range raw {
		key := dedupeKey{
			category: insight.Category,
			title:    normalizeTitle(insight.Title),
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, insight)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Priority != deduped[j].Priority {
			return deduped[i].Priority > deduped[j].Priority
		}
		return categoryRank(deduped[i].Category) < categoryRank(deduped[j].Category)
	})

	bound := curationBound(len(deduped))
	if len(deduped) > bound {
		deduped = deduped[:bound]
	}

	return deduped
}

// curationBound calcula o limite de corte: cresce com o volume deduplicado,
// mas nunca abaixo de 4 nem acima de 12
func curationBound(dedupedCount int) int {
	bound := int(curationRatio * float64(dedupedCount))
	if bound < curationFloor {
		bound = curationFloor
	}
	if bound > curationCap {
		bound = curationCap
	}
	if bound > dedupedCount {
		bound = dedupedCount
	}
	return bound
}
