package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "Pontuação e espaços - descartados",
			title:    "Melhor horário: 18h!",
			expected: "melhorhorário18h",
		},
		{
			name:     "Maiúsculas - reduzidas a minúsculas",
			title:    "Vídeos Curtos Engajam Mais",
			expected: "vídeoscurtosengajammais",
		},
		{
			name:     "Títulos equivalentes - mesma chave de comparação",
			title:    "vídeos curtos, engajam (mais)",
			expected: "vídeoscurtosengajammais",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeTitle(tt.title))
		})
	}
}

func TestCurationBound(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected int
	}{
		{name: "Poucos insights - o piso não passa do disponível", count: 3, expected: 3},
		{name: "Volume abaixo do piso proporcional - piso de quatro", count: 6, expected: 4},
		{name: "Volume médio - corte proporcional de sessenta por cento", count: 10, expected: 6},
		{name: "Volume alto - teto de doze", count: 30, expected: 12},
		{name: "Sem insights - corte em zero", count: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, curationBound(tt.count))
		})
	}
}

func TestCurate(t *testing.T) {
	t.Run("Títulos quase idênticos na mesma categoria - só o primeiro permanece", func(t *testing.T) {
		raw := []domain.Insight{
			{Title: "Vídeos curtos engajam mais", Category: domain.InsightCategoryTopics, Priority: 5},
			{Title: "Vídeos Curtos Engajam Mais!", Category: domain.InsightCategoryTopics, Priority: 9},
			{Title: "Vídeos curtos engajam mais", Category: domain.InsightCategoryEngagement, Priority: 3},
		}

		curated := curate(raw)

		assert.Len(t, curated, 2)
		assert.Equal(t, 5, curated[0].Priority)
		assert.Equal(t, domain.InsightCategoryTopics, curated[0].Category)
		assert.Equal(t, domain.InsightCategoryEngagement, curated[1].Category)
	})

	t.Run("Prioridades distintas - ordem decrescente de prioridade", func(t *testing.T) {
		raw := []domain.Insight{
			{Title: "a", Category: domain.InsightCategoryMetrics, Priority: 2},
			{Title: "b", Category: domain.InsightCategoryTopics, Priority: 8},
			{Title: "c", Category: domain.InsightCategoryThemes, Priority: 5},
		}

		curated := curate(raw)

		assert.Equal(t, []string{"b", "c", "a"}, []string{curated[0].Title, curated[1].Title, curated[2].Title})
	})

	t.Run("Empate de prioridade - desempate pela precedência de categorias", func(t *testing.T) {
		raw := []domain.Insight{
			{Title: "metrics", Category: domain.InsightCategoryMetrics, Priority: 7},
			{Title: "themes", Category: domain.InsightCategoryThemes, Priority: 7},
			{Title: "topics", Category: domain.InsightCategoryTopics, Priority: 7},
			{Title: "engagement", Category: domain.InsightCategoryEngagement, Priority: 7},
		}

		curated := curate(raw)

		assert.Equal(t, "topics", curated[0].Title)
		assert.Equal(t, "engagement", curated[1].Title)
		assert.Equal(t, "themes", curated[2].Title)
		assert.Equal(t, "metrics", curated[3].Title)
	})

	t.Run("Dez brutos com duas duplicatas - oito deduplicados cortados em quatro", func(t *testing.T) {
		raw := []domain.Insight{
			{Title: "Tema A", Category: domain.InsightCategoryTopics, Priority: 9},
			{Title: "tema a!", Category: domain.InsightCategoryTopics, Priority: 6},
			{Title: "Tema B", Category: domain.InsightCategoryTopics, Priority: 8},
			{Title: "TEMA B", Category: domain.InsightCategoryTopics, Priority: 2},
			{Title: "Tema C", Category: domain.InsightCategoryTopics, Priority: 7},
			{Title: "Pico de comentários", Category: domain.InsightCategoryEngagement, Priority: 6},
			{Title: "Curtidas em alta", Category: domain.InsightCategoryEngagement, Priority: 5},
			{Title: "Compartilhamentos estáveis", Category: domain.InsightCategoryEngagement, Priority: 4},
			{Title: "Alcance médio subiu", Category: domain.InsightCategoryMetrics, Priority: 3},
			{Title: "Cliques em queda", Category: domain.InsightCategoryMetrics, Priority: 1},
		}

		curated := curate(raw)

		assert.Len(t, curated, 4)
		assert.Equal(t, "Tema A", curated[0].Title)
		assert.Equal(t, 9, curated[0].Priority)
		assert.Equal(t, "Tema B", curated[1].Title)
		assert.Equal(t, "Tema C", curated[2].Title)
		assert.Equal(t, "Pico de comentários", curated[3].Title)
	})

	t.Run("Sem insights brutos - feed vazio sem erro", func(t *testing.T) {
		curated := curate(nil)
		assert.Empty(t, curated)
	})
}
