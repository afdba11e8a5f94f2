package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	"github.com/vfg2006/content-pulse-api/pkg/utils"
)

const (
	insightCacheTable = "insight_cache ic"
)

type InsightCacheRepository interface {
	Get(key domain.CacheKey) (*domain.InsightCacheEntry, error)
	SaveOrUpdate(entry *domain.InsightCacheEntry) error
	UpdateSummary(id string, summary string, generatedAt time.Time) error
	DeleteExpired(days int) (int64, error)
}

type insightCacheRepository struct {
	conn *postgres.Connection
}

func NewInsightCacheRepository(conn *postgres.Connection) InsightCacheRepository {
	return &insightCacheRepository{
		conn: conn,
	}
}

func (r *insightCacheRepository) Get(key domain.CacheKey) (*domain.InsightCacheEntry, error) {
	query, args, err := squirrel.
		Select("ic.id, ic.insights, ic.summary, ic.summary_generated_at, ic.generated_at, ic.expires_at").
		From(insightCacheTable).
		Where(cacheKeyConditions("ic", key)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.InsightCacheEntry{Key: key}
	var insightsJSON []byte

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&entry.ID,
		&insightsJSON,
		&entry.Summary,
		&entry.SummaryGeneratedAt,
		&entry.GeneratedAt,
		&entry.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de cache: %w", err)
	}

	if insightsJSON != nil {
		if err := json.Unmarshal(insightsJSON, &entry.Insights); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de insights: %w", err)
		}
	}

	return entry, nil
}

// SaveOrUpdate remove qualquer entrada antiga com a mesma chave antes de
// inserir a nova
func (r *insightCacheRepository) SaveOrUpdate(entry *domain.InsightCacheEntry) error {
	insightsJSON, err := json.Marshal(entry.Insights)
	if err != nil {
		return fmt.Errorf("erro ao serializar insights para JSON: %w", err)
	}

	deleteQuery, deleteArgs, err := squirrel.
		Delete("insight_cache ic").
		Where(cacheKeyConditions("ic", entry.Key)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("erro ao remover entrada antiga de cache: %w", err)
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID da entrada de cache: %w", err)
		}
		entry.ID = id
	}

	var startDate, endDate interface{}
	if entry.Key.StartDate != nil {
		startDate = entry.Key.StartDate.Format(time.DateOnly)
	}
	if entry.Key.EndDate != nil {
		endDate = entry.Key.EndDate.Format(time.DateOnly)
	}

	insertQuery, insertArgs, err := squirrel.StatementBuilder.
		Insert("insight_cache").
		Columns("id", "root_identity", "period", "context", "start_date", "end_date", "insights", "summary", "summary_generated_at", "generated_at", "expires_at").
		Values(
			entry.ID,
			entry.Key.RootIdentity,
			entry.Key.Period,
			entry.Key.Context,
			startDate,
			endDate,
			insightsJSON,
			entry.Summary,
			entry.SummaryGeneratedAt,
			entry.GeneratedAt,
			entry.ExpiresAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(insertQuery, insertArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// UpdateSummary regrava apenas o resumo narrativo, preservando o payload de
// insights já computado
func (r *insightCacheRepository) UpdateSummary(id string, summary string, generatedAt time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Update("insight_cache").
		Set("summary", summary).
		Set("summary_generated_at", generatedAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteExpired remove entradas expiradas há mais de `days` dias
func (r *insightCacheRepository) DeleteExpired(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("insight_cache").
		Where(squirrel.Lt{"expires_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
