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
	analyticsCacheTable = "analytics_cache ac"
)

type AnalyticsCacheRepository interface {
	Get(key domain.CacheKey) (*domain.AnalyticsCacheEntry, error)
	SaveOrUpdate(entry *domain.AnalyticsCacheEntry) error
	DeleteExpired(days int) (int64, error)
}

type analyticsCacheRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsCacheRepository(conn *postgres.Connection) AnalyticsCacheRepository {
	return &analyticsCacheRepository{
		conn: conn,
	}
}

// cacheKeyConditions monta o predicado da chave composta. Datas nulas (presets)
// casam via IS NULL; períodos custom exigem as datas exatas.
func cacheKeyConditions(alias string, key domain.CacheKey) squirrel.Eq {
	conditions := squirrel.Eq{
		alias + ".root_identity": key.RootIdentity,
		alias + ".period":        key.Period,
		alias + ".context":       key.Context,
	}

	if key.StartDate != nil {
		conditions[alias+".start_date"] = key.StartDate.Format(time.DateOnly)
	} else {
		conditions[alias+".start_date"] = nil
	}

	if key.EndDate != nil {
		conditions[alias+".end_date"] = key.EndDate.Format(time.DateOnly)
	} else {
		conditions[alias+".end_date"] = nil
	}

	return conditions
}

func (r *analyticsCacheRepository) Get(key domain.CacheKey) (*domain.AnalyticsCacheEntry, error) {
	query, args, err := squirrel.
		Select("ac.id, ac.payload, ac.generated_at, ac.expires_at").
		From(analyticsCacheTable).
		Where(cacheKeyConditions("ac", key)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.AnalyticsCacheEntry{Key: key}
	var payloadJSON []byte

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&entry.ID, &payloadJSON, &entry.GeneratedAt, &entry.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear entrada de cache: %w", err)
	}

	if payloadJSON != nil {
		payload := &domain.AnalyticsResult{}
		if err := json.Unmarshal(payloadJSON, payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
		}
		entry.Payload = payload
	}

	return entry, nil
}

// SaveOrUpdate remove qualquer entrada antiga com a mesma chave antes de
// inserir a nova, evitando colisões de chave em gravações repetidas
func (r *analyticsCacheRepository) SaveOrUpdate(entry *domain.AnalyticsCacheEntry) error {
	payloadJSON, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload para JSON: %w", err)
	}

	deleteQuery, deleteArgs, err := squirrel.
		Delete("analytics_cache ac").
		Where(cacheKeyConditions("ac", entry.Key)).
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
		Insert("analytics_cache").
		Columns("id", "root_identity", "period", "context", "start_date", "end_date", "payload", "generated_at", "expires_at").
		Values(
			entry.ID,
			entry.Key.RootIdentity,
			entry.Key.Period,
			entry.Key.Context,
			startDate,
			endDate,
			payloadJSON,
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

// DeleteExpired remove entradas expiradas há mais de `days` dias
func (r *analyticsCacheRepository) DeleteExpired(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("analytics_cache").
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
