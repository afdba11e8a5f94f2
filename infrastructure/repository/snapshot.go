package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

type SnapshotRepository interface {
	GetByIdentities(identities []string, fetchedAfter, fetchedBefore *time.Time) ([]*domain.MetricSnapshot, error)
	GetByExternalIDs(externalIDs []string, fetchedBefore *time.Time) ([]*domain.MetricSnapshot, error)
	Save(snapshot *domain.MetricSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// GetByIdentities busca todos os snapshots dos itens pertencentes às
// identidades informadas, ordenados por fetched_at. A ordenação no banco
// garante que o índice em memória do motor de deltas já nasce ordenado.
func (r *snapshotRepository) GetByIdentities(identities []string, fetchedAfter, fetchedBefore *time.Time) ([]*domain.MetricSnapshot, error) {
	builder := squirrel.
		Select("ms.id, ms.item_external_id, ms.user_id, ms.impressions, ms.likes, ms.comments, ms.shares, ms.clicks, ms.fetched_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.user_id": identities}).
		OrderBy("ms.item_external_id ASC", "ms.fetched_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if fetchedAfter != nil {
		builder = builder.Where(squirrel.GtOrEq{"ms.fetched_at": *fetchedAfter})
	}
	if fetchedBefore != nil {
		builder = builder.Where(squirrel.LtOrEq{"ms.fetched_at": *fetchedBefore})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

// GetByExternalIDs busca os snapshots de vínculos externos específicos
func (r *snapshotRepository) GetByExternalIDs(externalIDs []string, fetchedBefore *time.Time) ([]*domain.MetricSnapshot, error) {
	builder := squirrel.
		Select("ms.id, ms.item_external_id, ms.user_id, ms.impressions, ms.likes, ms.comments, ms.shares, ms.clicks, ms.fetched_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.item_external_id": externalIDs}).
		OrderBy("ms.item_external_id ASC", "ms.fetched_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if fetchedBefore != nil {
		builder = builder.Where(squirrel.LtOrEq{"ms.fetched_at": *fetchedBefore})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

func (r *snapshotRepository) querySnapshots(query string, args ...interface{}) ([]*domain.MetricSnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.MetricSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.ItemExternalID,
			&snapshot.UserID,
			&snapshot.Impressions,
			&snapshot.Likes,
			&snapshot.Comments,
			&snapshot.Shares,
			&snapshot.Clicks,
			&snapshot.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// Save insere uma nova leitura. Snapshots são imutáveis: nunca há update.
func (r *snapshotRepository) Save(snapshot *domain.MetricSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("metric_snapshots").
		Columns("item_external_id", "user_id", "impressions", "likes", "comments", "shares", "clicks", "fetched_at").
		Values(
			snapshot.ItemExternalID,
			snapshot.UserID,
			snapshot.Impressions,
			snapshot.Likes,
			snapshot.Comments,
			snapshot.Shares,
			snapshot.Clicks,
			snapshot.FetchedAt,
		).
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

// DeleteOlderThan remove snapshots mais antigos que a janela de retenção
func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("metric_snapshots").
		Where(squirrel.Lt{"fetched_at": cutoff}).
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
