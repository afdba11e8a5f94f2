package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

const (
	contentItemsTable = "content_items ci"
)

type ContentItemRepository interface {
	ListByIdentities(identities []string, statuses []domain.ContentStatus) ([]*domain.ContentItem, error)
	GetByID(id string) (*domain.ContentItem, error)
	SaveOrUpdate(item *domain.ContentItem) error
}

type contentItemRepository struct {
	conn *postgres.Connection
}

func NewContentItemRepository(conn *postgres.Connection) ContentItemRepository {
	return &contentItemRepository{
		conn: conn,
	}
}

// ListByIdentities busca os itens de conteúdo das identidades informadas.
// Uma lista vazia de statuses retorna itens em qualquer status.
func (r *contentItemRepository) ListByIdentities(identities []string, statuses []domain.ContentStatus) ([]*domain.ContentItem, error) {
	builder := squirrel.
		Select("ci.id, ci.user_id, ci.workspace_id, ci.publish_target, ci.status, ci.excerpt, ci.external_bindings, ci.published_at, ci.scheduled_at, ci.created_at, ci.updated_at").
		From(contentItemsTable).
		Where(squirrel.Eq{"ci.user_id": identities}).
		OrderBy("ci.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"ci.status": statuses})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ContentItem, 0)
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item de conteúdo: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *contentItemRepository) GetByID(id string) (*domain.ContentItem, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.user_id, ci.workspace_id, ci.publish_target, ci.status, ci.excerpt, ci.external_bindings, ci.published_at, ci.scheduled_at, ci.created_at, ci.updated_at").
		From(contentItemsTable).
		Where(squirrel.Eq{"ci.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	item, err := r.scanItem(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear item de conteúdo: %w", err)
	}

	return item, nil
}

// SaveOrUpdate grava um item, serializando os vínculos externos como JSONB
func (r *contentItemRepository) SaveOrUpdate(item *domain.ContentItem) error {
	bindingsJSON, err := json.Marshal(item.ExternalBindings)
	if err != nil {
		return fmt.Errorf("erro ao serializar vínculos externos para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("content_items").
		Columns("id", "user_id", "workspace_id", "publish_target", "status", "excerpt", "external_bindings", "published_at", "scheduled_at").
		Values(
			item.ID,
			item.UserID,
			item.WorkspaceID,
			item.PublishTarget,
			item.Status,
			item.Excerpt,
			bindingsJSON,
			item.PublishedAt,
			item.ScheduledAt,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				excerpt = EXCLUDED.excerpt,
				external_bindings = EXCLUDED.external_bindings,
				published_at = EXCLUDED.published_at,
				scheduled_at = EXCLUDED.scheduled_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *contentItemRepository) scanItem(rows *sql.Rows) (*domain.ContentItem, error) {
	item := &domain.ContentItem{}
	var bindingsJSON []byte

	err := rows.Scan(
		&item.ID,
		&item.UserID,
		&item.WorkspaceID,
		&item.PublishTarget,
		&item.Status,
		&item.Excerpt,
		&bindingsJSON,
		&item.PublishedAt,
		&item.ScheduledAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if bindingsJSON != nil {
		if err := json.Unmarshal(bindingsJSON, &item.ExternalBindings); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de external_bindings: %w", err)
		}
	}

	return item, nil
}
