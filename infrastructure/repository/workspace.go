package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

const (
	workspacesTable             = "workspaces w"
	workspaceCollaboratorsTable = "workspace_collaborators wc"

	collaboratorStatusAccepted = "ACCEPTED"
)

type WorkspaceRepository interface {
	GetWorkspaceForIdentity(identity string) (*domain.Workspace, error)
	GetAcceptedCollaborators(workspaceID string) ([]string, error)
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

// GetWorkspaceForIdentity retorna o workspace do qual a identidade participa,
// seja como dona ou como colaboradora aceita. Retorna nil para identidades
// sem workspace compartilhado.
func (r *workspaceRepository) GetWorkspaceForIdentity(identity string) (*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("w.id, w.owner_identity").
		From(workspacesTable).
		LeftJoin("workspace_collaborators wc ON wc.workspace_id = w.id").
		Where(squirrel.Or{
			squirrel.Eq{"w.owner_identity": identity},
			squirrel.And{
				squirrel.Eq{"wc.identity": identity},
				squirrel.Eq{"wc.status": collaboratorStatusAccepted},
			},
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	workspace := &domain.Workspace{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&workspace.ID, &workspace.OwnerIdentity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
	}

	return workspace, nil
}

// GetAcceptedCollaborators retorna as identidades dos colaboradores com
// convite aceito. Convites pendentes ou revogados ficam de fora do conjunto.
func (r *workspaceRepository) GetAcceptedCollaborators(workspaceID string) ([]string, error) {
	query, args, err := squirrel.
		Select("wc.identity").
		From(workspaceCollaboratorsTable).
		Where(squirrel.Eq{"wc.workspace_id": workspaceID, "wc.status": collaboratorStatusAccepted}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	identities := make([]string, 0)
	for rows.Next() {
		var identity string
		if err := rows.Scan(&identity); err != nil {
			return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
		}
		identities = append(identities, identity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return identities, nil
}
