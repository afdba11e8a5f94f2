package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/content-pulse-api/infrastructure/database/postgres"
)

const (
	organizationsTable       = "organizations o"
	organizationMembersTable = "organization_members om"

	organizationRoleAdmin = "ADMIN"
)

type OrganizationRepository interface {
	GetNamesByIdentities(identities []string) (map[string]string, error)
	GetAdminOrganizations(identity string) ([]string, error)
}

type organizationRepository struct {
	conn *postgres.Connection
}

func NewOrganizationRepository(conn *postgres.Connection) OrganizationRepository {
	return &organizationRepository{
		conn: conn,
	}
}

// GetNamesByIdentities retorna os nomes das organizações às quais as
// identidades pertencem, indexados por ID de organização
func (r *organizationRepository) GetNamesByIdentities(identities []string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT o.id, o.name").
		From(organizationsTable).
		Join("organization_members om ON om.organization_id = o.id").
		Where(squirrel.Eq{"om.identity": identities}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("erro ao escanear organização: %w", err)
		}
		names[id] = name
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return names, nil
}

// GetAdminOrganizations retorna os IDs das organizações em que a identidade
// tem acesso administrativo
func (r *organizationRepository) GetAdminOrganizations(identity string) ([]string, error) {
	query, args, err := squirrel.
		Select("om.organization_id").
		From(organizationMembersTable).
		Where(squirrel.Eq{"om.identity": identity, "om.role": organizationRoleAdmin}).
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

	orgIDs := make([]string, 0)
	for rows.Next() {
		var orgID string
		if err := rows.Scan(&orgID); err != nil {
			return nil, fmt.Errorf("erro ao escanear organização: %w", err)
		}
		orgIDs = append(orgIDs, orgID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orgIDs, nil
}
