package accessing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository"
	"github.com/vfg2006/content-pulse-api/internal/domain"
)

// Accessor resolve o conjunto de identidades visíveis para um solicitante e
// aplica as regras de visibilidade sobre itens de conteúdo
type Accessor interface {
	// ResolveIdentitySet monta o conjunto de identidades cujo conteúdo o
	// solicitante pode enxergar em conjunto
	ResolveIdentitySet(identity string) (*domain.IdentitySet, error)

	// FilterVisible descarta os itens que o solicitante não pode ver e aplica
	// o filtro de contexto
	FilterVisible(requester string, items []*domain.ContentItem, context domain.ContextFilter) ([]*domain.ContentItem, error)
}

type Service struct {
	workspaceRepository    repository.WorkspaceRepository
	organizationRepository repository.OrganizationRepository
}

func NewService(
	workspaceRepo repository.WorkspaceRepository,
	organizationRepo repository.OrganizationRepository,
) Accessor {
	return &Service{
		workspaceRepository:    workspaceRepo,
		organizationRepository: organizationRepo,
	}
}

// ResolveIdentitySet expande a identidade para o workspace compartilhado, se
// houver: dono mais colaboradores aceitos. Sem workspace, o conjunto é a
// própria identidade. O solicitante sempre pertence ao conjunto resultante.
func (s *Service) ResolveIdentitySet(identity string) (*domain.IdentitySet, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceForIdentity(identity)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"identity": identity,
		}).Error("Erro ao buscar workspace da identidade")
		return nil, fmt.Errorf("erro ao resolver conjunto de identidades: %w", err)
	}

	if workspace == nil {
		return domain.NewSoloIdentitySet(identity), nil
	}

	collaborators, err := s.workspaceRepository.GetAcceptedCollaborators(workspace.ID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"identity":     identity,
			"workspace_id": workspace.ID,
		}).Error("Erro ao buscar colaboradores do workspace")
		return nil, fmt.Errorf("erro ao resolver conjunto de identidades: %w", err)
	}

	members := make([]string, 0, len(collaborators)+1)
	members = append(members, workspace.OwnerIdentity)
	for _, collaborator := range collaborators {
		if collaborator != workspace.OwnerIdentity {
			members = append(members, collaborator)
		}
	}

	set := &domain.IdentitySet{
		RootIdentity: workspace.OwnerIdentity,
		Members:      members,
	}

	if !set.Contains(identity) {
		set.Members = append(set.Members, identity)
	}

	return set, nil
}

// FilterVisible aplica as regras de visibilidade por item: itens pessoais só
// aparecem para o próprio criador; itens de organização aparecem para o
// criador e para administradores da organização. Em seguida aplica o filtro
// de contexto da consulta.
func (s *Service) FilterVisible(requester string, items []*domain.ContentItem, context domain.ContextFilter) ([]*domain.ContentItem, error) {
	adminOrgs, err := s.organizationRepository.GetAdminOrganizations(requester)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"requester": requester,
		}).Error("Erro ao buscar organizações administradas pelo solicitante")
		return nil, fmt.Errorf("erro ao aplicar filtro de visibilidade: %w", err)
	}

	adminOf := make(map[string]bool, len(adminOrgs))
	for _, orgID := range adminOrgs {
		adminOf[orgID] = true
	}

	visible := make([]*domain.ContentItem, 0, len(items))
	for _, item := range items {
		if !s.canSee(requester, item, adminOf) {
			continue
		}
		if !context.Matches(item) {
			continue
		}
		visible = append(visible, item)
	}

	return visible, nil
}

func (s *Service) canSee(requester string, item *domain.ContentItem, adminOf map[string]bool) bool {
	if item.UserID == requester {
		return true
	}

	if item.IsPersonal() {
		return false
	}

	return adminOf[item.PublishTarget]
}
