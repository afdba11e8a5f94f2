package accessing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/content-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestResolveIdentitySet(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		setup    func(workspaceRepo *mocks.MockWorkspaceRepository)
		validate func(t *testing.T, set *domain.IdentitySet, err error)
	}{
		{
			name:     "Identidade sem workspace - conjunto unitário com a própria identidade",
			identity: "user-1",
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetWorkspaceForIdentity("user-1").Return(nil, nil)
			},
			validate: func(t *testing.T, set *domain.IdentitySet, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", set.RootIdentity)
				assert.Equal(t, []string{"user-1"}, set.Members)
			},
		},
		{
			name:     "Dono de workspace - conjunto inclui colaboradores aceitos",
			identity: "owner-1",
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetWorkspaceForIdentity("owner-1").Return(&domain.Workspace{
					ID:            "ws-1",
					OwnerIdentity: "owner-1",
				}, nil)
				workspaceRepo.EXPECT().GetAcceptedCollaborators("ws-1").Return([]string{"collab-1", "collab-2"}, nil)
			},
			validate: func(t *testing.T, set *domain.IdentitySet, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "owner-1", set.RootIdentity)
				assert.Equal(t, []string{"owner-1", "collab-1", "collab-2"}, set.Members)
			},
		},
		{
			name:     "Colaborador aceito - raiz é o dono e o solicitante pertence ao conjunto",
			identity: "collab-1",
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetWorkspaceForIdentity("collab-1").Return(&domain.Workspace{
					ID:            "ws-1",
					OwnerIdentity: "owner-1",
				}, nil)
				workspaceRepo.EXPECT().GetAcceptedCollaborators("ws-1").Return([]string{"collab-1"}, nil)
			},
			validate: func(t *testing.T, set *domain.IdentitySet, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "owner-1", set.RootIdentity)
				assert.True(t, set.Contains("collab-1"))
				assert.True(t, set.Contains("owner-1"))
			},
		},
		{
			name:     "Colaboradores incluem o dono - dono não aparece duplicado",
			identity: "owner-1",
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetWorkspaceForIdentity("owner-1").Return(&domain.Workspace{
					ID:            "ws-1",
					OwnerIdentity: "owner-1",
				}, nil)
				workspaceRepo.EXPECT().GetAcceptedCollaborators("ws-1").Return([]string{"owner-1", "collab-1"}, nil)
			},
			validate: func(t *testing.T, set *domain.IdentitySet, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"owner-1", "collab-1"}, set.Members)
			},
		},
		{
			name:     "Erro ao buscar workspace - resolução falha",
			identity: "user-1",
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetWorkspaceForIdentity("user-1").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, set *domain.IdentitySet, err error) {
				assert.Error(t, err)
				assert.Nil(t, set)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
			organizationRepo := mocks.NewMockOrganizationRepository(ctrl)

			tt.setup(workspaceRepo)

			service := NewService(workspaceRepo, organizationRepo)
			set, err := service.ResolveIdentitySet(tt.identity)
			tt.validate(t, set, err)
		})
	}
}

func TestFilterVisible(t *testing.T) {
	requester := "user-1"

	personalOwn := &domain.ContentItem{
		ID:            "item-1",
		UserID:        requester,
		PublishTarget: domain.PublishTargetPersonal,
	}
	personalOther := &domain.ContentItem{
		ID:            "item-2",
		UserID:        "user-2",
		PublishTarget: domain.PublishTargetPersonal,
	}
	orgAdministered := &domain.ContentItem{
		ID:            "item-3",
		UserID:        "user-2",
		PublishTarget: "org-1",
	}
	orgForeign := &domain.ContentItem{
		ID:            "item-4",
		UserID:        "user-2",
		PublishTarget: "org-2",
	}

	items := []*domain.ContentItem{personalOwn, personalOther, orgAdministered, orgForeign}

	tests := []struct {
		name     string
		context  domain.ContextFilter
		setup    func(organizationRepo *mocks.MockOrganizationRepository)
		validate func(t *testing.T, visible []*domain.ContentItem, err error)
	}{
		{
			name:    "Contexto all - vê os próprios itens e os das organizações que administra",
			context: domain.ContextFilter{Kind: domain.ContextAll},
			setup: func(organizationRepo *mocks.MockOrganizationRepository) {
				organizationRepo.EXPECT().GetAdminOrganizations(requester).Return([]string{"org-1"}, nil)
			},
			validate: func(t *testing.T, visible []*domain.ContentItem, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []*domain.ContentItem{personalOwn, orgAdministered}, visible)
			},
		},
		{
			name:    "Contexto personal - item pessoal de outro criador nunca aparece",
			context: domain.ContextFilter{Kind: domain.ContextPersonal},
			setup: func(organizationRepo *mocks.MockOrganizationRepository) {
				organizationRepo.EXPECT().GetAdminOrganizations(requester).Return([]string{"org-1"}, nil)
			},
			validate: func(t *testing.T, visible []*domain.ContentItem, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []*domain.ContentItem{personalOwn}, visible)
			},
		},
		{
			name:    "Contexto de organização - só itens daquela organização",
			context: domain.ContextFilter{Kind: domain.ContextOrganization, OrganizationID: "org-1"},
			setup: func(organizationRepo *mocks.MockOrganizationRepository) {
				organizationRepo.EXPECT().GetAdminOrganizations(requester).Return([]string{"org-1"}, nil)
			},
			validate: func(t *testing.T, visible []*domain.ContentItem, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []*domain.ContentItem{orgAdministered}, visible)
			},
		},
		{
			name:    "Sem papel de administrador - apenas os próprios itens",
			context: domain.ContextFilter{Kind: domain.ContextAll},
			setup: func(organizationRepo *mocks.MockOrganizationRepository) {
				organizationRepo.EXPECT().GetAdminOrganizations(requester).Return(nil, nil)
			},
			validate: func(t *testing.T, visible []*domain.ContentItem, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []*domain.ContentItem{personalOwn}, visible)
			},
		},
		{
			name:    "Erro ao buscar organizações administradas - filtro falha",
			context: domain.ContextFilter{Kind: domain.ContextAll},
			setup: func(organizationRepo *mocks.MockOrganizationRepository) {
				organizationRepo.EXPECT().GetAdminOrganizations(requester).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, visible []*domain.ContentItem, err error) {
				assert.Error(t, err)
				assert.Nil(t, visible)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
			organizationRepo := mocks.NewMockOrganizationRepository(ctrl)

			tt.setup(organizationRepo)

			service := NewService(workspaceRepo, organizationRepo)
			visible, err := service.FilterVisible(requester, items, tt.context)
			tt.validate(t, visible, err)
		})
	}
}
