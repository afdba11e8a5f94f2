package domain

import (
	"time"
)

type ContentStatus string

const (
	ContentStatusPublished ContentStatus = "PUBLISHED"
	ContentStatusScheduled ContentStatus = "SCHEDULED"
	ContentStatusDraft     ContentStatus = "DRAFT"
	ContentStatusArchived  ContentStatus = "ARCHIVED"
)

// PublishTargetPersonal marca itens publicados no perfil pessoal do criador
const PublishTargetPersonal = "personal"

// ExternalBinding vincula um item a um post externo. Um item pode ter mais de
// um vínculo (cross-posting) e cada vínculo pode carregar a organização onde
// o post foi publicado (nil = pessoal).
type ExternalBinding struct {
	ExternalID     string  `json:"external_id"`
	OrganizationID *string `json:"organization_id,omitempty"`
}

// ContentItem representa uma peça de conteúdo criada na plataforma
type ContentItem struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	WorkspaceID      *string           `json:"workspace_id,omitempty"`
	PublishTarget    string            `json:"publish_target"` // "personal" ou o ID da organização
	Status           ContentStatus     `json:"status"`
	Excerpt          string            `json:"excerpt"`
	ExternalBindings []ExternalBinding `json:"external_bindings"`
	PublishedAt      *time.Time        `json:"published_at,omitempty"`
	ScheduledAt      *time.Time        `json:"scheduled_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// IsPersonal indica se o item foi publicado no perfil pessoal (sem organização)
func (i *ContentItem) IsPersonal() bool {
	return i.PublishTarget == "" || i.PublishTarget == PublishTargetPersonal
}

// OrganizationID retorna o ID da organização do item, ou nil para itens pessoais
func (i *ContentItem) OrganizationID() *string {
	if i.IsPersonal() {
		return nil
	}
	target := i.PublishTarget
	return &target
}

// RelevantDate retorna a data usada para enquadrar o item em um período,
// conforme o status: publicação, agendamento ou criação.
func (i *ContentItem) RelevantDate() *time.Time {
	switch i.Status {
	case ContentStatusPublished:
		return i.PublishedAt
	case ContentStatusScheduled:
		return i.ScheduledAt
	default:
		createdAt := i.CreatedAt
		return &createdAt
	}
}
