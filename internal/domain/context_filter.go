package domain

type ContextKind string

const (
	ContextAll          ContextKind = "all"
	ContextPersonal     ContextKind = "personal"
	ContextOrganization ContextKind = "organization"
)

// ContextFilter é a variante etiquetada que substitui a construção dinâmica de
// predicados por contexto: All | Personal | Organization(id). Um único
// Matches cobre todos os caminhos de agregação.
type ContextFilter struct {
	Kind           ContextKind
	OrganizationID string
}

// ParseContextFilter interpreta o parâmetro `context` da API: "all" (ou
// vazio), "personal", ou o ID de uma organização.
func ParseContextFilter(raw string) ContextFilter {
	switch raw {
	case "", string(ContextAll):
		return ContextFilter{Kind: ContextAll}
	case string(ContextPersonal):
		return ContextFilter{Kind: ContextPersonal}
	default:
		return ContextFilter{Kind: ContextOrganization, OrganizationID: raw}
	}
}

// Matches verifica se um item pertence ao contexto filtrado
func (f ContextFilter) Matches(item *ContentItem) bool {
	switch f.Kind {
	case ContextAll:
		return true
	case ContextPersonal:
		return item.IsPersonal()
	case ContextOrganization:
		return item.PublishTarget == f.OrganizationID
	}
	return false
}

// String devolve a representação usada na chave de cache
func (f ContextFilter) String() string {
	if f.Kind == ContextOrganization {
		return f.OrganizationID
	}
	return string(f.Kind)
}
