package domain

// Workspace representa um espaço compartilhado entre um dono e colaboradores
type Workspace struct {
	ID            string `json:"id"`
	OwnerIdentity string `json:"owner_identity"`
}

// IdentitySet é o conjunto de identidades cujo conteúdo pode ser visível em
// conjunto para um solicitante: o próprio solicitante sozinho, ou o dono do
// workspace mais os colaboradores aceitos.
// Invariante: a identidade solicitante sempre pertence ao próprio conjunto.
type IdentitySet struct {
	RootIdentity string   `json:"root_identity"`
	Members      []string `json:"members"`
}

// NewSoloIdentitySet monta o conjunto unitário de uma identidade sem workspace
func NewSoloIdentitySet(identity string) *IdentitySet {
	return &IdentitySet{
		RootIdentity: identity,
		Members:      []string{identity},
	}
}

// Contains verifica se uma identidade pertence ao conjunto
func (s *IdentitySet) Contains(identity string) bool {
	for _, member := range s.Members {
		if member == identity {
			return true
		}
	}
	return false
}
