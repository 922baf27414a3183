package models

// Searchable entity types. These are the literal values carried in the
// "type" field of search results and accepted by the advanced type filter.
const (
	EntityProfile = "profile"
	EntitySkill   = "skill"
	EntityProject = "project"
	EntityWork    = "work"
)

// SearchResult is the normalized row shape every entity projects into.
// Category carries the skill category, or the company for work entries;
// it is empty for profiles and projects.
type SearchResult struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ID          string `json:"id"`
}

// ValidEntityType reports whether t is one of the four searchable types.
func ValidEntityType(t string) bool {
	switch t {
	case EntityProfile, EntitySkill, EntityProject, EntityWork:
		return true
	}
	return false
}
