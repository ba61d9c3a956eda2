// model/usertype.go
package model

import "time"

// ParentType is the top-level discriminator a user type hangs off.
type ParentType string

const (
	ParentCollaborator ParentType = "Collaborator"
	ParentAgency       ParentType = "Agency"
)

func (pt ParentType) Valid() bool {
	return pt == ParentCollaborator || pt == ParentAgency
}

// FieldBinding is one attribute's usage inside a user type: its label, the
// required flag, and a free-text section used only for presentation grouping.
type FieldBinding struct {
	AttributeSlug string `json:"attributeSlug"`
	Label         string `json:"label"`
	Required      bool   `json:"required"`
	Section       string `json:"section"`
}

// UserTypeConfig composes attributes into a named entity schema. Binding
// order is display order within a section; sections keep first-seen order.
type UserTypeConfig struct {
	Slug       string         `json:"slug"`
	Name       string         `json:"name"`
	ParentType ParentType     `json:"parentType"`
	Fields     []FieldBinding `json:"fields"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// AttributeSlugs returns the distinct attribute slugs referenced by the
// config's bindings, in binding order.
func (c UserTypeConfig) AttributeSlugs() []string {
	seen := make(map[string]struct{}, len(c.Fields))
	slugs := make([]string, 0, len(c.Fields))
	for _, binding := range c.Fields {
		if _, ok := seen[binding.AttributeSlug]; ok {
			continue
		}
		seen[binding.AttributeSlug] = struct{}{}
		slugs = append(slugs, binding.AttributeSlug)
	}
	return slugs
}
