// model/staticdata.go
package model

// StaticLists is the global option dictionary: process-wide enumerations
// referenced indirectly by attribute option sentinels, never copied into
// individual attributes.
type StaticLists struct {
	Countries []string `json:"countries"`
	Languages []string `json:"languages"`
}

// List resolves a dictionary list by the name used in sentinel tokens.
func (s StaticLists) List(name string) ([]string, bool) {
	switch name {
	case "countries":
		return s.Countries, true
	case "languages":
		return s.Languages, true
	}
	return nil, false
}
