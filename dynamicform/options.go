// dynamicform/options.go
package dynamicform

import "github.com/scoutdesk/backoffice/model"

// ResolveOptions expands an attribute's declared options against the global
// option dictionary. A single-element "global:<list>" token is substituted
// with that list verbatim, value and label identical per entry. Anything else
// is returned as authored: order preserved, duplicates kept (a duplicate
// value is an authoring error for review, not something to merge silently).
//
// The function is pure and cheap; it runs on every form render. Caching is
// the dictionary's job, not this function's.
func ResolveOptions(opts model.OptionList, lists model.StaticLists) []model.Option {
	if name, ok := opts.GlobalRef(); ok {
		values, known := lists.List(name)
		if !known {
			return []model.Option{}
		}
		resolved := make([]model.Option, len(values))
		for i, value := range values {
			resolved[i] = model.Option{Value: value, Label: value}
		}
		return resolved
	}

	resolved := make([]model.Option, len(opts))
	copy(resolved, opts)
	return resolved
}
