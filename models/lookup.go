package models

// LookupItem is one entry of a reference list (category, cuisine, tag,
// dietary tag) as returned by the lookup endpoints.
type LookupItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Option is a selectable reference in the authoring form: the reference id
// plus a display label. Labels are presentation-only; equality and set
// membership are decided by Value alone.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsFromItems converts a lookup list into form options.
func OptionsFromItems(items []LookupItem) []Option {
	opts := make([]Option, 0, len(items))
	for _, it := range items {
		opts = append(opts, Option{Value: it.ID, Label: it.Name})
	}
	return opts
}

// OptionsFromRefs converts the {id, name} objects embedded in a fetched post
// into the same option shape used by fresh selection, so toggling behaves
// identically between create and edit.
func OptionsFromRefs(refs []TagRef) []Option {
	opts := make([]Option, 0, len(refs))
	for _, r := range refs {
		opts = append(opts, Option{Value: r.ID, Label: r.Name})
	}
	return opts
}
