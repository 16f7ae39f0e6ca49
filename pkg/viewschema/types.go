package viewschema

import (
	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/view"
)

// Column declares one table column in a view definition.
type Column struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ActionDef declares one action attached to a view.
type ActionDef struct {
	Name             string `json:"name" yaml:"name"`
	RequiresInstance bool   `json:"requires_instance,omitempty" yaml:"requires_instance,omitempty"`
	Icon             string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Class            string `json:"class,omitempty" yaml:"class,omitempty"`
}

// AncestorDef declares one entry of a view's ancestor chain.
type AncestorDef struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Definition is one declarative view: everything the composer needs except
// the records themselves and the permission backend.
type Definition struct {
	Kind      string        `json:"kind" yaml:"kind"`
	Path      string        `json:"path,omitempty" yaml:"path,omitempty"`
	LinkFirst *bool         `json:"link_first,omitempty" yaml:"link_first,omitempty"`
	PageSize  int           `json:"page_size,omitempty" yaml:"page_size,omitempty"`
	Columns   []Column      `json:"columns" yaml:"columns"`
	Actions   []ActionDef   `json:"actions,omitempty" yaml:"actions,omitempty"`
	Ancestors []AncestorDef `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
}

// Permissions supplies the predicate for each action name. Actions without
// an entry are always permitted.
type Permissions func(action string) view.PermissionFunc

// View materializes the view descriptor. perms may be nil.
func (d Definition) View(perms Permissions) view.View {
	v := view.View{
		Kind:      d.Kind,
		Path:      d.Path,
		LinkFirst: true,
	}
	if v.Path == "" {
		v.Path = d.Kind
	}
	if d.LinkFirst != nil {
		v.LinkFirst = *d.LinkFirst
	}
	for _, a := range d.Ancestors {
		v.Ancestors = append(v.Ancestors, view.Ancestor{Label: a.Label, URL: a.URL})
	}
	for _, a := range d.Actions {
		action := view.Action{
			Name:             a.Name,
			RequiresInstance: a.RequiresInstance,
			Icon:             a.Icon,
			Class:            a.Class,
		}
		if perms != nil {
			action.Permission = perms(a.Name)
		}
		v.Actions = append(v.Actions, action)
	}
	return v
}

// Projection materializes the column projection.
func (d Definition) Projection() model.Projection {
	specs := make([]model.ColumnSpec, len(d.Columns))
	for i, col := range d.Columns {
		specs[i] = model.ColumnSpec{Key: col.Key, Label: col.Label}
	}
	return model.NewProjection(specs...)
}

// SortKeys returns the column keys, the usual sortable set for a view.
func (d Definition) SortKeys() []string {
	keys := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		keys[i] = col.Key
	}
	return keys
}
