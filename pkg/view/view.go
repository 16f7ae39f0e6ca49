package view

import "net/url"

// Ancestor is one entity in a hierarchical collection chain. Label feeds the
// breadcrumb trail, URL makes the crumb clickable (empty renders plain text),
// and Key is the target handed to the URL builder when an action scopes to
// this ancestor.
type Ancestor struct {
	Label string
	URL   string
	Key   any
}

// URLBuilder is the external routing capability. Implementations report
// ok=false when no route exists for the combination; the composer renders the
// affected element unlinked instead of failing.
type URLBuilder interface {
	URLFor(viewPath, action string, target any, params url.Values) (string, bool)
}

// PermissionFunc reports whether the current principal may perform an action.
// target is nil for view-scoped checks and the row instance for
// instance-scoped checks. Errors propagate to the caller unchanged; only a
// false result hides the action.
type PermissionFunc func(target any) (bool, error)

// Action is a named operation attached to a view. RequiresInstance splits
// per-row actions (edit, delete) from collection-level ones (create).
type Action struct {
	Name             string
	RequiresInstance bool
	Icon             string
	Class            string
	Permission       PermissionFunc
}

// Allowed evaluates the action's permission predicate for the given target.
// Actions without a predicate are always permitted.
func (a Action) Allowed(target any) (bool, error) {
	if a.Permission == nil {
		return true, nil
	}
	return a.Permission(target)
}

// View describes one browsable collection: its label, the slash-separated
// path used for URL building, the view-level ancestor chain, the actions it
// links to, and whether the first cell of each row links to the edit page.
type View struct {
	Kind      string
	Path      string
	Ancestors []Ancestor
	Actions   []Action
	LinkFirst bool
}

// LinkedActions returns the view-scoped subset used for header buttons.
func (v View) LinkedActions() []Action {
	var out []Action
	for _, a := range v.Actions {
		if !a.RequiresInstance {
			out = append(out, a)
		}
	}
	return out
}

// InstanceActions returns the per-row subset rendered as action columns.
func (v View) InstanceActions() []Action {
	var out []Action
	for _, a := range v.Actions {
		if a.RequiresInstance {
			out = append(out, a)
		}
	}
	return out
}
