package view

import "net/url"

// ActionScope tags the three link/permission dispatch cases. Scope is
// resolved once per action; ancestor-scoped links that lose their ancestor
// would point at the wrong collection, so the variant carries exactly the
// fields its case needs.
type ActionScope int

const (
	// ScopeView links the action to the collection alone.
	ScopeView ActionScope = iota
	// ScopeViewAncestor links the action to the collection under an ancestor.
	ScopeViewAncestor
	// ScopeInstance links the action to one record.
	ScopeInstance
)

// ResolvedAction is an action whose permission and link were evaluated for a
// concrete scope. HasURL is false when the URL builder knows no route; the
// renderer then shows the action unlinked or as plain text.
type ResolvedAction struct {
	Action   Action
	Scope    ActionScope
	Ancestor *Ancestor
	Instance any
	URL      string
	HasURL   bool
}

// ResolveHeader evaluates a view-scoped action for the page header. With a
// non-empty ancestor chain the action scopes to the last ancestor, otherwise
// to the view alone. The boolean reports whether the action passed its
// permission check; permission errors are returned as-is.
func ResolveHeader(a Action, v View, ancestors []Ancestor, urls URLBuilder, params url.Values) (ResolvedAction, bool, error) {
	ok, err := a.Allowed(nil)
	if err != nil || !ok {
		return ResolvedAction{}, false, err
	}

	resolved := ResolvedAction{Action: a, Scope: ScopeView}
	var target any
	if len(ancestors) > 0 {
		last := ancestors[len(ancestors)-1]
		resolved.Scope = ScopeViewAncestor
		resolved.Ancestor = &last
		target = last.Key
	}

	resolved.URL, resolved.HasURL = buildURL(urls, v.Path, a.Name, target, params)
	return resolved, true, nil
}

// ResolveInstance evaluates an instance-scoped action against one record.
func ResolveInstance(a Action, v View, instance any, urls URLBuilder, params url.Values) (ResolvedAction, bool, error) {
	ok, err := a.Allowed(instance)
	if err != nil || !ok {
		return ResolvedAction{}, false, err
	}

	resolved := ResolvedAction{
		Action:   a,
		Scope:    ScopeInstance,
		Instance: instance,
	}
	resolved.URL, resolved.HasURL = buildURL(urls, v.Path, a.Name, instance, params)
	return resolved, true, nil
}

func buildURL(urls URLBuilder, path, action string, target any, params url.Values) (string, bool) {
	if urls == nil {
		return "", false
	}
	return urls.URLFor(path, action, target, params)
}
