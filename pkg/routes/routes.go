// Package routes declares HTTP route groups and registers them on a ServeMux.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group organizes routes under a common prefix. Children inherit the prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	walk(groups, "", func(pattern string, r Route) {
		mux.HandleFunc(pattern, r.Handler)
	})
}

// Patterns returns the ServeMux pattern ("METHOD /path") of every route in
// groups, in declaration order.
func Patterns(groups ...Group) []string {
	var patterns []string
	walk(groups, "", func(pattern string, _ Route) {
		patterns = append(patterns, pattern)
	})
	return patterns
}

func walk(groups []Group, parent string, fn func(pattern string, r Route)) {
	for _, g := range groups {
		prefix := parent + g.Prefix
		for _, r := range g.Routes {
			fn(r.Method+" "+prefix+r.Pattern, r)
		}
		walk(g.Children, prefix, fn)
	}
}
