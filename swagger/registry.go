package swagger

import (
	"net/http"
	"strings"
)

// RouteEntry is one registered endpoint as reported by a route registry.
// PathTemplate uses the registry's own placeholder syntax; normalization
// happens during document assembly. HandlerID names the handler for nickname
// derivation and may be empty. Internal marks routes the registry wants
// excluded from the document (static files, the documentation endpoints
// themselves).
type RouteEntry struct {
	PathTemplate string
	Methods      []string
	HandlerID    string
	DocComment   string
	Internal     bool
}

// RouteRegistry is the capability a host router must provide: a snapshot of
// its registered routes in registration order. An error means the registry
// could not be read and aborts document assembly.
type RouteRegistry interface {
	ListRoutes() ([]RouteEntry, error)
}

// Routes adapts a fixed slice of entries to the RouteRegistry interface.
type Routes []RouteEntry

// ListRoutes returns the entries as given.
func (r Routes) ListRoutes() ([]RouteEntry, error) {
	return r, nil
}

// Extract reads a registry snapshot and normalizes it: internal routes are
// dropped, methods are uppercased and de-duplicated, and routes that declare
// no methods default to GET. Registration order and path templates pass
// through untouched.
func Extract(reg RouteRegistry) ([]RouteEntry, error) {
	routes, err := reg.ListRoutes()
	if err != nil {
		return nil, err
	}

	entries := make([]RouteEntry, 0, len(routes))
	for _, route := range routes {
		if route.Internal {
			continue
		}
		entry := route
		entry.Methods = normalizeMethods(route.Methods)
		entries = append(entries, entry)
	}
	return entries, nil
}

// normalizeMethods uppercases and de-duplicates a method list, preserving
// order. An empty list defaults to GET.
func normalizeMethods(methods []string) []string {
	out := make([]string, 0, len(methods))
	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(strings.TrimSpace(method))
		if method == "" || seen[method] {
			continue
		}
		seen[method] = true
		out = append(out, method)
	}
	if len(out) == 0 {
		return []string{http.MethodGet}
	}
	return out
}
