package muxroutes

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/mpolden/flask-swagger/swagger"
)

// Registry adapts a gorilla/mux router to the swagger.RouteRegistry
// interface. Everything the router knows (path templates, methods, route
// names) is read from the router itself; documentation it cannot carry
// (docstrings, nickname overrides, internal markers) is attached through
// Route or Named.
type Registry struct {
	router  *mux.Router
	byRoute map[*mux.Route]*RouteDocs
	byName  map[string]*RouteDocs
}

// New creates a registry reading from router.
func New(router *mux.Router) *Registry {
	return &Registry{
		router:  router,
		byRoute: make(map[*mux.Route]*RouteDocs),
		byName:  make(map[string]*RouteDocs),
	}
}

// Route returns the documentation attached to route, creating it on first
// use.
func (reg *Registry) Route(route *mux.Route) *RouteDocs {
	if docs, ok := reg.byRoute[route]; ok {
		return docs
	}
	docs := &RouteDocs{}
	reg.byRoute[route] = docs
	return docs
}

// Named returns the documentation attached to the route registered under
// name, creating it on first use. The route itself may be registered before
// or after the attachment.
func (reg *Registry) Named(name string) *RouteDocs {
	if docs, ok := reg.byName[name]; ok {
		return docs
	}
	docs := &RouteDocs{}
	reg.byName[name] = docs
	return docs
}

// ListRoutes walks the router and returns one entry per route in
// registration order. Subrouter parents and routes without a path template
// or handler are skipped. A route that failed to build aborts the walk.
func (reg *Registry) ListRoutes() ([]swagger.RouteEntry, error) {
	var entries []swagger.RouteEntry

	err := reg.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if err := route.GetError(); err != nil {
			if name := route.GetName(); name != "" {
				return fmt.Errorf("muxroutes: route %s: %w", name, err)
			}
			return fmt.Errorf("muxroutes: %w", err)
		}

		if route.GetHandler() == nil {
			return nil
		}

		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}

		// Routes may declare no methods; the document builder defaults
		// those to GET.
		methods, err := route.GetMethods()
		if err != nil {
			methods = nil
		}

		entry := swagger.RouteEntry{
			PathTemplate: tpl,
			Methods:      methods,
			HandlerID:    route.GetName(),
		}
		reg.applyDocs(route, &entry)

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// applyDocs copies attached documentation onto entry. Pointer attachments
// apply first and name attachments second, so the latter win when a route is
// documented both ways.
func (reg *Registry) applyDocs(route *mux.Route, entry *swagger.RouteEntry) {
	docs := []*RouteDocs{reg.byRoute[route]}
	if name := route.GetName(); name != "" {
		docs = append(docs, reg.byName[name])
	}

	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.doc != "" {
			entry.DocComment = d.doc
		}
		if d.nickname != "" {
			entry.HandlerID = d.nickname
		}
		if d.internal {
			entry.Internal = true
		}
	}
}

// RouteDocs carries the documentation for one route. Its methods return the
// receiver so calls chain.
type RouteDocs struct {
	doc      string
	nickname string
	internal bool
}

// Doc sets the route's documentation comment. See swagger.ParseDoc for the
// grammar.
func (d *RouteDocs) Doc(doc string) *RouteDocs {
	d.doc = doc
	return d
}

// Nickname overrides the operation nickname otherwise derived from the route
// name.
func (d *RouteDocs) Nickname(nickname string) *RouteDocs {
	d.nickname = nickname
	return d
}

// Internal excludes the route from the assembled document.
func (d *RouteDocs) Internal() *RouteDocs {
	d.internal = true
	return d
}
