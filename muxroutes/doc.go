// Package muxroutes exposes the routes of a gorilla/mux router as a
// swagger.RouteRegistry, so a router can be documented without repeating its
// paths and methods.
//
// # Reading A Router
//
// New wraps a router; the registry reads path templates, methods, and route
// names straight from it on every ListRoutes call, so routes registered
// after New are picked up too.
//
//	r := mux.NewRouter()
//	reg := muxroutes.New(r)
//
//	r.HandleFunc("/users/{user_id:[0-9]+}", getUser).Methods(http.MethodGet).Name("getUser")
//
//	doc, err := swagger.New(swagger.Config{BasePath: "http://example.com/api"}).Build(reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Subrouters are walked in place, and their routes carry the full path
// template including the parent prefix.
//
// # Attaching Documentation
//
// Docstrings, nickname overrides, and internal markers attach either to the
// route value or to its registered name:
//
//	reg.Route(r.HandleFunc("/users", listUsers)).Doc(`
//	    Get a list of users.
//
//	    :param q: filter by name
//	`)
//
//	reg.Named("getUser").Doc(`
//	    Get a single user.
//
//	    :param user_id: User ID
//	    :statuscode 404: no such user
//	`)
//
// Routes that serve the documentation itself are usually excluded:
//
//	reg.Route(r.HandleFunc("/api-docs", docsHandler)).Internal()
package muxroutes
