// Package swagger generates Swagger 1.2-era API documentation from a web
// application's route table and per-handler documentation comments.
//
// The package produces the classic two-tier document shape: a resource
// listing enumerating the API's resources, and one API declaration per
// resource describing its paths, operations, parameters, and response
// messages. Operation metadata is written as Sphinx-style field lists in
// plain documentation strings attached to routes, so the generated document
// always reflects the code that serves it.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md
//
// # Route Registries
//
// The package reads routes through the RouteRegistry interface, a snapshot
// of the host router's registration table. The muxroutes package binds
// gorilla/mux routers; any router can be documented by implementing the
// one-method interface or by filling the Routes slice adapter directly:
//
//	reg := swagger.Routes{
//	    {PathTemplate: "/api/users/{user_id:int}", Methods: []string{"GET"}, HandlerID: "getUser", DocComment: doc},
//	    {PathTemplate: "/api/users", Methods: []string{"POST"}, HandlerID: "createUser"},
//	}
//
// Entries keep the router's own placeholder syntax; both {name:hint} and
// <hint:name> placeholder forms are understood during assembly. Routes
// marked Internal are left out of the document, and routes that declare no
// methods are documented as GET.
//
// # Docstrings
//
// A docstring opens with a free-text summary and continues with a field
// list. ParseDoc recognizes these directives:
//
//	:param <name>: <description>       describe a parameter
//	:type <name>: <data type>          set a parameter's data type
//	:required <name>                   mark a parameter required
//	:default <name>: <value>           set a parameter's default value
//	:paramtype <name>: <kind>          override the location (path, query, body)
//	:statuscode <code>: <description>  document a response message
//	:notes <text>                      add implementation notes
//
// For example:
//
//	const getUserDoc = `
//	    Get a single user.
//
//	    :param user_id: User ID
//	    :statuscode 200: The user
//	    :statuscode 404: No such user
//	`
//
// The docstring travels in a RouteEntry's DocComment field; registry bindings
// like muxroutes attach it to a live route instead. Shared leading
// indentation is stripped, so docstrings inline cleanly in source.
// Directive text may continue on deeper-indented lines. Unknown directives
// are ignored, and a status code that is not an integer drops only that
// directive, never the document.
//
// # Assembly
//
// New configures a Builder; Build turns a registry snapshot into a Document:
//
//	builder := swagger.New(swagger.Config{
//	    BasePath:    "http://example.com/api",
//	    Description: "User service",
//	})
//	doc, err := builder.Build(reg)
//
// Placeholders are rewritten to the normalized {name} form and become path
// parameters, required and typed from the placeholder's hint ({id:int} gives
// dataType "int"). Annotations naming a path parameter refine it in place;
// everything else becomes a query parameter in annotation order. Response
// messages are sorted ascending by status code.
//
// Routes group into resources by the first path segment after the base
// path: /api/users and /api/users/{user_id} both land in the "/users"
// resource, while a route at the base path itself lands in "/". Resources
// appear in registration order, and every operation receives a nickname that
// is unique across the document (collisions get a numeric suffix).
//
// # Serving
//
// The caller serializes and serves the document; the listing and each
// declaration are separate wire documents:
//
//	listing, _ := json.Marshal(doc.Listing)
//	users, _ := doc.Declaration("/users")
//	decl, _ := json.Marshal(users)
//
// All document types carry json and yaml struct tags, so yaml.Marshal
// produces the same field names. Building is deterministic: the same
// registry snapshot always yields byte-identical output.
package swagger
