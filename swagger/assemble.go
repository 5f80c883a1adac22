package swagger

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config controls document assembly.
type Config struct {
	// BasePath is the API base URL recorded verbatim in the listing and
	// every declaration, e.g. "http://example.com/api".
	BasePath string

	// ResourcePath is the prefix stripped from route templates before
	// grouping; routes outside it are not documented. Defaults to the path
	// component of BasePath.
	ResourcePath string

	// Description is attached to every resource in the listing.
	Description string

	// APIVersion defaults to "1".
	APIVersion string

	// SwaggerVersion defaults to "1.2".
	SwaggerVersion string

	// Methods restricts documentation to the listed HTTP methods
	// (case-insensitive). Empty documents every declared method.
	Methods []string
}

func (c Config) apiVersion() string {
	if c.APIVersion == "" {
		return "1"
	}
	return c.APIVersion
}

func (c Config) swaggerVersion() string {
	if c.SwaggerVersion == "" {
		return "1.2"
	}
	return c.SwaggerVersion
}

func (c Config) resourcePrefix() string {
	if c.ResourcePath != "" {
		return strings.TrimSuffix(c.ResourcePath, "/")
	}
	u, err := url.Parse(c.BasePath)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(u.Path, "/")
}

// Builder assembles documents from route registry snapshots.
type Builder struct {
	cfg Config
}

// New creates a document builder with the given configuration.
func New(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build reads a snapshot of the registry and assembles the resource listing
// and one API declaration per resource. Each call is independent: the
// builder keeps no state between calls and the same snapshot always produces
// the same document. The only error is a registry that cannot be read.
func (b *Builder) Build(reg RouteRegistry) (*Document, error) {
	entries, err := Extract(reg)
	if err != nil {
		return nil, err
	}

	var allowed map[string]bool
	if len(b.cfg.Methods) > 0 {
		allowed = make(map[string]bool, len(b.cfg.Methods))
		for _, method := range b.cfg.Methods {
			allowed[strings.ToUpper(strings.TrimSpace(method))] = true
		}
	}

	prefix := b.cfg.resourcePrefix()
	doc := &Document{
		Listing: &ResourceListing{
			APIVersion:     b.cfg.apiVersion(),
			SwaggerVersion: b.cfg.swaggerVersion(),
			BasePath:       b.cfg.BasePath,
			APIs:           []ResourceRef{},
		},
	}
	nicks := make(nicknames)

	for _, entry := range entries {
		path, ok := stripPrefix(entry.PathTemplate, prefix)
		if !ok {
			continue
		}

		methods := entry.Methods
		if allowed != nil {
			methods = filterMethods(methods, allowed)
			if len(methods) == 0 {
				continue
			}
		}

		normalized, inferred := parameterize(path)
		summary, anns := ParseDoc(entry.DocComment)
		params := mergeParameters(inferred, anns)
		responses := responseMessages(anns)
		notes := joinNotes(anns)

		decl := b.declarationFor(doc, resourcePath(normalized))
		api := apiFor(decl, normalized)

		for _, method := range methods {
			api.Operations = append(api.Operations, &Operation{
				Method:           method,
				Nickname:         nicks.take(nickname(entry.HandlerID, method, normalized)),
				Summary:          summary,
				Notes:            notes,
				Parameters:       copyParameters(params),
				ResponseMessages: copyResponses(responses),
			})
		}
	}

	return doc, nil
}

// declarationFor returns the declaration for a resource path, creating it
// and its listing entry on first sight.
func (b *Builder) declarationFor(doc *Document, path string) *Declaration {
	if decl, ok := doc.Declarations.Get(path); ok {
		return decl
	}
	decl := &Declaration{
		APIVersion:     b.cfg.apiVersion(),
		SwaggerVersion: b.cfg.swaggerVersion(),
		BasePath:       b.cfg.BasePath,
		ResourcePath:   path,
		APIs:           []*API{},
	}
	doc.Declarations.add(path, decl)
	doc.Listing.APIs = append(doc.Listing.APIs, ResourceRef{
		Path:        path,
		Description: b.cfg.Description,
	})
	return decl
}

// apiFor returns the API entry for a path within a declaration, creating it
// on first sight so operations on the same path share one entry.
func apiFor(decl *Declaration, path string) *API {
	for _, api := range decl.APIs {
		if api.Path == path {
			return api
		}
	}
	api := &API{Path: path, Operations: []*Operation{}}
	decl.APIs = append(decl.APIs, api)
	return api
}

// stripPrefix removes the resource prefix from a route template. The second
// return is false for routes outside the prefix; a match must end on a
// segment boundary.
func stripPrefix(path, prefix string) (string, bool) {
	if prefix == "" {
		return path, true
	}
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := path[len(prefix):]
	if rest == "" {
		return "/", true
	}
	if rest[0] != '/' {
		return "", false
	}
	return rest, true
}

// resourcePath returns the grouping key for a normalized path: its first
// non-empty segment as "/segment", or "/" when there is none.
func resourcePath(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return "/" + segment
		}
	}
	return "/"
}

// mergeParameters combines path-inferred parameters with docstring
// annotations. Annotations matching an existing parameter by name augment it
// in place; Param, Type, and Required annotations naming an unknown
// parameter append a query parameter in annotation order; Default and
// ParamType only augment. Later writes win.
func mergeParameters(inferred []Parameter, anns []Annotation) []Parameter {
	params := make([]Parameter, len(inferred))
	copy(params, inferred)

	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}

	appendParam := func(name string) int {
		params = append(params, Parameter{
			Name:      name,
			DataType:  "string",
			ParamType: "query",
		})
		index[name] = len(params) - 1
		return len(params) - 1
	}

	for _, ann := range anns {
		switch ann.Kind {
		case KindParam:
			i, ok := index[ann.Name]
			if !ok {
				i = appendParam(ann.Name)
			}
			params[i].Description = ann.Value
		case KindType:
			i, ok := index[ann.Name]
			if !ok {
				i = appendParam(ann.Name)
			}
			params[i].DataType = ann.Value
		case KindRequired:
			i, ok := index[ann.Name]
			if !ok {
				i = appendParam(ann.Name)
			}
			params[i].Required = true
		case KindDefault:
			if i, ok := index[ann.Name]; ok {
				params[i].DefaultValue = ann.Value
			}
		case KindParamType:
			if i, ok := index[ann.Name]; ok {
				params[i].ParamType = ann.Value
			}
		}
	}

	return params
}

// responseMessages collects StatusCode annotations, unique per code with the
// last description winning, sorted ascending by code.
func responseMessages(anns []Annotation) []ResponseMessage {
	byCode := make(map[int]string)
	var codes []int
	for _, ann := range anns {
		if ann.Kind != KindStatusCode {
			continue
		}
		if _, ok := byCode[ann.Code]; !ok {
			codes = append(codes, ann.Code)
		}
		byCode[ann.Code] = ann.Value
	}
	sort.Ints(codes)

	out := make([]ResponseMessage, 0, len(codes))
	for _, code := range codes {
		out = append(out, ResponseMessage{Code: code, Message: byCode[code]})
	}
	return out
}

// joinNotes concatenates Notes annotations with single spaces.
func joinNotes(anns []Annotation) string {
	var parts []string
	for _, ann := range anns {
		if ann.Kind == KindNotes && ann.Value != "" {
			parts = append(parts, ann.Value)
		}
	}
	return strings.Join(parts, " ")
}

func filterMethods(methods []string, allowed map[string]bool) []string {
	out := make([]string, 0, len(methods))
	for _, method := range methods {
		if allowed[method] {
			out = append(out, method)
		}
	}
	return out
}

func copyParameters(params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	copy(out, params)
	return out
}

func copyResponses(responses []ResponseMessage) []ResponseMessage {
	out := make([]ResponseMessage, len(responses))
	copy(out, responses)
	return out
}

// nicknames tracks assigned nicknames for collision suffixing.
type nicknames map[string]bool

// take reserves base, appending the first free numeric suffix on collision.
func (n nicknames) take(base string) string {
	if !n[base] {
		n[base] = true
		return base
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !n[candidate] {
			n[candidate] = true
			return candidate
		}
	}
}

// nickname derives an operation nickname from the handler identifier,
// falling back to a method-and-path slug when the registry names no handler.
func nickname(handlerID, method, path string) string {
	if slug := slugIdent(handlerID); slug != "" {
		return slug
	}
	return slugRoute(method, path)
}

// slugIdent reduces a handler identifier to its last path and selector
// segment, keeping letters, digits, and underscores.
func slugIdent(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		id = id[i+1:]
	}
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		id = id[i+1:]
	}
	var b strings.Builder
	for _, r := range id {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// slugRoute builds a nickname from an HTTP method and a normalized path,
// e.g. GET /users/{user_id} becomes getUsersUserId.
func slugRoute(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	words := strings.FieldsFunc(path, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}
