package swagger

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// ResourceListing is the top-level document: an inventory of the API's
// resources, each pointing at its own API declaration.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#51-resource-listing
type ResourceListing struct {
	APIVersion     string        `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string        `json:"swaggerVersion" yaml:"swaggerVersion"`
	BasePath       string        `json:"basePath" yaml:"basePath"`
	APIs           []ResourceRef `json:"apis" yaml:"apis"`
}

// ResourceRef is one entry in the resource listing. Path is the resource
// path relative to the listing (for example "/users").
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#512-resource-object
type ResourceRef struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Declaration is the per-resource document listing every API path under one
// resource with its operations.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#52-api-declaration
type Declaration struct {
	APIVersion     string `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string `json:"swaggerVersion" yaml:"swaggerVersion"`
	BasePath       string `json:"basePath" yaml:"basePath"`
	ResourcePath   string `json:"resourcePath" yaml:"resourcePath"`
	APIs           []*API `json:"apis" yaml:"apis"`
}

// API groups the operations available on a single path. Path placeholders
// use the normalized {name} form.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#522-api-object
type API struct {
	Path       string       `json:"path" yaml:"path"`
	Operations []*Operation `json:"operations" yaml:"operations"`
}

// Operation describes one HTTP method on a path. Nickname is unique across
// the whole document. Parameters and ResponseMessages are never nil so they
// serialize as empty lists rather than null.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#523-operation-object
type Operation struct {
	Method           string            `json:"method" yaml:"method"`
	Nickname         string            `json:"nickname" yaml:"nickname"`
	Summary          string            `json:"summary" yaml:"summary"`
	Notes            string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Parameters       []Parameter       `json:"parameters" yaml:"parameters"`
	ResponseMessages []ResponseMessage `json:"responseMessages" yaml:"responseMessages"`
}

// Parameter describes a single operation parameter. ParamType determines the
// parameter location: "path", "query", or "body".
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#524-parameter-object
type Parameter struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	DataType     string `json:"dataType" yaml:"dataType"`
	Required     bool   `json:"required" yaml:"required"`
	ParamType    string `json:"paramType" yaml:"paramType"`
	DefaultValue string `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
}

// ResponseMessage documents one status code an operation may respond with.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#525-response-message-object
type ResponseMessage struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Document bundles the resource listing with every API declaration. Callers
// typically serialize Listing and individual declarations separately (one
// endpoint per document); marshaling the whole Document is supported and
// deterministic.
type Document struct {
	Listing      *ResourceListing `json:"listing" yaml:"listing"`
	Declarations DeclarationMap   `json:"declarations" yaml:"declarations"`
}

// Declaration returns the API declaration for the given resource path
// (for example "/users").
func (d *Document) Declaration(path string) (*Declaration, bool) {
	return d.Declarations.Get(path)
}

// DeclarationMap maps resource paths to their API declarations while
// preserving first-seen resource order. Plain maps randomize iteration and
// encoding/json sorts their keys; this type keeps declarations in the same
// order as the listing under both encoders.
type DeclarationMap struct {
	paths []string
	decls map[string]*Declaration
}

// Get returns the declaration stored under path.
func (dm DeclarationMap) Get(path string) (*Declaration, bool) {
	decl, ok := dm.decls[path]
	return decl, ok
}

// Len returns the number of declarations.
func (dm DeclarationMap) Len() int {
	return len(dm.paths)
}

// Paths returns the resource paths in insertion order.
func (dm DeclarationMap) Paths() []string {
	paths := make([]string, len(dm.paths))
	copy(paths, dm.paths)
	return paths
}

// add stores a declaration, keeping insertion order. Existing paths are
// overwritten in place.
func (dm *DeclarationMap) add(path string, decl *Declaration) {
	if dm.decls == nil {
		dm.decls = make(map[string]*Declaration)
	}
	if _, ok := dm.decls[path]; !ok {
		dm.paths = append(dm.paths, path)
	}
	dm.decls[path] = decl
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (dm DeclarationMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range dm.paths {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(dm.decls[path])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping with keys in insertion order.
func (dm DeclarationMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, path := range dm.paths {
		var key yaml.Node
		key.SetString(path)

		var val yaml.Node
		if err := val.Encode(dm.decls[path]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}
