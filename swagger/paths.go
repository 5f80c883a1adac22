package swagger

import (
	"regexp"
	"strings"
)

// hintDataTypes maps placeholder type hints to parameter data types.
// Unlisted hints (including raw regexp patterns) fall back to "string".
var hintDataTypes = map[string]string{
	"int":      "int",
	"integer":  "int",
	"long":     "long",
	"float":    "float",
	"double":   "double",
	"bool":     "boolean",
	"boolean":  "boolean",
	"date":     "date",
	"uuid":     "string",
	"string":   "string",
	"slug":     "string",
	"alpha":    "string",
	"alphanum": "string",
	"hex":      "string",
	"domain":   "string",
	"path":     "string",
}

// pathVarRegexp matches route placeholders in the brace form {name} or
// {name:hint} and the angle-bracket form <name> or <hint:name>.
var pathVarRegexp = regexp.MustCompile(`\{[^{}]+\}|<[^<>]+>`)

// parameterize rewrites every placeholder in a route template to the
// normalized {name} form and returns the path parameters inferred from the
// placeholders, in path order. Path parameters are always required; their
// data type comes from the placeholder's type hint and defaults to "string".
// Placeholders without a name are left untouched.
func parameterize(tpl string) (string, []Parameter) {
	var params []Parameter

	normalized := pathVarRegexp.ReplaceAllStringFunc(tpl, func(match string) string {
		name, hint := splitPlaceholder(match)
		if name == "" {
			return match
		}
		params = append(params, Parameter{
			Name:      name,
			DataType:  hintDataType(hint),
			Required:  true,
			ParamType: "path",
		})
		return "{" + name + "}"
	})

	return normalized, params
}

// splitPlaceholder extracts the variable name and optional type hint from a
// placeholder token. Brace placeholders put the name first ({id:int});
// angle-bracket placeholders put it last (<int:id>), with the name being
// whatever follows the final colon.
func splitPlaceholder(match string) (name, hint string) {
	inner := match[1 : len(match)-1]
	if match[0] == '{' {
		name, hint, _ = strings.Cut(inner, ":")
		return name, hint
	}
	if i := strings.LastIndex(inner, ":"); i >= 0 {
		return inner[i+1:], inner[:i]
	}
	return inner, ""
}

// hintDataType resolves a placeholder type hint to a data type name.
func hintDataType(hint string) string {
	if dataType, ok := hintDataTypes[hint]; ok {
		return dataType
	}
	switch hint {
	case "[0-9]+", `\d+`:
		return "int"
	}
	return "string"
}
