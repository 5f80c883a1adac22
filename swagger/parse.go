package swagger

import (
	"strconv"
	"strings"
)

// AnnotationKind identifies the directive an annotation was parsed from.
type AnnotationKind int

// Directive kinds recognized by ParseDoc.
const (
	KindParam AnnotationKind = iota
	KindType
	KindRequired
	KindStatusCode
	KindDefault
	KindParamType
	KindNotes
)

// Annotation is one parsed docstring directive. Name holds the parameter
// name for parameter directives and is empty otherwise. Code holds the
// status code for KindStatusCode. Value carries the directive's free text:
// a description, type name, default value, or note.
type Annotation struct {
	Kind  AnnotationKind
	Name  string
	Code  int
	Value string
}

// ParseDoc parses a documentation comment into a leading summary and an
// ordered list of annotations.
//
// The summary is everything before the first line starting with ":", joined
// with newlines and trimmed. Directive lines follow a Sphinx-style field
// list grammar:
//
//	:param <name>: <description>
//	:type <name>: <data type>
//	:default <name>: <value>
//	:paramtype <name>: <path|query|body>
//	:required <name>
//	:statuscode <code>: <description>
//	:notes <text>
//
// A directive's text may continue on following lines indented deeper than
// the directive itself; continuation lines are joined with single spaces and
// blank lines inside a field body are skipped. A status code that does not
// parse as an integer drops the whole directive. Unrecognized ":"-prefixed
// lines are ignored. ParseDoc never fails.
func ParseDoc(doc string) (string, []Annotation) {
	lines := dedent(doc)

	var (
		summaryLines []string
		anns         []Annotation
		inSummary    = true
		openIdx      = -1 // annotation receiving continuation lines
		openIndent   int
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, ":") {
			inSummary = false
			openIdx, openIndent = -1, indentWidth(line)
			if ann, ok := parseDirective(trimmed); ok {
				anns = append(anns, ann)
				openIdx = len(anns) - 1
			}
			continue
		}

		switch {
		case inSummary:
			summaryLines = append(summaryLines, line)
		case trimmed == "":
			// Blank lines do not close an open field body.
		case openIdx >= 0 && indentWidth(line) > openIndent:
			if anns[openIdx].Value == "" {
				anns[openIdx].Value = trimmed
			} else {
				anns[openIdx].Value += " " + trimmed
			}
		default:
			// Free text past the field list is not part of any directive.
			openIdx = -1
		}
	}

	return strings.TrimSpace(strings.Join(summaryLines, "\n")), anns
}

// parseDirective parses a single trimmed directive line. The boolean is
// false for unrecognized or malformed directives.
func parseDirective(line string) (Annotation, bool) {
	head, rest := splitHead(line[1:])

	switch head {
	case "param", "type", "default", "paramtype":
		name, value, ok := strings.Cut(rest, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Annotation{}, false
		}
		var kind AnnotationKind
		switch head {
		case "param":
			kind = KindParam
		case "type":
			kind = KindType
		case "default":
			kind = KindDefault
		case "paramtype":
			kind = KindParamType
		}
		return Annotation{Kind: kind, Name: name, Value: strings.TrimSpace(value)}, true

	case "required":
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return Annotation{}, false
		}
		name := strings.TrimSuffix(fields[0], ":")
		if name == "" {
			return Annotation{}, false
		}
		return Annotation{Kind: KindRequired, Name: name}, true

	case "statuscode":
		codeText, value, ok := strings.Cut(rest, ":")
		if !ok {
			return Annotation{}, false
		}
		code, err := strconv.Atoi(strings.TrimSpace(codeText))
		if err != nil {
			return Annotation{}, false
		}
		return Annotation{Kind: KindStatusCode, Code: code, Value: strings.TrimSpace(value)}, true

	case "notes":
		return Annotation{Kind: KindNotes, Value: rest}, true
	}

	return Annotation{}, false
}

// splitHead splits a directive body into its keyword and remaining text.
func splitHead(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

// dedent splits doc into lines, strips the indentation shared by all
// non-blank lines after the first, and drops leading and trailing blank
// lines. The first line is trimmed of leading whitespace entirely.
func dedent(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	lines := strings.Split(doc, "\n")
	lines[0] = strings.TrimLeft(lines[0], " \t")

	margin := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if w := indentWidth(line); margin < 0 || w < margin {
			margin = w
		}
	}
	if margin > 0 {
		for i, line := range lines[1:] {
			lines[i+1] = trimIndent(line, margin)
		}
	}

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// indentWidth returns the number of leading space and tab characters.
func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// trimIndent removes up to n leading whitespace characters.
func trimIndent(line string, n int) string {
	for i := 0; i < n && line != ""; i++ {
		if line[0] != ' ' && line[0] != '\t' {
			break
		}
		line = line[1:]
	}
	return line
}
