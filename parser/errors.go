package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	ErrorKindSyntax ErrorKind = iota
	ErrorKindLexical
	ErrorKindDuplicateClause
	ErrorKindOperationNotAllowed
	// ErrorKindAmbiguous is reported when the lookahead budget runs out
	// before two alternatives could be told apart.
	ErrorKindAmbiguous
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindSyntax:
		return "syntax error"
	case ErrorKindLexical:
		return "lexical error"
	case ErrorKindDuplicateClause:
		return "duplicate clause"
	case ErrorKindOperationNotAllowed:
		return "operation not allowed"
	case ErrorKindAmbiguous:
		return "ambiguous input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// maxContextWidth bounds the source excerpt printed under an error.
const maxContextWidth = 80

// ParseError is returned by every parse entry point. No partial tree is
// returned together with it.
type ParseError struct {
	Kind ErrorKind
	// Rule is the grammar rule that was being recognized.
	Rule    string
	Message string
	// Token is the text of the offending token, or "<EOF>".
	Token    string
	Expected []string
	Pos      int
	Line     int
	Column   int
	SQL      string
}

func (e *ParseError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s at line %d, column %d", e.Kind, e.Line, e.Column)
	if e.Token != "" {
		fmt.Fprintf(&buf, " near '%s'", e.Token)
	}
	fmt.Fprintf(&buf, ": %s", e.Message)
	if len(e.Expected) > 0 {
		fmt.Fprintf(&buf, ", expecting %s", strings.Join(e.Expected, ", "))
	}
	if context := e.Context(); context != "" {
		buf.WriteString("\n")
		buf.WriteString(context)
	}
	return buf.String()
}

// Context returns the source line containing the error followed by a caret
// line pointing at the offending column.
func (e *ParseError) Context() string {
	if e.SQL == "" || e.Line <= 0 {
		return ""
	}
	lines := strings.Split(e.SQL, "\n")
	if e.Line > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[e.Line-1], "\r")
	column := e.Column - 1
	if column > len(line) {
		column = len(line)
	}

	prefix := ""
	if len(line) > maxContextWidth {
		start := column - maxContextWidth/2
		if start < 0 {
			start = 0
		}
		end := start + maxContextWidth
		if end > len(line) {
			end = len(line)
			start = end - maxContextWidth
		}
		suffix := ""
		if end < len(line) {
			suffix = "..."
		}
		if start > 0 {
			prefix = "..."
		}
		line = prefix + line[start:end] + suffix
		column = column - start
	}
	return line + "\n" + strings.Repeat(" ", len(prefix)+column) + "^"
}

// bailout is the panic value used to unwind the parser on the first error.
type bailout struct {
	err *ParseError
}
