package parser

import (
	"fmt"
	"reflect"
)

// Equal reports whether a and b are the same tree. A nil node only equals
// another nil node.
func Equal(a, b SQLNode) bool {
	if isNilNode(a) || isNilNode(b) {
		return isNilNode(a) && isNilNode(b)
	}
	return reflect.DeepEqual(a, b)
}

// Equivalent parses a and b as statements and reports whether they are equal
// after normalization.
func (p *Parser) Equivalent(a, b string) (bool, error) {
	stmtA, err := p.ParseStatement(a)
	if err != nil {
		return false, fmt.Errorf("parse first statement: %w", err)
	}
	stmtB, err := p.ParseStatement(b)
	if err != nil {
		return false, fmt.Errorf("parse second statement: %w", err)
	}
	Normalize(stmtA)
	Normalize(stmtB)
	return Equal(stmtA, stmtB), nil
}
