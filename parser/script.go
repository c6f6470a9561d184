package parser

import "strings"

// MarginComments holds the comments around a statement of a script. The
// lexer skips comments, so they are the source text between the tokens of
// neighbouring statements.
type MarginComments struct {
	Leading  string
	Trailing string
}

// ScriptStatement is one statement of a script together with its source text.
type ScriptStatement struct {
	// SQL is the statement text without the terminating ';' and without
	// surrounding comments.
	SQL       string
	Statement Statement
	// Pos is the byte offset of SQL in the script.
	Pos      int
	Comments MarginComments
}

// ParseScript parses a sequence of statements separated by ';' with the
// default options.
func ParseScript(sql string) ([]ScriptStatement, error) {
	return defaultParser.ParseScript(sql)
}

// ParseScript splits sql on ';' tokens, so semicolons inside strings and
// comments do not separate statements, and parses each piece. Empty pieces
// are skipped. Positions in a returned *ParseError refer to sql as a whole.
func (p *Parser) ParseScript(sql string) ([]ScriptStatement, error) {
	tokens, err := Tokenize(sql, p.opts)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Rule = "script"
		}
		return nil, err
	}

	var result []ScriptStatement
	segStart, first := 0, -1
	for i, tok := range tokens {
		if tok.Kind != ';' && tok.Kind != EOF {
			if first < 0 {
				first = i
			}
			continue
		}
		if first >= 0 {
			last := tokens[i-1]
			start := tokens[first].Pos
			text := sql[start:last.End]
			stmt, err := p.ParseStatement(text)
			if err != nil {
				return result, rebaseError(err, sql, start)
			}
			comments := MarginComments{
				Leading:  strings.TrimSpace(sql[segStart:start]),
				Trailing: strings.TrimSpace(sql[last.End:tok.Pos]),
			}
			result = append(result, ScriptStatement{
				SQL:       text,
				Statement: stmt,
				Pos:       start,
				Comments:  comments,
			})
		}
		segStart, first = tok.End, -1
	}
	return result, nil
}

func rebaseError(err error, sql string, offset int) error {
	perr, ok := err.(*ParseError)
	if !ok {
		return err
	}
	perr.Pos += offset
	perr.Line, perr.Column = calcLineCol(sql, perr.Pos)
	perr.SQL = sql
	return perr
}
