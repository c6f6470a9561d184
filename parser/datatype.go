package parser

import (
	"strconv"
	"strings"
)

func (*PrimitiveType) iDataType() {}
func (*ArrayType) iDataType()     {}
func (*MapType) iDataType()       {}
func (*StructType) iDataType()    {}

// PrimitiveType is an atomic type such as INT or DECIMAL(10, 2). Name is
// the canonical lower-case type name; aliases like long and integer are
// resolved to bigint and int.
type PrimitiveType struct {
	Name   string
	Params []int
}

func (node *PrimitiveType) Format(buf *TrackedBuffer) {
	buf.WriteString(strings.ToUpper(node.Name))
	if len(node.Params) == 0 {
		return
	}
	buf.WriteByte('(')
	for i, param := range node.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.Myprintf("%d", param)
	}
	buf.WriteByte(')')
}

type ArrayType struct {
	Elem DataType
}

func (node *ArrayType) Format(buf *TrackedBuffer) {
	buf.Myprintf("ARRAY<%v>", node.Elem)
}

type MapType struct {
	Key   DataType
	Value DataType
}

func (node *MapType) Format(buf *TrackedBuffer) {
	buf.Myprintf("MAP<%v, %v>", node.Key, node.Value)
}

// StructType is STRUCT<name: type, ...>.
type StructType struct {
	Fields []*ColumnDef
}

func (node *StructType) Format(buf *TrackedBuffer) {
	buf.WriteString("STRUCT<")
	for i, field := range node.Fields {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.printIdent(field.Name)
		buf.Myprintf(": %v", field.Type)
		field.formatOptions(buf)
	}
	buf.WriteByte('>')
}

// primitiveTypes maps every accepted spelling to its canonical name and
// the parameter counts it allows.
var primitiveTypes = map[string]struct {
	name   string
	params []int
}{
	"boolean":   {"boolean", []int{0}},
	"tinyint":   {"tinyint", []int{0}},
	"byte":      {"tinyint", []int{0}},
	"smallint":  {"smallint", []int{0}},
	"short":     {"smallint", []int{0}},
	"int":       {"int", []int{0}},
	"integer":   {"int", []int{0}},
	"bigint":    {"bigint", []int{0}},
	"long":      {"bigint", []int{0}},
	"float":     {"float", []int{0}},
	"real":      {"float", []int{0}},
	"double":    {"double", []int{0}},
	"date":      {"date", []int{0}},
	"timestamp": {"timestamp", []int{0}},
	"string":    {"string", []int{0}},
	"binary":    {"binary", []int{0}},
	"interval":  {"interval", []int{0}},
	"decimal":   {"decimal", []int{0, 1, 2}},
	"dec":       {"decimal", []int{0, 1, 2}},
	"numeric":   {"decimal", []int{0, 1, 2}},
	"char":      {"char", []int{1}},
	"character": {"char", []int{1}},
	"varchar":   {"varchar", []int{1}},
}

func (p *parser) dataType() DataType {
	defer p.enter("dataType")()
	switch {
	case p.peekKeyword("ARRAY") && p.peekN(1).Kind == '<':
		p.next()
		p.next()
		elem := p.dataType()
		p.expect('>')
		return &ArrayType{Elem: elem}
	case p.peekKeyword("MAP") && p.peekN(1).Kind == '<':
		p.next()
		p.next()
		key := p.dataType()
		p.expect(',')
		value := p.dataType()
		p.expect('>')
		return &MapType{Key: key, Value: value}
	case p.peekKeyword("STRUCT") && p.peekN(1).Kind == NEQ:
		p.next()
		p.next()
		return &StructType{}
	case p.peekKeyword("STRUCT") && p.peekN(1).Kind == '<':
		p.next()
		p.next()
		st := &StructType{}
		if !p.accept('>') {
			st.Fields = append(st.Fields, p.complexColType())
			for p.accept(',') {
				st.Fields = append(st.Fields, p.complexColType())
			}
			p.expect('>')
		}
		return st
	}
	return p.primitiveType()
}

func (p *parser) primitiveType() DataType {
	start := p.peek()
	name := strings.ToLower(p.identifier())
	var params []int
	var texts []string
	if p.accept('(') {
		for {
			tok := p.expect(INTEGER_VALUE)
			n, err := strconv.Atoi(tok.Text)
			if err != nil {
				p.failf(tok, ErrorKindSyntax, "invalid type parameter %s", tok.Text)
			}
			params = append(params, n)
			texts = append(texts, tok.Text)
			if !p.accept(',') {
				break
			}
		}
		p.expect(')')
	}
	def, ok := primitiveTypes[name]
	if ok {
		ok = false
		for _, n := range def.params {
			if n == len(params) {
				ok = true
			}
		}
	}
	if !ok {
		desc := name
		if len(texts) > 0 {
			desc += "(" + strings.Join(texts, ",") + ")"
		}
		p.failf(start, ErrorKindSyntax, "DataType %s is not supported.", desc)
	}
	return &PrimitiveType{Name: def.name, Params: params}
}

// complexColType is a STRUCT field: name [':'] type [NOT NULL] [COMMENT 'c'].
func (p *parser) complexColType() *ColumnDef {
	col := &ColumnDef{Name: p.identifier()}
	p.accept(':')
	col.Type = p.dataType()
	col.NotNull = p.acceptKeywords("NOT", "NULL")
	if p.acceptKeyword("COMMENT") {
		comment := p.stringLiteral()
		col.Comment = &comment
	}
	return col
}

// colType is a table column: name type [NOT NULL] [COMMENT 'c'].
func (p *parser) colType() *ColumnDef {
	defer p.enter("colType")()
	col := &ColumnDef{Name: p.errorCapturingIdentifier()}
	col.Type = p.dataType()
	col.NotNull = p.acceptKeywords("NOT", "NULL")
	if p.acceptKeyword("COMMENT") {
		comment := p.stringLiteral()
		col.Comment = &comment
	}
	return col
}

func (p *parser) colTypeList() []*ColumnDef {
	cols := []*ColumnDef{p.colType()}
	for p.accept(',') {
		cols = append(cols, p.colType())
	}
	return cols
}
