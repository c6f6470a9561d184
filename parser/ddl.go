package parser

import (
	"strconv"
	"strings"
)

// tablePropertyList is '(' key [=] [value], ... ')'. A repeated key is an
// error.
func (p *parser) tablePropertyList() TableProperties {
	defer p.enter("tablePropertyList")()
	open := p.expect('(')
	var props TableProperties
	seen := map[string]bool{}
	var duplicates []string
	for {
		prop := &TableProperty{Key: p.tablePropertyKey()}
		p.accept('=')
		if value, ok := p.tablePropertyValue(); ok {
			prop.Value = &value
		}
		if seen[prop.Key] {
			duplicates = append(duplicates, prop.Key)
		}
		seen[prop.Key] = true
		props = append(props, prop)
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	if len(duplicates) > 0 {
		p.failf(open, ErrorKindSyntax, "Found duplicate keys '%s'.", strings.Join(duplicates, "', '"))
	}
	return props
}

func (p *parser) tablePropertyKey() string {
	if p.peekKind(STRING) {
		return p.next().Value
	}
	parts := []string{p.identifier()}
	for p.accept('.') {
		parts = append(parts, p.identifier())
	}
	return strings.Join(parts, ".")
}

func (p *parser) tablePropertyValue() (string, bool) {
	tok := p.peek()
	switch {
	case tok.Kind == INTEGER_VALUE || tok.Kind == DECIMAL_VALUE:
		return p.next().Text, true
	case isKeywordToken(tok, "TRUE", "FALSE"):
		return strings.ToLower(p.next().Keyword), true
	case tok.Kind == STRING:
		return p.next().Value, true
	}
	return "", false
}

// propertiesWithValues requires every key of props to carry a value.
func (p *parser) propertiesWithValues(tok Token, props TableProperties) TableProperties {
	var missing []string
	for _, prop := range props {
		if prop.Value == nil {
			missing = append(missing, prop.Key)
		}
	}
	if len(missing) > 0 {
		p.failf(tok, ErrorKindSyntax, "Values must be specified for key(s): [%s]", strings.Join(missing, ","))
	}
	return props
}

// propertyKeysOnly rejects values in a list that names keys only.
func (p *parser) propertyKeysOnly(tok Token, props TableProperties) TableProperties {
	var bad []string
	for _, prop := range props {
		if prop.Value != nil {
			bad = append(bad, prop.Key)
		}
	}
	if len(bad) > 0 {
		p.failf(tok, ErrorKindSyntax, "Values should not be specified for key(s): [%s]", strings.Join(bad, ","))
	}
	return props
}

// partitionSpec is PARTITION '(' name [= constant], ... ')'. Without
// dynamic every column needs a value.
func (p *parser) partitionSpec(dynamic bool) PartitionSpec {
	defer p.enter("partitionSpec")()
	p.expectKeyword("PARTITION")
	p.expect('(')
	var spec PartitionSpec
	for {
		tok := p.peek()
		val := &PartitionVal{Name: p.identifier()}
		if p.accept('=') {
			val.Value = p.constant()
		} else if !dynamic {
			p.failf(tok, ErrorKindSyntax, "Found an empty partition key '%s'.", val.Name)
		}
		spec = append(spec, val)
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	return spec
}

// optPartitionSpec returns nil unless a PARTITION clause follows.
func (p *parser) optPartitionSpec(dynamic bool) PartitionSpec {
	if !p.peekKeyword("PARTITION") {
		return nil
	}
	return p.partitionSpec(dynamic)
}

// constant is a literal usable in partition specs and transforms.
func (p *parser) constant() Expr {
	defer p.enter("constant")()
	tok := p.peek()
	switch {
	case isKeywordToken(tok, "NULL"):
		p.next()
		return &NullLiteral{}
	case isKeywordToken(tok, "TRUE", "FALSE"):
		p.next()
		return &BooleanLiteral{Value: tok.Keyword == "TRUE"}
	case isKeywordToken(tok, "INTERVAL") && p.intervalValueAt(1):
		return p.interval()
	case tok.Kind == STRING:
		return p.stringConstant()
	case tok.Kind.IsNumber():
		return p.numberLiteral("")
	case tok.Kind == '-' && p.peekN(1).Kind.IsNumber():
		p.next()
		return p.numberLiteral("-")
	case tok.Kind == ID && p.peekN(1).Kind == STRING:
		return p.typedLiteral()
	}
	p.fail("constant")
	return nil
}

func (p *parser) constantStarts() bool {
	tok := p.peek()
	switch {
	case tok.Kind == STRING, tok.Kind.IsNumber():
		return true
	case tok.Kind == '-':
		return p.peekN(1).Kind.IsNumber()
	case isKeywordToken(tok, "NULL", "TRUE", "FALSE"):
		return true
	case isKeywordToken(tok, "INTERVAL"):
		return p.intervalValueAt(1)
	}
	return tok.Kind == ID && p.peekN(1).Kind == STRING
}

func (p *parser) constantList() []Expr {
	p.expect('(')
	values := []Expr{p.constant()}
	for p.accept(',') {
		values = append(values, p.constant())
	}
	p.expect(')')
	return values
}

func (p *parser) optString(keyword string) *string {
	if !p.acceptKeyword(keyword) {
		return nil
	}
	s := p.stringLiteral()
	return &s
}

// rowFormat parses ROW FORMAT SERDE|DELIMITED and returns nil when no ROW
// FORMAT clause follows.
func (p *parser) rowFormat() RowFormat {
	if !p.peekKeywords("ROW", "FORMAT") {
		return nil
	}
	defer p.enter("rowFormat")()
	p.pos += 2
	if p.acceptKeyword("SERDE") {
		serde := &RowFormatSerde{Name: p.stringLiteral()}
		if p.acceptKeywords("WITH", "SERDEPROPERTIES") {
			serde.Properties = p.tablePropertyList()
		}
		return serde
	}
	p.expectKeyword("DELIMITED")
	rf := &RowFormatDelimited{}
	if p.acceptKeywords("FIELDS", "TERMINATED", "BY") {
		s := p.stringLiteral()
		rf.FieldsTerminatedBy = &s
		if p.acceptKeywords("ESCAPED", "BY") {
			e := p.stringLiteral()
			rf.EscapedBy = &e
		}
	}
	if p.acceptKeywords("COLLECTION", "ITEMS", "TERMINATED", "BY") {
		s := p.stringLiteral()
		rf.CollectionItemsTerminatedBy = &s
	}
	if p.acceptKeywords("MAP", "KEYS", "TERMINATED", "BY") {
		s := p.stringLiteral()
		rf.MapKeysTerminatedBy = &s
	}
	if p.peekKeywords("LINES", "TERMINATED", "BY") {
		p.pos += 3
		tok := p.peek()
		s := p.stringLiteral()
		if s != "\n" {
			p.failf(tok, ErrorKindSyntax, "LINES TERMINATED BY only supports newline '\\n' right now: %s", s)
		}
		rf.LinesTerminatedBy = &s
	}
	if p.acceptKeywords("NULL", "DEFINED", "AS") {
		s := p.stringLiteral()
		rf.NullDefinedAs = &s
	}
	return rf
}

// fileFormat parses the part of a STORED clause after STORED.
func (p *parser) fileFormat() FileFormat {
	defer p.enter("createFileFormat")()
	if p.acceptKeyword("BY") {
		handler := &StorageHandler{Class: p.stringLiteral()}
		if p.acceptKeywords("WITH", "SERDEPROPERTIES") {
			handler.Properties = p.tablePropertyList()
		}
		return handler
	}
	p.expectKeyword("AS")
	if p.acceptKeyword("INPUTFORMAT") {
		classes := &FileFormatClasses{InputFormat: p.stringLiteral()}
		p.expectKeyword("OUTPUTFORMAT")
		classes.OutputFormat = p.stringLiteral()
		return classes
	}
	return &FileFormatName{Name: p.identifier()}
}

// validateRowFormat checks that a ROW FORMAT clause agrees with the STORED
// clause of the same statement.
func (p *parser) validateRowFormat(tok Token, rf RowFormat, ff FileFormat) {
	if rf == nil || ff == nil {
		return
	}
	switch ff := ff.(type) {
	case *FileFormatName:
		name := strings.ToLower(ff.Name)
		switch rf.(type) {
		case *RowFormatSerde:
			if name != "sequencefile" && name != "textfile" && name != "rcfile" {
				p.notAllowed(tok, "ROW FORMAT SERDE is incompatible with format '%s', which also specifies a serde", name)
			}
		case *RowFormatDelimited:
			if name != "textfile" {
				p.notAllowed(tok, "ROW FORMAT DELIMITED is only compatible with 'textfile', not '%s'", name)
			}
		}
	case *StorageHandler:
		p.notAllowed(tok, "Unexpected combination of %s and STORED BY", rowFormatName(rf))
	}
}

func rowFormatName(rf RowFormat) string {
	if _, ok := rf.(*RowFormatSerde); ok {
		return "ROW FORMAT SERDE"
	}
	return "ROW FORMAT DELIMITED"
}

// bucketSpec is CLUSTERED BY (cols) [SORTED BY (cols)] INTO n BUCKETS.
func (p *parser) bucketSpec() *BucketSpec {
	defer p.enter("bucketSpec")()
	p.expectKeywords("CLUSTERED", "BY")
	spec := &BucketSpec{Columns: p.identifierList()}
	if p.acceptKeywords("SORTED", "BY") {
		p.expect('(')
		for {
			col := &OrderedIdentifier{Name: p.identifier()}
			col.Direction = p.acceptAnyKeyword("ASC", "DESC")
			spec.SortColumns = append(spec.SortColumns, col)
			if !p.accept(',') {
				break
			}
		}
		p.expect(')')
	}
	p.expectKeyword("INTO")
	tok := p.peek()
	n, err := strconv.Atoi(p.integerLiteral())
	if err != nil {
		p.failf(tok, ErrorKindSyntax, "invalid number of buckets %s", tok.Text)
	}
	spec.Buckets = n
	p.expectKeyword("BUCKETS")
	return spec
}

// skewSpec is SKEWED BY (cols) ON (values) [STORED AS DIRECTORIES].
func (p *parser) skewSpec() *SkewSpec {
	defer p.enter("skewSpec")()
	p.expectKeywords("SKEWED", "BY")
	spec := &SkewSpec{Columns: p.identifierList()}
	p.expectKeyword("ON")
	p.expect('(')
	spec.Nested = p.peekKind('(')
	for {
		if spec.Nested {
			spec.Values = append(spec.Values, p.constantList())
		} else {
			spec.Values = append(spec.Values, []Expr{p.constant()})
		}
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	spec.StoredAsDirectories = p.acceptKeywords("STORED", "AS", "DIRECTORIES")
	return spec
}

// transformList is the data source PARTITIONED BY list.
func (p *parser) transformList() []Transform {
	defer p.enter("transformList")()
	p.expect('(')
	transforms := []Transform{p.transform()}
	for p.accept(',') {
		transforms = append(transforms, p.transform())
	}
	p.expect(')')
	return transforms
}

func (p *parser) transform() Transform {
	if !p.isIdentifierAt(0, false) || p.peekN(1).Kind != '(' {
		return &IdentityTransform{Column: p.qualifiedName()}
	}
	apply := &ApplyTransform{Name: p.identifier()}
	p.expect('(')
	for {
		if p.constantStarts() {
			apply.Args = append(apply.Args, p.constant())
		} else {
			apply.Args = append(apply.Args, nameExpr(p.qualifiedName()))
		}
		if !p.accept(',') {
			break
		}
	}
	p.expect(')')
	return apply
}

// nameExpr turns a dotted name into a column reference.
func nameExpr(name MultipartIdentifier) Expr {
	var e Expr = &ColumnRef{Name: name[0]}
	for _, field := range name[1:] {
		e = &Dereference{Base: e, Field: field}
	}
	return e
}

// createTableHeader is the part of CREATE TABLE up to the table name.
type createTableHeader struct {
	start       Token
	temporary   bool
	external    bool
	ifNotExists bool
	name        MultipartIdentifier
	nameTok     Token
}

func (p *parser) createTable(start Token) Statement {
	defer p.enter("createTable")()
	h := createTableHeader{start: start}
	h.temporary = p.acceptKeyword("TEMPORARY")
	h.external = p.acceptKeyword("EXTERNAL")
	p.expectKeyword("TABLE")
	h.ifNotExists = p.acceptKeywords("IF", "NOT", "EXISTS")
	h.nameTok = p.peek()
	h.name = p.multipartIdentifier()

	if p.peekKeyword("LIKE") && !h.temporary && !h.external {
		return p.createTableLike(h)
	}

	var columns []*ColumnDef
	if p.peekKind('(') && !p.parenStartsQuery(p.pos) {
		p.next()
		columns = p.colTypeList()
		p.expect(')')
	}
	if p.peekKeyword("USING") {
		return p.createDataSourceTable(h, columns)
	}
	return p.createHiveTable(h, columns)
}

// tableProvider is USING name.
func (p *parser) tableProvider() string {
	p.expectKeyword("USING")
	return strings.Join(p.multipartIdentifier(), ".")
}

// asQuery parses an optional [AS] query at the end of CREATE and REPLACE
// TABLE.
func (p *parser) asQuery() *Query {
	if p.acceptKeyword("AS") || p.queryStarts() {
		return p.query()
	}
	return nil
}

// dataSourceClauses parses the optional clauses of a data source table.
func (p *parser) dataSourceClauses(clauses *TableClauses) {
	seen := clauseSet{}
	for {
		tok := p.peek()
		switch {
		case p.peekKeyword("OPTIONS"):
			p.checkDuplicate(seen, tok, "OPTIONS")
			p.next()
			clauses.Options = p.propertiesWithValues(tok, p.tablePropertyList())
		case p.peekKeywords("PARTITIONED", "BY"):
			p.checkDuplicate(seen, tok, "PARTITIONED BY")
			p.pos += 2
			clauses.Partitioning = p.transformList()
		case p.peekKeywords("CLUSTERED", "BY"):
			p.checkDuplicate(seen, tok, "CLUSTERED BY")
			clauses.Bucket = p.bucketSpec()
		case p.peekKeyword("LOCATION"):
			p.checkDuplicate(seen, tok, "LOCATION")
			clauses.Location = p.optString("LOCATION")
		case p.peekKeyword("COMMENT"):
			p.checkDuplicate(seen, tok, "COMMENT")
			clauses.Comment = p.optString("COMMENT")
		case p.peekKeyword("TBLPROPERTIES"):
			p.checkDuplicate(seen, tok, "TBLPROPERTIES")
			p.next()
			clauses.Properties = p.propertiesWithValues(tok, p.tablePropertyList())
		default:
			return
		}
	}
}

func (p *parser) createDataSourceTable(h createTableHeader, columns []*ColumnDef) Statement {
	stmt := &CreateTable{IfNotExists: h.ifNotExists, Name: h.name, Columns: columns}
	stmt.Provider = p.tableProvider()
	p.dataSourceClauses(&stmt.TableClauses)
	stmt.AsQuery = p.asQuery()
	switch {
	case h.temporary:
		asSelect := ""
		if stmt.AsQuery != nil {
			asSelect = " AS ..."
		}
		p.notAllowed(h.start, "CREATE TEMPORARY TABLE ...%s, use CREATE TEMPORARY VIEW instead", asSelect)
	case h.external:
		p.notAllowed(h.start, "CREATE EXTERNAL TABLE ...")
	case stmt.AsQuery != nil && len(columns) > 0:
		p.notAllowed(h.start, "Schema may not be specified in a Create Table As Select (CTAS) statement")
	}
	return stmt
}

func (p *parser) createHiveTable(h createTableHeader, columns []*ColumnDef) Statement {
	stmt := &CreateTable{Hive: true, External: h.external, IfNotExists: h.ifNotExists, Name: h.name, Columns: columns}
	clauses := &stmt.TableClauses
	var rowFormatTok Token
	seen := clauseSet{}
loop:
	for {
		tok := p.peek()
		switch {
		case p.peekKeyword("COMMENT"):
			p.checkDuplicate(seen, tok, "COMMENT")
			clauses.Comment = p.optString("COMMENT")
		case p.peekKeywords("PARTITIONED", "BY"):
			p.checkDuplicate(seen, tok, "PARTITIONED BY")
			p.pos += 2
			p.expect('(')
			if p.typedColumnFollows() {
				clauses.PartitionColumns = p.colTypeList()
			} else {
				for _, name := range p.identifierSeq() {
					clauses.Partitioning = append(clauses.Partitioning, &IdentityTransform{Column: MultipartIdentifier{name}})
				}
			}
			p.expect(')')
		case p.peekKeywords("CLUSTERED", "BY"):
			p.checkDuplicate(seen, tok, "CLUSTERED BY")
			clauses.Bucket = p.bucketSpec()
		case p.peekKeywords("SKEWED", "BY"):
			p.checkDuplicate(seen, tok, "SKEWED BY")
			clauses.Skew = p.skewSpec()
		case p.peekKeywords("ROW", "FORMAT"):
			p.checkDuplicate(seen, tok, "ROW FORMAT")
			rowFormatTok = tok
			clauses.RowFormat = p.rowFormat()
		case p.peekKeyword("STORED"):
			p.checkDuplicate(seen, tok, "STORED AS/BY")
			p.next()
			clauses.FileFormat = p.fileFormat()
		case p.peekKeyword("LOCATION"):
			p.checkDuplicate(seen, tok, "LOCATION")
			clauses.Location = p.optString("LOCATION")
		case p.peekKeyword("TBLPROPERTIES"):
			p.checkDuplicate(seen, tok, "TBLPROPERTIES")
			p.next()
			clauses.Properties = p.propertiesWithValues(tok, p.tablePropertyList())
		default:
			break loop
		}
	}
	stmt.AsQuery = p.asQuery()

	switch {
	case h.temporary:
		p.notAllowed(h.start, "CREATE TEMPORARY TABLE is not supported yet. Please use CREATE TEMPORARY VIEW as an alternative.")
	case stmt.AsQuery != nil && len(columns) > 0:
		p.notAllowed(h.start, "Schema may not be specified in a Create Table As Select (CTAS) statement")
	case stmt.AsQuery != nil && len(clauses.PartitionColumns) > 0:
		p.notAllowed(h.start, "Partition column types may not be specified in Create Table As Select (CTAS)")
	case h.external && clauses.Location == nil:
		p.notAllowed(h.start, "CREATE EXTERNAL TABLE must be accompanied by LOCATION")
	}
	p.validateRowFormat(rowFormatTok, clauses.RowFormat, clauses.FileFormat)
	return stmt
}

func (p *parser) createTableLike(h createTableHeader) Statement {
	target := p.asTableIdentifier(h.nameTok, h.name)
	p.expectKeyword("LIKE")
	stmt := &CreateTableLike{IfNotExists: h.ifNotExists, Target: target, Source: p.tableIdentifier()}
	var rowFormatTok Token
	seen := clauseSet{}
	for {
		tok := p.peek()
		switch {
		case p.peekKeyword("USING"):
			p.checkDuplicate(seen, tok, "USING")
			stmt.Provider = p.tableProvider()
		case p.peekKeywords("ROW", "FORMAT"):
			p.checkDuplicate(seen, tok, "ROW FORMAT")
			rowFormatTok = tok
			stmt.RowFormat = p.rowFormat()
		case p.peekKeyword("STORED"):
			p.checkDuplicate(seen, tok, "STORED AS/BY")
			p.next()
			stmt.FileFormat = p.fileFormat()
		case p.peekKeyword("LOCATION"):
			p.checkDuplicate(seen, tok, "LOCATION")
			stmt.Location = p.optString("LOCATION")
		case p.peekKeyword("TBLPROPERTIES"):
			p.checkDuplicate(seen, tok, "TBLPROPERTIES")
			p.next()
			stmt.Properties = p.propertiesWithValues(tok, p.tablePropertyList())
		default:
			p.validateRowFormat(rowFormatTok, stmt.RowFormat, stmt.FileFormat)
			return stmt
		}
	}
}

// asTableIdentifier narrows a parsed name to [db.]table.
func (p *parser) asTableIdentifier(tok Token, name MultipartIdentifier) *TableIdentifier {
	switch len(name) {
	case 1:
		return &TableIdentifier{Name: name[0]}
	case 2:
		return &TableIdentifier{Database: name[0], Name: name[1]}
	}
	p.failf(tok, ErrorKindSyntax, "%s is not a valid TableIdentifier as it has more than 2 name parts.", String(name))
	return nil
}

// replaceTable parses [CREATE OR] REPLACE TABLE after TABLE.
func (p *parser) replaceTable(start Token, orCreate bool) Statement {
	defer p.enter("replaceTable")()
	stmt := &ReplaceTable{OrCreate: orCreate, Name: p.multipartIdentifier()}
	if p.peekKind('(') && !p.parenStartsQuery(p.pos) {
		p.next()
		stmt.Columns = p.colTypeList()
		p.expect(')')
	}
	stmt.Provider = p.tableProvider()
	p.dataSourceClauses(&stmt.TableClauses)
	stmt.AsQuery = p.asQuery()
	if stmt.AsQuery != nil && len(stmt.Columns) > 0 {
		p.notAllowed(start, "Schema may not be specified in a Replace Table As Select (RTAS) statement")
	}
	return stmt
}

// createView parses CREATE [OR REPLACE] [[GLOBAL] TEMPORARY] VIEW after
// VIEW, including the temporary view USING form.
func (p *parser) createView(start Token, replace, global, temporary bool) Statement {
	defer p.enter("createView")()
	ifNotExists := p.acceptKeywords("IF", "NOT", "EXISTS")
	nameTok := p.peek()
	name := p.multipartIdentifier()

	if temporary && !ifNotExists && p.tempViewUsingFollows() {
		stmt := &CreateTempViewUsing{Replace: replace, Global: global, Name: p.asTableIdentifier(nameTok, name)}
		if p.accept('(') {
			stmt.Columns = p.colTypeList()
			p.expect(')')
		}
		stmt.Provider = p.tableProvider()
		if p.peekKeyword("OPTIONS") {
			tok := p.next()
			stmt.Options = p.propertiesWithValues(tok, p.tablePropertyList())
		}
		return stmt
	}

	stmt := &CreateView{Replace: replace, Global: global, Temporary: temporary, IfNotExists: ifNotExists, Name: name}
	if p.peekKind('(') {
		p.next()
		for {
			col := &ViewColumn{Name: p.identifier()}
			col.Comment = p.optString("COMMENT")
			stmt.Columns = append(stmt.Columns, col)
			if !p.accept(',') {
				break
			}
		}
		p.expect(')')
	}
	seen := clauseSet{}
	for {
		tok := p.peek()
		if p.peekKeyword("COMMENT") {
			p.checkDuplicate(seen, tok, "COMMENT")
			stmt.Comment = p.optString("COMMENT")
			continue
		}
		if p.peekKeywords("PARTITIONED", "ON") {
			p.checkDuplicate(seen, tok, "PARTITIONED ON")
			p.notAllowed(tok, "CREATE VIEW ... PARTITIONED ON")
		}
		if p.peekKeyword("TBLPROPERTIES") {
			p.checkDuplicate(seen, tok, "TBLPROPERTIES")
			p.next()
			stmt.Properties = p.propertiesWithValues(tok, p.tablePropertyList())
			continue
		}
		break
	}
	p.expectKeyword("AS")
	stmt.Query = p.query()

	if ifNotExists && replace {
		p.failf(start, ErrorKindSyntax, "CREATE VIEW with both IF NOT EXISTS and REPLACE is not allowed.")
	}
	if ifNotExists && temporary {
		p.failf(start, ErrorKindSyntax, "It is not allowed to define a TEMPORARY view with IF NOT EXISTS.")
	}
	return stmt
}

// tempViewUsingFollows reports whether USING follows the optional column
// list at the cursor.
func (p *parser) tempViewUsingFollows() bool {
	i := p.pos
	if p.peekKind('(') {
		end := p.matchingParen(i)
		if end < 0 {
			return false
		}
		i = end + 1
	}
	return isKeywordToken(p.tokenAt(i), "USING")
}

// createFunction parses CREATE [OR REPLACE] [TEMPORARY] FUNCTION after
// FUNCTION.
func (p *parser) createFunction(start Token, replace, temporary bool) Statement {
	defer p.enter("createFunction")()
	stmt := &CreateFunction{Replace: replace, Temporary: temporary}
	stmt.IfNotExists = p.acceptKeywords("IF", "NOT", "EXISTS")
	stmt.Name = p.multipartIdentifier()
	p.expectKeyword("AS")
	stmt.Class = p.stringLiteral()
	if p.acceptKeyword("USING") {
		for {
			tok := p.peek()
			typ := p.identifier()
			switch strings.ToLower(typ) {
			case "jar", "file", "archive":
			default:
				p.notAllowed(tok, "CREATE FUNCTION with resource type '%s'", typ)
			}
			stmt.Resources = append(stmt.Resources, &FunctionResource{Type: strings.ToUpper(typ), URI: p.stringLiteral()})
			if !p.accept(',') {
				break
			}
		}
	}
	if stmt.IfNotExists && replace {
		p.failf(start, ErrorKindSyntax, "CREATE FUNCTION with both IF NOT EXISTS and REPLACE is not allowed.")
	}
	return stmt
}

var namespaceKeywords = []string{"DATABASE", "SCHEMA", "NAMESPACE"}

// createNamespace parses CREATE DATABASE|SCHEMA|NAMESPACE after the kind
// keyword.
func (p *parser) createNamespace(kind string) Statement {
	defer p.enter("createNamespace")()
	stmt := &CreateNamespace{Kind: kind}
	stmt.IfNotExists = p.acceptKeywords("IF", "NOT", "EXISTS")
	stmt.Name = p.multipartIdentifier()
	seen := clauseSet{}
	for {
		tok := p.peek()
		switch {
		case p.peekKeyword("COMMENT"):
			p.checkDuplicate(seen, tok, "COMMENT")
			stmt.Comment = p.optString("COMMENT")
		case p.peekKeyword("LOCATION"):
			p.checkDuplicate(seen, tok, "LOCATION")
			stmt.Location = p.optString("LOCATION")
		case p.peekKeywords("WITH", "DBPROPERTIES"), p.peekKeywords("WITH", "PROPERTIES"):
			keyword := p.peekN(1).Keyword
			p.checkDuplicate(seen, tok, "WITH "+keyword)
			if seen["WITH DBPROPERTIES"] && seen["WITH PROPERTIES"] {
				p.failf(tok, ErrorKindSyntax, "Either PROPERTIES or DBPROPERTIES is allowed.")
			}
			p.pos += 2
			stmt.PropertiesKeyword = keyword
			stmt.Properties = p.tablePropertyList()
		default:
			return stmt
		}
	}
}

func (p *parser) alterNamespace(kind string) Statement {
	defer p.enter("alterNamespace")()
	name := p.multipartIdentifier()
	p.expectKeyword("SET")
	if p.acceptKeyword("LOCATION") {
		return &SetNamespaceLocation{Kind: kind, Name: name, Location: p.stringLiteral()}
	}
	keyword := p.expectKeyword("DBPROPERTIES", "PROPERTIES")
	return &SetNamespaceProperties{Kind: kind, Name: name, PropertiesKeyword: keyword, Properties: p.tablePropertyList()}
}

func (p *parser) dropNamespace(kind string) Statement {
	stmt := &DropNamespace{Kind: kind}
	stmt.IfExists = p.acceptKeywords("IF", "EXISTS")
	stmt.Name = p.multipartIdentifier()
	stmt.Behavior = p.acceptAnyKeyword("RESTRICT", "CASCADE")
	return stmt
}

// create dispatches CREATE statements.
func (p *parser) create() Statement {
	start := p.next()
	replace := p.acceptKeywords("OR", "REPLACE")
	if replace && p.acceptKeyword("TABLE") {
		return p.replaceTable(start, true)
	}
	switch {
	case p.peekKeywords("GLOBAL", "TEMPORARY", "VIEW"):
		p.pos += 3
		return p.createView(start, replace, true, true)
	case p.peekKeywords("TEMPORARY", "VIEW"):
		p.pos += 2
		return p.createView(start, replace, false, true)
	case p.peekKeyword("VIEW"):
		p.next()
		return p.createView(start, replace, false, false)
	case p.peekKeywords("TEMPORARY", "FUNCTION"):
		p.pos += 2
		return p.createFunction(start, replace, true)
	case p.peekKeyword("FUNCTION"):
		p.next()
		return p.createFunction(start, replace, false)
	case replace:
		p.fail("TABLE", "VIEW", "FUNCTION")
	case p.peekKeyword(namespaceKeywords...):
		return p.createNamespace(p.next().Keyword)
	}
	return p.createTable(start)
}

// alter dispatches ALTER statements.
func (p *parser) alter() Statement {
	p.next()
	switch {
	case p.peekKeyword(namespaceKeywords...):
		return p.alterNamespace(p.next().Keyword)
	case p.acceptKeyword("VIEW"):
		return p.alterView()
	}
	p.expectKeyword("TABLE")
	return p.alterTable()
}

// unsupportedAlterTable lists the Hive ALTER TABLE forms that are
// recognized only to be rejected, keyed by the words following the table
// name or partition spec.
var unsupportedAlterTable = [][]string{
	{"NOT", "CLUSTERED"},
	{"NOT", "SORTED"},
	{"NOT", "SKEWED"},
	{"NOT", "STORED", "AS", "DIRECTORIES"},
	{"SET", "SKEWED", "LOCATION"},
	{"EXCHANGE", "PARTITION"},
	{"ARCHIVE", "PARTITION"},
	{"UNARCHIVE", "PARTITION"},
	{"TOUCH"},
	{"COMPACT"},
	{"CONCATENATE"},
	{"SET", "FILEFORMAT"},
	{"CLUSTERED", "BY"},
	{"SKEWED", "BY"},
}

func (p *parser) rejectUnsupportedAlterTable() {
	for _, words := range unsupportedAlterTable {
		matched := true
		for i, word := range words {
			if !isNamedToken(p.peekN(i), word) {
				matched = false
				break
			}
		}
		if matched {
			p.notAllowed(p.peek(), "ALTER TABLE %s", strings.Join(words, " "))
		}
	}
}

func (p *parser) alterView() Statement {
	defer p.enter("alterView")()
	name := p.multipartIdentifier()
	tok := p.peek()
	switch {
	case p.acceptKeywords("RENAME", "TO"):
		return &RenameTable{View: true, From: name, To: p.multipartIdentifier()}
	case p.acceptKeywords("SET", "TBLPROPERTIES"):
		return &SetTableProperties{View: true, Table: name, Properties: p.tablePropertyList()}
	case p.acceptKeywords("UNSET", "TBLPROPERTIES"):
		ifExists := p.acceptKeywords("IF", "EXISTS")
		return &UnsetTableProperties{View: true, Table: name, IfExists: ifExists, Properties: p.propertyKeysOnly(tok, p.tablePropertyList())}
	case p.peekKeyword("ADD"):
		p.notAllowed(tok, "ALTER VIEW ... ADD PARTITION")
	case p.peekKeyword("DROP"):
		p.notAllowed(tok, "ALTER VIEW ... DROP PARTITION")
	}
	p.acceptKeyword("AS")
	return &AlterViewQuery{Name: name, Query: p.query()}
}

func (p *parser) alterTable() Statement {
	defer p.enter("alterTable")()
	table := p.multipartIdentifier()
	p.rejectUnsupportedAlterTable()
	tok := p.peek()
	switch {
	case p.peekKeyword("ADD") && isKeywordToken(p.peekN(1), "COLUMN", "COLUMNS"):
		p.pos += 2
		return &AddColumns{Table: table, Columns: p.qualifiedColTypeList()}
	case p.acceptKeyword("ADD"):
		stmt := &AddPartitions{Table: table, IfNotExists: p.acceptKeywords("IF", "NOT", "EXISTS")}
		for p.peekKeyword("PARTITION") {
			part := &PartitionLocation{Spec: p.partitionSpec(false)}
			part.Location = p.optString("LOCATION")
			stmt.Partitions = append(stmt.Partitions, part)
		}
		if len(stmt.Partitions) == 0 {
			p.fail("PARTITION")
		}
		return stmt
	case p.acceptKeywords("RENAME", "COLUMN"):
		stmt := &RenameColumn{Table: table, From: p.multipartIdentifier()}
		p.expectKeyword("TO")
		stmt.To = p.errorCapturingIdentifier()
		return stmt
	case p.acceptKeywords("RENAME", "TO"):
		return &RenameTable{From: table, To: p.multipartIdentifier()}
	case p.peekKeyword("DROP") && isKeywordToken(p.peekN(1), "COLUMN", "COLUMNS"):
		p.pos += 2
		stmt := &DropColumns{Table: table}
		if p.accept('(') {
			stmt.Columns = p.multipartIdentifierList()
			p.expect(')')
		} else {
			stmt.Columns = p.multipartIdentifierList()
		}
		return stmt
	case p.acceptKeyword("DROP"):
		stmt := &DropPartitions{Table: table, IfExists: p.acceptKeywords("IF", "EXISTS")}
		stmt.Partitions = append(stmt.Partitions, p.partitionSpec(false))
		for p.accept(',') {
			stmt.Partitions = append(stmt.Partitions, p.partitionSpec(false))
		}
		stmt.Purge = p.acceptKeyword("PURGE")
		return stmt
	case p.acceptKeywords("SET", "TBLPROPERTIES"):
		return &SetTableProperties{Table: table, Properties: p.tablePropertyList()}
	case p.acceptKeywords("UNSET", "TBLPROPERTIES"):
		ifExists := p.acceptKeywords("IF", "EXISTS")
		return &UnsetTableProperties{Table: table, IfExists: ifExists, Properties: p.propertyKeysOnly(tok, p.tablePropertyList())}
	case p.acceptKeywords("RECOVER", "PARTITIONS"):
		return &RecoverPartitions{Table: table}
	case p.peekKeyword("PARTITION"):
		return p.alterTablePartition(table)
	}
	return p.alterTableChange(table, nil)
}

// alterTablePartition parses the ALTER TABLE forms that start with a
// partition spec.
func (p *parser) alterTablePartition(table MultipartIdentifier) Statement {
	spec := p.partitionSpec(false)
	p.rejectUnsupportedAlterTable()
	if p.acceptKeywords("RENAME", "TO") {
		return &RenamePartition{Table: table, From: spec, To: p.partitionSpec(false)}
	}
	return p.alterTableChange(table, spec)
}

// alterTableChange parses the column, SERDE and LOCATION changes that may
// follow an optional partition spec.
func (p *parser) alterTableChange(table MultipartIdentifier, partition PartitionSpec) Statement {
	tok := p.peek()
	switch {
	case p.peekKeywords("SET", "SERDE"):
		p.pos += 2
		serde := p.stringLiteral()
		stmt := &SetSerde{Table: table, Partition: partition, Serde: &serde}
		if p.acceptKeywords("WITH", "SERDEPROPERTIES") {
			stmt.Properties = p.tablePropertyList()
		}
		return stmt
	case p.acceptKeywords("SET", "SERDEPROPERTIES"):
		return &SetSerde{Table: table, Partition: partition, Properties: p.tablePropertyList()}
	case p.acceptKeywords("SET", "LOCATION"):
		return &SetLocation{Table: table, Partition: partition, Location: p.stringLiteral()}
	case p.acceptKeywords("REPLACE", "COLUMNS"):
		if partition != nil {
			p.notAllowed(tok, "ALTER TABLE table PARTITION partition_spec REPLACE COLUMNS")
		}
		cols := p.qualifiedColTypeList()
		for _, col := range cols {
			if col.Position != nil {
				p.notAllowed(tok, "Column position is not supported in Hive-style REPLACE COLUMNS")
			}
			if col.NotNull {
				p.notAllowed(tok, "NOT NULL is not supported in Hive-style REPLACE COLUMNS")
			}
		}
		return &ReplaceColumns{Table: table, Columns: cols}
	case p.peekKeyword("ALTER", "CHANGE"):
		return p.changeColumn(table, partition)
	}
	p.fail("ADD", "ALTER", "CHANGE", "DROP", "RENAME", "REPLACE", "SET", "UNSET", "RECOVER", "PARTITION")
	return nil
}

// changeColumn distinguishes ALTER COLUMN, which changes attributes of a
// column, from the Hive CHANGE COLUMN, which restates the whole column.
func (p *parser) changeColumn(table MultipartIdentifier, partition PartitionSpec) Statement {
	tok := p.next()
	hive := tok.Keyword == "CHANGE"
	p.acceptKeyword("COLUMN")
	column := p.multipartIdentifier()

	if !hive || p.alterColumnActionFollows() {
		if partition != nil {
			p.notAllowed(tok, "ALTER TABLE table PARTITION partition_spec ALTER COLUMN")
		}
		stmt := &AlterColumn{Table: table, Column: column}
		if p.acceptKeyword("TYPE") {
			stmt.Type = p.dataType()
		}
		stmt.Comment = p.optString("COMMENT")
		stmt.Position = p.colPosition()
		if stmt.Type == nil && stmt.Comment == nil && stmt.Position == nil {
			p.failf(tok, ErrorKindSyntax, "ALTER TABLE table ALTER COLUMN requires a TYPE or a COMMENT or a FIRST/AFTER")
		}
		return stmt
	}

	if partition != nil {
		p.notAllowed(tok, "ALTER TABLE table PARTITION partition_spec CHANGE COLUMN")
	}
	newCol := p.colType()
	if newCol.NotNull {
		p.notAllowed(tok, "NOT NULL is not supported in Hive-style change column")
	}
	return &HiveChangeColumn{Table: table, Partition: partition, Column: column, NewColumn: newCol, Position: p.colPosition()}
}

func (p *parser) alterColumnActionFollows() bool {
	return p.atStatementEnd() || p.peekKeyword("TYPE", "COMMENT", "FIRST", "AFTER")
}

func (p *parser) colPosition() *ColPosition {
	if p.acceptKeyword("FIRST") {
		return &ColPosition{First: true}
	}
	if p.acceptKeyword("AFTER") {
		return &ColPosition{After: p.errorCapturingIdentifier()}
	}
	return nil
}

// qualifiedColTypeList is a column list with or without parentheses.
func (p *parser) qualifiedColTypeList() []*QualifiedColType {
	paren := p.accept('(')
	cols := []*QualifiedColType{p.qualifiedColType()}
	for p.accept(',') {
		cols = append(cols, p.qualifiedColType())
	}
	if paren {
		p.expect(')')
	}
	return cols
}

func (p *parser) qualifiedColType() *QualifiedColType {
	col := &QualifiedColType{Name: p.multipartIdentifier()}
	col.Type = p.dataType()
	col.NotNull = p.acceptKeywords("NOT", "NULL")
	col.Comment = p.optString("COMMENT")
	col.Position = p.colPosition()
	return col
}

// drop dispatches DROP statements.
func (p *parser) drop() Statement {
	p.next()
	switch {
	case p.acceptKeyword("TABLE"):
		stmt := &DropTable{IfExists: p.acceptKeywords("IF", "EXISTS")}
		stmt.Name = p.multipartIdentifier()
		stmt.Purge = p.acceptKeyword("PURGE")
		return stmt
	case p.acceptKeyword("VIEW"):
		stmt := &DropView{IfExists: p.acceptKeywords("IF", "EXISTS")}
		stmt.Name = p.multipartIdentifier()
		return stmt
	case p.peekKeyword("FUNCTION") || p.peekKeywords("TEMPORARY", "FUNCTION"):
		stmt := &DropFunction{Temporary: p.acceptKeyword("TEMPORARY")}
		p.expectKeyword("FUNCTION")
		stmt.IfExists = p.acceptKeywords("IF", "EXISTS")
		stmt.Name = p.multipartIdentifier()
		return stmt
	case p.peekKeyword(namespaceKeywords...):
		return p.dropNamespace(p.next().Keyword)
	}
	p.fail("TABLE", "VIEW", "FUNCTION", "DATABASE", "SCHEMA", "NAMESPACE")
	return nil
}

// analyze parses ANALYZE TABLE ... COMPUTE STATISTICS.
func (p *parser) analyze() Statement {
	defer p.enter("analyze")()
	p.expectKeywords("ANALYZE", "TABLE")
	stmt := &Analyze{Table: p.multipartIdentifier(), Partition: p.optPartitionSpec(true)}
	p.expectKeyword("COMPUTE")
	if !isNamedToken(p.peek(), "STATISTICS") {
		p.fail("STATISTICS")
	}
	p.next()
	switch {
	case p.acceptKeywords("FOR", "ALL", "COLUMNS"):
		stmt.AllColumns = true
	case p.acceptKeywords("FOR", "COLUMNS"):
		stmt.Columns = p.identifierSeq()
	case p.isIdentifierAt(0, false):
		tok := p.next()
		if !isNamedToken(tok, "NOSCAN") {
			p.failf(tok, ErrorKindSyntax, "Expected `NOSCAN` instead of `%s`", tok.Value)
		}
		stmt.NoScan = true
	}
	return stmt
}

// dynamicPartitionNames lists the columns of spec without a value.
func dynamicPartitionNames(spec PartitionSpec) []string {
	var names []string
	for _, val := range spec {
		if val.Value == nil {
			names = append(names, val.Name)
		}
	}
	return names
}
