package parser

import (
	"strings"
	"unicode"
)

// unsupportedCommands lists Hive commands that are recognized only to be
// rejected.
var unsupportedCommands = [][]string{
	{"CREATE", "ROLE"},
	{"DROP", "ROLE"},
	{"GRANT"},
	{"REVOKE"},
	{"SHOW", "GRANT"},
	{"SHOW", "ROLE", "GRANT"},
	{"SHOW", "PRINCIPALS"},
	{"SHOW", "ROLES"},
	{"SHOW", "CURRENT", "ROLES"},
	{"EXPORT", "TABLE"},
	{"IMPORT", "TABLE"},
	{"SHOW", "COMPACTIONS"},
	{"SHOW", "TRANSACTIONS"},
	{"SHOW", "INDEXES"},
	{"SHOW", "LOCKS"},
	{"CREATE", "INDEX"},
	{"DROP", "INDEX"},
	{"ALTER", "INDEX"},
	{"LOCK", "TABLE"},
	{"LOCK", "DATABASE"},
	{"UNLOCK", "TABLE"},
	{"UNLOCK", "DATABASE"},
	{"CREATE", "TEMPORARY", "MACRO"},
	{"DROP", "TEMPORARY", "MACRO"},
	{"START", "TRANSACTION"},
	{"COMMIT"},
	{"ROLLBACK"},
	{"DFS"},
}

func (p *parser) rejectUnsupportedCommand() {
	for _, words := range unsupportedCommands {
		matched := true
		for i, word := range words {
			if !isNamedToken(p.peekN(i), word) {
				matched = false
				break
			}
		}
		if matched {
			p.notAllowed(p.peek(), "%s", strings.Join(words, " "))
		}
	}
}

// statement dispatches on the first keyword of a statement.
func (p *parser) statement() Statement {
	defer p.enter("statement")()
	p.rejectUnsupportedCommand()
	tok := p.peek()
	switch {
	case p.peekKeyword("WITH"):
		return p.withStatement()
	case p.peekKeyword("FROM"):
		return p.fromStatementOrInsert(nil)
	case p.peekKeyword("INSERT"):
		return p.insert(nil)
	case p.peekKeyword("DELETE"):
		return p.delete(nil)
	case p.peekKeyword("UPDATE"):
		return p.update(nil)
	case p.peekKeyword("MERGE"):
		return p.merge(nil)
	case p.queryStarts() || p.transformStarts():
		return p.query()
	case p.peekKeyword("USE"):
		p.next()
		namespace := p.peekKeyword("NAMESPACE") && p.isIdentifierAt(1, false)
		if namespace {
			p.next()
		}
		return &Use{Namespace: namespace, Name: p.multipartIdentifier()}
	case p.peekKeyword("CREATE"):
		return p.create()
	case p.peekKeyword("REPLACE"):
		start := p.next()
		p.expectKeyword("TABLE")
		return p.replaceTable(start, false)
	case p.peekKeyword("ALTER"):
		return p.alter()
	case p.peekKeyword("DROP"):
		return p.drop()
	case p.peekKeyword("ANALYZE"):
		return p.analyze()
	case p.peekKeyword("EXPLAIN"):
		return p.explain()
	case p.peekKeyword("SHOW"):
		return p.show()
	case p.peekKeyword("DESC", "DESCRIBE"):
		return p.describe()
	case p.peekKeywords("COMMENT", "ON"):
		return p.commentOn()
	case p.peekKeyword("REFRESH"):
		return p.refresh()
	case p.peekKeyword("CACHE"):
		return p.cacheTable()
	case p.acceptKeywords("UNCACHE", "TABLE"):
		stmt := &UncacheTable{IfExists: p.acceptKeywords("IF", "EXISTS")}
		stmt.Name = p.multipartIdentifier()
		return stmt
	case p.acceptKeywords("CLEAR", "CACHE"):
		return &ClearCache{}
	case p.peekKeyword("LOAD"):
		return p.loadData()
	case p.acceptKeywords("TRUNCATE", "TABLE"):
		return &TruncateTable{Table: p.multipartIdentifier(), Partition: p.optPartitionSpec(false)}
	case p.acceptKeywords("MSCK", "REPAIR", "TABLE"):
		return &RepairTable{Table: p.multipartIdentifier()}
	case p.peekKeyword("ADD", "LIST"):
		return p.manageResource()
	case p.peekKeyword("SET"):
		return p.set()
	case p.peekKeyword("RESET"):
		p.next()
		return &ResetConfiguration{Key: p.remainder()}
	}
	if tok.Kind == EOF {
		p.fail("statement")
	}
	p.fail("SELECT", "WITH", "FROM", "INSERT", "CREATE", "ALTER", "DROP", "SHOW", "DESCRIBE", "SET")
	return nil
}

// withStatement parses the statements that may follow a WITH clause.
func (p *parser) withStatement() Statement {
	with := p.ctes()
	switch {
	case p.peekKeyword("INSERT"):
		return p.insert(with)
	case p.peekKeyword("FROM"):
		return p.fromStatementOrInsert(with)
	case p.peekKeyword("DELETE"):
		return p.delete(with)
	case p.peekKeyword("UPDATE"):
		return p.update(with)
	case p.peekKeyword("MERGE"):
		return p.merge(with)
	}
	return p.queryWith(with)
}

// fromStatementOrInsert parses a statement that starts with FROM: either a
// multi-insert or a query made of SELECT bodies.
func (p *parser) fromStatementOrInsert(with *With) Statement {
	from := p.fromClause()
	if !p.peekKeyword("INSERT") {
		q := &Query{With: with, Body: p.queryTermRest(p.fromStatement(from), 1)}
		p.queryOrganization(&q.QueryOrganization)
		return q
	}
	stmt := &MultiInsert{With: with, From: from}
	for p.peekKeyword("INSERT") {
		body := &InsertBody{Target: p.insertInto()}
		query := &Query{}
		if p.transformStarts() {
			query.Body = p.transformQuery(false)
		} else {
			query.Body = p.selectQuery(false)
		}
		p.queryOrganization(&query.QueryOrganization)
		body.Query = query
		stmt.Inserts = append(stmt.Inserts, body)
	}
	return stmt
}

func (p *parser) insert(with *With) Statement {
	defer p.enter("insert")()
	stmt := &Insert{With: with, Target: p.insertInto()}
	stmt.Query = p.queryWith(nil)
	return stmt
}

// insertInto parses the INSERT INTO|OVERWRITE head of an insert.
func (p *parser) insertInto() InsertTarget {
	defer p.enter("insertInto")()
	p.expectKeyword("INSERT")
	tok := p.peek()
	overwrite := p.expectKeyword("INTO", "OVERWRITE") == "OVERWRITE"
	if overwrite && (p.peekKeyword("DIRECTORY") || p.peekKeywords("LOCAL", "DIRECTORY")) {
		return p.insertOverwriteDir()
	}
	if p.peekKeyword("TABLE") && p.isIdentifierAt(1, false) {
		p.next()
	}
	target := &InsertIntoTable{Overwrite: overwrite, Table: p.multipartIdentifier()}
	target.Partition = p.optPartitionSpec(true)
	if p.peekKeywords("IF", "NOT", "EXISTS") {
		ifTok := p.peek()
		p.pos += 3
		if !overwrite {
			p.notAllowed(tok, "INSERT INTO ... IF NOT EXISTS")
		}
		if names := dynamicPartitionNames(target.Partition); len(names) > 0 {
			p.notAllowed(ifTok, "IF NOT EXISTS with dynamic partitions: %s", strings.Join(names, ", "))
		}
		target.IfNotExists = true
	}
	return target
}

func (p *parser) insertOverwriteDir() InsertTarget {
	start := p.peek()
	dir := &InsertOverwriteDir{Local: p.acceptKeyword("LOCAL")}
	p.expectKeyword("DIRECTORY")
	if p.peekKind(STRING) {
		path := p.stringLiteral()
		dir.Path = &path
	}
	if !p.peekKeyword("USING") {
		if dir.Path == nil {
			p.fail("STRING")
		}
		dir.RowFormat = p.rowFormat()
		if p.acceptKeyword("STORED") {
			dir.FileFormat = p.fileFormat()
		}
		p.validateRowFormat(start, dir.RowFormat, dir.FileFormat)
		return dir
	}
	dir.Provider = p.tableProvider()
	if p.peekKeyword("OPTIONS") {
		tok := p.next()
		dir.Options = p.propertiesWithValues(tok, p.tablePropertyList())
	}
	if dir.Local {
		p.notAllowed(start, "LOCAL is not supported in INSERT OVERWRITE DIRECTORY to data source")
	}
	_, optionPath := dir.Options.Get("path")
	if (dir.Path != nil) == optionPath {
		p.failf(start, ErrorKindSyntax, "Directory path and 'path' in OPTIONS should be specified one, but not both")
	}
	return dir
}

// dmlAlias parses the alias of a DELETE, UPDATE or MERGE target, which
// may not carry a column list.
func (p *parser) dmlAlias(op string) *TableAlias {
	tok := p.peek()
	alias := p.tableAlias()
	if alias != nil && len(alias.Columns) > 0 {
		p.failf(tok, ErrorKindSyntax, "Columns aliases are not allowed in %s.", op)
	}
	return alias
}

func (p *parser) delete(with *With) Statement {
	defer p.enter("delete")()
	p.expectKeywords("DELETE", "FROM")
	stmt := &Delete{With: with, Table: p.multipartIdentifier()}
	stmt.Alias = p.dmlAlias("DELETE")
	if p.acceptKeyword("WHERE") {
		stmt.Where = p.booleanExpression()
	}
	return stmt
}

func (p *parser) update(with *With) Statement {
	defer p.enter("update")()
	p.expectKeyword("UPDATE")
	stmt := &Update{With: with, Table: p.multipartIdentifier()}
	stmt.Alias = p.dmlAlias("UPDATE")
	p.expectKeyword("SET")
	stmt.Assignments = p.assignmentList()
	if p.acceptKeyword("WHERE") {
		stmt.Where = p.booleanExpression()
	}
	return stmt
}

func (p *parser) assignmentList() []*Assignment {
	var list []*Assignment
	for {
		a := &Assignment{Column: p.multipartIdentifier()}
		p.expect('=')
		a.Value = p.expression()
		list = append(list, a)
		if !p.accept(',') {
			return list
		}
	}
}

func (p *parser) merge(with *With) Statement {
	defer p.enter("merge")()
	start := p.peek()
	p.expectKeywords("MERGE", "INTO")
	stmt := &Merge{With: with, Target: p.multipartIdentifier()}
	stmt.TargetAlias = p.dmlAlias("MERGE")
	p.expectKeyword("USING")
	if p.accept('(') {
		stmt.SourceQuery = p.query()
		p.expect(')')
	} else {
		stmt.SourceTable = p.multipartIdentifier()
	}
	stmt.SourceAlias = p.dmlAlias("MERGE")
	p.expectKeyword("ON")
	stmt.On = p.booleanExpression()

	var matched, notMatched []*MergeClause
	for p.peekKeyword("WHEN") {
		clause := p.mergeClause()
		if clause.Matched {
			if len(notMatched) > 0 {
				p.fail("WHEN NOT MATCHED")
			}
			matched = append(matched, clause)
		} else {
			notMatched = append(notMatched, clause)
		}
		stmt.Clauses = append(stmt.Clauses, clause)
	}
	if len(stmt.Clauses) == 0 {
		p.failf(start, ErrorKindSyntax, "There must be at least one WHEN clause in a MERGE statement")
	}
	for i, clause := range matched {
		if clause.Condition == nil && i < len(matched)-1 {
			p.failf(start, ErrorKindSyntax, "When there are more than one MATCHED clauses in a MERGE statement, only the last MATCHED clause can omit the condition.")
		}
	}
	for i, clause := range notMatched {
		if clause.Condition == nil && i < len(notMatched)-1 {
			p.failf(start, ErrorKindSyntax, "When there are more than one NOT MATCHED clauses in a MERGE statement, only the last NOT MATCHED clause can omit the condition.")
		}
	}
	return stmt
}

func (p *parser) mergeClause() *MergeClause {
	p.expectKeyword("WHEN")
	clause := &MergeClause{Matched: !p.acceptKeyword("NOT")}
	p.expectKeyword("MATCHED")
	if p.acceptKeyword("AND") {
		clause.Condition = p.booleanExpression()
	}
	p.expectKeyword("THEN")
	action := &MergeAction{}
	switch {
	case clause.Matched && p.acceptKeyword("DELETE"):
		action.Kind = MergeDelete
	case clause.Matched && p.acceptKeyword("UPDATE"):
		action.Kind = MergeUpdate
		p.expectKeyword("SET")
		if p.accept('*') {
			action.Star = true
		} else {
			action.Assignments = p.assignmentList()
		}
	case !clause.Matched && p.acceptKeyword("INSERT"):
		action.Kind = MergeInsert
		if p.accept('*') {
			action.Star = true
			break
		}
		p.expect('(')
		action.Columns = p.multipartIdentifierList()
		p.expect(')')
		p.expectKeyword("VALUES")
		p.expect('(')
		action.Values = p.expressionSeq()
		p.expect(')')
	default:
		if clause.Matched {
			p.fail("DELETE", "UPDATE")
		}
		p.fail("INSERT")
	}
	clause.Action = action
	return clause
}

var explainModes = []string{"LOGICAL", "FORMATTED", "EXTENDED", "CODEGEN", "COST"}

func (p *parser) explain() Statement {
	p.expectKeyword("EXPLAIN")
	tok := p.peek()
	stmt := &Explain{}
	if p.peekKeyword(explainModes...) && !p.atStatementEndAt(1) {
		stmt.Mode = p.next().Keyword
	}
	if stmt.Mode == "LOGICAL" {
		p.notAllowed(tok, "EXPLAIN LOGICAL")
	}
	stmt.Statement = p.statement()
	return stmt
}

func (p *parser) atStatementEndAt(n int) bool {
	kind := p.peekN(n).Kind
	return kind == EOF || kind == ';'
}

// inNamespace parses an optional (FROM|IN) namespace.
func (p *parser) inNamespace() MultipartIdentifier {
	if p.acceptAnyKeyword("FROM", "IN") == "" {
		return nil
	}
	return p.multipartIdentifier()
}

// likePattern parses an optional [LIKE] 'pattern'.
func (p *parser) likePattern() *string {
	p.acceptKeyword("LIKE")
	if !p.peekKind(STRING) {
		return nil
	}
	pattern := p.stringLiteral()
	return &pattern
}

func (p *parser) show() Statement {
	defer p.enter("show")()
	p.expectKeyword("SHOW")
	switch {
	case p.acceptKeyword("TABLES"):
		stmt := &ShowTables{Namespace: p.inNamespace()}
		stmt.Pattern = p.likePattern()
		return stmt
	case p.acceptKeywords("TABLE", "EXTENDED"):
		stmt := &ShowTableExtended{Namespace: p.inNamespace()}
		p.expectKeyword("LIKE")
		stmt.Pattern = p.stringLiteral()
		stmt.Partition = p.optPartitionSpec(false)
		return stmt
	case p.acceptKeyword("TBLPROPERTIES"):
		stmt := &ShowTblProperties{Table: p.multipartIdentifier()}
		if p.accept('(') {
			key := p.tablePropertyKey()
			stmt.Key = &key
			p.expect(')')
		}
		return stmt
	case p.peekKeyword("COLUMNS"):
		tok := p.next()
		p.expectKeyword("FROM", "IN")
		stmt := &ShowColumns{Table: p.multipartIdentifier()}
		stmt.Namespace = p.inNamespace()
		if stmt.Namespace != nil && len(stmt.Table) > 1 {
			db := stmt.Table[:len(stmt.Table)-1]
			if !equalNames(db, stmt.Namespace) {
				p.failf(tok, ErrorKindSyntax, "SHOW COLUMNS with conflicting databases: '%s' != '%s'", strings.Join(db, "."), strings.Join(stmt.Namespace, "."))
			}
		}
		return stmt
	case p.acceptKeyword("VIEWS"):
		stmt := &ShowViews{Namespace: p.inNamespace()}
		stmt.Pattern = p.likePattern()
		return stmt
	case p.acceptKeyword("PARTITIONS"):
		return &ShowPartitions{Table: p.multipartIdentifier(), Partition: p.optPartitionSpec(false)}
	case p.acceptKeywords("CREATE", "TABLE"):
		stmt := &ShowCreateTable{Table: p.multipartIdentifier()}
		stmt.AsSerde = p.acceptKeywords("AS", "SERDE")
		return stmt
	case p.acceptKeywords("CURRENT", "NAMESPACE"):
		return &ShowCurrentNamespace{}
	case p.peekKeyword("DATABASES", "NAMESPACES"):
		stmt := &ShowNamespaces{Kind: p.next().Keyword}
		stmt.Namespace = p.inNamespace()
		stmt.Pattern = p.likePattern()
		return stmt
	case p.peekKeyword("FUNCTIONS") || isKeywordToken(p.peekN(1), "FUNCTIONS"):
		return p.showFunctions()
	}
	p.fail("TABLES", "TABLE", "TBLPROPERTIES", "COLUMNS", "VIEWS", "PARTITIONS", "FUNCTIONS", "CREATE", "CURRENT", "DATABASES", "NAMESPACES")
	return nil
}

func (p *parser) showFunctions() Statement {
	stmt := &ShowFunctions{}
	if !p.peekKeyword("FUNCTIONS") {
		tok := p.next()
		scope := strings.ToUpper(tok.Value)
		switch scope {
		case "USER", "SYSTEM", "ALL":
		default:
			p.failf(tok, ErrorKindSyntax, "SHOW %s FUNCTIONS not supported", tok.Value)
		}
		stmt.Scope = scope
	}
	p.expectKeyword("FUNCTIONS")
	p.acceptKeyword("LIKE")
	switch {
	case p.peekKind(STRING):
		pattern := p.stringLiteral()
		stmt.Pattern = &pattern
	case p.isIdentifierAt(0, false):
		stmt.Name = p.multipartIdentifier()
	}
	return stmt
}

func equalNames(a, b MultipartIdentifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (p *parser) describe() Statement {
	defer p.enter("describe")()
	p.expectKeyword("DESC", "DESCRIBE")
	switch {
	case p.acceptKeyword("FUNCTION"):
		return p.describeFunction()
	case p.peekKeyword(namespaceKeywords...):
		stmt := &DescribeNamespace{Kind: p.next().Keyword}
		stmt.Extended = p.acceptKeyword("EXTENDED")
		stmt.Name = p.multipartIdentifier()
		return stmt
	case p.acceptKeyword("QUERY"):
		return &DescribeQuery{Query: p.query()}
	case p.peekKeyword("TABLE") && p.isIdentifierAt(1, false):
		// DESCRIBE TABLE names a relation; TABLE t as a query needs QUERY.
		p.next()
	case p.queryStarts() || p.transformStarts():
		return &DescribeQuery{Query: p.query()}
	}
	stmt := &DescribeRelation{}
	if p.peekKeyword("EXTENDED", "FORMATTED") && p.isIdentifierAt(1, false) {
		stmt.Option = p.next().Keyword
	}
	stmt.Table = p.multipartIdentifier()
	partTok := p.peek()
	stmt.Partition = p.optPartitionSpec(false)
	if !p.atStatementEnd() {
		stmt.Column = p.qualifiedName()
		if stmt.Partition != nil {
			p.notAllowed(partTok, "DESC TABLE COLUMN for a specific partition")
		}
	}
	return stmt
}

// describeOperators are the operator names DESCRIBE FUNCTION accepts.
var describeOperators = map[TokenKind]string{
	'=': "=", '<': "<", '>': ">", LTE: "<=", GTE: ">=", NEQ: "<>", NEQJ: "!=", NSEQ: "<=>",
	'+': "+", '-': "-", '*': "*", '/': "/", '%': "%", '&': "&", '|': "|", '^': "^",
	'~': "~", '!': "!", CONCAT_PIPE: "||",
}

func (p *parser) describeFunction() Statement {
	stmt := &DescribeFunction{}
	if p.peekKeyword("EXTENDED") && !p.atStatementEndAt(1) {
		p.next()
		stmt.Extended = true
	}
	tok := p.peek()
	switch {
	case tok.Kind == STRING:
		literal := p.stringLiteral()
		stmt.Literal = &literal
	case describeOperators[tok.Kind] != "":
		p.next()
		stmt.Operator = describeOperators[tok.Kind]
	case isKeywordToken(tok, "AND", "OR", "IN", "NOT", "DIV") && p.peekN(1).Kind != '.':
		p.next()
		stmt.Operator = tok.Keyword
	default:
		stmt.Name = p.qualifiedName()
	}
	return stmt
}

func (p *parser) commentOn() Statement {
	p.expectKeywords("COMMENT", "ON")
	var kind string
	if p.peekKeyword(namespaceKeywords...) {
		kind = p.next().Keyword
	} else {
		p.expectKeyword("TABLE")
	}
	name := p.multipartIdentifier()
	p.expectKeyword("IS")
	var comment *string
	if !p.acceptKeyword("NULL") {
		s := p.stringLiteral()
		comment = &s
	}
	if kind != "" {
		return &CommentOnNamespace{Kind: kind, Name: name, Comment: comment}
	}
	return &CommentOnTable{Name: name, Comment: comment}
}

func (p *parser) refresh() Statement {
	start := p.next()
	switch {
	case p.peekKeyword("TABLE") && p.isIdentifierAt(1, false):
		p.next()
		return &RefreshTable{Name: p.multipartIdentifier()}
	case p.peekKeyword("FUNCTION") && p.isIdentifierAt(1, false):
		p.next()
		return &RefreshFunction{Name: p.multipartIdentifier()}
	case p.peekKind(STRING) && p.atStatementEndAt(1):
		return &RefreshResource{Path: p.stringLiteral(), Quoted: true}
	}
	path := p.remainder()
	if path == "" {
		p.failf(start, ErrorKindSyntax, "Resource paths cannot be empty in REFRESH statements. Use / to match everything")
	}
	if strings.IndexFunc(path, unicode.IsSpace) >= 0 {
		p.failf(start, ErrorKindSyntax, "REFRESH statements cannot contain ' ', '\\n', '\\r', '\\t' inside unquoted resource paths")
	}
	return &RefreshResource{Path: path}
}

func (p *parser) cacheTable() Statement {
	defer p.enter("cacheTable")()
	p.expectKeyword("CACHE")
	stmt := &CacheTable{Lazy: p.acceptKeyword("LAZY")}
	p.expectKeyword("TABLE")
	nameTok := p.peek()
	stmt.Name = p.multipartIdentifier()
	if p.peekKeyword("OPTIONS") {
		tok := p.next()
		stmt.Options = p.propertiesWithValues(tok, p.tablePropertyList())
	}
	if p.acceptKeyword("AS") || p.queryStarts() {
		stmt.Query = p.query()
		if len(stmt.Name) > 1 {
			p.failf(nameTok, ErrorKindSyntax, "It is not allowed to add database prefix `%s` to the table name in CACHE TABLE AS SELECT",
				strings.Join(stmt.Name[:len(stmt.Name)-1], "."))
		}
	}
	return stmt
}

func (p *parser) loadData() Statement {
	defer p.enter("loadData")()
	p.expectKeywords("LOAD", "DATA")
	stmt := &LoadData{Local: p.acceptKeyword("LOCAL")}
	p.expectKeyword("INPATH")
	stmt.Path = p.stringLiteral()
	stmt.Overwrite = p.acceptKeyword("OVERWRITE")
	p.expectKeywords("INTO", "TABLE")
	stmt.Table = p.multipartIdentifier()
	stmt.Partition = p.optPartitionSpec(false)
	return stmt
}

// manageResource parses ADD|LIST FILE|JAR|ARCHIVE followed by raw paths.
func (p *parser) manageResource() Statement {
	op := p.next().Keyword
	tok := p.peek()
	typ := strings.ToLower(p.identifier())
	switch {
	case op == "ADD" && (typ == "file" || typ == "jar" || typ == "archive"):
	case op == "LIST" && (typ == "file" || typ == "files" || typ == "jar" || typ == "jars" || typ == "archive" || typ == "archives"):
	default:
		p.notAllowed(tok, "%s with resource type '%s'", op, typ)
	}
	return &ManageResource{Op: op, Type: typ, Paths: p.remainder()}
}

// set parses SET TIME ZONE and the raw SET key=value forms.
func (p *parser) set() Statement {
	start := p.next()
	if p.acceptKeywords("TIME", "ZONE") {
		tok := p.peek()
		switch {
		case p.acceptKeyword("LOCAL"):
			return &SetTimeZone{Local: true}
		case tok.Kind == STRING:
			zone := p.stringLiteral()
			return &SetTimeZone{Zone: &zone}
		case isKeywordToken(tok, "INTERVAL"):
			if lit, ok := p.interval().(*IntervalLiteral); ok {
				return &SetTimeZone{Interval: lit}
			}
		}
		p.failf(tok, ErrorKindSyntax, "Invalid time zone displacement value")
	}
	raw := p.remainder()
	stmt := &SetConfiguration{}
	switch {
	case raw == "-v":
		stmt.Verbose = true
	case raw == "":
	default:
		key, value, found := strings.Cut(raw, "=")
		stmt.Key = strings.TrimSpace(key)
		if stmt.Key == "" {
			p.failf(start, ErrorKindSyntax, "Expected format is 'SET', 'SET key', or 'SET key=value'.")
		}
		if found {
			value = strings.TrimSpace(value)
			stmt.Value = &value
		}
	}
	return stmt
}
