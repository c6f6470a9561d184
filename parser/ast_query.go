package parser

func (*Select) iSelectStatement()          {}
func (*TransformSelect) iSelectStatement() {}
func (*SetOperation) iSelectStatement()    {}
func (*TableQuery) iSelectStatement()      {}
func (*InlineTable) iSelectStatement()     {}
func (*ParenQuery) iSelectStatement()      {}
func (*FromStatement) iSelectStatement()   {}

func (*TableName) iTableExpr()       {}
func (*AliasedQuery) iTableExpr()    {}
func (*AliasedRelation) iTableExpr() {}
func (*InlineTable) iTableExpr()     {}
func (*TableFunction) iTableExpr()   {}
func (*Join) iTableExpr()            {}

func (*WindowRef) iWindowSpec() {}
func (*WindowDef) iWindowSpec() {}

// Query is a query body with its optional common table expressions and
// trailing ORDER BY / LIMIT style clauses.
type Query struct {
	With *With
	Body SelectStatement
	QueryOrganization
}

func (node *Query) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v%v", node.With, node.Body)
	node.QueryOrganization.Format(buf)
}

// QueryOrganization holds the clauses that follow a query term.
type QueryOrganization struct {
	OrderBy      []*SortItem
	ClusterBy    []Expr
	DistributeBy []Expr
	SortBy       []*SortItem
	Windows      []*NamedWindow
	Limit        Expr
	LimitAll     bool
}

// IsEmpty reports whether none of the clauses is present.
func (node *QueryOrganization) IsEmpty() bool {
	return len(node.OrderBy) == 0 && len(node.ClusterBy) == 0 && len(node.DistributeBy) == 0 &&
		len(node.SortBy) == 0 && len(node.Windows) == 0 && node.Limit == nil && !node.LimitAll
}

// Format prints each present clause preceded by a space.
func (node *QueryOrganization) Format(buf *TrackedBuffer) {
	if len(node.OrderBy) > 0 {
		buf.WriteString(" ORDER BY ")
		formatNodes(buf, ", ", node.OrderBy)
	}
	if len(node.ClusterBy) > 0 {
		buf.WriteString(" CLUSTER BY ")
		formatNodes(buf, ", ", node.ClusterBy)
	}
	if len(node.DistributeBy) > 0 {
		buf.WriteString(" DISTRIBUTE BY ")
		formatNodes(buf, ", ", node.DistributeBy)
	}
	if len(node.SortBy) > 0 {
		buf.WriteString(" SORT BY ")
		formatNodes(buf, ", ", node.SortBy)
	}
	if len(node.Windows) > 0 {
		buf.WriteString(" WINDOW ")
		formatNodes(buf, ", ", node.Windows)
	}
	if node.LimitAll {
		buf.WriteString(" LIMIT ALL")
	} else if node.Limit != nil {
		buf.Myprintf(" LIMIT %v", node.Limit)
	}
}

// SortItem is an ORDER BY / SORT BY element.
type SortItem struct {
	Expr      Expr
	Direction string
	Nulls     string
}

func (node *SortItem) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Expr)
	if node.Direction != "" {
		buf.Myprintf(" %s", node.Direction)
	}
	if node.Nulls != "" {
		buf.Myprintf(" NULLS %s", node.Nulls)
	}
}

// With is a WITH clause. Format prints a trailing space.
type With struct {
	CTEs []*CommonTableExpr
}

func (node *With) Format(buf *TrackedBuffer) {
	buf.WriteString("WITH ")
	formatNodes(buf, ", ", node.CTEs)
	buf.WriteByte(' ')
}

// CommonTableExpr is name [(columns)] AS (query).
type CommonTableExpr struct {
	Name    string
	Columns []string
	Query   *Query
}

func (node *CommonTableExpr) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	if len(node.Columns) > 0 {
		buf.WriteString(" (")
		buf.printIdents(node.Columns)
		buf.WriteByte(')')
	}
	buf.Myprintf(" AS (%v)", node.Query)
}

// Hint is one statement of a /*+ ... */ hint block.
type Hint struct {
	Name   string
	Params []Expr
}

func (node *Hint) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	if len(node.Params) > 0 {
		buf.WriteByte('(')
		for i, param := range node.Params {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.printOperand(param, precPrimary)
		}
		buf.WriteByte(')')
	}
}

func (buf *TrackedBuffer) printHints(hints []*Hint) {
	if len(hints) == 0 {
		return
	}
	buf.WriteString("/*+ ")
	formatNodes(buf, ", ", hints)
	buf.WriteString(" */ ")
}

// Select represents a SELECT query specification. From is nil for a
// SELECT without FROM and for the bodies of FROM ... SELECT statements.
type Select struct {
	Hints        []*Hint
	Quantifier   string
	Exprs        []*NamedExpr
	From         *FromClause
	LateralViews []*LateralView
	Where        Expr
	GroupBy      *GroupBy
	Having       Expr
	Windows      []*NamedWindow
}

func (node *Select) Format(buf *TrackedBuffer) {
	buf.WriteString("SELECT ")
	buf.printHints(node.Hints)
	if node.Quantifier != "" {
		buf.Myprintf("%s ", node.Quantifier)
	}
	formatNodes(buf, ", ", node.Exprs)
	if node.From != nil {
		buf.Myprintf(" %v", node.From)
	}
	for _, view := range node.LateralViews {
		buf.Myprintf(" %v", view)
	}
	if node.Where != nil {
		buf.Myprintf(" WHERE %v", node.Where)
	}
	if node.GroupBy != nil {
		buf.Myprintf(" %v", node.GroupBy)
	}
	if node.Having != nil {
		buf.Myprintf(" HAVING %v", node.Having)
	}
	if len(node.Windows) > 0 {
		buf.WriteString(" WINDOW ")
		formatNodes(buf, ", ", node.Windows)
	}
}

// FromClause is FROM relation, ... [LATERAL VIEW ...] [PIVOT (...)].
type FromClause struct {
	Relations    []TableExpr
	LateralViews []*LateralView
	Pivot        *Pivot
}

func (node *FromClause) Format(buf *TrackedBuffer) {
	buf.WriteString("FROM ")
	formatNodes(buf, ", ", node.Relations)
	for _, view := range node.LateralViews {
		buf.Myprintf(" %v", view)
	}
	if node.Pivot != nil {
		buf.Myprintf(" %v", node.Pivot)
	}
}

// Kinds of GroupBy.
const (
	GroupByRollup       = "ROLLUP"
	GroupByCube         = "CUBE"
	GroupByGroupingSets = "GROUPING SETS"
)

// GroupBy is a GROUP BY clause. Sets is only used with GROUPING SETS.
type GroupBy struct {
	Exprs []Expr
	Kind  string
	Sets  [][]Expr
}

func (node *GroupBy) Format(buf *TrackedBuffer) {
	buf.WriteString("GROUP BY")
	if len(node.Exprs) > 0 {
		buf.WriteByte(' ')
		formatNodes(buf, ", ", node.Exprs)
	}
	switch node.Kind {
	case GroupByRollup, GroupByCube:
		buf.Myprintf(" WITH %s", node.Kind)
	case GroupByGroupingSets:
		buf.WriteString(" GROUPING SETS (")
		for i, set := range node.Sets {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteByte('(')
			formatNodes(buf, ", ", set)
			buf.WriteByte(')')
		}
		buf.WriteByte(')')
	}
}

// NamedWindow is name AS window_spec of a WINDOW clause.
type NamedWindow struct {
	Name string
	Spec WindowSpec
}

func (node *NamedWindow) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	buf.Myprintf(" AS %v", node.Spec)
}

// WindowRef refers to a window defined in a WINDOW clause.
type WindowRef struct {
	Name string
}

func (node *WindowRef) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
}

// WindowDef is an inline window definition. Cluster is set when the
// partitioning was written as CLUSTER BY.
type WindowDef struct {
	Cluster     bool
	PartitionBy []Expr
	OrderBy     []*SortItem
	Frame       *WindowFrame
}

func (node *WindowDef) Format(buf *TrackedBuffer) {
	buf.WriteByte('(')
	sep := ""
	if len(node.PartitionBy) > 0 {
		if node.Cluster {
			buf.WriteString("CLUSTER BY ")
		} else {
			buf.WriteString("PARTITION BY ")
		}
		formatNodes(buf, ", ", node.PartitionBy)
		sep = " "
	}
	if len(node.OrderBy) > 0 {
		buf.Myprintf("%sORDER BY ", sep)
		formatNodes(buf, ", ", node.OrderBy)
		sep = " "
	}
	if node.Frame != nil {
		buf.Myprintf("%s%v", sep, node.Frame)
	}
	buf.WriteByte(')')
}

// WindowFrame is ROWS|RANGE start or ROWS|RANGE BETWEEN start AND end.
type WindowFrame struct {
	Type  string
	Start *FrameBound
	End   *FrameBound
}

func (node *WindowFrame) Format(buf *TrackedBuffer) {
	if node.End == nil {
		buf.Myprintf("%s %v", node.Type, node.Start)
		return
	}
	buf.Myprintf("%s BETWEEN %v AND %v", node.Type, node.Start, node.End)
}

// Kinds of FrameBound.
const (
	FrameUnbounded  = "UNBOUNDED"
	FrameCurrentRow = "CURRENT ROW"
	FrameValue      = "VALUE"
)

// FrameBound is UNBOUNDED PRECEDING|FOLLOWING, CURRENT ROW or
// expr PRECEDING|FOLLOWING.
type FrameBound struct {
	Kind      string
	Direction string
	Expr      Expr
}

func (node *FrameBound) Format(buf *TrackedBuffer) {
	switch node.Kind {
	case FrameCurrentRow:
		buf.WriteString("CURRENT ROW")
	case FrameUnbounded:
		buf.Myprintf("UNBOUNDED %s", node.Direction)
	default:
		buf.Myprintf("%v %s", node.Expr, node.Direction)
	}
}

// TransformSelect is a script transformation: SELECT TRANSFORM(...),
// MAP ... or REDUCE ... USING 'script'.
type TransformSelect struct {
	Kind          string
	Exprs         []*NamedExpr
	InRowFormat   RowFormat
	RecordWriter  *string
	Script        string
	OutputNames   []string
	OutputColumns []*ColumnDef
	OutRowFormat  RowFormat
	RecordReader  *string
	From          *FromClause
	Where         Expr
}

func (node *TransformSelect) Format(buf *TrackedBuffer) {
	switch node.Kind {
	case "TRANSFORM":
		buf.WriteString("SELECT TRANSFORM(")
		formatNodes(buf, ", ", node.Exprs)
		buf.WriteByte(')')
	default:
		buf.Myprintf("%s ", node.Kind)
		formatNodes(buf, ", ", node.Exprs)
	}
	if node.InRowFormat != nil {
		buf.Myprintf(" %v", node.InRowFormat)
	}
	if node.RecordWriter != nil {
		buf.WriteString(" RECORDWRITER ")
		buf.printString(*node.RecordWriter)
	}
	buf.WriteString(" USING ")
	buf.printString(node.Script)
	switch {
	case len(node.OutputColumns) > 0:
		buf.WriteString(" AS (")
		formatNodes(buf, ", ", node.OutputColumns)
		buf.WriteByte(')')
	case len(node.OutputNames) > 0:
		buf.WriteString(" AS (")
		buf.printIdents(node.OutputNames)
		buf.WriteByte(')')
	}
	if node.OutRowFormat != nil {
		buf.Myprintf(" %v", node.OutRowFormat)
	}
	if node.RecordReader != nil {
		buf.WriteString(" RECORDREADER ")
		buf.printString(*node.RecordReader)
	}
	if node.From != nil {
		buf.Myprintf(" %v", node.From)
	}
	if node.Where != nil {
		buf.Myprintf(" WHERE %v", node.Where)
	}
}

// Set operators.
const (
	UnionStr     = "UNION"
	ExceptStr    = "EXCEPT"
	IntersectStr = "INTERSECT"
)

// SetOperation combines two query terms with UNION, EXCEPT or INTERSECT.
// MINUS and SETMINUS are read as EXCEPT.
type SetOperation struct {
	Op         string
	Quantifier string
	Left       SelectStatement
	Right      SelectStatement
}

func setPrecedence(stmt SelectStatement) int {
	if op, ok := stmt.(*SetOperation); ok {
		if op.Op == IntersectStr {
			return 2
		}
		return 1
	}
	return 3
}

func (buf *TrackedBuffer) printSetOperand(stmt SelectStatement, min int) {
	if setPrecedence(stmt) < min {
		buf.Myprintf("(%v)", stmt)
		return
	}
	buf.Myprintf("%v", stmt)
}

// Format parenthesizes a right operand that is itself a set operation, so
// the output reads back the same under either precedence mode.
func (node *SetOperation) Format(buf *TrackedBuffer) {
	prec := setPrecedence(node)
	buf.printSetOperand(node.Left, prec)
	buf.Myprintf(" %s ", node.Op)
	if node.Quantifier != "" {
		buf.Myprintf("%s ", node.Quantifier)
	}
	buf.printSetOperand(node.Right, 3)
}

// TableQuery is TABLE name.
type TableQuery struct {
	Name MultipartIdentifier
}

func (node *TableQuery) Format(buf *TrackedBuffer) {
	buf.Myprintf("TABLE %v", node.Name)
}

// InlineTable is VALUES row, ... [AS alias]. It is both a query term and
// a relation.
type InlineTable struct {
	Rows  []Expr
	Alias *TableAlias
}

func (node *InlineTable) Format(buf *TrackedBuffer) {
	buf.WriteString("VALUES ")
	formatNodes(buf, ", ", node.Rows)
	if node.Alias != nil {
		buf.Myprintf(" %v", node.Alias)
	}
}

// ParenQuery is a parenthesized query that carries its own WITH or
// trailing clauses. Plain parenthesized query terms are not kept as nodes.
type ParenQuery struct {
	Query *Query
}

func (node *ParenQuery) Format(buf *TrackedBuffer) {
	buf.Myprintf("(%v)", node.Query)
}

// FromStatement is the Hive form FROM relation SELECT ... [SELECT ...].
type FromStatement struct {
	From   *FromClause
	Bodies []*Query
}

func (node *FromStatement) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.From)
	for _, body := range node.Bodies {
		buf.Myprintf(" %v", body)
	}
}

// TableAlias is [AS] name [(columns)].
type TableAlias struct {
	Name    string
	Columns []string
}

func (node *TableAlias) Format(buf *TrackedBuffer) {
	buf.WriteString("AS ")
	buf.printIdent(node.Name)
	if len(node.Columns) > 0 {
		buf.WriteString(" (")
		buf.printIdents(node.Columns)
		buf.WriteByte(')')
	}
}

func (buf *TrackedBuffer) printSampleAndAlias(sample *Sample, alias *TableAlias) {
	if sample != nil {
		buf.Myprintf(" %v", sample)
	}
	if alias != nil {
		buf.Myprintf(" %v", alias)
	}
}

// TableName is a table reference in a FROM clause.
type TableName struct {
	Name   MultipartIdentifier
	Sample *Sample
	Alias  *TableAlias
}

func (node *TableName) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Name)
	buf.printSampleAndAlias(node.Sample, node.Alias)
}

// AliasedQuery is a subquery in a FROM clause.
type AliasedQuery struct {
	Query  *Query
	Sample *Sample
	Alias  *TableAlias
}

func (node *AliasedQuery) Format(buf *TrackedBuffer) {
	buf.Myprintf("(%v)", node.Query)
	buf.printSampleAndAlias(node.Sample, node.Alias)
}

// AliasedRelation is a parenthesized relation such as (a JOIN b).
type AliasedRelation struct {
	Relation TableExpr
	Sample   *Sample
	Alias    *TableAlias
}

func (node *AliasedRelation) Format(buf *TrackedBuffer) {
	buf.Myprintf("(%v)", node.Relation)
	buf.printSampleAndAlias(node.Sample, node.Alias)
}

// TableFunction is a table-valued function call.
type TableFunction struct {
	Name  string
	Args  []Expr
	Alias *TableAlias
}

func (node *TableFunction) Format(buf *TrackedBuffer) {
	buf.printFuncName(MultipartIdentifier{node.Name})
	buf.WriteByte('(')
	formatNodes(buf, ", ", node.Args)
	buf.WriteByte(')')
	if node.Alias != nil {
		buf.Myprintf(" %v", node.Alias)
	}
}

// Join types.
const (
	JoinInner      = "INNER"
	JoinCross      = "CROSS"
	JoinLeftOuter  = "LEFT OUTER"
	JoinRightOuter = "RIGHT OUTER"
	JoinFullOuter  = "FULL OUTER"
	JoinLeftSemi   = "LEFT SEMI"
	JoinLeftAnti   = "LEFT ANTI"
)

// Join is left [NATURAL] type JOIN right [ON cond | USING (cols)].
type Join struct {
	Type    string
	Natural bool
	Left    TableExpr
	Right   TableExpr
	On      Expr
	Using   []string
}

func (node *Join) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v ", node.Left)
	if node.Natural {
		buf.WriteString("NATURAL ")
	}
	if node.Type != JoinInner {
		buf.Myprintf("%s ", node.Type)
	}
	buf.WriteString("JOIN ")
	if _, ok := node.Right.(*Join); ok {
		buf.Myprintf("(%v)", node.Right)
	} else {
		buf.Myprintf("%v", node.Right)
	}
	if node.On != nil {
		buf.Myprintf(" ON %v", node.On)
	}
	if len(node.Using) > 0 {
		buf.WriteString(" USING (")
		buf.printIdents(node.Using)
		buf.WriteByte(')')
	}
}

// Kinds of Sample.
const (
	SamplePercent = "PERCENT"
	SampleRows    = "ROWS"
	SampleBucket  = "BUCKET"
	SampleBytes   = "BYTES"
)

// Sample is a TABLESAMPLE clause.
type Sample struct {
	Kind string
	// Percent is the signed percentage text of PERCENT samples.
	Percent string
	// Expr is the row count of ROWS samples and the size of BYTES samples.
	Expr        Expr
	Numerator   string
	Denominator string
}

func (node *Sample) Format(buf *TrackedBuffer) {
	buf.WriteString("TABLESAMPLE (")
	switch node.Kind {
	case SamplePercent:
		buf.Myprintf("%s PERCENT", node.Percent)
	case SampleRows:
		buf.Myprintf("%v ROWS", node.Expr)
	case SampleBucket:
		buf.Myprintf("BUCKET %s OUT OF %s", node.Numerator, node.Denominator)
	case SampleBytes:
		if col, ok := node.Expr.(*ColumnRef); ok && isWord(col.Name) {
			buf.WriteString(col.Name)
		} else {
			buf.Myprintf("%v", node.Expr)
		}
	}
	buf.WriteByte(')')
}

// LateralView is LATERAL VIEW [OUTER] generator(args) table [AS columns].
type LateralView struct {
	Outer     bool
	Generator MultipartIdentifier
	Args      []Expr
	Table     string
	Columns   []string
}

func (node *LateralView) Format(buf *TrackedBuffer) {
	buf.WriteString("LATERAL VIEW ")
	if node.Outer {
		buf.WriteString("OUTER ")
	}
	buf.printFuncName(node.Generator)
	buf.WriteByte('(')
	formatNodes(buf, ", ", node.Args)
	buf.WriteString(") ")
	buf.printIdent(node.Table)
	if len(node.Columns) > 0 {
		buf.WriteString(" AS ")
		buf.printIdents(node.Columns)
	}
}

// PivotValue is one value of a PIVOT IN list.
type PivotValue struct {
	Expr  Expr
	Alias string
}

func (node *PivotValue) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Expr)
	if node.Alias != "" {
		buf.WriteString(" AS ")
		buf.printIdent(node.Alias)
	}
}

// Pivot is PIVOT (aggregates FOR column IN (values)).
type Pivot struct {
	Aggregates []*NamedExpr
	Columns    []string
	Values     []*PivotValue
}

func (node *Pivot) Format(buf *TrackedBuffer) {
	buf.WriteString("PIVOT (")
	formatNodes(buf, ", ", node.Aggregates)
	buf.WriteString(" FOR ")
	if len(node.Columns) == 1 {
		buf.printIdent(node.Columns[0])
	} else {
		buf.WriteByte('(')
		buf.printIdents(node.Columns)
		buf.WriteByte(')')
	}
	buf.WriteString(" IN (")
	formatNodes(buf, ", ", node.Values)
	buf.WriteString("))")
}
