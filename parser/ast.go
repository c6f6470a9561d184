package parser

import (
	"fmt"
	"reflect"
	"strings"
)

// SQLNode defines the interface for all nodes generated by the parser.
type SQLNode interface {
	Format(buf *TrackedBuffer)
}

// Statement represents a statement.
type Statement interface {
	iStatement()
	SQLNode
}

// SelectStatement is any SELECT-like query body: SELECT, set operations,
// TABLE, VALUES and parenthesized queries.
type SelectStatement interface {
	iSelectStatement()
	SQLNode
}

// TableExpr represents a relation in a FROM clause.
type TableExpr interface {
	iTableExpr()
	SQLNode
}

// Expr represents an expression.
type Expr interface {
	iExpr()
	SQLNode
}

// DataType represents a column or cast target type.
type DataType interface {
	iDataType()
	SQLNode
}

// WindowSpec is either a reference to a named window or an inline
// window definition.
type WindowSpec interface {
	iWindowSpec()
	SQLNode
}

// Transform is a partitioning transform of a data source table.
type Transform interface {
	iTransform()
	SQLNode
}

// RowFormat is a Hive ROW FORMAT clause.
type RowFormat interface {
	iRowFormat()
	SQLNode
}

// FileFormat is a Hive STORED AS / STORED BY clause.
type FileFormat interface {
	iFileFormat()
	SQLNode
}

// InsertTarget is the destination of an INSERT.
type InsertTarget interface {
	iInsertTarget()
	SQLNode
}

// TrackedBuffer is used to rebuild a query from the ast.
type TrackedBuffer struct {
	strings.Builder
}

// NewTrackedBuffer creates a new TrackedBuffer.
func NewTrackedBuffer() *TrackedBuffer {
	return &TrackedBuffer{}
}

// Myprintf mimics fmt.Fprintf(buf, ...), but limited to Node(%v),
// Node.Value(%s) and string(%s). It also allows a %d for ints and %c for
// bytes. Nil values of %v are skipped.
func (buf *TrackedBuffer) Myprintf(format string, values ...interface{}) {
	end := len(format)
	fieldnum := 0
	for i := 0; i < end; {
		lasti := i
		for i < end && format[i] != '%' {
			i++
		}
		if i > lasti {
			buf.WriteString(format[lasti:i])
		}
		if i >= end {
			break
		}
		i++ // '%'
		switch format[i] {
		case '%':
			buf.WriteByte('%')
			i++
			continue
		case 'c':
			switch v := values[fieldnum].(type) {
			case byte:
				buf.WriteByte(v)
			case rune:
				buf.WriteRune(v)
			default:
				panic(fmt.Sprintf("unexpected TrackedBuffer type %T", v))
			}
		case 's':
			switch v := values[fieldnum].(type) {
			case []byte:
				buf.Write(v)
			case string:
				buf.WriteString(v)
			default:
				panic(fmt.Sprintf("unexpected TrackedBuffer type %T", v))
			}
		case 'v':
			if node, ok := values[fieldnum].(SQLNode); ok {
				if !isNilNode(node) {
					node.Format(buf)
				}
			} else {
				fmt.Fprintf(buf, "%v", values[fieldnum])
			}
		case 'd':
			fmt.Fprintf(buf, "%d", values[fieldnum])
		default:
			panic("unexpected")
		}
		fieldnum++
		i++
	}
}

// String returns a string representation of an SQLNode.
func String(node SQLNode) string {
	if isNilNode(node) {
		return ""
	}
	buf := NewTrackedBuffer()
	buf.Myprintf("%v", node)
	return buf.String()
}

func isNilNode(node SQLNode) bool {
	if node == nil {
		return true
	}
	switch v := reflect.ValueOf(node); v.Kind() {
	case reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func formatNodes[T SQLNode](buf *TrackedBuffer, sep string, nodes []T) {
	for i, node := range nodes {
		if i > 0 {
			buf.WriteString(sep)
		}
		node.Format(buf)
	}
}

// FormatIdentifier quotes name with back-quotes unless it can be read back
// as the same plain identifier.
func FormatIdentifier(name string) string {
	if isPlainIdentifier(name) {
		return name
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func isPlainIdentifier(name string) bool {
	if name == "" || isDigit(uint16(name[0])) || IsKeyword(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isIdentChar(uint16(name[i])) {
			return false
		}
	}
	return true
}

// FormatString returns s as a single-quoted SQL string literal.
func FormatString(s string) string {
	var buf strings.Builder
	buf.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '\'':
			buf.WriteString(`\'`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case 0:
			buf.WriteString(`\0`)
		case 0x1a:
			buf.WriteString(`\Z`)
		default:
			buf.WriteByte(ch)
		}
	}
	buf.WriteByte('\'')
	return buf.String()
}

func (buf *TrackedBuffer) printIdent(name string) {
	buf.WriteString(FormatIdentifier(name))
}

func (buf *TrackedBuffer) printIdents(names []string) {
	for i, name := range names {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.printIdent(name)
	}
}

func (buf *TrackedBuffer) printString(s string) {
	buf.WriteString(FormatString(s))
}

// MultipartIdentifier is a dot-separated name such as catalog.db.table.
type MultipartIdentifier []string

func (node MultipartIdentifier) Format(buf *TrackedBuffer) {
	for i, part := range node {
		if i > 0 {
			buf.WriteByte('.')
		}
		buf.printIdent(part)
	}
}

// TableIdentifier is an optionally database-qualified table name.
type TableIdentifier struct {
	Database string
	Name     string
}

func (node *TableIdentifier) Format(buf *TrackedBuffer) {
	if node.Database != "" {
		buf.printIdent(node.Database)
		buf.WriteByte('.')
	}
	buf.printIdent(node.Name)
}

// FunctionIdentifier is an optionally database-qualified function name.
type FunctionIdentifier struct {
	Database string
	Name     string
}

func (node *FunctionIdentifier) Format(buf *TrackedBuffer) {
	if node.Database != "" {
		buf.printIdent(node.Database)
		buf.WriteByte('.')
	}
	buf.printIdent(node.Name)
}

// TableProperty is one entry of OPTIONS, TBLPROPERTIES and similar lists.
// Value is nil when only the key was given.
type TableProperty struct {
	Key   string
	Value *string
}

func (node *TableProperty) Format(buf *TrackedBuffer) {
	buf.printString(node.Key)
	if node.Value != nil {
		buf.WriteString(" = ")
		buf.printString(*node.Value)
	}
}

// TableProperties is a parenthesized property list.
type TableProperties []*TableProperty

func (node TableProperties) Format(buf *TrackedBuffer) {
	buf.WriteByte('(')
	formatNodes(buf, ", ", node)
	buf.WriteByte(')')
}

// Get returns the value of key and whether it was present with a value.
func (node TableProperties) Get(key string) (string, bool) {
	for _, prop := range node {
		if prop.Key == key && prop.Value != nil {
			return *prop.Value, true
		}
	}
	return "", false
}

// PartitionVal is one column of a PARTITION spec. Value is nil for
// dynamic partitions.
type PartitionVal struct {
	Name  string
	Value Expr
}

func (node *PartitionVal) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	if node.Value != nil {
		buf.Myprintf(" = %v", node.Value)
	}
}

// PartitionSpec is a PARTITION (...) clause.
type PartitionSpec []*PartitionVal

func (node PartitionSpec) Format(buf *TrackedBuffer) {
	buf.WriteString("PARTITION (")
	formatNodes(buf, ", ", node)
	buf.WriteByte(')')
}

// ColumnDef is a column of a table schema or a field of a STRUCT type.
type ColumnDef struct {
	Name    string
	Type    DataType
	NotNull bool
	Comment *string
}

func (node *ColumnDef) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	buf.Myprintf(" %v", node.Type)
	node.formatOptions(buf)
}

func (node *ColumnDef) formatOptions(buf *TrackedBuffer) {
	if node.NotNull {
		buf.WriteString(" NOT NULL")
	}
	if node.Comment != nil {
		buf.WriteString(" COMMENT ")
		buf.printString(*node.Comment)
	}
}

// ColPosition is FIRST or AFTER column of ALTER TABLE column changes.
type ColPosition struct {
	First bool
	After string
}

func (node *ColPosition) Format(buf *TrackedBuffer) {
	if node.First {
		buf.WriteString("FIRST")
		return
	}
	buf.WriteString("AFTER ")
	buf.printIdent(node.After)
}

// QualifiedColType is a column added or replaced by ALTER TABLE.
type QualifiedColType struct {
	Name     MultipartIdentifier
	Type     DataType
	NotNull  bool
	Comment  *string
	Position *ColPosition
}

func (node *QualifiedColType) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v %v", node.Name, node.Type)
	if node.NotNull {
		buf.WriteString(" NOT NULL")
	}
	if node.Comment != nil {
		buf.WriteString(" COMMENT ")
		buf.printString(*node.Comment)
	}
	if node.Position != nil {
		buf.Myprintf(" %v", node.Position)
	}
}

// OrderedIdentifier is a column of SORTED BY.
type OrderedIdentifier struct {
	Name      string
	Direction string
}

func (node *OrderedIdentifier) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	if node.Direction != "" {
		buf.Myprintf(" %s", node.Direction)
	}
}

// BucketSpec is CLUSTERED BY (...) [SORTED BY (...)] INTO n BUCKETS.
type BucketSpec struct {
	Columns     []string
	SortColumns []*OrderedIdentifier
	Buckets     int
}

func (node *BucketSpec) Format(buf *TrackedBuffer) {
	buf.WriteString("CLUSTERED BY (")
	buf.printIdents(node.Columns)
	buf.WriteByte(')')
	if len(node.SortColumns) > 0 {
		buf.WriteString(" SORTED BY (")
		formatNodes(buf, ", ", node.SortColumns)
		buf.WriteByte(')')
	}
	buf.Myprintf(" INTO %d BUCKETS", node.Buckets)
}

// SkewSpec is SKEWED BY (...) ON (...) [STORED AS DIRECTORIES].
type SkewSpec struct {
	Columns []string
	// Values holds one entry per skewed value; each entry has one
	// constant per column when Nested is set.
	Values              [][]Expr
	Nested              bool
	StoredAsDirectories bool
}

func (node *SkewSpec) Format(buf *TrackedBuffer) {
	buf.WriteString("SKEWED BY (")
	buf.printIdents(node.Columns)
	buf.WriteString(") ON (")
	for i, row := range node.Values {
		if i > 0 {
			buf.WriteString(", ")
		}
		if node.Nested {
			buf.WriteByte('(')
		}
		formatNodes(buf, ", ", row)
		if node.Nested {
			buf.WriteByte(')')
		}
	}
	buf.WriteByte(')')
	if node.StoredAsDirectories {
		buf.WriteString(" STORED AS DIRECTORIES")
	}
}

// RowFormatSerde is ROW FORMAT SERDE 'class' [WITH SERDEPROPERTIES (...)].
type RowFormatSerde struct {
	Name       string
	Properties TableProperties
}

func (*RowFormatSerde) iRowFormat() {}

func (node *RowFormatSerde) Format(buf *TrackedBuffer) {
	buf.WriteString("ROW FORMAT SERDE ")
	buf.printString(node.Name)
	if node.Properties != nil {
		buf.Myprintf(" WITH SERDEPROPERTIES %v", node.Properties)
	}
}

// RowFormatDelimited is ROW FORMAT DELIMITED with its terminator options.
type RowFormatDelimited struct {
	FieldsTerminatedBy          *string
	EscapedBy                   *string
	CollectionItemsTerminatedBy *string
	MapKeysTerminatedBy         *string
	LinesTerminatedBy           *string
	NullDefinedAs               *string
}

func (*RowFormatDelimited) iRowFormat() {}

func (node *RowFormatDelimited) Format(buf *TrackedBuffer) {
	buf.WriteString("ROW FORMAT DELIMITED")
	if node.FieldsTerminatedBy != nil {
		buf.WriteString(" FIELDS TERMINATED BY ")
		buf.printString(*node.FieldsTerminatedBy)
		if node.EscapedBy != nil {
			buf.WriteString(" ESCAPED BY ")
			buf.printString(*node.EscapedBy)
		}
	}
	if node.CollectionItemsTerminatedBy != nil {
		buf.WriteString(" COLLECTION ITEMS TERMINATED BY ")
		buf.printString(*node.CollectionItemsTerminatedBy)
	}
	if node.MapKeysTerminatedBy != nil {
		buf.WriteString(" MAP KEYS TERMINATED BY ")
		buf.printString(*node.MapKeysTerminatedBy)
	}
	if node.LinesTerminatedBy != nil {
		buf.WriteString(" LINES TERMINATED BY ")
		buf.printString(*node.LinesTerminatedBy)
	}
	if node.NullDefinedAs != nil {
		buf.WriteString(" NULL DEFINED AS ")
		buf.printString(*node.NullDefinedAs)
	}
}

// FileFormatName is STORED AS name.
type FileFormatName struct {
	Name string
}

func (*FileFormatName) iFileFormat() {}

func (node *FileFormatName) Format(buf *TrackedBuffer) {
	buf.WriteString("STORED AS ")
	buf.printIdent(node.Name)
}

// FileFormatClasses is STORED AS INPUTFORMAT '...' OUTPUTFORMAT '...'.
type FileFormatClasses struct {
	InputFormat  string
	OutputFormat string
}

func (*FileFormatClasses) iFileFormat() {}

func (node *FileFormatClasses) Format(buf *TrackedBuffer) {
	buf.WriteString("STORED AS INPUTFORMAT ")
	buf.printString(node.InputFormat)
	buf.WriteString(" OUTPUTFORMAT ")
	buf.printString(node.OutputFormat)
}

// StorageHandler is STORED BY 'class' [WITH SERDEPROPERTIES (...)].
type StorageHandler struct {
	Class      string
	Properties TableProperties
}

func (*StorageHandler) iFileFormat() {}

func (node *StorageHandler) Format(buf *TrackedBuffer) {
	buf.WriteString("STORED BY ")
	buf.printString(node.Class)
	if node.Properties != nil {
		buf.Myprintf(" WITH SERDEPROPERTIES %v", node.Properties)
	}
}

// IdentityTransform partitions by a column.
type IdentityTransform struct {
	Column MultipartIdentifier
}

func (*IdentityTransform) iTransform() {}

func (node *IdentityTransform) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Column)
}

// ApplyTransform partitions by a transform function such as bucket(4, id).
// Args are column references or constants.
type ApplyTransform struct {
	Name string
	Args []Expr
}

func (*ApplyTransform) iTransform() {}

func (node *ApplyTransform) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	buf.WriteByte('(')
	formatNodes(buf, ", ", node.Args)
	buf.WriteByte(')')
}
