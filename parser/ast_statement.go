package parser

import "strings"

func (*Query) iStatement()                  {}
func (*Insert) iStatement()                 {}
func (*MultiInsert) iStatement()            {}
func (*Delete) iStatement()                 {}
func (*Update) iStatement()                 {}
func (*Merge) iStatement()                  {}
func (*Use) iStatement()                    {}
func (*CreateNamespace) iStatement()        {}
func (*SetNamespaceProperties) iStatement() {}
func (*SetNamespaceLocation) iStatement()   {}
func (*DropNamespace) iStatement()          {}
func (*ShowNamespaces) iStatement()         {}
func (*CreateTable) iStatement()            {}
func (*ReplaceTable) iStatement()           {}
func (*CreateTableLike) iStatement()        {}
func (*Analyze) iStatement()                {}
func (*AddColumns) iStatement()             {}
func (*RenameColumn) iStatement()           {}
func (*DropColumns) iStatement()            {}
func (*RenameTable) iStatement()            {}
func (*SetTableProperties) iStatement()     {}
func (*UnsetTableProperties) iStatement()   {}
func (*AlterColumn) iStatement()            {}
func (*HiveChangeColumn) iStatement()       {}
func (*ReplaceColumns) iStatement()         {}
func (*SetSerde) iStatement()               {}
func (*AddPartitions) iStatement()          {}
func (*RenamePartition) iStatement()        {}
func (*DropPartitions) iStatement()         {}
func (*SetLocation) iStatement()            {}
func (*RecoverPartitions) iStatement()      {}
func (*DropTable) iStatement()              {}
func (*DropView) iStatement()               {}
func (*CreateView) iStatement()             {}
func (*CreateTempViewUsing) iStatement()    {}
func (*AlterViewQuery) iStatement()         {}
func (*CreateFunction) iStatement()         {}
func (*DropFunction) iStatement()           {}
func (*Explain) iStatement()                {}
func (*ShowTables) iStatement()             {}
func (*ShowTableExtended) iStatement()      {}
func (*ShowTblProperties) iStatement()      {}
func (*ShowColumns) iStatement()            {}
func (*ShowViews) iStatement()              {}
func (*ShowPartitions) iStatement()         {}
func (*ShowFunctions) iStatement()          {}
func (*ShowCreateTable) iStatement()        {}
func (*ShowCurrentNamespace) iStatement()   {}
func (*DescribeFunction) iStatement()       {}
func (*DescribeNamespace) iStatement()      {}
func (*DescribeRelation) iStatement()       {}
func (*DescribeQuery) iStatement()          {}
func (*CommentOnNamespace) iStatement()     {}
func (*CommentOnTable) iStatement()         {}
func (*RefreshTable) iStatement()           {}
func (*RefreshFunction) iStatement()        {}
func (*RefreshResource) iStatement()        {}
func (*CacheTable) iStatement()             {}
func (*UncacheTable) iStatement()           {}
func (*ClearCache) iStatement()             {}
func (*LoadData) iStatement()               {}
func (*TruncateTable) iStatement()          {}
func (*RepairTable) iStatement()            {}
func (*ManageResource) iStatement()         {}
func (*SetTimeZone) iStatement()            {}
func (*SetConfiguration) iStatement()       {}
func (*ResetConfiguration) iStatement()     {}

func (*InsertIntoTable) iInsertTarget()    {}
func (*InsertOverwriteDir) iInsertTarget() {}

func (buf *TrackedBuffer) printOptString(keyword string, s *string) {
	if s != nil {
		buf.Myprintf(" %s ", keyword)
		buf.printString(*s)
	}
}

func (buf *TrackedBuffer) printOptProperties(keyword string, props TableProperties) {
	if props != nil {
		buf.Myprintf(" %s %v", keyword, props)
	}
}

func (buf *TrackedBuffer) printIfExists(ifExists bool) {
	if ifExists {
		buf.WriteString("IF EXISTS ")
	}
}

func (buf *TrackedBuffer) printIfNotExists(ifNotExists bool) {
	if ifNotExists {
		buf.WriteString("IF NOT EXISTS ")
	}
}

func tableOrView(view bool) string {
	if view {
		return "VIEW"
	}
	return "TABLE"
}

// InsertIntoTable is INSERT INTO|OVERWRITE TABLE name [PARTITION (...)]
// [IF NOT EXISTS].
type InsertIntoTable struct {
	Overwrite   bool
	Table       MultipartIdentifier
	Partition   PartitionSpec
	IfNotExists bool
}

func (node *InsertIntoTable) Format(buf *TrackedBuffer) {
	if node.Overwrite {
		buf.WriteString("INSERT OVERWRITE TABLE ")
	} else {
		buf.WriteString("INSERT INTO TABLE ")
	}
	buf.Myprintf("%v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	if node.IfNotExists {
		buf.WriteString(" IF NOT EXISTS")
	}
}

// InsertOverwriteDir is INSERT OVERWRITE [LOCAL] DIRECTORY. Provider is
// set for the data source form, RowFormat and FileFormat for the Hive form.
type InsertOverwriteDir struct {
	Local      bool
	Path       *string
	Provider   string
	Options    TableProperties
	RowFormat  RowFormat
	FileFormat FileFormat
}

func (node *InsertOverwriteDir) Format(buf *TrackedBuffer) {
	buf.WriteString("INSERT OVERWRITE ")
	if node.Local {
		buf.WriteString("LOCAL ")
	}
	buf.WriteString("DIRECTORY")
	if node.Path != nil {
		buf.WriteByte(' ')
		buf.printString(*node.Path)
	}
	if node.Provider != "" {
		buf.Myprintf(" USING %s", FormatIdentifier(node.Provider))
		buf.printOptProperties("OPTIONS", node.Options)
		return
	}
	if node.RowFormat != nil {
		buf.Myprintf(" %v", node.RowFormat)
	}
	if node.FileFormat != nil {
		buf.Myprintf(" %v", node.FileFormat)
	}
}

// Insert is [WITH ...] INSERT ... query.
type Insert struct {
	With   *With
	Target InsertTarget
	Query  *Query
}

func (node *Insert) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v%v %v", node.With, node.Target, node.Query)
}

// InsertBody is one INSERT ... SELECT of a multi-insert.
type InsertBody struct {
	Target InsertTarget
	Query  *Query
}

func (node *InsertBody) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v %v", node.Target, node.Query)
}

// MultiInsert is FROM relation INSERT ... SELECT ... [INSERT ... SELECT ...].
type MultiInsert struct {
	With    *With
	From    *FromClause
	Inserts []*InsertBody
}

func (node *MultiInsert) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v%v", node.With, node.From)
	for _, insert := range node.Inserts {
		buf.Myprintf(" %v", insert)
	}
}

// Delete is DELETE FROM table [alias] [WHERE cond].
type Delete struct {
	With  *With
	Table MultipartIdentifier
	Alias *TableAlias
	Where Expr
}

func (node *Delete) Format(buf *TrackedBuffer) {
	buf.Myprintf("%vDELETE FROM %v", node.With, node.Table)
	if node.Alias != nil {
		buf.Myprintf(" %v", node.Alias)
	}
	if node.Where != nil {
		buf.Myprintf(" WHERE %v", node.Where)
	}
}

// Assignment is column = value of UPDATE and MERGE.
type Assignment struct {
	Column MultipartIdentifier
	Value  Expr
}

func (node *Assignment) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v = %v", node.Column, node.Value)
}

// Update is UPDATE table [alias] SET assignments [WHERE cond].
type Update struct {
	With        *With
	Table       MultipartIdentifier
	Alias       *TableAlias
	Assignments []*Assignment
	Where       Expr
}

func (node *Update) Format(buf *TrackedBuffer) {
	buf.Myprintf("%vUPDATE %v", node.With, node.Table)
	if node.Alias != nil {
		buf.Myprintf(" %v", node.Alias)
	}
	buf.WriteString(" SET ")
	formatNodes(buf, ", ", node.Assignments)
	if node.Where != nil {
		buf.Myprintf(" WHERE %v", node.Where)
	}
}

// Kinds of MergeAction.
const (
	MergeDelete = "DELETE"
	MergeUpdate = "UPDATE"
	MergeInsert = "INSERT"
)

// MergeAction is the THEN part of a MERGE clause. Star is set for
// UPDATE SET * and INSERT *.
type MergeAction struct {
	Kind        string
	Star        bool
	Assignments []*Assignment
	Columns     []MultipartIdentifier
	Values      []Expr
}

func (node *MergeAction) Format(buf *TrackedBuffer) {
	switch node.Kind {
	case MergeDelete:
		buf.WriteString("DELETE")
	case MergeUpdate:
		if node.Star {
			buf.WriteString("UPDATE SET *")
			return
		}
		buf.WriteString("UPDATE SET ")
		formatNodes(buf, ", ", node.Assignments)
	case MergeInsert:
		if node.Star {
			buf.WriteString("INSERT *")
			return
		}
		buf.WriteString("INSERT (")
		formatNodes(buf, ", ", node.Columns)
		buf.WriteString(") VALUES (")
		formatNodes(buf, ", ", node.Values)
		buf.WriteByte(')')
	}
}

// MergeClause is WHEN [NOT] MATCHED [AND cond] THEN action.
type MergeClause struct {
	Matched   bool
	Condition Expr
	Action    *MergeAction
}

func (node *MergeClause) Format(buf *TrackedBuffer) {
	if node.Matched {
		buf.WriteString("WHEN MATCHED")
	} else {
		buf.WriteString("WHEN NOT MATCHED")
	}
	if node.Condition != nil {
		buf.Myprintf(" AND %v", node.Condition)
	}
	buf.Myprintf(" THEN %v", node.Action)
}

// Merge is MERGE INTO target USING source ON cond WHEN ....
// Exactly one of SourceTable and SourceQuery is set.
type Merge struct {
	With        *With
	Target      MultipartIdentifier
	TargetAlias *TableAlias
	SourceTable MultipartIdentifier
	SourceQuery *Query
	SourceAlias *TableAlias
	On          Expr
	Clauses     []*MergeClause
}

func (node *Merge) Format(buf *TrackedBuffer) {
	buf.Myprintf("%vMERGE INTO %v", node.With, node.Target)
	if node.TargetAlias != nil {
		buf.Myprintf(" %v", node.TargetAlias)
	}
	if node.SourceQuery != nil {
		buf.Myprintf(" USING (%v)", node.SourceQuery)
	} else {
		buf.Myprintf(" USING %v", node.SourceTable)
	}
	if node.SourceAlias != nil {
		buf.Myprintf(" %v", node.SourceAlias)
	}
	buf.Myprintf(" ON %v", node.On)
	for _, clause := range node.Clauses {
		buf.Myprintf(" %v", clause)
	}
}

// Use is USE [NAMESPACE] name.
type Use struct {
	Namespace bool
	Name      MultipartIdentifier
}

func (node *Use) Format(buf *TrackedBuffer) {
	if node.Namespace {
		buf.Myprintf("USE NAMESPACE %v", node.Name)
		return
	}
	buf.Myprintf("USE %v", node.Name)
}

// CreateNamespace is CREATE DATABASE|SCHEMA|NAMESPACE. Kind keeps the
// keyword that was used; PropertiesKeyword is DBPROPERTIES or PROPERTIES.
type CreateNamespace struct {
	Kind              string
	IfNotExists       bool
	Name              MultipartIdentifier
	Comment           *string
	Location          *string
	PropertiesKeyword string
	Properties        TableProperties
}

func (node *CreateNamespace) Format(buf *TrackedBuffer) {
	buf.Myprintf("CREATE %s ", node.Kind)
	buf.printIfNotExists(node.IfNotExists)
	buf.Myprintf("%v", node.Name)
	buf.printOptString("COMMENT", node.Comment)
	buf.printOptString("LOCATION", node.Location)
	buf.printOptProperties("WITH "+node.PropertiesKeyword, node.Properties)
}

// SetNamespaceProperties is ALTER namespace SET DBPROPERTIES|PROPERTIES.
type SetNamespaceProperties struct {
	Kind              string
	Name              MultipartIdentifier
	PropertiesKeyword string
	Properties        TableProperties
}

func (node *SetNamespaceProperties) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER %s %v SET %s %v", node.Kind, node.Name, node.PropertiesKeyword, node.Properties)
}

// SetNamespaceLocation is ALTER namespace SET LOCATION.
type SetNamespaceLocation struct {
	Kind     string
	Name     MultipartIdentifier
	Location string
}

func (node *SetNamespaceLocation) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER %s %v SET LOCATION ", node.Kind, node.Name)
	buf.printString(node.Location)
}

// DropNamespace is DROP namespace [IF EXISTS] name [RESTRICT|CASCADE].
type DropNamespace struct {
	Kind     string
	IfExists bool
	Name     MultipartIdentifier
	Behavior string
}

func (node *DropNamespace) Format(buf *TrackedBuffer) {
	buf.Myprintf("DROP %s ", node.Kind)
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Name)
	if node.Behavior != "" {
		buf.Myprintf(" %s", node.Behavior)
	}
}

// ShowNamespaces is SHOW DATABASES|NAMESPACES [IN ns] [LIKE pattern].
type ShowNamespaces struct {
	Kind      string
	Namespace MultipartIdentifier
	Pattern   *string
}

func (node *ShowNamespaces) Format(buf *TrackedBuffer) {
	buf.Myprintf("SHOW %s", node.Kind)
	if node.Namespace != nil {
		buf.Myprintf(" IN %v", node.Namespace)
	}
	buf.printOptString("LIKE", node.Pattern)
}

// TableClauses are the optional clauses of CREATE and REPLACE TABLE.
type TableClauses struct {
	Options TableProperties
	// Partitioning holds PARTITIONED BY transforms, or the column names of
	// a Hive PARTITIONED BY (a, b).
	Partitioning []Transform
	// PartitionColumns holds Hive PARTITIONED BY (a INT, ...) columns.
	PartitionColumns []*ColumnDef
	Bucket           *BucketSpec
	Skew             *SkewSpec
	RowFormat        RowFormat
	FileFormat       FileFormat
	Location         *string
	Comment          *string
	Properties       TableProperties
}

func (node *TableClauses) formatDataSource(buf *TrackedBuffer) {
	buf.printOptProperties("OPTIONS", node.Options)
	node.formatPartitioning(buf)
	if node.Bucket != nil {
		buf.Myprintf(" %v", node.Bucket)
	}
	buf.printOptString("LOCATION", node.Location)
	buf.printOptString("COMMENT", node.Comment)
	buf.printOptProperties("TBLPROPERTIES", node.Properties)
}

func (node *TableClauses) formatHive(buf *TrackedBuffer) {
	buf.printOptString("COMMENT", node.Comment)
	node.formatPartitioning(buf)
	if node.Bucket != nil {
		buf.Myprintf(" %v", node.Bucket)
	}
	if node.Skew != nil {
		buf.Myprintf(" %v", node.Skew)
	}
	if node.RowFormat != nil {
		buf.Myprintf(" %v", node.RowFormat)
	}
	if node.FileFormat != nil {
		buf.Myprintf(" %v", node.FileFormat)
	}
	buf.printOptString("LOCATION", node.Location)
	buf.printOptProperties("TBLPROPERTIES", node.Properties)
}

func (node *TableClauses) formatPartitioning(buf *TrackedBuffer) {
	switch {
	case len(node.PartitionColumns) > 0:
		buf.WriteString(" PARTITIONED BY (")
		formatNodes(buf, ", ", node.PartitionColumns)
		buf.WriteByte(')')
	case len(node.Partitioning) > 0:
		buf.WriteString(" PARTITIONED BY (")
		formatNodes(buf, ", ", node.Partitioning)
		buf.WriteByte(')')
	}
}

func (buf *TrackedBuffer) printColumns(columns []*ColumnDef) {
	if len(columns) > 0 {
		buf.WriteString(" (")
		formatNodes(buf, ", ", columns)
		buf.WriteByte(')')
	}
}

func (buf *TrackedBuffer) printAsQuery(query *Query) {
	if query != nil {
		buf.Myprintf(" AS %v", query)
	}
}

// CreateTable is CREATE TABLE. Hive is set for tables without a USING
// clause, which take the Hive clauses of TableClauses.
type CreateTable struct {
	Hive        bool
	External    bool
	IfNotExists bool
	Name        MultipartIdentifier
	Columns     []*ColumnDef
	Provider    string
	TableClauses
	AsQuery *Query
}

func (node *CreateTable) Format(buf *TrackedBuffer) {
	buf.WriteString("CREATE ")
	if node.External {
		buf.WriteString("EXTERNAL ")
	}
	buf.WriteString("TABLE ")
	buf.printIfNotExists(node.IfNotExists)
	buf.Myprintf("%v", node.Name)
	buf.printColumns(node.Columns)
	if node.Hive {
		node.TableClauses.formatHive(buf)
	} else {
		buf.Myprintf(" USING %s", FormatIdentifier(node.Provider))
		node.TableClauses.formatDataSource(buf)
	}
	buf.printAsQuery(node.AsQuery)
}

// ReplaceTable is [CREATE OR] REPLACE TABLE ... USING provider.
type ReplaceTable struct {
	OrCreate bool
	Name     MultipartIdentifier
	Columns  []*ColumnDef
	Provider string
	TableClauses
	AsQuery *Query
}

func (node *ReplaceTable) Format(buf *TrackedBuffer) {
	if node.OrCreate {
		buf.WriteString("CREATE OR ")
	}
	buf.Myprintf("REPLACE TABLE %v", node.Name)
	buf.printColumns(node.Columns)
	buf.Myprintf(" USING %s", FormatIdentifier(node.Provider))
	node.TableClauses.formatDataSource(buf)
	buf.printAsQuery(node.AsQuery)
}

// CreateTableLike is CREATE TABLE target LIKE source [clauses].
type CreateTableLike struct {
	IfNotExists bool
	Target      *TableIdentifier
	Source      *TableIdentifier
	Provider    string
	RowFormat   RowFormat
	FileFormat  FileFormat
	Location    *string
	Properties  TableProperties
}

func (node *CreateTableLike) Format(buf *TrackedBuffer) {
	buf.WriteString("CREATE TABLE ")
	buf.printIfNotExists(node.IfNotExists)
	buf.Myprintf("%v LIKE %v", node.Target, node.Source)
	if node.Provider != "" {
		buf.Myprintf(" USING %s", FormatIdentifier(node.Provider))
	}
	if node.RowFormat != nil {
		buf.Myprintf(" %v", node.RowFormat)
	}
	if node.FileFormat != nil {
		buf.Myprintf(" %v", node.FileFormat)
	}
	buf.printOptString("LOCATION", node.Location)
	buf.printOptProperties("TBLPROPERTIES", node.Properties)
}

// Analyze is ANALYZE TABLE ... COMPUTE STATISTICS.
type Analyze struct {
	Table      MultipartIdentifier
	Partition  PartitionSpec
	NoScan     bool
	Columns    []string
	AllColumns bool
}

func (node *Analyze) Format(buf *TrackedBuffer) {
	buf.Myprintf("ANALYZE TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	buf.WriteString(" COMPUTE STATISTICS")
	switch {
	case node.NoScan:
		buf.WriteString(" NOSCAN")
	case node.AllColumns:
		buf.WriteString(" FOR ALL COLUMNS")
	case len(node.Columns) > 0:
		buf.WriteString(" FOR COLUMNS ")
		buf.printIdents(node.Columns)
	}
}

// AddColumns is ALTER TABLE ... ADD COLUMNS (...).
type AddColumns struct {
	Table   MultipartIdentifier
	Columns []*QualifiedColType
}

func (node *AddColumns) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v ADD COLUMNS (", node.Table)
	formatNodes(buf, ", ", node.Columns)
	buf.WriteByte(')')
}

// RenameColumn is ALTER TABLE ... RENAME COLUMN from TO to.
type RenameColumn struct {
	Table MultipartIdentifier
	From  MultipartIdentifier
	To    string
}

func (node *RenameColumn) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v RENAME COLUMN %v TO ", node.Table, node.From)
	buf.printIdent(node.To)
}

// DropColumns is ALTER TABLE ... DROP COLUMNS (...).
type DropColumns struct {
	Table   MultipartIdentifier
	Columns []MultipartIdentifier
}

func (node *DropColumns) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v DROP COLUMNS (", node.Table)
	formatNodes(buf, ", ", node.Columns)
	buf.WriteByte(')')
}

// RenameTable is ALTER TABLE|VIEW from RENAME TO to.
type RenameTable struct {
	View bool
	From MultipartIdentifier
	To   MultipartIdentifier
}

func (node *RenameTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER %s %v RENAME TO %v", tableOrView(node.View), node.From, node.To)
}

// SetTableProperties is ALTER TABLE|VIEW ... SET TBLPROPERTIES (...).
type SetTableProperties struct {
	View       bool
	Table      MultipartIdentifier
	Properties TableProperties
}

func (node *SetTableProperties) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER %s %v SET TBLPROPERTIES %v", tableOrView(node.View), node.Table, node.Properties)
}

// UnsetTableProperties is ALTER TABLE|VIEW ... UNSET TBLPROPERTIES
// [IF EXISTS] (...).
type UnsetTableProperties struct {
	View       bool
	Table      MultipartIdentifier
	IfExists   bool
	Properties TableProperties
}

func (node *UnsetTableProperties) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER %s %v UNSET TBLPROPERTIES ", tableOrView(node.View), node.Table)
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Properties)
}

// AlterColumn is ALTER TABLE ... ALTER COLUMN name [TYPE t] [COMMENT c]
// [FIRST|AFTER col].
type AlterColumn struct {
	Table    MultipartIdentifier
	Column   MultipartIdentifier
	Type     DataType
	Comment  *string
	Position *ColPosition
}

func (node *AlterColumn) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v ALTER COLUMN %v", node.Table, node.Column)
	if node.Type != nil {
		buf.Myprintf(" TYPE %v", node.Type)
	}
	buf.printOptString("COMMENT", node.Comment)
	if node.Position != nil {
		buf.Myprintf(" %v", node.Position)
	}
}

// HiveChangeColumn is the Hive ALTER TABLE ... CHANGE COLUMN old new_col.
type HiveChangeColumn struct {
	Table     MultipartIdentifier
	Partition PartitionSpec
	Column    MultipartIdentifier
	NewColumn *ColumnDef
	Position  *ColPosition
}

func (node *HiveChangeColumn) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	buf.Myprintf(" CHANGE COLUMN %v %v", node.Column, node.NewColumn)
	if node.Position != nil {
		buf.Myprintf(" %v", node.Position)
	}
}

// ReplaceColumns is ALTER TABLE ... REPLACE COLUMNS (...).
type ReplaceColumns struct {
	Table   MultipartIdentifier
	Columns []*QualifiedColType
}

func (node *ReplaceColumns) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v REPLACE COLUMNS (", node.Table)
	formatNodes(buf, ", ", node.Columns)
	buf.WriteByte(')')
}

// SetSerde is ALTER TABLE ... SET SERDE 'class' [WITH SERDEPROPERTIES]
// or SET SERDEPROPERTIES (...).
type SetSerde struct {
	Table      MultipartIdentifier
	Partition  PartitionSpec
	Serde      *string
	Properties TableProperties
}

func (node *SetSerde) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	if node.Serde != nil {
		buf.WriteString(" SET SERDE ")
		buf.printString(*node.Serde)
		buf.printOptProperties("WITH SERDEPROPERTIES", node.Properties)
		return
	}
	buf.Myprintf(" SET SERDEPROPERTIES %v", node.Properties)
}

// PartitionLocation is a partition spec with an optional LOCATION.
type PartitionLocation struct {
	Spec     PartitionSpec
	Location *string
}

func (node *PartitionLocation) Format(buf *TrackedBuffer) {
	buf.Myprintf("%v", node.Spec)
	buf.printOptString("LOCATION", node.Location)
}

// AddPartitions is ALTER TABLE ... ADD [IF NOT EXISTS] PARTITION ....
type AddPartitions struct {
	Table       MultipartIdentifier
	IfNotExists bool
	Partitions  []*PartitionLocation
}

func (node *AddPartitions) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v ADD ", node.Table)
	buf.printIfNotExists(node.IfNotExists)
	formatNodes(buf, " ", node.Partitions)
}

// RenamePartition is ALTER TABLE ... PARTITION (...) RENAME TO PARTITION (...).
type RenamePartition struct {
	Table MultipartIdentifier
	From  PartitionSpec
	To    PartitionSpec
}

func (node *RenamePartition) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v %v RENAME TO %v", node.Table, node.From, node.To)
}

// DropPartitions is ALTER TABLE ... DROP [IF EXISTS] PARTITION ..., ... [PURGE].
type DropPartitions struct {
	Table      MultipartIdentifier
	IfExists   bool
	Partitions []PartitionSpec
	Purge      bool
}

func (node *DropPartitions) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v DROP ", node.Table)
	buf.printIfExists(node.IfExists)
	formatNodes(buf, ", ", node.Partitions)
	if node.Purge {
		buf.WriteString(" PURGE")
	}
}

// SetLocation is ALTER TABLE ... [PARTITION (...)] SET LOCATION '...'.
type SetLocation struct {
	Table     MultipartIdentifier
	Partition PartitionSpec
	Location  string
}

func (node *SetLocation) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	buf.WriteString(" SET LOCATION ")
	buf.printString(node.Location)
}

// RecoverPartitions is ALTER TABLE ... RECOVER PARTITIONS.
type RecoverPartitions struct {
	Table MultipartIdentifier
}

func (node *RecoverPartitions) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER TABLE %v RECOVER PARTITIONS", node.Table)
}

// DropTable is DROP TABLE [IF EXISTS] name [PURGE].
type DropTable struct {
	IfExists bool
	Name     MultipartIdentifier
	Purge    bool
}

func (node *DropTable) Format(buf *TrackedBuffer) {
	buf.WriteString("DROP TABLE ")
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Name)
	if node.Purge {
		buf.WriteString(" PURGE")
	}
}

// DropView is DROP VIEW [IF EXISTS] name.
type DropView struct {
	IfExists bool
	Name     MultipartIdentifier
}

func (node *DropView) Format(buf *TrackedBuffer) {
	buf.WriteString("DROP VIEW ")
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Name)
}

// ViewColumn is a column of a view's column list.
type ViewColumn struct {
	Name    string
	Comment *string
}

func (node *ViewColumn) Format(buf *TrackedBuffer) {
	buf.printIdent(node.Name)
	buf.printOptString("COMMENT", node.Comment)
}

// CreateView is CREATE [OR REPLACE] [[GLOBAL] TEMPORARY] VIEW ... AS query.
type CreateView struct {
	Replace     bool
	Global      bool
	Temporary   bool
	IfNotExists bool
	Name        MultipartIdentifier
	Columns     []*ViewColumn
	Comment     *string
	Properties  TableProperties
	Query       *Query
}

func (buf *TrackedBuffer) printCreateViewHead(replace, global, temporary bool) {
	buf.WriteString("CREATE ")
	if replace {
		buf.WriteString("OR REPLACE ")
	}
	if global {
		buf.WriteString("GLOBAL ")
	}
	if temporary {
		buf.WriteString("TEMPORARY ")
	}
	buf.WriteString("VIEW ")
}

func (node *CreateView) Format(buf *TrackedBuffer) {
	buf.printCreateViewHead(node.Replace, node.Global, node.Temporary)
	buf.printIfNotExists(node.IfNotExists)
	buf.Myprintf("%v", node.Name)
	if len(node.Columns) > 0 {
		buf.WriteString(" (")
		formatNodes(buf, ", ", node.Columns)
		buf.WriteByte(')')
	}
	buf.printOptString("COMMENT", node.Comment)
	buf.printOptProperties("TBLPROPERTIES", node.Properties)
	buf.Myprintf(" AS %v", node.Query)
}

// CreateTempViewUsing is CREATE [OR REPLACE] [GLOBAL] TEMPORARY VIEW ...
// USING provider [OPTIONS (...)].
type CreateTempViewUsing struct {
	Replace  bool
	Global   bool
	Name     *TableIdentifier
	Columns  []*ColumnDef
	Provider string
	Options  TableProperties
}

func (node *CreateTempViewUsing) Format(buf *TrackedBuffer) {
	buf.printCreateViewHead(node.Replace, node.Global, true)
	buf.Myprintf("%v", node.Name)
	buf.printColumns(node.Columns)
	buf.Myprintf(" USING %s", FormatIdentifier(node.Provider))
	buf.printOptProperties("OPTIONS", node.Options)
}

// AlterViewQuery is ALTER VIEW name AS query.
type AlterViewQuery struct {
	Name  MultipartIdentifier
	Query *Query
}

func (node *AlterViewQuery) Format(buf *TrackedBuffer) {
	buf.Myprintf("ALTER VIEW %v AS %v", node.Name, node.Query)
}

// FunctionResource is JAR|FILE|ARCHIVE 'uri' of CREATE FUNCTION.
type FunctionResource struct {
	Type string
	URI  string
}

func (node *FunctionResource) Format(buf *TrackedBuffer) {
	buf.Myprintf("%s ", node.Type)
	buf.printString(node.URI)
}

// CreateFunction is CREATE [OR REPLACE] [TEMPORARY] FUNCTION.
type CreateFunction struct {
	Replace     bool
	Temporary   bool
	IfNotExists bool
	Name        MultipartIdentifier
	Class       string
	Resources   []*FunctionResource
}

func (node *CreateFunction) Format(buf *TrackedBuffer) {
	buf.WriteString("CREATE ")
	if node.Replace {
		buf.WriteString("OR REPLACE ")
	}
	if node.Temporary {
		buf.WriteString("TEMPORARY ")
	}
	buf.WriteString("FUNCTION ")
	buf.printIfNotExists(node.IfNotExists)
	buf.Myprintf("%v AS ", node.Name)
	buf.printString(node.Class)
	if len(node.Resources) > 0 {
		buf.WriteString(" USING ")
		formatNodes(buf, ", ", node.Resources)
	}
}

// DropFunction is DROP [TEMPORARY] FUNCTION [IF EXISTS] name.
type DropFunction struct {
	Temporary bool
	IfExists  bool
	Name      MultipartIdentifier
}

func (node *DropFunction) Format(buf *TrackedBuffer) {
	buf.WriteString("DROP ")
	if node.Temporary {
		buf.WriteString("TEMPORARY ")
	}
	buf.WriteString("FUNCTION ")
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Name)
}

// Explain is EXPLAIN [mode] statement.
type Explain struct {
	Mode      string
	Statement Statement
}

func (node *Explain) Format(buf *TrackedBuffer) {
	buf.WriteString("EXPLAIN ")
	if node.Mode != "" {
		buf.Myprintf("%s ", node.Mode)
	}
	buf.Myprintf("%v", node.Statement)
}

// ShowTables is SHOW TABLES [IN ns] [LIKE pattern].
type ShowTables struct {
	Namespace MultipartIdentifier
	Pattern   *string
}

func (node *ShowTables) Format(buf *TrackedBuffer) {
	buf.WriteString("SHOW TABLES")
	if node.Namespace != nil {
		buf.Myprintf(" IN %v", node.Namespace)
	}
	buf.printOptString("LIKE", node.Pattern)
}

// ShowTableExtended is SHOW TABLE EXTENDED [IN ns] LIKE pattern [PARTITION (...)].
type ShowTableExtended struct {
	Namespace MultipartIdentifier
	Pattern   string
	Partition PartitionSpec
}

func (node *ShowTableExtended) Format(buf *TrackedBuffer) {
	buf.WriteString("SHOW TABLE EXTENDED")
	if node.Namespace != nil {
		buf.Myprintf(" IN %v", node.Namespace)
	}
	buf.WriteString(" LIKE ")
	buf.printString(node.Pattern)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
}

// ShowTblProperties is SHOW TBLPROPERTIES table [(key)].
type ShowTblProperties struct {
	Table MultipartIdentifier
	Key   *string
}

func (node *ShowTblProperties) Format(buf *TrackedBuffer) {
	buf.Myprintf("SHOW TBLPROPERTIES %v", node.Table)
	if node.Key != nil {
		buf.WriteString(" (")
		buf.printString(*node.Key)
		buf.WriteByte(')')
	}
}

// ShowColumns is SHOW COLUMNS IN table [IN ns].
type ShowColumns struct {
	Table     MultipartIdentifier
	Namespace MultipartIdentifier
}

func (node *ShowColumns) Format(buf *TrackedBuffer) {
	buf.Myprintf("SHOW COLUMNS IN %v", node.Table)
	if node.Namespace != nil {
		buf.Myprintf(" IN %v", node.Namespace)
	}
}

// ShowViews is SHOW VIEWS [IN ns] [LIKE pattern].
type ShowViews struct {
	Namespace MultipartIdentifier
	Pattern   *string
}

func (node *ShowViews) Format(buf *TrackedBuffer) {
	buf.WriteString("SHOW VIEWS")
	if node.Namespace != nil {
		buf.Myprintf(" IN %v", node.Namespace)
	}
	buf.printOptString("LIKE", node.Pattern)
}

// ShowPartitions is SHOW PARTITIONS table [PARTITION (...)].
type ShowPartitions struct {
	Table     MultipartIdentifier
	Partition PartitionSpec
}

func (node *ShowPartitions) Format(buf *TrackedBuffer) {
	buf.Myprintf("SHOW PARTITIONS %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
}

// ShowFunctions is SHOW [USER|SYSTEM|ALL] FUNCTIONS [LIKE name|pattern].
type ShowFunctions struct {
	Scope   string
	Name    MultipartIdentifier
	Pattern *string
}

func (node *ShowFunctions) Format(buf *TrackedBuffer) {
	buf.WriteString("SHOW ")
	if node.Scope != "" {
		buf.Myprintf("%s ", node.Scope)
	}
	buf.WriteString("FUNCTIONS")
	if node.Name != nil {
		buf.Myprintf(" LIKE %v", node.Name)
	}
	buf.printOptString("LIKE", node.Pattern)
}

// ShowCreateTable is SHOW CREATE TABLE table [AS SERDE].
type ShowCreateTable struct {
	Table   MultipartIdentifier
	AsSerde bool
}

func (node *ShowCreateTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("SHOW CREATE TABLE %v", node.Table)
	if node.AsSerde {
		buf.WriteString(" AS SERDE")
	}
}

// ShowCurrentNamespace is SHOW CURRENT NAMESPACE.
type ShowCurrentNamespace struct{}

func (*ShowCurrentNamespace) Format(buf *TrackedBuffer) {
	buf.WriteString("SHOW CURRENT NAMESPACE")
}

// DescribeFunction is DESCRIBE FUNCTION [EXTENDED] name. The name is a
// qualified name, a string literal or an operator.
type DescribeFunction struct {
	Extended bool
	Name     MultipartIdentifier
	Literal  *string
	Operator string
}

func (node *DescribeFunction) Format(buf *TrackedBuffer) {
	buf.WriteString("DESCRIBE FUNCTION ")
	if node.Extended {
		buf.WriteString("EXTENDED ")
	}
	switch {
	case node.Literal != nil:
		buf.printString(*node.Literal)
	case node.Operator != "":
		buf.WriteString(node.Operator)
	default:
		buf.Myprintf("%v", node.Name)
	}
}

// DescribeNamespace is DESCRIBE DATABASE|SCHEMA|NAMESPACE [EXTENDED] name.
type DescribeNamespace struct {
	Kind     string
	Extended bool
	Name     MultipartIdentifier
}

func (node *DescribeNamespace) Format(buf *TrackedBuffer) {
	buf.Myprintf("DESCRIBE %s ", node.Kind)
	if node.Extended {
		buf.WriteString("EXTENDED ")
	}
	buf.Myprintf("%v", node.Name)
}

// DescribeRelation is DESCRIBE [TABLE] [EXTENDED|FORMATTED] table
// [PARTITION (...)] [column].
type DescribeRelation struct {
	Option    string
	Table     MultipartIdentifier
	Partition PartitionSpec
	Column    MultipartIdentifier
}

func (node *DescribeRelation) Format(buf *TrackedBuffer) {
	buf.WriteString("DESCRIBE TABLE ")
	if node.Option != "" {
		buf.Myprintf("%s ", node.Option)
	}
	buf.Myprintf("%v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
	if node.Column != nil {
		buf.Myprintf(" %v", node.Column)
	}
}

// DescribeQuery is DESCRIBE QUERY query.
type DescribeQuery struct {
	Query *Query
}

func (node *DescribeQuery) Format(buf *TrackedBuffer) {
	buf.Myprintf("DESCRIBE QUERY %v", node.Query)
}

// CommentOnNamespace is COMMENT ON DATABASE|SCHEMA|NAMESPACE name IS
// 'text'|NULL. Comment is nil for NULL.
type CommentOnNamespace struct {
	Kind    string
	Name    MultipartIdentifier
	Comment *string
}

func (buf *TrackedBuffer) printCommentValue(comment *string) {
	if comment == nil {
		buf.WriteString("NULL")
		return
	}
	buf.printString(*comment)
}

func (node *CommentOnNamespace) Format(buf *TrackedBuffer) {
	buf.Myprintf("COMMENT ON %s %v IS ", node.Kind, node.Name)
	buf.printCommentValue(node.Comment)
}

// CommentOnTable is COMMENT ON TABLE name IS 'text'|NULL.
type CommentOnTable struct {
	Name    MultipartIdentifier
	Comment *string
}

func (node *CommentOnTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("COMMENT ON TABLE %v IS ", node.Name)
	buf.printCommentValue(node.Comment)
}

// RefreshTable is REFRESH TABLE name.
type RefreshTable struct {
	Name MultipartIdentifier
}

func (node *RefreshTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("REFRESH TABLE %v", node.Name)
}

// RefreshFunction is REFRESH FUNCTION name.
type RefreshFunction struct {
	Name MultipartIdentifier
}

func (node *RefreshFunction) Format(buf *TrackedBuffer) {
	buf.Myprintf("REFRESH FUNCTION %v", node.Name)
}

// RefreshResource is REFRESH followed by a path, quoted or raw.
type RefreshResource struct {
	Path   string
	Quoted bool
}

func (node *RefreshResource) Format(buf *TrackedBuffer) {
	buf.WriteString("REFRESH ")
	if node.Quoted {
		buf.printString(node.Path)
		return
	}
	buf.WriteString(node.Path)
}

// CacheTable is CACHE [LAZY] TABLE name [OPTIONS (...)] [[AS] query].
type CacheTable struct {
	Lazy    bool
	Name    MultipartIdentifier
	Options TableProperties
	Query   *Query
}

func (node *CacheTable) Format(buf *TrackedBuffer) {
	buf.WriteString("CACHE ")
	if node.Lazy {
		buf.WriteString("LAZY ")
	}
	buf.Myprintf("TABLE %v", node.Name)
	buf.printOptProperties("OPTIONS", node.Options)
	buf.printAsQuery(node.Query)
}

// UncacheTable is UNCACHE TABLE [IF EXISTS] name.
type UncacheTable struct {
	IfExists bool
	Name     MultipartIdentifier
}

func (node *UncacheTable) Format(buf *TrackedBuffer) {
	buf.WriteString("UNCACHE TABLE ")
	buf.printIfExists(node.IfExists)
	buf.Myprintf("%v", node.Name)
}

// ClearCache is CLEAR CACHE.
type ClearCache struct{}

func (*ClearCache) Format(buf *TrackedBuffer) {
	buf.WriteString("CLEAR CACHE")
}

// LoadData is LOAD DATA [LOCAL] INPATH 'path' [OVERWRITE] INTO TABLE name
// [PARTITION (...)].
type LoadData struct {
	Local     bool
	Path      string
	Overwrite bool
	Table     MultipartIdentifier
	Partition PartitionSpec
}

func (node *LoadData) Format(buf *TrackedBuffer) {
	buf.WriteString("LOAD DATA ")
	if node.Local {
		buf.WriteString("LOCAL ")
	}
	buf.WriteString("INPATH ")
	buf.printString(node.Path)
	if node.Overwrite {
		buf.WriteString(" OVERWRITE")
	}
	buf.Myprintf(" INTO TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
}

// TruncateTable is TRUNCATE TABLE name [PARTITION (...)].
type TruncateTable struct {
	Table     MultipartIdentifier
	Partition PartitionSpec
}

func (node *TruncateTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("TRUNCATE TABLE %v", node.Table)
	if node.Partition != nil {
		buf.Myprintf(" %v", node.Partition)
	}
}

// RepairTable is MSCK REPAIR TABLE name.
type RepairTable struct {
	Table MultipartIdentifier
}

func (node *RepairTable) Format(buf *TrackedBuffer) {
	buf.Myprintf("MSCK REPAIR TABLE %v", node.Table)
}

// ManageResource is ADD|LIST FILE|JAR|ARCHIVE [paths]. Paths holds the
// raw text following the resource type.
type ManageResource struct {
	Op    string
	Type  string
	Paths string
}

func (node *ManageResource) Format(buf *TrackedBuffer) {
	buf.Myprintf("%s %s", node.Op, strings.ToUpper(node.Type))
	if node.Paths != "" {
		buf.Myprintf(" %s", node.Paths)
	}
}

// SetTimeZone is SET TIME ZONE LOCAL|'zone'|interval.
type SetTimeZone struct {
	Local    bool
	Zone     *string
	Interval *IntervalLiteral
}

func (node *SetTimeZone) Format(buf *TrackedBuffer) {
	buf.WriteString("SET TIME ZONE ")
	switch {
	case node.Local:
		buf.WriteString("LOCAL")
	case node.Zone != nil:
		buf.printString(*node.Zone)
	default:
		buf.Myprintf("%v", node.Interval)
	}
}

// SetConfiguration is SET [key[=value]] or SET -v. The key and value are
// taken from the raw source text.
type SetConfiguration struct {
	Key     string
	Value   *string
	Verbose bool
}

func (node *SetConfiguration) Format(buf *TrackedBuffer) {
	buf.WriteString("SET")
	switch {
	case node.Verbose:
		buf.WriteString(" -v")
	case node.Key != "":
		buf.Myprintf(" %s", node.Key)
		if node.Value != nil {
			buf.Myprintf("=%s", *node.Value)
		}
	}
}

// ResetConfiguration is RESET [key].
type ResetConfiguration struct {
	Key string
}

func (node *ResetConfiguration) Format(buf *TrackedBuffer) {
	buf.WriteString("RESET")
	if node.Key != "" {
		buf.Myprintf(" %s", node.Key)
	}
}
