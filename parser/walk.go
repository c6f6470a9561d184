package parser

import (
	"fmt"
	"strings"
)

// Visit is called for every node by Walk. Returning false skips the
// children of node; a non-nil error stops the walk and is returned by Walk.
type Visit func(node SQLNode) (kontinue bool, err error)

// Walk calls visit on each of nodes and, depth first, on all of their
// descendants. Parents are visited before children and children in source
// order. Nil nodes are skipped.
func Walk(visit Visit, nodes ...SQLNode) error {
	for _, node := range nodes {
		if isNilNode(node) {
			continue
		}
		kontinue, err := visit(node)
		if err != nil {
			return err
		}
		if !kontinue {
			continue
		}
		if err := Walk(visit, children(node)...); err != nil {
			return err
		}
	}
	return nil
}

func list[T SQLNode](nodes []T) []SQLNode {
	out := make([]SQLNode, len(nodes))
	for i, node := range nodes {
		out[i] = node
	}
	return out
}

func flatten(rows [][]Expr) []SQLNode {
	var out []SQLNode
	for _, row := range rows {
		out = append(out, list(row)...)
	}
	return out
}

func join(groups ...[]SQLNode) []SQLNode {
	var out []SQLNode
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

func (node *QueryOrganization) children() []SQLNode {
	return join(list(node.OrderBy), list(node.ClusterBy), list(node.DistributeBy),
		list(node.SortBy), list(node.Windows), []SQLNode{node.Limit})
}

func (node *TableClauses) children() []SQLNode {
	return join([]SQLNode{node.Options}, list(node.Partitioning), list(node.PartitionColumns),
		[]SQLNode{node.Bucket, node.Skew, node.RowFormat, node.FileFormat, node.Properties})
}

// children returns the direct children of node in source order. Every
// node type is listed; a type missing here is a programming error.
func children(node SQLNode) []SQLNode {
	switch n := node.(type) {
	// Leaves.
	case *NullLiteral, *BooleanLiteral, *StringLiteral, *NumericLiteral, *TypedLiteral,
		*IntervalValue, *ColumnRef, *Star, *CurrentDatetime, *WindowRef, *TableAlias,
		*TableQuery, *PrimitiveType, *ColPosition, MultipartIdentifier, *TableIdentifier,
		*FunctionIdentifier, *TableProperty, *OrderedIdentifier, *RowFormatDelimited,
		*FileFormatName, *FileFormatClasses, *IdentityTransform:
		return nil
	case *Use, *SetNamespaceLocation, *DropNamespace, *ShowNamespaces, *RenameColumn,
		*DropColumns, *RenameTable, *RecoverPartitions, *DropTable, *DropView, *ViewColumn,
		*FunctionResource, *DropFunction, *ShowTables, *ShowTblProperties, *ShowColumns,
		*ShowViews, *ShowFunctions, *ShowCreateTable, *ShowCurrentNamespace,
		*DescribeFunction, *DescribeNamespace, *CommentOnNamespace, *CommentOnTable,
		*RefreshTable, *RefreshFunction, *RefreshResource, *UncacheTable, *ClearCache,
		*RepairTable, *ManageResource, *SetConfiguration, *ResetConfiguration:
		return nil

	// Expressions.
	case *IntervalUnit:
		return []SQLNode{n.Value}
	case *IntervalLiteral:
		return list(n.Units)
	case *Dereference:
		return []SQLNode{n.Base}
	case *FunctionCall:
		return join(list(n.Args), []SQLNode{n.Filter, n.Over})
	case *Lambda:
		return []SQLNode{n.Body}
	case *Subscript:
		return []SQLNode{n.Base, n.Index}
	case *RowConstructor:
		return list(n.Exprs)
	case *Subquery:
		return []SQLNode{n.Query}
	case *Exists:
		return []SQLNode{n.Query}
	case *When:
		return []SQLNode{n.Cond, n.Result}
	case *SearchedCase:
		return join(list(n.Whens), []SQLNode{n.Else})
	case *SimpleCase:
		return join([]SQLNode{n.Value}, list(n.Whens), []SQLNode{n.Else})
	case *Cast:
		return []SQLNode{n.Expr, n.Type}
	case *Struct:
		return list(n.Args)
	case *First:
		return []SQLNode{n.Expr}
	case *Last:
		return []SQLNode{n.Expr}
	case *Position:
		return []SQLNode{n.Substr, n.Str}
	case *Extract:
		return []SQLNode{n.Source}
	case *Substring:
		return []SQLNode{n.Str, n.Pos, n.Len}
	case *Trim:
		return []SQLNode{n.TrimStr, n.Src}
	case *Overlay:
		return []SQLNode{n.Input, n.Replace, n.Pos, n.Len}
	case *UnaryExpr:
		return []SQLNode{n.Expr}
	case *BinaryExpr:
		return []SQLNode{n.Left, n.Right}
	case *Comparison:
		return []SQLNode{n.Left, n.Right}
	case *NotExpr:
		return []SQLNode{n.Expr}
	case *AndExpr:
		return []SQLNode{n.Left, n.Right}
	case *OrExpr:
		return []SQLNode{n.Left, n.Right}
	case *Between:
		return []SQLNode{n.Expr, n.From, n.To}
	case *InList:
		return join([]SQLNode{n.Expr}, list(n.List))
	case *InSubquery:
		return []SQLNode{n.Expr, n.Query}
	case *Like:
		return []SQLNode{n.Expr, n.Pattern}
	case *LikeQuantified:
		return join([]SQLNode{n.Expr}, list(n.Patterns))
	case *RLike:
		return []SQLNode{n.Expr, n.Pattern}
	case *IsNull:
		return []SQLNode{n.Expr}
	case *IsBoolean:
		return []SQLNode{n.Expr}
	case *IsDistinctFrom:
		return []SQLNode{n.Left, n.Right}
	case *NamedExpr:
		return []SQLNode{n.Expr}

	// Queries.
	case *Query:
		return join([]SQLNode{n.With, n.Body}, n.QueryOrganization.children())
	case *SortItem:
		return []SQLNode{n.Expr}
	case *With:
		return list(n.CTEs)
	case *CommonTableExpr:
		return []SQLNode{n.Query}
	case *Hint:
		return list(n.Params)
	case *Select:
		return join(list(n.Hints), list(n.Exprs), []SQLNode{n.From}, list(n.LateralViews),
			[]SQLNode{n.Where, n.GroupBy, n.Having}, list(n.Windows))
	case *FromClause:
		return join(list(n.Relations), list(n.LateralViews), []SQLNode{n.Pivot})
	case *GroupBy:
		return join(list(n.Exprs), flatten(n.Sets))
	case *NamedWindow:
		return []SQLNode{n.Spec}
	case *WindowDef:
		return join(list(n.PartitionBy), list(n.OrderBy), []SQLNode{n.Frame})
	case *WindowFrame:
		return []SQLNode{n.Start, n.End}
	case *FrameBound:
		return []SQLNode{n.Expr}
	case *TransformSelect:
		return join(list(n.Exprs), []SQLNode{n.InRowFormat}, list(n.OutputColumns),
			[]SQLNode{n.OutRowFormat, n.From, n.Where})
	case *SetOperation:
		return []SQLNode{n.Left, n.Right}
	case *InlineTable:
		return join(list(n.Rows), []SQLNode{n.Alias})
	case *ParenQuery:
		return []SQLNode{n.Query}
	case *FromStatement:
		return join([]SQLNode{n.From}, list(n.Bodies))
	case *TableName:
		return []SQLNode{n.Sample, n.Alias}
	case *AliasedQuery:
		return []SQLNode{n.Query, n.Sample, n.Alias}
	case *AliasedRelation:
		return []SQLNode{n.Relation, n.Sample, n.Alias}
	case *TableFunction:
		return join(list(n.Args), []SQLNode{n.Alias})
	case *Join:
		return []SQLNode{n.Left, n.Right, n.On}
	case *Sample:
		return []SQLNode{n.Expr}
	case *LateralView:
		return list(n.Args)
	case *PivotValue:
		return []SQLNode{n.Expr}
	case *Pivot:
		return join(list(n.Aggregates), list(n.Values))

	// Types, schemas and table clauses.
	case *ArrayType:
		return []SQLNode{n.Elem}
	case *MapType:
		return []SQLNode{n.Key, n.Value}
	case *StructType:
		return list(n.Fields)
	case *ColumnDef:
		return []SQLNode{n.Type}
	case *QualifiedColType:
		return []SQLNode{n.Type, n.Position}
	case TableProperties:
		return list(n)
	case *PartitionVal:
		return []SQLNode{n.Value}
	case PartitionSpec:
		return list(n)
	case *BucketSpec:
		return list(n.SortColumns)
	case *SkewSpec:
		return flatten(n.Values)
	case *RowFormatSerde:
		return []SQLNode{n.Properties}
	case *StorageHandler:
		return []SQLNode{n.Properties}
	case *ApplyTransform:
		return list(n.Args)

	// Statements.
	case *InsertIntoTable:
		return []SQLNode{n.Partition}
	case *InsertOverwriteDir:
		return []SQLNode{n.Options, n.RowFormat, n.FileFormat}
	case *Insert:
		return []SQLNode{n.With, n.Target, n.Query}
	case *InsertBody:
		return []SQLNode{n.Target, n.Query}
	case *MultiInsert:
		return join([]SQLNode{n.With, n.From}, list(n.Inserts))
	case *Delete:
		return []SQLNode{n.With, n.Alias, n.Where}
	case *Assignment:
		return []SQLNode{n.Value}
	case *Update:
		return join([]SQLNode{n.With, n.Alias}, list(n.Assignments), []SQLNode{n.Where})
	case *MergeAction:
		return join(list(n.Assignments), list(n.Values))
	case *MergeClause:
		return []SQLNode{n.Condition, n.Action}
	case *Merge:
		return join([]SQLNode{n.With, n.TargetAlias, n.SourceQuery, n.SourceAlias, n.On}, list(n.Clauses))
	case *CreateNamespace:
		return []SQLNode{n.Properties}
	case *SetNamespaceProperties:
		return []SQLNode{n.Properties}
	case *CreateTable:
		return join(list(n.Columns), n.TableClauses.children(), []SQLNode{n.AsQuery})
	case *ReplaceTable:
		return join(list(n.Columns), n.TableClauses.children(), []SQLNode{n.AsQuery})
	case *CreateTableLike:
		return []SQLNode{n.Target, n.Source, n.RowFormat, n.FileFormat, n.Properties}
	case *Analyze:
		return []SQLNode{n.Partition}
	case *AddColumns:
		return list(n.Columns)
	case *SetTableProperties:
		return []SQLNode{n.Properties}
	case *UnsetTableProperties:
		return []SQLNode{n.Properties}
	case *AlterColumn:
		return []SQLNode{n.Type, n.Position}
	case *HiveChangeColumn:
		return []SQLNode{n.Partition, n.NewColumn, n.Position}
	case *ReplaceColumns:
		return list(n.Columns)
	case *SetSerde:
		return []SQLNode{n.Partition, n.Properties}
	case *PartitionLocation:
		return []SQLNode{n.Spec}
	case *AddPartitions:
		return list(n.Partitions)
	case *RenamePartition:
		return []SQLNode{n.From, n.To}
	case *DropPartitions:
		return list(n.Partitions)
	case *SetLocation:
		return []SQLNode{n.Partition}
	case *CreateView:
		return join(list(n.Columns), []SQLNode{n.Properties, n.Query})
	case *CreateTempViewUsing:
		return join([]SQLNode{n.Name}, list(n.Columns), []SQLNode{n.Options})
	case *AlterViewQuery:
		return []SQLNode{n.Query}
	case *CreateFunction:
		return list(n.Resources)
	case *Explain:
		return []SQLNode{n.Statement}
	case *ShowTableExtended:
		return []SQLNode{n.Partition}
	case *ShowPartitions:
		return []SQLNode{n.Partition}
	case *DescribeRelation:
		return []SQLNode{n.Partition}
	case *DescribeQuery:
		return []SQLNode{n.Query}
	case *CacheTable:
		return []SQLNode{n.Options, n.Query}
	case *LoadData:
		return []SQLNode{n.Partition}
	case *TruncateTable:
		return []SQLNode{n.Partition}
	case *SetTimeZone:
		return []SQLNode{n.Interval}
	}
	panic(fmt.Sprintf("parser: unknown node type %T", node))
}

// TableNames returns the tables and views a statement reads or writes, in
// order of first appearance and without duplicates. References to common
// table expressions defined in the statement are left out.
func TableNames(stmt Statement) []MultipartIdentifier {
	ctes := map[string]bool{}
	var names []MultipartIdentifier
	seen := map[string]bool{}
	add := func(name MultipartIdentifier) {
		if len(name) == 0 {
			return
		}
		key := strings.ToLower(strings.Join(name, "\x00"))
		if seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}
	_ = Walk(func(node SQLNode) (bool, error) {
		switch n := node.(type) {
		case *CommonTableExpr:
			ctes[strings.ToLower(n.Name)] = true
		case *TableName:
			if len(n.Name) == 1 && ctes[strings.ToLower(n.Name[0])] {
				break
			}
			add(n.Name)
		case *TableQuery:
			if len(n.Name) == 1 && ctes[strings.ToLower(n.Name[0])] {
				break
			}
			add(n.Name)
		case *InsertIntoTable:
			add(n.Table)
		case *Delete:
			add(n.Table)
		case *Update:
			add(n.Table)
		case *Merge:
			add(n.Target)
			add(n.SourceTable)
		}
		return true, nil
	}, stmt)
	return names
}
