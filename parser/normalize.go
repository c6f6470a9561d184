package parser

import (
	"reflect"
	"strings"
)

var multipartIdentifierType = reflect.TypeOf(MultipartIdentifier(nil))

// Normalize rewrites node in place so that trees differing only in the case
// of identifiers become equal. Identifiers are resolved case-insensitively,
// string literals and type parameters are left alone.
func Normalize(node SQLNode) {
	_ = Walk(func(node SQLNode) (bool, error) {
		lowerMultipartFields(node)
		switch n := node.(type) {
		case *ColumnRef:
			n.Name = strings.ToLower(n.Name)
		case *Dereference:
			n.Field = strings.ToLower(n.Field)
		case *Lambda:
			lowerAll(n.Params)
		case *NamedExpr:
			lowerAll(n.Names)
		case *TableAlias:
			n.Name = strings.ToLower(n.Name)
			lowerAll(n.Columns)
		case *CommonTableExpr:
			n.Name = strings.ToLower(n.Name)
			lowerAll(n.Columns)
		case *LateralView:
			n.Table = strings.ToLower(n.Table)
			lowerAll(n.Columns)
		case *Join:
			lowerAll(n.Using)
		case *NamedWindow:
			n.Name = strings.ToLower(n.Name)
		case *WindowRef:
			n.Name = strings.ToLower(n.Name)
		case *TableFunction:
			n.Name = strings.ToLower(n.Name)
		case *Pivot:
			lowerAll(n.Columns)
		case *TransformSelect:
			lowerAll(n.OutputNames)
		case *ColumnDef:
			n.Name = strings.ToLower(n.Name)
		case *ViewColumn:
			n.Name = strings.ToLower(n.Name)
		case *PartitionVal:
			n.Name = strings.ToLower(n.Name)
		case *OrderedIdentifier:
			n.Name = strings.ToLower(n.Name)
		case *BucketSpec:
			lowerAll(n.Columns)
		case *SkewSpec:
			lowerAll(n.Columns)
		case *TableIdentifier:
			n.Database = strings.ToLower(n.Database)
			n.Name = strings.ToLower(n.Name)
		case *FunctionIdentifier:
			n.Database = strings.ToLower(n.Database)
			n.Name = strings.ToLower(n.Name)
		case *Analyze:
			lowerAll(n.Columns)
		case *RenameColumn:
			n.To = strings.ToLower(n.To)
		}
		return true, nil
	}, node)
}

// lowerMultipartFields lower-cases every MultipartIdentifier and
// []MultipartIdentifier field of the struct node points to.
func lowerMultipartFields(node SQLNode) {
	v := reflect.ValueOf(node)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch {
		case field.Type() == multipartIdentifierType:
			lowerAll(field.Interface().(MultipartIdentifier))
		case field.Kind() == reflect.Slice && field.Type().Elem() == multipartIdentifierType:
			for _, name := range field.Interface().([]MultipartIdentifier) {
				lowerAll(name)
			}
		}
	}
}

func lowerAll(names []string) {
	for i, name := range names {
		names[i] = strings.ToLower(name)
	}
}
