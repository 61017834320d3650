package table

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ToAST converts the table to Shape's AST: an *ast.ArrayDataNode of records,
// header first, where each record is an *ast.ArrayDataNode of
// *ast.LiteralNode string fields.
func (t *Table) ToAST() *ast.ArrayDataNode {
	if len(t.cells) == 0 {
		return ast.NewArrayDataNode([]ast.SchemaNode{}, ast.ZeroPosition())
	}

	records := make([]ast.SchemaNode, 0, t.rows+1)
	for r := 0; r <= t.rows; r++ {
		record := t.record(r)
		fields := make([]ast.SchemaNode, len(record))
		for i, cell := range record {
			fields[i] = ast.NewLiteralNode(cell, ast.ZeroPosition())
		}
		records = append(records, ast.NewArrayDataNode(fields, ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// FromAST builds a table from an AST in the form produced by ToAST. The first
// record is the header; every other record must have the same length.
func FromAST(node ast.SchemaNode, opts Options) (*Table, error) {
	arrayNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}

	t := NewWithOptions(opts)
	for i, elem := range arrayNode.Elements() {
		record, err := recordFromAST(elem)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		if i == 0 {
			if err := t.SetHeader(cells(record).All()); err != nil {
				return nil, err
			}
			continue
		}
		if len(record) != t.Columns() {
			return nil, fmt.Errorf("record %d: got %d fields, want %d", i, len(record), t.Columns())
		}
		t.AppendCells(record...)
	}
	return t, nil
}

// recordFromAST extracts the string fields of one record node.
func recordFromAST(node ast.SchemaNode) ([]string, error) {
	recordNode, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected record to be *ast.ArrayDataNode, got %T", node)
	}

	elements := recordNode.Elements()
	record := make([]string, len(elements))
	for i, fieldNode := range elements {
		literalNode, ok := fieldNode.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("expected field to be *ast.LiteralNode, got %T", fieldNode)
		}
		switch v := literalNode.Value().(type) {
		case string:
			record[i] = v
		case nil:
			record[i] = ""
		default:
			record[i] = fmt.Sprintf("%v", v)
		}
	}
	return record, nil
}
