// Package query builds SELECT statements over a single projected table.
package query

import "strings"

// ProjectionMap maps view field names to alias-qualified columns of one
// table. Columns are selected in the order they were projected.
type ProjectionMap struct {
	from    string
	alias   string
	columns map[string]string
	order   []string
}

// NewProjectionMap starts a projection over schema.table using alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		from:    schema + "." + table + " " + alias,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project maps column to the view field name and returns p for chaining.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns[view] = qualified
	p.order = append(p.order, qualified)
	return p
}

// Table is the FROM clause target, "schema.table alias".
func (p *ProjectionMap) Table() string {
	return p.from
}

// Column resolves a view field. Unmapped names pass through unchanged so
// callers can filter or sort on columns they do not select.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.columns[view]; ok {
		return col
	}
	return view
}

// Columns is the SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.order, ", ")
}
