package query

import "strings"

// ProjectionMap maps struct field names to qualified database columns
// for a single table, preserving declaration order for SELECT lists.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	order   []string
	columns map[string]string
}

// NewProjectionMap creates a projection for schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project registers a column under a struct field name and returns the
// projection for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	if _, ok := p.columns[field]; !ok {
		p.order = append(p.order, field)
	}
	p.columns[field] = column
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the alias-qualified column for a field name.
// Unknown fields are returned unchanged so raw expressions pass through.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.columns[field]
	if !ok {
		return field
	}
	if strings.ContainsAny(col, "( ") {
		return col
	}
	return p.alias + "." + col
}

// Columns returns the full SELECT list in registration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.order))
	for i, field := range p.order {
		cols[i] = p.Column(field)
	}
	return strings.Join(cols, ", ")
}
