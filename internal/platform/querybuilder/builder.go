// Package querybuilder renders the small set of Postgres statements the
// repositories need, with $n placeholders numbered in argument order.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// stmt accumulates SQL text and the arguments bound into it. The next
// placeholder number is always len(args)+1.
type stmt struct {
	sql  strings.Builder
	args []any
}

func (s *stmt) write(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

func (s *stmt) bind(value any) {
	s.args = append(s.args, value)
	s.sql.WriteByte('$')
	s.sql.WriteString(strconv.Itoa(len(s.args)))
}

func (s *stmt) bindList(values []any) {
	s.sql.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			s.sql.WriteString(", ")
		}
		s.bind(v)
	}
	s.sql.WriteByte(')')
}

// expr copies raw SQL, binding one argument for each ? in order. Extra
// question marks are kept literally.
func (s *stmt) expr(raw string, args []any) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '?' && len(args) > 0 {
			s.bind(args[0])
			args = args[1:]
			continue
		}
		s.sql.WriteByte(raw[i])
	}
}

func (s *stmt) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			s.write(" WHERE ")
		} else {
			s.write(" AND ")
		}
		c(s)
	}
}

func (s *stmt) suffix(raw string) {
	if raw != "" {
		s.write(" ", raw)
	}
}

func (s *stmt) done() (string, []any, error) {
	return s.sql.String(), s.args, nil
}

// Condition is one predicate of a WHERE clause; conditions are ANDed.
type Condition func(s *stmt)

func Eq(column string, value any) Condition {
	return func(s *stmt) {
		s.write(column, " = ")
		s.bind(value)
	}
}

// In renders "column IN (...)"; an empty list matches no row.
func In(column string, values []any) Condition {
	return func(s *stmt) {
		if len(values) == 0 {
			s.write("1=0")
			return
		}
		s.write(column, " IN ")
		s.bindList(values)
	}
}

// NotIn renders "column NOT IN (...)"; an empty list matches every row.
func NotIn(column string, values []any) Condition {
	return func(s *stmt) {
		if len(values) == 0 {
			s.write("1=1")
			return
		}
		s.write(column, " NOT IN ")
		s.bindList(values)
	}
}

// Expr is raw SQL with ? markers for args.
func Expr(raw string, args ...any) Condition {
	return func(s *stmt) { s.expr(raw, args) }
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conds ...Condition) *SelectBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, errors.New("select: no columns")
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("select: no table")
	}

	var s stmt
	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	s.where(b.where)
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.write(" LIMIT ", strconv.Itoa(b.limit))
	}
	return s.done()
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = columns
	return b
}

// Values appends one row; call it again for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

// Suffix appends a trailing clause such as RETURNING or ON CONFLICT.
func (b *InsertBuilder) Suffix(raw string) *InsertBuilder {
	b.suffix = strings.TrimSpace(raw)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("insert: no table")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert: no columns")
	case len(b.rows) == 0:
		return "", nil, errors.New("insert: no rows")
	}

	var s stmt
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert: row %d has %d values for %d columns", i, len(row), len(b.columns))
		}
		if i > 0 {
			s.write(", ")
		}
		s.bindList(row)
	}
	s.suffix(b.suffix)
	return s.done()
}

type assignment struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	b.where = append(b.where, conds...)
	return b
}

func (b *UpdateBuilder) Suffix(raw string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(raw)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("update: no table")
	case len(b.sets) == 0:
		return "", nil, errors.New("update: nothing to set")
	}

	var s stmt
	s.write("UPDATE ", b.table, " SET ")
	for i, a := range b.sets {
		if i > 0 {
			s.write(", ")
		}
		s.write(a.column, " = ")
		s.bind(a.value)
	}
	s.where(b.where)
	s.suffix(b.suffix)
	return s.done()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	b.where = append(b.where, conds...)
	return b
}

// ToSQL refuses to build a DELETE without conditions.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("delete: no table")
	case len(b.where) == 0:
		return "", nil, errors.New("delete: refusing to delete without conditions")
	}

	var s stmt
	s.write("DELETE FROM ", b.table)
	s.where(b.where)
	return s.done()
}
