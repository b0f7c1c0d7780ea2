// Package querybuilder renders Postgres statements with numbered placeholders.
// Builders collect the first error they meet and report it from ToSQL.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// statement accumulates SQL text and positional arguments.
type statement struct {
	sql  strings.Builder
	args []any
}

func (s *statement) write(parts ...string) {
	for _, p := range parts {
		s.sql.WriteString(p)
	}
}

func (s *statement) bind(value any) {
	s.args = append(s.args, value)
	s.sql.WriteString("$")
	s.sql.WriteString(strconv.Itoa(len(s.args)))
}

// bindExpr copies expr, replacing each '?' with the next bound value.
func (s *statement) bindExpr(expr string, values []any) error {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] != '?' {
			s.sql.WriteByte(expr[i])
			continue
		}
		if next >= len(values) {
			return fmt.Errorf("expression %q has more placeholders than values", expr)
		}
		s.bind(values[next])
		next++
	}
	if next != len(values) {
		return fmt.Errorf("expression %q has %d placeholders, got %d values", expr, next, len(values))
	}
	return nil
}

func (s *statement) where(conds []Condition) error {
	for i, c := range conds {
		if i == 0 {
			s.write(" WHERE ")
		} else {
			s.write(" AND ")
		}
		if err := c.render(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *statement) returning(cols []string) {
	if len(cols) > 0 {
		s.write(" RETURNING ", strings.Join(cols, ", "))
	}
}

func (s *statement) result() (string, []any, error) {
	args := s.args
	if args == nil {
		args = []any{}
	}
	return s.sql.String(), args, nil
}

type Condition interface {
	render(s *statement) error
}

type eqCondition struct {
	column string
	value  any
}

func (c eqCondition) render(s *statement) error {
	s.write(c.column, " = ")
	s.bind(c.value)
	return nil
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

// EqIf is Eq for non-blank values and nil otherwise. Where skips nil conditions.
func EqIf(column, value string) Condition {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return Eq(column, value)
}

type exprCondition struct {
	expr   string
	values []any
}

func (c exprCondition) render(s *statement) error {
	return s.bindExpr(c.expr, c.values)
}

// Expr is a raw predicate using '?' for bound values.
func Expr(expr string, values ...any) Condition {
	return exprCondition{expr: expr, values: values}
}

func compact(dst, conds []Condition) []Condition {
	for _, c := range conds {
		if c != nil {
			dst = append(dst, c)
		}
	}
	return dst
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
	b.where = compact(b.where, conds)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

// Limit caps the row count; zero or less means no LIMIT clause.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = n
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var s statement
	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	if err := s.where(b.where); err != nil {
		return "", nil, err
	}
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.write(" LIMIT ", strconv.Itoa(b.limit))
	}
	return s.result()
}

type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
	returning []string
	err       error
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = columns
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.values = values
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = columns
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.values) != len(b.columns) {
		return "", nil, fmt.Errorf("insert has %d values for %d columns", len(b.values), len(b.columns))
	}

	var s statement
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES (")
	for i, v := range b.values {
		if i > 0 {
			s.write(", ")
		}
		s.bind(v)
	}
	s.write(")")
	s.returning(b.returning)
	return s.result()
}

type assignment struct {
	column string
	value  any
	expr   *exprCondition
}

type UpdateBuilder struct {
	table     string
	sets      []assignment
	where     []Condition
	returning []string
	err       error
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression, e.g. SetExpr("last_updated", "NOW()").
func (b *UpdateBuilder) SetExpr(column, expr string, values ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, expr: &exprCondition{expr: expr, values: values}})
	return b
}

func (b *UpdateBuilder) Where(conds ...Condition) *UpdateBuilder {
	b.where = compact(b.where, conds)
	return b
}

func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = columns
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update has no assignments")
	}

	var s statement
	s.write("UPDATE ", b.table, " SET ")
	for i, a := range b.sets {
		if i > 0 {
			s.write(", ")
		}
		s.write(a.column, " = ")
		if a.expr != nil {
			if err := a.expr.render(&s); err != nil {
				return "", nil, err
			}
			continue
		}
		s.bind(a.value)
	}
	if err := s.where(b.where); err != nil {
		return "", nil, err
	}
	s.returning(b.returning)
	return s.result()
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conds ...Condition) *DeleteBuilder {
	b.where = compact(b.where, conds)
	return b
}

// ToSQL renders the statement. Without conditions every row is deleted.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	var s statement
	s.write("DELETE FROM ", b.table)
	if err := s.where(b.where); err != nil {
		return "", nil, err
	}
	return s.result()
}
