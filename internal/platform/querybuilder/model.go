package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel inserts every exported field of model carrying a db tag.
func InsertModel(table string, model any) *InsertBuilder {
	b := InsertInto(table)
	cols, vals, err := modelColumns(model)
	if err != nil {
		b.err = err
		return b
	}
	return b.Columns(cols...).Values(vals...)
}

// UpdateModel assigns every db-tagged column of model except those in skip.
func UpdateModel(table string, model any, skip ...string) *UpdateBuilder {
	b := Update(table)
	cols, vals, err := modelColumns(model)
	if err != nil {
		b.err = err
		return b
	}

	for i, col := range cols {
		if containsColumn(skip, col) {
			continue
		}
		b.Set(col, vals[i])
	}
	if len(b.sets) == 0 {
		b.err = fmt.Errorf("model has no updatable columns")
	}
	return b
}

func containsColumn(cols []string, col string) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}
	return false
}

func modelColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var (
		cols []string
		vals []any
	)
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
