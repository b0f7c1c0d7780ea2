package memory

import (
	"slices"
	"sync"

	idgen "github.com/riskibarqy/octofit-tracker/internal/platform/id"
)

// table keeps records in insertion order behind a single lock.
type table[T any] struct {
	mu    sync.RWMutex
	ids   idgen.Generator
	order []string
	rows  map[string]T
}

func newTable[T any](ids idgen.Generator) *table[T] {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &table[T]{ids: ids, rows: make(map[string]T)}
}

// snapshot returns rows in insertion order. Callers must hold the lock.
func (t *table[T]) snapshot(keep func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep != nil && !keep(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// find returns the first row matching pred. Callers must hold the lock.
func (t *table[T]) find(pred func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// insert stores row under a new id. Callers must hold the write lock.
func (t *table[T]) insert(row T, setID func(*T, string)) (T, error) {
	id, err := t.ids.NewID()
	if err != nil {
		return row, err
	}
	setID(&row, id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row, nil
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.order = slices.DeleteFunc(t.order, func(v string) bool { return v == id })
	return true
}

func (t *table[T]) truncate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.order = nil
	t.rows = make(map[string]T)
}
