// Package column resolves table columns by name once, up front, into typed
// accessors. Callers then read values without further lookups or type
// assertions.
package column

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// ErrInvalidColumn is wrapped by every resolution failure.
var ErrInvalidColumn = errors.New("invalid column")

// MissingColumnError indicates the table has no column of that name.
type MissingColumnError struct {
	Name      string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no column %q (have %v)", e.Name, e.Available)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrInvalidColumn
}

// ColumnTypeError indicates the column exists with another element type.
type ColumnTypeError struct {
	Name string
	Want reflect.Type
	Got  reflect.Type
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("column %q holds %v, want %v", e.Name, e.Got, e.Want)
}

func (e *ColumnTypeError) Unwrap() error {
	return ErrInvalidColumn
}

// Accessor reads one resolved column.
type Accessor[T any] struct {
	name   string
	values []T
}

// Float and String are the accessors plots and scales need.
type (
	Float  = Accessor[float64]
	String = Accessor[string]
)

// Resolve binds name in t to an accessor of element type T.
func Resolve[T any](t *table.Table, name string) (Accessor[T], error) {
	raw := t.Column(name)
	if raw == nil {
		return Accessor[T]{}, &MissingColumnError{Name: name, Available: t.Columns()}
	}
	values, ok := raw.([]T)
	if !ok {
		return Accessor[T]{}, &ColumnTypeError{
			Name: name,
			Want: reflect.TypeOf((*T)(nil)).Elem(),
			Got:  reflect.TypeOf(raw).Elem(),
		}
	}
	return Accessor[T]{name: name, values: values}, nil
}

// Floats resolves a numeric column.
func Floats(t *table.Table, name string) (Float, error) {
	return Resolve[float64](t, name)
}

// Strings resolves a categorical column.
func Strings(t *table.Table, name string) (String, error) {
	return Resolve[string](t, name)
}

func (a Accessor[T]) Name() string {
	return a.name
}

func (a Accessor[T]) Len() int {
	return len(a.values)
}

func (a Accessor[T]) At(i int) T {
	return a.values[i]
}

// Values returns a copy of the column.
func (a Accessor[T]) Values() []T {
	return append([]T(nil), a.values...)
}
