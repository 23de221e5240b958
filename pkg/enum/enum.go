package enum

import (
	"fmt"
	"reflect"
)

// Registered values per enum type name. Registration happens in package
// variable initializers, before any concurrent use.
var registry = map[string]any{}

type valueSet[T comparable] map[string]T

// New registers value as a member of its enum type and returns it, so it can
// be used directly in a variable declaration.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	name := v.Type().Name()
	if _, ok := registry[name]; !ok {
		registry[name] = valueSet[T]{}
	}

	registry[name].(valueSet[T])[v.String()] = value
	return value
}

// ToEnum maps a raw string back to a registered enum value.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	set, ok := registry[reflect.TypeOf(zero).Name()]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := set.(valueSet[T])[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value, nil
}
