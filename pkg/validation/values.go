package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// isNil reports whether v is nil or a nil pointer, map, slice, interface, chan or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// hasValue reports whether v is specified: not nil, not a zero value, not a
// blank string and not an empty slice or map.
func hasValue(v any) bool {
	if isNil(v) {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		if rv.Len() == 0 {
			return false
		}
		return rv.Kind() != reflect.Array || !rv.IsZero()
	}
	return !rv.IsZero()
}

var errUnordered = errors.New("values have no ordering")

// compareValues orders two values of the same underlying kind. It supports
// every ordered kind, time.Time, and types with a Compare(T) int method.
// Comparable types without an ordering report errUnordered.
// Nil pointers report ok=false so callers can skip the comparison.
func compareValues(a, b any) (result int, ok bool, err error) {
	a, aok := deref(a)
	b, bok := deref(b)
	if !aok || !bok {
		return 0, false, nil
	}

	if at, isTime := a.(time.Time); isTime {
		bt, isTime := b.(time.Time)
		if !isTime {
			return 0, false, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		return at.Compare(bt), true, nil
	}

	if res, handled := compareByMethod(a, b); handled {
		return res, true, nil
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isInt(av.Kind()) && isInt(bv.Kind()):
		return cmp3(av.Int(), bv.Int()), true, nil
	case isUint(av.Kind()) && isUint(bv.Kind()):
		return cmp3(av.Uint(), bv.Uint()), true, nil
	case isNumber(av.Kind()) && isNumber(bv.Kind()):
		return cmp3(toFloat(av), toFloat(bv)), true, nil
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return cmp3(av.String(), bv.String()), true, nil
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		return cmp3(boolInt(av.Bool()), boolInt(bv.Bool())), true, nil
	}

	if av.Type() == bv.Type() && av.Comparable() {
		return 0, false, fmt.Errorf("%w: %T", errUnordered, a)
	}
	return 0, false, fmt.Errorf("cannot order values of type %T and %T", a, b)
}

// equalValues works like compareValues but also accepts comparable types
// without an ordering, such as structs. A result of 0 means equal.
func equalValues(a, b any) (result int, ok bool, err error) {
	result, ok, err = compareValues(a, b)
	if !errors.Is(err, errUnordered) {
		return result, ok, err
	}
	a, _ = deref(a)
	b, _ = deref(b)
	if reflect.ValueOf(a).Equal(reflect.ValueOf(b)) {
		return 0, true, nil
	}
	return 1, true, nil
}

func compareByMethod(a, b any) (int, bool) {
	m := reflect.ValueOf(a).MethodByName("Compare")
	if !m.IsValid() || m.Type().NumIn() != 1 || m.Type().NumOut() != 1 {
		return 0, false
	}
	bv := reflect.ValueOf(b)
	if !bv.Type().AssignableTo(m.Type().In(0)) || m.Type().Out(0).Kind() != reflect.Int {
		return 0, false
	}
	return int(m.Call([]reflect.Value{bv})[0].Int()), true
}

func deref(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Interface(), true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func cmp3[T int | int64 | uint64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
