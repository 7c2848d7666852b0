package models

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strconv"
)

// Normalize deep-copies a plain nested map into a *Map. Keys are inserted in
// sorted order since Go maps carry none. Strings, numbers, booleans, nested
// maps and slices keep their structure; any other leaf becomes its string
// form.
func Normalize(src map[string]any) *Map {
	if src == nil {
		return NewMap()
	}

	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	m := &Map{keys: make([]string, 0, len(keys)), values: make(map[string]any, len(keys))}
	for _, k := range keys {
		m.put(k, normalizeValue(src[k]))
	}

	return m
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t
	case *Map:
		if t == nil {
			return nil
		}
		return t.Clone()
	case *List:
		if t == nil {
			return nil
		}
		return t.Clone()
	case map[string]any:
		if t == nil {
			return nil
		}
		return Normalize(t)
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalizeValue(rv.Elem().Interface())
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return nil
		}
		plain := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			plain[iter.Key().String()] = iter.Value().Interface()
		}
		return Normalize(plain)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		l := &List{items: make([]any, rv.Len())}
		for i := range rv.Len() {
			l.items[i] = normalizeValue(rv.Index(i).Interface())
		}
		return l
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}

	return fmt.Sprint(v)
}

// Equal reports whether a and b hold the same keys in the same order with
// equal values. A nil map equals an empty one. Numbers compare by value
// regardless of their Go type, so a parsed json.Number equals the int it was
// serialized from.
func Equal(a, b *Map) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	for i, k := range a.keys {
		if b.keys[i] != k {
			return false
		}
		if !valuesEqual(a.values[k], b.values[k]) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case *Map:
		y, ok := b.(*Map)
		return ok && Equal(x, y)
	case *List:
		y, ok := b.(*List)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !valuesEqual(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	}

	if isNumber(a) && isNumber(b) {
		return numbersEqual(a, b)
	}

	return a == b
}

func isNumber(v any) bool {
	switch v.(type) {
	case json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func numbersEqual(a, b any) bool {
	ai, aInt := integerOf(a)
	bi, bInt := integerOf(b)
	if aInt && bInt {
		return ai.Cmp(bi) == 0
	}

	af, aErr := floatOf(a)
	bf, bErr := floatOf(b)
	return aErr == nil && bErr == nil && af == bf
}

func integerOf(v any) (*big.Int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	case reflect.String:
		return new(big.Int).SetString(rv.String(), 10)
	}
	return nil, false
}

func floatOf(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return strconv.ParseFloat(string(n), 64)
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("%T is not a number", v)
}
