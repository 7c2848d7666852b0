// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Map is an insertion-ordered string-keyed tree used for every gateway
// payload and response.
//
// Values are one of: string, bool, nil, a number (any Go numeric kind or
// [json.Number]), *Map or *List. Nested locations are addressed by key paths
// such as "card.secure3DData.acsUrl" or "items[2].name"; an empty index
// ("items[]") means the last element on read and a new element on write.
//
// A Map is not safe for concurrent mutation. The zero value is ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// List is an ordered sequence of Map values.
type List struct {
	items []any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// NewList returns a List holding normalized copies of items.
func NewList(items ...any) *List {
	l := &List{items: make([]any, 0, len(items))}
	for _, item := range items {
		l.items = append(l.items, normalizeValue(item))
	}
	return l
}

// Len returns the number of top-level entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the top-level keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Range calls fn for each top-level entry in insertion order until fn
// returns false.
func (m *Map) Range(fn func(key string, value any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Lookup resolves path. The boolean is false when any segment is absent.
// Descending through a value of the wrong shape yields a *PathTypeError and
// an index past the end of a list yields ErrIndexOutOfRange.
func (m *Map) Lookup(path string) (any, bool, error) {
	segments, err := parseKeyPath(path)
	if err != nil || m == nil {
		return nil, false, err
	}

	parent, ok, err := m.walk(path, segments)
	if err != nil || !ok {
		return nil, false, err
	}

	last := segments[len(segments)-1]
	value, ok := parent.values[last.name]
	if !ok {
		return nil, false, nil
	}
	if last.kind == segmentKey {
		return value, true, nil
	}

	list, isList := value.(*List)
	if !isList {
		return nil, false, newPathTypeError(path, last, "list", value)
	}
	i, inRange := list.resolve(last)
	if !inRange {
		return nil, false, fmt.Errorf("%w: %q in %q", ErrIndexOutOfRange, last.raw, path)
	}

	return list.items[i], true, nil
}

// Get returns the value at path, or nil when it is absent or unreachable.
func (m *Map) Get(path string) any {
	value, _, _ := m.Lookup(path)
	return value
}

// ContainsKey reports whether path resolves to a stored value, nil included.
// Only a shape mismatch along the path is reported as an error.
func (m *Map) ContainsKey(path string) (bool, error) {
	_, ok, err := m.Lookup(path)
	if errors.Is(err, ErrIndexOutOfRange) {
		return false, nil
	}
	return ok, err
}

// Set stores value at path, creating intermediate maps, lists and list
// elements as needed. Maps and lists are deep-copied so later changes to the
// source do not leak into m; other non-primitive values are stored as their
// string form.
func (m *Map) Set(path string, value any) error {
	segments, err := parseKeyPath(path)
	if err != nil {
		return err
	}

	if err = m.checkWrite(path, segments); err != nil {
		return err
	}

	current := m
	for _, seg := range segments[:len(segments)-1] {
		if current, err = current.descend(path, seg); err != nil {
			return err
		}
	}

	return current.assign(path, segments[len(segments)-1], normalizeValue(value))
}

// MustSet is Set for literal payload construction. It panics on error.
func (m *Map) MustSet(path string, value any) *Map {
	if err := m.Set(path, value); err != nil {
		panic(err)
	}
	return m
}

// Remove deletes the value at path and returns it. Removing a list element
// shifts the elements after it.
func (m *Map) Remove(path string) (any, bool, error) {
	segments, err := parseKeyPath(path)
	if err != nil || m == nil {
		return nil, false, err
	}

	parent, ok, err := m.walk(path, segments)
	if err != nil || !ok {
		return nil, false, err
	}

	last := segments[len(segments)-1]
	if last.kind == segmentKey {
		value, ok := parent.del(last.name)
		return value, ok, nil
	}

	value, ok := parent.values[last.name]
	if !ok {
		return nil, false, nil
	}
	list, isList := value.(*List)
	if !isList {
		return nil, false, newPathTypeError(path, last, "list", value)
	}
	i, inRange := list.resolve(last)
	if !inRange {
		return nil, false, fmt.Errorf("%w: %q in %q", ErrIndexOutOfRange, last.raw, path)
	}

	removed := list.items[i]
	list.items = slices.Delete(list.items, i, i+1)

	return removed, true, nil
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	c := &Map{keys: slices.Clone(m.keys), values: make(map[string]any, len(m.values))}
	for k, v := range m.values {
		c.values[k] = cloneValue(v)
	}
	return c
}

// GetString returns the string at path.
func (m *Map) GetString(path string) (string, bool) {
	s, ok := m.Get(path).(string)
	return s, ok
}

// GetBool returns the boolean at path.
func (m *Map) GetBool(path string) (bool, bool) {
	b, ok := m.Get(path).(bool)
	return b, ok
}

// GetMap returns the nested map at path.
func (m *Map) GetMap(path string) (*Map, bool) {
	nested, ok := m.Get(path).(*Map)
	return nested, ok
}

// GetList returns the list at path.
func (m *Map) GetList(path string) (*List, bool) {
	l, ok := m.Get(path).(*List)
	return l, ok
}

// GetInt64 returns the integral number at path.
func (m *Map) GetInt64(path string) (int64, bool) {
	switch n := m.Get(path).(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}

// ToPlain converts m into map[string]any with []any lists, losing key order.
func (m *Map) ToPlain() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = toPlainValue(m.values[k])
	}
	return out
}

func (m *Map) put(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map) del(key string) (any, bool) {
	value, ok := m.values[key]
	if !ok {
		return nil, false
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return value, true
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Index returns the element at i. It panics when i is out of range.
func (l *List) Index(i int) any {
	return l.items[i]
}

// Items returns a shallow copy of the elements.
func (l *List) Items() []any {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	if l == nil {
		return nil
	}
	c := &List{items: make([]any, len(l.items))}
	for i, v := range l.items {
		c.items[i] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Clone()
	case *List:
		return t.Clone()
	default:
		return v
	}
}

func toPlainValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToPlain()
	case *List:
		out := make([]any, len(t.items))
		for i, item := range t.items {
			out[i] = toPlainValue(item)
		}
		return out
	default:
		return v
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Map:
		return "map"
	case *List:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		if isNumber(v) {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
