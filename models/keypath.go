package models

import (
	"fmt"
	"strconv"
	"strings"
)

type segmentKind int

const (
	segmentKey segmentKind = iota
	segmentIndex
	// segmentLast is "name[]": the last element on read, a new element on write.
	segmentLast
)

// segment is one dot-separated part of a key path.
type segment struct {
	raw   string
	name  string
	kind  segmentKind
	index int
}

func parseKeyPath(path string) ([]segment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidKeyPath)
	}

	parts := strings.Split(path, ".")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %s", ErrInvalidKeyPath, path, err.Error())
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

func parseSegment(raw string) (segment, error) {
	if raw == "" {
		return segment{}, fmt.Errorf("empty segment")
	}

	if !strings.HasSuffix(raw, "]") {
		return segment{raw: raw, name: raw, kind: segmentKey}, nil
	}

	open := strings.LastIndex(raw, "[")
	if open < 0 {
		return segment{}, fmt.Errorf("segment %q has no opening bracket", raw)
	}
	if open == 0 {
		return segment{}, fmt.Errorf("segment %q has no name before index", raw)
	}

	name, inner := raw[:open], raw[open+1:len(raw)-1]
	if inner == "" {
		return segment{raw: raw, name: name, kind: segmentLast}, nil
	}

	index, err := strconv.Atoi(inner)
	if err != nil || index < 0 {
		return segment{}, fmt.Errorf("segment %q has invalid index %q", raw, inner)
	}

	return segment{raw: raw, name: name, kind: segmentIndex, index: index}, nil
}

// resolve maps an indexed segment onto an existing element position.
func (l *List) resolve(seg segment) (int, bool) {
	switch seg.kind {
	case segmentLast:
		return len(l.items) - 1, len(l.items) > 0
	case segmentIndex:
		return seg.index, seg.index < len(l.items)
	default:
		return 0, false
	}
}

// walk descends through every segment except the last one without creating
// anything. A false result with a nil error means some segment is absent.
func (m *Map) walk(path string, segments []segment) (*Map, bool, error) {
	current := m
	for _, seg := range segments[:len(segments)-1] {
		value, ok := current.values[seg.name]
		if !ok {
			return nil, false, nil
		}

		if seg.kind != segmentKey {
			list, isList := value.(*List)
			if !isList {
				return nil, false, newPathTypeError(path, seg, "list", value)
			}
			i, inRange := list.resolve(seg)
			if !inRange {
				return nil, false, fmt.Errorf("%w: %q in %q", ErrIndexOutOfRange, seg.raw, path)
			}
			value = list.items[i]
		}

		next, isMap := value.(*Map)
		if !isMap {
			return nil, false, newPathTypeError(path, seg, "map", value)
		}
		current = next
	}

	return current, true, nil
}

// checkWrite reports the error Set would hit on path without modifying m,
// so a failed write leaves no intermediate maps or list elements behind.
// Below the first missing segment everything is created fresh, so only an
// index past the end of a new list can still fail.
func (m *Map) checkWrite(path string, segments []segment) error {
	current := m
	for i, seg := range segments {
		var (
			value  any
			exists bool
		)
		if current != nil {
			value, exists = current.values[seg.name]
		}
		terminal := i == len(segments)-1

		if seg.kind == segmentKey {
			if terminal || !exists {
				current = nil
				continue
			}
			child, ok := value.(*Map)
			if !ok {
				return newPathTypeError(path, seg, "map", value)
			}
			current = child
			continue
		}

		list, err := listAt(path, seg, value, exists)
		if err != nil {
			return err
		}
		if terminal {
			continue
		}
		if seg.kind == segmentIndex && seg.index < len(list.items) {
			child, ok := list.items[seg.index].(*Map)
			if !ok {
				return newPathTypeError(path, seg, "map", list.items[seg.index])
			}
			current = child
			continue
		}
		current = nil
	}

	return nil
}

// descend returns the map addressed by a non-terminal segment, creating maps,
// lists and list elements along the way.
func (m *Map) descend(path string, seg segment) (*Map, error) {
	value, exists := m.values[seg.name]

	if seg.kind == segmentKey {
		if !exists {
			child := NewMap()
			m.put(seg.name, child)
			return child, nil
		}
		child, ok := value.(*Map)
		if !ok {
			return nil, newPathTypeError(path, seg, "map", value)
		}
		return child, nil
	}

	list, err := listAt(path, seg, value, exists)
	if err != nil {
		return nil, err
	}

	if seg.kind == segmentIndex && seg.index < len(list.items) {
		child, ok := list.items[seg.index].(*Map)
		if !ok {
			return nil, newPathTypeError(path, seg, "map", list.items[seg.index])
		}
		return child, nil
	}

	child := NewMap()
	list.items = append(list.items, child)
	if !exists {
		m.put(seg.name, list)
	}

	return child, nil
}

// assign stores value under the terminal segment.
func (m *Map) assign(path string, seg segment, value any) error {
	if seg.kind == segmentKey {
		m.put(seg.name, value)
		return nil
	}

	existing, exists := m.values[seg.name]
	list, err := listAt(path, seg, existing, exists)
	if err != nil {
		return err
	}

	if seg.kind == segmentIndex && seg.index < len(list.items) {
		list.items[seg.index] = value
	} else {
		list.items = append(list.items, value)
	}

	if !exists {
		m.put(seg.name, list)
	}

	return nil
}

// listAt returns the list stored under seg, or a fresh unattached one when
// nothing is stored yet. Writes may address an existing index or the index
// one past the end.
func listAt(path string, seg segment, value any, exists bool) (*List, error) {
	list := &List{}
	if exists {
		var ok bool
		if list, ok = value.(*List); !ok {
			return nil, newPathTypeError(path, seg, "list", value)
		}
	}

	if seg.kind == segmentIndex && seg.index > len(list.items) {
		return nil, fmt.Errorf("%w: %q in %q (length %d)", ErrIndexOutOfRange, seg.raw, path, len(list.items))
	}

	return list, nil
}
