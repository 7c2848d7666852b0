package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseMap decodes a JSON object into a *Map, preserving key order and
// keeping numbers as json.Number. Blank input yields an empty map.
func ParseMap(data []byte) (*Map, error) {
	m := NewMap()
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return m, nil
}

// MarshalJSON writes m as a JSON object in insertion order without escaping
// HTML characters. Note that json.Marshal re-escapes the output of custom
// marshalers; call MarshalJSON directly or use an Encoder with
// SetEscapeHTML(false) to keep '<', '>' and '&' as is.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents of m with the decoded JSON object.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode map: %w", err)
	}
	if tok == nil {
		return expectEOF(dec)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode map: expected JSON object, got %v", tok)
	}

	parsed, err := decodeObject(dec)
	if err != nil {
		return fmt.Errorf("decode map: %w", err)
	}

	if err = expectEOF(dec); err != nil {
		return err
	}

	*m = *parsed
	return nil
}

func expectEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decode map: unexpected data after top-level value")
	}
	return nil
}

// MarshalJSON writes l as a JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeObject(dec *json.Decoder) (*Map, error) {
	m := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.put(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeArray(dec *json.Decoder) (*List, error) {
	l := &List{items: []any{}}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		l.items = append(l.items, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return l, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONScalar(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, t.values[k]); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
		return nil
	case *List:
		if t == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('[')
		for i, item := range t.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		return writeJSONScalar(buf, v)
	}
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	var scalar bytes.Buffer
	enc := json.NewEncoder(&scalar)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(scalar.Bytes(), []byte("\n")))
	return nil
}
