package eventschema

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MarshalJSON writes the value when present and null otherwise. Meta is a
// side channel and is not part of the payload encoding.
func (a Annotated[T]) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalJSON reads a payload field. JSON null and a missing field both
// decode to an absent value.
func (a *Annotated[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		a.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.Value = &v
	return nil
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// MarshalJSON writes the map as an object with keys in insertion order.
func (m *Map[T]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object entry by entry so that insertion order in
// the decoded map matches wire order.
func (m *Map[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	m.keys = nil
	m.items = make(map[string]*Annotated[T])
	for dec.More() {
		ktok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := ktok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", ktok)
		}
		var entry Annotated[T]
		if err := dec.Decode(&entry); err != nil {
			return err
		}
		m.Set(key, entry)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON writes the concrete kind a dynamic value holds.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(string(v.str))
	case KindBool:
		return json.Marshal(bool(v.b))
	case KindInt64:
		return json.Marshal(int64(v.i))
	case KindUint64:
		return json.Marshal(uint64(v.u))
	case KindFloat64:
		return json.Marshal(float64(v.f))
	case KindArray:
		return json.Marshal(v.arr)
	case KindObject:
		return v.obj.MarshalJSON()
	}
	return []byte("null"), nil
}

// UnmarshalJSON reads arbitrary JSON into the tagged union. Integers that
// fit a signed 64-bit decode as such, larger positive integers as unsigned,
// and everything else numeric as float. Object key order is preserved.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	decoded, err := decodeDynamic(dec)
	if err != nil {
		return err
	}
	if decoded == nil {
		*v = Value{}
		return nil
	}
	*v = *decoded
	return nil
}

func decodeDynamic(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeDynamicToken(dec, tok)
}

func decodeDynamicToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return nil, nil
	case string:
		v := StringValue(t)
		return &v, nil
	case bool:
		v := BoolValue(t)
		return &v, nil
	case json.Number:
		v := numberValue(t)
		return &v, nil
	case json.Delim:
		switch t {
		case '[':
			arr := Array[Value]{}
			for dec.More() {
				elem, err := decodeDynamic(dec)
				if err != nil {
					return nil, err
				}
				if elem == nil {
					arr = append(arr, Annotated[Value]{})
				} else {
					arr = append(arr, NewAnnotated(*elem))
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			v := ArrayValue(arr)
			return &v, nil
		case '{':
			obj := NewMap[Value]()
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := ktok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", ktok)
				}
				elem, err := decodeDynamic(dec)
				if err != nil {
					return nil, err
				}
				if elem == nil {
					obj.Set(key, Annotated[Value]{})
				} else {
					obj.Set(key, NewAnnotated(*elem))
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			v := ObjectValue(obj)
			return &v, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func numberValue(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int64Value(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint64Value(u)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return StringValue(s)
	}
	return Float64Value(f)
}
