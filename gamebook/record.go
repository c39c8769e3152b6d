package gamebook

import (
	"bytes"
	"encoding/json"
)

// Field is one named value inside a Record.
type Field struct {
	Key   string
	Value any // string, int, or nil
}

// Record is an ordered set of named fields. Field order is preserved for
// output stability; it carries no semantic meaning. Keys are unique: setting
// an existing key updates it in place.
type Record struct {
	fields []Field
}

// Set adds a field or overwrites an existing one without moving it.
func (r *Record) Set(key string, value any) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (r *Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the value for key as a string, or "" when absent or not a
// string.
func (r *Record) String(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Len reports the number of fields.
func (r *Record) Len() int { return len(r.fields) }

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns the underlying field list in insertion order.
func (r *Record) Fields() []Field { return r.fields }

// MarshalJSON writes the record as a JSON object with fields in insertion
// order. Non-ASCII text is emitted verbatim.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeJSONValue(&buf, f.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeJSONValue(&buf, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode appends a newline; strip it so values compose into one object.
	buf.Truncate(buf.Len() - 1)
	return nil
}
