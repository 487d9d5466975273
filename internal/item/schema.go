package item

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

// Kind is the value shape a payload field normalizes to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field describes one payload field and how its default is produced.
// Exactly one of Default, Enum or Fields is consulted, depending on Kind.
type Field struct {
	Name    string
	Kind    Kind
	Default any
	Enum    *tables.Table
	Fields  []Field
}

// Schema is the ordered field list of one variant payload.
type Schema struct {
	Tag    domain.TypeTag
	Fields []Field
}

// Normalize returns a copy of payload where every schema field holds a value.
// A field takes its default when it is absent or nil, and string fields also
// when they are empty. Explicit zero numbers and false booleans are kept.
// Keys the schema does not name pass through untouched. Normalize is
// idempotent.
func (s *Schema) Normalize(payload map[string]any) map[string]any {
	out := domain.CloneData(payload)
	if out == nil {
		out = make(map[string]any, len(s.Fields))
	}
	normalizeFields(s.Fields, out)
	return out
}

// Defaults returns a fully defaulted payload.
func (s *Schema) Defaults() map[string]any {
	return s.Normalize(nil)
}

// Field returns the schema field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func normalizeFields(fields []Field, m map[string]any) {
	for _, f := range fields {
		v, ok := m[f.Name]
		if !ok || f.missing(v) {
			m[f.Name] = f.defaultValue()
			continue
		}
		if f.Kind == KindObject {
			sub, ok := v.(map[string]any)
			if !ok {
				m[f.Name] = f.defaultValue()
				continue
			}
			normalizeFields(f.Fields, sub)
		}
	}
}

func (f Field) missing(v any) bool {
	if v == nil {
		return true
	}
	if f.Kind == KindString {
		if s, ok := v.(string); ok && s == "" {
			return true
		}
	}
	return false
}

func (f Field) defaultValue() any {
	switch {
	case f.Kind == KindObject:
		sub := make(map[string]any, len(f.Fields))
		normalizeFields(f.Fields, sub)
		return sub
	case f.Enum != nil:
		return f.Enum.First()
	case f.Default != nil:
		return f.Default
	}
	switch f.Kind {
	case KindInt:
		return 0
	case KindBool:
		return false
	default:
		return ""
	}
}

// decodePayload copies a normalized payload into a typed payload struct.
// Loosely typed stored values (numbers as floats, levels as numbers) are
// coerced to the struct's field types.
func decodePayload(tag domain.TypeTag, payload map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayloadFailed, tag, err)
	}
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf(ErrMsgDecodePayloadFailed, tag, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err))
	}
	return nil
}

// mergePayload overlays typed values onto the stored payload so unknown keys
// survive a round trip through a typed variant.
func mergePayload(stored, typed map[string]any) map[string]any {
	out := domain.CloneData(stored)
	if out == nil {
		out = make(map[string]any, len(typed))
	}
	for k, v := range typed {
		out[k] = v
	}
	return out
}
