package codec

import (
	"encoding/json"
	"math"

	"github.com/cottand/spaces/space"
	"github.com/pkg/errors"
)

// ValueRecord is a self-describing value, used where no space tells its type
type ValueRecord struct {
	Kind  string        `json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=label int real bool unit tuple tagged"`
	Label *string       `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty" validate:"required_if=Kind label"`
	Int   *int64        `json:"int,omitempty" yaml:"int,omitempty" toml:"int,omitempty" validate:"required_if=Kind int"`
	Real  *float64      `json:"real,omitempty" yaml:"real,omitempty" toml:"real,omitempty" validate:"required_if=Kind real"`
	Bool  *bool         `json:"bool,omitempty" yaml:"bool,omitempty" toml:"bool,omitempty" validate:"required_if=Kind bool"`
	Items []ValueRecord `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty" validate:"dive"`
	Tag   string        `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty" validate:"required_if=Kind tagged"`
	Inner *ValueRecord  `json:"inner,omitempty" yaml:"inner,omitempty" toml:"inner,omitempty" validate:"required_if=Kind tagged"`
}

func valueToRecord(v space.Value) (ValueRecord, error) {
	switch v := v.(type) {
	case space.Label:
		s := string(v)
		return ValueRecord{Kind: "label", Label: &s}, nil
	case space.Int:
		i := int64(v)
		return ValueRecord{Kind: "int", Int: &i}, nil
	case space.Real:
		f := float64(v)
		return ValueRecord{Kind: "real", Real: &f}, nil
	case space.Bool:
		b := bool(v)
		return ValueRecord{Kind: "bool", Bool: &b}, nil
	case space.Unit:
		return ValueRecord{Kind: "unit"}, nil
	case space.Tuple:
		rec := ValueRecord{Kind: "tuple", Items: make([]ValueRecord, len(v))}
		for i, item := range v {
			var err error
			if rec.Items[i], err = valueToRecord(item); err != nil {
				return ValueRecord{}, errors.Wrapf(err, "items[%d]", i)
			}
		}
		return rec, nil
	case space.Tagged:
		inner, err := valueToRecord(v.Value)
		if err != nil {
			return ValueRecord{}, errors.Wrapf(err, "tag '%s'", v.Tag)
		}
		return ValueRecord{Kind: "tagged", Tag: v.Tag, Inner: &inner}, nil
	default:
		return ValueRecord{}, errors.Errorf("unsupported value %T", v)
	}
}

// valueFromRecord expects a record that passed validation
func valueFromRecord(rec ValueRecord) (space.Value, error) {
	switch rec.Kind {
	case "label":
		return space.Label(*rec.Label), nil
	case "int":
		return space.Int(*rec.Int), nil
	case "real":
		return space.Real(*rec.Real), nil
	case "bool":
		return space.Bool(*rec.Bool), nil
	case "unit":
		return space.Unit{}, nil
	case "tuple":
		tuple := make(space.Tuple, len(rec.Items))
		for i, item := range rec.Items {
			var err error
			if tuple[i], err = valueFromRecord(item); err != nil {
				return nil, errors.Wrapf(err, "items[%d]", i)
			}
		}
		return tuple, nil
	case "tagged":
		inner, err := valueFromRecord(*rec.Inner)
		if err != nil {
			return nil, errors.Wrapf(err, "tag '%s'", rec.Tag)
		}
		return space.Tagged{Tag: rec.Tag, Value: inner}, nil
	default:
		return nil, errors.Errorf("unknown value kind '%s'", rec.Kind)
	}
}

// EncodeValue converts v into plain data: strings, numbers, booleans, nil for
// Unit, slices for tuples and {"tag", "value"} maps for tagged values
func EncodeValue(v space.Value) any {
	switch v := v.(type) {
	case space.Label:
		return string(v)
	case space.Int:
		return int64(v)
	case space.Real:
		return float64(v)
	case space.Bool:
		return bool(v)
	case space.Tuple:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = EncodeValue(item)
		}
		return items
	case space.Tagged:
		return map[string]any{"tag": v.Tag, "value": EncodeValue(v.Value)}
	default:
		return nil
	}
}

// DecodeValue reads plain data as produced by EncodeValue or by a JSON or YAML
// decoder, using s to tell which Value types are expected.
// It fails when raw has the wrong shape for s; it does not check membership.
func DecodeValue(s space.Space, raw any) (space.Value, error) {
	switch s := s.(type) {
	case *space.Discrete:
		if s.IsRange() {
			return decodeInt(raw)
		}
		label, ok := raw.(string)
		if !ok {
			return nil, errors.Errorf("expected a label, got %T", raw)
		}
		return space.Label(label), nil
	case *space.Naturals:
		return decodeInt(raw)
	case *space.Binary:
		b, ok := raw.(bool)
		if !ok {
			return nil, errors.Errorf("expected a boolean, got %T", raw)
		}
		return space.Bool(b), nil
	case *space.Interval:
		f, ok := toFloat(raw)
		if !ok {
			return nil, errors.Errorf("expected a number, got %T", raw)
		}
		return space.Real(f), nil
	case *space.Singleton:
		return decodeLike(s.Value(), raw)
	case *space.NullSpace:
		return nil, errors.New("the null space has no values")
	case *space.Product:
		items, ok := raw.([]any)
		if !ok {
			return nil, errors.Errorf("expected a list, got %T", raw)
		}
		if len(items) != s.Len() {
			return nil, errors.Errorf("expected %d items, got %d", s.Len(), len(items))
		}
		tuple := make(space.Tuple, len(items))
		for i, item := range items {
			var err error
			if tuple[i], err = DecodeValue(s.At(i), item); err != nil {
				return nil, errors.Wrapf(err, "item %d", i)
			}
		}
		return tuple, nil
	case *space.Union:
		tag, inner, err := decodeTagged(raw)
		if err != nil {
			return nil, err
		}
		branch, ok := s.Branch(tag)
		if !ok {
			return nil, errors.Errorf("unknown tag '%s'", tag)
		}
		v, err := DecodeValue(branch, inner)
		if err != nil {
			return nil, errors.Wrapf(err, "tag '%s'", tag)
		}
		return space.Tagged{Tag: tag, Value: v}, nil
	default:
		return nil, errors.Errorf("unsupported space %T", s)
	}
}

// decodeLike reads raw with the same shape as template
func decodeLike(template space.Value, raw any) (space.Value, error) {
	switch template := template.(type) {
	case space.Label:
		if label, ok := raw.(string); ok {
			return space.Label(label), nil
		}
	case space.Int:
		return decodeInt(raw)
	case space.Real:
		if f, ok := toFloat(raw); ok {
			return space.Real(f), nil
		}
	case space.Bool:
		if b, ok := raw.(bool); ok {
			return space.Bool(b), nil
		}
	case space.Unit:
		if raw == nil {
			return space.Unit{}, nil
		}
	case space.Tuple:
		items, ok := raw.([]any)
		if !ok || len(items) != len(template) {
			break
		}
		tuple := make(space.Tuple, len(items))
		for i, item := range items {
			var err error
			if tuple[i], err = decodeLike(template[i], item); err != nil {
				return nil, errors.Wrapf(err, "item %d", i)
			}
		}
		return tuple, nil
	case space.Tagged:
		tag, inner, err := decodeTagged(raw)
		if err != nil {
			return nil, err
		}
		v, err := decodeLike(template.Value, inner)
		if err != nil {
			return nil, errors.Wrapf(err, "tag '%s'", tag)
		}
		return space.Tagged{Tag: tag, Value: v}, nil
	}
	return nil, errors.Errorf("expected a value like %v, got %T", template, raw)
}

func decodeTagged(raw any) (string, any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return "", nil, errors.Errorf("expected a map with a tag and a value, got %T", raw)
	}
	tag, ok := m["tag"].(string)
	if !ok {
		return "", nil, errors.New("missing string 'tag'")
	}
	inner, ok := m["value"]
	if !ok {
		return "", nil, errors.Errorf("missing 'value' for tag '%s'", tag)
	}
	return tag, inner, nil
}

func decodeInt(raw any) (space.Value, error) {
	switch n := raw.(type) {
	case int:
		return space.Int(n), nil
	case int64:
		return space.Int(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return nil, errors.Errorf("integer %d overflows int64", n)
		}
		return space.Int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil, errors.Wrap(err, "expected an integer")
		}
		return space.Int(i), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return nil, errors.Errorf("expected an integer, got %v", n)
		}
		return space.Int(int64(n)), nil
	default:
		return nil, errors.Errorf("expected an integer, got %T", raw)
	}
}

func toFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
