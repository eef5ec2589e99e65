package cadence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/0xPolygon/flowclient/flow"
)

var (
	ErrInvalidValue  = errors.New("invalid JSON-Cadence value")
	ErrFieldNotFound = errors.New("field not found")
	ErrTypeMismatch  = errors.New("unexpected value type")
)

// Value is a decoded JSON-Cadence value. Composite values (events, structs,
// resources) keep their fields, containers keep their elements.
type Value struct {
	Type string
	// Raw is the undecoded "value" member
	Raw json.RawMessage
	// ID is the qualified type identifier of composite values
	ID string

	fields   []Field
	elements []Value
	entries  []Entry
	inner    *Value
}

// Field is a named member of a composite value
type Field struct {
	Name  string
	Value Value
}

// Entry is a dictionary entry
type Entry struct {
	Key   Value
	Value Value
}

type jsonValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type jsonComposite struct {
	ID     string `json:"id"`
	Fields []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	} `json:"fields"`
}

// Decode parses a JSON-Cadence document
func Decode(data []byte) (Value, error) {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if jv.Type == "" {
		return Value{}, fmt.Errorf("%w: missing type", ErrInvalidValue)
	}
	v := Value{Type: jv.Type, Raw: jv.Value}
	switch jv.Type {
	case "Event", "Struct", "Resource", "Contract", "Enum":
		var c jsonComposite
		if err := json.Unmarshal(jv.Value, &c); err != nil {
			return Value{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, jv.Type, err)
		}
		v.ID = c.ID
		v.fields = make([]Field, 0, len(c.Fields))
		for _, f := range c.Fields {
			fv, err := Decode(f.Value)
			if err != nil {
				return Value{}, fmt.Errorf("field %s: %w", f.Name, err)
			}
			v.fields = append(v.fields, Field{Name: f.Name, Value: fv})
		}
	case "Array":
		var raws []json.RawMessage
		if err := json.Unmarshal(jv.Value, &raws); err != nil {
			return Value{}, fmt.Errorf("%w: Array: %w", ErrInvalidValue, err)
		}
		v.elements = make([]Value, 0, len(raws))
		for i, r := range raws {
			ev, err := Decode(r)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			v.elements = append(v.elements, ev)
		}
	case "Dictionary":
		var raws []struct {
			Key   json.RawMessage `json:"key"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(jv.Value, &raws); err != nil {
			return Value{}, fmt.Errorf("%w: Dictionary: %w", ErrInvalidValue, err)
		}
		v.entries = make([]Entry, 0, len(raws))
		for i, r := range raws {
			k, err := Decode(r.Key)
			if err != nil {
				return Value{}, fmt.Errorf("key %d: %w", i, err)
			}
			val, err := Decode(r.Value)
			if err != nil {
				return Value{}, fmt.Errorf("value %d: %w", i, err)
			}
			v.entries = append(v.entries, Entry{Key: k, Value: val})
		}
	case "Optional":
		if len(jv.Value) > 0 && string(jv.Value) != "null" {
			inner, err := Decode(jv.Value)
			if err != nil {
				return Value{}, fmt.Errorf("optional: %w", err)
			}
			v.inner = &inner
		}
	}
	return v, nil
}

// IsNil reports whether v is a nil optional or Void
func (v Value) IsNil() bool {
	return (v.Type == "Optional" && v.inner == nil) || v.Type == "Void"
}

// Unwrap returns the value wrapped by an optional
func (v Value) Unwrap() (Value, bool) {
	if v.Type != "Optional" {
		return v, true
	}
	if v.inner == nil {
		return Value{}, false
	}
	return v.inner.Unwrap()
}

// String returns scalar values (String, Character, numbers, Address) as text
func (v Value) String() (string, error) {
	var s string
	if err := json.Unmarshal(v.Raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s is not a string scalar", ErrTypeMismatch, v.Type)
	}
	return s, nil
}

func (v Value) Bool() (bool, error) {
	if v.Type != "Bool" {
		return false, fmt.Errorf("%w: want Bool, got %s", ErrTypeMismatch, v.Type)
	}
	var b bool
	if err := json.Unmarshal(v.Raw, &b); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return b, nil
}

// Uint64 returns unsigned integer values
func (v Value) Uint64() (uint64, error) {
	if !strings.HasPrefix(v.Type, "UInt") && !strings.HasPrefix(v.Type, "Word") {
		return 0, fmt.Errorf("%w: want an unsigned integer, got %s", ErrTypeMismatch, v.Type)
	}
	s, err := v.String()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return n, nil
}

// BigInt returns any integer value
func (v Value) BigInt() (*big.Int, error) {
	if !strings.Contains(v.Type, "Int") && !strings.HasPrefix(v.Type, "Word") {
		return nil, fmt.Errorf("%w: want an integer, got %s", ErrTypeMismatch, v.Type)
	}
	s, err := v.String()
	if err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	return n, nil
}

// UFix64 returns the fixed point value scaled by 1e8
func (v Value) UFix64() (uint64, error) {
	if v.Type != "UFix64" {
		return 0, fmt.Errorf("%w: want UFix64, got %s", ErrTypeMismatch, v.Type)
	}
	s, err := v.String()
	if err != nil {
		return 0, err
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > fixedPointDigits {
		return 0, fmt.Errorf("%w: %q has too many fraction digits", ErrInvalidValue, s)
	}
	frac += strings.Repeat("0", fixedPointDigits-len(frac))
	n, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return n, nil
}

func (v Value) Address() (flow.Address, error) {
	if v.Type != "Address" {
		return flow.Address{}, fmt.Errorf("%w: want Address, got %s", ErrTypeMismatch, v.Type)
	}
	s, err := v.String()
	if err != nil {
		return flow.Address{}, err
	}
	return flow.HexToAddress(s)
}

// Fields returns the fields of a composite value
func (v Value) Fields() []Field {
	return v.fields
}

// Field returns the composite field called name
func (v Value) Field(name string) (Value, error) {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value, nil
		}
	}
	return Value{}, fmt.Errorf("%w: %s has no field %q", ErrFieldNotFound, v.ID, name)
}

// Elements returns the elements of an array
func (v Value) Elements() []Value {
	return v.elements
}

// Entries returns the entries of a dictionary
func (v Value) Entries() []Entry {
	return v.entries
}

// EventField decodes an event payload and returns its field called name
func EventField(payload []byte, name string) (Value, error) {
	v, err := Decode(payload)
	if err != nil {
		return Value{}, err
	}
	if v.Type != "Event" {
		return Value{}, fmt.Errorf("%w: want Event, got %s", ErrTypeMismatch, v.Type)
	}
	return v.Field(name)
}
