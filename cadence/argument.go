// Package cadence encodes transaction and script arguments in the JSON-Cadence
// interchange format and decodes the values returned by the access node.
//
// See https://cadence-lang.org/docs/json-cadence-spec
package cadence

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/0xPolygon/flowclient/flow"
)

// fixedPointDigits is the number of fraction digits of Fix64 and UFix64
const fixedPointDigits = 8

var (
	ErrNegativeUFix64  = errors.New("UFix64 cannot be negative")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupportedType = errors.New("unsupported argument type")
	ErrFixedPointRange = errors.New("fixed point value out of range")
)

// Argument is a JSON-Cadence value: {"type": ..., "value": ...}
type Argument struct {
	Type  string      `json:"type"`
	Value interface{} `json:"value"`
	// err is set by constructors that received an invalid input, it's returned by Encode
	err error
}

// KeyValue is an entry of a Dictionary argument
type KeyValue struct {
	Key   Argument `json:"key"`
	Value Argument `json:"value"`
}

// Encode returns the JSON-Cadence encoding of the argument
func (a Argument) Encode() ([]byte, error) {
	if err := a.Err(); err != nil {
		return nil, err
	}
	return json.Marshal(a)
}

// MustEncode is Encode that panics on error
func (a Argument) MustEncode() []byte {
	b, err := a.Encode()
	if err != nil {
		panic(err)
	}
	return b
}

// Err returns the first construction error found in a or its nested values
func (a Argument) Err() error {
	if a.err != nil {
		return a.err
	}
	switch v := a.Value.(type) {
	case []Argument:
		for _, e := range v {
			if err := e.Err(); err != nil {
				return err
			}
		}
	case []KeyValue:
		for _, kv := range v {
			if err := kv.Key.Err(); err != nil {
				return err
			}
			if err := kv.Value.Err(); err != nil {
				return err
			}
		}
	case *Argument:
		if v != nil {
			return v.Err()
		}
	}
	return nil
}

func String(value string) Argument {
	return Argument{Type: "String", Value: value}
}

func Bool(value bool) Argument {
	return Argument{Type: "Bool", Value: value}
}

// Integers are encoded as decimal strings
func UInt64(value uint64) Argument {
	return Argument{Type: "UInt64", Value: strconv.FormatUint(value, 10)}
}

func UInt32(value uint32) Argument {
	return Argument{Type: "UInt32", Value: strconv.FormatUint(uint64(value), 10)}
}

func UInt8(value uint8) Argument {
	return Argument{Type: "UInt8", Value: strconv.FormatUint(uint64(value), 10)}
}

func Int64(value int64) Argument {
	return Argument{Type: "Int64", Value: strconv.FormatInt(value, 10)}
}

// Int is the arbitrary precision Cadence Int
func Int(value *big.Int) Argument {
	if value == nil {
		return Argument{Type: "Int", err: fmt.Errorf("%w: nil Int", ErrInvalidArgument)}
	}
	return Argument{Type: "Int", Value: value.String()}
}

// UFix64 encodes a non negative fixed point number with 8 fraction digits
func UFix64(value float64) Argument {
	if value < 0 {
		return Argument{Type: "UFix64", err: fmt.Errorf("%w: %v", ErrNegativeUFix64, value)}
	}
	if value > math.MaxUint64/1e8 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Argument{Type: "UFix64", err: fmt.Errorf("%w: %v", ErrFixedPointRange, value)}
	}
	return Argument{Type: "UFix64", Value: strconv.FormatFloat(value, 'f', fixedPointDigits, 64)}
}

// Fix64 encodes a signed fixed point number with 8 fraction digits
func Fix64(value float64) Argument {
	if math.Abs(value) > math.MaxInt64/1e8 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Argument{Type: "Fix64", err: fmt.Errorf("%w: %v", ErrFixedPointRange, value)}
	}
	return Argument{Type: "Fix64", Value: strconv.FormatFloat(value, 'f', fixedPointDigits, 64)}
}

// Address encodes an account address, always 0x prefixed
func Address(value flow.Address) Argument {
	return Argument{Type: "Address", Value: value.HexWithPrefix()}
}

// AddressHex is Address for a hex string
func AddressHex(value string) Argument {
	a, err := flow.HexToAddress(value)
	if err != nil {
		return Argument{Type: "Address", err: fmt.Errorf("%w: %w", ErrInvalidArgument, err)}
	}
	return Address(a)
}

func Array(values ...Argument) Argument {
	if values == nil {
		values = []Argument{}
	}
	return Argument{Type: "Array", Value: values}
}

// StringArray is an Array of String values
func StringArray(values ...string) Argument {
	elements := make([]Argument, len(values))
	for i, v := range values {
		elements[i] = String(v)
	}
	return Array(elements...)
}

func Dictionary(entries ...KeyValue) Argument {
	if entries == nil {
		entries = []KeyValue{}
	}
	return Argument{Type: "Dictionary", Value: entries}
}

// StringDictionary is a {String: String} Dictionary
func StringDictionary(entries map[string]string) Argument {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	// deterministic encoding, maps don't keep order
	sort.Strings(keys)
	kvs := make([]KeyValue, len(keys))
	for i, k := range keys {
		kvs[i] = KeyValue{Key: String(k), Value: String(entries[k])}
	}
	return Dictionary(kvs...)
}

// Optional wraps value, nil encodes Cadence nil
func Optional(value *Argument) Argument {
	return Argument{Type: "Optional", Value: value}
}

// ParseArgument parses the "Type:value" form used by the command line,
// e.g. "UInt64:10", "String:hello", "Address:0x01", "UFix64:1.5", "Bool:true".
func ParseArgument(s string) (Argument, error) {
	typ, raw, ok := strings.Cut(s, ":")
	if !ok {
		return Argument{}, fmt.Errorf("%w %q: expected Type:value", ErrInvalidArgument, s)
	}
	switch typ {
	case "String":
		return String(raw), nil
	case "Bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Argument{}, fmt.Errorf("%w %q: %w", ErrInvalidArgument, s, err)
		}
		return Bool(b), nil
	case "UFix64":
		arg := UFix64String(raw)
		return arg, arg.Err()
	case "Fix64":
		arg := Fix64String(raw)
		return arg, arg.Err()
	case "Address":
		arg := AddressHex(raw)
		return arg, arg.Err()
	default:
		if _, ok := integerTypes[typ]; !ok {
			return Argument{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
		}
		arg := Integer(typ, raw)
		return arg, arg.Err()
	}
}

// EncodeAll encodes args preserving their order
func EncodeAll(args ...Argument) ([][]byte, error) {
	res := make([][]byte, len(args))
	for i, a := range args {
		b, err := a.Encode()
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, a.Type, err)
		}
		res[i] = b
	}
	return res, nil
}
