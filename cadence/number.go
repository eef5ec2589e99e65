package cadence

import (
	"fmt"
	"math/big"
	"strings"
)

// integerType is the range of a Cadence integer type, bits 0 means unbounded
type integerType struct {
	bits   uint
	signed bool
}

var integerTypes = map[string]integerType{
	"UInt":    {0, false},
	"UInt8":   {8, false},
	"UInt16":  {16, false},
	"UInt32":  {32, false},
	"UInt64":  {64, false},
	"UInt128": {128, false},
	"UInt256": {256, false},
	"Word8":   {8, false},
	"Word16":  {16, false},
	"Word32":  {32, false},
	"Word64":  {64, false},
	"Int":     {0, true},
	"Int8":    {8, true},
	"Int16":   {16, true},
	"Int32":   {32, true},
	"Int64":   {64, true},
	"Int128":  {128, true},
	"Int256":  {256, true},
}

// Integer encodes a decimal integer of the named Cadence type, e.g. Integer("UInt8", "255")
func Integer(typ, value string) Argument {
	it, ok := integerTypes[typ]
	if !ok {
		return Argument{Type: typ, err: fmt.Errorf("%w: %s", ErrUnsupportedType, typ)}
	}
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return Argument{Type: typ, err: fmt.Errorf("%w %q: not an integer", ErrInvalidArgument, value)}
	}
	if !it.contains(v) {
		return Argument{Type: typ, err: fmt.Errorf("%w %q: out of range for %s", ErrInvalidArgument, value, typ)}
	}
	return Argument{Type: typ, Value: v.String()}
}

func (it integerType) contains(v *big.Int) bool {
	if !it.signed {
		return v.Sign() >= 0 && (it.bits == 0 || uint(v.BitLen()) <= it.bits)
	}
	if it.bits == 0 {
		return true
	}
	limit := new(big.Int).Lsh(big.NewInt(1), it.bits-1)
	if v.Sign() < 0 {
		return v.CmpAbs(limit) <= 0
	}
	return v.Cmp(limit) < 0
}

// UFix64String is UFix64 for a decimal string such as "1.5". It keeps every digit,
// values with more than 8 fraction digits are rejected.
func UFix64String(value string) Argument {
	return fixedPoint("UFix64", value)
}

// Fix64String is Fix64 for a decimal string such as "-1.5"
func Fix64String(value string) Argument {
	return fixedPoint("Fix64", value)
}

func fixedPoint(typ, value string) Argument {
	scaled, err := parseFixedPoint(value)
	if err != nil {
		return Argument{Type: typ, err: err}
	}
	if typ == "UFix64" {
		if scaled.Sign() < 0 {
			return Argument{Type: typ, err: fmt.Errorf("%w: %s", ErrNegativeUFix64, value)}
		}
		if scaled.BitLen() > 64 { //nolint:mnd
			return Argument{Type: typ, err: fmt.Errorf("%w: %s", ErrFixedPointRange, value)}
		}
	} else if !scaled.IsInt64() {
		return Argument{Type: typ, err: fmt.Errorf("%w: %s", ErrFixedPointRange, value)}
	}
	return Argument{Type: typ, Value: formatFixedPoint(scaled)}
}

// parseFixedPoint returns value multiplied by 10^fixedPointDigits
func parseFixedPoint(value string) (*big.Int, error) {
	s := strings.TrimPrefix(value, "+")
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("%w %q: empty number", ErrInvalidArgument, value)
	}
	if len(fracPart) > fixedPointDigits {
		return nil, fmt.Errorf("%w %q: more than %d fraction digits", ErrInvalidArgument, value, fixedPointDigits)
	}
	digits := intPart + fracPart + strings.Repeat("0", fixedPointDigits-len(fracPart))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w %q: not a decimal number", ErrInvalidArgument, value)
		}
	}
	scaled, _ := new(big.Int).SetString(digits, 10)
	if negative {
		scaled.Neg(scaled)
	}
	return scaled, nil
}

// formatFixedPoint is the inverse of parseFixedPoint, always with 8 fraction digits
func formatFixedPoint(scaled *big.Int) string {
	digits := new(big.Int).Abs(scaled).String()
	if len(digits) <= fixedPointDigits {
		digits = strings.Repeat("0", fixedPointDigits-len(digits)+1) + digits
	}
	sign := ""
	if scaled.Sign() < 0 {
		sign = "-"
	}
	cut := len(digits) - fixedPointDigits
	return sign + digits[:cut] + "." + digits[cut:]
}
