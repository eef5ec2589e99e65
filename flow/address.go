package flow

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// AddressLength is the size of a Flow account address
	AddressLength = 8
	// IdentifierLength is the size of block, transaction and collection ids
	IdentifierLength = 32
)

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// Address is a Flow account address
type Address [AddressLength]byte

// EmptyAddress is the zero value of Address
var EmptyAddress = Address{}

// BytesToAddress converts b into an Address, left padding with zeros.
// If b is larger than AddressLength the leading bytes are dropped.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// HexToAddress parses a hex address, with or without 0x prefix
func HexToAddress(s string) (Address, error) {
	b, err := decodeHex(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if len(b) > AddressLength {
		return EmptyAddress, fmt.Errorf("%w %q: longer than %d bytes", ErrInvalidAddress, s, AddressLength)
	}
	return BytesToAddress(b), nil
}

// MustHexToAddress is HexToAddress that panics on error. Intended for constants and tests.
func MustHexToAddress(s string) Address {
	a, err := HexToAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Bytes returns the address as a byte slice
func (a Address) Bytes() []byte { return a[:] }

// String returns the hex representation without 0x prefix
func (a Address) String() string { return hex.EncodeToString(a[:]) }

// HexWithPrefix returns the hex representation with 0x prefix
func (a Address) HexWithPrefix() string { return "0x" + a.String() }

// IsEmpty reports whether a is the zero address
func (a Address) IsEmpty() bool { return a == EmptyAddress }

// MarshalText implements encoding.TextMarshaler
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.HexWithPrefix()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Address) UnmarshalText(data []byte) error {
	parsed, err := HexToAddress(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Identifier is the hash based id of blocks, transactions and collections
type Identifier [IdentifierLength]byte

// EmptyID is the zero value of Identifier
var EmptyID = Identifier{}

// BytesToID converts b into an Identifier, left padding with zeros
func BytesToID(b []byte) Identifier {
	var id Identifier
	if len(b) > IdentifierLength {
		b = b[len(b)-IdentifierLength:]
	}
	copy(id[IdentifierLength-len(b):], b)
	return id
}

// HexToID parses a hex identifier, with or without 0x prefix
func HexToID(s string) (Identifier, error) {
	b, err := decodeHex(s)
	if err != nil {
		return EmptyID, fmt.Errorf("%w %q: %w", ErrInvalidIdentifier, s, err)
	}
	if len(b) > IdentifierLength {
		return EmptyID, fmt.Errorf("%w %q: longer than %d bytes", ErrInvalidIdentifier, s, IdentifierLength)
	}
	return BytesToID(b), nil
}

// Bytes returns the identifier as a byte slice
func (id Identifier) Bytes() []byte { return id[:] }

// String returns the hex representation without 0x prefix
func (id Identifier) String() string { return hex.EncodeToString(id[:]) }

// IsEmpty reports whether id is the zero identifier
func (id Identifier) IsEmpty() bool { return id == EmptyID }

// MarshalText implements encoding.TextMarshaler
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *Identifier) UnmarshalText(data []byte) error {
	parsed, err := HexToID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// IDsToBytes converts ids into the [][]byte form used by the access API
func IDsToBytes(ids []Identifier) [][]byte {
	res := make([][]byte, len(ids))
	for i, id := range ids {
		res[i] = id.Bytes()
	}
	return res
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("empty hex string")
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
