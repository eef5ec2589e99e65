package crypto

import (
	"fmt"
	"strings"
)

// SignatureAlgorithm identifies a signing scheme supported by Flow account keys.
// Values match the on-chain encoding.
type SignatureAlgorithm uint32

const (
	UnknownSignatureAlgorithm SignatureAlgorithm = 0
	ECDSA_P256                SignatureAlgorithm = 2 //nolint:stylecheck
	ECDSA_secp256k1           SignatureAlgorithm = 3 //nolint:stylecheck
)

// HashAlgorithm identifies a hashing function supported by Flow account keys.
type HashAlgorithm uint32

const (
	UnknownHashAlgorithm HashAlgorithm = 0
	SHA2_256             HashAlgorithm = 1 //nolint:stylecheck
	SHA3_256             HashAlgorithm = 3 //nolint:stylecheck
)

var (
	ErrUnsupportedSignatureAlgorithm = fmt.Errorf("unsupported signature algorithm")
	ErrUnsupportedHashAlgorithm      = fmt.Errorf("unsupported hash algorithm")
)

func (s SignatureAlgorithm) String() string {
	switch s {
	case ECDSA_P256:
		return "ECDSA_P256"
	case ECDSA_secp256k1:
		return "ECDSA_secp256k1"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(s))
	}
}

// ParseSignatureAlgorithm converts a name such as "ECDSA_P256" (case insensitive)
// into its SignatureAlgorithm.
func ParseSignatureAlgorithm(s string) (SignatureAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ECDSA_P256", "P256":
		return ECDSA_P256, nil
	case "ECDSA_SECP256K1", "SECP256K1":
		return ECDSA_secp256k1, nil
	default:
		return UnknownSignatureAlgorithm, fmt.Errorf("%w: %s", ErrUnsupportedSignatureAlgorithm, s)
	}
}

// UnmarshalText allows SignatureAlgorithm to be decoded from config files
func (s *SignatureAlgorithm) UnmarshalText(data []byte) error {
	algo, err := ParseSignatureAlgorithm(string(data))
	if err != nil {
		return err
	}
	*s = algo
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (s SignatureAlgorithm) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (h HashAlgorithm) String() string {
	switch h {
	case SHA2_256:
		return "SHA2_256"
	case SHA3_256:
		return "SHA3_256"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint32(h))
	}
}

// ParseHashAlgorithm converts a name such as "SHA3_256" (case insensitive)
// into its HashAlgorithm.
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SHA2_256", "SHA256":
		return SHA2_256, nil
	case "SHA3_256":
		return SHA3_256, nil
	default:
		return UnknownHashAlgorithm, fmt.Errorf("%w: %s", ErrUnsupportedHashAlgorithm, s)
	}
}

// UnmarshalText allows HashAlgorithm to be decoded from config files
func (h *HashAlgorithm) UnmarshalText(data []byte) error {
	algo, err := ParseHashAlgorithm(string(data))
	if err != nil {
		return err
	}
	*h = algo
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (h HashAlgorithm) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
