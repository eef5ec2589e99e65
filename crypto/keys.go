package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// scalarLen is the byte length of private keys and of each public key coordinate
	scalarLen = 32
	// PublicKeyLen is the length of a raw encoded public key (X || Y)
	PublicKeyLen = 2 * scalarLen
	// SignatureLen is the length of a raw r || s signature
	SignatureLen = 2 * scalarLen
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidSignature  = errors.New("invalid signature")
)

// PrivateKey is an ECDSA private key bound to one of the supported curves
type PrivateKey interface {
	Algorithm() SignatureAlgorithm
	PublicKey() PublicKey
	// Encode returns the 32 byte big-endian scalar
	Encode() []byte
	String() string
	signDigest(digest []byte) ([]byte, error)
}

// PublicKey is an ECDSA public key bound to one of the supported curves
type PublicKey interface {
	Algorithm() SignatureAlgorithm
	// Encode returns the raw X || Y coordinates, 64 bytes
	Encode() []byte
	String() string
	verifyDigest(signature, digest []byte) bool
}

type ecdsaPrivateKey struct {
	algo SignatureAlgorithm
	key  *ecdsa.PrivateKey
}

type ecdsaPublicKey struct {
	algo SignatureAlgorithm
	key  *ecdsa.PublicKey
}

func curveFor(algo SignatureAlgorithm) (elliptic.Curve, error) {
	switch algo {
	case ECDSA_P256:
		return elliptic.P256(), nil
	case ECDSA_secp256k1:
		return ethcrypto.S256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignatureAlgorithm, algo)
	}
}

// DecodePrivateKey builds a private key from its 32 byte big-endian scalar
func DecodePrivateKey(algo SignatureAlgorithm, b []byte) (PrivateKey, error) {
	if len(b) != scalarLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, scalarLen, len(b))
	}
	switch algo {
	case ECDSA_secp256k1:
		key, err := ethcrypto.ToECDSA(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
		}
		return &ecdsaPrivateKey{algo: algo, key: key}, nil
	case ECDSA_P256:
		curve := elliptic.P256()
		d := new(big.Int).SetBytes(b)
		if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
			return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
		}
		key := &ecdsa.PrivateKey{D: d}
		key.PublicKey.Curve = curve
		key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(b)
		return &ecdsaPrivateKey{algo: algo, key: key}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignatureAlgorithm, algo)
	}
}

// DecodePrivateKeyHex builds a private key from a hex string, with or without 0x prefix
func DecodePrivateKeyHex(algo SignatureAlgorithm, s string) (PrivateKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return DecodePrivateKey(algo, b)
}

// DecodePublicKey builds a public key from its raw X || Y encoding
func DecodePublicKey(algo SignatureAlgorithm, b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeyLen, len(b))
	}
	switch algo {
	case ECDSA_secp256k1:
		key, err := ethcrypto.UnmarshalPubkey(append([]byte{0x04}, b...))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
		}
		return &ecdsaPublicKey{algo: algo, key: key}, nil
	case ECDSA_P256:
		curve := elliptic.P256()
		x := new(big.Int).SetBytes(b[:scalarLen])
		y := new(big.Int).SetBytes(b[scalarLen:])
		if !curve.IsOnCurve(x, y) {
			return nil, fmt.Errorf("%w: point is not on curve", ErrInvalidPublicKey)
		}
		return &ecdsaPublicKey{algo: algo, key: &ecdsa.PublicKey{Curve: curve, X: x, Y: y}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSignatureAlgorithm, algo)
	}
}

// DecodePublicKeyHex builds a public key from a hex string, with or without 0x prefix
func DecodePublicKeyHex(algo SignatureAlgorithm, s string) (PublicKey, error) {
	b, err := decodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return DecodePublicKey(algo, b)
}

// NewRandomPrivateKey generates a key using crypto/rand
func NewRandomPrivateKey(algo SignatureAlgorithm) (PrivateKey, error) {
	if algo == ECDSA_secp256k1 {
		key, err := ethcrypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		return &ecdsaPrivateKey{algo: algo, key: key}, nil
	}
	curve, err := curveFor(algo)
	if err != nil {
		return nil, err
	}
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, err
	}
	return &ecdsaPrivateKey{algo: algo, key: key}, nil
}

func (k *ecdsaPrivateKey) Algorithm() SignatureAlgorithm { return k.algo }

func (k *ecdsaPrivateKey) PublicKey() PublicKey {
	return &ecdsaPublicKey{algo: k.algo, key: &k.key.PublicKey}
}

func (k *ecdsaPrivateKey) Encode() []byte {
	return leftPad(k.key.D.Bytes(), scalarLen)
}

func (k *ecdsaPrivateKey) String() string {
	return hex.EncodeToString(k.Encode())
}

func (k *ecdsaPrivateKey) signDigest(digest []byte) ([]byte, error) {
	if k.algo == ECDSA_secp256k1 {
		// recoverable signature [R || S || V], Flow only wants R || S
		sig, err := ethcrypto.Sign(digest, k.key)
		if err != nil {
			return nil, err
		}
		return sig[:SignatureLen], nil
	}
	r, s, err := ecdsa.Sign(rand.Reader, k.key, digest)
	if err != nil {
		return nil, err
	}
	return append(leftPad(r.Bytes(), scalarLen), leftPad(s.Bytes(), scalarLen)...), nil
}

func (k *ecdsaPublicKey) Algorithm() SignatureAlgorithm { return k.algo }

func (k *ecdsaPublicKey) Encode() []byte {
	return append(leftPad(k.key.X.Bytes(), scalarLen), leftPad(k.key.Y.Bytes(), scalarLen)...)
}

func (k *ecdsaPublicKey) String() string {
	return hex.EncodeToString(k.Encode())
}

func (k *ecdsaPublicKey) verifyDigest(signature, digest []byte) bool {
	if len(signature) != SignatureLen {
		return false
	}
	if k.algo == ECDSA_secp256k1 {
		return ethcrypto.VerifySignature(ethcrypto.FromECDSAPub(k.key), digest, signature)
	}
	r := new(big.Int).SetBytes(signature[:scalarLen])
	s := new(big.Int).SetBytes(signature[scalarLen:])
	return ecdsa.Verify(k.key, digest, r, s)
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}
