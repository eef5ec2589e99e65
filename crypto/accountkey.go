package crypto

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

const (
	// FullWeight is the key weight needed to authorize a transaction alone
	FullWeight = 1000
)

type accountKeyCanonicalForm struct {
	PublicKey []byte
	SignAlgo  uint
	HashAlgo  uint
	Weight    uint
}

// EncodeAccountKey returns the RLP encoding that the Flow runtime expects when a key
// is added to an account: [publicKey, signAlgo, hashAlgo, weight]
func EncodeAccountKey(publicKey PublicKey, hashAlgo HashAlgorithm, weight uint) ([]byte, error) {
	return EncodeRawAccountKey(publicKey.Encode(), publicKey.Algorithm(), hashAlgo, weight)
}

// EncodeRawAccountKey is EncodeAccountKey for an already encoded X || Y public key
func EncodeRawAccountKey(publicKey []byte, sigAlgo SignatureAlgorithm, hashAlgo HashAlgorithm,
	weight uint) ([]byte, error) {
	if len(publicKey) != PublicKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeyLen, len(publicKey))
	}
	if _, err := curveFor(sigAlgo); err != nil {
		return nil, err
	}
	if _, err := NewHasher(hashAlgo); err != nil {
		return nil, err
	}
	return rlp.EncodeToBytes(accountKeyCanonicalForm{
		PublicKey: publicKey,
		SignAlgo:  uint(sigAlgo),
		HashAlgo:  uint(hashAlgo),
		Weight:    weight,
	})
}

// EncodeRawAccountKeyHex is EncodeRawAccountKey for a hex encoded public key
func EncodeRawAccountKeyHex(publicKey string, sigAlgo SignatureAlgorithm, hashAlgo HashAlgorithm,
	weight uint) ([]byte, error) {
	b, err := decodeHex(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return EncodeRawAccountKey(b, sigAlgo, hashAlgo, weight)
}
