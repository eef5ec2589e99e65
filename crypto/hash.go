package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"
)

// NewHasher returns a fresh hash.Hash for the given algorithm
func NewHasher(algo HashAlgorithm) (hash.Hash, error) {
	switch algo {
	case SHA2_256:
		return sha256.New(), nil
	case SHA3_256:
		return sha3.New256(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHashAlgorithm, algo)
	}
}

// Hash computes the digest of message with the given algorithm
func Hash(algo HashAlgorithm, message []byte) ([]byte, error) {
	h, err := NewHasher(algo)
	if err != nil {
		return nil, err
	}
	h.Write(message)
	return h.Sum(nil), nil
}

// SHA3Hash returns the SHA3-256 digest of the concatenation of data
func SHA3Hash(data ...[]byte) []byte {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
