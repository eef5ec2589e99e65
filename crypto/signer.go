package crypto

import (
	"fmt"
)

// Signer produces signatures over arbitrary messages
type Signer interface {
	Sign(message []byte) ([]byte, error)
}

// InMemorySigner signs with a private key held in memory
type InMemorySigner struct {
	PrivateKey PrivateKey
	HashAlgo   HashAlgorithm
}

var _ Signer = (*InMemorySigner)(nil)

// NewInMemorySigner returns a signer for the key and hashing algorithm
func NewInMemorySigner(privateKey PrivateKey, hashAlgo HashAlgorithm) (*InMemorySigner, error) {
	if privateKey == nil {
		return nil, ErrInvalidPrivateKey
	}
	if _, err := NewHasher(hashAlgo); err != nil {
		return nil, err
	}
	return &InMemorySigner{PrivateKey: privateKey, HashAlgo: hashAlgo}, nil
}

// Sign hashes message and returns the 64 bytes r || s signature
func (s *InMemorySigner) Sign(message []byte) ([]byte, error) {
	digest, err := Hash(s.HashAlgo, message)
	if err != nil {
		return nil, err
	}
	sig, err := s.PrivateKey.signDigest(digest)
	if err != nil {
		return nil, fmt.Errorf("signing with %s: %w", s.PrivateKey.Algorithm(), err)
	}
	return sig, nil
}

// Verify checks signature over message for publicKey
func Verify(publicKey PublicKey, hashAlgo HashAlgorithm, message, signature []byte) (bool, error) {
	if len(signature) != SignatureLen {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, SignatureLen, len(signature))
	}
	digest, err := Hash(hashAlgo, message)
	if err != nil {
		return false, err
	}
	return publicKey.verifyDigest(signature, digest), nil
}
