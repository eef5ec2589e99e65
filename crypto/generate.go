package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/hkdf"
)

const (
	// MinSeedLength is the minimum seed length accepted by GeneratePrivateKey
	MinSeedLength = 32

	mnemonicEntropyBits = 256

	// extra bytes drawn from the KDF to make the modular reduction bias negligible
	reductionMargin = 8
)

var (
	ErrSeedTooShort    = fmt.Errorf("seed must be at least %d bytes", MinSeedLength)
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// GeneratePrivateKey deterministically derives a private key from seed.
// The same seed and algorithm always produce the same key.
func GeneratePrivateKey(algo SignatureAlgorithm, seed []byte) (PrivateKey, error) {
	if len(seed) < MinSeedLength {
		return nil, ErrSeedTooShort
	}
	curve, err := curveFor(algo)
	if err != nil {
		return nil, err
	}
	material := make([]byte, scalarLen+reductionMargin)
	kdf := hkdf.New(sha256.New, seed, nil, []byte(algo.String()))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, err
	}
	// d = material mod (n - 1) + 1, which lands in [1, n-1]
	n := new(big.Int).Sub(curve.Params().N, big.NewInt(1))
	d := new(big.Int).SetBytes(material)
	d.Mod(d, n)
	d.Add(d, big.NewInt(1))
	return DecodePrivateKey(algo, leftPad(d.Bytes(), scalarLen))
}

// NewMnemonic returns a fresh 24 words BIP-39 mnemonic
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// GeneratePrivateKeyFromMnemonic derives a private key from the BIP-39 seed
// of mnemonic and passphrase
func GeneratePrivateKeyFromMnemonic(algo SignatureAlgorithm, mnemonic, passphrase string) (PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return GeneratePrivateKey(algo, bip39.NewSeed(mnemonic, passphrase))
}
