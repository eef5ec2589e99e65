package crypto

import (
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testSeed = []byte("flow-client-deterministic-test-seed-0001")

func TestSignAndVerify(t *testing.T) {
	tcs := []struct {
		sigAlgo  SignatureAlgorithm
		hashAlgo HashAlgorithm
	}{
		{ECDSA_P256, SHA3_256},
		{ECDSA_P256, SHA2_256},
		{ECDSA_secp256k1, SHA3_256},
		{ECDSA_secp256k1, SHA2_256},
	}
	for _, tc := range tcs {
		t.Run(tc.sigAlgo.String()+"/"+tc.hashAlgo.String(), func(t *testing.T) {
			key, err := NewRandomPrivateKey(tc.sigAlgo)
			require.NoError(t, err)
			signer, err := NewInMemorySigner(key, tc.hashAlgo)
			require.NoError(t, err)

			message := []byte("transaction payload")
			sig, err := signer.Sign(message)
			require.NoError(t, err)
			require.Len(t, sig, SignatureLen)

			ok, err := Verify(key.PublicKey(), tc.hashAlgo, message, sig)
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = Verify(key.PublicKey(), tc.hashAlgo, []byte("another payload"), sig)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestDecodePrivateKeyHexRoundTrip(t *testing.T) {
	for _, algo := range []SignatureAlgorithm{ECDSA_P256, ECDSA_secp256k1} {
		key, err := GeneratePrivateKey(algo, testSeed)
		require.NoError(t, err)

		decoded, err := DecodePrivateKeyHex(algo, "0x"+key.String())
		require.NoError(t, err)
		require.Equal(t, key.Encode(), decoded.Encode())
		require.Equal(t, key.PublicKey().Encode(), decoded.PublicKey().Encode())

		pub, err := DecodePublicKeyHex(algo, key.PublicKey().String())
		require.NoError(t, err)
		require.Equal(t, key.PublicKey().Encode(), pub.Encode())
	}
}

func TestDecodeInvalidKeys(t *testing.T) {
	_, err := DecodePrivateKeyHex(ECDSA_P256, "zz")
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = DecodePrivateKey(ECDSA_P256, make([]byte, 32))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = DecodePrivateKey(ECDSA_P256, make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = DecodePublicKey(ECDSA_P256, make([]byte, PublicKeyLen))
	require.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = DecodePrivateKey(UnknownSignatureAlgorithm, make([]byte, 32))
	require.ErrorIs(t, err, ErrUnsupportedSignatureAlgorithm)
}

func TestGeneratePrivateKeyDeterministic(t *testing.T) {
	k1, err := GeneratePrivateKey(ECDSA_P256, testSeed)
	require.NoError(t, err)
	k2, err := GeneratePrivateKey(ECDSA_P256, testSeed)
	require.NoError(t, err)
	require.Equal(t, k1.Encode(), k2.Encode())

	k3, err := GeneratePrivateKey(ECDSA_secp256k1, testSeed)
	require.NoError(t, err)
	require.NotEqual(t, k1.Encode(), k3.Encode())

	_, err = GeneratePrivateKey(ECDSA_P256, []byte("short"))
	require.ErrorIs(t, err, ErrSeedTooShort)
}

func TestMnemonicKeys(t *testing.T) {
	mnemonic, err := NewMnemonic()
	require.NoError(t, err)
	require.Len(t, strings.Fields(mnemonic), 24)

	k1, err := GeneratePrivateKeyFromMnemonic(ECDSA_P256, mnemonic, "")
	require.NoError(t, err)
	k2, err := GeneratePrivateKeyFromMnemonic(ECDSA_P256, mnemonic, "")
	require.NoError(t, err)
	require.Equal(t, k1.Encode(), k2.Encode())

	k3, err := GeneratePrivateKeyFromMnemonic(ECDSA_P256, mnemonic, "passphrase")
	require.NoError(t, err)
	require.NotEqual(t, k1.Encode(), k3.Encode())

	_, err = GeneratePrivateKeyFromMnemonic(ECDSA_P256, "not a valid mnemonic", "")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestEncodeAccountKey(t *testing.T) {
	key, err := GeneratePrivateKey(ECDSA_P256, testSeed)
	require.NoError(t, err)

	encoded, err := EncodeAccountKey(key.PublicKey(), SHA3_256, FullWeight)
	require.NoError(t, err)
	// [pubkey(64), 2, 3, 1000]
	expected := "f847b840" + key.PublicKey().String() + "02038203e8"
	require.Equal(t, expected, hex.EncodeToString(encoded))

	fromHex, err := EncodeRawAccountKeyHex(key.PublicKey().String(), ECDSA_P256, SHA3_256, FullWeight)
	require.NoError(t, err)
	require.Equal(t, encoded, fromHex)

	_, err = EncodeRawAccountKeyHex("abcd", ECDSA_P256, SHA3_256, FullWeight)
	require.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestKeystoreRoundTrip(t *testing.T) {
	key, err := GeneratePrivateKey(ECDSA_secp256k1, testSeed)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "service.keystore")

	require.NoError(t, SaveKeystore(path, "testonly", key))

	loaded, err := LoadKeystore(path, "testonly")
	require.NoError(t, err)
	require.Equal(t, ECDSA_secp256k1, loaded.Algorithm())
	require.Equal(t, key.Encode(), loaded.Encode())

	_, err = LoadKeystore(path, "wrong")
	require.ErrorIs(t, err, ErrKeystoreAuthFailed)

	_, err = DecryptPrivateKey("testonly", []byte("plain text"))
	require.ErrorIs(t, err, ErrKeystoreInvalid)
}

func TestParseAlgorithms(t *testing.T) {
	s, err := ParseSignatureAlgorithm("ecdsa_p256")
	require.NoError(t, err)
	require.Equal(t, ECDSA_P256, s)

	h, err := ParseHashAlgorithm("SHA3_256")
	require.NoError(t, err)
	require.Equal(t, SHA3_256, h)

	var parsed HashAlgorithm
	require.NoError(t, parsed.UnmarshalText([]byte("sha2_256")))
	require.Equal(t, SHA2_256, parsed)

	_, err = ParseSignatureAlgorithm("BLS")
	require.ErrorIs(t, err, ErrUnsupportedSignatureAlgorithm)
	_, err = ParseHashAlgorithm("KECCAK")
	require.ErrorIs(t, err, ErrUnsupportedHashAlgorithm)
}
