package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	keystoreVersion = 1
	keystorePrefix  = "FLOWKEY1\n"
	keystoreKDF     = "argon2id"
	saltSize        = 16

	argonTime     = 2
	argonMemoryKB = 64 * 1024
	argonThreads  = 1

	keystoreFilePermissions = os.FileMode(0600)
)

var (
	ErrKeystoreAuthFailed = errors.New("keystore authentication failed")
	ErrKeystoreInvalid    = errors.New("keystore file is invalid")
)

// keystoreEnvelope is the on-disk JSON body that follows keystorePrefix
type keystoreEnvelope struct {
	Version     uint32 `json:"version"`
	SigAlgo     string `json:"sig_algo"`
	KDF         string `json:"kdf"`
	KDFTime     uint32 `json:"kdf_time"`
	KDFMemoryKB uint32 `json:"kdf_memory_kb"`
	KDFThreads  uint8  `json:"kdf_threads"`
	Salt        []byte `json:"salt"`
	Nonce       []byte `json:"nonce"`
	Ciphertext  []byte `json:"ciphertext"`
}

// EncryptPrivateKey seals key with password
func EncryptPrivateKey(password string, key PrivateKey) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	secret := deriveKeystoreKey(password, salt, argonTime, argonMemoryKB, argonThreads)
	defer zeroBytes(secret)

	aead, err := chacha20poly1305.NewX(secret)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	plaintext := key.Encode()
	defer zeroBytes(plaintext)
	algo := key.Algorithm().String()

	env := keystoreEnvelope{
		Version:     keystoreVersion,
		SigAlgo:     algo,
		KDF:         keystoreKDF,
		KDFTime:     argonTime,
		KDFMemoryKB: argonMemoryKB,
		KDFThreads:  argonThreads,
		Salt:        salt,
		Nonce:       nonce,
		// the algorithm is bound as additional data so it cannot be swapped
		Ciphertext: aead.Seal(nil, nonce, plaintext, []byte(algo)),
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	return append([]byte(keystorePrefix), raw...), nil
}

// DecryptPrivateKey opens data produced by EncryptPrivateKey
func DecryptPrivateKey(password string, data []byte) (PrivateKey, error) {
	if !strings.HasPrefix(string(data), keystorePrefix) {
		return nil, ErrKeystoreInvalid
	}
	var env keystoreEnvelope
	if err := json.Unmarshal(data[len(keystorePrefix):], &env); err != nil {
		return nil, ErrKeystoreInvalid
	}
	if env.Version != keystoreVersion || env.KDF != keystoreKDF {
		return nil, ErrKeystoreInvalid
	}
	// only the parameters written by EncryptPrivateKey are accepted
	if env.KDFTime != argonTime || env.KDFMemoryKB != argonMemoryKB || env.KDFThreads != argonThreads {
		return nil, fmt.Errorf("%w: unsupported kdf parameters", ErrKeystoreInvalid)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrKeystoreInvalid
	}
	algo, err := ParseSignatureAlgorithm(env.SigAlgo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystoreInvalid, err)
	}
	secret := deriveKeystoreKey(password, env.Salt, argonTime, argonMemoryKB, argonThreads)
	defer zeroBytes(secret)

	aead, err := chacha20poly1305.NewX(secret)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, []byte(env.SigAlgo))
	if err != nil {
		return nil, ErrKeystoreAuthFailed
	}
	defer zeroBytes(plaintext)
	return DecodePrivateKey(algo, plaintext)
}

// SaveKeystore writes an encrypted key file at path
func SaveKeystore(path, password string, key PrivateKey) error {
	data, err := EncryptPrivateKey(password, key)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, keystoreFilePermissions)
}

// LoadKeystore reads and decrypts the key file at path
func LoadKeystore(path, password string) (PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keystore %s: %w", path, err)
	}
	return DecryptPrivateKey(password, data)
}

func deriveKeystoreKey(password string, salt []byte, time, memoryKB uint32, threads uint8) []byte {
	return argon2.IDKey([]byte(password), salt, time, memoryKB, threads, chacha20poly1305.KeySize)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
