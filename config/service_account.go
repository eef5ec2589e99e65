package config

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/config/types"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/0xPolygon/flowclient/flow"
)

var ErrNoServiceAccountKey = errors.New("service account needs PrivateKey or Keystore.Path")

// ServiceAccountConfig is the account that proposes, pays and signs the transactions
type ServiceAccountConfig struct {
	// Address of the account, hex with or without 0x
	Address string `mapstructure:"Address"`
	// KeyIndex is the index of the account key used to sign
	KeyIndex uint32 `mapstructure:"KeyIndex"`
	// PrivateKey is the hex encoded private key
	PrivateKey string `mapstructure:"PrivateKey"`
	// SigAlgo is the signature algorithm of the key
	SigAlgo crypto.SignatureAlgorithm `mapstructure:"SigAlgo" jsonschema:"type=string,enum=ECDSA_P256,enum=ECDSA_secp256k1"` //nolint:lll
	// HashAlgo is the hash algorithm registered with the key
	HashAlgo crypto.HashAlgorithm `mapstructure:"HashAlgo" jsonschema:"type=string,enum=SHA3_256,enum=SHA2_256"`
	// Keystore is read when PrivateKey is empty
	Keystore types.KeystoreFileConfig `mapstructure:"Keystore"`
}

// PrivateKeyValue returns the key from PrivateKey or, if empty, from the keystore
func (s ServiceAccountConfig) PrivateKeyValue() (crypto.PrivateKey, error) {
	if s.PrivateKey != "" {
		key, err := crypto.DecodePrivateKeyHex(s.SigAlgo, s.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("decoding service account private key: %w", err)
		}
		return key, nil
	}
	if s.Keystore.IsEmpty() {
		return nil, ErrNoServiceAccountKey
	}
	key, err := crypto.LoadKeystore(s.Keystore.Path, s.Keystore.Password)
	if err != nil {
		return nil, fmt.Errorf("loading service account keystore %s: %w", s.Keystore.Path, err)
	}
	return key, nil
}

// Payer returns the signing identity of the service account
func (s ServiceAccountConfig) Payer() (accounts.Payer, error) {
	address, err := flow.HexToAddress(s.Address)
	if err != nil {
		return accounts.Payer{}, fmt.Errorf("service account address: %w", err)
	}
	key, err := s.PrivateKeyValue()
	if err != nil {
		return accounts.Payer{}, err
	}
	signer, err := crypto.NewInMemorySigner(key, s.HashAlgo)
	if err != nil {
		return accounts.Payer{}, err
	}
	return accounts.Payer{
		Address:  address,
		KeyIndex: s.KeyIndex,
		Signer:   signer,
	}, nil
}
