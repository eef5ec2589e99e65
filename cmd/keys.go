package main

import (
	"encoding/hex"
	"errors"

	"github.com/0xPolygon/flowclient/config"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/urfave/cli/v2"
)

const (
	flagAlgo        = "algo"
	flagHashAlgo    = "hash-algo"
	flagSeed        = "seed"
	flagMnemonic    = "mnemonic"
	flagNewMnemonic = "new-mnemonic"
	flagPassphrase  = "passphrase"
	flagPrivateKey  = "private-key"
	flagWeight      = "weight"
)

var errSeedAndMnemonic = errors.New("seed and mnemonic are mutually exclusive")

// generatedKey is the output of keys generate
type generatedKey struct {
	SigAlgo    string `json:"sigAlgo"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	AccountKey string `json:"accountKey"`
	Mnemonic   string `json:"mnemonic,omitempty"`
}

var algoFlag = cli.StringFlag{
	Name:  flagAlgo,
	Usage: "Signature algorithm (ECDSA_P256, ECDSA_secp256k1)",
	Value: crypto.ECDSA_P256.String(),
}

func keysCommand() *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "Generate and encrypt account keys",
		Subcommands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Generate a key pair, random or derived from a seed or mnemonic",
				Action: keysGenerate,
				Flags: []cli.Flag{
					&algoFlag,
					&cli.StringFlag{Name: flagHashAlgo, Usage: "Hash algorithm of the account key", Value: crypto.SHA3_256.String()},
					&cli.StringFlag{Name: flagSeed, Usage: "Hex seed, at least 32 bytes"},
					&cli.StringFlag{Name: flagMnemonic, Usage: "BIP-39 mnemonic to derive the key from"},
					&cli.BoolFlag{Name: flagNewMnemonic, Usage: "Derive the key from a new mnemonic and print it"},
					&cli.StringFlag{Name: flagPassphrase, Usage: "BIP-39 passphrase"},
					&cli.UintFlag{Name: flagWeight, Usage: "Weight of the account key", Value: crypto.FullWeight},
					&outputFlag,
				},
			},
			{
				Name:   "encrypt",
				Usage:  "Encrypt a hex private key into a key store file",
				Action: keysEncrypt,
				Flags: []cli.Flag{
					&algoFlag,
					&cli.StringFlag{Name: flagPrivateKey, Usage: "Hex private key", Required: true},
					&cli.StringFlag{Name: config.FlagKeyStorePath, Usage: "Key store file to write", Required: true},
					&cli.StringFlag{Name: config.FlagPassword, Usage: "Password of the key store", Required: true},
				},
			},
		},
	}
}

func keysGenerate(cliCtx *cli.Context) error {
	algo, err := crypto.ParseSignatureAlgorithm(cliCtx.String(flagAlgo))
	if err != nil {
		return err
	}
	hashAlgo, err := crypto.ParseHashAlgorithm(cliCtx.String(flagHashAlgo))
	if err != nil {
		return err
	}
	mnemonic := cliCtx.String(flagMnemonic)
	if cliCtx.Bool(flagNewMnemonic) {
		if mnemonic, err = crypto.NewMnemonic(); err != nil {
			return err
		}
	}
	seed := cliCtx.String(flagSeed)
	if seed != "" && mnemonic != "" {
		return errSeedAndMnemonic
	}

	var key crypto.PrivateKey
	switch {
	case mnemonic != "":
		key, err = crypto.GeneratePrivateKeyFromMnemonic(algo, mnemonic, cliCtx.String(flagPassphrase))
	case seed != "":
		var b []byte
		if b, err = hex.DecodeString(seed); err == nil {
			key, err = crypto.GeneratePrivateKey(algo, b)
		}
	default:
		key, err = crypto.NewRandomPrivateKey(algo)
	}
	if err != nil {
		return err
	}

	accountKey, err := crypto.EncodeAccountKey(key.PublicKey(), hashAlgo, cliCtx.Uint(flagWeight))
	if err != nil {
		return err
	}
	return printJSON(cliCtx, generatedKey{
		SigAlgo:    algo.String(),
		PrivateKey: key.String(),
		PublicKey:  key.PublicKey().String(),
		AccountKey: hex.EncodeToString(accountKey),
		Mnemonic:   mnemonic,
	})
}

func keysEncrypt(cliCtx *cli.Context) error {
	algo, err := crypto.ParseSignatureAlgorithm(cliCtx.String(flagAlgo))
	if err != nil {
		return err
	}
	key, err := crypto.DecodePrivateKeyHex(algo, cliCtx.String(flagPrivateKey))
	if err != nil {
		return err
	}
	path := cliCtx.String(config.FlagKeyStorePath)
	if err := crypto.SaveKeystore(path, cliCtx.String(config.FlagPassword), key); err != nil {
		return err
	}
	return printJSON(cliCtx, map[string]string{
		"keyStorePath": path,
		"publicKey":    key.PublicKey().String(),
	})
}
