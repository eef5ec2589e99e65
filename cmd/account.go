package main

import (
	"fmt"
	"strings"

	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/rpc/types"
	"github.com/urfave/cli/v2"
)

const (
	flagAddress  = "address"
	flagHeight   = "height"
	flagKeys     = "keys"
	flagKey      = "key"
	flagIndex    = "index"
	flagContract = "contract"
	flagName     = "name"
	flagFile     = "file"
	flagWait     = "wait"
)

var waitFlag = cli.BoolFlag{Name: flagWait, Usage: "Wait until the transaction is sealed"}

func accountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Read and manage Flow accounts",
		Subcommands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print an account",
				Action: accountGet,
				Flags: configFlags(
					&cli.StringFlag{Name: flagAddress, Usage: "Account address", Required: true},
					&cli.Uint64Flag{Name: flagHeight, Usage: "Block height, latest sealed when not set"},
				),
			},
			{
				Name:   "create",
				Usage:  "Create an account paid by the service account",
				Action: accountCreate,
				Flags: configFlags(
					&cli.StringFlag{Name: flagKeys, Usage: "Comma separated hex ECDSA_P256 public keys", Required: true},
					&cli.StringSliceFlag{Name: flagContract, Usage: "Contract to deploy as name=path"},
				),
			},
			{
				Name:   "add-key",
				Usage:  "Add a public key to the service account",
				Action: accountAddKey,
				Flags: configFlags(
					&cli.StringFlag{Name: flagKey, Usage: "Hex ECDSA_P256 public key", Required: true},
					&waitFlag,
				),
			},
			{
				Name:   "remove-key",
				Usage:  "Revoke a key of the service account",
				Action: accountRemoveKey,
				Flags: configFlags(
					&cli.UintFlag{Name: flagIndex, Usage: "Index of the key", Required: true},
					&waitFlag,
				),
			},
		},
	}
}

func accountGet(cliCtx *cli.Context) error {
	address, err := flow.HexToAddress(cliCtx.String(flagAddress))
	if err != nil {
		return err
	}
	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()

	var account flow.Account
	if cliCtx.IsSet(flagHeight) {
		account, err = s.client.GetAccountAtBlockHeight(cliCtx.Context, address, cliCtx.Uint64(flagHeight))
	} else {
		account, err = s.client.GetAccount(cliCtx.Context, address)
	}
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewAccount(account))
}

func accountCreate(cliCtx *cli.Context) error {
	contracts, err := readContracts(cliCtx.StringSlice(flagContract))
	if err != nil {
		return err
	}
	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()
	manager, err := s.manager()
	if err != nil {
		return err
	}
	account, err := manager.CreateAccount(cliCtx.Context, accounts.ParsePublicKeys(cliCtx.String(flagKeys)), contracts)
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewAccount(account))
}

func accountAddKey(cliCtx *cli.Context) error {
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.AddKey(cliCtx.Context, cliCtx.String(flagKey))
	})
}

func accountRemoveKey(cliCtx *cli.Context) error {
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.RemoveKey(cliCtx.Context, uint32(cliCtx.Uint(flagIndex)))
	})
}

// sendWithManager runs send with the service account manager and prints the transaction
// id, or its sealed result when --wait is set
func sendWithManager(cliCtx *cli.Context, send func(*accounts.Manager) (flow.Identifier, error)) error {
	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()
	manager, err := s.manager()
	if err != nil {
		return err
	}
	id, err := send(manager)
	if err != nil {
		return err
	}
	if !cliCtx.Bool(flagWait) {
		return printJSON(cliCtx, map[string]string{"id": id.String()})
	}
	result, err := manager.WaitForSeal(cliCtx.Context, id)
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewTransactionResult(result))
}

// readContracts loads name=path pairs into name to source code
func readContracts(pairs []string) (map[string]string, error) {
	contracts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, path, ok := strings.Cut(pair, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("invalid contract %q, expected name=path", pair)
		}
		code, err := readSource(path)
		if err != nil {
			return nil, err
		}
		contracts[name] = code
	}
	return contracts, nil
}
