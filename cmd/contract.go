package main

import (
	"fmt"
	"os"

	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/urfave/cli/v2"
)

func contractCommand() *cli.Command {
	nameFlag := &cli.StringFlag{Name: flagName, Usage: "Contract name", Required: true}
	fileFlag := &cli.StringFlag{Name: flagFile, Usage: "Path of the contract source", Required: true}
	return &cli.Command{
		Name:  "contract",
		Usage: "Deploy, update and remove contracts of the service account",
		Subcommands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Deploy a contract",
				Action: contractAdd,
				Flags:  configFlags(nameFlag, fileFlag, &waitFlag),
			},
			{
				Name:   "update",
				Usage:  "Replace the code of a deployed contract",
				Action: contractUpdate,
				Flags:  configFlags(nameFlag, fileFlag, &waitFlag),
			},
			{
				Name:   "remove",
				Usage:  "Remove a deployed contract",
				Action: contractRemove,
				Flags:  configFlags(nameFlag, &waitFlag),
			},
		},
	}
}

func contractAdd(cliCtx *cli.Context) error {
	code, err := readSource(cliCtx.String(flagFile))
	if err != nil {
		return err
	}
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.AddContract(cliCtx.Context, cliCtx.String(flagName), code)
	})
}

func contractUpdate(cliCtx *cli.Context) error {
	code, err := readSource(cliCtx.String(flagFile))
	if err != nil {
		return err
	}
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.UpdateContract(cliCtx.Context, cliCtx.String(flagName), code)
	})
}

func contractRemove(cliCtx *cli.Context) error {
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.RemoveContract(cliCtx.Context, cliCtx.String(flagName))
	})
}

func readSource(path string) (string, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(code), nil
}
