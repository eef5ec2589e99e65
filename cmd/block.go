package main

import (
	"github.com/0xPolygon/flowclient/access"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/rpc/types"
	"github.com/urfave/cli/v2"
)

const (
	flagID        = "id"
	flagFinalized = "finalized"
)

func blockCommand() *cli.Command {
	return &cli.Command{
		Name:  "block",
		Usage: "Read blocks",
		Subcommands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print a block by id or height, the latest one by default",
				Action: blockGet,
				Flags: configFlags(
					&cli.StringFlag{Name: flagID, Usage: "Block id"},
					&cli.Uint64Flag{Name: flagHeight, Usage: "Block height"},
					&cli.BoolFlag{Name: flagFinalized, Usage: "Use the latest finalized block instead of the latest sealed"},
				),
			},
		},
	}
}

func blockGet(cliCtx *cli.Context) error {
	q := access.BlockQuery{Sealed: !cliCtx.Bool(flagFinalized)}
	if id := cliCtx.String(flagID); id != "" {
		var err error
		if q.ID, err = flow.HexToID(id); err != nil {
			return err
		}
	}
	if cliCtx.IsSet(flagHeight) {
		height := cliCtx.Uint64(flagHeight)
		q.Height = &height
	}

	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()
	block, err := s.client.GetBlock(cliCtx.Context, q)
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewBlock(block))
}
