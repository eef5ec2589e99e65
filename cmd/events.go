package main

import (
	"fmt"

	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/rpc/types"
	"github.com/urfave/cli/v2"
)

const (
	flagType   = "type"
	flagStart  = "start"
	flagEnd    = "end"
	flagBlocks = "blocks"
)

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Query events",
		Subcommands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print the events of a type in a height range or in a set of blocks",
				Action: eventsGet,
				Flags: configFlags(
					&cli.StringFlag{Name: flagType, Usage: "Event type, e.g. flow.AccountCreated", Required: true},
					&cli.Uint64Flag{Name: flagStart, Usage: "First block height"},
					&cli.Uint64Flag{Name: flagEnd, Usage: "Last block height, the latest sealed when not set"},
					&cli.StringSliceFlag{Name: flagBlocks, Usage: "Block ids, used instead of the height range"},
				),
			},
		},
	}
}

func eventsGet(cliCtx *cli.Context) error {
	eventType := cliCtx.String(flagType)
	var ids []flow.Identifier
	for _, raw := range cliCtx.StringSlice(flagBlocks) {
		id, err := flow.HexToID(raw)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 && !cliCtx.IsSet(flagStart) {
		return fmt.Errorf("either --%s or --%s is required", flagStart, flagBlocks)
	}

	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()

	var blocks []flow.BlockEvents
	if len(ids) > 0 {
		blocks, err = s.client.GetEventsForBlockIDs(cliCtx.Context, eventType, ids)
	} else {
		end := cliCtx.Uint64(flagEnd)
		if !cliCtx.IsSet(flagEnd) {
			header, herr := s.client.GetLatestBlockHeader(cliCtx.Context, true)
			if herr != nil {
				return herr
			}
			end = header.Height
		}
		blocks, err = s.client.GetEventsForHeightRange(cliCtx.Context, eventType, cliCtx.Uint64(flagStart), end)
	}
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewBlockEvents(blocks))
}
