package main

import (
	"encoding/json"

	"github.com/0xPolygon/flowclient/access"
	"github.com/0xPolygon/flowclient/cadence"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/urfave/cli/v2"
)

const (
	flagArg     = "arg"
	flagBlockID = "block-id"
)

func scriptCommand() *cli.Command {
	return &cli.Command{
		Name:  "script",
		Usage: "Run read only Cadence scripts",
		Subcommands: []*cli.Command{
			{
				Name:   "exec",
				Usage:  "Execute a script and print its JSON-Cadence result",
				Action: scriptExec,
				Flags: configFlags(
					&cli.StringFlag{Name: flagFile, Usage: "Path of the script", Required: true},
					&cli.StringSliceFlag{Name: flagArg, Usage: "Script argument as Type:value, repeat in order"},
					&cli.Uint64Flag{Name: flagHeight, Usage: "Block height to run against"},
					&cli.StringFlag{Name: flagBlockID, Usage: "Block id to run against, wins over height"},
				),
			},
		},
	}
}

func parseArguments(values []string) ([][]byte, error) {
	args := make([]cadence.Argument, 0, len(values))
	for _, v := range values {
		arg, err := cadence.ParseArgument(v)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return cadence.EncodeAll(args...)
}

func scriptExec(cliCtx *cli.Context) error {
	script, err := readSource(cliCtx.String(flagFile))
	if err != nil {
		return err
	}
	args, err := parseArguments(cliCtx.StringSlice(flagArg))
	if err != nil {
		return err
	}
	var at access.At
	if id := cliCtx.String(flagBlockID); id != "" {
		if at.ID, err = flow.HexToID(id); err != nil {
			return err
		}
	}
	if cliCtx.IsSet(flagHeight) {
		height := cliCtx.Uint64(flagHeight)
		at.Height = &height
	}

	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()
	result, err := s.client.ExecuteScript(cliCtx.Context, []byte(script), args, at)
	if err != nil {
		return err
	}
	// an invalid value is already reported by the decoder
	if _, err := cadence.Decode(result); err != nil {
		return err
	}
	return printJSON(cliCtx, json.RawMessage(result))
}
