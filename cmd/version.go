package main

import (
	"github.com/0xPolygon/flowclient"
	"github.com/urfave/cli/v2"
)

func versionCmd(cliCtx *cli.Context) error {
	flowclient.PrintVersion(cliCtx.App.Writer)
	return nil
}
