package main

import (
	"strings"

	"github.com/0xPolygon/flowclient/config"
	"github.com/urfave/cli/v2"
)

func configCmd(cliCtx *cli.Context) error {
	// String buffer to concatenate all the default config vars
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultMandatoryVars)
	if !cliCtx.Bool(config.FlagMinConfig) {
		defaultConfig.WriteString(config.DefaultVars)
		defaultConfig.WriteString(config.DefaultValues)
	}

	_, err := cliCtx.App.Writer.Write([]byte(defaultConfig.String()))
	return err
}

func configSchemaCmd(cliCtx *cli.Context) error {
	schema, err := config.GenerateJSONSchema()
	if err != nil {
		return err
	}
	_, err = cliCtx.App.Writer.Write(append(schema, '\n'))
	return err
}
