package main

import (
	"os"

	"github.com/0xPolygon/flowclient"
	"github.com/0xPolygon/flowclient/common"
	"github.com/0xPolygon/flowclient/config"
	"github.com/0xPolygon/flowclient/log"
	"github.com/urfave/cli/v2"
)

const appName = "flowclient"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	networkFlag = cli.StringFlag{
		Name:     config.FlagNetwork,
		Aliases:  []string{"n"},
		Usage:    "Use the public access node of a network (mainnet, testnet, emulator)",
		Required: false,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.RPC, common.EVENT_WATCHER),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: flowclient_config.toml)",
		Required: false,
	}
	disableDefaultConfigVars = cli.BoolFlag{
		Name:     config.FlagDisableDefaultConfigVars,
		Aliases:  []string{"d"},
		Usage:    "Disable default configuration variables, all of them must be defined on config files",
		Required: false,
	}
	allowDeprecatedFields = cli.BoolFlag{
		Name:     config.FlagAllowDeprecatedFields,
		Usage:    "Allow that config-files contains deprecated fields",
		Required: false,
	}
	minConfigFlag = cli.BoolFlag{
		Name:     config.FlagMinConfig,
		Usage:    "Print only the mandatory vars",
		Required: false,
	}
)

// configFlags are the flags of every command that loads the configuration
func configFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&configFileFlag,
		&networkFlag,
		&saveConfigFlag,
		&disableDefaultConfigVars,
		&allowDeprecatedFields,
		&outputFlag,
	}
	return append(flags, extra...)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Flow Access API client, transaction signer and event watcher"
	app.Version = flowclient.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:   "config",
			Usage:  "Print the default configuration",
			Action: configCmd,
			Flags:  []cli.Flag{&minConfigFlag},
		},
		{
			Name:   "config-schema",
			Usage:  "Print the JSON schema of the configuration file",
			Action: configSchemaCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the flowclient daemon components",
			Action:  start,
			Flags:   configFlags(&componentsFlag),
		},
		keysCommand(),
		accountCommand(),
		contractCommand(),
		scriptCommand(),
		blockCommand(),
		eventsCommand(),
		txCommand(),
	}
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
