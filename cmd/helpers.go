package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/0xPolygon/flowclient/access"
	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/config"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/log"
	"github.com/urfave/cli/v2"
)

var ErrMissingAccessNodeURL = errors.New("AccessNode.URL must be set to reach the network")

// session holds what a network command needs, close releases it
type session struct {
	cfg     *config.Config
	client  *access.Client
	journal *journal.SQLJournal
}

func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	c, err := config.Load(cliCtx)
	if err != nil {
		return nil, err
	}
	log.Init(c.Log)
	return c, nil
}

func newAccessClient(c *config.Config) (*access.Client, error) {
	if c.AccessNode.URL == "" {
		return nil, ErrMissingAccessNodeURL
	}
	return access.NewClient(log.WithFields("module", "access"), c.AccessNode)
}

func newJournal(c *config.Config) (*journal.SQLJournal, error) {
	if !c.Journal.Enabled {
		return nil, nil
	}
	j, err := journal.NewSQLJournal(log.WithFields("module", "journal"), c.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", c.Journal.DBPath, err)
	}
	return j, nil
}

func newSession(cliCtx *cli.Context) (*session, error) {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return nil, err
	}
	client, err := newAccessClient(c)
	if err != nil {
		return nil, err
	}
	return &session{cfg: c, client: client}, nil
}

// manager returns the account manager of the service account, opening the journal if enabled
func (s *session) manager() (*accounts.Manager, error) {
	payer, err := s.cfg.ServiceAccount.Payer()
	if err != nil {
		return nil, err
	}
	return s.newManager(payer)
}

// waiter returns a manager able to wait for any transaction, it cannot sign
func (s *session) waiter() (*accounts.Manager, error) {
	return s.newManager(accounts.Payer{})
}

func (s *session) newManager(payer accounts.Payer) (*accounts.Manager, error) {
	if s.journal == nil {
		j, err := newJournal(s.cfg)
		if err != nil {
			return nil, err
		}
		s.journal = j
	}
	var opts []accounts.Option
	if s.journal != nil {
		opts = append(opts, accounts.WithJournal(s.journal))
	}
	return accounts.NewManager(log.WithFields("module", "accounts"), s.cfg.Accounts, s.client, payer, opts...), nil
}

func (s *session) close() {
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			log.Warnf("closing journal: %v", err)
		}
	}
	if err := s.client.Close(); err != nil {
		log.Warnf("closing access client: %v", err)
	}
}

const outputFilePermissions = 0o600

var outputFlag = cli.StringFlag{
	Name:    config.FlagOutputFile,
	Aliases: []string{"o"},
	Usage:   "Write the output to this file instead of stdout",
}

// printJSON writes v indented to the --output file, or to the app writer when not set
func printJSON(cliCtx *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	if path := cliCtx.String(config.FlagOutputFile); path != "" {
		return os.WriteFile(path, out, outputFilePermissions)
	}
	_, err = cliCtx.App.Writer.Write(out)
	return err
}
