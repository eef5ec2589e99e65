package main

import (
	"encoding/hex"
	"encoding/json"

	"github.com/0xPolygon/flowclient/accounts"
	"github.com/0xPolygon/flowclient/cadence"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/rpc/types"
	"github.com/urfave/cli/v2"
)

// transactionView is the printed form of a transaction
type transactionView struct {
	Script           string            `json:"script"`
	Arguments        []json.RawMessage `json:"arguments"`
	ReferenceBlockID flow.Identifier   `json:"referenceBlockID"`
	GasLimit         uint64            `json:"gasLimit"`
	Proposer         flow.Address      `json:"proposer"`
	ProposerKeyIndex uint32            `json:"proposerKeyIndex"`
	SequenceNumber   uint64            `json:"sequenceNumber"`
	Payer            flow.Address      `json:"payer"`
	Authorizers      []flow.Address    `json:"authorizers"`
}

func newTransactionView(tx *flow.Transaction) transactionView {
	args := make([]json.RawMessage, 0, len(tx.Arguments))
	for _, a := range tx.Arguments {
		if json.Valid(a) {
			args = append(args, json.RawMessage(a))
			continue
		}
		quoted, _ := json.Marshal(hex.EncodeToString(a))
		args = append(args, quoted)
	}
	return transactionView{
		Script:           string(tx.Script),
		Arguments:        args,
		ReferenceBlockID: tx.ReferenceBlockID,
		GasLimit:         tx.GasLimit,
		Proposer:         tx.ProposalKey.Address,
		ProposerKeyIndex: tx.ProposalKey.KeyIndex,
		SequenceNumber:   tx.ProposalKey.SequenceNumber,
		Payer:            tx.Payer,
		Authorizers:      tx.Authorizers,
	}
}

func txCommand() *cli.Command {
	idFlag := &cli.StringFlag{Name: flagID, Usage: "Transaction id", Required: true}
	return &cli.Command{
		Name:  "tx",
		Usage: "Send and inspect transactions",
		Subcommands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print a transaction",
				Action: txGet,
				Flags:  configFlags(idFlag),
			},
			{
				Name:   "result",
				Usage:  "Print the result of a transaction",
				Action: txResult,
				Flags:  configFlags(idFlag, &waitFlag),
			},
			{
				Name:   "send",
				Usage:  "Sign a transaction with the service account and send it",
				Action: txSend,
				Flags: configFlags(
					&cli.StringFlag{Name: flagFile, Usage: "Path of the transaction script", Required: true},
					&cli.StringSliceFlag{Name: flagArg, Usage: "Transaction argument as Type:value, repeat in order"},
					&waitFlag,
				),
			},
		},
	}
}

func txGet(cliCtx *cli.Context) error {
	id, err := flow.HexToID(cliCtx.String(flagID))
	if err != nil {
		return err
	}
	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()
	tx, err := s.client.GetTransaction(cliCtx.Context, id)
	if err != nil {
		return err
	}
	return printJSON(cliCtx, newTransactionView(tx))
}

func txResult(cliCtx *cli.Context) error {
	id, err := flow.HexToID(cliCtx.String(flagID))
	if err != nil {
		return err
	}
	s, err := newSession(cliCtx)
	if err != nil {
		return err
	}
	defer s.close()

	var result flow.TransactionResult
	if cliCtx.Bool(flagWait) {
		manager, merr := s.waiter()
		if merr != nil {
			return merr
		}
		result, err = manager.WaitForSeal(cliCtx.Context, id)
	} else {
		result, err = s.client.GetTransactionResult(cliCtx.Context, id)
	}
	if err != nil {
		return err
	}
	return printJSON(cliCtx, types.NewTransactionResult(result))
}

func txSend(cliCtx *cli.Context) error {
	script, err := readSource(cliCtx.String(flagFile))
	if err != nil {
		return err
	}
	var args []cadence.Argument
	for _, v := range cliCtx.StringSlice(flagArg) {
		arg, err := cadence.ParseArgument(v)
		if err != nil {
			return err
		}
		args = append(args, arg)
	}
	return sendWithManager(cliCtx, func(m *accounts.Manager) (flow.Identifier, error) {
		return m.Send(cliCtx.Context, journal.KindCustom, []byte(script), args...)
	})
}
