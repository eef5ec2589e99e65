package accounts

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/0xPolygon/flowclient/cadence"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/log"
)

// AccountCreatedEvent is emitted by the service account once per created account
const AccountCreatedEvent = "flow.AccountCreated"

var (
	ErrExecutionFailed    = errors.New("transaction execution failed")
	ErrTransactionExpired = errors.New("transaction expired")
	ErrWaitExhausted      = errors.New("transaction not sealed after max attempts")
	ErrNoAccountCreated   = errors.New("no account created event in transaction result")
	ErrNoPublicKeys       = errors.New("at least one public key is required")
)

// Client is the subset of the access client used by the manager
type Client interface {
	GetAccount(ctx context.Context, address flow.Address) (flow.Account, error)
	GetLatestBlockHeader(ctx context.Context, sealed bool) (flow.BlockHeader, error)
	SendTransaction(ctx context.Context, tx *flow.Transaction) (flow.Identifier, error)
	GetTransactionResult(ctx context.Context, id flow.Identifier) (flow.TransactionResult, error)
}

// Payer is the account that proposes, authorizes and pays every transaction of the manager
type Payer struct {
	Address  flow.Address
	KeyIndex uint32
	Signer   crypto.Signer
}

// Manager runs the account and contract operations on behalf of a payer
type Manager struct {
	logger    *log.Logger
	cfg       Config
	client    Client
	payer     Payer
	journal   journal.Journal
	templates cadence.Templates
}

// Option customizes a Manager
type Option func(*Manager)

// WithJournal records every sent transaction and its status changes
func WithJournal(j journal.Journal) Option {
	return func(m *Manager) {
		m.journal = j
	}
}

// WithTemplates overrides the Cadence templates selected by the config
func WithTemplates(t cadence.Templates) Option {
	return func(m *Manager) {
		m.templates = t
	}
}

// NewManager returns a manager for payer
func NewManager(logger *log.Logger, cfg Config, client Client, payer Payer, opts ...Option) *Manager {
	cfg = cfg.withDefaults()
	templates := cadence.DefaultTemplates()
	if cfg.LegacyTemplates {
		templates = cadence.LegacyTemplates()
	}
	m := &Manager{
		logger:    logger,
		cfg:       cfg,
		client:    client,
		payer:     payer,
		templates: templates,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Payer returns the address paying the transactions
func (m *Manager) Payer() flow.Address {
	return m.payer.Address
}

// CreateAccount creates an account with the given hex public keys (ECDSA_P256, SHA3_256,
// full weight) and contracts (name to source code). It waits for the seal and returns
// the new account.
func (m *Manager) CreateAccount(ctx context.Context,
	publicKeys []string, contracts map[string]string) (flow.Account, error) {
	if len(publicKeys) == 0 {
		return flow.Account{}, ErrNoPublicKeys
	}
	keys := make([]string, 0, len(publicKeys))
	for _, pub := range publicKeys {
		key, err := m.keyArgument(pub)
		if err != nil {
			return flow.Account{}, err
		}
		keys = append(keys, key)
	}
	result, err := m.SendAndWait(ctx, journal.KindCreateAccount, []byte(m.templates.CreateAccount),
		cadence.StringArray(keys...), contractsArgument(contracts))
	if err != nil {
		return flow.Account{}, err
	}
	address, err := createdAddress(result)
	if err != nil {
		return flow.Account{}, err
	}
	m.logger.Infof("account %s created", address)
	return m.client.GetAccount(ctx, address)
}

// AddKey adds a hex public key (ECDSA_P256, SHA3_256, full weight) to the payer account
func (m *Manager) AddKey(ctx context.Context, publicKey string) (flow.Identifier, error) {
	key, err := m.keyArgument(publicKey)
	if err != nil {
		return flow.EmptyID, err
	}
	return m.Send(ctx, journal.KindAddKey, []byte(m.templates.AddKey), cadence.String(key))
}

// RemoveKey revokes the key with index from the payer account
func (m *Manager) RemoveKey(ctx context.Context, index uint32) (flow.Identifier, error) {
	return m.Send(ctx, journal.KindRemoveKey, []byte(m.templates.RemoveKey),
		cadence.Int(new(big.Int).SetUint64(uint64(index))))
}

// AddContract deploys a contract to the payer account
func (m *Manager) AddContract(ctx context.Context, name, code string) (flow.Identifier, error) {
	return m.Send(ctx, journal.KindAddContract, []byte(m.templates.AddContract),
		cadence.String(name), cadence.String(hex.EncodeToString([]byte(code))))
}

// UpdateContract replaces the code of a contract of the payer account
func (m *Manager) UpdateContract(ctx context.Context, name, code string) (flow.Identifier, error) {
	return m.Send(ctx, journal.KindUpdateContract, []byte(m.templates.UpdateContract),
		cadence.String(name), cadence.String(hex.EncodeToString([]byte(code))))
}

// RemoveContract removes a contract from the payer account
func (m *Manager) RemoveContract(ctx context.Context, name string) (flow.Identifier, error) {
	return m.Send(ctx, journal.KindRemoveContract, []byte(m.templates.RemoveContract), cadence.String(name))
}

// Send builds a transaction for script with the payer as proposer, payer and sole
// authorizer, signs and sends it
func (m *Manager) Send(ctx context.Context, kind string, script []byte, args ...cadence.Argument) (flow.Identifier, error) {
	tx, err := m.BuildTransaction(ctx, script, args...)
	if err != nil {
		return flow.EmptyID, err
	}
	if err := tx.SignEnvelope(m.payer.Address, m.payer.KeyIndex, m.payer.Signer); err != nil {
		return flow.EmptyID, err
	}
	id, err := m.client.SendTransaction(ctx, tx)
	if err != nil {
		return flow.EmptyID, err
	}
	m.logger.Infof("sent %s transaction %s", kind, id)
	if m.journal != nil {
		if err := m.journal.SaveTransaction(ctx, journal.NewTransactionRecord(id, kind, tx)); err != nil {
			m.logger.Warnf("error journaling transaction %s: %v", id, err)
		}
	}
	return id, nil
}

// SendAndWait is Send followed by WaitForSeal
func (m *Manager) SendAndWait(ctx context.Context,
	kind string, script []byte, args ...cadence.Argument) (flow.TransactionResult, error) {
	id, err := m.Send(ctx, kind, script, args...)
	if err != nil {
		return flow.TransactionResult{}, err
	}
	return m.WaitForSeal(ctx, id)
}

// BuildTransaction returns the unsigned transaction for script. The reference block is
// the latest finalized block and the proposal key sequence number is read from the chain.
func (m *Manager) BuildTransaction(ctx context.Context, script []byte, args ...cadence.Argument) (*flow.Transaction, error) {
	header, err := m.client.GetLatestBlockHeader(ctx, false)
	if err != nil {
		return nil, err
	}
	account, err := m.client.GetAccount(ctx, m.payer.Address)
	if err != nil {
		return nil, err
	}
	proposal, err := account.ProposalKeyFor(m.payer.KeyIndex)
	if err != nil {
		return nil, err
	}
	tx := flow.NewTransaction().
		SetScript(script).
		SetReferenceBlockID(header.ID).
		SetGasLimit(m.cfg.GasLimit).
		SetProposalKey(proposal.Address, proposal.KeyIndex, proposal.SequenceNumber).
		SetPayer(m.payer.Address).
		AddAuthorizer(m.payer.Address)
	for _, arg := range args {
		if err := tx.AddArgument(arg); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

// WaitForSeal polls the result of a transaction until it is sealed or expired.
// The first poll happens after InitialInterval, every non final status adds
// IntervalIncrement to the wait.
func (m *Manager) WaitForSeal(ctx context.Context, id flow.Identifier) (flow.TransactionResult, error) {
	wait := m.cfg.Wait.InitialInterval.Duration
	lastStatus := flow.TransactionStatusPending
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for attempt := 1; attempt <= m.cfg.Wait.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return flow.TransactionResult{}, ctx.Err()
		case <-timer.C:
		}

		result, err := m.client.GetTransactionResult(ctx, id)
		if err != nil {
			return flow.TransactionResult{}, err
		}
		if result.Status != lastStatus {
			m.logger.Debugf("transaction %s is %s after %d attempts", id, result.Status, attempt)
			m.journalStatus(ctx, id, result)
			lastStatus = result.Status
		}

		switch result.Status {
		case flow.TransactionStatusSealed:
			if err := result.Error(); err != nil {
				return result, fmt.Errorf("%w: transaction %s: %w", ErrExecutionFailed, id, err)
			}
			return result, nil
		case flow.TransactionStatusExpired:
			return result, fmt.Errorf("%w: %s", ErrTransactionExpired, id)
		default:
			wait += m.cfg.Wait.IntervalIncrement.Duration
			timer.Reset(wait)
		}
	}
	return flow.TransactionResult{}, fmt.Errorf("%w: %s after %d attempts", ErrWaitExhausted, id, m.cfg.Wait.MaxAttempts)
}

func (m *Manager) journalStatus(ctx context.Context, id flow.Identifier, result flow.TransactionResult) {
	if m.journal == nil {
		return
	}
	if err := m.journal.UpdateStatus(ctx, id, result); err != nil {
		m.logger.Warnf("error journaling status of transaction %s: %v", id, err)
	}
}

// keyArgument validates a hex P-256 public key and encodes it as the templates expect
func (m *Manager) keyArgument(publicKey string) (string, error) {
	pub, err := crypto.DecodePublicKeyHex(crypto.ECDSA_P256, publicKey)
	if err != nil {
		return "", err
	}
	if !m.templates.EncodedKeys {
		return hex.EncodeToString(pub.Encode()), nil
	}
	encoded, err := crypto.EncodeAccountKey(pub, crypto.SHA3_256, crypto.FullWeight)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(encoded), nil
}

func contractsArgument(contracts map[string]string) cadence.Argument {
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]cadence.KeyValue, 0, len(names))
	for _, name := range names {
		entries = append(entries, cadence.KeyValue{
			Key:   cadence.String(name),
			Value: cadence.String(hex.EncodeToString([]byte(contracts[name]))),
		})
	}
	return cadence.Dictionary(entries...)
}

// createdAddress returns the address carried by the last AccountCreated event of result
func createdAddress(result flow.TransactionResult) (flow.Address, error) {
	events := result.EventsByType(AccountCreatedEvent)
	if len(events) == 0 {
		return flow.EmptyAddress, ErrNoAccountCreated
	}
	field, err := cadence.EventField(events[len(events)-1].Payload, "address")
	if err != nil {
		return flow.EmptyAddress, fmt.Errorf("decoding %s: %w", AccountCreatedEvent, err)
	}
	return field.Address()
}

// ParsePublicKeys splits a comma separated list of hex public keys
func ParsePublicKeys(s string) []string {
	var res []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}
