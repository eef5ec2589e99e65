package accounts

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/flowclient/accounts/mocks"
	"github.com/0xPolygon/flowclient/cadence"
	"github.com/0xPolygon/flowclient/config/types"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	payerAddress = flow.MustHexToAddress("f8d6e0586b0a20c7")
	newAddress   = flow.MustHexToAddress("01cf0e2f2f715450")
	refBlockID   = flow.BytesToID([]byte{0x0b, 0x0c})
	testTxID     = flow.BytesToID([]byte{0x7a})
)

type testData struct {
	manager *Manager
	client  *mocks.Client
	journal *journal.SQLJournal
	key     crypto.PrivateKey
}

func fastConfig() Config {
	return Config{
		Wait: WaitConfig{
			InitialInterval:   types.NewDuration(time.Millisecond),
			IntervalIncrement: types.NewDuration(time.Millisecond),
			MaxAttempts:       5,
		},
	}
}

func newTestData(t *testing.T, cfg Config, opts ...Option) *testData {
	t.Helper()
	key, err := crypto.GeneratePrivateKey(crypto.ECDSA_P256, []byte("accounts-manager-test-seed-0123456789"))
	require.NoError(t, err)
	signer, err := crypto.NewInMemorySigner(key, crypto.SHA3_256)
	require.NoError(t, err)
	logger := log.WithFields("module", "accounts-test")
	j, err := journal.NewSQLJournal(logger, path.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	client := mocks.NewClient(t)
	opts = append([]Option{WithJournal(j)}, opts...)
	m := NewManager(logger, cfg, client, Payer{Address: payerAddress, KeyIndex: 0, Signer: signer}, opts...)
	return &testData{manager: m, client: client, journal: j, key: key}
}

func (d *testData) expectBuild(seq uint64) {
	d.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).
		Return(flow.BlockHeader{ID: refBlockID, Height: 100}, nil).Once()
	d.client.EXPECT().GetAccount(mock.Anything, payerAddress).Return(flow.Account{
		Address: payerAddress,
		Keys: []flow.AccountKey{{
			Index:          0,
			PublicKey:      d.key.PublicKey().Encode(),
			SigAlgo:        uint32(crypto.ECDSA_P256),
			HashAlgo:       uint32(crypto.SHA3_256),
			Weight:         crypto.FullWeight,
			SequenceNumber: seq,
		}},
	}, nil).Once()
}

func accountCreatedEvent(address flow.Address) flow.Event {
	payload := `{"type":"Event","value":{"id":"flow.AccountCreated","fields":[` +
		`{"name":"address","value":{"type":"Address","value":"` + address.HexWithPrefix() + `"}}]}}`
	return flow.Event{Type: AccountCreatedEvent, Payload: []byte(payload)}
}

func TestDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, uint64(1000), cfg.GasLimit)
	require.Equal(t, 50*time.Millisecond, cfg.Wait.InitialInterval.Duration)
	require.Equal(t, 200*time.Millisecond, cfg.Wait.IntervalIncrement.Duration)
	require.Equal(t, 50, cfg.Wait.MaxAttempts)
}

func TestCreateAccount(t *testing.T) {
	d := newTestData(t, fastConfig())
	ctx := context.Background()
	newKey := d.key.PublicKey().String()

	d.expectBuild(4)
	d.client.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tx *flow.Transaction) (flow.Identifier, error) {
			require.Equal(t, []byte(cadence.DefaultTemplates().CreateAccount), tx.Script)
			require.Equal(t, refBlockID, tx.ReferenceBlockID)
			require.Equal(t, uint64(4), tx.ProposalKey.SequenceNumber)
			require.Equal(t, payerAddress, tx.Payer)
			require.Equal(t, []flow.Address{payerAddress}, tx.Authorizers)
			require.Empty(t, tx.PayloadSignatures)
			require.Len(t, tx.EnvelopeSignatures, 1)

			msg, err := tx.EnvelopeMessage()
			require.NoError(t, err)
			ok, err := crypto.Verify(d.key.PublicKey(), crypto.SHA3_256,
				append(flow.DomainTagTransaction[:], msg...), tx.EnvelopeSignatures[0].Signature)
			require.NoError(t, err)
			require.True(t, ok)

			require.Len(t, tx.Arguments, 2)
			var keys struct {
				Value []struct{ Value string } `json:"value"`
			}
			require.NoError(t, json.Unmarshal(tx.Arguments[0], &keys))
			require.Equal(t, hex.EncodeToString(d.key.PublicKey().Encode()), keys.Value[0].Value)
			require.JSONEq(t, `{"type":"Dictionary","value":[{"key":{"type":"String","value":"Foo"},`+
				`"value":{"type":"String","value":"`+hex.EncodeToString([]byte("contract Foo {}"))+`"}}]}`,
				string(tx.Arguments[1]))
			return testTxID, nil
		}).Once()
	d.client.EXPECT().GetTransactionResult(mock.Anything, testTxID).
		Return(flow.TransactionResult{Status: flow.TransactionStatusPending}, nil).Once()
	d.client.EXPECT().GetTransactionResult(mock.Anything, testTxID).
		Return(flow.TransactionResult{Status: flow.TransactionStatusExecuted}, nil).Once()
	d.client.EXPECT().GetTransactionResult(mock.Anything, testTxID).
		Return(flow.TransactionResult{
			Status:      flow.TransactionStatusSealed,
			BlockHeight: 101,
			Events:      []flow.Event{{Type: "flow.AccountKeyAdded"}, accountCreatedEvent(newAddress)},
		}, nil).Once()
	d.client.EXPECT().GetAccount(mock.Anything, newAddress).Return(flow.Account{Address: newAddress}, nil).Once()

	acct, err := d.manager.CreateAccount(ctx, []string{newKey}, map[string]string{"Foo": "contract Foo {}"})
	require.NoError(t, err)
	require.Equal(t, newAddress, acct.Address)

	rec, err := d.journal.GetTransaction(testTxID)
	require.NoError(t, err)
	require.Equal(t, journal.KindCreateAccount, rec.Kind)
	require.Equal(t, flow.TransactionStatusSealed, rec.Status)
	require.Equal(t, uint64(101), rec.BlockHeight)
}

func TestCreateAccountInvalidInput(t *testing.T) {
	d := newTestData(t, fastConfig())
	_, err := d.manager.CreateAccount(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrNoPublicKeys)
	_, err = d.manager.CreateAccount(context.Background(), []string{"0xzz"}, nil)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}

func TestCreateAccountWithoutEvent(t *testing.T) {
	d := newTestData(t, fastConfig())
	d.expectBuild(0)
	d.client.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(testTxID, nil).Once()
	d.client.EXPECT().GetTransactionResult(mock.Anything, testTxID).
		Return(flow.TransactionResult{Status: flow.TransactionStatusSealed}, nil).Once()
	_, err := d.manager.CreateAccount(context.Background(), []string{d.key.PublicKey().String()}, nil)
	require.ErrorIs(t, err, ErrNoAccountCreated)
}

func TestLegacyTemplatesEncodeKeys(t *testing.T) {
	cfg := fastConfig()
	cfg.LegacyTemplates = true
	d := newTestData(t, cfg)
	d.expectBuild(1)
	d.client.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tx *flow.Transaction) (flow.Identifier, error) {
			require.Equal(t, []byte(cadence.LegacyTemplates().AddKey), tx.Script)
			expected := "f847b840" + hex.EncodeToString(d.key.PublicKey().Encode()) + "02038203e8"
			require.JSONEq(t, `{"type":"String","value":"`+expected+`"}`, string(tx.Arguments[0]))
			return testTxID, nil
		}).Once()
	id, err := d.manager.AddKey(context.Background(), d.key.PublicKey().String())
	require.NoError(t, err)
	require.Equal(t, testTxID, id)
}

func TestKeyAndContractOperations(t *testing.T) {
	code := "access(all) contract Foo {}"
	codeHex := hex.EncodeToString([]byte(code))
	tests := []struct {
		name   string
		run    func(m *Manager) (flow.Identifier, error)
		script func(t cadence.Templates) string
		args   []string
		kind   string
	}{
		{
			name:   "remove key",
			run:    func(m *Manager) (flow.Identifier, error) { return m.RemoveKey(context.Background(), 2) },
			script: func(t cadence.Templates) string { return t.RemoveKey },
			args:   []string{`{"type":"Int","value":"2"}`},
			kind:   journal.KindRemoveKey,
		},
		{
			name:   "add contract",
			run:    func(m *Manager) (flow.Identifier, error) { return m.AddContract(context.Background(), "Foo", code) },
			script: func(t cadence.Templates) string { return t.AddContract },
			args:   []string{`{"type":"String","value":"Foo"}`, `{"type":"String","value":"` + codeHex + `"}`},
			kind:   journal.KindAddContract,
		},
		{
			name:   "update contract",
			run:    func(m *Manager) (flow.Identifier, error) { return m.UpdateContract(context.Background(), "Foo", code) },
			script: func(t cadence.Templates) string { return t.UpdateContract },
			args:   []string{`{"type":"String","value":"Foo"}`, `{"type":"String","value":"` + codeHex + `"}`},
			kind:   journal.KindUpdateContract,
		},
		{
			name:   "remove contract",
			run:    func(m *Manager) (flow.Identifier, error) { return m.RemoveContract(context.Background(), "Foo") },
			script: func(t cadence.Templates) string { return t.RemoveContract },
			args:   []string{`{"type":"String","value":"Foo"}`},
			kind:   journal.KindRemoveContract,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestData(t, fastConfig())
			d.expectBuild(9)
			d.client.EXPECT().SendTransaction(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, tx *flow.Transaction) (flow.Identifier, error) {
					require.Equal(t, tt.script(cadence.DefaultTemplates()), string(tx.Script))
					require.Len(t, tx.Arguments, len(tt.args))
					for i, a := range tt.args {
						require.JSONEq(t, a, string(tx.Arguments[i]))
					}
					return testTxID, nil
				}).Once()
			id, err := tt.run(d.manager)
			require.NoError(t, err)
			require.Equal(t, testTxID, id)
			rec, err := d.journal.GetTransaction(testTxID)
			require.NoError(t, err)
			require.Equal(t, tt.kind, rec.Kind)
			require.Equal(t, flow.TransactionStatusPending, rec.Status)
		})
	}
}

func TestBuildTransactionRevokedKey(t *testing.T) {
	d := newTestData(t, fastConfig())
	d.client.EXPECT().GetLatestBlockHeader(mock.Anything, false).Return(flow.BlockHeader{ID: refBlockID}, nil).Once()
	d.client.EXPECT().GetAccount(mock.Anything, payerAddress).Return(flow.Account{
		Address: payerAddress,
		Keys:    []flow.AccountKey{{Index: 0, Revoked: true}},
	}, nil).Once()
	_, err := d.manager.RemoveContract(context.Background(), "Foo")
	require.ErrorIs(t, err, flow.ErrKeyRevoked)
}

func TestWaitForSeal(t *testing.T) {
	tests := []struct {
		name     string
		results  []flow.TransactionResult
		expected error
	}{
		{
			name:    "sealed",
			results: []flow.TransactionResult{{Status: flow.TransactionStatusFinalized}, {Status: flow.TransactionStatusSealed}},
		},
		{
			name:     "execution error",
			results:  []flow.TransactionResult{{Status: flow.TransactionStatusSealed, StatusCode: 1, ErrorMessage: "boom"}},
			expected: ErrExecutionFailed,
		},
		{
			name:     "expired",
			results:  []flow.TransactionResult{{Status: flow.TransactionStatusUnknown}, {Status: flow.TransactionStatusExpired}},
			expected: ErrTransactionExpired,
		},
		{
			name: "exhausted",
			results: []flow.TransactionResult{
				{Status: flow.TransactionStatusPending}, {Status: flow.TransactionStatusPending},
				{Status: flow.TransactionStatusPending}, {Status: flow.TransactionStatusPending},
				{Status: flow.TransactionStatusPending},
			},
			expected: ErrWaitExhausted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestData(t, fastConfig())
			for _, r := range tt.results {
				d.client.EXPECT().GetTransactionResult(mock.Anything, testTxID).Return(r, nil).Once()
			}
			_, err := d.manager.WaitForSeal(context.Background(), testTxID)
			if tt.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.expected)
			if tt.expected == ErrExecutionFailed {
				require.ErrorIs(t, err, flow.ErrTransactionFailed)
			}
		})
	}
}

func TestWaitForSealContextCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.Wait.InitialInterval = types.NewDuration(time.Hour)
	d := newTestData(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.manager.WaitForSeal(ctx, testTxID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParsePublicKeys(t *testing.T) {
	require.Equal(t, []string{"aa", "bb"}, ParsePublicKeys(" aa, ,bb "))
	require.Nil(t, ParsePublicKeys(""))
}
