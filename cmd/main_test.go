package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xPolygon/flowclient/config"
	"github.com/0xPolygon/flowclient/config/types"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/0xPolygon/flowclient/eventwatcher"
	"github.com/0xPolygon/flowclient/eventwatcher/mocks"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	"github.com/stretchr/testify/require"
)

const testSeed = "0011223344556677889900112233445566778899001122334455667788990011"

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{appName}, args...))
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:")
}

func TestConfigCommand(t *testing.T) {
	full, err := runApp(t, "config")
	require.NoError(t, err)
	require.Contains(t, full, "AccessNodeURL")
	require.Contains(t, full, "[EventWatcher]")

	minimal, err := runApp(t, "config", "--min-config")
	require.NoError(t, err)
	require.Contains(t, minimal, "AccessNodeURL")
	require.NotContains(t, minimal, "[EventWatcher]")
}

func TestConfigSchemaCommand(t *testing.T) {
	out, err := runApp(t, "config-schema")
	require.NoError(t, err)
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Contains(t, schema, "properties")
}

func TestKeysGenerate(t *testing.T) {
	t.Run("deterministic from seed", func(t *testing.T) {
		first, err := runApp(t, "keys", "generate", "--seed", testSeed)
		require.NoError(t, err)
		second, err := runApp(t, "keys", "generate", "--seed", testSeed)
		require.NoError(t, err)
		require.Equal(t, first, second)

		var key generatedKey
		require.NoError(t, json.Unmarshal([]byte(first), &key))
		require.Equal(t, crypto.ECDSA_P256.String(), key.SigAlgo)
		priv, err := crypto.DecodePrivateKeyHex(crypto.ECDSA_P256, key.PrivateKey)
		require.NoError(t, err)
		require.Equal(t, key.PublicKey, priv.PublicKey().String())
		require.NotEmpty(t, key.AccountKey)
		require.Empty(t, key.Mnemonic)
	})
	t.Run("new mnemonic", func(t *testing.T) {
		out, err := runApp(t, "keys", "generate", "--new-mnemonic", "--algo", "ECDSA_secp256k1")
		require.NoError(t, err)
		var key generatedKey
		require.NoError(t, json.Unmarshal([]byte(out), &key))
		require.Equal(t, crypto.ECDSA_secp256k1.String(), key.SigAlgo)

		derived, err := crypto.GeneratePrivateKeyFromMnemonic(crypto.ECDSA_secp256k1, key.Mnemonic, "")
		require.NoError(t, err)
		require.Equal(t, key.PrivateKey, derived.String())
	})
	t.Run("output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key.json")
		out, err := runApp(t, "keys", "generate", "--seed", testSeed, "--output", path)
		require.NoError(t, err)
		require.Empty(t, out)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var key generatedKey
		require.NoError(t, json.Unmarshal(data, &key))
		require.NotEmpty(t, key.PrivateKey)
	})
	t.Run("seed and mnemonic", func(t *testing.T) {
		_, err := runApp(t, "keys", "generate", "--seed", testSeed, "--new-mnemonic")
		require.ErrorIs(t, err, errSeedAndMnemonic)
	})
	t.Run("short seed", func(t *testing.T) {
		_, err := runApp(t, "keys", "generate", "--seed", "0011")
		require.ErrorIs(t, err, crypto.ErrSeedTooShort)
	})
}

func TestKeysEncrypt(t *testing.T) {
	key, err := crypto.GeneratePrivateKey(crypto.ECDSA_P256, []byte(testSeed))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "key.json")

	_, err = runApp(t, "keys", "encrypt",
		"--private-key", key.String(), "--key-store-path", path, "--password", "secret")
	require.NoError(t, err)

	loaded, err := crypto.LoadKeystore(path, "secret")
	require.NoError(t, err)
	require.Equal(t, key.String(), loaded.String())
}

func TestReadContracts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Hello.cdc")
	require.NoError(t, os.WriteFile(path, []byte("access(all) contract Hello {}"), 0o600))

	contracts, err := readContracts([]string{"Hello=" + path})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"Hello": "access(all) contract Hello {}"}, contracts)

	_, err = readContracts([]string{"Hello"})
	require.ErrorContains(t, err, "expected name=path")

	_, err = readContracts([]string{"Missing=" + filepath.Join(dir, "missing.cdc")})
	require.Error(t, err)
}

func TestParseArguments(t *testing.T) {
	args, err := parseArguments([]string{"UInt64:10", "String:hello"})
	require.NoError(t, err)
	require.Len(t, args, 2)
	require.JSONEq(t, `{"type":"UInt64","value":"10"}`, string(args[0]))
	require.JSONEq(t, `{"type":"String","value":"hello"}`, string(args[1]))

	_, err = parseArguments([]string{"nope"})
	require.Error(t, err)
}

func TestTransactionView(t *testing.T) {
	payer := flow.MustHexToAddress("f8d6e0586b0a20c7")
	tx := flow.NewTransaction().
		SetScript([]byte("transaction {}")).
		SetProposalKey(payer, 1, 7).
		SetPayer(payer).
		AddAuthorizer(payer).
		AddRawArgument([]byte(`{"type":"Bool","value":true}`)).
		AddRawArgument([]byte{0x01})

	view := newTransactionView(tx)
	require.Equal(t, "transaction {}", view.Script)
	require.Equal(t, uint32(1), view.ProposerKeyIndex)
	require.Equal(t, uint64(7), view.SequenceNumber)
	require.JSONEq(t, `{"type":"Bool","value":true}`, string(view.Arguments[0]))
	require.Equal(t, `"01"`, string(view.Arguments[1]))
}

func TestMetricsServer(t *testing.T) {
	cfg := eventwatcher.Config{
		EventTypes:   []string{"flow.AccountCreated"},
		StartHeight:  5,
		PollInterval: types.NewDuration(time.Second),
	}
	watcher, err := eventwatcher.NewEventWatcher(log.GetDefaultLogger(), cfg, mocks.NewEventsClient(t), nil, nil)
	require.NoError(t, err)

	server := createMetricsServer(config.MetricsConfig{Host: "127.0.0.1", Port: 9091}, watcher)
	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `flowclient_eventwatcher_last_processed_height{watcher="eventwatcher"} 4`)
	require.Contains(t, string(body), "go_goroutines")
}
