package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpc.Request
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		resp, ok := responses[req.Method]
		if !ok {
			http.Error(w, "method not found", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"flow_ping": `{"jsonrpc":"2.0","id":1,"result":true}`,
		"flow_getLatestBlock": `{"jsonrpc":"2.0","id":1,"result":{"id":"` + testTxID.String() +
			`","height":12,"timestamp":"2024-01-02T03:04:05Z"}}`,
		"flow_getTransactionRecord": `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"transaction not found"}}`,
		"flow_listTransactionRecords": `{"jsonrpc":"2.0","id":1,"result":[{"txID":"` + testTxID.String() +
			`","kind":"add_key","status":"SEALED"}]}`,
		"flow_watcherStatus": `{"jsonrpc":"2.0","id":1,"result":{"name":"w","lastProcessedHeight":99}}`,
	})
	client := NewClient(srv.URL)

	require.NoError(t, client.Ping())

	header, err := client.GetLatestBlock(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(12), header.Height)
	require.Equal(t, testTxID, header.ID)

	_, err = client.GetTransactionRecord(testTxID.String())
	require.ErrorContains(t, err, "-32601 transaction not found")

	records, err := client.ListTransactionRecords(nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, flow.TransactionStatusSealed, records[0].Status)

	status, err := client.WatcherStatus()
	require.NoError(t, err)
	require.Equal(t, uint64(99), status.LastProcessedHeight)

	_, err = client.GetAccount(testAddress.String())
	require.Error(t, err)
}
