package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0xPolygon/flowclient/access/mocks"
	"github.com/0xPolygon/flowclient/config/types"
	"github.com/0xPolygon/flowclient/crypto"
	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	accessproto "github.com/onflow/flow/protobuf/go/flow/access"
	"github.com/onflow/flow/protobuf/go/flow/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	testAddress = flow.MustHexToAddress("f8d6e0586b0a20c7")
	testBlockID = flow.BytesToID([]byte{0xaa, 0xbb})
)

func newTestClient(t *testing.T) (*Client, *mocks.AccessAPI) {
	t.Helper()
	api := mocks.NewAccessAPI(t)
	return NewClientWithAPI(log.WithFields("module", "access-test"), Config{}, api), api
}

func TestDialTarget(t *testing.T) {
	tests := []struct {
		url    string
		target string
		secure bool
		err    bool
	}{
		{url: "http://localhost:3569", target: "localhost:3569"},
		{url: "grpc://access.devnet.nodes.onflow.org:9000", target: "access.devnet.nodes.onflow.org:9000"},
		{url: "https://access.mainnet.nodes.onflow.org:9000", target: "access.mainnet.nodes.onflow.org:9000", secure: true},
		{url: "127.0.0.1:3569", target: "127.0.0.1:3569"},
		{url: "", err: true},
		{url: "ftp://host:1", err: true},
		{url: "http://", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			target, creds, err := dialTarget(tt.url)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.target, target)
			if tt.secure {
				require.Equal(t, "tls", creds.Info().SecurityProtocol)
			} else {
				require.Equal(t, "insecure", creds.Info().SecurityProtocol)
			}
		})
	}
}

func TestNewClientLazy(t *testing.T) {
	c, err := NewClient(log.GetDefaultLogger(), Config{URL: "http://127.0.0.1:1", RequestsPerSecond: 5})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = NewClient(log.GetDefaultLogger(), Config{})
	require.ErrorIs(t, err, ErrInvalidURL)
}

func TestPing(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().Ping(mock.Anything, mock.Anything).Return(&accessproto.PingResponse{}, nil).Once()
	require.NoError(t, c.Ping(context.Background()))

	api.EXPECT().Ping(mock.Anything, mock.Anything).Return(nil, status.Error(codes.Unavailable, "down")).Once()
	err := c.Ping(context.Background())
	require.Error(t, err)
	require.Equal(t, codes.Unavailable, status.Code(errors.Unwrap(err)))
}

func TestGetAccount(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().GetAccountAtLatestBlock(mock.Anything, &accessproto.GetAccountAtLatestBlockRequest{Address: testAddress.Bytes()}).
		Return(&accessproto.AccountResponse{Account: &entities.Account{
			Address: testAddress.Bytes(),
			Balance: 100,
			Keys: []*entities.AccountKey{
				{Index: 0, PublicKey: []byte{1}, SignAlgo: 2, HashAlgo: 3, Weight: 1000, SequenceNumber: 7},
				{Index: 1, PublicKey: []byte{2}, SignAlgo: 2, HashAlgo: 3, Weight: 1000, Revoked: true},
			},
			Contracts: map[string][]byte{"Foo": []byte("contract Foo {}")},
		}}, nil).Once()

	acct, err := c.GetAccount(context.Background(), testAddress)
	require.NoError(t, err)
	require.Equal(t, testAddress, acct.Address)
	require.Equal(t, uint64(100), acct.Balance)
	require.Len(t, acct.Keys, 2)
	require.Equal(t, uint64(7), acct.Keys[0].SequenceNumber)
	require.True(t, acct.Keys[1].Revoked)
	require.Equal(t, []byte("contract Foo {}"), acct.Contracts["Foo"])

	api.EXPECT().GetAccountAtLatestBlock(mock.Anything, mock.Anything).
		Return(&accessproto.AccountResponse{}, nil).Once()
	_, err = c.GetAccount(context.Background(), testAddress)
	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGetAccountAtBlockHeight(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().GetAccountAtBlockHeight(mock.Anything, &accessproto.GetAccountAtBlockHeightRequest{
		Address:     testAddress.Bytes(),
		BlockHeight: 12,
	}).Return(&accessproto.AccountResponse{Account: &entities.Account{Address: testAddress.Bytes()}}, nil).Once()
	acct, err := c.GetAccountAtBlockHeight(context.Background(), testAddress, 12)
	require.NoError(t, err)
	require.Equal(t, testAddress, acct.Address)
}

func TestExecuteScriptPrecedence(t *testing.T) {
	script := []byte("access(all) fun main(): Int { return 1 }")
	args := [][]byte{[]byte(`{"type":"Int","value":"1"}`)}
	value := []byte(`{"type":"Int","value":"1"}`)
	height := uint64(33)

	c, api := newTestClient(t)
	api.EXPECT().ExecuteScriptAtBlockID(mock.Anything, &accessproto.ExecuteScriptAtBlockIDRequest{
		BlockId: testBlockID.Bytes(), Script: script, Arguments: args,
	}).Return(&accessproto.ExecuteScriptResponse{Value: value}, nil).Once()
	res, err := c.ExecuteScript(context.Background(), script, args, At{ID: testBlockID, Height: &height})
	require.NoError(t, err)
	require.Equal(t, value, res)

	api.EXPECT().ExecuteScriptAtBlockHeight(mock.Anything, &accessproto.ExecuteScriptAtBlockHeightRequest{
		BlockHeight: height, Script: script, Arguments: args,
	}).Return(&accessproto.ExecuteScriptResponse{Value: value}, nil).Once()
	_, err = c.ExecuteScript(context.Background(), script, args, At{Height: &height})
	require.NoError(t, err)

	api.EXPECT().ExecuteScriptAtLatestBlock(mock.Anything, &accessproto.ExecuteScriptAtLatestBlockRequest{
		Script: script, Arguments: args,
	}).Return(nil, errors.New("cadence error")).Once()
	_, err = c.ExecuteScriptAtLatestBlock(context.Background(), script, args)
	require.ErrorContains(t, err, "cadence error")
}

func TestGetBlockPrecedence(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	block := &entities.Block{
		Id:                   testBlockID.Bytes(),
		ParentId:             []byte{0x01},
		Height:               10,
		Timestamp:            timestamppb.New(ts),
		CollectionGuarantees: []*entities.CollectionGuarantee{{CollectionId: []byte{0x05}}},
		BlockSeals:           []*entities.BlockSeal{{BlockId: []byte{0x06}, ExecutionReceiptId: []byte{0x07}}},
	}
	height := uint64(10)
	c, api := newTestClient(t)

	api.EXPECT().GetBlockByID(mock.Anything, &accessproto.GetBlockByIDRequest{Id: testBlockID.Bytes()}).
		Return(&accessproto.BlockResponse{Block: block}, nil).Once()
	b, err := c.GetBlock(context.Background(), BlockQuery{ID: testBlockID, Height: &height})
	require.NoError(t, err)
	require.Equal(t, testBlockID, b.ID)
	require.Equal(t, uint64(10), b.Height)
	require.Equal(t, ts, b.Timestamp.UTC())
	require.Equal(t, flow.BytesToID([]byte{0x05}), b.CollectionGuarantees[0].CollectionID)
	require.Equal(t, flow.BytesToID([]byte{0x07}), b.Seals[0].ExecutionReceiptID)

	api.EXPECT().GetBlockByHeight(mock.Anything, &accessproto.GetBlockByHeightRequest{Height: 10}).
		Return(&accessproto.BlockResponse{Block: block}, nil).Once()
	_, err = c.GetBlock(context.Background(), BlockQuery{Height: &height})
	require.NoError(t, err)

	api.EXPECT().GetLatestBlock(mock.Anything, &accessproto.GetLatestBlockRequest{IsSealed: true}).
		Return(&accessproto.BlockResponse{Block: block}, nil).Once()
	_, err = c.GetBlock(context.Background(), BlockQuery{Sealed: true})
	require.NoError(t, err)
}

func TestGetLatestBlockHeader(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().GetLatestBlockHeader(mock.Anything, &accessproto.GetLatestBlockHeaderRequest{IsSealed: false}).
		Return(&accessproto.BlockHeaderResponse{Block: &entities.BlockHeader{Id: testBlockID.Bytes(), Height: 99}}, nil).Once()
	h, err := c.GetLatestBlockHeader(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, uint64(99), h.Height)
	require.Equal(t, testBlockID, h.ID)
}

func TestGetEvents(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	_, err := c.GetEventsForHeightRange(ctx, "flow.AccountCreated", 10, 9)
	require.ErrorIs(t, err, ErrInvalidBlockRange)
	_, err = c.GetEventsForHeightRange(ctx, "", 1, 2)
	require.ErrorIs(t, err, ErrMissingEventType)
	_, err = c.GetEventsForBlockIDs(ctx, "", nil)
	require.ErrorIs(t, err, ErrMissingEventType)

	results := []*accessproto.EventsResponse_Result{{
		BlockId:     testBlockID.Bytes(),
		BlockHeight: 5,
		Events: []*entities.Event{{
			Type:          "flow.AccountCreated",
			TransactionId: []byte{0x01},
			EventIndex:    2,
			Payload:       []byte(`{}`),
		}},
	}}
	api.EXPECT().GetEventsForHeightRange(mock.Anything, &accessproto.GetEventsForHeightRangeRequest{
		Type: "flow.AccountCreated", StartHeight: 5, EndHeight: 5,
	}).Return(&accessproto.EventsResponse{Results: results}, nil).Once()
	evs, err := c.GetEventsForHeightRange(ctx, "flow.AccountCreated", 5, 5)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	require.Equal(t, uint64(5), evs[0].Height)
	require.Equal(t, uint32(2), evs[0].Events[0].EventIndex)
	require.Equal(t, flow.BytesToID([]byte{0x01}), evs[0].Events[0].TransactionID)

	api.EXPECT().GetEventsForBlockIDs(mock.Anything, &accessproto.GetEventsForBlockIDsRequest{
		Type: "flow.AccountCreated", BlockIds: [][]byte{testBlockID.Bytes()},
	}).Return(&accessproto.EventsResponse{Results: results}, nil).Once()
	evs, err = c.GetEventsForBlockIDs(ctx, "flow.AccountCreated", []flow.Identifier{testBlockID})
	require.NoError(t, err)
	require.Len(t, evs, 1)
}

func TestGetCollection(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().GetCollectionByID(mock.Anything, &accessproto.GetCollectionByIDRequest{Id: testBlockID.Bytes()}).
		Return(&accessproto.CollectionResponse{Collection: &entities.Collection{
			Id:             testBlockID.Bytes(),
			TransactionIds: [][]byte{{0x01}, {0x02}},
		}}, nil).Once()
	col, err := c.GetCollection(context.Background(), testBlockID)
	require.NoError(t, err)
	require.Len(t, col.TransactionIDs, 2)
}

func signedTestTransaction(t *testing.T) *flow.Transaction {
	t.Helper()
	key, err := crypto.GeneratePrivateKey(crypto.ECDSA_P256, []byte("access-client-test-seed-0123456789abcdef"))
	require.NoError(t, err)
	signer, err := crypto.NewInMemorySigner(key, crypto.SHA3_256)
	require.NoError(t, err)
	tx := flow.NewTransaction().
		SetScript([]byte("transaction {}")).
		SetReferenceBlockID(testBlockID).
		SetProposalKey(testAddress, 0, 3).
		SetPayer(testAddress).
		AddAuthorizer(testAddress)
	require.NoError(t, tx.SignEnvelope(testAddress, 0, signer))
	return tx
}

func TestSendAndGetTransaction(t *testing.T) {
	c, api := newTestClient(t)
	tx := signedTestTransaction(t)
	id, err := tx.ID()
	require.NoError(t, err)

	api.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req *accessproto.SendTransactionRequest,
			_ ...grpc.CallOption) (*accessproto.SendTransactionResponse, error) {
			require.Equal(t, testAddress.Bytes(), req.Transaction.Payer)
			require.Equal(t, uint64(3), req.Transaction.ProposalKey.SequenceNumber)
			require.Len(t, req.Transaction.EnvelopeSignatures, 1)
			return &accessproto.SendTransactionResponse{Id: id.Bytes()}, nil
		}).Once()
	sentID, err := c.SendTransaction(context.Background(), tx)
	require.NoError(t, err)
	require.Equal(t, id, sentID)

	api.EXPECT().GetTransaction(mock.Anything, &accessproto.GetTransactionRequest{Id: id.Bytes()}).
		Return(&accessproto.TransactionResponse{Transaction: transactionToMessage(tx)}, nil).Once()
	got, err := c.GetTransaction(context.Background(), id)
	require.NoError(t, err)
	gotID, err := got.ID()
	require.NoError(t, err)
	require.Equal(t, id, gotID)

	_, err = c.SendTransaction(context.Background(), flow.NewTransaction())
	require.ErrorIs(t, err, flow.ErrMissingProposalKey)
}

func TestGetTransactionResult(t *testing.T) {
	c, api := newTestClient(t)
	api.EXPECT().GetTransactionResult(mock.Anything, &accessproto.GetTransactionRequest{Id: testBlockID.Bytes()}).
		Return(&accessproto.TransactionResultResponse{
			Status:       entities.TransactionStatus_SEALED,
			StatusCode:   1,
			ErrorMessage: "panic",
			BlockHeight:  8,
		}, nil).Once()
	res, err := c.GetTransactionResult(context.Background(), testBlockID)
	require.NoError(t, err)
	require.Equal(t, flow.TransactionStatusSealed, res.Status)
	require.ErrorIs(t, res.Error(), flow.ErrTransactionFailed)
	require.Equal(t, uint64(8), res.BlockHeight)
}

func TestCallTimeout(t *testing.T) {
	api := mocks.NewAccessAPI(t)
	c := NewClientWithAPI(log.GetDefaultLogger(), Config{Timeout: types.NewDuration(time.Millisecond)}, api)
	api.EXPECT().Ping(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *accessproto.PingRequest,
			_ ...grpc.CallOption) (*accessproto.PingResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
