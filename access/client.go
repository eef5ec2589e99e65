package access

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/0xPolygon/flowclient/flow"
	"github.com/0xPolygon/flowclient/log"
	accessproto "github.com/onflow/flow/protobuf/go/flow/access"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	ErrInvalidURL        = errors.New("invalid access node url")
	ErrInvalidBlockRange = errors.New("invalid block range")
	ErrMissingEventType  = errors.New("event type is required")
)

// AccessAPI is the subset of the Flow Access gRPC service used by the client
type AccessAPI interface {
	Ping(ctx context.Context, in *accessproto.PingRequest, opts ...grpc.CallOption) (*accessproto.PingResponse, error)
	GetLatestBlockHeader(ctx context.Context, in *accessproto.GetLatestBlockHeaderRequest,
		opts ...grpc.CallOption) (*accessproto.BlockHeaderResponse, error)
	GetLatestBlock(ctx context.Context, in *accessproto.GetLatestBlockRequest,
		opts ...grpc.CallOption) (*accessproto.BlockResponse, error)
	GetBlockByID(ctx context.Context, in *accessproto.GetBlockByIDRequest,
		opts ...grpc.CallOption) (*accessproto.BlockResponse, error)
	GetBlockByHeight(ctx context.Context, in *accessproto.GetBlockByHeightRequest,
		opts ...grpc.CallOption) (*accessproto.BlockResponse, error)
	GetCollectionByID(ctx context.Context, in *accessproto.GetCollectionByIDRequest,
		opts ...grpc.CallOption) (*accessproto.CollectionResponse, error)
	SendTransaction(ctx context.Context, in *accessproto.SendTransactionRequest,
		opts ...grpc.CallOption) (*accessproto.SendTransactionResponse, error)
	GetTransaction(ctx context.Context, in *accessproto.GetTransactionRequest,
		opts ...grpc.CallOption) (*accessproto.TransactionResponse, error)
	GetTransactionResult(ctx context.Context, in *accessproto.GetTransactionRequest,
		opts ...grpc.CallOption) (*accessproto.TransactionResultResponse, error)
	GetAccountAtLatestBlock(ctx context.Context, in *accessproto.GetAccountAtLatestBlockRequest,
		opts ...grpc.CallOption) (*accessproto.AccountResponse, error)
	GetAccountAtBlockHeight(ctx context.Context, in *accessproto.GetAccountAtBlockHeightRequest,
		opts ...grpc.CallOption) (*accessproto.AccountResponse, error)
	ExecuteScriptAtLatestBlock(ctx context.Context, in *accessproto.ExecuteScriptAtLatestBlockRequest,
		opts ...grpc.CallOption) (*accessproto.ExecuteScriptResponse, error)
	ExecuteScriptAtBlockID(ctx context.Context, in *accessproto.ExecuteScriptAtBlockIDRequest,
		opts ...grpc.CallOption) (*accessproto.ExecuteScriptResponse, error)
	ExecuteScriptAtBlockHeight(ctx context.Context, in *accessproto.ExecuteScriptAtBlockHeightRequest,
		opts ...grpc.CallOption) (*accessproto.ExecuteScriptResponse, error)
	GetEventsForHeightRange(ctx context.Context, in *accessproto.GetEventsForHeightRangeRequest,
		opts ...grpc.CallOption) (*accessproto.EventsResponse, error)
	GetEventsForBlockIDs(ctx context.Context, in *accessproto.GetEventsForBlockIDsRequest,
		opts ...grpc.CallOption) (*accessproto.EventsResponse, error)
}

// At selects the block a script runs against. A non empty ID wins over Height,
// and with neither set the latest sealed block is used.
type At struct {
	ID     flow.Identifier
	Height *uint64
}

// BlockQuery selects a block. A non empty ID wins over Height, and with neither set
// the latest block is returned, sealed or finalized depending on Sealed.
type BlockQuery struct {
	ID     flow.Identifier
	Height *uint64
	Sealed bool
}

// Client is a Flow Access API client
type Client struct {
	logger *log.Logger
	cfg    Config
	api    AccessAPI
	conn   *grpc.ClientConn
}

// NewClient creates a client for cfg.URL. The connection is established lazily on the first call.
func NewClient(logger *log.Logger, cfg Config) (*Client, error) {
	target, creds, err := dialTarget(cfg.URL)
	if err != nil {
		return nil, err
	}
	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(interceptors(logger, cfg)...),
	)
	if err != nil {
		return nil, fmt.Errorf("creating grpc client for %s: %w", cfg.URL, err)
	}
	logger.Infof("access client created for %s", target)
	return &Client{
		logger: logger,
		cfg:    cfg,
		api:    accessproto.NewAccessAPIClient(conn),
		conn:   conn,
	}, nil
}

// NewClientWithAPI returns a client over an existing AccessAPI implementation
func NewClientWithAPI(logger *log.Logger, cfg Config, api AccessAPI) *Client {
	return &Client{
		logger: logger,
		cfg:    cfg,
		api:    api,
	}
}

// dialTarget returns the grpc target and credentials for an access node url
func dialTarget(rawURL string) (string, credentials.TransportCredentials, error) {
	if rawURL == "" {
		return "", nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(rawURL, "://") {
		return rawURL, insecure.NewCredentials(), nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return "", nil, fmt.Errorf("%w: %s has no host", ErrInvalidURL, rawURL)
	}
	switch u.Scheme {
	case "http", "grpc":
		return u.Host, insecure.NewCredentials(), nil
	case "https", "grpcs":
		return u.Host, credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}), nil
	default:
		return "", nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
}

// Close releases the underlying connection
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout.Duration > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout.Duration)
	}
	return context.WithCancel(ctx)
}

// Ping checks that the access node is reachable
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	if _, err := c.api.Ping(ctx, &accessproto.PingRequest{}); err != nil {
		return fmt.Errorf("calling Ping: %w", err)
	}
	return nil
}

// GetAccount returns the account at the latest sealed block
func (c *Client) GetAccount(ctx context.Context, address flow.Address) (flow.Account, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetAccountAtLatestBlock(ctx, &accessproto.GetAccountAtLatestBlockRequest{Address: address.Bytes()})
	if err != nil {
		return flow.Account{}, fmt.Errorf("calling GetAccountAtLatestBlock %s: %w", address, err)
	}
	return accountFromMessage(res.GetAccount())
}

// GetAccountAtBlockHeight returns the account as it was at height
func (c *Client) GetAccountAtBlockHeight(ctx context.Context, address flow.Address, height uint64) (flow.Account, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetAccountAtBlockHeight(ctx, &accessproto.GetAccountAtBlockHeightRequest{
		Address:     address.Bytes(),
		BlockHeight: height,
	})
	if err != nil {
		return flow.Account{}, fmt.Errorf("calling GetAccountAtBlockHeight %s %d: %w", address, height, err)
	}
	return accountFromMessage(res.GetAccount())
}

// ExecuteScript runs a read only script and returns its JSON-Cadence encoded value
func (c *Client) ExecuteScript(ctx context.Context, script []byte, args [][]byte, at At) ([]byte, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	var (
		res *accessproto.ExecuteScriptResponse
		err error
	)
	switch {
	case !at.ID.IsEmpty():
		res, err = c.api.ExecuteScriptAtBlockID(ctx, &accessproto.ExecuteScriptAtBlockIDRequest{
			BlockId:   at.ID.Bytes(),
			Script:    script,
			Arguments: args,
		})
		if err != nil {
			return nil, fmt.Errorf("calling ExecuteScriptAtBlockID %s: %w", at.ID, err)
		}
	case at.Height != nil:
		res, err = c.api.ExecuteScriptAtBlockHeight(ctx, &accessproto.ExecuteScriptAtBlockHeightRequest{
			BlockHeight: *at.Height,
			Script:      script,
			Arguments:   args,
		})
		if err != nil {
			return nil, fmt.Errorf("calling ExecuteScriptAtBlockHeight %d: %w", *at.Height, err)
		}
	default:
		res, err = c.api.ExecuteScriptAtLatestBlock(ctx, &accessproto.ExecuteScriptAtLatestBlockRequest{
			Script:    script,
			Arguments: args,
		})
		if err != nil {
			return nil, fmt.Errorf("calling ExecuteScriptAtLatestBlock: %w", err)
		}
	}
	return res.GetValue(), nil
}

// ExecuteScriptAtLatestBlock runs a script against the latest sealed block
func (c *Client) ExecuteScriptAtLatestBlock(ctx context.Context, script []byte, args [][]byte) ([]byte, error) {
	return c.ExecuteScript(ctx, script, args, At{})
}

// SendTransaction submits a signed transaction and returns the id assigned by the node
func (c *Client) SendTransaction(ctx context.Context, tx *flow.Transaction) (flow.Identifier, error) {
	if err := tx.Validate(); err != nil {
		return flow.EmptyID, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.SendTransaction(ctx, &accessproto.SendTransactionRequest{Transaction: transactionToMessage(tx)})
	if err != nil {
		return flow.EmptyID, fmt.Errorf("calling SendTransaction: %w", err)
	}
	id := flow.BytesToID(res.GetId())
	if localID, err := tx.ID(); err == nil && localID != id {
		c.logger.Warnf("access node returned tx id %s, locally computed %s", id, localID)
	}
	return id, nil
}

// GetTransaction returns a submitted transaction
func (c *Client) GetTransaction(ctx context.Context, id flow.Identifier) (*flow.Transaction, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetTransaction(ctx, &accessproto.GetTransactionRequest{Id: id.Bytes()})
	if err != nil {
		return nil, fmt.Errorf("calling GetTransaction %s: %w", id, err)
	}
	return transactionFromMessage(res.GetTransaction())
}

// GetTransactionResult returns the current result of a transaction
func (c *Client) GetTransactionResult(ctx context.Context, id flow.Identifier) (flow.TransactionResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetTransactionResult(ctx, &accessproto.GetTransactionRequest{Id: id.Bytes()})
	if err != nil {
		return flow.TransactionResult{}, fmt.Errorf("calling GetTransactionResult %s: %w", id, err)
	}
	return transactionResultFromMessage(res)
}

// GetBlock returns the block selected by q
func (c *Client) GetBlock(ctx context.Context, q BlockQuery) (flow.Block, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	var (
		res *accessproto.BlockResponse
		err error
	)
	switch {
	case !q.ID.IsEmpty():
		res, err = c.api.GetBlockByID(ctx, &accessproto.GetBlockByIDRequest{Id: q.ID.Bytes()})
		if err != nil {
			return flow.Block{}, fmt.Errorf("calling GetBlockByID %s: %w", q.ID, err)
		}
	case q.Height != nil:
		res, err = c.api.GetBlockByHeight(ctx, &accessproto.GetBlockByHeightRequest{Height: *q.Height})
		if err != nil {
			return flow.Block{}, fmt.Errorf("calling GetBlockByHeight %d: %w", *q.Height, err)
		}
	default:
		res, err = c.api.GetLatestBlock(ctx, &accessproto.GetLatestBlockRequest{IsSealed: q.Sealed})
		if err != nil {
			return flow.Block{}, fmt.Errorf("calling GetLatestBlock: %w", err)
		}
	}
	return blockFromMessage(res.GetBlock())
}

// GetLatestBlockHeader returns the latest sealed or finalized block header
func (c *Client) GetLatestBlockHeader(ctx context.Context, sealed bool) (flow.BlockHeader, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetLatestBlockHeader(ctx, &accessproto.GetLatestBlockHeaderRequest{IsSealed: sealed})
	if err != nil {
		return flow.BlockHeader{}, fmt.Errorf("calling GetLatestBlockHeader: %w", err)
	}
	return blockHeaderFromMessage(res.GetBlock())
}

// GetEventsForHeightRange returns the events of eventType in blocks [start, end]
func (c *Client) GetEventsForHeightRange(ctx context.Context,
	eventType string, start, end uint64) ([]flow.BlockEvents, error) {
	if eventType == "" {
		return nil, ErrMissingEventType
	}
	if start > end {
		return nil, fmt.Errorf("%w: start %d > end %d", ErrInvalidBlockRange, start, end)
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetEventsForHeightRange(ctx, &accessproto.GetEventsForHeightRangeRequest{
		Type:        eventType,
		StartHeight: start,
		EndHeight:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("calling GetEventsForHeightRange %s [%d, %d]: %w", eventType, start, end, err)
	}
	return blockEventsFromMessage(res.GetResults()), nil
}

// GetEventsForBlockIDs returns the events of eventType in the given blocks
func (c *Client) GetEventsForBlockIDs(ctx context.Context,
	eventType string, ids []flow.Identifier) ([]flow.BlockEvents, error) {
	if eventType == "" {
		return nil, ErrMissingEventType
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetEventsForBlockIDs(ctx, &accessproto.GetEventsForBlockIDsRequest{
		Type:     eventType,
		BlockIds: flow.IDsToBytes(ids),
	})
	if err != nil {
		return nil, fmt.Errorf("calling GetEventsForBlockIDs %s: %w", eventType, err)
	}
	return blockEventsFromMessage(res.GetResults()), nil
}

// GetCollection returns a collection by id
func (c *Client) GetCollection(ctx context.Context, id flow.Identifier) (flow.Collection, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	res, err := c.api.GetCollectionByID(ctx, &accessproto.GetCollectionByIDRequest{Id: id.Bytes()})
	if err != nil {
		return flow.Collection{}, fmt.Errorf("calling GetCollectionByID %s: %w", id, err)
	}
	return collectionFromMessage(res.GetCollection())
}
