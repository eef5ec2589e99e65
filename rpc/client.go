package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/flowclient/eventwatcher"
	"github.com/0xPolygon/flowclient/journal"
	"github.com/0xPolygon/flowclient/rpc/types"
)

// ClientInterface is the interface that defines the implementation of all the endpoints
type ClientInterface interface {
	Ping() error
	GetAccount(address string) (*types.Account, error)
	GetLatestBlock(sealed *bool) (*types.BlockHeader, error)
	GetTransactionResult(id string) (*types.TransactionResult, error)
	GetTransactionRecord(id string) (*journal.TransactionRecord, error)
	ListTransactionRecords(status *string) ([]*journal.TransactionRecord, error)
	WatcherStatus() (*eventwatcher.Status, error)
}

var _ ClientInterface = (*Client)(nil)

// Client wraps all the available endpoints of the flow service
type Client struct {
	url string
}

// NewClient returns a client ready to be used
func NewClient(url string) *Client {
	return &Client{
		url: url,
	}
}

// call runs method and decodes its result into result, which may be nil
func (c *Client) call(result interface{}, method string, params ...interface{}) error {
	response, err := rpc.JSONRPCCall(c.url, method, params...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(response.Result, result)
}

func (c *Client) Ping() error {
	return c.call(nil, "flow_ping")
}

func (c *Client) GetAccount(address string) (*types.Account, error) {
	var result types.Account
	if err := c.call(&result, "flow_getAccount", address); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetLatestBlock(sealed *bool) (*types.BlockHeader, error) {
	var result types.BlockHeader
	if err := c.call(&result, "flow_getLatestBlock", sealed); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetTransactionResult(id string) (*types.TransactionResult, error) {
	var result types.TransactionResult
	if err := c.call(&result, "flow_getTransactionResult", id); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetTransactionRecord(id string) (*journal.TransactionRecord, error) {
	var result journal.TransactionRecord
	if err := c.call(&result, "flow_getTransactionRecord", id); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListTransactionRecords(status *string) ([]*journal.TransactionRecord, error) {
	var result []*journal.TransactionRecord
	if err := c.call(&result, "flow_listTransactionRecords", status); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) WatcherStatus() (*eventwatcher.Status, error) {
	var result eventwatcher.Status
	if err := c.call(&result, "flow_watcherStatus"); err != nil {
		return nil, err
	}
	return &result, nil
}
