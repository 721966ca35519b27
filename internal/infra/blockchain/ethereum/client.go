// Package ethereum implements the walletops.Chain and walletops.Collection
// ports for EVM-compatible nodes on top of a JSON-RPC client.
//
// Amounts cross the package boundary as decimal native-coin units and are
// converted to wei (18 decimals) on the wire.
package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/walletsweep/internal/pkg/logger"
	"github.com/gabapcia/walletsweep/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsweep/internal/pkg/types"
	"github.com/gabapcia/walletsweep/internal/walletops"
)

var (
	// ErrConnectionFailure is returned when the node cannot be reached at startup.
	ErrConnectionFailure = errors.New("node connection failed")

	// ErrChainMismatch is returned when the node serves another chain than the configured one.
	ErrChainMismatch = errors.New("chain id mismatch")

	// ErrReceiptTimeout is returned when a transaction is not mined within the receipt timeout.
	ErrReceiptTimeout = errors.New("receipt timeout")
)

// client implements walletops.Chain for Ethereum-compatible networks.
type client struct {
	conn           jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
	chainID        *big.Int       // Chain id used for signing, learned from the node when unset
	receiptTimeout time.Duration  // Upper bound of WaitForReceipt
	pollInterval   time.Duration  // Pause between two receipt lookups
}

// Ensure client implements the walletops.Chain interface at compile time.
var _ walletops.Chain = (*client)(nil)

// config holds optional client settings.
type config struct {
	chainID        int64
	receiptTimeout time.Duration
	pollInterval   time.Duration
}

// Option customizes the client.
type Option func(*config)

// WithChainID pins the chain id. Connect fails when the node reports another one.
func WithChainID(id int64) Option {
	return func(c *config) {
		c.chainID = id
	}
}

// WithReceiptTimeout bounds how long WaitForReceipt waits for a transaction to be mined.
//
// Default: 3 minutes.
func WithReceiptTimeout(d time.Duration) Option {
	return func(c *config) {
		c.receiptTimeout = d
	}
}

// WithPollInterval sets the pause between two receipt lookups.
//
// Default: 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// NewClient creates a new Ethereum client using the provided JSON-RPC connection.
// Connect must succeed before transactions can be signed unless WithChainID is given.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		receiptTimeout: 3 * time.Minute,
		pollInterval:   2 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var chainID *big.Int
	if cfg.chainID > 0 {
		chainID = big.NewInt(cfg.chainID)
	}

	return &client{
		conn:           conn,
		chainID:        chainID,
		receiptTimeout: cfg.receiptTimeout,
		pollInterval:   cfg.pollInterval,
	}
}

// isTransient reports whether a receipt lookup error is worth another poll.
// JSON-RPC error objects are final, everything else (pending receipt,
// transport hiccups) is retried until the receipt timeout.
func isTransient(err error) bool {
	return !errors.Is(err, jsonrpc.ErrProviderReturnedError)
}

// Connect checks that the node answers and serves the expected chain.
// When no chain id was configured the node's one is adopted.
func (c *client) Connect(ctx context.Context) error {
	data, err := c.conn.Fetch(ctx, "eth_chainId")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailure, err)
	}

	var id types.Quantity
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("%w: eth_chainId: %v", ErrConnectionFailure, err)
	}

	if c.chainID != nil && c.chainID.Cmp(id.Big()) != 0 {
		return fmt.Errorf("%w: configured %s, node reports %s", ErrChainMismatch, c.chainID, id.Big())
	}

	c.chainID = id.Big()
	logger.Info(ctx, "connected to node", "chain_id", c.chainID.String())
	return nil
}

// ChainID returns the chain id used for signing, nil before Connect when not configured.
func (c *client) ChainID() *big.Int {
	return c.chainID
}

// fetchQuantity calls method and decodes a hex quantity result.
func (c *client) fetchQuantity(ctx context.Context, method string, params ...any) (types.Quantity, error) {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return "", err
	}

	var q types.Quantity
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}

	return q, nil
}
