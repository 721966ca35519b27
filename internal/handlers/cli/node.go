package cli

import (
	"context"

	"github.com/gabapcia/walletsweep/internal/config"
	"github.com/gabapcia/walletsweep/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletsweep/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletsweep/internal/walletops"

	"github.com/ethereum/go-ethereum/common"
)

// Node is a connected chain client that can also bind NFT collections.
type Node interface {
	walletops.Chain

	// Collection binds the ERC-721 contract at address. A nil abiJSON selects
	// the built-in ABI.
	Collection(address common.Address, abiJSON []byte) (walletops.Collection, error)
}

// Dialer opens a Node for the given configuration. It is called once per
// command, after flag overrides have been applied.
type Dialer func(ctx context.Context, cfg config.Config) (Node, error)

// DialNode connects to the JSON-RPC endpoint in cfg and checks that it
// serves the configured chain.
func DialNode(ctx context.Context, cfg config.Config) (Node, error) {
	conn := jsonrpc.NewClient(
		cfg.RPCURL,
		jsonrpc.WithTimeout(cfg.HTTPTimeout),
		jsonrpc.WithRetryMax(cfg.HTTPRetries),
	)

	client := ethereum.NewClient(
		conn,
		ethereum.WithChainID(cfg.ChainID),
		ethereum.WithReceiptTimeout(cfg.ReceiptTimeout),
		ethereum.WithPollInterval(cfg.PollInterval),
	)

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
