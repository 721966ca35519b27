package ethereum

import (
	"context"

	"github.com/gabapcia/walletsweep/internal/pkg/types"
	"github.com/gabapcia/walletsweep/internal/walletops"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// callArgs is the transaction call object of eth_call and eth_estimateGas.
type callArgs struct {
	From  *common.Address `json:"from,omitempty"`
	To    common.Address  `json:"to"`
	Value types.Quantity  `json:"value,omitempty"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
}

// Balance implements walletops.Chain using eth_getBalance at the latest block.
func (c *client) Balance(ctx context.Context, address common.Address) (decimal.Decimal, error) {
	q, err := c.fetchQuantity(ctx, "eth_getBalance", address, "latest")
	if err != nil {
		return decimal.Zero, err
	}

	return fromWei(q.Big()), nil
}

// TransactionCount implements walletops.Chain. Pending transactions are
// counted so consecutive sends from one address get consecutive nonces.
func (c *client) TransactionCount(ctx context.Context, address common.Address) (uint64, error) {
	q, err := c.fetchQuantity(ctx, "eth_getTransactionCount", address, "pending")
	if err != nil {
		return 0, err
	}

	return q.Uint64(), nil
}

// EstimateGas implements walletops.Chain.
func (c *client) EstimateGas(ctx context.Context, msg walletops.Message) (uint64, error) {
	from := msg.From
	args := callArgs{
		From: &from,
		To:   msg.To,
		Data: msg.Data,
	}
	if msg.Value.IsPositive() {
		args.Value = types.QuantityFromBig(toWei(msg.Value))
	}

	q, err := c.fetchQuantity(ctx, "eth_estimateGas", args)
	if err != nil {
		return 0, err
	}

	return q.Uint64(), nil
}

// GasPrice implements walletops.Chain.
func (c *client) GasPrice(ctx context.Context) (decimal.Decimal, error) {
	q, err := c.fetchQuantity(ctx, "eth_gasPrice")
	if err != nil {
		return decimal.Zero, err
	}

	return fromWei(q.Big()), nil
}
