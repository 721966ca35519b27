package ethereum

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/walletsweep/internal/pkg/logger"
	"github.com/gabapcia/walletsweep/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsweep/internal/pkg/types"
	"github.com/gabapcia/walletsweep/internal/walletops"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

var (
	// errNoChainID is returned when signing before the chain id is known.
	errNoChainID = errors.New("chain id unknown, connect first")

	// errReceiptPending marks a transaction that is not mined yet.
	errReceiptPending = errors.New("receipt pending")
)

// ReceiptResponse is the subset of a transaction receipt returned by eth_getTransactionReceipt.
type ReceiptResponse struct {
	TransactionHash string         `json:"transactionHash"`
	BlockNumber     types.Quantity `json:"blockNumber"`
	GasUsed         types.Quantity `json:"gasUsed"`
	Status          types.Quantity `json:"status"`
}

// toReceipt converts a ReceiptResponse to a walletops.Receipt.
func (r ReceiptResponse) toReceipt() walletops.Receipt {
	return walletops.Receipt{
		TxHash:      r.TransactionHash,
		BlockNumber: r.BlockNumber.Uint64(),
		GasUsed:     r.GasUsed.Uint64(),
		Status:      r.Status.Uint64(),
	}
}

// SignTransaction implements walletops.Chain. It builds a legacy (gas price)
// transaction and signs it with EIP-155 replay protection.
func (c *client) SignTransaction(tx walletops.Transaction, key *ecdsa.PrivateKey) (walletops.SignedTransaction, error) {
	if c.chainID == nil {
		return walletops.SignedTransaction{}, errNoChainID
	}

	to := tx.To
	unsigned := ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    tx.Nonce,
		GasPrice: toWei(tx.GasPrice),
		Gas:      tx.Gas,
		To:       &to,
		Value:    toWei(tx.Value),
		Data:     tx.Data,
	})

	signed, err := ethtypes.SignTx(unsigned, ethtypes.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return walletops.SignedTransaction{}, err
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return walletops.SignedTransaction{}, err
	}

	return walletops.SignedTransaction{
		Raw:  raw,
		Hash: signed.Hash().Hex(),
	}, nil
}

// SendRawTransaction implements walletops.Chain.
func (c *client) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	data, err := c.conn.Fetch(ctx, "eth_sendRawTransaction", hexutil.Encode(raw))
	if err != nil {
		return "", err
	}

	var hash string
	if err := json.Unmarshal(data, &hash); err != nil {
		return "", fmt.Errorf("eth_sendRawTransaction: %w", err)
	}

	return hash, nil
}

// getReceipt fetches the receipt of txHash, returning errReceiptPending while
// the node does not know it yet.
func (c *client) getReceipt(ctx context.Context, txHash string) (walletops.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return walletops.Receipt{}, err
	}

	var resp *ReceiptResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return walletops.Receipt{}, fmt.Errorf("eth_getTransactionReceipt: %w", err)
	}

	if resp == nil || resp.BlockNumber == "" {
		return walletops.Receipt{}, errReceiptPending
	}

	return resp.toReceipt(), nil
}

// WaitForReceipt implements walletops.Chain. It polls at a fixed interval and
// gives up with ErrReceiptTimeout once the receipt timeout elapses. The
// transaction may still be mined afterwards.
func (c *client) WaitForReceipt(ctx context.Context, txHash string) (walletops.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	poller := retry.New(
		retry.WithAttempts(0),
		retry.WithDelay(c.pollInterval),
		retry.WithFixedDelay(),
		retry.WithRetryIf(isTransient),
		retry.WithOnRetry(func(attempt uint, err error) {
			if errors.Is(err, errReceiptPending) {
				logger.Debug(ctx, "receipt pending", "tx", txHash, "attempt", attempt+1)
				return
			}
			logger.Warn(ctx, "receipt lookup failed", "tx", txHash, "attempt", attempt+1, "error", err)
		}),
	)

	var receipt walletops.Receipt
	err := poller.Execute(waitCtx, func() error {
		r, err := c.getReceipt(waitCtx, txHash)
		if err != nil {
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		if ctx.Err() == nil && waitCtx.Err() != nil {
			return walletops.Receipt{}, fmt.Errorf("%w: %s not mined after %s", ErrReceiptTimeout, txHash, c.receiptTimeout)
		}
		return walletops.Receipt{}, err
	}

	return receipt, nil
}
