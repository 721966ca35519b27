package walletops

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletsweep/internal/credential"
	"github.com/gabapcia/walletsweep/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// txRequest is a transaction to build, sign, broadcast and confirm.
// Zero Gas or GasPrice are filled in from the node.
type txRequest struct {
	From     credential.Credential
	To       common.Address
	Value    decimal.Decimal
	Data     []byte
	Gas      uint64
	GasPrice decimal.Decimal
}

// submit runs the whole life of a transaction and returns its hash once it
// is mined successfully.
//
// Estimation failures wrap ErrGasEstimation; signing, broadcast, receipt
// timeout and revert wrap ErrSubmission.
func submit(ctx context.Context, chain Chain, req txRequest) (string, error) {
	from := req.From.Address

	nonce, err := chain.TransactionCount(ctx, from)
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %v", ErrSubmission, err)
	}

	if req.Gas == 0 {
		req.Gas, err = chain.EstimateGas(ctx, Message{From: from, To: req.To, Value: req.Value, Data: req.Data})
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrGasEstimation, err)
		}
	}

	if req.GasPrice.IsZero() {
		req.GasPrice, err = chain.GasPrice(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: gas price: %v", ErrGasEstimation, err)
		}
	}

	logger.Debug(ctx, "signing transaction", "from", from.Hex(), "to", req.To.Hex(), "nonce", nonce, "gas", req.Gas)
	signed, err := chain.SignTransaction(Transaction{
		Nonce:    nonce,
		To:       req.To,
		Value:    req.Value,
		Gas:      req.Gas,
		GasPrice: req.GasPrice,
		Data:     req.Data,
	}, req.From.Key)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %v", ErrSubmission, err)
	}

	hash, err := chain.SendRawTransaction(ctx, signed.Raw)
	if err != nil {
		return "", fmt.Errorf("%w: send: %v", ErrSubmission, err)
	}

	logger.Info(ctx, "transaction sent, waiting for confirmation", "from", from.Hex(), "tx", hash)
	receipt, err := chain.WaitForReceipt(ctx, hash)
	if err != nil {
		return hash, fmt.Errorf("%w: receipt for %s: %v", ErrSubmission, hash, err)
	}

	if !receipt.Succeeded() {
		return hash, fmt.Errorf("%w: transaction %s reverted in block %d", ErrSubmission, hash, receipt.BlockNumber)
	}

	return hash, nil
}
