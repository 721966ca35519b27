package walletops

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletsweep/internal/batch"
	"github.com/gabapcia/walletsweep/internal/credential"
	"github.com/gabapcia/walletsweep/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Skip reasons reported by Transferer.
const (
	ReasonZeroBalance       = "zero balance"
	ReasonInsufficientGas   = "insufficient funds for gas"
	ReasonSelfTransfer      = "source is the destination"
	ReasonNothingToTransfer = "nothing to transfer"
)

// errNoDestination is returned when a job has neither a counterparty nor a configured destination.
var errNoDestination = errors.New("no destination address")

// Transferer moves native coin out of every identifier.
//
// With an amount it sends exactly that amount (fixed mode). Without one it
// sends the whole balance minus the transaction fee (sweep mode).
type Transferer struct {
	chain       Chain
	destination common.Address
	amount      decimal.NullDecimal
}

var _ batch.Worker = (*Transferer)(nil)

// TransferOption customizes a Transferer.
type TransferOption func(*Transferer)

// WithDestination sets the address funds are sent to when the job has no counterparty.
func WithDestination(addr common.Address) TransferOption {
	return func(t *Transferer) {
		t.destination = addr
	}
}

// WithAmount switches the Transferer to fixed mode.
func WithAmount(amount decimal.Decimal) TransferOption {
	return func(t *Transferer) {
		t.amount = decimal.NewNullDecimal(amount)
	}
}

// NewTransferer creates a Transferer backed by chain. It sweeps unless WithAmount is given.
func NewTransferer(chain Chain, opts ...TransferOption) *Transferer {
	t := &Transferer{
		chain: chain,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// destinationFor returns the counterparty address in pair mode and the
// configured destination otherwise.
func (w *Transferer) destinationFor(job batch.Job) (common.Address, error) {
	if job.Counterparty != "" {
		c, err := credential.Resolve(job.Counterparty)
		if err != nil {
			return common.Address{}, fmt.Errorf("receiver: %w", err)
		}
		return c.Address, nil
	}

	if w.destination == (common.Address{}) {
		return common.Address{}, errNoDestination
	}

	return w.destination, nil
}

// Process implements batch.Worker.
func (w *Transferer) Process(ctx context.Context, job batch.Job) (batch.Result, error) {
	res := batch.NewResult(job)

	cred, err := credential.Resolve(job.Identifier)
	if err != nil {
		return res, err
	}
	res.Address = cred.Address.Hex()

	to, err := w.destinationFor(job)
	if err != nil {
		return res, err
	}

	if to == cred.Address {
		return res.Skip(ReasonSelfTransfer), nil
	}

	balance, err := w.chain.Balance(ctx, cred.Address)
	if err != nil {
		return res, fmt.Errorf("balance: %w", err)
	}
	logger.Info(ctx, "balance", "address", res.Address, "balance", balance.String())

	req := txRequest{From: cred, To: to}
	if w.amount.Valid {
		if !w.amount.Decimal.IsPositive() {
			return res.Skip(ReasonNothingToTransfer), nil
		}

		if balance.LessThan(w.amount.Decimal) {
			return res, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, w.amount.Decimal, balance)
		}
		req.Value = w.amount.Decimal
	} else {
		var skip string
		req, skip, err = w.sweepRequest(ctx, req, balance)
		if err != nil {
			return res, err
		}
		if skip != "" {
			return res.Skip(skip), nil
		}
	}

	hash, err := submit(ctx, w.chain, req)
	if hash != "" {
		res.TxHashes = []string{hash}
	}
	if err != nil {
		return res, err
	}

	logger.Info(ctx, "transfer confirmed", "from", res.Address, "to", to.Hex(), "amount", req.Value.String(), "tx", hash)
	return res.WithAmount(req.Value), nil
}

// sweepRequest fills req with the whole balance minus the fee of the
// transfer itself. A non-empty skip reason means there is nothing worth sending.
func (w *Transferer) sweepRequest(ctx context.Context, req txRequest, balance decimal.Decimal) (txRequest, string, error) {
	if !balance.IsPositive() {
		return req, ReasonZeroBalance, nil
	}

	gas, err := w.chain.EstimateGas(ctx, Message{From: req.From.Address, To: req.To, Value: balance})
	if err != nil {
		return req, "", fmt.Errorf("%w: %v", ErrGasEstimation, err)
	}

	gasPrice, err := w.chain.GasPrice(ctx)
	if err != nil {
		return req, "", fmt.Errorf("%w: gas price: %v", ErrGasEstimation, err)
	}

	fee := gasPrice.Mul(decimal.NewFromInt(int64(gas)))
	sendable := balance.Sub(fee)
	if !sendable.IsPositive() {
		return req, ReasonInsufficientGas, nil
	}

	req.Value = sendable
	req.Gas = gas
	req.GasPrice = gasPrice
	return req, "", nil
}
