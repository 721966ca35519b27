package walletops

import (
	"context"
	"fmt"

	"github.com/gabapcia/walletsweep/internal/batch"
	"github.com/gabapcia/walletsweep/internal/credential"
)

// BalanceChecker reads the native balance of every identifier. It never
// changes chain state.
type BalanceChecker struct {
	chain Chain
}

var _ batch.Worker = (*BalanceChecker)(nil)

// NewBalanceChecker creates a BalanceChecker backed by chain.
func NewBalanceChecker(chain Chain) *BalanceChecker {
	return &BalanceChecker{
		chain: chain,
	}
}

// Process implements batch.Worker.
func (w *BalanceChecker) Process(ctx context.Context, job batch.Job) (batch.Result, error) {
	res := batch.NewResult(job)

	cred, err := credential.Resolve(job.Identifier)
	if err != nil {
		return res, err
	}
	res.Address = cred.Address.Hex()

	balance, err := w.chain.Balance(ctx, cred.Address)
	if err != nil {
		return res, fmt.Errorf("balance: %w", err)
	}

	return res.WithAmount(balance), nil
}
