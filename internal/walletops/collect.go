package walletops

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/gabapcia/walletsweep/internal/batch"
	"github.com/gabapcia/walletsweep/internal/credential"
	"github.com/gabapcia/walletsweep/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ReasonNoTokens is the skip reason of an owner holding no token of the collection.
const ReasonNoTokens = "no tokens held"

// errNoTokenIDs is returned when balanceOf reports tokens that cannot be enumerated.
var errNoTokenIDs = errors.New("token ids could not be enumerated")

// Collector moves every token of an ERC-721 collection held by each identifier
// to a single destination. Each token is approved for the destination and then
// transferred with transferFrom, one confirmed transaction at a time.
type Collector struct {
	chain       Chain
	collection  Collection
	destination common.Address
	stepDelay   time.Duration
	sleep       batch.SleepFunc
}

var _ batch.Worker = (*Collector)(nil)

// CollectorOption customizes a Collector.
type CollectorOption func(*Collector)

// WithStepDelay sets the pause between two consecutive transactions of the same owner.
//
// Default: 100 milliseconds.
func WithStepDelay(d time.Duration) CollectorOption {
	return func(c *Collector) {
		c.stepDelay = d
	}
}

// WithStepSleep replaces the function used to wait between steps.
func WithStepSleep(fn batch.SleepFunc) CollectorOption {
	return func(c *Collector) {
		c.sleep = fn
	}
}

// NewCollector creates a Collector sending tokens of collection to destination.
func NewCollector(chain Chain, collection Collection, destination common.Address, opts ...CollectorOption) *Collector {
	c := &Collector{
		chain:       chain,
		collection:  collection,
		destination: destination,
		stepDelay:   100 * time.Millisecond,
		sleep:       batch.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Process implements batch.Worker.
//
// A failure on a token only abandons that token. The job succeeds when at
// least one token was moved and fails when none was.
func (w *Collector) Process(ctx context.Context, job batch.Job) (batch.Result, error) {
	res := batch.NewResult(job)

	cred, err := credential.Resolve(job.Identifier)
	if err != nil {
		return res, err
	}
	res.Address = cred.Address.Hex()

	if cred.Address == w.destination {
		return res.Skip(ReasonSelfTransfer), nil
	}

	held, err := w.collection.BalanceOf(ctx, cred.Address)
	if err != nil {
		return res, fmt.Errorf("balanceOf: %w", err)
	}
	if held == 0 {
		return res.Skip(ReasonNoTokens), nil
	}

	ids, err := w.collection.TokensOfOwner(ctx, cred.Address)
	if err != nil {
		return res, fmt.Errorf("tokensOfOwner: %w", err)
	}
	if len(ids) == 0 {
		return res, fmt.Errorf("%w: balanceOf reports %d", errNoTokenIDs, held)
	}
	logger.Info(ctx, "tokens found", "address", res.Address, "count", len(ids))

	var (
		moved int64
		errs  []error
	)
	for i, id := range ids {
		if i > 0 {
			if err := w.sleep(ctx, w.stepDelay); err != nil {
				errs = append(errs, err)
				break
			}
		}

		hashes, err := w.moveToken(ctx, cred, id)
		res.TxHashes = append(res.TxHashes, hashes...)
		if err != nil {
			logger.Error(ctx, "token transfer failed", "address", res.Address, "token", id.String(), "error", err)
			errs = append(errs, fmt.Errorf("token #%s: %w", id, err))
			continue
		}

		moved++
		logger.Info(ctx, "token transferred", "address", res.Address, "token", id.String(), "to", w.destination.Hex())
	}

	res = res.WithAmount(decimal.NewFromInt(moved))
	if moved == 0 {
		return res, errors.Join(errs...)
	}
	if len(errs) > 0 {
		res.Reason = errors.Join(errs...).Error()
	}

	return res, nil
}

// moveToken approves the destination for id and then transfers id to it. It
// returns the hashes of the transactions that were broadcast.
func (w *Collector) moveToken(ctx context.Context, cred credential.Credential, id *big.Int) ([]string, error) {
	var hashes []string

	approve, err := w.collection.PackApprove(w.destination, id)
	if err != nil {
		return hashes, fmt.Errorf("approve: %w", err)
	}

	hash, err := submit(ctx, w.chain, txRequest{From: cred, To: w.collection.Address(), Data: approve})
	if hash != "" {
		hashes = append(hashes, hash)
	}
	if err != nil {
		return hashes, fmt.Errorf("approve: %w", err)
	}

	if err := w.sleep(ctx, w.stepDelay); err != nil {
		return hashes, err
	}

	transfer, err := w.collection.PackTransferFrom(cred.Address, w.destination, id)
	if err != nil {
		return hashes, fmt.Errorf("transferFrom: %w", err)
	}

	hash, err = submit(ctx, w.chain, txRequest{From: cred, To: w.collection.Address(), Data: transfer})
	if hash != "" {
		hashes = append(hashes, hash)
	}
	if err != nil {
		return hashes, fmt.Errorf("transferFrom: %w", err)
	}

	return hashes, nil
}
