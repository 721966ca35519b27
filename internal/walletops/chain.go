// Package walletops implements the per-wallet units of work of a batch run:
// reading a balance, transferring native coin and collecting NFTs.
//
// Every worker talks to the network through the Chain (and Collection) ports
// defined here; amounts cross those ports as decimal.Decimal values in whole
// native-coin units.
package walletops

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Message describes a call used for gas estimation.
type Message struct {
	From  common.Address
	To    common.Address
	Value decimal.Decimal
	Data  []byte
}

// Transaction holds the fields of an unsigned transaction.
type Transaction struct {
	Nonce    uint64
	To       common.Address
	Value    decimal.Decimal
	Gas      uint64
	GasPrice decimal.Decimal
	Data     []byte
}

// SignedTransaction is a transaction ready to be broadcast.
type SignedTransaction struct {
	Raw  []byte
	Hash string
}

// Receipt is the mined outcome of a transaction.
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64 // 1 on success, 0 when reverted
}

// Succeeded reports whether the transaction executed without reverting.
func (r Receipt) Succeeded() bool {
	return r.Status == 1
}

// Chain is the capability surface of an EVM node used by the workers.
type Chain interface {
	// Balance returns the native balance of address.
	Balance(ctx context.Context, address common.Address) (decimal.Decimal, error)

	// TransactionCount returns the next nonce of address, pending transactions included.
	TransactionCount(ctx context.Context, address common.Address) (uint64, error)

	// EstimateGas returns the gas limit needed to execute msg.
	EstimateGas(ctx context.Context, msg Message) (uint64, error)

	// GasPrice returns the current gas price in native units per gas.
	GasPrice(ctx context.Context) (decimal.Decimal, error)

	// SignTransaction signs tx for the configured chain.
	SignTransaction(tx Transaction, key *ecdsa.PrivateKey) (SignedTransaction, error)

	// SendRawTransaction broadcasts a signed transaction and returns its hash.
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)

	// WaitForReceipt blocks until the transaction is mined or the wait times out.
	WaitForReceipt(ctx context.Context, txHash string) (Receipt, error)
}

// Collection is an ERC-721 contract.
type Collection interface {
	// Address returns the contract address.
	Address() common.Address

	// BalanceOf returns how many tokens owner holds.
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)

	// TokensOfOwner lists the token ids held by owner.
	TokensOfOwner(ctx context.Context, owner common.Address) ([]*big.Int, error)

	// PackApprove encodes approve(to, tokenID).
	PackApprove(to common.Address, tokenID *big.Int) ([]byte, error)

	// PackTransferFrom encodes transferFrom(from, to, tokenID).
	PackTransferFrom(from, to common.Address, tokenID *big.Int) ([]byte, error)
}
