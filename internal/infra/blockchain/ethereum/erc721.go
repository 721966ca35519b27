package ethereum

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/walletsweep/internal/pkg/logger"
	"github.com/gabapcia/walletsweep/internal/walletops"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// erc721ABI covers the ERC-721 calls used to move tokens plus the
// ERC721Enumerable and ERC721AQueryable enumeration helpers.
//
//go:embed erc721.abi.json
var erc721ABI []byte

// ErrMissingMethod is returned when a custom ABI lacks a method the collection needs.
var ErrMissingMethod = errors.New("abi method missing")

// requiredMethods must be present in any ABI given to NewCollection.
var requiredMethods = []string{"balanceOf", "approve", "transferFrom"}

// collection implements walletops.Collection for an ERC-721 contract.
type collection struct {
	client  *client
	address common.Address
	abi     abi.ABI
}

// Ensure collection implements the walletops.Collection interface at compile time.
var _ walletops.Collection = (*collection)(nil)

// NewCollection binds the ERC-721 contract at address. A nil abiJSON selects
// the built-in ABI.
func NewCollection(c *client, address common.Address, abiJSON []byte) (*collection, error) {
	if abiJSON == nil {
		abiJSON = erc721ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	for _, name := range requiredMethods {
		if _, ok := parsed.Methods[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingMethod, name)
		}
	}

	return &collection{
		client:  c,
		address: address,
		abi:     parsed,
	}, nil
}

// Collection binds the ERC-721 contract at address through c. See NewCollection.
func (c *client) Collection(address common.Address, abiJSON []byte) (walletops.Collection, error) {
	col, err := NewCollection(c, address, abiJSON)
	if err != nil {
		return nil, err
	}

	return col, nil
}

// Address implements walletops.Collection.
func (c *collection) Address() common.Address {
	return c.address
}

// call runs a read-only contract method at the latest block and unpacks its single output.
func (c *collection) call(ctx context.Context, method string, args ...any) (any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: pack: %w", method, err)
	}

	data, err := c.client.conn.Fetch(ctx, "eth_call", callArgs{To: c.address, Data: input}, "latest")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	var output hexutil.Bytes
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	values, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%s: unpack: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s: expected one output, got %d", method, len(values))
	}

	return values[0], nil
}

// callUint calls a method returning a single uint256.
func (c *collection) callUint(ctx context.Context, method string, args ...any) (*big.Int, error) {
	v, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	n, ok := v.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", method, v)
	}

	return n, nil
}

// BalanceOf implements walletops.Collection.
func (c *collection) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	n, err := c.callUint(ctx, "balanceOf", owner)
	if err != nil {
		return 0, err
	}

	return n.Uint64(), nil
}

// TokensOfOwner implements walletops.Collection.
//
// It prefers the single tokensOfOwner call and falls back to walking
// tokenOfOwnerByIndex when the contract (or the ABI) does not provide it.
func (c *collection) TokensOfOwner(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	if _, ok := c.abi.Methods["tokensOfOwner"]; ok {
		v, err := c.call(ctx, "tokensOfOwner", owner)
		if err == nil {
			if ids, ok := v.([]*big.Int); ok {
				return ids, nil
			}
		}
		logger.Debug(ctx, "tokensOfOwner unavailable, walking tokenOfOwnerByIndex", "contract", c.address.Hex(), "error", err)
	}

	return c.tokensByIndex(ctx, owner)
}

// tokensByIndex enumerates the tokens of owner through ERC721Enumerable.
func (c *collection) tokensByIndex(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	if _, ok := c.abi.Methods["tokenOfOwnerByIndex"]; !ok {
		return nil, fmt.Errorf("%w: tokensOfOwner or tokenOfOwnerByIndex", ErrMissingMethod)
	}

	held, err := c.BalanceOf(ctx, owner)
	if err != nil {
		return nil, err
	}

	ids := make([]*big.Int, 0, held)
	for i := range held {
		id, err := c.callUint(ctx, "tokenOfOwnerByIndex", owner, new(big.Int).SetUint64(i))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// PackApprove implements walletops.Collection.
func (c *collection) PackApprove(to common.Address, tokenID *big.Int) ([]byte, error) {
	return c.abi.Pack("approve", to, tokenID)
}

// PackTransferFrom implements walletops.Collection.
func (c *collection) PackTransferFrom(from, to common.Address, tokenID *big.Int) ([]byte, error) {
	return c.abi.Pack("transferFrom", from, to, tokenID)
}
