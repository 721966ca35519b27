package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Quantity is an EVM JSON-RPC hex-encoded unsigned integer (e.g. "0x1a").
//
// Balances and gas prices routinely exceed 64 bits, so the value is decoded
// into a big.Int. Nonces and gas limits fit in a uint64 and have a shortcut.
type Quantity string

// QuantityFromUint64 encodes n as a Quantity.
func QuantityFromUint64(n uint64) Quantity {
	return Quantity(fmt.Sprintf("0x%x", n))
}

// QuantityFromBig encodes a non-negative n as a Quantity. A nil n encodes zero.
func QuantityFromBig(n *big.Int) Quantity {
	if n == nil {
		return "0x0"
	}

	return Quantity("0x" + n.Text(16))
}

// parseQuantity validates a "0x"-prefixed hex string and returns its value.
func parseQuantity(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	digits := s[2:]
	if digits == "" {
		return new(big.Int), nil
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return n, nil
}

// MarshalJSON encodes the Quantity as a JSON string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(q))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseQuantity(s); err != nil {
		return err
	}

	*q = Quantity(s)
	return nil
}

// Big returns the decoded value. Invalid input decodes as zero.
func (q Quantity) Big() *big.Int {
	n, err := parseQuantity(string(q))
	if err != nil {
		return new(big.Int)
	}

	return n
}

// Uint64 returns the decoded value truncated to 64 bits. Invalid input decodes as zero.
func (q Quantity) Uint64() uint64 {
	return q.Big().Uint64()
}
