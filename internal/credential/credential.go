// Package credential turns the private keys listed in an input file into
// signing keys and their public EVM addresses.
package credential

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidKey is returned when an identifier is not a valid secp256k1 private key.
var ErrInvalidKey = errors.New("invalid private key")

// Credential is a parsed private key together with the address it controls.
type Credential struct {
	Key     *ecdsa.PrivateKey
	Address common.Address
}

// Normalize trims surrounding whitespace and an optional 0x/0X prefix.
func Normalize(identifier string) string {
	s := strings.TrimSpace(identifier)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	return s
}

// IsKeyShaped reports whether s looks like a hex private key, without checking
// that it lies on the curve. It is used to tell header cells from data cells.
func IsKeyShaped(s string) bool {
	s = Normalize(s)
	if len(s) != 64 {
		return false
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}

// Resolve parses identifier as a hex-encoded private key and derives its address.
func Resolve(identifier string) (Credential, error) {
	key, err := crypto.HexToECDSA(Normalize(identifier))
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return Credential{
		Key:     key,
		Address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address derives the checksummed address of identifier.
func Address(identifier string) (string, error) {
	c, err := Resolve(identifier)
	if err != nil {
		return "", err
	}

	return c.Address.Hex(), nil
}
