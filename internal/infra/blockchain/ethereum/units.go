package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// nativeDecimals is the number of decimals of the native coin (1 ether = 1e18 wei).
const nativeDecimals = 18

// toWei converts native units to wei, truncating digits below one wei.
func toWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(nativeDecimals).BigInt()
}

// fromWei converts wei to native units without loss.
func fromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei, -nativeDecimals)
}
