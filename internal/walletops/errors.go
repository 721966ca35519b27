package walletops

import "errors"

var (
	// ErrInsufficientFunds is returned when a fixed transfer exceeds the sender balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrGasEstimation is returned when the node cannot estimate gas for a transaction.
	ErrGasEstimation = errors.New("gas estimation failed")

	// ErrSubmission is returned when a transaction cannot be signed, broadcast or
	// confirmed, including reverts and receipt timeouts.
	ErrSubmission = errors.New("transaction submission failed")
)
