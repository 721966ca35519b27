// Package batch reads wallet credentials from a two-column table and runs one
// unit of work per planned job, sequentially, isolating failures and pacing
// calls with a fixed delay.
package batch

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("input file not found")

	// ErrMalformedRow marks a row that does not carry both a sender and a receiver.
	ErrMalformedRow = errors.New("malformed row")
)

// Role tells which input column(s) an identifier came from.
type Role string

const (
	RoleSender   Role = "sender"
	RoleReceiver Role = "receiver"
	RoleBoth     Role = "both"
)

// merge returns the role of an identifier already seen as r and now seen as other.
func (r Role) merge(other Role) Role {
	if r == other {
		return r
	}

	return RoleBoth
}

// WalletRecord is one data row of the input file.
type WalletRecord struct {
	Sender   string // first column
	Receiver string // second column, empty when the row has a single cell
	Row      int    // 1-based data row number, header excluded
}

// Job is a single unit of work handed to a Worker.
type Job struct {
	Identifier   string // private key the work is performed with
	Counterparty string // receiver key in pair mode, empty otherwise
	Row          int    // data row the job was planned from
	Role         Role

	// Err, when set, marks a job that cannot run. The processor records it as
	// failed without calling the worker.
	Err error
}

// Status is the outcome of a job.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the immutable outcome of one job.
type Result struct {
	Identifier string
	Address    string // address derived from Identifier, empty if the key was invalid
	Role       Role
	Row        int
	Amount     decimal.NullDecimal // native amount read or moved, when relevant
	Status     Status
	Reason     string   // human readable explanation of a skip or failure
	TxHashes   []string // transactions confirmed on behalf of this job
	Err        error
}

// NewResult starts a Result for job. Workers fill in the rest.
func NewResult(job Job) Result {
	return Result{
		Identifier: job.Identifier,
		Role:       job.Role,
		Row:        job.Row,
		Status:     StatusSucceeded,
	}
}

// Skip returns a copy of r marked as skipped for reason.
func (r Result) Skip(reason string) Result {
	r.Status = StatusSkipped
	r.Reason = reason
	return r
}

// Fail returns a copy of r marked as failed with err.
func (r Result) Fail(err error) Result {
	r.Status = StatusFailed
	r.Err = err
	if err != nil {
		r.Reason = err.Error()
	}

	return r
}

// WithAmount returns a copy of r carrying amount.
func (r Result) WithAmount(amount decimal.Decimal) Result {
	r.Amount = decimal.NewNullDecimal(amount)
	return r
}
