package batch

import (
	"fmt"

	"github.com/gabapcia/walletsweep/internal/pkg/types"
)

// UniqueIdentifiers plans one job per distinct identifier, in order of first
// appearance, scanning the sender then the receiver column of every row from
// startRow on. An identifier found in both columns gets RoleBoth. Empty cells
// are ignored.
func UniqueIdentifiers(records []WalletRecord, startRow int) []Job {
	var (
		seen  = types.NewSet[string]()
		index = make(map[string]int)
		jobs  []Job
	)

	plan := func(identifier string, row int, role Role) {
		if identifier == "" {
			return
		}

		if !seen.Insert(identifier) {
			i := index[identifier]
			jobs[i].Role = jobs[i].Role.merge(role)
			return
		}

		index[identifier] = len(jobs)
		jobs = append(jobs, Job{Identifier: identifier, Row: row, Role: role})
	}

	for _, rec := range records {
		if rec.Row < startRow {
			continue
		}

		plan(rec.Sender, rec.Row, RoleSender)
		plan(rec.Receiver, rec.Row, RoleReceiver)
	}

	return jobs
}

// Pairs plans one job per row from startRow on, with the sender as identifier
// and the receiver as counterparty. Identifiers are not deduplicated. A row
// missing either cell yields a job carrying ErrMalformedRow.
func Pairs(records []WalletRecord, startRow int) []Job {
	jobs := make([]Job, 0, len(records))
	for _, rec := range records {
		if rec.Row < startRow {
			continue
		}

		job := Job{
			Identifier:   rec.Sender,
			Counterparty: rec.Receiver,
			Row:          rec.Row,
			Role:         RoleSender,
		}
		if rec.Sender == "" || rec.Receiver == "" {
			job.Err = fmt.Errorf("%w: row %d needs a sender and a receiver", ErrMalformedRow, rec.Row)
		}

		jobs = append(jobs, job)
	}

	return jobs
}
