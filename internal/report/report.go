// Package report gathers the results of a batch run and renders them as a
// console table, a YAML document or a PDF file.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabapcia/walletsweep/internal/batch"
	"github.com/gabapcia/walletsweep/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned by Export for an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// RoleTotal aggregates the results of one role.
type RoleTotal struct {
	Role   batch.Role
	Count  int
	Amount decimal.Decimal
}

// Summary holds the totals of a run.
type Summary struct {
	Total     int
	Succeeded int
	Skipped   int
	Failed    int
	Amount    decimal.Decimal // sum of the amounts of succeeded results
	TxCount   int
	ByRole    []RoleTotal // in order of first appearance
}

// Reporter accumulates results. It is not safe for concurrent use.
type Reporter struct {
	title     string
	unit      string
	precision int32
	startedAt time.Time
	now       func() time.Time
	results   []batch.Result
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithUnit sets the label printed next to amounts.
//
// Default: "ETH".
func WithUnit(unit string) Option {
	return func(r *Reporter) {
		r.unit = unit
	}
}

// WithPrecision sets the number of decimals amounts are rounded to when rendered.
//
// Default: 6.
func WithPrecision(p int32) Option {
	return func(r *Reporter) {
		r.precision = p
	}
}

// withClock replaces time.Now in tests.
func withClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

// New creates a Reporter for a run named title.
func New(title string, opts ...Option) *Reporter {
	r := &Reporter{
		title:     title,
		unit:      "ETH",
		precision: 6,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.startedAt = r.now()
	return r
}

// Add records results in order.
func (r *Reporter) Add(results ...batch.Result) {
	r.results = append(r.results, results...)
}

// Results returns the recorded results.
func (r *Reporter) Results() []batch.Result {
	return r.results
}

// Summary computes the totals of the recorded results.
func (r *Reporter) Summary() Summary {
	var (
		s      = Summary{Amount: decimal.Zero}
		byRole = types.NewOrderedDefaultMap[batch.Role](func() RoleTotal {
			return RoleTotal{Amount: decimal.Zero}
		})
	)

	for _, res := range r.results {
		s.Total++
		s.TxCount += len(res.TxHashes)

		switch res.Status {
		case batch.StatusSucceeded:
			s.Succeeded++
		case batch.StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
		}

		byRole.Update(res.Role, func(rt RoleTotal) RoleTotal {
			rt.Role = res.Role
			rt.Count++
			if res.Status == batch.StatusSucceeded && res.Amount.Valid {
				rt.Amount = rt.Amount.Add(res.Amount.Decimal)
			}
			return rt
		})

		if res.Status == batch.StatusSucceeded && res.Amount.Valid {
			s.Amount = s.Amount.Add(res.Amount.Decimal)
		}
	}

	for _, role := range byRole.Keys() {
		s.ByRole = append(s.ByRole, byRole.Get(role))
	}

	return s
}

// formatAmount renders an amount with the configured precision, or "-" when absent.
func (r *Reporter) formatAmount(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "-"
	}

	return amount.Decimal.StringFixed(r.precision)
}

// Export writes the report to path. The format follows the extension:
// .yaml and .yml produce YAML, .pdf produces a PDF document.
func (r *Reporter) Export(path string) (err error) {
	var write func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		write = func(f *os.File) error { return r.WriteYAML(f) }
	case ".pdf":
		write = func(f *os.File) error { return r.WritePDF(f) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
