package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable prints one line per result followed by the totals.
func (r *Reporter) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ROW\tADDRESS\tROLE\tAMOUNT\tSTATUS\tREASON")
	for _, res := range r.results {
		address := res.Address
		if address == "" {
			address = "-"
		}

		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			res.Row,
			address,
			res.Role,
			r.formatAmount(res.Amount),
			res.Status,
			oneLine(res.Reason),
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary()
	fmt.Fprintln(w, strings.Repeat("=", 100))
	for _, rt := range s.ByRole {
		fmt.Fprintf(w, "%-9s %4d wallets  %s %s\n", rt.Role, rt.Count, rt.Amount.StringFixed(r.precision), r.unit)
	}
	fmt.Fprintf(w, "Total amount: %s %s\n", s.Amount.StringFixed(r.precision), r.unit)
	_, err := fmt.Fprintf(w, "Processed: %d  succeeded: %d  skipped: %d  failed: %d  transactions: %d\n",
		s.Total, s.Succeeded, s.Skipped, s.Failed, s.TxCount)

	return err
}

// oneLine collapses multi-line reasons (joined errors) so they fit a table cell.
func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "; ")
}
