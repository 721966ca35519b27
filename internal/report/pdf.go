package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// pdfColumns are the table columns of the PDF report and their widths in mm.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Row", 12},
	{"Address", 88},
	{"Role", 20},
	{"Amount", 30},
	{"Status", 22},
	{"Reason", 105},
}

// WritePDF renders the report as a landscape A4 document.
func (r *Reporter) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.SetTitle(r.title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, r.title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at: %s", r.now().UTC().Format("2006-01-02 15:04:05 MST")), "", 1, "L", false, 0, "")

	s := r.Summary()
	pdf.CellFormat(0, 6, fmt.Sprintf("Processed: %d | succeeded: %d | skipped: %d | failed: %d | transactions: %d",
		s.Total, s.Succeeded, s.Skipped, s.Failed, s.TxCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total amount: %s %s", s.Amount.StringFixed(r.precision), r.unit), "", 1, "L", false, 0, "")
	for _, rt := range s.ByRole {
		pdf.CellFormat(0, 6, fmt.Sprintf("  %s: %d wallets, %s %s", rt.Role, rt.Count, rt.Amount.StringFixed(r.precision), r.unit), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(30, 30, 30)
	for _, res := range r.results {
		cells := []string{
			fmt.Sprint(res.Row),
			res.Address,
			string(res.Role),
			r.formatAmount(res.Amount),
			string(res.Status),
			truncate(oneLine(res.Reason), 70),
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return err
	}

	return pdf.Output(w)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n-3]) + "..."
}
