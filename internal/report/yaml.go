package report

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

type (
	// resultDocument is the YAML form of a batch.Result. Private keys are never written.
	resultDocument struct {
		Row      int      `yaml:"row"`
		Address  string   `yaml:"address,omitempty"`
		Role     string   `yaml:"role"`
		Amount   string   `yaml:"amount,omitempty"`
		Status   string   `yaml:"status"`
		Reason   string   `yaml:"reason,omitempty"`
		TxHashes []string `yaml:"tx_hashes,omitempty"`
	}

	roleDocument struct {
		Role   string `yaml:"role"`
		Count  int    `yaml:"count"`
		Amount string `yaml:"amount"`
	}

	summaryDocument struct {
		Total     int            `yaml:"total"`
		Succeeded int            `yaml:"succeeded"`
		Skipped   int            `yaml:"skipped"`
		Failed    int            `yaml:"failed"`
		Amount    string         `yaml:"amount"`
		Unit      string         `yaml:"unit"`
		TxCount   int            `yaml:"transactions"`
		ByRole    []roleDocument `yaml:"by_role,omitempty"`
	}

	// document is the root of the YAML report.
	document struct {
		Title       string           `yaml:"title"`
		StartedAt   time.Time        `yaml:"started_at"`
		GeneratedAt time.Time        `yaml:"generated_at"`
		Summary     summaryDocument  `yaml:"summary"`
		Results     []resultDocument `yaml:"results"`
	}
)

// document builds the serializable form of the report.
func (r *Reporter) document() document {
	s := r.Summary()

	doc := document{
		Title:       r.title,
		StartedAt:   r.startedAt.UTC(),
		GeneratedAt: r.now().UTC(),
		Summary: summaryDocument{
			Total:     s.Total,
			Succeeded: s.Succeeded,
			Skipped:   s.Skipped,
			Failed:    s.Failed,
			Amount:    s.Amount.String(),
			Unit:      r.unit,
			TxCount:   s.TxCount,
		},
		Results: make([]resultDocument, 0, len(r.results)),
	}

	for _, rt := range s.ByRole {
		doc.Summary.ByRole = append(doc.Summary.ByRole, roleDocument{
			Role:   string(rt.Role),
			Count:  rt.Count,
			Amount: rt.Amount.String(),
		})
	}

	for _, res := range r.results {
		rd := resultDocument{
			Row:      res.Row,
			Address:  res.Address,
			Role:     string(res.Role),
			Status:   string(res.Status),
			Reason:   res.Reason,
			TxHashes: res.TxHashes,
		}
		if res.Amount.Valid {
			rd.Amount = res.Amount.Decimal.String()
		}
		doc.Results = append(doc.Results, rd)
	}

	return doc
}

// WriteYAML encodes the report as a YAML document.
func (r *Reporter) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r.document()); err != nil {
		return err
	}

	return enc.Close()
}
