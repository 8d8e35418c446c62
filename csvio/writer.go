package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ledgerkit/payproc"
)

// Writer serializes account snapshots as CSV with the fixed header
// client,available,held,total,locked. Numeric fields use the exact
// decimal representation of the internal balances.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a snapshot writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write serializes the snapshots, header first, and flushes.
func (w *Writer) Write(snapshots []payproc.AccountSnapshot) error {
	if err := w.csv.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, s := range snapshots {
		row := []string{
			s.Client.String(),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}
