package csvio

import (
	"io"

	"github.com/ledgerkit/payproc"
)

// Process reads an activity CSV from r, folds it into final account
// snapshots and writes them to w, sorted by client id. Individual
// record failures are reported to obs and skipped; only input-level
// failures (a missing header, a broken writer) are returned.
func Process(r io.Reader, w io.Writer, obs payproc.Observer) error {
	reader, err := NewReader(r)
	if err != nil {
		return err
	}
	accounts := payproc.NewProcessor(obs).Fold(reader.Activities())
	return NewWriter(w).Write(payproc.Snapshots(accounts))
}
