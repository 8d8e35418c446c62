package cmd

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/ledgerkit/payproc"
	"github.com/ledgerkit/payproc/csvio"
	"github.com/ledgerkit/payproc/jsonio"
)

// openActivities opens an activity file and returns its decoded
// activity sequence, picking the adapter from the file extension:
// .jsonl and .ndjson are read as JSONL, everything else as CSV.
// The caller must call close when done with the sequence.
func openActivities(path string) (activities iter.Seq2[payproc.AccountActivity, error], closer func() error, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	switch filepath.Ext(path) {
	case ".jsonl", ".ndjson":
		return jsonio.NewReader(file).Activities(), file.Close, nil
	default:
		reader, err := csvio.NewReader(file)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		return reader.Activities(), file.Close, nil
	}
}
