// Package jsonio reads account activity records from JSONL streams:
// one JSON object per line, identified by its "type" field, e.g.
//
//	{"type":"deposit","client":1,"tx":1,"amount":100.0}
//	{"type":"dispute","client":1,"tx":1}
//
// It is the JSONL counterpart of the csvio package.
package jsonio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/ledgerkit/payproc"
)

// Reader decodes account activity records from a JSONL stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r into a JSONL activity reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// transactionLine carries all possible fields; dispute records leave
// amount unset. Amount is a pointer so that an absent field can be
// told apart from an explicit zero.
type transactionLine struct {
	Type   payproc.Kind          `json:"type"`
	Client payproc.ClientID      `json:"client"`
	Tx     payproc.TransactionID `json:"tx"`
	Amount *payproc.Amount       `json:"amount"`
}

// Activities returns the decoded activity sequence. Blank lines are
// skipped; lines that cannot be decoded yield a non-nil error in
// their place and iteration continues.
func (r *Reader) Activities() iter.Seq2[payproc.AccountActivity, error] {
	return func(yield func(payproc.AccountActivity, error) bool) {
		for r.scanner.Scan() {
			r.line++
			lineBytes := r.scanner.Bytes()
			if len(lineBytes) == 0 {
				continue
			}
			activity, err := decode(lineBytes)
			if err != nil {
				err = fmt.Errorf("line %d: %w", r.line, err)
			}
			if !yield(activity, err) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			yield(nil, err)
		}
	}
}

func decode(lineBytes []byte) (payproc.AccountActivity, error) {
	var temp transactionLine
	if err := json.Unmarshal(lineBytes, &temp); err != nil {
		return nil, fmt.Errorf("could not decode activity line %q: %w", string(lineBytes), err)
	}

	switch temp.Type {
	case payproc.KindDeposit, payproc.KindWithdrawal:
		if temp.Amount == nil {
			return nil, fmt.Errorf("%s record without amount in line %q", temp.Type, string(lineBytes))
		}
		if temp.Type == payproc.KindDeposit {
			return payproc.NewDeposit(temp.Tx, temp.Client, *temp.Amount), nil
		}
		return payproc.NewWithdrawal(temp.Tx, temp.Client, *temp.Amount), nil
	case payproc.KindDispute:
		return payproc.NewDispute(temp.Tx, temp.Client), nil
	case payproc.KindResolve:
		return payproc.NewResolve(temp.Tx, temp.Client), nil
	case payproc.KindChargeback:
		return payproc.NewChargeback(temp.Tx, temp.Client), nil
	default:
		return nil, fmt.Errorf("unknown activity type %q in line %q", string(temp.Type), string(lineBytes))
	}
}
