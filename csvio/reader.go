// Package csvio reads account activity records from CSV streams and
// writes final account snapshots back out as CSV.
//
// The input format is a headed CSV with columns type, client, tx and
// amount. Deposit and withdrawal rows carry an amount; dispute,
// resolve and chargeback rows do not, so rows may have fewer fields
// than the header. Whitespace around fields is ignored.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ledgerkit/payproc"
)

// ErrInvalidFormat reports input that is not a headed activity CSV.
var ErrInvalidFormat = errors.New("invalid format")

// Reader decodes account activity records from a CSV stream. Create
// one with NewReader, then range over Activities.
type Reader struct {
	csv *csv.Reader

	// column indexes resolved from the header line.
	kindCol, clientCol, txCol, amountCol int

	line int // current record line, for diagnostics
}

// NewReader wraps r into an activity reader. It consumes the header
// line immediately and fails if the header is missing or does not
// name the required columns.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // records have variable field counts
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header line", ErrInvalidFormat)
	}

	reader := &Reader{csv: cr, kindCol: -1, clientCol: -1, txCol: -1, amountCol: -1, line: 1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "type":
			reader.kindCol = i
		case "client":
			reader.clientCol = i
		case "tx":
			reader.txCol = i
		case "amount":
			reader.amountCol = i
		}
	}
	if reader.kindCol < 0 || reader.clientCol < 0 || reader.txCol < 0 {
		return nil, fmt.Errorf("%w: header must name type, client and tx columns", ErrInvalidFormat)
	}
	return reader, nil
}

// Activities returns the decoded activity sequence. Records that
// cannot be decoded yield a non-nil error in their place; iteration
// continues with the next record either way.
func (r *Reader) Activities() iter.Seq2[payproc.AccountActivity, error] {
	return func(yield func(payproc.AccountActivity, error) bool) {
		for {
			record, err := r.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			r.line++
			if err != nil {
				if !yield(nil, fmt.Errorf("line %d: %w", r.line, err)) {
					return
				}
				continue
			}
			activity, err := r.decode(record)
			if err != nil {
				err = fmt.Errorf("line %d: %w", r.line, err)
			}
			if !yield(activity, err) {
				return
			}
		}
	}
}

// field returns the trimmed field at column i, or "" when the record
// is shorter than the header.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *Reader) decode(record []string) (payproc.AccountActivity, error) {
	kind := payproc.Kind(field(record, r.kindCol))

	client, err := strconv.ParseUint(field(record, r.clientCol), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: bad client id: %v", ErrInvalidFormat, err)
	}
	tx, err := strconv.ParseUint(field(record, r.txCol), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: bad transaction id: %v", ErrInvalidFormat, err)
	}
	clientID := payproc.ClientID(client)
	txID := payproc.TransactionID(tx)

	switch kind {
	case payproc.KindDeposit, payproc.KindWithdrawal:
		raw := field(record, r.amountCol)
		if raw == "" {
			return nil, fmt.Errorf("%w: %s record without amount", ErrInvalidFormat, kind)
		}
		amount, err := payproc.ParseAmount(raw)
		if err != nil {
			return nil, err
		}
		if kind == payproc.KindDeposit {
			return payproc.NewDeposit(txID, clientID, amount), nil
		}
		return payproc.NewWithdrawal(txID, clientID, amount), nil
	case payproc.KindDispute:
		return payproc.NewDispute(txID, clientID), nil
	case payproc.KindResolve:
		return payproc.NewResolve(txID, clientID), nil
	case payproc.KindChargeback:
		return payproc.NewChargeback(txID, clientID), nil
	default:
		return nil, fmt.Errorf("%w: unknown activity type %q", ErrInvalidFormat, string(kind))
	}
}
