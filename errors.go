package payproc

import "errors"

// The three error kinds an account can report. All of them are
// non-fatal: the processor logs the failure and moves on to the next
// record. Call sites wrap these with fmt.Errorf("%w: ...") so that
// errors.Is can classify a failure while the message keeps the detail.
var (
	// ErrInvalidTransaction indicates that the payload of a
	// transaction is out of domain, e.g. a negative amount.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrFailedTransaction indicates that a well-formed transaction
	// could not be executed: insufficient funds, a duplicate
	// transaction id, or a locked account.
	ErrFailedTransaction = errors.New("failed transaction")

	// ErrFailedDisputeCase indicates a dispute-protocol violation,
	// i.e. disputing a transaction that is already under dispute.
	ErrFailedDisputeCase = errors.New("failed dispute case")
)
