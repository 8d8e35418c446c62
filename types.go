package payproc

import "strconv"

// ClientID is a globally unique client identifier.
type ClientID uint16

func (c ClientID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// TransactionID is a globally unique transaction identifier. It is
// unique across the whole input stream, not per client, and is used to
// correlate a deposit or withdrawal with later dispute activity.
type TransactionID uint32

func (t TransactionID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
