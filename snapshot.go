package payproc

import "slices"

// AccountSnapshot is the final, serializable view of an account at
// the end of a processing run.
type AccountSnapshot struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// Snapshot returns the current state of the account.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Client:    a.client,
		Available: a.available,
		Held:      a.held,
		Total:     a.total,
		Locked:    a.locked,
	}
}

// Snapshots converts accounts into snapshots sorted by client id.
// The processor itself guarantees no order; sorting here keeps
// serialized output stable.
func Snapshots(accounts []*Account) []AccountSnapshot {
	snapshots := make([]AccountSnapshot, 0, len(accounts))
	for _, account := range accounts {
		snapshots = append(snapshots, account.Snapshot())
	}
	slices.SortFunc(snapshots, func(a, b AccountSnapshot) int {
		return int(a.Client) - int(b.Client)
	})
	return snapshots
}
