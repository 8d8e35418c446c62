package payproc

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"testing"
)

// recordingObserver captures skipped records for assertions.
type recordingObserver struct {
	parseFailures []error
	rejected      []AccountActivity
	rejectedErrs  []error
}

func (o *recordingObserver) ParseFailure(err error) {
	o.parseFailures = append(o.parseFailures, err)
}

func (o *recordingObserver) ActivityRejected(activity AccountActivity, err error) {
	o.rejected = append(o.rejected, activity)
	o.rejectedErrs = append(o.rejectedErrs, err)
}

// seq turns a slice of (activity, error) elements into an input sequence.
type element struct {
	activity AccountActivity
	err      error
}

func seq(elements []element) iter.Seq2[AccountActivity, error] {
	return func(yield func(AccountActivity, error) bool) {
		for _, e := range elements {
			if !yield(e.activity, e.err) {
				return
			}
		}
	}
}

func activities(activities ...AccountActivity) iter.Seq2[AccountActivity, error] {
	elements := make([]element, 0, len(activities))
	for _, a := range activities {
		elements = append(elements, element{activity: a})
	}
	return seq(elements)
}

// byClient indexes folded accounts for assertions.
func byClient(accounts []*Account) map[ClientID]*Account {
	m := make(map[ClientID]*Account, len(accounts))
	for _, account := range accounts {
		m[account.ClientID()] = account
	}
	return m
}

func TestProcessor_FoldRoutesActivitiesByClient(t *testing.T) {
	accounts := NewProcessor(nil).Fold(activities(
		NewDeposit(1, 1, amt("100.0")),
		NewDeposit(2, 2, amt("20.0")),
		NewWithdrawal(3, 1, amt("50.0")),
	))

	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	m := byClient(accounts)
	checkBalances(t, m[1], "50.0", "0", "50.0")
	checkBalances(t, m[2], "20.0", "0", "20.0")
}

func TestProcessor_ParseFailuresAreSkippedAndReported(t *testing.T) {
	parseErr := fmt.Errorf("bad record")
	observer := &recordingObserver{}

	accounts := NewProcessor(observer).Fold(seq([]element{
		{activity: NewDeposit(1, 1, amt("100.0"))},
		{err: parseErr},
		{activity: NewWithdrawal(2, 1, amt("40.0"))},
	}))

	if len(observer.parseFailures) != 1 || !errors.Is(observer.parseFailures[0], parseErr) {
		t.Fatalf("expected the parse failure to be reported, got %v", observer.parseFailures)
	}
	// A parse failure never creates or touches an account.
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	checkBalances(t, accounts[0], "60.0", "0", "60.0")
}

func TestProcessor_RejectedActivitiesAreReportedAndSkipped(t *testing.T) {
	observer := &recordingObserver{}

	accounts := NewProcessor(observer).Fold(activities(
		NewDeposit(1, 1, amt("100.0")),
		NewWithdrawal(2, 1, amt("1000.0")), // insufficient funds
		NewDeposit(1, 1, amt("5.0")),       // duplicate id
		NewDeposit(3, 1, amt("1.0")),
	))

	if len(observer.rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %d", len(observer.rejected))
	}
	if got := observer.rejected[0].TransactionID(); got != 2 {
		t.Errorf("first rejection tx = %s, want 2", got)
	}
	if !errors.Is(observer.rejectedErrs[0], ErrFailedTransaction) {
		t.Errorf("expected ErrFailedTransaction, got %v", observer.rejectedErrs[0])
	}
	if got := observer.rejected[1].TransactionID(); got != 1 {
		t.Errorf("second rejection tx = %s, want 1", got)
	}
	checkBalances(t, accounts[0], "101.0", "0", "101.0")
}

func TestProcessor_AccountsWithoutSuccessfulTransactionAreReturned(t *testing.T) {
	// A client whose only activity was rejected still appears in the
	// output with zero balances.
	accounts := NewProcessor(nil).Fold(activities(
		NewWithdrawal(1, 7, amt("50.0")),
	))

	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].ClientID() != 7 {
		t.Errorf("client = %s, want 7", accounts[0].ClientID())
	}
	checkBalances(t, accounts[0], "0", "0", "0")
}

func TestProcessor_DisputeLifecycleAcrossClients(t *testing.T) {
	accounts := NewProcessor(nil).Fold(activities(
		NewDeposit(1, 1, amt("100.0")),
		NewWithdrawal(2, 1, amt("24.5")),
		NewDeposit(3, 2, amt("100.0")),
		NewDispute(2, 1),
		NewWithdrawal(4, 1, amt("24.5")),
		NewDispute(3, 2),
		NewResolve(2, 1),
		NewWithdrawal(5, 2, amt("1000.0")),
		NewChargeback(3, 2),
	))

	m := byClient(accounts)
	checkBalances(t, m[1], "51.0", "0", "51.0")
	if m[1].IsLocked() {
		t.Error("expected client 1 to stay unlocked")
	}
	checkBalances(t, m[2], "0", "0", "0")
	if !m[2].IsLocked() {
		t.Error("expected client 2 to be locked")
	}
}

func TestProcessor_FoldIsDeterministic(t *testing.T) {
	input := []AccountActivity{
		NewDeposit(1, 1, amt("100.0")),
		NewDispute(1, 1),
		NewDeposit(2, 2, amt("30.0")),
		NewResolve(1, 1),
		NewWithdrawal(3, 1, amt("60.0")),
	}

	first := Snapshots(NewProcessor(nil).Fold(activities(input...)))
	second := Snapshots(NewProcessor(nil).Fold(activities(input...)))

	if len(first) != len(second) {
		t.Fatalf("runs disagree on account count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Client != b.Client || a.Locked != b.Locked ||
			!a.Available.Equal(b.Available) || !a.Held.Equal(b.Held) || !a.Total.Equal(b.Total) {
			t.Errorf("replay diverged for client %s: %+v vs %+v", a.Client, a, b)
		}
	}
}

func TestSnapshots_SortedByClient(t *testing.T) {
	accounts := NewProcessor(nil).Fold(activities(
		NewDeposit(1, 9, amt("1.0")),
		NewDeposit(2, 3, amt("1.0")),
		NewDeposit(3, 5, amt("1.0")),
	))

	snapshots := Snapshots(accounts)
	clients := make([]ClientID, 0, len(snapshots))
	for _, s := range snapshots {
		clients = append(clients, s.Client)
	}
	if !slices.IsSorted(clients) {
		t.Errorf("expected snapshots sorted by client id, got %v", clients)
	}
}
