package payproc

import "iter"

// Processor folds a sequence of parsed activity records into a set of
// accounts, one per client id ever observed. The zero value is not
// usable; create one with NewProcessor.
type Processor struct {
	observer Observer
}

// NewProcessor creates a processor reporting skipped records to the
// given observer. A nil observer discards all reports.
func NewProcessor(observer Observer) *Processor {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Processor{observer: observer}
}

// Fold iterates the input sequence once, in order, and routes each
// activity to the account of its client, creating accounts lazily
// with zero balances. Parse failures and rejected activities are
// reported to the observer and skipped; nothing aborts the run.
//
// Activities of a given client are applied in input order. The
// returned accounts include every client ever observed, even those
// without a single successful transaction, in no guaranteed order.
func (p *Processor) Fold(activities iter.Seq2[AccountActivity, error]) []*Account {
	accounts := make(map[ClientID]*Account)
	for activity, err := range activities {
		if err != nil {
			p.observer.ParseFailure(err)
			continue
		}
		account, ok := accounts[activity.ClientID()]
		if !ok {
			account = NewAccount(activity.ClientID())
			accounts[activity.ClientID()] = account
		}
		if err := account.Apply(activity); err != nil {
			p.observer.ActivityRejected(activity, err)
		}
	}
	result := make([]*Account, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, account)
	}
	return result
}
