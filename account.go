package payproc

import "fmt"

// Account holds the balances of a single client.
//
// The only way of interacting with an account is by applying
// AccountActivity events via Apply. An account manages three
// balances:
//
//   - available: accessible for withdrawals.
//   - held: temporarily frozen pending dispute resolution.
//   - total: available + held, at every observation point.
//
// For auditing purposes every deposit and withdrawal id is recorded,
// even when the activity ultimately fails validation. This ensures a
// failed transaction cannot be retried with an altered payload: once
// an id has been seen it is never executed again.
//
// A dispute case must follow the full process. Resolves and
// chargebacks only move funds when the referenced transaction has
// been properly disputed beforehand; dispute activity referencing an
// unknown transaction is silently ignored, as it may concern a
// transaction outside the current observation window.
type Account struct {
	client ClientID

	available Amount
	held      Amount
	total     Amount

	locked bool

	disputes map[TransactionID]struct{}
	record   map[TransactionID]Amount
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(client ClientID) *Account {
	return &Account{
		client:   client,
		disputes: make(map[TransactionID]struct{}),
		record:   make(map[TransactionID]Amount),
	}
}

func (a *Account) ClientID() ClientID { return a.client }
func (a *Account) Available() Amount  { return a.available }
func (a *Account) Held() Amount       { return a.held }
func (a *Account) Total() Amount      { return a.total }
func (a *Account) IsLocked() bool     { return a.locked }

func (a *Account) lock() { a.locked = true }

// recordTransaction remembers a transaction id, first write wins.
func (a *Account) recordTransaction(tx Transaction) error {
	if _, seen := a.record[tx.ID]; seen {
		return fmt.Errorf("%w: transaction already recorded", ErrFailedTransaction)
	}
	a.record[tx.ID] = tx.Amount
	return nil
}

func (a *Account) deposit(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	a.available = a.available.Add(amount)
	a.total = a.total.Add(amount)
	return nil
}

func (a *Account) withdraw(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.GreaterThan(a.available) {
		return fmt.Errorf("%w: withdrawal failed because of insufficient funds", ErrFailedTransaction)
	}
	a.available = a.available.Sub(amount)
	a.total = a.total.Sub(amount)
	return nil
}

// hold freezes a disputed amount: available -> held. The record may
// contain an amount that failed validation when it was deposited, so
// the amount is validated again before any funds move.
func (a *Account) hold(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return nil
}

// release returns a held amount to available after a resolve.
func (a *Account) release(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
	return nil
}

// charge removes a held amount from the account after a chargeback.
func (a *Account) charge(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	a.held = a.held.Sub(amount)
	a.total = a.total.Sub(amount)
	return nil
}

func (a *Account) initiateDispute(id TransactionID) error {
	if _, disputed := a.disputes[id]; disputed {
		return fmt.Errorf("%w: transaction already disputed", ErrFailedDisputeCase)
	}
	amount, known := a.record[id]
	if !known {
		// The referenced transaction may predate the observation
		// window; ignore the dispute.
		return nil
	}
	if err := a.hold(amount); err != nil {
		return err
	}
	a.disputes[id] = struct{}{}
	return nil
}

func (a *Account) resolveDispute(id TransactionID) error {
	if _, disputed := a.disputes[id]; !disputed {
		return nil
	}
	if err := a.release(a.record[id]); err != nil {
		return err
	}
	delete(a.disputes, id)
	return nil
}

func (a *Account) issueChargeback(id TransactionID) error {
	if _, disputed := a.disputes[id]; !disputed {
		return nil
	}
	if err := a.charge(a.record[id]); err != nil {
		return err
	}
	delete(a.disputes, id)
	a.lock()
	return nil
}

// Apply processes a single account activity, mutating balances, the
// transaction record and the dispute set as required. A locked
// account rejects all activity. Failures leave the balances exactly
// as they were, with one deliberate exception: a deposit or
// withdrawal records its transaction id before the amount is
// validated, so an invalid amount still burns the id.
func (a *Account) Apply(activity AccountActivity) error {
	if a.locked {
		return fmt.Errorf("%w: account locked", ErrFailedTransaction)
	}
	switch v := activity.(type) {
	case Deposit:
		if err := a.recordTransaction(v.Transaction); err != nil {
			return err
		}
		return a.deposit(v.Amount)
	case Withdrawal:
		if err := a.recordTransaction(v.Transaction); err != nil {
			return err
		}
		return a.withdraw(v.Amount)
	case Dispute:
		return a.initiateDispute(v.Transaction)
	case Resolve:
		return a.resolveDispute(v.Transaction)
	case Chargeback:
		return a.issueChargeback(v.Transaction)
	default:
		return fmt.Errorf("%w: unsupported activity kind %q", ErrInvalidTransaction, activity.Kind())
	}
}
