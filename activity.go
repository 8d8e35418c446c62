package payproc

// Kind is a typed string identifying the five activity kinds.
type Kind string

// Activity kinds as they appear in input records.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// Transaction is a financial event where funds move in or out of an
// account. It is the payload of deposits and withdrawals.
type Transaction struct {
	ID     TransactionID
	Client ClientID
	Amount Amount
}

// DisputeCase references a prior transaction that a client formally
// challenges. It carries no amount: the amount is recovered from the
// referenced transaction when the case is processed.
type DisputeCase struct {
	Transaction TransactionID
	Client      ClientID
}

// AccountActivity is the closed set of events an account can process:
// Deposit, Withdrawal, Dispute, Resolve and Chargeback. The set is
// sealed so that Account.Apply can switch exhaustively over it.
type AccountActivity interface {
	Kind() Kind
	TransactionID() TransactionID
	ClientID() ClientID

	isActivity()
}

// Deposit adds funds to an account, increasing the available and
// total balance.
type Deposit struct{ Transaction }

// Withdrawal removes funds from an account, reducing the available
// and total balance.
type Withdrawal struct{ Transaction }

// Dispute opens a DisputeCase, freezing the referenced transaction's
// funds until the case concludes.
type Dispute struct{ DisputeCase }

// Resolve concludes a DisputeCase in the merchant's favor, releasing
// the frozen funds back to available.
type Resolve struct{ DisputeCase }

// Chargeback concludes a DisputeCase in the client's favor, reversing
// the disputed transaction and locking the account.
type Chargeback struct{ DisputeCase }

// NewDeposit creates a deposit activity.
func NewDeposit(id TransactionID, client ClientID, amount Amount) Deposit {
	return Deposit{Transaction{ID: id, Client: client, Amount: amount}}
}

// NewWithdrawal creates a withdrawal activity.
func NewWithdrawal(id TransactionID, client ClientID, amount Amount) Withdrawal {
	return Withdrawal{Transaction{ID: id, Client: client, Amount: amount}}
}

// NewDispute creates a dispute activity referencing a prior transaction.
func NewDispute(id TransactionID, client ClientID) Dispute {
	return Dispute{DisputeCase{Transaction: id, Client: client}}
}

// NewResolve creates a resolve activity referencing a prior transaction.
func NewResolve(id TransactionID, client ClientID) Resolve {
	return Resolve{DisputeCase{Transaction: id, Client: client}}
}

// NewChargeback creates a chargeback activity referencing a prior transaction.
func NewChargeback(id TransactionID, client ClientID) Chargeback {
	return Chargeback{DisputeCase{Transaction: id, Client: client}}
}

func (t Transaction) TransactionID() TransactionID { return t.ID }
func (t Transaction) ClientID() ClientID           { return t.Client }

func (d DisputeCase) TransactionID() TransactionID { return d.Transaction }
func (d DisputeCase) ClientID() ClientID           { return d.Client }

func (Deposit) Kind() Kind    { return KindDeposit }
func (Withdrawal) Kind() Kind { return KindWithdrawal }
func (Dispute) Kind() Kind    { return KindDispute }
func (Resolve) Kind() Kind    { return KindResolve }
func (Chargeback) Kind() Kind { return KindChargeback }

func (Deposit) isActivity()    {}
func (Withdrawal) isActivity() {}
func (Dispute) isActivity()    {}
func (Resolve) isActivity()    {}
func (Chargeback) isActivity() {}
