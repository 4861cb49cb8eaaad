package finance

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a named, ordered list of transactions.
//
// Transactions are numbered from 1 in insertion order. The translation
// between that number and the position in the slice only happens in index.
type Account struct {
	name         string
	transactions []Transaction
}

// Entry is a transaction together with its number in its account.
type Entry struct {
	Number      int
	Transaction Transaction
}

// NewAccount creates an empty account.
func NewAccount(name string) *Account {
	return &Account{name: name, transactions: make([]Transaction, 0)}
}

// AccountFromRecord creates an Account from a record object with the
// properties "name" and "transactions" (a list of transaction objects).
func AccountFromRecord(obj map[string]any) (*Account, error) {
	name, ok := stringField(obj, "name")
	if !ok {
		return nil, malformed("account does not have a name")
	}
	a := NewAccount(name)

	v, ok := obj["transactions"]
	if !ok || v == nil {
		return a, nil
	}
	jtxs, err := list(v, fmt.Sprintf("transactions of account %q", name))
	if err != nil {
		return nil, err
	}
	for i, jtx := range jtxs {
		what := fmt.Sprintf("transaction %d of account %q", i+1, name)
		obj, err := object(jtx, what)
		if err != nil {
			return nil, err
		}
		tx, err := TransactionFromRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", what, err)
		}
		a.transactions = append(a.transactions, tx)
	}
	return a, nil
}

// Name returns the name of the account.
func (a *Account) Name() string { return a.name }

// AddTransaction appends a transaction to the account.
func (a *Account) AddTransaction(tx Transaction) {
	a.transactions = append(a.transactions, tx)
}

// ContainsTransactions reports whether the account holds any transaction.
func (a *Account) ContainsTransactions() bool { return len(a.transactions) > 0 }

// TransactionCount returns the number of transactions in the account.
func (a *Account) TransactionCount() int { return len(a.transactions) }

// index converts a transaction number into a slice index.
func (a *Account) index(number int) (int, error) {
	if len(a.transactions) == 0 {
		return 0, newError(ErrTransactionNotFound, "no transactions have been made on the account %q", a.name)
	}
	if number < 1 || number > len(a.transactions) {
		return 0, newError(ErrTransactionNotFound, "transaction %d does not exist in the account %q", number, a.name)
	}
	return number - 1, nil
}

// Transaction returns the transaction with the given number.
func (a *Account) Transaction(number int) (Transaction, error) {
	i, err := a.index(number)
	if err != nil {
		return Transaction{}, err
	}
	return a.transactions[i], nil
}

// DeleteTransaction removes the transaction with the given number and
// returns it. Transactions after it are renumbered.
func (a *Account) DeleteTransaction(number int) (Transaction, error) {
	i, err := a.index(number)
	if err != nil {
		return Transaction{}, err
	}
	tx := a.transactions[i]
	a.transactions = slices.Delete(a.transactions, i, i+1)
	return tx, nil
}

// Transactions iterates over the transactions and their numbers.
func (a *Account) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range a.transactions {
			if !yield(i+1, tx) {
				return
			}
		}
	}
}

// Entries returns a copy of the numbered transactions.
func (a *Account) Entries() []Entry {
	entries := make([]Entry, 0, len(a.transactions))
	for n, tx := range a.Transactions() {
		entries = append(entries, Entry{Number: n, Transaction: tx})
	}
	return entries
}

// Total returns the sum of all transaction totals.
func (a *Account) Total() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range a.transactions {
		total = total.Add(tx.Total())
	}
	return total
}

// String renders the account name followed by all of its transactions.
func (a *Account) String() string {
	var b strings.Builder
	b.WriteString(a.name)
	for _, e := range a.Entries() {
		b.WriteString("\n")
		b.WriteString(e.String())
	}
	return b.String()
}

// String renders the transaction followed by its number.
func (e Entry) String() string {
	return fmt.Sprintf("%s\nTransaction Number: %d", e.Transaction, e.Number)
}
