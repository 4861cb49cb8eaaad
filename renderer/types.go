package renderer

import (
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Accounts represents the list of accounts of a manager.
type Accounts struct {
	// Currency used to format totals.
	Currency string `json:"currency"`
	// Rows holds one summary per account, in alphabetical order.
	Rows []AccountSummary `json:"rows"`
}

// AccountSummary is a single line of the accounts list.
type AccountSummary struct {
	Name         string `json:"name"`
	Active       bool   `json:"active,omitempty"`
	Transactions int    `json:"transactions"`
	Total        string `json:"total"`
}

// Account represents the transactions of one account.
type Account struct {
	// Name of the account.
	Name string `json:"name"`
	// SortedBy is the sorting method name, empty when listed in insertion order.
	SortedBy string `json:"sortedBy,omitempty"`
	// Period identifies the range of dates displayed, empty for all transactions.
	Period string `json:"period,omitempty"`
	// Rows holds the transactions, each one with its number in the account.
	Rows []TransactionRow `json:"rows"`
	// Total is the sum of the displayed transaction totals.
	Total string `json:"total"`
}

// AccountOptions selects the transactions of an Account view.
type AccountOptions struct {
	// Method sorts the transactions, zero keeps the insertion order.
	Method finance.SortMethod
	// Range restricts the transactions to a range of dates, nil for all.
	Range *date.Range
}

// TransactionRow is a single transaction of an account.
type TransactionRow struct {
	Number   int    `json:"number"`
	Date     string `json:"date"`
	Item     string `json:"item"`
	Category string `json:"category"`
	Fee      string `json:"fee"`
	Quantity int    `json:"quantity"`
	Total    string `json:"total"`
}

// NewAccounts creates the accounts list of a manager. An empty manager gives
// an empty list.
func NewAccounts(m *finance.AccountManager, currency string) *Accounts {
	res := &Accounts{Currency: currency, Rows: []AccountSummary{}}
	names, err := m.AccountNames()
	if err != nil {
		return res
	}
	active, _ := m.ActiveAccountName()
	for _, name := range names {
		a := m.Account(name)
		res.Rows = append(res.Rows, AccountSummary{
			Name:         cell(name),
			Active:       name == active && m.HasActiveAccount(),
			Transactions: a.TransactionCount(),
			Total:        FormatMoney(a.Total(), currency),
		})
	}
	return res
}

// NewAccount creates the view of an account's transactions.
func NewAccount(a *finance.Account, currency string, opts AccountOptions) *Account {
	entries := a.Entries()
	res := &Account{Name: cell(a.Name()), Rows: []TransactionRow{}}
	if opts.Range != nil {
		entries = finance.EntriesIn(entries, *opts.Range)
		res.Period = opts.Range.String()
	}
	if opts.Method != 0 {
		entries = finance.SortEntries(entries, opts.Method)
		res.SortedBy = opts.Method.String()
	}

	total := decimal.Zero
	for _, e := range entries {
		tx := e.Transaction
		total = total.Add(tx.Total())
		res.Rows = append(res.Rows, TransactionRow{
			Number:   e.Number,
			Date:     tx.Date().String(),
			Item:     cell(tx.Item().Name()),
			Category: cell(tx.Item().Category()),
			Fee:      FormatMoney(tx.Item().Fee(), currency),
			Quantity: tx.Quantity(),
			Total:    FormatMoney(tx.Total(), currency),
		})
	}
	res.Total = FormatMoney(total, currency)
	return res
}

// cell escapes text to be used in a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
