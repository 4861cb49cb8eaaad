package finance

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// AccountManager owns the accounts and the active account, and executes
// requests against them.
//
// It is not safe for concurrent use.
type AccountManager struct {
	accounts map[string]*Account // index accounts by name
	active   *Account            // nil or an account of the accounts map
}

// NewAccountManager creates a manager without accounts.
func NewAccountManager() *AccountManager {
	return &AccountManager{accounts: make(map[string]*Account)}
}

// AccountCount returns the number of registered accounts.
func (m *AccountManager) AccountCount() int { return len(m.accounts) }

// HasActiveAccount reports whether an account is active.
func (m *AccountManager) HasActiveAccount() bool { return m.active != nil }

// Account returns the account registered with this name, or nil if unknown.
func (m *AccountManager) Account(name string) *Account { return m.accounts[name] }

// ActiveAccount returns the active account, or nil if there is none.
func (m *AccountManager) ActiveAccount() *Account { return m.active }

// AccountNames returns the names of all accounts in alphabetical order.
func (m *AccountManager) AccountNames() ([]string, error) {
	if len(m.accounts) == 0 {
		return nil, accountError("no accounts are currently loaded")
	}
	return slices.Sorted(maps.Keys(m.accounts)), nil
}

// ActiveAccountName returns the name of the active account.
func (m *AccountManager) ActiveAccountName() (string, error) {
	if m.active == nil {
		return "", accountError("there is no active account")
	}
	return m.active.name, nil
}

// activeAccount returns the active account or an error.
func (m *AccountManager) activeAccount() (*Account, error) {
	if m.active == nil {
		return nil, accountError("there is no active account, add or change to an account first")
	}
	return m.active, nil
}

// ExecuteRequest executes a request and returns a message describing the
// outcome. A failed request leaves the manager unchanged.
func (m *AccountManager) ExecuteRequest(req Request) (string, error) {
	switch v := req.(type) {
	case Plain:
		return m.executePlain(v)
	case AccountRequest:
		return m.executeAccount(v)
	case AddTransactionRequest:
		return m.addTransaction(v.details)
	case DeleteTransactionRequest:
		return m.deleteTransaction(v.number)
	case SortRequest:
		return m.sortTransactions(v.method)
	default:
		return "", invalidRequest("unsupported request type: %T", req)
	}
}

func (m *AccountManager) executePlain(req Plain) (string, error) {
	switch req.action {
	case ActHelp:
		return HelpText(), nil
	case ActQuit:
		return "Goodbye!", nil
	case ActDisplayAccount:
		return m.displayAccounts()
	case ActDisplayTransaction:
		return m.displayTransactions()
	default:
		return "", invalidRequest("the request %q is not recognized", req.action)
	}
}

func (m *AccountManager) executeAccount(req AccountRequest) (string, error) {
	switch req.action {
	case ActAddAccount:
		return m.addAccount(req.name)
	case ActChangeAccount:
		return m.changeAccount(req.name)
	case ActDeleteAccount:
		return m.deleteAccount(req.name)
	default:
		return "", invalidRequest("the request %q is not recognized", req.action)
	}
}

func (m *AccountManager) addAccount(name string) (string, error) {
	if _, exists := m.accounts[name]; exists {
		return "", accountError("the account %q already exists", name)
	}
	a := NewAccount(name)
	m.accounts[name] = a
	if m.active != nil {
		return fmt.Sprintf("The account %q has been created", name), nil
	}
	m.active = a
	return fmt.Sprintf("The account %q has been created and is now the active account", name), nil
}

func (m *AccountManager) changeAccount(name string) (string, error) {
	a, exists := m.accounts[name]
	if !exists {
		return "", accountError("the account %q is not recognized", name)
	}
	m.active = a
	return fmt.Sprintf("The active account is now %q", name), nil
}

func (m *AccountManager) deleteAccount(name string) (string, error) {
	if len(m.accounts) == 0 {
		return "", accountError("no accounts are currently loaded")
	}
	a, exists := m.accounts[name]
	if !exists {
		return "", accountError("the account %q does not exist", name)
	}
	delete(m.accounts, name)

	msg := fmt.Sprintf("The account %q has been deleted", name)
	if m.active == a {
		m.active = nil
	}
	if m.active == nil && len(m.accounts) == 1 {
		for _, remaining := range m.accounts {
			m.active = remaining
		}
		msg += fmt.Sprintf("\nThe active account is now %q", m.active.name)
	}
	return msg, nil
}

func (m *AccountManager) addTransaction(details TransactionDetails) (string, error) {
	a, err := m.activeAccount()
	if err != nil {
		return "", err
	}
	a.AddTransaction(details.Transaction())
	return fmt.Sprintf("Transaction %d has been added to the account %q", a.TransactionCount(), a.name), nil
}

func (m *AccountManager) deleteTransaction(number int) (string, error) {
	a, err := m.activeAccount()
	if err != nil {
		return "", err
	}
	if _, err := a.DeleteTransaction(number); err != nil {
		return "", err
	}
	return fmt.Sprintf("Transaction %d has been removed", number), nil
}

func (m *AccountManager) displayAccounts() (string, error) {
	names, err := m.AccountNames()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("Accounts:")
	for _, name := range names {
		b.WriteString("\n")
		if m.active != nil && m.active.name == name {
			fmt.Fprintf(&b, "* %s (active)", name)
		} else {
			fmt.Fprintf(&b, "  %s", name)
		}
	}
	return b.String(), nil
}

// activeEntries returns the numbered transactions of the active account,
// failing if there are none.
func (m *AccountManager) activeEntries() (*Account, []Entry, error) {
	a, err := m.activeAccount()
	if err != nil {
		return nil, nil, err
	}
	if !a.ContainsTransactions() {
		return nil, nil, newError(ErrTransactionNotFound, "no transactions have been made on the account %q", a.name)
	}
	return a, a.Entries(), nil
}

func (m *AccountManager) displayTransactions() (string, error) {
	a, entries, err := m.activeEntries()
	if err != nil {
		return "", err
	}
	return renderEntries(a.name, entries), nil
}

func (m *AccountManager) sortTransactions(method SortMethod) (string, error) {
	a, entries, err := m.activeEntries()
	if err != nil {
		return "", err
	}
	return renderEntries(fmt.Sprintf("%s (sorted %s)", a.name, method), SortEntries(entries, method)), nil
}

func renderEntries(title string, entries []Entry) string {
	var b strings.Builder
	b.WriteString(title)
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(e.String())
	}
	return b.String()
}

// GenerateAccounts registers the accounts of a record.
//
// The record is either an object with an "accounts" list, or the list itself.
// It is applied entirely or not at all: on error the manager is unchanged.
// When the record holds exactly one account, it becomes the active account.
func (m *AccountManager) GenerateAccounts(record any) error {
	jaccounts, ok := record.([]any)
	if !ok {
		if _, isObject := record.(map[string]any); !isObject {
			return malformed("the accounts record must be an object or a list")
		}
		v, err := jsonpath.Get("$.accounts", record)
		if err != nil {
			return wrapError(ErrMalformedRecord, err, "the accounts record has no accounts list")
		}
		if jaccounts, err = list(v, "accounts"); err != nil {
			return err
		}
	}

	// parse everything first, commit only when all accounts are valid.
	parsed := make([]*Account, 0, len(jaccounts))
	seen := make(map[string]bool)
	for i, jaccount := range jaccounts {
		obj, err := object(jaccount, fmt.Sprintf("account %d", i+1))
		if err != nil {
			return err
		}
		a, err := AccountFromRecord(obj)
		if err != nil {
			return err
		}
		if _, exists := m.accounts[a.name]; exists || seen[a.name] {
			return accountError("the account %q already exists", a.name)
		}
		seen[a.name] = true
		parsed = append(parsed, a)
	}

	for _, a := range parsed {
		m.accounts[a.name] = a
	}
	if len(parsed) == 1 {
		m.active = parsed[0]
	}
	return nil
}
