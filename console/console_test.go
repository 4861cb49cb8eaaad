package console

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/finance"
	"github.com/etnz/finance/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// session runs a console on a scripted input and returns its output.
func session(t *testing.T, m *finance.AccountManager, lines ...string) string {
	t.Helper()
	var out strings.Builder
	c := New(&out, strings.NewReader(strings.Join(lines, "\n")+"\n"), m)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRun_Scripted(t *testing.T) {
	m := finance.NewAccountManager()
	out := session(t, m,
		"add account", "Groceries",
		"add transaction", "Coffee", "Food", "4.50", "2", "2024-03-02",
		"add-transaction", "Rice", "", "abc", "12.25", "two", "1", "yesterday",
		"sort", "9", "2",
		"quit",
		"display-account", // never read
	)

	assert.True(t, strings.HasPrefix(out, `To view a list of all options, type "help"`))
	assert.Contains(t, out, `The account "Groceries" has been created and is now the active account`)
	assert.Contains(t, out, `Transaction 1 has been added to the account "Groceries"`)
	assert.Contains(t, out, `Transaction 2 has been added to the account "Groceries"`)
	assert.Contains(t, out, "Please enter a number without alphabetical characters")
	assert.Contains(t, out, "Please enter an integer")
	assert.Contains(t, out, "Groceries (sorted by-cost)")
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "Accounts:")

	a := m.ActiveAccount()
	require.NotNil(t, a)
	require.Equal(t, 2, a.TransactionCount())

	rice, err := a.Transaction(2)
	require.NoError(t, err)
	assert.Equal(t, finance.DefaultCategory, rice.Item().Category())
	assert.Equal(t, "12.25", rice.Item().Fee().String())

	// sorting leaves the account untouched
	coffee, err := a.Transaction(1)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", coffee.Item().Name())
}

func TestRun_Errors(t *testing.T) {
	m := finance.NewAccountManager()
	out := session(t, m,
		"fly",
		"display transaction",
		"add account", "",
		"delete transaction",
	)

	assert.Contains(t, out, `the request "fly" is not recognized`)
	assert.Contains(t, out, "there is no active account")
	assert.Contains(t, out, "must enter an argument")
	assert.Equal(t, 0, m.AccountCount())
}

func TestRun_DeleteTransaction(t *testing.T) {
	m := finance.NewAccountManager()
	out := session(t, m,
		"add-account", "Home",
		"add-transaction", "Lamp", "Home", "30", "1", "today",
		"delete-transaction", "2",
		"delete-transaction", "1",
	)

	assert.Contains(t, out, "Here are all transactions for the current account:")
	assert.Contains(t, out, `transaction 2 does not exist in the account "Home"`)
	assert.Contains(t, out, "Transaction 1 has been removed")
	assert.Equal(t, 0, m.ActiveAccount().TransactionCount())
}

func TestRun_EndOfInput(t *testing.T) {
	var out strings.Builder
	c := New(&out, strings.NewReader("add-account"), finance.NewAccountManager())
	// the last line has no line feed, then the input ends while asking for the name.
	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Enter the name of the account")
}

func TestSetup(t *testing.T) {
	file := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"accounts":[
		{"name":"Savings","transactions":[{"item":{"name":"Deposit","fee":-100},"quantity":1,"date":"2024-01-01"}]},
		{"name":"Daily"}
	]}`), 0o644))

	m := finance.NewAccountManager()
	var out, logs strings.Builder
	missing := filepath.Join(t.TempDir(), "missing.json")
	input := strings.Join([]string{
		"maybe", "yes",
		missing, file,
		"Yes", "Travel",
	}, "\n") + "\n"
	c := New(&out, strings.NewReader(input), m)
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(&logs, "debug"))
	require.NoError(t, c.Setup(ctx))

	assert.Contains(t, logs.String(), "cannot load accounts file")
	assert.Contains(t, logs.String(), missing)

	assert.Contains(t, out.String(), "Please enter Yes or No")
	assert.Contains(t, out.String(), "2 account(s) loaded")
	assert.Equal(t, 3, m.AccountCount())
	name, err := m.ActiveAccountName()
	require.NoError(t, err)
	assert.Equal(t, "Travel", name)
}

func TestSetup_No(t *testing.T) {
	m := finance.NewAccountManager()
	var out strings.Builder
	c := New(&out, strings.NewReader("no\nNO\n"), m)
	require.NoError(t, c.Setup(context.Background()))
	assert.Equal(t, 0, m.AccountCount())
	assert.NotContains(t, out.String(), "Enter the path")
}
