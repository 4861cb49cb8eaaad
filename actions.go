package finance

import (
	"fmt"
	"strings"
)

// Action is a typed string for identifying user requests.
type Action string

// Actions understood by the AccountManager.
const (
	ActHelp               Action = "help"
	ActQuit               Action = "quit"
	ActDisplayAccount     Action = "display-account"
	ActDisplayTransaction Action = "display-transaction"

	ActAddAccount        Action = "add-account"
	ActChangeAccount     Action = "change-account"
	ActDeleteAccount     Action = "delete-account"
	ActAddTransaction    Action = "add-transaction"
	ActDeleteTransaction Action = "delete-transaction"
	ActSort              Action = "sort"
)

// ArgumentKind tells which argument an action requires.
type ArgumentKind int

const (
	NoArgument ArgumentKind = iota
	AccountNameArgument
	TransactionArgument
	TransactionNumberArgument
	SortMethodArgument
)

func (k ArgumentKind) String() string {
	switch k {
	case NoArgument:
		return "no argument"
	case AccountNameArgument:
		return "an account name"
	case TransactionArgument:
		return "a transaction"
	case TransactionNumberArgument:
		return "a transaction number"
	case SortMethodArgument:
		return "a sorting method"
	default:
		return "unknown"
	}
}

// ActionInfo describes an action of the grammar.
type ActionInfo struct {
	Action      Action
	Description string
	Argument    ArgumentKind
}

// TakesArgument reports whether the action belongs to the one-argument group.
func (i ActionInfo) TakesArgument() bool { return i.Argument != NoArgument }

// as a CLI application, the grammar is a read-only table shared by the whole process.

var noArgumentActions = []ActionInfo{
	{ActHelp, "Displays a list of all actions", NoArgument},
	{ActQuit, "Quits the program", NoArgument},
	{ActDisplayAccount, "Displays the names of all accounts", NoArgument},
	{ActDisplayTransaction, "Displays all transactions of the active account", NoArgument},
}

var oneArgumentActions = []ActionInfo{
	{ActAddAccount, "Creates a new account, active if no account is active", AccountNameArgument},
	{ActChangeAccount, "Changes the active account", AccountNameArgument},
	{ActDeleteAccount, "Deletes an account", AccountNameArgument},
	{ActAddTransaction, "Adds a transaction to the active account", TransactionArgument},
	{ActDeleteTransaction, "Deletes a transaction from the active account by its number", TransactionNumberArgument},
	{ActSort, "Displays the transactions of the active account sorted chronologically, by cost or by category", SortMethodArgument},
}

// NoArgumentActions returns the zero-argument group of the grammar, in help order.
func NoArgumentActions() []ActionInfo { return append([]ActionInfo(nil), noArgumentActions...) }

// OneArgumentActions returns the one-argument group of the grammar, in help order.
func OneArgumentActions() []ActionInfo { return append([]ActionInfo(nil), oneArgumentActions...) }

// NormalizeAction turns a user typed keyword into its canonical form:
// lower case words joined by "-", so that "Add Account" is "add-account".
func NormalizeAction(keyword string) Action {
	fields := strings.FieldsFunc(strings.ToLower(keyword), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '_' || r == '-'
	})
	return Action(strings.Join(fields, "-"))
}

// LookupAction returns the grammar entry of a keyword.
func LookupAction(keyword string) (ActionInfo, error) {
	action := NormalizeAction(keyword)
	for _, group := range [][]ActionInfo{noArgumentActions, oneArgumentActions} {
		for _, info := range group {
			if info.Action == action {
				return info, nil
			}
		}
	}
	return ActionInfo{}, invalidRequest("the request %q is not recognized", strings.TrimSpace(keyword))
}

// HelpText renders the help table, zero-argument actions first.
func HelpText() string {
	var b strings.Builder
	width := 0
	for _, group := range [][]ActionInfo{noArgumentActions, oneArgumentActions} {
		for _, info := range group {
			width = max(width, len(info.Action))
		}
	}
	b.WriteString("Actions:\n")
	for _, info := range noArgumentActions {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, info.Action, info.Description)
	}
	b.WriteString("Actions requiring an argument:\n")
	for _, info := range oneArgumentActions {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, info.Action, info.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
