package finance

import (
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Request is a validated user intent, ready to be executed by an
// AccountManager.
//
// The set of requests is closed: Plain, AccountRequest,
// AddTransactionRequest, DeleteTransactionRequest and SortRequest. Requests
// are immutable and can only be created by NewRequest and
// NewRequestWithArgument, which validate them.
type Request interface {
	What() Action // What returns the action of the request (e.g. "add-account").
	isRequest()
}

type baseRequest struct {
	action Action
}

// What returns the action of the request.
func (r baseRequest) What() Action { return r.action }
func (baseRequest) isRequest()     {}

// Plain is a request without argument: help, quit, display-account or
// display-transaction.
type Plain struct {
	baseRequest
}

// AccountRequest targets an account by name: add-account, change-account or
// delete-account.
type AccountRequest struct {
	baseRequest
	name string
}

// AccountName returns the name of the targeted account.
func (r AccountRequest) AccountName() string { return r.name }

// AddTransactionRequest carries the details of a transaction to append to
// the active account.
type AddTransactionRequest struct {
	baseRequest
	details TransactionDetails
}

// Details returns the transaction details of the request.
func (r AddTransactionRequest) Details() TransactionDetails { return r.details }

// DeleteTransactionRequest targets a transaction of the active account by
// its number.
type DeleteTransactionRequest struct {
	baseRequest
	number int
}

// TransactionNumber returns the 1-based number of the targeted transaction.
func (r DeleteTransactionRequest) TransactionNumber() int { return r.number }

// SortRequest asks for the transactions of the active account in a given order.
type SortRequest struct {
	baseRequest
	method SortMethod
}

// Method returns the sorting method of the request.
func (r SortRequest) Method() SortMethod { return r.method }

// Argument is the payload of a one-argument action: AccountName,
// TransactionDetails, TransactionNumber or SortMethod.
type Argument interface {
	Kind() ArgumentKind
	isEmpty() bool
}

// AccountName is the argument of add-account, change-account and delete-account.
type AccountName string

func (AccountName) Kind() ArgumentKind { return AccountNameArgument }
func (n AccountName) isEmpty() bool    { return strings.TrimSpace(string(n)) == "" }

// TransactionDetails is the argument of add-transaction.
type TransactionDetails struct {
	ItemName     string
	ItemFee      decimal.Decimal
	ItemCategory string    // Optional, defaults to DefaultCategory.
	Date         date.Date // Optional, defaults to today.
	Quantity     int
}

func (TransactionDetails) Kind() ArgumentKind { return TransactionArgument }
func (d TransactionDetails) isEmpty() bool    { return strings.TrimSpace(d.ItemName) == "" }

// Transaction builds the transaction described by the details.
func (d TransactionDetails) Transaction() Transaction {
	return NewTransaction(NewItem(strings.TrimSpace(d.ItemName), d.ItemFee, strings.TrimSpace(d.ItemCategory)), d.Date, d.Quantity)
}

// TransactionNumber is the argument of delete-transaction. Its range is
// checked against the active account when the request is executed.
type TransactionNumber int

func (TransactionNumber) Kind() ArgumentKind { return TransactionNumberArgument }
func (TransactionNumber) isEmpty() bool      { return false }

func (SortMethod) Kind() ArgumentKind { return SortMethodArgument }
func (m SortMethod) isEmpty() bool    { return m == 0 }

// NewRequest creates a request for an action that takes no argument.
//
// It fails with ErrInvalidRequest if the keyword is not recognized, or if
// the action requires an argument.
func NewRequest(keyword string) (Request, error) {
	return NewRequestWithArgument(keyword, nil)
}

// NewRequestWithArgument creates a request for any action.
//
// Actions that take no argument ignore arg. Other actions fail with
// ErrInvalidRequest when arg is missing, empty or of the wrong kind.
func NewRequestWithArgument(keyword string, arg Argument) (Request, error) {
	info, err := LookupAction(keyword)
	if err != nil {
		return nil, err
	}
	base := baseRequest{action: info.Action}
	if !info.TakesArgument() {
		return Plain{base}, nil
	}

	if arg == nil || arg.isEmpty() {
		return nil, invalidRequest("the request %q requires %s: must enter an argument", info.Action, info.Argument)
	}
	if arg.Kind() != info.Argument {
		return nil, invalidRequest("the request %q requires %s, not %s", info.Action, info.Argument, arg.Kind())
	}

	switch v := arg.(type) {
	case AccountName:
		return AccountRequest{base, strings.TrimSpace(string(v))}, nil
	case TransactionDetails:
		return AddTransactionRequest{base, v}, nil
	case TransactionNumber:
		return DeleteTransactionRequest{base, int(v)}, nil
	case SortMethod:
		if !v.valid() {
			return nil, invalidRequest("invalid sorting method %d", int(v))
		}
		return SortRequest{base, v}, nil
	default:
		return nil, invalidRequest("unsupported argument %T for the request %q", arg, info.Action)
	}
}
