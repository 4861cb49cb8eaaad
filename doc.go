// Package finance provides the core of a personal-finance ledger: named
// accounts holding chronological lists of purchase transactions.
//
// The core functionalities include:
//   - Data Model: an Item (name, fee, category) bought in a Transaction
//     (item, date, quantity), recorded in an Account. Transactions are
//     addressed by their 1-based number within their account.
//   - Requests: user intents validated against a fixed grammar of actions
//     (see LookupAction and HelpText) and typed by their payload.
//   - Account Management: the AccountManager owns the accounts and the
//     active account, and executes requests, returning a message or one of
//     the error kinds ErrInvalidRequest, ErrAccount, ErrTransactionNotFound.
//   - Loading: accounts are imported once from a JSON document (see
//     DecodeRecord and AccountManager.GenerateAccounts); there is no
//     write-back.
//
// This package serves as the foundational logic for the `fin` command-line
// tool. It never prints nor logs, callers render the returned messages and
// errors.
package finance
