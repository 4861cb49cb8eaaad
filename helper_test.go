package finance

import (
	"strings"
	"testing"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// decodeObject decodes a JSON object literal into a record object.
func decodeObject(t *testing.T, s string) map[string]any {
	t.Helper()
	record, err := DecodeRecord(strings.NewReader(s))
	if err != nil {
		t.Fatalf("DecodeRecord(%q) error = %v", s, err)
	}
	obj, ok := record.(map[string]any)
	if !ok {
		t.Fatalf("DecodeRecord(%q) = %T, want an object", s, record)
	}
	return obj
}

// newTx is a short hand to create a transaction in tests.
func newTx(name string, fee float64, category, on string, quantity int) Transaction {
	return NewTransaction(NewItem(name, decimal.NewFromFloat(fee), category), date.MustParse(on), quantity)
}

// accountWith creates an account holding the given transactions.
func accountWith(name string, txs ...Transaction) *Account {
	a := NewAccount(name)
	for _, t := range txs {
		a.AddTransaction(t)
	}
	return a
}
