package finance

import (
	"fmt"
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// Transaction records the purchase of a quantity of an item on a given day.
//
// Transactions carry no identifier: inside an account they are addressed by
// their position.
type Transaction struct {
	item     Item
	date     date.Date
	quantity int
}

// NewTransaction creates a Transaction. A zero date is replaced by today.
func NewTransaction(item Item, on date.Date, quantity int) Transaction {
	if on.IsZero() {
		on = date.Today()
	}
	return Transaction{item: item, date: on, quantity: quantity}
}

// TransactionFromRecord creates a Transaction from a record object with the
// properties "item", "quantity" and the optional "date" (yyyy-mm-dd, defaults
// to today).
func TransactionFromRecord(obj map[string]any) (Transaction, error) {
	v, ok := obj["item"]
	if !ok || v == nil {
		return Transaction{}, malformed("transaction does not have an item")
	}
	jitem, err := object(v, "transaction item")
	if err != nil {
		return Transaction{}, err
	}
	item, err := ItemFromRecord(jitem)
	if err != nil {
		return Transaction{}, err
	}

	v, ok = obj["quantity"]
	if !ok || v == nil {
		return Transaction{}, malformed("no integer quantity attached to the item %s", item)
	}
	quantity, err := toInt(v)
	if err != nil {
		return Transaction{}, wrapError(ErrMalformedRecord, err, "no integer quantity attached to the item %s", item)
	}

	on := date.Today()
	if v, ok := obj["date"]; ok && v != nil {
		on, err = toDate(v)
		if err != nil {
			return Transaction{}, wrapError(ErrMalformedRecord, err, "the date of %s must be in the format (yyyy-mm-dd)", item)
		}
	}

	return Transaction{item: item, date: on, quantity: quantity}, nil
}

func (t Transaction) Item() Item      { return t.item }
func (t Transaction) Date() date.Date { return t.date }
func (t Transaction) Quantity() int   { return t.quantity }

// Total returns the fee of the item multiplied by the quantity.
func (t Transaction) Total() decimal.Decimal {
	return t.item.fee.Mul(decimal.NewFromInt(int64(t.quantity)))
}

func (t Transaction) Equal(other Transaction) bool {
	return t.item.Equal(other.item) && t.date == other.date && t.quantity == other.quantity
}

// String renders the transaction for display.
func (t Transaction) String() string {
	var b strings.Builder
	b.WriteString("-----------Transaction----------\n")
	fmt.Fprintf(&b, "Item: %s\n", t.item.name)
	fmt.Fprintf(&b, "Category: %s\n", t.item.category)
	fmt.Fprintf(&b, "Fee: %s\n", t.item.fee)
	fmt.Fprintf(&b, "Quantity purchased: %d\n", t.quantity)
	fmt.Fprintf(&b, "Total: %s\n", t.Total())
	fmt.Fprintf(&b, "Date: %s", t.date)
	return b.String()
}
