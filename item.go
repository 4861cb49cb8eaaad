package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCategory is the category of an item when none is given.
const DefaultCategory = "Other"

// Item is the thing bought (or sold) in a transaction.
//
// A positive fee is an expense, a negative fee an income.
type Item struct {
	name     string
	fee      decimal.Decimal
	category string
}

// NewItem creates an Item. An empty category is replaced by DefaultCategory.
func NewItem(name string, fee decimal.Decimal, category string) Item {
	if category == "" {
		category = DefaultCategory
	}
	return Item{name: name, fee: fee, category: category}
}

// ItemFromRecord creates an Item from a record object with the properties
// "name", "fee" and the optional "category".
func ItemFromRecord(obj map[string]any) (Item, error) {
	name, ok := stringField(obj, "name")
	if !ok {
		return Item{}, malformed("item does not have a name")
	}
	v, ok := obj["fee"]
	if !ok || v == nil {
		return Item{}, malformed("item %q does not have a fee", name)
	}
	fee, err := toDecimal(v)
	if err != nil {
		return Item{}, wrapError(ErrMalformedRecord, err, "item %q has an invalid fee", name)
	}
	category, _ := stringField(obj, "category")
	return NewItem(name, fee, category), nil
}

func (i Item) Name() string          { return i.name }
func (i Item) Fee() decimal.Decimal  { return i.fee }
func (i Item) Category() string      { return i.category }
func (i Item) Equal(other Item) bool { return i.name == other.name && i.fee.Equal(other.fee) && i.category == other.category }

// String returns the item as "name (category): fee".
func (i Item) String() string {
	return fmt.Sprintf("%s (%s): %s", i.name, i.category, i.fee.String())
}
