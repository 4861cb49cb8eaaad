package finance

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finance/date"
)

// SortMethod defines the order in which transactions are listed.
type SortMethod int

const (
	// Chronological sorts transactions by date.
	Chronological SortMethod = iota + 1
	// ByCost sorts transactions by item fee, lowest first.
	ByCost
	// ByCategory sorts transactions by item category, alphabetically and
	// ignoring case.
	ByCategory
)

func (m SortMethod) valid() bool { return m >= Chronological && m <= ByCategory }

func (m SortMethod) String() string {
	switch m {
	case Chronological:
		return "chronological"
	case ByCost:
		return "by-cost"
	case ByCategory:
		return "by-category"
	default:
		return "unknown"
	}
}

// ParseSortMethod parses a sorting method by name, or by its number in the
// sort menu (1, 2 or 3).
func ParseSortMethod(s string) (SortMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chronological", "date", "1":
		return Chronological, nil
	case "by-cost", "cost", "2":
		return ByCost, nil
	case "by-category", "category", "3":
		return ByCategory, nil
	default:
		return 0, invalidRequest("unknown sorting method: %q", s)
	}
}

// SortMethods returns all sorting methods in menu order.
func SortMethods() []SortMethod { return []SortMethod{Chronological, ByCost, ByCategory} }

// compareTransactions returns the comparison function of a sorting method.
func compareTransactions(method SortMethod) func(a, b Transaction) int {
	switch method {
	case Chronological:
		return func(a, b Transaction) int { return a.date.Compare(b.date) }
	case ByCost:
		return func(a, b Transaction) int { return a.item.fee.Cmp(b.item.fee) }
	case ByCategory:
		return func(a, b Transaction) int {
			return cmp.Compare(strings.ToLower(a.item.category), strings.ToLower(b.item.category))
		}
	default:
		panic(fmt.Sprintf("unknown sorting method %d", int(method)))
	}
}

// SortTransactions returns a sorted copy of txs. The sort is stable: equal
// transactions keep their relative order.
func SortTransactions(txs []Transaction, method SortMethod) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, compareTransactions(method))
	return sorted
}

// SortEntries is like SortTransactions for numbered transactions. Entries keep
// their original number.
func SortEntries(entries []Entry, method SortMethod) []Entry {
	compare := compareTransactions(method)
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return compare(a.Transaction, b.Transaction) })
	return sorted
}

// EntriesIn returns the entries dated within r, in the same order.
func EntriesIn(entries []Entry, r date.Range) []Entry {
	var in []Entry
	for _, e := range entries {
		if r.Contains(e.Transaction.Date()) {
			in = append(in, e)
		}
	}
	return in
}
