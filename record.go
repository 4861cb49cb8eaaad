package finance

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/finance/date"
	"github.com/shopspring/decimal"
)

// A record is the generic structure produced by decoding a JSON document:
// objects are map[string]any, arrays are []any, numbers are json.Number (or
// float64 when produced by a plain json.Unmarshal), strings are string.

// DecodeRecord decodes a JSON document into a generic record.
//
// Numbers are kept as json.Number so that fees are read without going through
// a float.
func DecodeRecord(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var record any
	if err := dec.Decode(&record); err != nil {
		return nil, wrapError(ErrMalformedRecord, err, "not a correct json document")
	}
	// anything but whitespace after the document is an error too.
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed("not a correct json document: unexpected data after the top level value")
	}
	return record, nil
}

// LoadAccounts opens and decodes the accounts file at path.
func LoadAccounts(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open accounts file %q: %w", path, err)
	}
	defer f.Close()

	record, err := DecodeRecord(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode accounts file %q: %w", path, err)
	}
	return record, nil
}

// object returns v as a record object.
func object(v any, what string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, malformed("%s must be an object", what)
	}
	return obj, nil
}

// list returns v as a record array.
func list(v any, what string) ([]any, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, malformed("%s must be a list", what)
	}
	return arr, nil
}

// stringField reads a property rendered as text. Numbers and booleans are
// accepted and converted, as a name like 2024 is still a valid name.
func stringField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// toDecimal converts a record value into a finite decimal.
func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, fmt.Errorf("%v is not a finite number", n)
		}
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Decimal{}, fmt.Errorf("%v is not a number", v)
	}
}

// toInt converts a record value into an integer. Integral floats like 2.0 are
// accepted, fractional ones are not.
func toInt(v any) (int, error) {
	var s string
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		s = n.String()
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		if n < float64(math.MinInt) || n >= -float64(math.MinInt) {
			return 0, fmt.Errorf("%v is out of range", n)
		}
		return int(n), nil
	case string:
		s = strings.TrimSpace(n)
	default:
		return 0, fmt.Errorf("%v is not an integer", v)
	}

	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	// "2.0" is a valid integer written as a number.
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if b := d.BigInt(); !b.IsInt64() || b.Int64() < math.MinInt || b.Int64() > math.MaxInt {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int(d.IntPart()), nil
}

// toDate converts a record value into a date.
func toDate(v any) (date.Date, error) {
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("%v is not a string", v)
	}
	return date.Parse(s)
}
