package ledgerline

import (
	"strconv"

	"github.com/Rhymond/go-money"
)

// Amount represents a monetary value in integer minor units (e.g. cents).
// All decoding arithmetic happens on the integer value; the currency is only
// used for display.
type Amount struct {
	minor int64
	cur   string
}

// NewAmount creates an amount from a minor-unit value and an ISO currency code.
func NewAmount(minor int64, currency string) Amount {
	return Amount{minor: minor, cur: currency}
}

// MinorUnits returns the raw integer value.
func (a Amount) MinorUnits() int64 { return a.minor }

// Currency returns the currency code, possibly empty.
func (a Amount) Currency() string { return a.cur }

func (a Amount) IsZero() bool     { return a.minor == 0 }
func (a Amount) IsPositive() bool { return a.minor > 0 }
func (a Amount) Equal(b Amount) bool {
	return a.minor == b.minor && a.cur == b.cur
}

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{minor: a.minor + b.minor, cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{minor: a.minor - b.minor, cur: cur(a, b)} }

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// String returns the formatted representation in the amount's currency.
// With no currency set, the raw minor-unit value is returned.
func (a Amount) String() string {
	if a.cur == "" {
		return strconv.FormatInt(a.minor, 10)
	}
	return money.New(a.minor, a.cur).Display()
}
